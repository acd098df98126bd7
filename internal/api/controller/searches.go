package controller

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/kgrigsby/event-weather/internal/domain/dto"
	"github.com/kgrigsby/event-weather/internal/pkg/constants"
	"github.com/labstack/echo/v4"
)

func (c *Controller) CreateSearch(ctx echo.Context) error {
	req := new(dto.CreateSearchRequest)
	if err := ctx.Bind(req); err != nil {
		return err
	}
	if err := ctx.Validate(req); err != nil {
		return err
	}

	searchID, err := c.searchService.Create(ctx.Request().Context(), req, ctx.RealIP())
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, map[string]string{"searchId": searchID.String()})
}

// GetSearch reads one persisted search back by id.
func (c *Controller) GetSearch(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid search id")
	}

	rec, err := c.searchService.Get(ctx.Request().Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, rec)
}

// SearchHistory lists the user's recent searches. The user is taken
// from the query parameter, or from the auth cookie when the middleware
// resolved one.
func (c *Controller) SearchHistory(ctx echo.Context) error {
	userID := ctx.QueryParams().Get("userId")
	if userID == "" {
		if v, ok := ctx.Get(constants.CtxKeyUserID).(string); ok {
			userID = v
		}
	}
	if userID == "" {
		return constants.ErrMissingUserID
	}

	summaries, err := c.searchService.History(ctx.Request().Context(), userID)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, summaries)
}
