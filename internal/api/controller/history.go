package controller

import (
	"net/http"
	"time"

	"github.com/kgrigsby/event-weather/internal/pkg/constants"
	"github.com/labstack/echo/v4"
)

// History serves the raw per-station observations for one region and
// one calendar date. The array may be empty: upstream gaps and fetch
// failures both read as "no data for this day".
func (c *Controller) History(ctx echo.Context) error {
	regionCode := ctx.QueryParams().Get("regionCode")
	if regionCode == "" {
		return constants.ErrMissingRegionCode
	}

	date, err := time.Parse("2006-01-02", ctx.QueryParams().Get("date"))
	if err != nil {
		return constants.ErrInvalidDate
	}

	observations := c.forecastService.Observations(ctx.Request().Context(), regionCode, date)

	return ctx.JSON(http.StatusOK, observations)
}
