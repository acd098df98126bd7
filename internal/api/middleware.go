package api

import (
	"github.com/kgrigsby/event-weather/internal/pkg/constants"
	"github.com/kgrigsby/event-weather/internal/pkg/utils"
	"github.com/labstack/echo/v4"
)

// AuthMiddleware attaches the user id from the auth cookie, when one is
// present and valid, to the request context. Identification stays
// optional here: the searches handlers decide whether a user id is
// required for the operation.
func (svc *APIService) AuthMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		cookie, err := ctx.Cookie(constants.CookieKeyAuthToken)
		if err != nil {
			return next(ctx)
		}

		token, err := utils.ParseAuthToken(cookie.Value)
		if err != nil {
			return err
		}

		ctx.Set(constants.CtxKeyUserID, token.UserID)

		return next(ctx)
	}
}
