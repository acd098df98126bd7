package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/kgrigsby/event-weather/internal/domain"
	"github.com/kgrigsby/event-weather/internal/pkg/constants"
	"github.com/labstack/echo/v4"
)

func httpErrorHandler(err error, c echo.Context) {
	msg := err.Error()
	code := http.StatusInternalServerError

	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		msg = fmt.Sprintf("%v", he.Message)
	}

	for unwrapped := err; unwrapped != nil; unwrapped = errors.Unwrap(unwrapped) {
		if ce, ok := unwrapped.(*constants.CodedError); ok {
			code = ce.Code()
			msg = ce.Error()
			break
		}
	}

	_ = c.JSON(code, domain.ErrorResponse{
		Error: msg,
		Code:  code,
	})
}
