package controller

import (
	"net/http"
	"strconv"
	"time"

	"github.com/kgrigsby/event-weather/internal/pkg/constants"
	"github.com/labstack/echo/v4"
)

func (c *Controller) Geocode(ctx echo.Context) error {
	input := ctx.QueryParams().Get("input")
	if input == "" {
		return constants.ErrMissingLocation
	}

	location, err := c.geoService.Geocode(ctx.Request().Context(), input)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, location)
}

func (c *Controller) Region(ctx echo.Context) error {
	lat, lng, err := coordinates(ctx)
	if err != nil {
		return err
	}

	lookup := c.geoService.Region(ctx.Request().Context(), lat, lng)

	return ctx.JSON(http.StatusOK, lookup)
}

func (c *Controller) Solar(ctx echo.Context) error {
	lat, lng, err := coordinates(ctx)
	if err != nil {
		return err
	}

	date := ctx.QueryParams().Get("date")
	if _, parseErr := time.Parse("2006-01-02", date); parseErr != nil {
		return constants.ErrInvalidDate
	}

	times := c.geoService.Solar(ctx.Request().Context(), lat, lng, date)

	return ctx.JSON(http.StatusOK, times)
}

func coordinates(ctx echo.Context) (float64, float64, error) {
	lat, err := strconv.ParseFloat(ctx.QueryParams().Get("lat"), 64)
	if err != nil {
		return 0, 0, constants.ErrInvalidCoordinates
	}

	lng, err := strconv.ParseFloat(ctx.QueryParams().Get("lng"), 64)
	if err != nil {
		return 0, 0, constants.ErrInvalidCoordinates
	}

	return lat, lng, nil
}
