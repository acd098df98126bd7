package controller

import (
	"github.com/kgrigsby/event-weather/internal/service/forecast"
	"github.com/kgrigsby/event-weather/internal/service/geo"
	"github.com/kgrigsby/event-weather/internal/service/search"
)

type Controller struct {
	geoService      *geo.Service
	forecastService *forecast.Service
	searchService   *search.Service
}

func NewController(
	geoService *geo.Service,
	forecastService *forecast.Service,
	searchService *search.Service,
) *Controller {
	return &Controller{
		geoService:      geoService,
		forecastService: forecastService,
		searchService:   searchService,
	}
}
