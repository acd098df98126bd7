package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/kgrigsby/event-weather/internal/api/controller"
	"github.com/kgrigsby/event-weather/internal/pkg/logger"
	"github.com/kgrigsby/event-weather/internal/service/forecast"
	"github.com/kgrigsby/event-weather/internal/service/geo"
	"github.com/kgrigsby/event-weather/internal/service/search"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type APIService struct {
	router *echo.Echo
}

// Serve blocks until the listener stops. Start reports ErrServerClosed
// as soon as Shutdown begins draining; that is a normal return, not a
// reason to kill the process mid-drain.
func (svc *APIService) Serve(addr string) {
	if err := svc.router.Start(addr); !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal(context.Background(), err)
	}
}

func (svc *APIService) Shutdown(ctx context.Context) error {
	return svc.router.Shutdown(ctx)
}

func NewAPIService(
	geoService *geo.Service,
	forecastService *forecast.Service,
	searchService *search.Service,
) (*APIService, error) {
	svc := &APIService{router: echo.New()}

	svc.router.HideBanner = true
	svc.router.Logger.SetLevel(log.OFF)
	svc.router.Validator = NewValidator()
	svc.router.Binder = NewBinder()
	svc.router.Use(middleware.Logger())
	svc.router.Use(middleware.Recover())
	svc.router.HTTPErrorHandler = httpErrorHandler
	svc.router.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"http://localhost:3000"},
		AllowMethods: []string{echo.GET, echo.PUT, echo.POST, echo.DELETE},
		AllowHeaders: []string{"Content-Type", "Authorization"},
	}))

	svc.router.GET("/health", func(ctx echo.Context) error {
		return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	svc.router.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := svc.router.Group("/api/v1")
	cntrl := controller.NewController(geoService, forecastService, searchService)

	api.GET("/geocode", cntrl.Geocode)
	api.GET("/region", cntrl.Region)
	api.GET("/solar", cntrl.Solar)
	api.GET("/history", cntrl.History)

	searches := api.Group("/searches", svc.AuthMiddleware)
	searches.POST("", cntrl.CreateSearch)
	searches.GET("/history", cntrl.SearchHistory)
	searches.GET("/:id", cntrl.GetSearch)

	return svc, nil
}
