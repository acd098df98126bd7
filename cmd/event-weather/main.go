package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jonboulle/clockwork"
	"github.com/kgrigsby/event-weather/internal/api"
	"github.com/kgrigsby/event-weather/internal/config"
	"github.com/kgrigsby/event-weather/internal/pkg/logger"
	"github.com/kgrigsby/event-weather/internal/pkg/metrics"
	"github.com/kgrigsby/event-weather/internal/pkg/store"
	"github.com/kgrigsby/event-weather/internal/pkg/store/xpgx"
	"github.com/kgrigsby/event-weather/internal/provider/fcc"
	"github.com/kgrigsby/event-weather/internal/provider/noaa"
	"github.com/kgrigsby/event-weather/internal/provider/places"
	"github.com/kgrigsby/event-weather/internal/provider/sunrise"
	"github.com/kgrigsby/event-weather/internal/service/forecast"
	"github.com/kgrigsby/event-weather/internal/service/geo"
	"github.com/kgrigsby/event-weather/internal/service/search"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal(ctx, err)
	}

	if err := logger.Init(cfg.LogLevel); err != nil {
		logger.Fatal(ctx, err)
	}
	defer logger.Sync()

	pool := connectWithRetry(ctx, cfg.DatabaseURL)
	defer pool.Close()

	m := metrics.New()

	// One outbound client for all providers; the timeout bounds each
	// upstream round trip.
	httpClient := &http.Client{Timeout: cfg.ProviderTimeout}

	geoService := geo.NewGeoService(
		places.NewClient(cfg.GoogleAPIKey, httpClient, m),
		fcc.NewClient(httpClient, m),
		sunrise.NewClient(httpClient, m),
	)
	forecastService := forecast.NewForecastService(noaa.NewClient(cfg.NOAAToken, httpClient, m))
	searchService := search.NewSearchService(store.NewStore(xpgx.Wrap(pool)), clockwork.NewRealClock(), m)

	apiService, err := api.NewAPIService(geoService, forecastService, searchService)
	if err != nil {
		logger.Fatal(ctx, err)
	}

	go apiService.Serve(cfg.HTTPAddr)
	logger.Infof(ctx, "listening on %s", cfg.HTTPAddr)

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := apiService.Shutdown(shutdownCtx); err != nil {
		logger.Errorf(shutdownCtx, "shutdown: %s", err.Error())
	}
}

// connectWithRetry keeps dialing Postgres until it answers or the
// process is signalled; the container orchestration frequently starts
// the database after the service.
func connectWithRetry(ctx context.Context, dsn string) *pgxpool.Pool {
	var pool *pgxpool.Pool

	err := backoff.Retry(
		func() error {
			var connErr error
			pool, connErr = xpgx.NewPool(ctx, dsn)
			if connErr != nil {
				logger.Warnf(ctx, "database not ready: %s", connErr.Error())
			}
			return connErr
		},
		backoff.WithContext(
			backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 10),
			ctx,
		),
	)
	if err != nil {
		logger.Fatal(ctx, err)
	}

	return pool
}
