package config

import (
	"errors"
	"time"

	"github.com/kgrigsby/event-weather/internal/pkg/constants"
	"github.com/spf13/viper"
)

// Config is the process configuration, read once at startup.
type Config struct {
	HTTPAddr        string
	DatabaseURL     string
	GoogleAPIKey    string
	NOAAToken       string
	AuthSecret      string
	ProviderTimeout time.Duration
	LogLevel        string
}

// Load binds environment variables through viper and applies defaults.
// The Google key and NOAA token are deliberately not required here: a
// missing credential is surfaced per-request by the provider that needs
// it, so the rest of the API keeps working.
func Load() (*Config, error) {
	viper.AutomaticEnv()

	viper.SetDefault(constants.ViperHTTPAddr, ":8080")
	viper.SetDefault(constants.ViperProviderTimeout, "8s")
	viper.SetDefault(constants.ViperLogLevel, "info")

	cfg := &Config{
		HTTPAddr:        viper.GetString(constants.ViperHTTPAddr),
		DatabaseURL:     viper.GetString(constants.ViperDatabaseURL),
		GoogleAPIKey:    viper.GetString(constants.ViperGoogleAPIKey),
		NOAAToken:       viper.GetString(constants.ViperNOAAToken),
		AuthSecret:      viper.GetString(constants.ViperAuthSecret),
		ProviderTimeout: viper.GetDuration(constants.ViperProviderTimeout),
		LogLevel:        viper.GetString(constants.ViperLogLevel),
	}

	if cfg.DatabaseURL == "" {
		return nil, errors.New("DATABASE_URL is required")
	}
	if cfg.ProviderTimeout <= 0 {
		return nil, errors.New("PROVIDER_TIMEOUT must be positive")
	}

	return cfg, nil
}
