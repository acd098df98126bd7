package constants

// Viper configuration keys.
const (
	ViperHTTPAddr        = "http_addr"
	ViperDatabaseURL     = "database_url"
	ViperGoogleAPIKey    = "google_api_key"
	ViperNOAAToken       = "noaa_token"
	ViperAuthSecret      = "auth_secret"
	ViperProviderTimeout = "provider_timeout"
	ViperLogLevel        = "log_level"
)

// Echo context and cookie keys.
const (
	CtxKeyUserID       = "user_id"
	CookieKeyAuthToken = "auth_token"
)
