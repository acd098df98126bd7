package domain

// LocationResult is the first match from the place-search provider.
// Ephemeral: computed per request, never stored.
type LocationResult struct {
	Name             string  `json:"location"`
	FormattedAddress string  `json:"formattedAddress"`
	Lat              float64 `json:"lat"`
	Lng              float64 `json:"lng"`
}

// RegionLookup is a county FIPS code with a degraded-mode marker.
// Fallback is true when the boundary lookup failed and the fixed
// default code was substituted.
type RegionLookup struct {
	Code     string `json:"regionCode"`
	Fallback bool   `json:"fallback"`
}

// SolarTimes holds normalized sunrise/sunset clock times ("H:MM AM/PM").
// A nil pointer means the upstream string did not match the expected
// format. Fallback is true when the provider was unreachable and the
// fixed default was substituted.
type SolarTimes struct {
	Sunrise  *string `json:"sunrise"`
	Sunset   *string `json:"sunset"`
	Fallback bool    `json:"fallback"`
}

// ErrorResponse is the body rendered by the central HTTP error handler.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  int    `json:"code,omitempty"`
}
