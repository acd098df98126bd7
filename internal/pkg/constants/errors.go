package constants

import "net/http"

// CodedError is an error carrying the HTTP status it should render as.
// The api error handler unwraps to the first CodedError it finds.
type CodedError struct {
	code int
	msg  string
}

func NewCodedError(code int, msg string) *CodedError {
	return &CodedError{code: code, msg: msg}
}

func (e *CodedError) Error() string {
	return e.msg
}

func (e *CodedError) Code() int {
	return e.code
}

var (
	ErrMissingLocation     = NewCodedError(http.StatusBadRequest, "Missing Location")
	ErrAPIKeyNotConfigured = NewCodedError(http.StatusInternalServerError, "API key not configured")
	ErrNoGeocodeResults    = NewCodedError(http.StatusInternalServerError, "no results for location")
	ErrInvalidCoordinates  = NewCodedError(http.StatusBadRequest, "lat and lng are required")
	ErrInvalidDate         = NewCodedError(http.StatusBadRequest, "date must be YYYY-MM-DD")
	ErrMissingRegionCode   = NewCodedError(http.StatusBadRequest, "regionCode is required")
	ErrMissingUserID       = NewCodedError(http.StatusUnauthorized, "User must be logged in.")
	ErrPersistence         = NewCodedError(http.StatusBadRequest, "failed to persist search")
	ErrUnauthorized        = NewCodedError(http.StatusUnauthorized, "unauthorized")
	ErrDBNotFound          = NewCodedError(http.StatusNotFound, "not found")
)
