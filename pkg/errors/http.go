package errors

import "net/http"

// HTTPError is an error that knows which status code and error code it maps to.
type HTTPError struct {
	StatusCode int
	Code       int
	Message    string
}

// NewHTTPError creates an HTTPError whose error code equals the status code.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Code:       statusCode,
		Message:    message,
	}
}

func (e *HTTPError) Error() string {
	return e.Message
}

var (
	ErrBadRequest          = NewHTTPError(http.StatusBadRequest, "Bad request")
	ErrNotFound            = NewHTTPError(http.StatusNotFound, "Not found")
	ErrTooManyRequests     = NewHTTPError(http.StatusTooManyRequests, "Too many requests")
	ErrServiceUnavailable  = NewHTTPError(http.StatusServiceUnavailable, "Service not ready")
	ErrInternalServerError = NewHTTPError(http.StatusInternalServerError, "Something went wrong")
)
