package errors

import (
	"fmt"
	"net/http"
)

// The service recognizes exactly three failure kinds. Every component
// surfaces one of these instead of a raw store error; the HTTP layer maps
// the status code.
const (
	CodeInvalidFilter    = "INVALID_FILTER"
	CodeNotFound         = "NOT_FOUND"
	CodeStoreUnavailable = "STORE_UNAVAILABLE"
)

var (
	ErrInvalidFilter = New(
		CodeInvalidFilter,
		"Invalid filter parameters",
		http.StatusBadRequest,
	)

	ErrNotFound = New(
		CodeNotFound,
		"Resource not found",
		http.StatusNotFound,
	)

	ErrStoreUnavailable = New(
		CodeStoreUnavailable,
		"Spatial store unavailable",
		http.StatusServiceUnavailable,
	)
)

// InvalidFilter builds an INVALID_FILTER error with a request-specific message.
func InvalidFilter(format string, args ...interface{}) *AppError {
	return New(CodeInvalidFilter, fmt.Sprintf(format, args...), http.StatusBadRequest)
}

// NotFound builds a NOT_FOUND error with a request-specific message.
func NotFound(format string, args ...interface{}) *AppError {
	return New(CodeNotFound, fmt.Sprintf(format, args...), http.StatusNotFound)
}
