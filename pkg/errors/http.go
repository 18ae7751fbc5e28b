package errors

import (
	stderrors "errors"
	"net/http"
)

// HTTPError is an error that carries the HTTP status it should be reported with.
type HTTPError struct {
	Code    int
	Message string
}

// NewHTTPError creates a new HTTPError.
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{Code: code, Message: message}
}

func (e *HTTPError) Error() string {
	return e.Message
}

var (
	ErrUnauthorized        = NewHTTPError(http.StatusUnauthorized, "Unauthorized")
	ErrInternalServerError = NewHTTPError(http.StatusInternalServerError, "Something went wrong")
)

// AsHTTPError unwraps err into an HTTPError when possible.
func AsHTTPError(err error) (*HTTPError, bool) {
	var httpErr *HTTPError
	if stderrors.As(err, &httpErr) {
		return httpErr, true
	}
	return nil, false
}
