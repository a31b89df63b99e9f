package apperr

import (
	"errors"
	"net/http"
)

// DefaultMessage is shown whenever a failure carries no message of its own.
const DefaultMessage = "Something went wrong!"

// default error is internal service error at handler level
// if error has different status code use ErrorWithStatusCode
type ErrorWithStatusCode struct {
	Message    string
	StatusCode int
}

func (e *ErrorWithStatusCode) Error() string {
	return e.Message
}

func NotFound(message string) *ErrorWithStatusCode {
	return &ErrorWithStatusCode{Message: message, StatusCode: http.StatusNotFound}
}

func BadRequest(message string) *ErrorWithStatusCode {
	return &ErrorWithStatusCode{Message: message, StatusCode: http.StatusBadRequest}
}

// StatusCode extracts the status carried by err, defaulting to 500.
func StatusCode(err error) int {
	var e *ErrorWithStatusCode
	if errors.As(err, &e) {
		return e.StatusCode
	}
	return http.StatusInternalServerError
}

// Message extracts the user-facing message carried by err. Errors that
// carry no explicit status are internal; their text is replaced by
// DefaultMessage so internals never leak into a rendered page.
func Message(err error) string {
	var e *ErrorWithStatusCode
	if errors.As(err, &e) {
		if e.Message == "" {
			return DefaultMessage
		}
		return e.Message
	}
	return DefaultMessage
}
