package api

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrUnauthorized is the uniform "not authenticated" signal. Every 401
// unwraps to it so callers can redirect to login without inspecting codes.
var ErrUnauthorized = errors.New("not authenticated")

// Error is a normalized non-2xx API response. Message carries the server's
// own message verbatim when the body had one.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	if e.StatusCode == http.StatusUnauthorized {
		return ErrUnauthorized
	}
	return nil
}

// newError builds the fallback message when the body carried none
func newError(statusCode int, message string) *Error {
	if message == "" {
		message = fmt.Sprintf("HTTP error! status: %d", statusCode)
	}
	return &Error{StatusCode: statusCode, Message: message}
}

func statusOf(err error) int {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}

// IsUnauthorized reports an expired/missing session (401)
func IsUnauthorized(err error) bool {
	return errors.Is(err, ErrUnauthorized)
}

// IsNotFound reports a missing resource (404)
func IsNotFound(err error) bool {
	return statusOf(err) == http.StatusNotFound
}

// IsConflict reports a state conflict such as a seat already taken (409)
func IsConflict(err error) bool {
	return statusOf(err) == http.StatusConflict
}

// IsValidation reports a rejected payload (400)
func IsValidation(err error) bool {
	return statusOf(err) == http.StatusBadRequest
}
