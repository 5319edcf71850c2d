package apperror

import (
	"fmt"
	"net/http"
	"strings"
)

// Error is an application error carrying an HTTP status and one or more
// user-facing messages. Validation errors hold the full list of field
// failures collected before returning.
type Error struct {
	Status   int      `json:"status"`
	Messages []string `json:"messages"`
	Err      error    `json:"-"`
}

func (e *Error) Error() string {
	if len(e.Messages) > 0 {
		return strings.Join(e.Messages, "; ")
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return http.StatusText(e.Status)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) StatusCode() int {
	return e.Status
}

// Validation wraps a list of field-level messages as a 400.
func Validation(messages ...string) *Error {
	return &Error{
		Status:   http.StatusBadRequest,
		Messages: messages,
	}
}

// NotFound covers both genuinely missing records and cross-owner access,
// so existence is never confirmed to unauthorized callers.
func NotFound(resource string) *Error {
	return &Error{
		Status:   http.StatusNotFound,
		Messages: []string{fmt.Sprintf("%s not found", resource)},
	}
}

func Unauthorized(message string) *Error {
	return &Error{
		Status:   http.StatusUnauthorized,
		Messages: []string{message},
	}
}

// Internal hides the underlying error from the response; the detail is
// only available for logging via Unwrap.
func Internal(err error) *Error {
	return &Error{
		Status:   http.StatusInternalServerError,
		Messages: []string{"internal server error"},
		Err:      err,
	}
}
