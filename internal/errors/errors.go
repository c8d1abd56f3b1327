package gerr

import (
	"errors"
	"fmt"
	"net/http"
)

// Error is an API-facing error carrying an HTTP status and a machine code.
// The HTTP layer renders it as {"error":{"code","message"}}; anything that
// is not an *Error is rendered as INTERNAL_ERROR so raw internals never
// reach the caller.
type Error struct {
	Status  int
	Code    string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// New creates a typed API error.
func New(status int, code, message string) *Error {
	return &Error{Status: status, Code: code, Message: message}
}

// Newf creates a typed API error with a formatted message.
func Newf(status int, code, format string, args ...any) *Error {
	return New(status, code, fmt.Sprintf(format, args...))
}

// As extracts a typed API error from an error chain.
func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

var (
	ErrWaitlistNotFound = New(http.StatusNotFound, "WAITLIST_NOT_FOUND", "waitlist not found")
	ErrSignupNotFound   = New(http.StatusNotFound, "SIGNUP_NOT_FOUND", "signup not found")
	ErrNotFound         = New(http.StatusNotFound, "NOT_FOUND", "not found")
	ErrAlreadySignedUp  = New(http.StatusConflict, "ALREADY_SIGNED_UP", "this email is already on the waitlist")
	ErrAlreadyExists    = New(http.StatusConflict, "ALREADY_EXISTS", "resource already exists")
	ErrInvalidEmail     = New(http.StatusBadRequest, "INVALID_EMAIL", "a valid email address is required")
	ErrUnauthorized     = New(http.StatusUnauthorized, "UNAUTHORIZED", "authentication required")
	ErrForbidden        = New(http.StatusForbidden, "FORBIDDEN", "origin not allowed")
	ErrRateLimited      = New(http.StatusTooManyRequests, "RATE_LIMITED", "too many requests, please try again later")
	ErrEmail            = New(http.StatusInternalServerError, "EMAIL_ERROR", "failed to send email, please try again")
	ErrInternal         = New(http.StatusInternalServerError, "INTERNAL_ERROR", "something went wrong")
)

// Validation creates a VALIDATION_ERROR naming the violated field.
func Validation(message string) *Error {
	return New(http.StatusBadRequest, "VALIDATION_ERROR", message)
}

// InvalidCredentials is returned when a login attempt fails.
func InvalidCredentials() *Error {
	return New(http.StatusUnauthorized, "INVALID_CREDENTIALS", "invalid username or password")
}
