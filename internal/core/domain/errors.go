package domain

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	ErrInvalidEnum        = errors.New("invalid enumerated value")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")
	ErrAddressNotFound    = errors.New("address not found")
	ErrInvalidResetToken  = errors.New("invalid or expired reset token")
	ErrMissingID          = errors.New("identifier is required")
)

// ValidationError reports an enumerated field holding a value outside its set.
// It matches ErrInvalidEnum with errors.Is.
type ValidationError struct {
	Field   string
	Value   string
	Allowed []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s must be one of [%s], got %q",
		ErrInvalidEnum, e.Field, strings.Join(e.Allowed, ", "), e.Value)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidEnum
}

// APIError is a non-2xx answer from the carrier API.
type APIError struct {
	StatusCode int
	Messages   []string
}

func (e *APIError) Error() string {
	if len(e.Messages) == 0 {
		return fmt.Sprintf("carrier api: %d %s", e.StatusCode, http.StatusText(e.StatusCode))
	}
	return fmt.Sprintf("carrier api: %d: %s", e.StatusCode, strings.Join(e.Messages, "; "))
}

// TransportError means the HTTP exchange itself failed: connection, timeout,
// or a response body that could not be decoded.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("carrier transport: %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }
