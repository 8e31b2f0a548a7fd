package api

import (
	"errors"
	"fmt"
)

// Sentinel errors for the failure classes callers branch on.
// Match with errors.Is.
var (
	// ErrUnauthorized covers 401 responses: invalid credentials on
	// login, or an invalid/expired token on any bearer call.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNotFound covers 404 responses on single-record fetches.
	ErrNotFound = errors.New("not found")

	// ErrUnavailable covers transport failures and 5xx responses.
	ErrUnavailable = errors.New("server unavailable")
)

// StatusError is any other 4xx response, carrying the server-provided
// message (typically an upstream validation rejection).
type StatusError struct {
	Status  int
	Message string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("api status %d: %s", e.Status, e.Message)
}
