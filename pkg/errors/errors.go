package errors

import (
	"errors"
	"fmt"
)

// Upstream API error taxonomy. Clients return these sentinels (wrapped with
// context) so handlers can translate transport outcomes into envelope
// messages without inspecting HTTP details themselves.

var (
	// ErrNotFound indicates the upstream resource does not exist (HTTP 404)
	ErrNotFound = errors.New("resource not found")

	// ErrUnavailable indicates a transport-level failure: timeout, DNS,
	// connection refused. Callers may retry; the input was not the problem.
	ErrUnavailable = errors.New("service unavailable")

	// ErrNotConfigured indicates a required credential is missing
	ErrNotConfigured = errors.New("not configured")

	// ErrInvalidInput indicates invalid input parameters
	ErrInvalidInput = errors.New("invalid input")
)

// StatusError carries a non-2xx HTTP status that is not a 404.
type StatusError struct {
	StatusCode int
	Body       string
}

// Error implements the error interface
func (e *StatusError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("unexpected status %d: %s", e.StatusCode, e.Body)
	}
	return fmt.Sprintf("unexpected status %d", e.StatusCode)
}

// APIError carries an error reported inside an otherwise-valid upstream
// payload (e.g. the exchange-rate API's "error-type" field).
type APIError struct {
	Reason string
}

// Error implements the error interface
func (e *APIError) Error() string {
	return e.Reason
}

// Helper functions

// Wrap wraps an error with a message
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf wraps an error with a formatted message
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// New creates a new error
func New(message string) error {
	return errors.New(message)
}

// Is checks if err is or wraps target
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain matching target
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
