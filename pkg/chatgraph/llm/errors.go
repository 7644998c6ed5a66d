package llm

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnavailable indicates the model backend could not be reached or is
// refusing work (network failure, overload, rate limiting).
var ErrUnavailable = errors.New("model unavailable")

// Error wraps a failure from a text-generation backend.
type Error struct {
	// Op is the operation that failed ("complete").
	Op string
	// Err is the underlying error.
	Err error
	// Retryable indicates the failure is likely transient.
	Retryable bool
}

// NewError creates a new Error.
func NewError(op string, err error, retryable bool) *Error {
	return &Error{Op: op, Err: err, Retryable: retryable}
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("llm %s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *Error) Unwrap() error {
	return e.Err
}

// IsRetryable reports whether err is an *Error marked retryable.
func IsRetryable(err error) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Retryable
	}
	return false
}

// isRetryableMessage checks if an error message indicates a transient error.
func isRetryableMessage(errMsg string) bool {
	errLower := strings.ToLower(errMsg)
	return strings.Contains(errLower, "rate limit") ||
		strings.Contains(errLower, "timeout") ||
		strings.Contains(errLower, "overloaded") ||
		strings.Contains(errLower, "connection refused") ||
		strings.Contains(errLower, "429") ||
		strings.Contains(errLower, "503") ||
		strings.Contains(errLower, "529")
}
