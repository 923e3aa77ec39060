package apperrors

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Application exit codes define the standard exit statuses for the application.
// These codes are used to signal the outcome of the program execution to the OS.
const (
	ExitSuccess       = 0   // Indicates successful execution.
	ExitErrorGeneric  = 1   // Indicates a generic error.
	ExitErrorTimeout  = 2   // Indicates the operation timed out.
	ExitErrorMismatch = 3   // Indicates a product mismatch between multiply strategies.
	ExitErrorConfig   = 4   // Indicates a configuration error.
	ExitErrorCanceled = 130 // Indicates the operation was canceled (e.g., SIGINT).
)

// ConfigError represents a user configuration error, such as invalid flags or
// values. It indicates that the application cannot proceed due to incorrect user input.
type ConfigError struct {
	// Message explains the specific configuration error.
	Message string
}

// Error returns the error message for a ConfigError.
func (e ConfigError) Error() string { return e.Message }

// NewConfigError creates a new ConfigError with a formatted message.
//
// Parameters:
//   - format: A format string (see fmt.Sprintf).
//   - a: Arguments to be formatted into the string.
//
// Returns:
//   - error: A new ConfigError instance containing the formatted message.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// ValidationError represents an input validation failure. It identifies which
// field failed validation and provides a human-readable explanation.
type ValidationError struct {
	// Field is the name of the field that failed validation.
	Field string
	// Message explains the validation failure.
	Message string
}

// Error returns a formatted message describing the validation failure.
func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error for %q: %s", e.Field, e.Message)
}

// MismatchError reports a verification discrepancy: two multiply strategies
// produced different 128-bit products for the same operand pair. It carries
// the exact operands and both products so the diagnostic output can reproduce
// the failing case.
type MismatchError struct {
	// A and B are the 64-bit operands of the failing case.
	A, B uint64
	// Got is the fixed-width hex form of the product from the strategy under test.
	Got string
	// Want is the fixed-width hex form of the reference product.
	Want string
	// Failures is the aggregate failure count over the whole corpus.
	Failures int
}

// Error returns a formatted message describing the first mismatch and the
// aggregate failure count.
func (e MismatchError) Error() string {
	return fmt.Sprintf("product mismatch for %#x * %#x: got %s, want %s (%d failing case(s) in corpus)",
		e.A, e.B, e.Got, e.Want, e.Failures)
}

// TimeoutError represents an operation timeout. It captures the operation
// name and the duration limit that was exceeded.
type TimeoutError struct {
	// Operation is the name of the operation that timed out.
	Operation string
	// Limit is the duration after which the operation was considered timed out.
	Limit time.Duration
}

// Error returns a formatted message describing the timeout.
func (e TimeoutError) Error() string {
	return fmt.Sprintf("operation %q timed out after %s", e.Operation, e.Limit)
}

// WrapError wraps an error with additional context using fmt.Errorf and %w.
// This allows the wrapped error to be unwrapped with errors.Unwrap() and
// checked with errors.Is() and errors.As().
//
// Parameters:
//   - err: The error to wrap.
//   - format: A format string for the context message.
//   - args: Arguments for the format string.
//
// Returns:
//   - error: The wrapped error, or nil if err is nil.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// IsContextError checks if the error is a context cancellation or deadline
// exceeded error.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// ExitCodeFor maps an error to the application exit code it should produce.
// Context cancellation maps to the conventional 130, deadline expiry to the
// timeout code, mismatches and configuration problems to their dedicated
// codes, and everything else to the generic failure code.
func ExitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var mismatch MismatchError
	var config ConfigError
	var validation ValidationError
	var timeout TimeoutError

	switch {
	case errors.Is(err, context.Canceled):
		return ExitErrorCanceled
	case errors.Is(err, context.DeadlineExceeded), errors.As(err, &timeout):
		return ExitErrorTimeout
	case errors.As(err, &mismatch):
		return ExitErrorMismatch
	case errors.As(err, &config), errors.As(err, &validation):
		return ExitErrorConfig
	default:
		return ExitErrorGeneric
	}
}
