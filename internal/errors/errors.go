package apperrors

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"
)

// Application exit codes.
const (
	ExitSuccess       = 0   // Successful execution.
	ExitErrorGeneric  = 1   // Generic error.
	ExitErrorTimeout  = 2   // The run exceeded its timeout.
	ExitErrorMismatch = 3   // A self-test check failed.
	ExitErrorConfig   = 4   // Invalid flags, environment or operands.
	ExitErrorCanceled = 130 // Interrupted, e.g. by SIGINT.
)

// ConfigError reports invalid user configuration.
type ConfigError struct {
	Message string
}

func (e ConfigError) Error() string { return e.Message }

// NewConfigError returns a ConfigError with a formatted message.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// ValidationError reports an operand that failed validation, identified by
// the flag or field it came from.
type ValidationError struct {
	Field   string
	Message string
	// Cause is the underlying error, if any.
	Cause error
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error for %q: %s", e.Field, e.Message)
}

// Unwrap returns the underlying cause.
func (e ValidationError) Unwrap() error { return e.Cause }

// DivisionError wraps a division failure with the strategy that produced it.
type DivisionError struct {
	Strategy string
	Cause    error
}

func (e DivisionError) Error() string {
	return fmt.Sprintf("division with strategy %q failed: %v", e.Strategy, e.Cause)
}

// Unwrap returns the underlying cause.
func (e DivisionError) Unwrap() error { return e.Cause }

// MismatchError reports self-test failures. Strategy is empty when the
// failures span several strategies.
type MismatchError struct {
	Strategy string
	Failures int
}

func (e MismatchError) Error() string {
	if e.Strategy == "" {
		return fmt.Sprintf("%d self-test check(s) failed", e.Failures)
	}
	return fmt.Sprintf("%d self-test check(s) failed for strategy %q", e.Failures, e.Strategy)
}

// TimeoutError reports an operation that exceeded its time limit.
type TimeoutError struct {
	Operation string
	Limit     time.Duration
}

func (e TimeoutError) Error() string {
	return fmt.Sprintf("operation %q timed out after %s", e.Operation, e.Limit)
}

// Unwrap lets errors.Is match context.DeadlineExceeded.
func (e TimeoutError) Unwrap() error { return context.DeadlineExceeded }

// WrapError adds context to err with %w. It returns nil for a nil err.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// IsContextError reports whether err is a cancellation or deadline error.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// ExitCode maps an error to the process exit code.
func ExitCode(err error) int {
	var (
		configErr     ConfigError
		validationErr ValidationError
		mismatchErr   MismatchError
	)
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, context.DeadlineExceeded):
		return ExitErrorTimeout
	case errors.Is(err, context.Canceled):
		return ExitErrorCanceled
	case errors.As(err, &mismatchErr):
		return ExitErrorMismatch
	case errors.As(err, &configErr), errors.As(err, &validationErr):
		return ExitErrorConfig
	default:
		return ExitErrorGeneric
	}
}

// ColorProvider supplies the ANSI sequences used by HandleError.
type ColorProvider interface {
	Red() string
	Yellow() string
	Reset() string
}

// HandleError prints a one-line description of err to out and returns its
// exit code. A nil err prints nothing.
func HandleError(err error, duration time.Duration, out io.Writer, colors ColorProvider) int {
	code := ExitCode(err)
	switch code {
	case ExitSuccess:
	case ExitErrorTimeout:
		fmt.Fprintf(out, "%sTimed out after %s: %v%s\n", colors.Yellow(), duration, err, colors.Reset())
	case ExitErrorCanceled:
		fmt.Fprintf(out, "%sCanceled after %s.%s\n", colors.Yellow(), duration, colors.Reset())
	default:
		fmt.Fprintf(out, "%sError: %v%s\n", colors.Red(), err, colors.Reset())
	}
	return code
}
