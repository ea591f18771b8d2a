package apperrors

import (
	"context"
	"errors"
	"flag"
	"fmt"
)

// Process exit codes.
const (
	ExitSuccess       = 0   // Successful run.
	ExitErrorGeneric  = 1   // Any other failure, including I/O errors.
	ExitErrorTimeout  = 2   // The run exceeded its timeout.
	ExitErrorConfig   = 4   // Invalid flags, environment or config file.
	ExitErrorCanceled = 130 // Interrupted (e.g., SIGINT).
)

// ConfigError reports invalid user configuration.
type ConfigError struct {
	Message string
}

func (e ConfigError) Error() string { return e.Message }

// NewConfigError creates a ConfigError with a formatted message.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// ValidationError reports a rejected request parameter.
type ValidationError struct {
	// Field is the name of the offending parameter.
	Field string
	// Message explains the rejection.
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error for %q: %s", e.Field, e.Message)
}

// IOError wraps a failure to read input or write output.
type IOError struct {
	// Op describes what was being done, e.g. "read stdin".
	Op string
	// Path is the file involved, if any.
	Path  string
	Cause error
}

func (e IOError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Cause)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Cause)
}

// Unwrap returns the underlying cause.
func (e IOError) Unwrap() error { return e.Cause }

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

// ExitCodeFor maps an error to the process exit code.
//
// Parameters:
//   - err: The error returned by a run, possibly nil.
//
// Returns:
//   - int: One of the Exit* constants.
func ExitCodeFor(err error) int {
	var cfgErr ConfigError
	switch {
	case err == nil, errors.Is(err, flag.ErrHelp):
		return ExitSuccess
	case errors.Is(err, context.DeadlineExceeded):
		return ExitErrorTimeout
	case errors.Is(err, context.Canceled):
		return ExitErrorCanceled
	case errors.As(err, &cfgErr):
		return ExitErrorConfig
	default:
		return ExitErrorGeneric
	}
}
