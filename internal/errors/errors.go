package apperrors

import (
	"errors"
	"fmt"
)

// Application exit codes define the standard exit statuses for the mpcalc
// tool. These codes are used to signal the outcome of the program execution
// to the OS.
const (
	ExitSuccess      = 0   // Indicates successful execution.
	ExitErrorGeneric = 1   // Indicates a generic error.
	ExitErrorConfig  = 4   // Indicates a configuration error.
	ExitErrorCancel  = 130 // Indicates the operation was canceled (e.g., SIGINT).
)

// NilOperandError reports that a required integer handle was nil. Every
// kernel operation validates its operands before touching storage, so a nil
// handle is always caught before any mutation happens.
type NilOperandError struct {
	// Operation is the name of the operation that received the nil handle.
	Operation string
}

// Error returns a formatted message naming the offending operation.
//
// Returns:
//   - string: The error message string.
func (e NilOperandError) Error() string {
	return fmt.Sprintf("%s: nil operand", e.Operation)
}

// ArgumentError reports a parameter outside its valid domain, such as a bit
// offset past the end of a value, a bit count of zero, or a negative power.
type ArgumentError struct {
	// Param is the name of the offending parameter.
	Param string
	// Message explains why the value is invalid.
	Message string
}

// Error returns a formatted message describing the invalid argument.
//
// Returns:
//   - string: The error message string.
func (e ArgumentError) Error() string {
	return fmt.Sprintf("invalid argument %q: %s", e.Param, e.Message)
}

// NewArgumentError creates a new ArgumentError with a formatted message.
//
// Parameters:
//   - param: The name of the offending parameter.
//   - format: A format string (see fmt.Sprintf).
//   - a: Arguments to be formatted into the string.
//
// Returns:
//   - error: A new ArgumentError instance containing the formatted message.
func NewArgumentError(param, format string, a ...any) error {
	return ArgumentError{Param: param, Message: fmt.Sprintf(format, a...)}
}

// AllocationError reports that digit-buffer growth could not satisfy the
// requested capacity. A failed growth leaves the target at its prior,
// valid size.
type AllocationError struct {
	// RequestedLimbs is the capacity, in limbs, that could not be obtained.
	RequestedLimbs int
}

// Error returns a formatted message describing the allocation failure.
//
// Returns:
//   - string: The error message string.
func (e AllocationError) Error() string {
	return fmt.Sprintf("allocation failed: could not grow to %d limbs", e.RequestedLimbs)
}

// ImmutableError reports a mutating operation targeting an integer flagged
// immutable, including the process-wide singleton constants. The target is
// left untouched.
type ImmutableError struct {
	// Operation is the name of the mutating operation that was rejected.
	Operation string
}

// Error returns a formatted message naming the rejected operation.
//
// Returns:
//   - string: The error message string.
func (e ImmutableError) Error() string {
	return fmt.Sprintf("%s: assignment to immutable value", e.Operation)
}

// ConfigError represents a user configuration error, such as invalid flags
// or values. It indicates that the tool cannot proceed due to incorrect
// user input.
type ConfigError struct {
	// Message explains the specific configuration error.
	Message string
}

// Error returns the error message for a ConfigError.
//
// Returns:
//   - string: The error message string.
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

// IsImmutable checks if the error (or any error it wraps) is an
// ImmutableError.
//
// Parameters:
//   - err: The error to check.
//
// Returns:
//   - bool: true if the error chain contains an ImmutableError.
func IsImmutable(err error) bool {
	var target ImmutableError
	return errors.As(err, &target)
}

// IsArgument checks if the error (or any error it wraps) is an
// ArgumentError.
//
// Parameters:
//   - err: The error to check.
//
// Returns:
//   - bool: true if the error chain contains an ArgumentError.
func IsArgument(err error) bool {
	var target ArgumentError
	return errors.As(err, &target)
}

// First returns the first non-nil error from a best-effort pass over many
// results. Variadic kernel helpers process every handle they are given and
// report the earliest failure, matching the "first error wins, all entries
// still visited" contract.
//
// Parameters:
//   - errs: The per-handle results, in processing order.
//
// Returns:
//   - error: The first non-nil entry, or nil if all succeeded.
func First(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
