// Package apperrors defines structured error types for the integer kernel,
// allowing for a clear distinction between error classes (nil operand,
// invalid argument, allocation failure, assignment to an immutable value)
// and for carrying the underlying cause.
//
// Error Wrapping Guidelines:
// This package follows Go's error wrapping conventions using fmt.Errorf with %w.
// Callers inspect error classes with errors.As, or through the IsImmutable and
// IsArgument helpers.
package apperrors
