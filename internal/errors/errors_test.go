package apperrors

import (
	"errors"
	"strings"
	"testing"
)

// TestErrorMessages verifies the formatted output of each error type.
func TestErrorMessages(t *testing.T) {
	t.Run("NilOperandError names the operation", func(t *testing.T) {
		err := NilOperandError{Operation: "Grow"}
		if got := err.Error(); got != "Grow: nil operand" {
			t.Errorf("Error() = %q, want %q", got, "Grow: nil operand")
		}
	})

	t.Run("ArgumentError names the parameter", func(t *testing.T) {
		err := NewArgumentError("count", "must be in [1, %d], got %d", 64, 0)
		if !strings.Contains(err.Error(), `"count"`) {
			t.Errorf("Error() = %q, want parameter name in message", err.Error())
		}
		if !strings.Contains(err.Error(), "got 0") {
			t.Errorf("Error() = %q, want formatted detail", err.Error())
		}
	})

	t.Run("AllocationError reports the requested capacity", func(t *testing.T) {
		err := AllocationError{RequestedLimbs: 128}
		if !strings.Contains(err.Error(), "128") {
			t.Errorf("Error() = %q, want requested limb count", err.Error())
		}
	})

	t.Run("ImmutableError names the operation", func(t *testing.T) {
		err := ImmutableError{Operation: "SetUint64"}
		if !strings.Contains(err.Error(), "SetUint64") {
			t.Errorf("Error() = %q, want operation name", err.Error())
		}
	})
}

// TestWrapError verifies wrapping preserves the error chain.
func TestWrapError(t *testing.T) {
	t.Run("nil error returns nil", func(t *testing.T) {
		if WrapError(nil, "context") != nil {
			t.Error("WrapError(nil, ...) should return nil")
		}
	})

	t.Run("wrapped error is unwrappable", func(t *testing.T) {
		inner := AllocationError{RequestedLimbs: 64}
		wrapped := WrapError(inner, "growing accumulator")

		var target AllocationError
		if !errors.As(wrapped, &target) {
			t.Fatal("errors.As should find the AllocationError")
		}
		if target.RequestedLimbs != 64 {
			t.Errorf("RequestedLimbs = %d, want 64", target.RequestedLimbs)
		}
		if !strings.Contains(wrapped.Error(), "growing accumulator") {
			t.Errorf("Error() = %q, want wrapping context", wrapped.Error())
		}
	})
}

// TestClassHelpers verifies IsImmutable and IsArgument across wrapping.
func TestClassHelpers(t *testing.T) {
	immutable := ImmutableError{Operation: "Clear"}
	argument := ArgumentError{Param: "bits", Message: "must be positive"}

	if !IsImmutable(immutable) {
		t.Error("IsImmutable(ImmutableError) = false, want true")
	}
	if !IsImmutable(WrapError(immutable, "resetting constant")) {
		t.Error("IsImmutable should see through wrapping")
	}
	if IsImmutable(argument) {
		t.Error("IsImmutable(ArgumentError) = true, want false")
	}

	if !IsArgument(argument) {
		t.Error("IsArgument(ArgumentError) = false, want true")
	}
	if IsArgument(immutable) {
		t.Error("IsArgument(ImmutableError) = true, want false")
	}
}

// TestFirst verifies the first-error-wins helper.
func TestFirst(t *testing.T) {
	errA := NewArgumentError("a", "bad")
	errB := NewArgumentError("b", "worse")

	if First(nil, nil) != nil {
		t.Error("First of all-nil should be nil")
	}
	if got := First(nil, errA, errB); !errors.Is(got, errA) {
		t.Errorf("First = %v, want first non-nil error %v", got, errA)
	}
	if First() != nil {
		t.Error("First of no errors should be nil")
	}
}
