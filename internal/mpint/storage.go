// This file is the storage manager: growth, shrinking, reset, and
// destruction of the digit buffer. Every other operation leans on Grow for
// lazy initialization, so this is the one place buffers are obtained and
// released.

package mpint

import (
	"github.com/agbru/mpint/internal/alloc"
	apperrors "github.com/agbru/mpint/internal/errors"
	"github.com/agbru/mpint/internal/metrics"
)

// Grow ensures the backing buffer holds at least
// max(DefaultDigits, z.Used(), minDigits) limbs, lazily allocating if the
// value is uninitialized. With allowShrink false the capacity never
// decreases; with it true the buffer is reallocated down to the target.
// A failed growth leaves z at its prior, valid size.
func (z *Int) Grow(minDigits int, allowShrink bool) error {
	if z == nil {
		return apperrors.NilOperandError{Operation: "Grow"}
	}
	metrics.GrowOps.Inc()

	target := DefaultDigits
	if z.used > target {
		target = z.used
	}
	if minDigits > target {
		target = minDigits
	}

	if z.limbs == nil {
		metrics.LazyInits.Inc()
	} else {
		if target == len(z.limbs) {
			return nil
		}
		if target < len(z.limbs) && !allowShrink {
			return nil
		}
	}

	a := alloc.Default()
	fresh := a.Alloc(target)
	if len(fresh) != target {
		a.Free(fresh)
		return apperrors.AllocationError{RequestedLimbs: target}
	}
	copy(fresh, z.limbs[:z.used])
	a.Free(z.limbs)
	z.limbs = fresh
	return nil
}

// Shrink reallocates the buffer down to the minimal footprint that keeps
// the value intact: max(DefaultDigits, z.Used()) limbs.
func (z *Int) Shrink() error {
	if z == nil {
		return apperrors.NilOperandError{Operation: "Shrink"}
	}
	return z.Grow(z.used, true)
}

// Clear resets z to zero: used limbs are scrubbed, the sign reverts to
// NonNegative, sentinel flags drop, and the buffer is grown (or, with
// minimize, shrunk) to the default size. This is also the canonical
// lazy-initialization path for an uninitialized value.
func (z *Int) Clear(minimize bool) error {
	if z == nil {
		return apperrors.NilOperandError{Operation: "Clear"}
	}
	if z.IsImmutable() {
		return apperrors.ImmutableError{Operation: "Clear"}
	}
	if z.limbs != nil {
		clear(z.limbs[:z.used])
	}
	z.used = 0
	z.sign = NonNegative
	z.flags &^= FlagInf | FlagNaN
	return z.Grow(DefaultDigits, minimize)
}

// lazyInit allocates default backing storage on first use. Not an error
// path: an uninitialized value is logically zero and every consuming
// operation accepts it.
func (z *Int) lazyInit() error {
	if z.limbs != nil {
		return nil
	}
	return z.Grow(DefaultDigits, false)
}

// Destroy scrubs and releases each argument's buffer, reverting it to the
// uninitialized state with all flags cleared. The pass is best-effort: every
// handle is processed and the first error (a nil handle) is reported.
// Destruction deliberately bypasses the immutable check; it is how the
// constant registry retires its singletons at shutdown.
func Destroy(zs ...*Int) error {
	var errs []error
	for _, z := range zs {
		if z == nil {
			errs = append(errs, apperrors.NilOperandError{Operation: "Destroy"})
			continue
		}
		if z.limbs != nil {
			alloc.Default().Free(z.limbs)
		}
		z.limbs = nil
		z.used = 0
		z.sign = NonNegative
		z.flags = 0
	}
	return apperrors.First(errs...)
}
