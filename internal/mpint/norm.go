// Normalization and sign logic.

package mpint

import apperrors "github.com/agbru/mpint/internal/errors"

// Clamp strips high-order zero limbs by walking used down until the top
// limb is nonzero, and corrects the sign of zero. It is the sole mechanism
// restoring the "top limb nonzero" invariant and must run after any
// operation that can leave leading zeros (subtraction shrinking the
// magnitude, masked random fills, truncating copies). Idempotent.
func (z *Int) Clamp() {
	for z.used > 0 && z.limbs[z.used-1] == 0 {
		z.used--
	}
	if z.used == 0 {
		z.sign = NonNegative
	}
}

// Abs sets z to the absolute value of x. With z == x only the sign flips in
// place; otherwise x is deep-copied first. The immutable check runs before
// any mutation in either case.
func (z *Int) Abs(x *Int) error {
	if z == nil || x == nil {
		return apperrors.NilOperandError{Operation: "Abs"}
	}
	if z.IsImmutable() {
		return apperrors.ImmutableError{Operation: "Abs"}
	}
	if z != x {
		if err := z.Copy(x, false); err != nil {
			return err
		}
	}
	z.sign = NonNegative
	return nil
}

// Neg sets z to the negation of x. Zero is special-cased so it never
// acquires a negative sign; otherwise a nonnegative x turns Negative and a
// negative x turns NonNegative.
func (z *Int) Neg(x *Int) error {
	if z == nil || x == nil {
		return apperrors.NilOperandError{Operation: "Neg"}
	}
	if z.IsImmutable() {
		return apperrors.ImmutableError{Operation: "Neg"}
	}
	// Decide from x before any copy so aliasing cannot skew the answer.
	toNegative := x.used != 0 && x.sign == NonNegative
	if z != x {
		if err := z.Copy(x, false); err != nil {
			return err
		}
	}
	if toNegative {
		z.sign = Negative
	} else {
		z.sign = NonNegative
	}
	return nil
}
