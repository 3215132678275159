// Bit-level access across limb boundaries.

package mpint

import (
	"math/bits"

	apperrors "github.com/agbru/mpint/internal/errors"
)

// ExtractBits returns bits [offset, offset+count) of the logical bit-string
// as a machine word (limb 0 holds the least-significant bits). count must
// be in [1, 64] and the starting limb must be within the used range; limbs
// past the used range contribute zeros. Because LimbBits >= 64/3, the span
// touches at most three limbs.
func (z *Int) ExtractBits(offset, count int) (uint64, error) {
	if z == nil {
		return 0, apperrors.NilOperandError{Operation: "ExtractBits"}
	}
	if count < 1 || count > wordBits {
		return 0, apperrors.NewArgumentError("count", "must be in [1, %d], got %d", wordBits, count)
	}
	if offset < 0 {
		return 0, apperrors.NewArgumentError("offset", "must be nonnegative, got %d", offset)
	}
	limb := offset / LimbBits
	if limb >= z.used {
		return 0, apperrors.NewArgumentError("offset", "bit %d starts past the last significant limb", offset)
	}

	shift := offset % LimbBits
	v := z.limbs[limb] >> shift
	got := LimbBits - shift
	// Fold in higher limbs until the requested window is covered. got stays
	// below count <= 64, so the shift never reaches the word width.
	for next := limb + 1; got < count && next < z.used; next++ {
		v |= z.limbs[next] << got
		got += LimbBits
	}
	if count < wordBits {
		v &= 1<<count - 1
	}
	return v, nil
}

// BitLen reports the exact bit-length of the magnitude: 0 for zero,
// otherwise full limbs below the top plus the top limb's width.
func (z *Int) BitLen() int {
	if z == nil || z.used == 0 {
		return 0
	}
	return (z.used-1)*LimbBits + bits.Len64(z.limbs[z.used-1])
}

// TrailingZeros reports the position of the lowest set bit, or 0 for zero.
func (z *Int) TrailingZeros() int {
	if z == nil || z.used == 0 {
		return 0
	}
	for i := 0; i < z.used; i++ {
		if z.limbs[i] != 0 {
			return i*LimbBits + bits.TrailingZeros64(z.limbs[i])
		}
	}
	// Unclamped all-zero limbs: the value is zero.
	return 0
}

// SetPow2 builds 2^power directly: the buffer grows to hold the single set
// bit, everything below is zeroed, and exactly one bit is written. power
// must be in [0, MaxBits].
func (z *Int) SetPow2(power int) error {
	if z == nil {
		return apperrors.NilOperandError{Operation: "SetPow2"}
	}
	if z.IsImmutable() {
		return apperrors.ImmutableError{Operation: "SetPow2"}
	}
	if power < 0 || power > MaxBits {
		return apperrors.NewArgumentError("power", "must be in [0, %d], got %d", MaxBits, power)
	}
	need := power/LimbBits + 1
	if err := z.Grow(need, false); err != nil {
		return err
	}
	top := need
	if z.used > top {
		top = z.used
	}
	clear(z.limbs[:top])
	z.used = need
	z.limbs[power/LimbBits] = 1 << (power % LimbBits)
	z.sign = NonNegative
	z.flags &^= FlagInf | FlagNaN
	return nil
}
