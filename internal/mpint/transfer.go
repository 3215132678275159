// Value transfer: native-integer ingestion, deep copy, buffer-ownership
// swap, and fixed-width extraction back out of the limb vector.

package mpint

import apperrors "github.com/agbru/mpint/internal/errors"

// limbRadix is the value of one limb position as a float64; exact, since
// 2^LimbBits is a power of two well inside the double exponent range.
const limbRadix float64 = 1 << LimbBits

// SetUint64 loads an unsigned native integer, decomposing it into limbs
// least-significant first. Sentinel flags are dropped and any previously
// used high limbs are scrubbed.
func (z *Int) SetUint64(v uint64) error {
	if z == nil {
		return apperrors.NilOperandError{Operation: "SetUint64"}
	}
	if z.IsImmutable() {
		return apperrors.ImmutableError{Operation: "SetUint64"}
	}
	if err := z.lazyInit(); err != nil {
		return err
	}
	prev := z.used
	z.used = 0
	for v != 0 {
		z.limbs[z.used] = v & LimbMask
		v >>= LimbBits
		z.used++
	}
	if prev > z.used {
		clear(z.limbs[z.used:prev])
	}
	z.sign = NonNegative
	z.flags &^= FlagInf | FlagNaN
	return nil
}

// SetInt64 loads a signed native integer. The magnitude is taken through
// the unsigned domain so the minimum int64 does not overflow on negation.
func (z *Int) SetInt64(v int64) error {
	if z == nil {
		return apperrors.NilOperandError{Operation: "SetInt64"}
	}
	magnitude := uint64(v)
	if v < 0 {
		magnitude = -uint64(v)
	}
	if err := z.SetUint64(magnitude); err != nil {
		return err
	}
	if v < 0 {
		z.sign = Negative
	}
	return nil
}

// Copy deep-copies x into z. Identical handles are a no-op. The copy takes
// x's value, sign, and sentinel flags but never the immutable flag: a copy
// of a sealed constant is an ordinary mutable value. An uninitialized x is
// lazily initialized (and so copied as zero). With minimize the destination
// buffer is shrunk to the minimal footprint afterwards.
func (z *Int) Copy(x *Int, minimize bool) error {
	if z == nil || x == nil {
		return apperrors.NilOperandError{Operation: "Copy"}
	}
	if z == x {
		return nil
	}
	if z.IsImmutable() {
		return apperrors.ImmutableError{Operation: "Copy"}
	}
	if err := x.lazyInit(); err != nil {
		return err
	}
	if err := z.Grow(x.used, false); err != nil {
		return err
	}
	prev := z.used
	copy(z.limbs[:x.used], x.limbs[:x.used])
	if prev > x.used {
		clear(z.limbs[x.used:prev])
	}
	z.used = x.used
	z.sign = x.sign
	z.flags = x.flags &^ FlagImmutable
	if minimize {
		return z.Shrink()
	}
	return nil
}

// Swap exchanges buffer ownership, used count, sign, and flags between the
// two values in place: an O(1) handle exchange, never a data copy. Both
// participants mutate, so either being immutable rejects the swap.
func (z *Int) Swap(x *Int) error {
	if z == nil || x == nil {
		return apperrors.NilOperandError{Operation: "Swap"}
	}
	if z == x {
		return nil
	}
	if z.IsImmutable() || x.IsImmutable() {
		return apperrors.ImmutableError{Operation: "Swap"}
	}
	z.limbs, x.limbs = x.limbs, z.limbs
	z.used, x.used = x.used, z.used
	z.sign, x.sign = x.sign, z.sign
	z.flags, x.flags = x.flags, z.flags
	return nil
}

// Uint64 reconstructs the low 64 bits of the magnitude, assembling the
// low-order limbs most-significant first. Values wider than 64 bits
// truncate silently; that is the documented overflow policy, not an error.
func (z *Int) Uint64() uint64 {
	n := (64 + LimbBits - 1) / LimbBits
	if z.used < n {
		n = z.used
	}
	var v uint64
	for i := n - 1; i >= 0; i-- {
		v = v<<LimbBits | z.limbs[i]
	}
	return v
}

// Uint32 reconstructs the low 32 bits of the magnitude, truncating
// silently.
func (z *Int) Uint32() uint32 { return uint32(z.Uint64()) }

// Int64 reconstructs a signed 64-bit value: the unsigned assembly wraps
// into the two's-complement domain and the stored sign negates it. A
// magnitude beyond 63 bits truncates silently.
func (z *Int) Int64() int64 {
	v := int64(z.Uint64())
	if z.sign == Negative {
		v = -v
	}
	return v
}

// Int32 is Int64 narrowed to 32 bits with the same truncation policy.
func (z *Int) Int32() int32 {
	v := int32(z.Uint32())
	if z.sign == Negative {
		v = -v
	}
	return v
}

// Uint128 is a 128-bit unsigned accumulator for extraction beyond the
// native word.
type Uint128 struct {
	Hi, Lo uint64
}

// Int128 is the signed two's-complement counterpart of Uint128.
type Int128 struct {
	Hi int64
	Lo uint64
}

// Uint128 reconstructs the low 128 bits of the magnitude.
func (z *Int) Uint128() Uint128 {
	n := (128 + LimbBits - 1) / LimbBits
	if z.used < n {
		n = z.used
	}
	var hi, lo uint64
	for i := n - 1; i >= 0; i-- {
		hi = hi<<LimbBits | lo>>(64-LimbBits)
		lo = lo<<LimbBits | z.limbs[i]
	}
	return Uint128{Hi: hi, Lo: lo}
}

// Int128 reconstructs a signed 128-bit value, negating the unsigned
// assembly across the two-word boundary when the sign is Negative.
func (z *Int) Int128() Int128 {
	u := z.Uint128()
	if z.sign != Negative {
		return Int128{Hi: int64(u.Hi), Lo: u.Lo}
	}
	hi := ^u.Hi
	lo := ^u.Lo + 1
	if lo == 0 {
		hi++
	}
	return Int128{Hi: int64(hi), Lo: lo}
}

// Float64 converts the magnitude to a double, folding up to floatLimbs of
// the most-significant limbs and scaling for the rest. Magnitudes needing
// more limbs lose low-order precision, and overflow to infinity past the
// double exponent range; neither is an error.
func (z *Int) Float64() float64 {
	if z.used == 0 {
		return 0
	}
	stop := 0
	if z.used > floatLimbs {
		stop = z.used - floatLimbs
	}
	var f float64
	for i := z.used - 1; i >= stop; i-- {
		f = f*limbRadix + float64(z.limbs[i])
	}
	for i := 0; i < stop; i++ {
		f *= limbRadix
	}
	if z.sign == Negative {
		f = -f
	}
	return f
}
