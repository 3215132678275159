// Package mpint implements the representation layer of a multi-precision
// integer: a sign-magnitude value stored as a little-endian vector of
// fixed-width limbs, with the growth, normalization, transfer, bit-access,
// and constant-registry primitives that arithmetic layers build on.
//
// The zero value of Int is an uninitialized integer, logically zero and
// ready to use: any consuming operation allocates default backing storage on
// first touch. Backing buffers come from the process-wide alloc.Allocator
// and are zeroed before release so destroyed values never leak limb state.
//
// No Int is safe for concurrent mutation; distinct values may be used from
// different goroutines freely since buffers are never shared between live
// values (Copy deep-copies, Swap exchanges ownership wholesale).
package mpint

// Word is the limb storage type. Only the low LimbBits of each limb are
// significant; the remaining high bits are headroom for carry propagation
// and are kept clear by LimbMask.
type Word = uint64

const (
	// LimbBits is the number of significant bits per limb. It must be at
	// least wordBits/3 so that a full machine word of bits never spans more
	// than three limbs (ExtractBits relies on this).
	LimbBits = 60

	// LimbMask clears the headroom bits of a limb.
	LimbMask Word = (1 << LimbBits) - 1

	// DefaultDigits is the minimum backing-buffer size in limbs. Lazy
	// initialization and Clear size buffers to this floor, keeping small
	// values reallocation-free across repeated mutation.
	DefaultDigits = 32

	// MaxBits bounds the magnitude this kernel will build directly through
	// SetPow2 and Rand. It caps runaway bit-count arguments before they
	// turn into multi-gigabyte allocations.
	MaxBits = 1 << 24

	// wordBits is the width of a full machine word as used by ExtractBits.
	wordBits = 64

	// floatLimbs is the number of most-significant limbs folded into a
	// Float64 conversion; 17 limbs exceed the 53-bit mantissa many times
	// over, so limbs below contribute only scale, not precision.
	floatLimbs = 17
)

// Sign is the sign of an Int. Zero is always NonNegative.
type Sign int8

const (
	// NonNegative marks zero or a positive magnitude.
	NonNegative Sign = iota
	// Negative marks a negative magnitude.
	Negative
)

// Flags carries the per-value sentinel markers. Infinity and NaN are layered
// on top of an ordinary nonzero magnitude so the used == 0 zero fast-path
// can never mistake a sentinel for zero; their meaning lives entirely in
// these bits.
type Flags uint8

const (
	// FlagImmutable rejects every mutating operation on the value.
	FlagImmutable Flags = 1 << iota
	// FlagInf marks a positive or negative infinity (sign carries which).
	FlagInf
	// FlagNaN marks a not-a-number sentinel.
	FlagNaN
)

// Int is a multi-precision integer. Limbs at indices [0, used) hold the
// magnitude least-significant first; limbs at or beyond used are logically
// zero but may hold stale data after a shrink of used. A nil limb slice is
// the uninitialized state.
type Int struct {
	limbs []Word
	used  int
	sign  Sign
	flags Flags
}

// New returns a fresh uninitialized integer, logically zero.
func New() *Int { return &Int{} }

// Used reports the number of limbs holding significant data.
func (z *Int) Used() int { return z.used }

// Cap reports the current backing-buffer capacity in limbs; 0 when
// uninitialized.
func (z *Int) Cap() int { return len(z.limbs) }

// Sign reports the stored sign. Sentinel flags are not consulted.
func (z *Int) Sign() Sign { return z.sign }

// Limb returns limb i, or 0 for any index at or beyond the used count.
func (z *Int) Limb(i int) Word {
	if i < 0 || i >= z.used {
		return 0
	}
	return z.limbs[i]
}

// IsZero reports whether the magnitude is zero. Sentinels store magnitude 1
// precisely so this test never fires for them.
func (z *Int) IsZero() bool { return z.used == 0 }

// IsInf reports whether the value is a (signed) infinity sentinel.
func (z *Int) IsInf() bool { return z.flags&FlagInf != 0 }

// IsNaN reports whether the value is the not-a-number sentinel.
func (z *Int) IsNaN() bool { return z.flags&FlagNaN != 0 }

// IsImmutable reports whether mutating operations are rejected.
func (z *Int) IsImmutable() bool { return z.flags&FlagImmutable != 0 }

// markImmutable seals the value. Used by the constant registry; there is no
// exported unseal, destruction is the only way out.
func (z *Int) markImmutable() { z.flags |= FlagImmutable }

// signedInteger constrains AbsNative to the native signed integer types.
type signedInteger interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// AbsNative returns the absolute value of a native signed integer. The
// minimum value of T has no positive counterpart and is returned unchanged,
// matching the wraparound of native negation.
func AbsNative[T signedInteger](v T) T {
	if v < 0 {
		return -v
	}
	return v
}
