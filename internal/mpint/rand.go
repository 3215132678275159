// Uniform random fills of a requested bit length.

package mpint

import (
	"crypto/rand"
	"encoding/binary"

	apperrors "github.com/agbru/mpint/internal/errors"
)

//go:generate mockgen -source=rand.go -destination=mocks/mock_source.go -package=mocks

// Source supplies raw random machine words for limb fills. Only the digit
// extraction contract matters to this kernel; distribution quality is the
// implementation's concern.
type Source interface {
	Word() (uint64, error)
}

// cryptoSource draws words from the operating system CSPRNG.
type cryptoSource struct{}

// NewCryptoSource returns a Source backed by crypto/rand.
func NewCryptoSource() Source { return cryptoSource{} }

func (cryptoSource) Word() (uint64, error) {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b[:]), nil
}

// Rand fills z with a uniformly random value in [0, 2^bitCount). Each limb
// takes a masked random word; when bitCount does not land on a limb
// boundary the top limb is masked down to the remaining bits. The result's
// bit-length may fall short of bitCount when high bits come up zero;
// callers needing an exact length retry or force the top bit themselves.
//
// On a source failure the value is structurally valid but unspecified.
func (z *Int) Rand(src Source, bitCount int) error {
	if z == nil {
		return apperrors.NilOperandError{Operation: "Rand"}
	}
	if src == nil {
		return apperrors.NilOperandError{Operation: "Rand: source"}
	}
	if z.IsImmutable() {
		return apperrors.ImmutableError{Operation: "Rand"}
	}
	if bitCount <= 0 {
		return apperrors.NewArgumentError("bits", "must be positive, got %d", bitCount)
	}
	if bitCount > MaxBits {
		return apperrors.NewArgumentError("bits", "must not exceed %d, got %d", MaxBits, bitCount)
	}

	digits := bitCount / LimbBits
	rem := bitCount % LimbBits
	if rem != 0 {
		digits++
	}
	if err := z.Grow(digits, false); err != nil {
		return err
	}

	for i := 0; i < digits; i++ {
		w, err := src.Word()
		if err != nil {
			return apperrors.WrapError(err, "drawing random limb %d", i)
		}
		z.limbs[i] = w & LimbMask
	}
	if rem != 0 {
		z.limbs[digits-1] &= 1<<rem - 1
	}
	if z.used > digits {
		clear(z.limbs[digits:z.used])
	}
	z.used = digits
	z.sign = NonNegative
	z.flags &^= FlagInf | FlagNaN
	z.Clamp()
	return nil
}
