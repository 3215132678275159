package mpint

import (
	"testing"

	apperrors "github.com/agbru/mpint/internal/errors"
)

// TestLimbWidthBound re-derives the bound ExtractBits relies on: a full
// machine word of bits never spans more than three limbs.
func TestLimbWidthBound(t *testing.T) {
	if LimbBits*3 < wordBits {
		t.Fatalf("LimbBits = %d too narrow: %d*3 < %d, ExtractBits could touch a fourth limb",
			LimbBits, LimbBits, wordBits)
	}
	if LimbBits >= wordBits {
		t.Fatalf("LimbBits = %d leaves no headroom in a %d-bit word", LimbBits, wordBits)
	}
}

// refExtract is the bit-at-a-time reference: bit i of the logical
// bit-string, zero past the used range.
func refExtract(z *Int, offset, count int) uint64 {
	var v uint64
	for i := 0; i < count; i++ {
		bit := offset + i
		limb := bit / LimbBits
		if limb >= z.Used() {
			continue
		}
		v |= (z.Limb(limb) >> (bit % LimbBits) & 1) << i
	}
	return v
}

// TestExtractBits exercises windows inside one limb, spanning two limbs,
// and spanning three limbs against the reference extractor.
func TestExtractBits(t *testing.T) {
	// Dense, irregular limbs so every window has structure.
	z := fromLimbs(t, []Word{
		0x0FFF_FFFF_FFFF_FFFF & LimbMask, // all 60 bits set
		0x1,
		0x0ABC_DEF0_1234_5678 & LimbMask,
		0x0F0F_0F0F_0F0F_0F0F & LimbMask,
	}, NonNegative)

	cases := []struct {
		name          string
		offset, count int
	}{
		{"inside one limb", 4, 16},
		{"aligned full limb", 0, 60},
		{"two-limb span", 59, 4},
		{"two-limb span wide", 30, 60},
		{"three-limb span", 59, 64},
		{"three-limb span from high shift", 119, 64},
		{"single bit", 60, 1},
		{"window past the top limb reads zeros", 230, 20},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := z.ExtractBits(tc.offset, tc.count)
			if err != nil {
				t.Fatalf("ExtractBits(%d, %d): %v", tc.offset, tc.count, err)
			}
			if want := refExtract(z, tc.offset, tc.count); got != want {
				t.Errorf("ExtractBits(%d, %d) = %#x, want %#x", tc.offset, tc.count, got, want)
			}
		})
	}
}

// TestExtractBits_TwoLimbExample pins the canonical two-limb crossing: one
// bit from the low limb's top plus the bottom of the next limb.
func TestExtractBits_TwoLimbExample(t *testing.T) {
	// Value 2^60 + (2^60 - 1): limb 0 all ones, limb 1 = 1.
	z := fromLimbs(t, []Word{LimbMask, 1}, NonNegative)

	got, err := z.ExtractBits(LimbBits-1, 4)
	if err != nil {
		t.Fatalf("ExtractBits: %v", err)
	}
	// Bit 59 is set, bit 60 is set, bits 61-62 are clear.
	if got != 0b0011 {
		t.Errorf("ExtractBits(%d, 4) = %#b, want 0b0011", LimbBits-1, got)
	}
}

// TestExtractBits_Errors verifies the argument domain.
func TestExtractBits_Errors(t *testing.T) {
	z := New()
	if err := z.SetUint64(1); err != nil {
		t.Fatalf("SetUint64: %v", err)
	}

	cases := []struct {
		name          string
		offset, count int
	}{
		{"zero count", 0, 0},
		{"oversized count", 0, 65},
		{"negative offset", -1, 4},
		{"offset past used limbs", LimbBits * 2, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := z.ExtractBits(tc.offset, tc.count)
			if !apperrors.IsArgument(err) {
				t.Errorf("ExtractBits(%d, %d) = %v, want ArgumentError", tc.offset, tc.count, err)
			}
		})
	}
}

// TestBitLen verifies exact bit-lengths.
func TestBitLen(t *testing.T) {
	cases := []struct {
		name  string
		limbs []Word
		want  int
	}{
		{"zero", nil, 0},
		{"one", []Word{1}, 1},
		{"top of a limb", []Word{1 << (LimbBits - 1)}, LimbBits},
		{"second limb", []Word{0, 1}, LimbBits + 1},
		{"big", []Word{LimbMask, LimbMask, 0x7}, 2*LimbBits + 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			z := fromLimbs(t, tc.limbs, NonNegative)
			if got := z.BitLen(); got != tc.want {
				t.Errorf("BitLen = %d, want %d", got, tc.want)
			}
		})
	}
}

// TestTrailingZeros verifies lowest-set-bit positions.
func TestTrailingZeros(t *testing.T) {
	cases := []struct {
		name  string
		limbs []Word
		want  int
	}{
		{"zero", nil, 0},
		{"odd", []Word{3}, 0},
		{"bit in the first limb", []Word{1 << 12}, 12},
		{"zero limb below", []Word{0, 1 << 5}, LimbBits + 5},
		{"two zero limbs below", []Word{0, 0, 2}, 2*LimbBits + 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			z := fromLimbs(t, tc.limbs, NonNegative)
			if got := z.TrailingZeros(); got != tc.want {
				t.Errorf("TrailingZeros = %d, want %d", got, tc.want)
			}
		})
	}
}

// TestSetPow2 verifies direct power-of-two construction.
func TestSetPow2(t *testing.T) {
	t.Run("2^5 has bit length 6 and five trailing zeros", func(t *testing.T) {
		z := New()
		if err := z.SetPow2(5); err != nil {
			t.Fatalf("SetPow2: %v", err)
		}
		if got := z.BitLen(); got != 6 {
			t.Errorf("BitLen = %d, want 6", got)
		}
		if got := z.TrailingZeros(); got != 5 {
			t.Errorf("TrailingZeros = %d, want 5", got)
		}
	})

	t.Run("limb-boundary powers", func(t *testing.T) {
		for _, power := range []int{0, LimbBits - 1, LimbBits, LimbBits + 1, 7 * LimbBits} {
			z := New()
			if err := z.SetPow2(power); err != nil {
				t.Fatalf("SetPow2(%d): %v", power, err)
			}
			if z.BitLen() != power+1 || z.TrailingZeros() != power {
				t.Errorf("SetPow2(%d): BitLen=%d TrailingZeros=%d", power, z.BitLen(), z.TrailingZeros())
			}
		}
	})

	t.Run("overwrites a wider previous value", func(t *testing.T) {
		z := New()
		if err := z.SetPow2(LimbBits * 8); err != nil {
			t.Fatalf("SetPow2: %v", err)
		}
		if err := z.SetPow2(2); err != nil {
			t.Fatalf("SetPow2: %v", err)
		}
		if z.Uint64() != 4 || z.Used() != 1 {
			t.Errorf("value = %d (used %d), want 4 (used 1)", z.Uint64(), z.Used())
		}
	})

	t.Run("domain errors", func(t *testing.T) {
		z := New()
		if err := z.SetPow2(-1); !apperrors.IsArgument(err) {
			t.Errorf("SetPow2(-1) = %v, want ArgumentError", err)
		}
		if err := z.SetPow2(MaxBits + 1); !apperrors.IsArgument(err) {
			t.Errorf("SetPow2(MaxBits+1) = %v, want ArgumentError", err)
		}
	})
}
