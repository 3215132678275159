package mpint

import (
	"errors"
	"testing"

	"github.com/golang/mock/gomock"

	apperrors "github.com/agbru/mpint/internal/errors"
	"github.com/agbru/mpint/internal/mpint/mocks"
)

// TestRand_LimbFill verifies the fill and top-limb masking with a
// deterministic source.
func TestRand_LimbFill(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	src := mocks.NewMockSource(ctrl)
	// 37 bits fit in one limb; the source word has every bit set, so the
	// result must be exactly the low 37 bits.
	src.EXPECT().Word().Return(^uint64(0), nil)

	z := New()
	if err := z.Rand(src, 37); err != nil {
		t.Fatalf("Rand: %v", err)
	}
	if got := z.Uint64(); got != 1<<37-1 {
		t.Errorf("Rand(37) with all-ones source = %#x, want %#x", got, uint64(1<<37-1))
	}
	if z.BitLen() != 37 {
		t.Errorf("BitLen = %d, want 37", z.BitLen())
	}
}

// TestRand_MultiLimb verifies limb count and masking across a limb
// boundary.
func TestRand_MultiLimb(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	src := mocks.NewMockSource(ctrl)
	src.EXPECT().Word().Return(^uint64(0), nil).Times(3)

	bits := LimbBits*2 + 5
	z := New()
	if err := z.Rand(src, bits); err != nil {
		t.Fatalf("Rand: %v", err)
	}
	if z.Used() != 3 {
		t.Errorf("Used = %d, want 3", z.Used())
	}
	if z.BitLen() != bits {
		t.Errorf("BitLen = %d, want %d", z.BitLen(), bits)
	}
	if got := z.Limb(2); got != 1<<5-1 {
		t.Errorf("top limb = %#x, want masked to 5 bits", got)
	}
}

// TestRand_ZeroHighBitsClamp verifies a fill whose high limb comes up zero
// is clamped, leaving a shorter but valid value.
func TestRand_ZeroHighBitsClamp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	src := mocks.NewMockSource(ctrl)
	gomock.InOrder(
		src.EXPECT().Word().Return(uint64(0xF0), nil),
		src.EXPECT().Word().Return(uint64(0), nil),
	)

	z := New()
	if err := z.Rand(src, LimbBits+8); err != nil {
		t.Fatalf("Rand: %v", err)
	}
	if z.Used() != 1 || z.Uint64() != 0xF0 {
		t.Errorf("value = %#x (used %d), want 0xF0 (used 1)", z.Uint64(), z.Used())
	}
}

// TestRand_SourceFailure verifies the error is surfaced wrapped.
func TestRand_SourceFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	boom := errors.New("entropy pool closed")
	src := mocks.NewMockSource(ctrl)
	src.EXPECT().Word().Return(uint64(0), boom)

	z := New()
	err := z.Rand(src, 16)
	if !errors.Is(err, boom) {
		t.Fatalf("Rand = %v, want wrapped source error", err)
	}
}

// TestRand_Bound draws repeatedly from the real CSPRNG source and checks
// the uniform bound 2^bits. Repeated calls are not required to reach the
// maximum bit-length, only never to exceed it.
func TestRand_Bound(t *testing.T) {
	src := NewCryptoSource()
	z := New()
	for i := 0; i < 200; i++ {
		if err := z.Rand(src, 37); err != nil {
			t.Fatalf("Rand: %v", err)
		}
		if z.BitLen() > 37 {
			t.Fatalf("Rand(37) produced %d bits", z.BitLen())
		}
		if z.Sign() != NonNegative {
			t.Fatal("random value must be nonnegative")
		}
	}
}

// TestRand_Errors verifies the argument domain and handle checks.
func TestRand_Errors(t *testing.T) {
	src := NewCryptoSource()

	t.Run("non-positive bit count", func(t *testing.T) {
		z := New()
		for _, bits := range []int{0, -5} {
			if err := z.Rand(src, bits); !apperrors.IsArgument(err) {
				t.Errorf("Rand(%d) = %v, want ArgumentError", bits, err)
			}
		}
	})

	t.Run("bit count beyond the supported maximum", func(t *testing.T) {
		z := New()
		if err := z.Rand(src, MaxBits+1); !apperrors.IsArgument(err) {
			t.Errorf("Rand(MaxBits+1) = %v, want ArgumentError", err)
		}
	})

	t.Run("nil source", func(t *testing.T) {
		z := New()
		var target apperrors.NilOperandError
		if err := z.Rand(nil, 8); !errors.As(err, &target) {
			t.Errorf("Rand(nil source) = %v, want NilOperandError", err)
		}
	})

	t.Run("immutable destination", func(t *testing.T) {
		if err := One().Rand(src, 8); !apperrors.IsImmutable(err) {
			t.Errorf("Rand on immutable = %v, want ImmutableError", err)
		}
	})
}
