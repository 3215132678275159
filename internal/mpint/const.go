// Process-wide immutable constant registry.

package mpint

import (
	"sync"

	apperrors "github.com/agbru/mpint/internal/errors"
)

// constantSet is the table of singletons. It is built as one unit under the
// registry lock so readers never observe a partially constructed entry.
//
// The infinity and NaN sentinels deliberately carry magnitude 1: their
// meaning lives in the flag bits, and a nonzero used count keeps the cheap
// used == 0 zero fast-path from ever misreading them. Arithmetic layers
// must check the flags before trusting magnitude or sign.
type constantSet struct {
	zero, one, minusOne *Int
	inf, minusInf, nan  *Int
}

var (
	constMu   sync.RWMutex
	constants *constantSet
)

// InitConstants builds the six singletons (0, 1, -1, +inf, -inf, NaN) and
// seals them immutable. Safe to call more than once; after the first
// successful call it is a no-op. The accessors also trigger construction on
// first use, so calling this explicitly is only needed to front-load the
// allocation or to observe its error.
func InitConstants() error {
	constMu.Lock()
	defer constMu.Unlock()
	return initConstantsLocked()
}

func initConstantsLocked() error {
	if constants != nil {
		return nil
	}
	build := func(v int64, fl Flags) (*Int, error) {
		z := New()
		if err := z.SetInt64(v); err != nil {
			return nil, err
		}
		z.flags |= fl
		z.markImmutable()
		return z, nil
	}

	cs := &constantSet{}
	specs := []struct {
		dst   **Int
		value int64
		fl    Flags
	}{
		{&cs.zero, 0, 0},
		{&cs.one, 1, 0},
		{&cs.minusOne, -1, 0},
		{&cs.inf, 1, FlagInf},
		{&cs.minusInf, -1, FlagInf},
		{&cs.nan, 1, FlagNaN},
	}
	for _, s := range specs {
		c, err := build(s.value, s.fl)
		if err != nil {
			destroySetLocked(cs)
			return apperrors.WrapError(err, "initializing constants")
		}
		*s.dst = c
	}
	constants = cs
	return nil
}

// DestroyConstants scrubs and releases the singletons and drops the table,
// returning the registry to its pre-init state. Must not run concurrently
// with readers.
func DestroyConstants() {
	constMu.Lock()
	defer constMu.Unlock()
	if constants == nil {
		return
	}
	destroySetLocked(constants)
	constants = nil
}

func destroySetLocked(cs *constantSet) {
	// Destroy tolerates nil entries from a partially built set.
	for _, c := range []*Int{cs.zero, cs.one, cs.minusOne, cs.inf, cs.minusInf, cs.nan} {
		if c != nil {
			_ = Destroy(c)
		}
	}
}

// constant returns one singleton, constructing the table on first access.
// Returns nil only if construction itself failed.
func constant(pick func(*constantSet) *Int) *Int {
	constMu.RLock()
	if constants != nil {
		c := pick(constants)
		constMu.RUnlock()
		return c
	}
	constMu.RUnlock()

	constMu.Lock()
	defer constMu.Unlock()
	if err := initConstantsLocked(); err != nil {
		return nil
	}
	return pick(constants)
}

// Zero returns the immutable zero singleton.
func Zero() *Int { return constant(func(cs *constantSet) *Int { return cs.zero }) }

// One returns the immutable 1 singleton.
func One() *Int { return constant(func(cs *constantSet) *Int { return cs.one }) }

// MinusOne returns the immutable -1 singleton.
func MinusOne() *Int { return constant(func(cs *constantSet) *Int { return cs.minusOne }) }

// Inf returns the immutable positive-infinity sentinel.
func Inf() *Int { return constant(func(cs *constantSet) *Int { return cs.inf }) }

// MinusInf returns the immutable negative-infinity sentinel.
func MinusInf() *Int { return constant(func(cs *constantSet) *Int { return cs.minusInf }) }

// NaN returns the immutable not-a-number sentinel.
func NaN() *Int { return constant(func(cs *constantSet) *Int { return cs.nan }) }
