// Package alloc supplies digit-buffer allocators for the integer kernel.
//
// The kernel requests and releases limb buffers through the Allocator
// interface rather than calling make directly, so callers can swap in a
// pooled allocator when workloads churn through many same-sized values.
// Buffers may hold sensitive numeric state; every allocator zeroes a buffer
// on release, and Alloc always returns a zeroed buffer.
package alloc

import (
	"sync"

	"github.com/agbru/mpint/internal/metrics"
)

// Allocator requests and releases limb buffers.
//
// Alloc returns a zeroed slice with len == n (capacity may be larger).
// A nil return signals that the request could not be satisfied; the kernel
// translates that into its out-of-memory error. Free zeroes the buffer
// before releasing it and tolerates nil.
type Allocator interface {
	Alloc(n int) []uint64
	Free(buf []uint64)
}

// HeapAllocator allocates directly from the Go heap. It is the process-wide
// default: zero setup cost, and the garbage collector reclaims buffers.
type HeapAllocator struct{}

// Alloc returns a fresh zeroed buffer of exactly n limbs.
func (HeapAllocator) Alloc(n int) []uint64 {
	if n < 0 {
		return nil
	}
	metrics.LimbsAllocated.Add(float64(n))
	return make([]uint64, n)
}

// Free scrubs the buffer and drops it for the collector. Zeroing is part of
// the destroy contract: released limbs must not leak prior numeric state.
func (HeapAllocator) Free(buf []uint64) {
	if buf == nil {
		return
	}
	metrics.LimbsFreed.Add(float64(len(buf)))
	clear(buf[:cap(buf)])
}

// ─────────────────────────────────────────────────────────────────────────────
// Process-Wide Default
// ─────────────────────────────────────────────────────────────────────────────

var (
	defaultMu sync.RWMutex
	defaultAl Allocator = HeapAllocator{}
)

// Default returns the process-wide allocator used by kernel operations that
// were not handed an explicit allocator.
func Default() Allocator {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultAl
}

// SetDefault installs a new process-wide allocator and returns the previous
// one. Swapping the default while kernel operations are in flight on other
// goroutines is safe only in the sense that each operation sees one coherent
// allocator; buffers must be freed by the allocator that produced them, so
// callers should swap during quiet periods (typically at startup).
func SetDefault(a Allocator) Allocator {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	prev := defaultAl
	if a == nil {
		a = HeapAllocator{}
	}
	defaultAl = a
	return prev
}
