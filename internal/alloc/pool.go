// This file provides a pooled allocator that recycles limb buffers by size
// class to reduce GC pressure under heavy accumulator churn.

package alloc

import (
	"math/bits"
	"sync"

	"github.com/agbru/mpint/internal/metrics"
)

// poolSizes defines the size classes for limb-buffer pools: powers of 4
// starting at the kernel's default digit count (32 limbs). The largest class
// holds 524288 limbs (4 MiB); anything bigger bypasses the pool.
var poolSizes = [...]int{32, 128, 512, 2048, 8192, 32768, 131072, 524288}

// PooledAllocator recycles limb buffers through per-size-class sync.Pools.
// The zero value is ready to use.
type PooledAllocator struct {
	pools [len(poolSizes)]sync.Pool
}

// NewPooledAllocator creates a pooled allocator with empty pools.
func NewPooledAllocator() *PooledAllocator {
	return &PooledAllocator{}
}

// poolIndex returns the pool index for a request of n limbs, or -1 if the
// request is too large for pooling.
//
// Uses O(1) bitwise computation instead of linear search. poolSizes are
// powers of 4 starting from 2^5 = 32: index i corresponds to size 2^(5+2i),
// so bits.Len(n-1) maps directly to the index.
func poolIndex(n int) int {
	if n <= 0 {
		return 0
	}
	if n > poolSizes[len(poolSizes)-1] {
		return -1
	}
	idx := (bits.Len(uint(n-1)) - 4) / 2
	if idx < 0 {
		idx = 0
	}
	return idx
}

// poolIndexLinear is the straightforward O(n) search, kept as a reference
// for testing the bitwise version.
func poolIndexLinear(n int) int {
	for i, s := range poolSizes {
		if n <= s {
			return i
		}
	}
	return -1
}

// Alloc returns a zeroed buffer of len n, drawn from the matching size-class
// pool when possible. Oversized requests fall through to the heap.
func (p *PooledAllocator) Alloc(n int) []uint64 {
	if n < 0 {
		return nil
	}
	metrics.LimbsAllocated.Add(float64(n))
	idx := poolIndex(n)
	if idx < 0 {
		metrics.PoolMisses.Inc()
		return make([]uint64, n)
	}
	if got, ok := p.pools[idx].Get().([]uint64); ok {
		metrics.PoolHits.Inc()
		// Buffers are scrubbed on Free, but clear again so a buffer that
		// bypassed Free can never resurface with stale limbs.
		clear(got)
		return got[:n]
	}
	metrics.PoolMisses.Inc()
	return make([]uint64, poolSizes[idx])[:n]
}

// Free scrubs the buffer and, when its capacity matches a size class
// exactly, returns it to the pool. Foreign capacities are dropped for the
// collector after zeroing.
func (p *PooledAllocator) Free(buf []uint64) {
	if buf == nil {
		return
	}
	metrics.LimbsFreed.Add(float64(len(buf)))
	full := buf[:cap(buf)]
	clear(full)
	idx := poolIndex(cap(buf))
	if idx < 0 || poolSizes[idx] != cap(buf) {
		return
	}
	p.pools[idx].Put(full)
}
