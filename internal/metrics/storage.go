// Package metrics exposes Prometheus instrumentation for the integer
// kernel's storage traffic, plus point-in-time runtime memory snapshots
// for the mpcalc tool.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Storage counters track digit-buffer lifecycle events. They are process
// globals: the kernel is a library and every Int shares the one allocator,
// so a single registry-wide series per event is the right granularity.
var (
	// GrowOps counts buffer growth requests, including no-op requests that
	// found sufficient capacity already in place.
	GrowOps = promauto.NewCounter(prometheus.CounterOpts{
		Name: "mpint_grow_operations_total",
		Help: "Number of digit-buffer growth requests.",
	})

	// LazyInits counts integers that allocated their first backing buffer
	// on first use rather than through an explicit growth request.
	LazyInits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "mpint_lazy_initializations_total",
		Help: "Number of integers lazily initialized on first use.",
	})

	// LimbsAllocated counts limbs handed out by the allocator.
	LimbsAllocated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "mpint_limbs_allocated_total",
		Help: "Total limbs allocated for digit buffers.",
	})

	// LimbsFreed counts limbs returned to the allocator. Buffers are zeroed
	// before release, so this also measures scrubbing work.
	LimbsFreed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "mpint_limbs_freed_total",
		Help: "Total limbs zeroed and returned to the allocator.",
	})

	// PoolHits counts buffer requests satisfied from a size-class pool.
	PoolHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "mpint_pool_hits_total",
		Help: "Digit-buffer requests satisfied from the size-class pool.",
	})

	// PoolMisses counts buffer requests that fell through to the heap,
	// either because the pool was cold or the request was too large.
	PoolMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "mpint_pool_misses_total",
		Help: "Digit-buffer requests that fell through to the heap.",
	})
)

// Handler returns the HTTP handler serving the Prometheus scrape endpoint,
// including Go runtime metrics from the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
