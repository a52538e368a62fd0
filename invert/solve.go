// Package invert: the Solve orchestration facade.
package invert

import (
	"fmt"

	"github.com/katalvlaran/matcache/matrix"
)

// Solve returns the inverse of the cache's current matrix, computing it at
// most once per matrix generation.
// Blueprint:
//
//	Stage 1 (Validate): reject a nil cache.
//	Stage 2 (Check): under the cache lock, look at the inverse slot. If it
//	  is populated, emit HitMessage through the notifier and return the
//	  cached value — the inverter is NOT invoked.
//	Stage 3 (Compute): otherwise pass the current matrix to the inverter.
//	Stage 4 (Store): on success, populate the inverse slot.
//	Stage 5 (Finalize): return the inverse.
//
// The lock is held across Stages 2–4, so concurrent callers never compute
// the same generation twice and never lose an update to a racing SetMatrix.
//
// Errors: ErrNilCache, plus whatever the inverter returns — typically
// ops.ErrSingular for a singular matrix or matrix.ErrDimensionMismatch for
// a non-square one. Inverter errors pass through unchanged (no wrapping,
// no retry), and a failed computation is never stored: the slot stays
// absent and the next Solve call recomputes.
func Solve(c *Cache, opts ...Option) (matrix.Matrix, error) {
	// Stage 1: Validate
	if c == nil {
		return nil, fmt.Errorf("Solve: %w", ErrNilCache)
	}
	o := gatherOptions(opts...)

	// Stages 2-4 run under the lock: check, compute, store.
	c.mu.Lock()
	defer c.mu.Unlock()

	// Stage 2: serve a populated slot directly.
	if c.inv != nil {
		o.notifier(HitMessage)

		return c.inv, nil
	}

	// Stage 3: cache miss — invoke the inversion primitive.
	inv, err := o.inverter(c.mat)
	if err != nil {
		// Pass the failure through untouched; c.inv stays nil so the next
		// call retries instead of replaying a poisoned result.
		return nil, err
	}

	// Stage 4: store for subsequent calls.
	c.inv = inv

	// Stage 5: return the freshly computed inverse.
	return inv, nil
}
