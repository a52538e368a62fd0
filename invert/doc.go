// Package invert implements memoized matrix inversion: a one-entry Cache
// that pairs a mutable square matrix with a lazily computed inverse, and a
// Solve facade that serves repeated requests from the cache.
//
// 🚀 How the cache behaves
//
//	The Cache holds exactly one (matrix, inverse) pair. The inverse slot
//	starts absent, is populated by the first successful Solve, and is
//	cleared by exactly one trigger: SetMatrix. There is no TTL, no size
//	bound and no manual eviction — replacing the matrix is the whole
//	invalidation protocol.
//
// ✨ Guarantees
//
//   - A present inverse is always the inverse of the current matrix; the
//     invalidation rule alone maintains this, it is never re-verified.
//   - A failed inversion is never cached: the slot stays absent and the
//     next Solve recomputes instead of replaying the failure.
//   - Cache hits are observable: Solve reports them through an injectable
//     notifier that carries no return value and cannot affect control flow.
//   - Solve holds the cache lock across its whole read-check-compute-store
//     sequence, so concurrent callers cannot duplicate a computation or
//     lose an update.
//
// ⚙️ Usage:
//
//	m, _ := matrix.NewFromRows([][]float64{{1, 3, 3}, {1, 4, 3}, {1, 3, 4}})
//	c, _ := invert.NewCache(m)
//
//	inv, err := invert.Solve(c) // computes and stores
//	inv, err = invert.Solve(c)  // cache hit, notifier fires
//
//	_ = c.SetMatrix(m2)         // invalidates
//	inv, err = invert.Solve(c)  // fresh computation for m2
//
// The inversion primitive defaults to ops.Inverse and can be swapped with
// WithInverter; its errors (ops.ErrSingular, matrix.ErrDimensionMismatch)
// pass through Solve unchanged.
package invert
