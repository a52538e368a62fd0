// Package matcache is a small in-memory toolkit for memoized matrix
// inversion: compute the inverse of a square matrix once, serve every
// repeated request from a cache, and invalidate the cache the moment the
// underlying matrix is replaced.
//
// 🚀 What is matcache?
//
//	A pure-Go library built from three thin layers:
//		• matrix/ — the numeric primitive: a row-major Dense matrix with
//		  bounds-checked accessors, central validators and a Mul kernel
//		• ops/    — the inversion primitive: Doolittle LU decomposition
//		  plus forward/backward substitution
//		• invert/ — the memoization core: a one-entry Cache with
//		  invalidate-on-write semantics and a Solve facade that signals
//		  cache hits through an injectable notifier
//
// ✨ Why choose matcache?
//
//   - Minimal API – construct a Cache, call Solve, done
//   - Predictable invalidation – SetMatrix is the one and only trigger
//   - Failure is never cached – a singular matrix errors on every call
//   - Pure Go – no cgo, no hidden deps
//
// Quick example:
//
//	m, _ := matrix.NewFromRows([][]float64{
//		{1, 3, 3},
//		{1, 4, 3},
//		{1, 3, 4},
//	})
//	c, _ := invert.NewCache(m)
//	inv, _ := invert.Solve(c) // computes via ops.Inverse
//	inv, _ = invert.Solve(c)  // served from cache, notifier fires
//
// Dive into the per-package docs for the full contracts.
//
//	go get github.com/katalvlaran/matcache
package matcache
