// Package matrix provides the numeric primitives the rest of matcache is
// built on: a minimal Matrix interface, a row-major Dense implementation,
// centralized validators, and the few kernels (Mul, AllClose) the inversion
// and caching layers need.
//
// Design rules, inherited across the module:
//
//   - Fail fast: every public entry point validates its inputs and returns a
//     package sentinel (never panics on user-triggered conditions).
//   - Determinism: fixed loop orders, no global state, no hidden randomness.
//   - Errors are sentinels declared in errors.go with a "matrix:" message
//     prefix; call sites may wrap them with fmt.Errorf("ctx: %w", ErrX) and
//     callers match with errors.Is.
//
// Matrices are dense float64 containers; they are best for the small and
// mid-sized square systems the inversion cache is designed around, where
// O(r·c) memory is acceptable.
package matrix
