// Package ops provides the numeric inversion primitive consumed by the
// invert cache: Doolittle LU decomposition and inversion via per-column
// forward/backward substitution.
//
// The scheme is deliberately non-pivoting: loop orders are fixed, results
// are deterministic, and a singular (or merely pivot-hostile) matrix
// surfaces as a zero pivot and the ErrSingular sentinel. Callers needing
// numerically hardened inversion should swap in their own primitive via
// invert.WithInverter.
//
// Error taxonomy:
//
//   - non-square input → matrix.ErrDimensionMismatch (wrapped)
//   - zero pivot       → ErrSingular
//
// Both are plain sentinels matched with errors.Is; the cache layer
// propagates them unchanged.
package ops
