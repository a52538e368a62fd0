// SPDX-License-Identifier: MIT
// Package matrix — public constructor facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for building matrices.
//   - Avoid any logic duplication — each facade delegates to NewDense.
//   - Keep function names explicit and intention-revealing.
package matrix

import "fmt"

// NewFromRows builds a *Dense from a slice of equal-length rows.
// Stage 1 (Validate): non-empty input, rectangular shape, finite values.
// Stage 2 (Execute): copy values into a fresh Dense.
// Errors: ErrInvalidDimensions on empty input, ErrRaggedRows on unequal
// row lengths, ErrNaNInf on non-finite entries.
// Complexity: O(r*c).
func NewFromRows(rows [][]float64) (*Dense, error) {
	// Reject empty input before touching shape.
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	r, c := len(rows), len(rows[0])

	m, err := NewDense(r, c)
	if err != nil {
		return nil, err // propagate constructor error unchanged
	}

	var i, j int
	for i = 0; i < r; i++ {
		// Every row must match the width of the first one.
		if len(rows[i]) != c {
			return nil, fmt.Errorf("NewFromRows: row %d has %d cols, want %d: %w", i, len(rows[i]), c, ErrRaggedRows)
		}
		for j = 0; j < c; j++ {
			if err = ValidateFinite(rows[i][j]); err != nil {
				return nil, fmt.Errorf("NewFromRows: at (%d,%d): %w", i, j, err)
			}
			m.data[i*c+j] = rows[i][j] // direct write, shape already validated
		}
	}

	return m, nil
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Determinism: fixed i-loop; single write per diagonal cell.
// Complexity: O(n²) zeroing (constructor) + O(n) diagonal writes.
func NewIdentity(n int) (*Dense, error) {
	I, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		_ = I.Set(i, i, 1.0) // Set is bounds-safe after shape validation
	}

	return I, nil
}

// ZerosLike returns a new zero matrix with the same shape as m.
// Handy to preallocate result containers in kernels.
// Complexity: O(1) alloc + O(r*c) zeroing.
func ZerosLike(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}

	return NewDense(m.Rows(), m.Cols())
}
