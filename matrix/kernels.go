// Package matrix provides universal operations on any Matrix implementation.
// This file holds the two kernels the inversion cache exercises: matrix
// multiplication and tolerance-based comparison. All kernels perform strict
// fail-fast validation via the central validators and return clear errors on
// dimension mismatches.
package matrix

import (
	"fmt"
	"math"
)

// ZeroSum is the initial accumulator value for dot-product style loops.
const ZeroSum = 0.0

// kernelErrorf wraps err with an operation tag, preserving the original
// error via %w so errors.Is/As keep working across the facade boundary.
func kernelErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// Mul returns the product a·b as a fresh *Dense.
// Stage 1 (Validate): non-nil operands, a.Cols == b.Rows.
// Stage 2 (Prepare): allocate the (a.Rows × b.Cols) result.
// Stage 3 (Execute): classic i-k-j triple loop with a fast path when both
// operands are *Dense (flat-slice reads, no per-element error checks).
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(a.Rows · a.Cols · b.Cols).
func Mul(a, b Matrix) (*Dense, error) {
	// Validate operands before any allocation.
	if err := ValidateNotNil(a); err != nil {
		return nil, kernelErrorf("Mul", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, kernelErrorf("Mul", err)
	}
	if a.Cols() != b.Rows() {
		return nil, kernelErrorf(fmt.Sprintf("Mul: %dx%d by %dx%d", a.Rows(), a.Cols(), b.Rows(), b.Cols()), ErrDimensionMismatch)
	}

	rows, inner, cols := a.Rows(), a.Cols(), b.Cols()
	out, err := NewDense(rows, cols)
	if err != nil {
		return nil, kernelErrorf("Mul", err)
	}

	// Fast path: both operands expose flat storage.
	da, aOK := a.(*Dense)
	db, bOK := b.(*Dense)
	if aOK && bOK {
		var i, j, k int
		var av float64
		for i = 0; i < rows; i++ {
			for k = 0; k < inner; k++ {
				av = da.data[i*inner+k]
				if av == 0 {
					continue // skip zero rows cheaply
				}
				for j = 0; j < cols; j++ {
					out.data[i*cols+j] += av * db.data[k*cols+j]
				}
			}
		}

		return out, nil
	}

	// Fallback: interface accessors (bounds already proven valid by the loop ranges).
	var i, j, k int
	var sum, av, bv float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			sum = ZeroSum
			for k = 0; k < inner; k++ {
				av, _ = a.At(i, k)
				bv, _ = b.At(k, j)
				sum += av * bv
			}
			out.data[i*cols+j] = sum
		}
	}

	return out, nil
}

// AllClose reports whether a and b have the same shape and every pair of
// elements differs by at most eps in absolute value.
// Errors: ErrNilMatrix on nil operands, ErrDimensionMismatch on shape clash,
// ErrNaNInf on a negative or non-finite eps.
// Complexity: O(r*c).
func AllClose(a, b Matrix, eps float64) (bool, error) {
	if err := ValidateNotNil(a); err != nil {
		return false, kernelErrorf("AllClose", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return false, kernelErrorf("AllClose", err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return false, kernelErrorf("AllClose", err)
	}
	if eps < 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
		return false, kernelErrorf("AllClose: eps", ErrNaNInf)
	}

	var i, j int
	var av, bv float64
	for i = 0; i < a.Rows(); i++ {
		for j = 0; j < a.Cols(); j++ {
			av, _ = a.At(i, j)
			bv, _ = b.At(i, j)
			if math.Abs(av-bv) > eps {
				return false, nil
			}
		}
	}

	return true, nil
}
