package ops

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/matcache/matrix"
)

// zeroPivot is the sentinel value for detecting a zero pivot in LU/Inverse.
const zeroPivot = 0.0

// ErrSingular is returned when a zero pivot is encountered during
// decomposition or substitution (intentional for determinism and simplicity;
// no pivoting is performed).
var ErrSingular = errors.New("ops: matrix is singular")

// Inverse returns the inverse of the square matrix m.
// Blueprint:
//
//	Stage 1 (Validate): ensure m is non-nil and square.
//	Stage 2 (Decompose): A = L·U via Doolittle.
//	Stage 3 (Prepare): allocate the result and scratch slices.
//	Stage 4 (Execute): for each identity column eᵢ, solve L·y = eᵢ then U·x = y.
//	Stage 5 (Finalize): assemble columns into the inverse and return.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrDimensionMismatch on non-square
// input, ErrSingular on a zero pivot.
// Complexity: O(n³) time, O(n²) memory, where n = m.Rows().
func Inverse(m matrix.Matrix) (matrix.Matrix, error) {
	// Stage 1: Validate input shape
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("Inverse: %w", err)
	}
	if err := matrix.ValidateSquare(m); err != nil {
		return nil, fmt.Errorf("Inverse: non-square %dx%d: %w", m.Rows(), m.Cols(), err)
	}
	n := m.Rows()

	// Stage 2: LU decomposition
	L, U, err := LU(m)
	if err != nil {
		return nil, fmt.Errorf("Inverse: %w", err)
	}

	// Stage 3: Prepare result container and workspaces
	inv, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("Inverse: %w", err)
	}
	y := make([]float64, n) // scratch for forward substitution
	x := make([]float64, n) // scratch for backward substitution

	// Stage 4: Compute each column of the inverse
	var (
		col, i, k  int     // loop indices
		sum, pivot float64 // arithmetic helpers
		aVal       float64 // fetched L/U value
	)
	for col = 0; col < n; col++ { // for each basis vector e_col
		// Forward substitution: L·y = e_col
		for i = 0; i < n; i++ {
			sum = matrix.ZeroSum
			for k = 0; k < i; k++ {
				aVal, _ = L.At(i, k)
				sum += aVal * y[k]
			}
			if i == col {
				y[i] = 1.0 - sum // e_col[i] == 1
			} else {
				y[i] = -sum // e_col[i] == 0
			}
		}

		// Backward substitution: U·x = y
		for i = n - 1; i >= 0; i-- {
			sum = matrix.ZeroSum
			for k = i + 1; k < n; k++ {
				aVal, _ = U.At(i, k)
				sum += aVal * x[k]
			}
			pivot, _ = U.At(i, i)
			if pivot == zeroPivot {
				return nil, fmt.Errorf("Inverse: zero pivot at %d: %w", i, ErrSingular)
			}
			x[i] = (y[i] - sum) / pivot
		}

		// Write solution x into column col of inv
		for i = 0; i < n; i++ {
			_ = inv.Set(i, col, x[i])
		}
	}

	// Stage 5: Return computed inverse
	return inv, nil
}
