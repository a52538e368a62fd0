package ops

import (
	"fmt"

	"github.com/katalvlaran/matcache/matrix"
)

// LU performs Doolittle LU decomposition on a square matrix m.
// It returns L (unit lower triangular) and U (upper triangular) such that
// L·U == m for matrices that do not require pivoting.
// Stage 1 (Validate): non-nil, square.
// Stage 2 (Prepare): allocate L and U, set L's unit diagonal.
// Stage 3 (Execute): row-by-row Doolittle elimination.
// Errors: matrix.ErrNilMatrix, matrix.ErrDimensionMismatch, ErrSingular
// when a zero pivot blocks the elimination.
// Complexity: O(n³) time, O(n²) memory, where n = m.Rows().
func LU(m matrix.Matrix) (matrix.Matrix, matrix.Matrix, error) {
	// Stage 1: Validate input shape
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, nil, fmt.Errorf("LU: %w", err)
	}
	if err := matrix.ValidateSquare(m); err != nil {
		return nil, nil, fmt.Errorf("LU: non-square %dx%d: %w", m.Rows(), m.Cols(), err)
	}
	n := m.Rows() // common dimension

	// Stage 2: Prepare L and U containers
	L, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, nil, fmt.Errorf("LU: %w", err)
	}
	U, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, nil, fmt.Errorf("LU: %w", err)
	}
	// Unit lower triangular: ones on L's diagonal.
	for i := 0; i < n; i++ {
		_ = L.Set(i, i, 1)
	}

	// Stage 3: Execute decomposition
	var (
		i, j, k    int     // loop indices
		sum        float64 // accumulator for dot products
		lVal, uVal float64 // fetched L/U entries
		aVal       float64 // fetched A entry
		uDiag      float64 // current pivot U[i][i]
	)
	for i = 0; i < n; i++ {
		// U's row i for columns j >= i: U[i][j] = A[i][j] - Σ L[i][k]·U[k][j]
		for j = i; j < n; j++ {
			sum = matrix.ZeroSum
			for k = 0; k < i; k++ {
				lVal, _ = L.At(i, k)
				uVal, _ = U.At(k, j)
				sum += lVal * uVal
			}
			aVal, _ = m.At(i, j)
			_ = U.Set(i, j, aVal-sum)
		}

		uDiag, _ = U.At(i, i)
		if uDiag == zeroPivot && i < n-1 {
			// A zero pivot with rows still to eliminate: the non-pivoting
			// scheme cannot proceed without dividing by it.
			return nil, nil, fmt.Errorf("LU: zero pivot at %d: %w", i, ErrSingular)
		}

		// L's column i for rows j > i: L[j][i] = (A[j][i] - Σ L[j][k]·U[k][i]) / U[i][i]
		for j = i + 1; j < n; j++ {
			sum = matrix.ZeroSum
			for k = 0; k < i; k++ {
				lVal, _ = L.At(j, k)
				uVal, _ = U.At(k, i)
				sum += lVal * uVal
			}
			aVal, _ = m.At(j, i)
			_ = L.Set(j, i, (aVal-sum)/uDiag)
		}
	}

	return L, U, nil
}
