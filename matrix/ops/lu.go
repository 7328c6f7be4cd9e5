// SPDX-License-Identifier: MIT
// Package ops: Doolittle LU decomposition.

package ops

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/memomat/matrix"
)

// ErrSingular is returned when a zero (or within-tolerance) pivot is
// encountered during factorization or inversion. No pivoting is attempted —
// intentional for determinism and simplicity.
var ErrSingular = errors.New("ops: matrix is singular")

// LU performs Doolittle LU decomposition on a square matrix m.
// It returns L (unit lower triangular) and U (upper triangular) such that
// m = L·U. Row order is never permuted.
//
// Blueprint:
//
//	Stage 1 (Validate): ensure m is non-nil and square.
//	Stage 2 (Prepare): allocate L and U, set L's unit diagonal.
//	Stage 3 (Execute): for each pivot row i compute U's row i, then L's
//	        column i, failing fast on a |pivot| <= tol.
//	Stage 4 (Finalize): return L and U.
//
// Complexity: O(n³) time, O(n²) memory, where n = m.Rows().
func LU(m matrix.Matrix, opts ...Option) (matrix.Matrix, matrix.Matrix, error) {
	// Stage 1: Validate input shape
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, nil, fmt.Errorf("LU: %w", err)
	}
	if err := matrix.ValidateSquare(m); err != nil {
		return nil, nil, fmt.Errorf("LU: %dx%d: %w", m.Rows(), m.Cols(), err)
	}
	o := gatherOptions(opts...)
	n := m.Rows()

	// Stage 2: Prepare L and U matrices
	L, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, nil, fmt.Errorf("LU: %w", err)
	}
	U, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, nil, fmt.Errorf("LU: %w", err)
	}
	// Initialize L diagonal to 1 (unit lower triangular)
	for i := 0; i < n; i++ {
		_ = L.Set(i, i, 1)
	}

	// Stage 3: Execute decomposition
	var (
		i, j, k    int     // loop indices
		sum        float64 // accumulator for dot products
		lVal, uVal float64 // fetched factor values
		aVal       float64 // holds A[i][j] or A[j][i]
		uDiag      float64 // diagonal element of U (the pivot)
	)
	for i = 0; i < n; i++ { // for each pivot row i
		// Compute U's row i for columns j >= i
		for j = i; j < n; j++ {
			sum = ZeroSum
			for k = 0; k < i; k++ { // sum L[i][k]*U[k][j]
				lVal, _ = L.At(i, k)
				uVal, _ = U.At(k, j)
				sum += lVal * uVal
			}
			aVal, _ = m.At(i, j)
			_ = U.Set(i, j, aVal-sum)
		}
		// Pivot check before dividing through
		uDiag, _ = U.At(i, i)
		if math.Abs(uDiag) <= o.tol {
			return nil, nil, fmt.Errorf("LU: zero pivot at %d: %w", i, ErrSingular)
		}
		// Compute L's column i for rows j > i
		for j = i + 1; j < n; j++ {
			sum = ZeroSum
			for k = 0; k < i; k++ { // sum L[j][k]*U[k][i]
				lVal, _ = L.At(j, k)
				uVal, _ = U.At(k, i)
				sum += lVal * uVal
			}
			aVal, _ = m.At(j, i)
			// L[j][i] = (A[j][i] - sum) / U[i][i]
			_ = L.Set(j, i, (aVal-sum)/uDiag)
		}
	}

	// Stage 4: Finalize and return
	return L, U, nil
}
