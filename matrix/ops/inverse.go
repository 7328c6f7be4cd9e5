// SPDX-License-Identifier: MIT
// Package ops: Inverse computes the inverse of a square matrix using LU
// decomposition and forward/backward substitution, following strict
// fail-fast patterns.

package ops

import (
	"fmt"
	"math"

	"github.com/katalvlaran/memomat/matrix"
)

// ZeroSum is the initial accumulator value for substitution loops.
const ZeroSum = 0.0

// Inverse returns the inverse of the square matrix m, or an error if m is
// nil, not square, or singular within the configured tolerance.
//
// Blueprint:
//
//	Stage 1 (Validate): ensure m is non-nil and square.
//	Stage 2 (Decompose): A = L·U via Doolittle (tolerance-aware pivots).
//	Stage 3 (Prepare): allocate result matrix and scratch slices.
//	Stage 4 (Execute): for each identity column eᵢ, solve L·y = eᵢ then U·x = y.
//	Stage 5 (Finalize): assemble columns into the inverse and return.
//
// Complexity: O(n³) time, O(n²) memory, where n = m.Rows().
func Inverse(m matrix.Matrix, opts ...Option) (matrix.Matrix, error) {
	// Stage 1: Validate input shape
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("Inverse: %w", err)
	}
	if err := matrix.ValidateSquare(m); err != nil {
		return nil, fmt.Errorf("Inverse: %dx%d: %w", m.Rows(), m.Cols(), err)
	}
	o := gatherOptions(opts...)
	n := m.Rows()

	// Stage 2: LU decomposition (same tolerance applies to its pivots)
	L, U, err := LU(m, opts...)
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
		aVal       float64 // fetched factor value
	)
	for col = 0; col < n; col++ { // for each basis vector e_col
		// Forward substitution: L·y = e_col
		for i = 0; i < n; i++ {
			sum = ZeroSum
			for k = 0; k < i; k++ { // sum L[i][k]*y[k]
				aVal, _ = L.At(i, k)
				sum += aVal * y[k]
			}
			if i == col { // basis entry: e_col[i] == 1
				y[i] = 1.0 - sum
			} else {
				y[i] = -sum
			}
		}

		// Backward substitution: U·x = y
		for i = n - 1; i >= 0; i-- {
			sum = ZeroSum
			for k = i + 1; k < n; k++ { // sum U[i][k]*x[k]
				aVal, _ = U.At(i, k)
				sum += aVal * x[k]
			}
			pivot, _ = U.At(i, i)
			if math.Abs(pivot) <= o.tol { // singular check
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
