// SPDX-License-Identifier: MIT
// Package matrix: universal kernels on any Matrix implementation — matrix
// product and entrywise comparisons. All kernels perform strict fail-fast
// validation via the central validators and return sentinel errors wrapped
// with the operation tag.

package matrix

import (
	"fmt"
	"math"
)

// ZeroSum is the initial accumulator value for dot-product loops.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opMul      = "Mul"
	opEqual    = "Equal"
	opAllClose = "AllClose"
)

// matrixErrorf wraps err with an operation tag, preserving the original error
// via %w. Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Mul returns the matrix product a×b as a fresh Dense; operands are not mutated.
//
// Implementation:
//   - Stage 1 (Validate): ValidateNotNil both, ValidateMulShape(a, b).
//   - Stage 2 (Prepare): allocate Dense(a.Rows, b.Cols).
//   - Stage 3 (Execute): fast-path when both operands are *Dense — flat-slice
//     i→k→j loops; otherwise fallback via At/Set in fixed i→j→k order.
//
// Determinism: fixed loop orders in both paths.
// Complexity: O(r*n*c) time, O(r*c) memory for the result.
func Mul(a, b Matrix) (Matrix, error) {
	// Stage 1: Validate operands
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err := ValidateMulShape(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	// Stage 2: Prepare result container
	rows, inner, cols := a.Rows(), a.Cols(), b.Cols()
	out, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	// Stage 3: Execute — fast path for two Dense operands
	da, okA := a.(*Dense)
	db, okB := b.(*Dense)
	if okA && okB {
		var aik float64
		for i := 0; i < rows; i++ {
			for k := 0; k < inner; k++ {
				aik = da.data[i*inner+k]
				if aik == 0 { // skip whole row-step on structural zero
					continue
				}
				for j := 0; j < cols; j++ {
					out.data[i*cols+j] += aik * db.data[k*cols+j]
				}
			}
		}

		return out, nil
	}

	// Fallback: interface access with fixed i→j→k order
	var sum, av, bv float64
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			sum = ZeroSum
			for k := 0; k < inner; k++ {
				av, _ = a.At(i, k)
				bv, _ = b.At(k, j)
				sum += av * bv
			}
			_ = out.Set(i, j, sum) // indices are in range by construction
		}
	}

	return out, nil
}

// Equal reports whether a and b have identical shape and bitwise-equal entries.
// Intended for exact fixtures (dyadic values); use AllClose for float noise.
// Complexity: O(r*c).
func Equal(a, b Matrix) (bool, error) {
	if err := ValidateNotNil(a); err != nil {
		return false, matrixErrorf(opEqual, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return false, matrixErrorf(opEqual, err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return false, matrixErrorf(opEqual, err)
	}

	var av, bv float64
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			av, _ = a.At(i, j)
			bv, _ = b.At(i, j)
			if av != bv {
				return false, nil
			}
		}
	}

	return true, nil
}

// AllClose reports whether |a[i,j]−b[i,j]| <= tol for every entry.
// tol must be finite and non-negative; violations return ErrDimensionMismatch
// semantics only for shape — a bad tol is a programmer error and panics.
// Complexity: O(r*c).
func AllClose(a, b Matrix, tol float64) (bool, error) {
	if tol < 0 || math.IsNaN(tol) || math.IsInf(tol, 0) {
		panic("matrix: AllClose: tol must be finite, non-negative")
	}
	if err := ValidateNotNil(a); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	var av, bv float64
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			av, _ = a.At(i, j)
			bv, _ = b.At(i, j)
			if math.Abs(av-bv) > tol {
				return false, nil
			}
		}
	}

	return true, nil
}
