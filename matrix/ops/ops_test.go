// SPDX-License-Identifier: MIT
// Package ops_test: LU and Inverse coverage, including singularity detection
// with and without an explicit tolerance.

package ops_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/memomat/matrix"
	"github.com/katalvlaran/memomat/matrix/ops"
)

// mustFromRows builds a Dense fixture from row slices or fails the test.
func mustFromRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	require.NoError(t, err)

	return m
}

// requireEqual asserts exact entrywise equality of two matrices.
func requireEqual(t *testing.T, want, got matrix.Matrix) {
	t.Helper()
	same, err := matrix.Equal(want, got)
	require.NoError(t, err)
	require.True(t, same, "want:\n%v\ngot:\n%v", want, got)
}

func TestLU_Known2x2(t *testing.T) {
	// A = [[4,3],[6,3]] factors exactly: L = [[1,0],[1.5,1]], U = [[4,3],[0,-1.5]].
	a := mustFromRows(t, [][]float64{{4, 3}, {6, 3}})

	L, U, err := ops.LU(a)
	require.NoError(t, err)
	requireEqual(t, mustFromRows(t, [][]float64{{1, 0}, {1.5, 1}}), L)
	requireEqual(t, mustFromRows(t, [][]float64{{4, 3}, {0, -1.5}}), U)

	// Reconstruction: L·U == A.
	prod, err := matrix.Mul(L, U)
	require.NoError(t, err)
	requireEqual(t, a, prod)
}

func TestLU_NonSquare(t *testing.T) {
	rect, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	_, _, err = ops.LU(rect)
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}

func TestInverse_Exact2x2(t *testing.T) {
	// A = [[4,2],[2,2]]: det 4, all substitution steps dyadic.
	a := mustFromRows(t, [][]float64{{4, 2}, {2, 2}})

	inv, err := ops.Inverse(a)
	require.NoError(t, err)
	requireEqual(t, mustFromRows(t, [][]float64{{0.5, -0.5}, {-0.5, 1}}), inv)
}

func TestInverse_IdentityIsItsOwnInverse(t *testing.T) {
	I, err := matrix.NewIdentity(4)
	require.NoError(t, err)
	inv, err := ops.Inverse(I)
	require.NoError(t, err)
	requireEqual(t, I, inv)
}

func TestInverse_ReconstructsIdentity(t *testing.T) {
	a := mustFromRows(t, [][]float64{{1, -0.5}, {-0.5, 1}})

	inv, err := ops.Inverse(a)
	require.NoError(t, err)

	// Entries are powers of two, so both products round to the exact identity.
	I, err := matrix.NewIdentity(2)
	require.NoError(t, err)
	left, err := matrix.Mul(a, inv)
	require.NoError(t, err)
	requireEqual(t, I, left)
	right, err := matrix.Mul(inv, a)
	require.NoError(t, err)
	requireEqual(t, I, right)
}

func TestInverse_Singular(t *testing.T) {
	// Second row is a multiple of the first.
	a := mustFromRows(t, [][]float64{{1, 2}, {2, 4}})
	_, err := ops.Inverse(a)
	require.ErrorIs(t, err, ops.ErrSingular)
}

func TestInverse_NearSingular_Tolerance(t *testing.T) {
	a := mustFromRows(t, [][]float64{{1, 0}, {0, 1e-13}})

	// Default tolerance (exact zero) accepts the tiny pivot.
	_, err := ops.Inverse(a)
	require.NoError(t, err)

	// An explicit tolerance above the pivot rejects it as singular.
	_, err = ops.Inverse(a, ops.WithTolerance(1e-12))
	require.ErrorIs(t, err, ops.ErrSingular)
}

func TestInverse_NonSquare(t *testing.T) {
	rect, err := matrix.NewDense(3, 2)
	require.NoError(t, err)
	_, err = ops.Inverse(rect)
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}

func TestInverse_Nil(t *testing.T) {
	_, err := ops.Inverse(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestWithTolerance_PanicsOnNonsense(t *testing.T) {
	require.Panics(t, func() { ops.WithTolerance(-1) })
}

func TestInverse_DoesNotMutateInput(t *testing.T) {
	a := mustFromRows(t, [][]float64{{4, 3}, {6, 3}})
	snapshot := a.Clone()

	_, err := ops.Inverse(a)
	require.NoError(t, err)
	requireEqual(t, snapshot, a)
}
