// SPDX-License-Identifier: MIT
// Package matrix_test: Dense constructor and accessor coverage.

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/memomat/matrix"
)

// mustDense allocates an r×c *Dense or fails the test.
func mustDense(t *testing.T, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err)

	return m
}

// mustFromRows builds a Dense fixture from row slices or fails the test.
func mustFromRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	require.NoError(t, err)

	return m
}

func TestNewDense_RejectsBadShape(t *testing.T) {
	for _, tc := range []struct{ r, c int }{{0, 3}, {3, 0}, {-1, 2}, {2, -5}} {
		_, err := matrix.NewDense(tc.r, tc.c)
		require.ErrorIs(t, err, matrix.ErrBadShape, "NewDense(%d,%d)", tc.r, tc.c)
	}
}

func TestNewDense_ZeroInitialized(t *testing.T) {
	m := mustDense(t, 2, 3)
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 3, m.Cols())
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			v, err := m.At(i, j)
			require.NoError(t, err)
			require.Zero(t, v)
		}
	}
}

func TestNewIdentity(t *testing.T) {
	I, err := matrix.NewIdentity(3)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			v, err := I.At(i, j)
			require.NoError(t, err)
			if i == j {
				require.Equal(t, 1.0, v)
			} else {
				require.Zero(t, v)
			}
		}
	}
}

func TestNewFromRows(t *testing.T) {
	m := mustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	v, err := m.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, 3.0, v)
}

func TestNewFromRows_Ragged(t *testing.T) {
	_, err := matrix.NewFromRows([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrRaggedRows)
}

func TestNewFromRows_Empty(t *testing.T) {
	_, err := matrix.NewFromRows(nil)
	require.ErrorIs(t, err, matrix.ErrBadShape)
	_, err = matrix.NewFromRows([][]float64{{}})
	require.ErrorIs(t, err, matrix.ErrBadShape)
}

func TestDense_AtSet_Bounds(t *testing.T) {
	m := mustDense(t, 2, 2)
	for _, tc := range []struct{ i, j int }{{-1, 0}, {0, -1}, {2, 0}, {0, 2}} {
		_, err := m.At(tc.i, tc.j)
		require.ErrorIs(t, err, matrix.ErrOutOfRange, "At(%d,%d)", tc.i, tc.j)
		err = m.Set(tc.i, tc.j, 1)
		require.ErrorIs(t, err, matrix.ErrOutOfRange, "Set(%d,%d)", tc.i, tc.j)
	}
}

func TestDense_Clone_Independent(t *testing.T) {
	m := mustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	c := m.Clone()

	// Mutating the clone must not touch the original.
	require.NoError(t, c.Set(0, 0, 99))
	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, v)
}

func TestDense_String(t *testing.T) {
	m := mustFromRows(t, [][]float64{{1, 0.5}, {0, 2}})
	require.Equal(t, "[1, 0.5]\n[0, 2]\n", m.String())
}
