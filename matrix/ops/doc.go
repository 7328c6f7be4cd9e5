// Package ops provides the numeric factorization routines behind memomat:
// Doolittle LU decomposition and column-wise matrix inversion.
//
// Overview:
//
//   - LU factors a square matrix into unit-lower and upper triangular parts
//     without pivoting — row order is never permuted, so results are fully
//     deterministic at the cost of rejecting matrices that would need a swap.
//   - Inverse solves L·y = eᵢ then U·x = y for each identity column and
//     assembles the columns into A⁻¹. O(n³) time, O(n²) memory.
//   - WithTolerance treats any pivot p with |p| <= tol as singular, letting
//     callers trade strictness for near-singularity detection. The default
//     tolerance is 0: only an exact zero pivot fails.
//
// Error handling (sentinel errors):
//
//   - ErrSingular — a zero (or within-tolerance) pivot was encountered.
//   - matrix.ErrNonSquare / matrix.ErrNilMatrix — propagated from validation.
//
// Inputs are never mutated; every routine allocates fresh result matrices.
// The package is not thread-safe with respect to a shared mutable input.
package ops
