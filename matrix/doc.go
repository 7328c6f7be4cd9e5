// Package matrix provides the dense float64 core used across memomat.
//
// The matrix package provides:
//
//   - The Matrix interface: a uniform abstraction over two-dimensional mutable
//     arrays of float64 values with bounds-checked access and deep cloning.
//   - Dense, a row-major flat-slice implementation tuned for cache
//     friendliness, plus NewIdentity/NewFromRows constructors.
//   - Kernels: Mul (matrix product), Equal (exact entrywise comparison) and
//     AllClose (entrywise comparison within an absolute tolerance).
//   - Central validators (ValidateSquare, ValidateSameShape, ...) returning
//     plain sentinel errors, wrapped uniformly at call sites.
//
// Matrices here are small and dense by assumption; O(r*c) memory and O(n³)
// products are acceptable for the cache-of-inverse workloads this module
// targets. See matrix/ops for LU decomposition and inversion.
package matrix
