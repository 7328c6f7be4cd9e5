// SPDX-License-Identifier: MIT

// Package ops: functional configuration for the numeric routines.
// This file defines:
//   - Option / options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each knob impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).

package ops

import "math"

// DefaultTolerance is the pivot threshold used when no WithTolerance option
// is supplied: 0 means only an exact zero pivot is treated as singular.
const DefaultTolerance = 0.0

const panicToleranceInvalid = "ops: WithTolerance: tol must be finite, non-negative"

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*options)

// options stores the effective configuration after applying Option setters.
// It is intentionally unexported; public entry points accept `...Option` and
// resolve them via gatherOptions.
type options struct {
	tol float64 // >= 0; DefaultTolerance
}

// WithTolerance sets the singularity threshold: any pivot p with |p| <= tol
// aborts the factorization with ErrSingular. Panics if tol is negative, NaN
// or infinite.
func WithTolerance(tol float64) Option {
	if tol < 0 || math.IsNaN(tol) || math.IsInf(tol, 0) {
		panic(panicToleranceInvalid)
	}

	return func(o *options) { o.tol = tol }
}

// gatherOptions applies opts over the documented defaults.
func gatherOptions(opts ...Option) options {
	o := options{tol: DefaultTolerance}
	for _, apply := range opts {
		apply(&o)
	}

	return o
}
