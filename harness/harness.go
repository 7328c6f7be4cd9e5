// SPDX-License-Identifier: MIT
// Package harness: strategy-parameterized verification of caching-matrix
// designs. Types and sentinel errors first, then the exact and approximate
// passes, then the combined facade.

package harness

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/memomat/matrix"
	"github.com/katalvlaran/memomat/matrix/ops"
)

// Subject is the minimal surface the harness needs from a caching matrix.
// Both cachemat designs satisfy it.
type Subject interface {
	// SetValue replaces the held value and clears any cached derived state.
	SetValue(matrix.Matrix)
	// Value returns a copy of the held value.
	Value() matrix.Matrix
}

// Factory builds a fresh subject from an initial value.
type Factory func(initial matrix.Matrix) (Subject, error)

// InvertFunc obtains the inverse from a subject, forwarding any extra
// options to the underlying inversion routine unchanged.
type InvertFunc func(s Subject, opts ...ops.Option) (matrix.Matrix, error)

// Sentinel errors returned by the harness.
var (
	// ErrNilStrategy indicates a nil Factory or InvertFunc.
	ErrNilStrategy = errors.New("harness: nil factory or invert function")

	// ErrBadPlan indicates a Plan with non-positive trials or size, or an
	// invalid tolerance.
	ErrBadPlan = errors.New("harness: invalid plan")

	// ErrIdentityViolated indicates that value×inverse (or inverse×value)
	// did not reconstruct the identity matrix within the required precision.
	ErrIdentityViolated = errors.New("harness: identity reconstruction failed")

	// ErrCacheUnstable indicates that consecutive invert calls without an
	// intervening SetValue returned unequal results.
	ErrCacheUnstable = errors.New("harness: repeated inverse differs from first result")
)

// exactRepeats is how many consecutive invert calls each exact fixture gets.
const exactRepeats = 3

// approxRepeats is how many invert calls each random trial gets.
const approxRepeats = 2

// Plan configures the approximate pass.
type Plan struct {
	Trials   int     // number of random matrices; > 0
	Size     int     // matrix dimension n; > 0
	Seed     int64   // RNG seed, fixed for reproducibility
	PivotTol float64 // passed through to the inverter via ops.WithTolerance
	CheckTol float64 // absolute per-entry tolerance for identity checks
}

// DefaultPlan mirrors the documented defaults: four 6×6 trials, seeded,
// pivot tolerance 1e-12 and identity checks within 1e-8.
func DefaultPlan() Plan {
	return Plan{Trials: 4, Size: 6, Seed: 42, PivotTol: 1e-12, CheckTol: 1e-8}
}

// Report summarizes what a verification run actually exercised.
type Report struct {
	ExactCases      int // fixed fixtures run by VerifyExact
	ApproxTrials    int // random trials run by VerifyApprox
	InvertCalls     int // total invert-accessor invocations
	ProductsChecked int // identity products verified
}

// exactFixtures are 2×2 matrices chosen so that LU, substitution and the
// identity products all round to exact float64 results: every entry is a
// small dyadic rational. The last fixture's inverse itself is not dyadic,
// but its products against the value still round to the exact identity.
var exactFixtures = [][][]float64{
	{{2, 0}, {0, 4}},
	{{1, 1}, {0, 1}},
	{{4, 2}, {2, 2}},
	{{1, -0.5}, {-0.5, 1}},
}

// invalidationFixture replaces each exact fixture's value after the repeat
// phase; it differs from every fixture and its inverse [[0.5,-0.5],[0,1]] is
// dyadic, so the post-SetValue identity check stays exact. A stale cache from
// the previous epoch cannot pass it.
var invalidationFixture = [][]float64{{2, 1}, {0, 1}}

// VerifyExact runs every exact fixture through the given strategies:
// build the subject, call invert three times in a row, and require
// value×inverse == I and inverse×value == I exactly on each call, with all
// three results equal to each other.
func VerifyExact(build Factory, invert InvertFunc) (Report, error) {
	var rep Report
	if build == nil || invert == nil {
		return rep, ErrNilStrategy
	}

	for fi, rows := range exactFixtures {
		value, err := matrix.NewFromRows(rows)
		if err != nil {
			return rep, fmt.Errorf("VerifyExact: fixture %d: %w", fi, err)
		}
		subject, err := build(value)
		if err != nil {
			return rep, fmt.Errorf("VerifyExact: fixture %d: factory: %w", fi, err)
		}
		rep.ExactCases++

		var first matrix.Matrix
		for call := 0; call < exactRepeats; call++ {
			inv, err := invert(subject)
			if err != nil {
				return rep, fmt.Errorf("VerifyExact: fixture %d call %d: %w", fi, call, err)
			}
			rep.InvertCalls++

			// Consecutive calls must reproduce the first result exactly;
			// check this before the identity products so an unstable cache
			// is reported as such, not as a precision failure.
			if first == nil {
				first = inv
			} else {
				same, err := matrix.Equal(first, inv)
				if err != nil {
					return rep, fmt.Errorf("VerifyExact: fixture %d call %d: %w", fi, call, err)
				}
				if !same {
					return rep, fmt.Errorf("VerifyExact: fixture %d call %d: %w", fi, call, ErrCacheUnstable)
				}
			}

			if err = checkIdentityExact(value, inv); err != nil {
				return rep, fmt.Errorf("VerifyExact: fixture %d call %d: %w", fi, call, err)
			}
			rep.ProductsChecked += 2
		}

		// Invalidation: replace the value and require the next inverse to
		// match the replacement, not the previous epoch's cache.
		replacement, err := matrix.NewFromRows(invalidationFixture)
		if err != nil {
			return rep, fmt.Errorf("VerifyExact: fixture %d: %w", fi, err)
		}
		subject.SetValue(replacement)
		inv, err := invert(subject)
		if err != nil {
			return rep, fmt.Errorf("VerifyExact: fixture %d invalidation: %w", fi, err)
		}
		rep.InvertCalls++
		if err = checkIdentityExact(replacement, inv); err != nil {
			return rep, fmt.Errorf("VerifyExact: fixture %d invalidation: %w", fi, err)
		}
		rep.ProductsChecked += 2
	}

	return rep, nil
}

// VerifyApprox runs p.Trials random diagonally dominant p.Size×p.Size
// matrices through the strategies, invoking invert twice per trial with
// ops.WithTolerance(p.PivotTol) passed through, and requires
// value×inverse ≈ I within p.CheckTol on every call.
func VerifyApprox(build Factory, invert InvertFunc, p Plan) (Report, error) {
	var rep Report
	if build == nil || invert == nil {
		return rep, ErrNilStrategy
	}
	if p.Trials <= 0 || p.Size <= 0 || p.PivotTol < 0 || p.CheckTol <= 0 {
		return rep, ErrBadPlan
	}

	rng := rand.New(rand.NewSource(p.Seed)) // deterministic fixtures
	for trial := 0; trial < p.Trials; trial++ {
		value := randomDominant(rng, p.Size)
		subject, err := build(value)
		if err != nil {
			return rep, fmt.Errorf("VerifyApprox: trial %d: factory: %w", trial, err)
		}
		rep.ApproxTrials++

		for call := 0; call < approxRepeats; call++ {
			inv, err := invert(subject, ops.WithTolerance(p.PivotTol))
			if err != nil {
				return rep, fmt.Errorf("VerifyApprox: trial %d call %d: %w", trial, call, err)
			}
			rep.InvertCalls++

			prod, err := matrix.Mul(value, inv)
			if err != nil {
				return rep, fmt.Errorf("VerifyApprox: trial %d call %d: %w", trial, call, err)
			}
			I, err := matrix.NewIdentity(p.Size)
			if err != nil {
				return rep, fmt.Errorf("VerifyApprox: trial %d: %w", trial, err)
			}
			ok, err := matrix.AllClose(prod, I, p.CheckTol)
			if err != nil {
				return rep, fmt.Errorf("VerifyApprox: trial %d call %d: %w", trial, call, err)
			}
			if !ok {
				return rep, fmt.Errorf("VerifyApprox: trial %d call %d: %w", trial, call, ErrIdentityViolated)
			}
			rep.ProductsChecked++
		}
	}

	return rep, nil
}

// Verify runs the exact pass then the approximate pass and merges the
// reports. The first violated property aborts the run.
func Verify(build Factory, invert InvertFunc, p Plan) (Report, error) {
	exact, err := VerifyExact(build, invert)
	if err != nil {
		return exact, err
	}
	approx, err := VerifyApprox(build, invert, p)
	exact.ApproxTrials += approx.ApproxTrials
	exact.InvertCalls += approx.InvertCalls
	exact.ProductsChecked += approx.ProductsChecked

	return exact, err
}

// checkIdentityExact requires value×inv == I and inv×value == I exactly.
func checkIdentityExact(value, inv matrix.Matrix) error {
	I, err := matrix.NewIdentity(value.Rows())
	if err != nil {
		return err
	}
	for _, pair := range [][2]matrix.Matrix{{value, inv}, {inv, value}} {
		prod, err := matrix.Mul(pair[0], pair[1])
		if err != nil {
			return err
		}
		same, err := matrix.Equal(prod, I)
		if err != nil {
			return err
		}
		if !same {
			return ErrIdentityViolated
		}
	}

	return nil
}

// randomDominant builds an n×n matrix with entries in [-1,1) and n added to
// the diagonal. Diagonal dominance guarantees invertibility and keeps the
// non-pivoting LU away from zero pivots.
func randomDominant(rng *rand.Rand, n int) matrix.Matrix {
	m, _ := matrix.NewDense(n, n) // n > 0 validated by the caller
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v := 2*rng.Float64() - 1
			if i == j {
				v += float64(n)
			}
			_ = m.Set(i, j, v)
		}
	}

	return m
}
