// SPDX-License-Identifier: MIT
// Package cachemat: the externally cached design and its trusted free
// orchestration function. The cache accessors here are deliberately
// under-constrained — see the package documentation for why this defect is
// preserved rather than fixed.

package cachemat

import (
	"fmt"

	"github.com/katalvlaran/memomat/matrix"
	"github.com/katalvlaran/memomat/matrix/ops"
)

// ExternallyCached is a square matrix whose cached inverse is managed by its
// callers: the object stores whatever SetCachedInverse hands it, without
// validation, and ComputeOrFetchInverse is trusted to keep cache and value
// consistent. Not safe for concurrent use.
type ExternallyCached struct {
	value         matrix.Matrix // current matrix value, exclusively owned
	cachedInverse matrix.Matrix // cached derived result; nil means absent
	opts          options       // inverter + optional debug logger
}

// NewExternallyCached returns a matrix holding a private copy of initial
// (a 1×1 zero placeholder when initial is nil) with the cache absent.
func NewExternallyCached(initial matrix.Matrix, opts ...Option) *ExternallyCached {
	return &ExternallyCached{
		value: ownedCopy(initial),
		opts:  gatherOptions(opts...),
	}
}

// SetValue replaces the value with a private copy of v and clears the cached
// inverse in the same call — there is no observable state where the value
// has changed but a stale inverse remains. A nil v installs the placeholder.
func (m *ExternallyCached) SetValue(v matrix.Matrix) {
	m.value = ownedCopy(v)
	m.cachedInverse = nil
	m.opts.debugf("ExternallyCached: value replaced (%dx%d), cache cleared", m.value.Rows(), m.value.Cols())
}

// Value returns a deep copy of the current value. Pure read, no side effect.
func (m *ExternallyCached) Value() matrix.Matrix {
	return m.value.Clone()
}

// SetCachedInverse unconditionally overwrites the cached inverse with a copy
// of candidate, with NO validation that candidate is actually the inverse of
// the current value. Correctness is entirely the caller's burden — this is
// the known defect of the externally cached design, kept intentionally.
// A nil candidate clears the cache.
func (m *ExternallyCached) SetCachedInverse(candidate matrix.Matrix) {
	if candidate == nil {
		m.cachedInverse = nil
		return
	}
	m.cachedInverse = candidate.Clone()
}

// CachedInverse returns a deep copy of the cached inverse as-is, or nil when
// absent. No computation is triggered.
func (m *ExternallyCached) CachedInverse() matrix.Matrix {
	if m.cachedInverse == nil {
		return nil
	}

	return m.cachedInverse.Clone()
}

// ComputeOrFetchInverse is the trusted orchestration over ExternallyCached:
//
//	Stage 1 (Fetch): read the cache via CachedInverse; if present, use it.
//	Stage 2 (Compute): otherwise read the value via Value and invoke the
//	        object's inverter with the pass-through opts.
//	Stage 3 (Store): persist the result via SetCachedInverse and return it.
//
// Failure mode (inherent, not detectable here): if another caller poisons
// the cache through SetCachedInverse between calls, the "cached" inverse
// returned in Stage 1 is silently wrong. Inverter errors (singular,
// non-square) propagate unchanged; the cache stays absent on failure.
func ComputeOrFetchInverse(m *ExternallyCached, opts ...ops.Option) (matrix.Matrix, error) {
	if m == nil {
		return nil, fmt.Errorf("ComputeOrFetchInverse: %w", ErrNilObject)
	}

	// Stage 1: Fetch
	if inv := m.CachedInverse(); inv != nil {
		m.opts.debugf("ComputeOrFetchInverse: cache hit")
		return inv, nil
	}

	// Stage 2: Compute
	m.opts.debugf("ComputeOrFetchInverse: cache absent, computing inverse")
	inv, err := m.opts.inverter(m.Value(), opts...)
	if err != nil {
		return nil, err // numerical failure propagates unchanged
	}

	// Stage 3: Store
	m.SetCachedInverse(inv)

	return inv, nil
}
