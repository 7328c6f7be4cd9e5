// SPDX-License-Identifier: MIT
// Package cachemat: the self-caching design. The cached inverse is written
// only from inside Inverse, so the cache invariant cannot be violated by
// external callers. This is the preferred design.

package cachemat

import (
	"github.com/katalvlaran/memomat/matrix"
	"github.com/katalvlaran/memomat/matrix/ops"
)

// SelfCaching is a square matrix that decides on its own when to (re)compute
// its inverse. Invariant: whenever the cache is present, it is exactly the
// inverse of the current value as produced by the configured inverter.
// Not safe for concurrent use.
type SelfCaching struct {
	value         matrix.Matrix // current matrix value, exclusively owned
	cachedInverse matrix.Matrix // cached derived result; nil means absent
	opts          options       // inverter + optional debug logger
}

// NewSelfCaching returns a matrix holding a private copy of initial
// (a 1×1 zero placeholder when initial is nil) with the cache absent.
func NewSelfCaching(initial matrix.Matrix, opts ...Option) *SelfCaching {
	return &SelfCaching{
		value: ownedCopy(initial),
		opts:  gatherOptions(opts...),
	}
}

// SetValue replaces the value with a private copy of v and clears the cached
// inverse in the same call. A nil v installs the placeholder.
func (m *SelfCaching) SetValue(v matrix.Matrix) {
	m.value = ownedCopy(v)
	m.cachedInverse = nil
	m.opts.debugf("SelfCaching: value replaced (%dx%d), cache cleared", m.value.Rows(), m.value.Cols())
}

// Value returns a deep copy of the current value. Pure read, no side effect.
func (m *SelfCaching) Value() matrix.Matrix {
	return m.value.Clone()
}

// Inverse is the only way to obtain the inverse:
//
//	Stage 1 (Fetch): if the cache is present, return a copy of it directly —
//	        no recomputation.
//	Stage 2 (Compute): otherwise invoke the inverter on a private copy of the
//	        current value with the pass-through opts.
//	Stage 3 (Store): persist the result into the object's cache field, then
//	        return a copy of it.
//
// The first call after construction or after SetValue performs the O(n³)
// inversion; subsequent calls are side-effect-free reads until the next
// SetValue. Inverter errors (singular, non-square) propagate unchanged and
// leave the cache absent, so a later call retries.
func (m *SelfCaching) Inverse(opts ...ops.Option) (matrix.Matrix, error) {
	// Stage 1: Fetch
	if m.cachedInverse != nil {
		m.opts.debugf("SelfCaching: cache hit")
		return m.cachedInverse.Clone(), nil
	}

	// Stage 2: Compute
	m.opts.debugf("SelfCaching: cache absent, computing inverse")
	inv, err := m.opts.inverter(m.value.Clone(), opts...)
	if err != nil {
		return nil, err // numerical failure propagates unchanged
	}

	// Stage 3: Store into persistent state, hand out a copy
	m.cachedInverse = inv.Clone()

	return inv, nil
}
