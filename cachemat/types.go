// SPDX-License-Identifier: MIT

// Package cachemat: domain types, sentinel errors and functional options
// shared by both caching designs. The designs themselves live in
// external.go and selfcaching.go per the package conventions.
package cachemat

import (
	"errors"

	"github.com/apex/log"

	"github.com/katalvlaran/memomat/matrix"
	"github.com/katalvlaran/memomat/matrix/ops"
)

// Inverter is the pluggable inversion routine both designs delegate to.
// It receives a private copy of the current value plus any pass-through
// options and returns the inverse or a numerical error. The default is
// ops.Inverse; tests substitute counting or recording stubs.
type Inverter func(m matrix.Matrix, opts ...ops.Option) (matrix.Matrix, error)

// ErrNilObject indicates that a nil caching matrix was passed to a free
// orchestration function.
var ErrNilObject = errors.New("cachemat: nil caching matrix")

// placeholderSize is the shape of the default value used when a constructor
// or SetValue receives nil.
const placeholderSize = 1

const (
	panicNilInverter = "cachemat: WithInverter: inverter must be non-nil"
	panicNilLogger   = "cachemat: WithDebugLog: logger must be non-nil"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*options)

// options stores the effective configuration after applying Option setters.
type options struct {
	inverter Inverter      // non-nil; defaults to ops.Inverse
	debug    log.Interface // nil means debug output disabled
}

// WithInverter replaces the inversion routine. Panics on nil.
func WithInverter(fn Inverter) Option {
	if fn == nil {
		panic(panicNilInverter)
	}

	return func(o *options) { o.inverter = fn }
}

// WithDebugLog attaches a debug logger announcing cache hits and
// recomputations. Disabled by default; panics on nil.
func WithDebugLog(l log.Interface) Option {
	if l == nil {
		panic(panicNilLogger)
	}

	return func(o *options) { o.debug = l }
}

// gatherOptions applies opts over the documented defaults.
func gatherOptions(opts ...Option) options {
	o := options{inverter: ops.Inverse}
	for _, apply := range opts {
		apply(&o)
	}

	return o
}

// ownedCopy clones m, substituting the placeholder value when m is nil.
// Every matrix stored by a caching object goes through this helper, so
// instances never alias caller-owned storage.
func ownedCopy(m matrix.Matrix) matrix.Matrix {
	if m == nil {
		p, _ := matrix.NewDense(placeholderSize, placeholderSize) // shape is constant and valid
		return p
	}

	return m.Clone()
}

// debugf emits through the optional debug logger; no-op when disabled.
func (o *options) debugf(format string, args ...interface{}) {
	if o.debug != nil {
		o.debug.Debugf(format, args...)
	}
}
