// SPDX-License-Identifier: MIT

// Package kernel: functional configuration for N-D kernel construction.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Safe by construction: panic only on invalid parameters (programmer error);
//     shape conflicts with the requested dimensionality are reported by New as errors.
//
// Precedence:
//   - WithBase wins over WithBandwidth; the last WithX of a kind wins.
package kernel

import (
	"math"

	"github.com/katalvlaran/lvkde/matrix"
)

// DefaultBandwidth is the diagonal of the default (isotropic) Cholesky base,
// so the default smoothing matrix is DefaultBandwidth² · I.
const DefaultBandwidth = 1.0

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicBandwidthInvalid = "kernel: WithBandwidth: bandwidth must be finite and > 0"
	panicBaseNil          = "kernel: WithBase: base must be non-nil"
	panicCenterInvalid    = "kernel: WithCenter: center must be finite"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; New resolves them via gatherOptions.
type Options struct {
	center    matrix.Vector // nil ⇒ zero center
	base      *matrix.Dense // nil ⇒ bandwidth·I
	bandwidth float64       // DefaultBandwidth
}

// WithCenter sets the kernel center. The vector is copied.
// New rejects a center whose length differs from the requested dimensions.
// Panics when any coordinate is NaN or ±Inf.
func WithCenter(c matrix.Vector) Option {
	for _, v := range c {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			panic(panicCenterInvalid)
		}
	}
	cp := c.Clone()

	return func(o *Options) { o.center = cp }
}

// WithBase sets the Cholesky base L (smoothing H = L·Lᵀ). The matrix is copied.
// New rejects a base that is not dims×dims.
// Panics on a nil base.
func WithBase(l *matrix.Dense) Option {
	if l == nil {
		panic(panicBaseNil)
	}
	cp := l.Copy()

	return func(o *Options) { o.base = cp }
}

// WithBandwidth sets an isotropic base b·I (smoothing b²·I).
// Ignored when WithBase is also given.
// Panics unless b is finite and > 0.
func WithBandwidth(b float64) Option {
	if math.IsNaN(b) || math.IsInf(b, 0) || b <= 0 {
		panic(panicBandwidthInvalid)
	}

	return func(o *Options) { o.bandwidth = b }
}

// gatherOptions applies opts over the documented defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{bandwidth: DefaultBandwidth}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
