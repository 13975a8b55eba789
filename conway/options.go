// SPDX-License-Identifier: MIT
// Package: polyhedra/conway
//
// options.go — functional options for Generate and Apply.
//
// Contract (strict):
//   • Options are functional (type Option func(*config)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Operators and Generate themselves never panic, except through the
//     reporter installed by WithStrict.

package conway

import (
	"math"

	"github.com/katalvlaran/polyhedra/diag"
)

// Option customizes Generate or Apply.
type Option func(*config)

// finite reports whether x is neither NaN nor ±Inf.
func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// WithRadius sets the sphere radius the generated mesh is scaled to.
// Panics unless r is positive and finite.
func WithRadius(r float64) Option {
	if !(r > 0) || !finite(r) {
		panic("conway: WithRadius(r<=0 or non-finite)")
	}
	return func(c *config) {
		c.radius = r
	}
}

// WithReporter routes violation reports to r. Panics on nil; use
// diag.Discard to silence reports.
func WithReporter(r diag.Reporter) Option {
	if r == nil {
		panic("conway: WithReporter(nil)")
	}
	return func(c *config) {
		c.reporter = r
	}
}

// WithStrict makes integrity violations panic after they are reported.
// Input errors and degeneracies are still returned as errors.
func WithStrict() Option {
	return func(c *config) {
		c.strict = true
	}
}

// WithKisOffset sets the apex height used by k and the operators built on it.
// Negative values sink the apex into the face. Panics on a non-finite offset.
func WithKisOffset(offset float64) Option {
	if !finite(offset) {
		panic("conway: WithKisOffset(non-finite)")
	}
	return func(c *config) {
		c.kisOffset = offset
	}
}

// WithChamferOffset sets the offset used by c. Panics on a non-finite offset
// or one ≤ -1, which would collapse the original vertices onto the origin.
func WithChamferOffset(offset float64) Option {
	if !finite(offset) || offset <= -1 {
		panic("conway: WithChamferOffset(offset<=-1 or non-finite)")
	}
	return func(c *config) {
		c.chamferOffset = offset
	}
}
