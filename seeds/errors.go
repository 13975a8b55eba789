// SPDX-License-Identifier: MIT
// Package: polyhedra/seeds
//
// errors.go — sentinel errors for the seeds package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • The offending parameter is attached with %w at the call site.

package seeds

import "errors"

// ErrTooFewSides indicates a parametric seed requested with n < MinSides.
var ErrTooFewSides = errors.New("seeds: too few sides")

// ErrTooManySides indicates a parametric seed requested with n > MaxSides.
var ErrTooManySides = errors.New("seeds: too many sides")

// ErrUnknownSolid indicates a PlatonicName outside the five known solids.
var ErrUnknownSolid = errors.New("seeds: unknown platonic solid")
