// SPDX-License-Identifier: MIT
// Package: polyhedra/conway
//
// generate.go — notation → mesh, operator strings over existing meshes, and
// error classification.

package conway

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/polyhedra/diag"
	"github.com/katalvlaran/polyhedra/mesh"
	"github.com/katalvlaran/polyhedra/seeds"
)

// Generate builds the polyhedron described by notation and scales it so its
// farthest vertex lies at the configured radius.
//
// Every failure returns mesh.Empty() together with the error, after the
// error has been reported at the level Classify assigns.
//
// Example: Generate("tI") is the truncated icosahedron (60 vertices, 32 faces).
func Generate(notation string, opts ...Option) (*mesh.Mesh, error) {
	cfg := newConfig(opts...)

	prog, err := Parse(notation)
	if err != nil {
		return cfg.fail(methodGenerate, err)
	}

	gen, _ := seeds.Lookup(prog.Seed.Letter)
	m, err := gen(prog.Seed.Arg)
	if err != nil {
		return cfg.fail(methodGenerate, fmt.Errorf("%s: seed %v: %w", methodGenerate, prog.Seed, err))
	}

	if m, err = cfg.fold(m, prog.Operators); err != nil {
		return cfg.fail(methodGenerate, fmt.Errorf("%s: %q: %w", methodGenerate, notation, err))
	}

	out, err := mesh.ScaleToSphere(m, cfg.radius)
	if err != nil {
		return cfg.fail(methodGenerate, fmt.Errorf("%s: %q: %w", methodGenerate, notation, err))
	}

	return out, nil
}

// Apply folds an operator string (no seed) over m, rightmost letter first.
// m is not modified and the result is not rescaled. An empty operator string
// returns a copy of m.
func Apply(m *mesh.Mesh, operators string, opts ...Option) (*mesh.Mesh, error) {
	cfg := newConfig(opts...)

	steps, err := parseOperators(operators)
	if err != nil {
		return cfg.fail(methodApply, err)
	}
	out, err := cfg.fold(m.Clone(), steps)
	if err != nil {
		return cfg.fail(methodApply, fmt.Errorf("%s: %q: %w", methodApply, operators, err))
	}

	return out, nil
}

// fold applies steps in order with this config's operator table.
func (c config) fold(m *mesh.Mesh, steps []Step) (*mesh.Mesh, error) {
	table := c.operators()
	for _, s := range steps {
		next, err := table[s.Letter](m, s.Arg)
		if err != nil {
			return nil, fmt.Errorf("operator %v: %w", s, err)
		}
		m = next
	}

	return m, nil
}

// Classify maps an error from this package onto a diagnostic level:
// malformed notation and out-of-range seed arguments are input errors,
// short polygons and zero-extent meshes are degeneracies, everything else
// (non-manifold input, broken flag cycles) is an integrity violation.
func Classify(err error) diag.Level {
	switch {
	case errors.Is(err, ErrEmptyNotation),
		errors.Is(err, ErrUnknownSeed),
		errors.Is(err, ErrUnknownOperator),
		errors.Is(err, ErrDanglingArgument),
		errors.Is(err, ErrArgumentOverflow),
		errors.Is(err, seeds.ErrTooFewSides),
		errors.Is(err, seeds.ErrTooManySides):
		return diag.LevelInput
	case errors.Is(err, mesh.ErrDegeneratePolygon),
		errors.Is(err, mesh.ErrDegenerateMesh):
		return diag.LevelDegeneracy
	default:
		return diag.LevelIntegrity
	}
}
