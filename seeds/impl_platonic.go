// SPDX-License-Identifier: MIT
// Package: polyhedra/seeds
//
// impl_platonic.go — Platonic seed generators.
//
// Contract:
//   • Returns a deep copy of the table; callers may mutate the result.
//   • Unknown name → mesh.Empty() and ErrUnknownSolid.
//
// Complexity:
//   • O(V+F) copy, constants V≤20, F≤20.

package seeds

import (
	"fmt"

	"github.com/katalvlaran/polyhedra/mesh"
)

// Platonic returns the named Platonic solid.
func Platonic(name PlatonicName) (*mesh.Mesh, error) {
	t, ok := platonicTables[name]
	if !ok {
		return mesh.Empty(), fmt.Errorf("%s: %v (%d): %w", methodPlatonic, name, int(name), ErrUnknownSolid)
	}

	polys := make([]mesh.Polygon, len(t.faces))
	for i, f := range t.faces {
		polys[i] = mesh.NewPolygon(f...)
	}

	return mesh.New(t.vertices, polys), nil
}

// mustPlatonic is used by the named constructors; every enum value has a table.
func mustPlatonic(name PlatonicName) *mesh.Mesh {
	m, err := Platonic(name)
	if err != nil {
		panic(err)
	}
	return m
}

// Tetrahedron returns the regular tetrahedron: 4 vertices, 4 triangles.
func Tetrahedron() *mesh.Mesh { return mustPlatonic(Tetra) }

// Cube returns the cube: 8 vertices, 6 squares.
func Cube() *mesh.Mesh { return mustPlatonic(Hexa) }

// Octahedron returns the regular octahedron: 6 vertices, 8 triangles.
func Octahedron() *mesh.Mesh { return mustPlatonic(Octa) }

// Dodecahedron returns the regular dodecahedron: 20 vertices, 12 pentagons.
func Dodecahedron() *mesh.Mesh { return mustPlatonic(Dodeca) }

// Icosahedron returns the regular icosahedron: 12 vertices, 20 triangles.
func Icosahedron() *mesh.Mesh { return mustPlatonic(Icosa) }
