// SPDX-License-Identifier: MIT
// Package: polyhedra/mesh
//
// errors.go — sentinel errors for the mesh package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Context (polygon index, vertex index) is attached with %w at the call site.

package mesh

import "errors"

var (
	// ErrDegeneratePolygon indicates a polygon with fewer than MinPolygonSides vertices.
	ErrDegeneratePolygon = errors.New("mesh: polygon has fewer than 3 vertices")

	// ErrVertexOutOfRange indicates a polygon references a vertex index outside the mesh.
	ErrVertexOutOfRange = errors.New("mesh: vertex index out of range")

	// ErrRepeatedVertex indicates two consecutive vertices of a polygon are identical.
	ErrRepeatedVertex = errors.New("mesh: repeated consecutive vertex")

	// ErrPolygonOutOfRange indicates a polygon index outside the mesh.
	ErrPolygonOutOfRange = errors.New("mesh: polygon index out of range")

	// ErrDegenerateMesh indicates a mesh without spatial extent (all vertices at the origin).
	ErrDegenerateMesh = errors.New("mesh: mesh has no extent")

	// ErrInvalidRadius indicates a non-positive, NaN or infinite sphere radius.
	ErrInvalidRadius = errors.New("mesh: radius must be positive and finite")
)
