// SPDX-License-Identifier: MIT
// Package: polyhedra/seeds
//
// impl_pyramid.go — Pyramid(n) generator.
//
// Contract:
//   • MinSides ≤ n ≤ MaxSides (else mesh.Empty() and ErrTooFewSides/ErrTooManySides).
//   • Base ring indices 0..n-1 at z = -1/3 with radius √8/3, apex index n at (0,0,1).
//   • Polygon 0 is the base; polygon i+1 is the triangle (i, apex, i+1).
//
// Complexity:
//   • Time: O(n). Space: O(n).

package seeds

import (
	"math"

	"github.com/golang/geo/r3"

	"github.com/katalvlaran/polyhedra/mesh"
)

// Pyramid returns the n-gonal pyramid inscribed in the unit sphere.
// Pyramid(3) is the regular tetrahedron.
func Pyramid(n int) (*mesh.Mesh, error) {
	if err := validateSides(methodPyramid, n); err != nil {
		return mesh.Empty(), err
	}

	theta := 2 * math.Pi / float64(n)
	radius := math.Sqrt(1 - pyramidBaseZ*pyramidBaseZ)

	vs := make([]r3.Vector, n+1)
	base := make([]int, n)
	for i := 0; i < n; i++ {
		a := float64(i) * theta
		vs[i] = r3.Vector{X: -radius * math.Cos(a), Y: -radius * math.Sin(a), Z: pyramidBaseZ}
		base[i] = i
	}
	vs[n] = r3.Vector{Z: pyramidApexZ}

	polys := make([]mesh.Polygon, 0, n+1)
	polys = append(polys, mesh.Polygon{Vertices: base})
	for i := 0; i < n; i++ {
		polys = append(polys, mesh.Polygon{Vertices: []int{i, n, (i + 1) % n}})
	}

	return &mesh.Mesh{Vertices: vs, Polygons: polys}, nil
}
