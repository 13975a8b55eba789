// SPDX-License-Identifier: MIT
// Package: polyhedra/seeds
//
// impl_prism.go — Prism(n) and Antiprism(n) generators.
//
// Contract:
//   • MinSides ≤ n ≤ MaxSides (else mesh.Empty() and ErrTooFewSides/ErrTooManySides).
//   • Bottom ring indices 0..n-1, top ring n..2n-1.
//   • Ring vertex i sits at angle i·θ (θ = 2π/n) on (-cos, -sin); the antiprism
//     top ring is turned by θ/2.
//   • Bottom cap is listed 0..n-1, top cap 2n-1..n (opposite winding).
//   • All edges have equal length.
//
// Complexity:
//   • Time: O(n) vertices + O(n) faces.
//   • Space: O(n).

package seeds

import (
	"math"

	"github.com/golang/geo/r3"

	"github.com/katalvlaran/polyhedra/mesh"
)

// ringPoint returns the unit-radius ring point at angle a and height z.
func ringPoint(a, z float64) r3.Vector {
	return r3.Vector{X: -math.Cos(a), Y: -math.Sin(a), Z: z}
}

// caps returns the bottom cap 0..n-1 and the reversed top cap 2n-1..n.
func caps(n int) (bottom, top mesh.Polygon) {
	bottom.Vertices = make([]int, n)
	top.Vertices = make([]int, n)
	for i := 0; i < n; i++ {
		bottom.Vertices[i] = i
		top.Vertices[i] = 2*n - 1 - i
	}
	return bottom, top
}

// Prism returns the n-gonal prism with unit ring radius and half-height
// sin(π/n), so side faces are squares.
func Prism(n int) (*mesh.Mesh, error) {
	if err := validateSides(methodPrism, n); err != nil {
		return mesh.Empty(), err
	}

	theta := 2 * math.Pi / float64(n)
	h := math.Sin(theta / 2)

	// 1) Two rings, bottom first.
	vs := make([]r3.Vector, 2*n)
	for i := 0; i < n; i++ {
		a := float64(i) * theta
		vs[i] = ringPoint(a, -h)
		vs[n+i] = ringPoint(a, h)
	}

	// 2) n side quads, then the caps.
	polys := make([]mesh.Polygon, 0, n+2)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		polys = append(polys, mesh.Polygon{Vertices: []int{i, n + i, n + j, j}})
	}
	bottom, top := caps(n)
	polys = append(polys, bottom, top)

	return &mesh.Mesh{Vertices: vs, Polygons: polys}, nil
}

// Antiprism returns the n-gonal antiprism: two unit rings turned by half a
// step against each other, joined by 2n equilateral triangles.
//
// The half-height h satisfies (2·sin(θ/4))² + (2h)² = (2·sin(θ/2))², i.e. the
// lateral edge equals the ring edge.
func Antiprism(n int) (*mesh.Mesh, error) {
	if err := validateSides(methodAntiprism, n); err != nil {
		return mesh.Empty(), err
	}

	theta := 2 * math.Pi / float64(n)
	ring := math.Sin(theta / 2)
	twist := math.Sin(theta / 4)
	h := math.Sqrt(ring*ring - twist*twist)

	// 1) Bottom ring at i·θ, top ring at (i+½)·θ.
	vs := make([]r3.Vector, 2*n)
	for i := 0; i < n; i++ {
		vs[i] = ringPoint(float64(i)*theta, -h)
		vs[n+i] = ringPoint((float64(i)+0.5)*theta, h)
	}

	// 2) Caps, then per step one downward and one upward triangle.
	bottom, top := caps(n)
	polys := make([]mesh.Polygon, 0, 2*n+2)
	polys = append(polys, bottom, top)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		polys = append(polys,
			mesh.Polygon{Vertices: []int{i, n + i, j}},
			mesh.Polygon{Vertices: []int{n + i, n + j, j}},
		)
	}

	return &mesh.Mesh{Vertices: vs, Polygons: polys}, nil
}
