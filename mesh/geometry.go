// SPDX-License-Identifier: MIT
// Package: polyhedra/mesh
//
// geometry.go — polygon centers and normals.
//
// Precision: every computation is float64 end to end.

package mesh

import (
	"fmt"

	"github.com/golang/geo/r3"
)

const (
	methodPolygonCenter = "PolygonCenter"
	methodPolygonNormal = "PolygonNormal"

	// triangleNorm2Epsilon is the squared length below which a raw triangle
	// cross product is treated as degenerate.
	triangleNorm2Epsilon = 1e-12

	// normalNorm2Epsilon is the squared length below which an accumulated
	// polygon normal is treated as degenerate.
	normalNorm2Epsilon = 1e-8
)

// safeUnit normalizes v, returning the zero vector when |v|² < eps.
func safeUnit(v r3.Vector, eps float64) r3.Vector {
	if v.Norm2() < eps {
		return r3.Vector{}
	}
	return v.Normalize()
}

// TriangleNormal returns unit((c-a) × (b-a)).
// The operand order is part of the winding contract: for the mesh winding
// used throughout polyhedra it yields the outward normal.
// A degenerate triangle yields the zero vector.
func TriangleNormal(a, b, c r3.Vector) r3.Vector {
	return safeUnit(c.Sub(a).Cross(b.Sub(a)), triangleNorm2Epsilon)
}

// PolygonCenter returns the arithmetic mean of polygon i's vertex positions.
// Returns the zero vector and ErrDegeneratePolygon for fewer than 3 vertices.
// Complexity: O(k) for a k-gon.
func (m *Mesh) PolygonCenter(i int) (r3.Vector, error) {
	p, err := m.polygon(methodPolygonCenter, i)
	if err != nil {
		return r3.Vector{}, err
	}
	return m.centerOf(methodPolygonCenter, i, p)
}

// PolygonNormal returns the normalized sum of the fan triangle normals of
// polygon i, rooted at its first vertex. Exact for planar convex polygons.
// Returns the zero vector and ErrDegeneratePolygon for fewer than 3 vertices;
// a polygon with no area yields the zero vector and a nil error.
func (m *Mesh) PolygonNormal(i int) (r3.Vector, error) {
	p, err := m.polygon(methodPolygonNormal, i)
	if err != nil {
		return r3.Vector{}, err
	}
	return m.normalOf(methodPolygonNormal, i, p)
}

// PolygonCenters returns the center of every polygon, in polygon order.
func (m *Mesh) PolygonCenters() ([]r3.Vector, error) {
	out := make([]r3.Vector, m.PolygonCount())
	for i, p := range m.Polygons {
		c, err := m.centerOf(methodPolygonCenter, i, p)
		if err != nil {
			return nil, err
		}
		out[i] = c
	}

	return out, nil
}

// PolygonNormals returns the normal of every polygon, in polygon order.
func (m *Mesh) PolygonNormals() ([]r3.Vector, error) {
	out := make([]r3.Vector, m.PolygonCount())
	for i, p := range m.Polygons {
		n, err := m.normalOf(methodPolygonNormal, i, p)
		if err != nil {
			return nil, err
		}
		out[i] = n
	}

	return out, nil
}

func (m *Mesh) centerOf(method string, i int, p Polygon) (r3.Vector, error) {
	if len(p.Vertices) < MinPolygonSides {
		return r3.Vector{}, fmt.Errorf("%s: polygon %d has %d vertices: %w", method, i, len(p.Vertices), ErrDegeneratePolygon)
	}
	var sum r3.Vector
	for _, v := range p.Vertices {
		sum = sum.Add(m.Vertices[v])
	}

	return sum.Mul(1 / float64(len(p.Vertices))), nil
}

func (m *Mesh) normalOf(method string, i int, p Polygon) (r3.Vector, error) {
	vs := p.Vertices
	if len(vs) < MinPolygonSides {
		return r3.Vector{}, fmt.Errorf("%s: polygon %d has %d vertices: %w", method, i, len(vs), ErrDegeneratePolygon)
	}
	// Fan from vertex 0: (v0, v[k-1], v[k]) for k = 2..n-1.
	root := m.Vertices[vs[0]]
	var sum r3.Vector
	for k := 2; k < len(vs); k++ {
		sum = sum.Add(TriangleNormal(root, m.Vertices[vs[k-1]], m.Vertices[vs[k]]))
	}

	return safeUnit(sum, normalNorm2Epsilon), nil
}
