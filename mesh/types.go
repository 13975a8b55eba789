// SPDX-License-Identifier: MIT
// Package: polyhedra/mesh
//
// types.go — Polygon, Mesh and their constructors.

package mesh

import (
	"fmt"

	"github.com/golang/geo/r3"
)

// MinPolygonSides is the smallest vertex count of a valid polygon.
const MinPolygonSides = 3

const methodValidate = "Validate"

// Polygon is a cyclic sequence of vertex indices plus a material tag.
// Material is not used by the topology engine; it is carried for renderers.
type Polygon struct {
	Vertices []int
	Material int
}

// NewPolygon returns a polygon over the given indices with material 0.
// The index slice is copied.
func NewPolygon(indices ...int) Polygon {
	vs := make([]int, len(indices))
	copy(vs, indices)
	return Polygon{Vertices: vs}
}

// Len returns the number of sides.
func (p Polygon) Len() int {
	return len(p.Vertices)
}

// clone deep-copies the index slice.
func (p Polygon) clone() Polygon {
	vs := make([]int, len(p.Vertices))
	copy(vs, p.Vertices)
	return Polygon{Vertices: vs, Material: p.Material}
}

// Mesh is a vertex sequence plus a polygon sequence. Vertices are identified
// only by their dense index.
type Mesh struct {
	Vertices []r3.Vector
	Polygons []Polygon
}

// Empty returns a mesh with zero vertices and zero polygons. Failed
// generations return it so callers can test IsEmpty.
func Empty() *Mesh {
	return &Mesh{}
}

// New builds a mesh from deep copies of vertices and polygons.
// It does not validate; call Validate when the input is untrusted.
func New(vertices []r3.Vector, polygons []Polygon) *Mesh {
	m := &Mesh{
		Vertices: make([]r3.Vector, len(vertices)),
		Polygons: make([]Polygon, len(polygons)),
	}
	copy(m.Vertices, vertices)
	for i, p := range polygons {
		m.Polygons[i] = p.clone()
	}

	return m
}

// Clone returns a deep copy of m. A nil receiver yields an empty mesh.
func (m *Mesh) Clone() *Mesh {
	if m == nil {
		return Empty()
	}
	return New(m.Vertices, m.Polygons)
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	if m == nil {
		return 0
	}
	return len(m.Vertices)
}

// PolygonCount returns the number of polygons.
func (m *Mesh) PolygonCount() int {
	if m == nil {
		return 0
	}
	return len(m.Polygons)
}

// IsEmpty reports whether m has no vertices and no polygons.
func (m *Mesh) IsEmpty() bool {
	return m.VertexCount() == 0 && m.PolygonCount() == 0
}

// Validate checks the structural invariants every operator relies on:
// each polygon has ≥3 vertices, every index is in range and consecutive
// indices (including last→first) differ. It returns the first violation.
// Complexity: O(Σ polygon sizes).
func (m *Mesh) Validate() error {
	n := m.VertexCount()
	for pi := 0; pi < m.PolygonCount(); pi++ {
		vs := m.Polygons[pi].Vertices
		if len(vs) < MinPolygonSides {
			return fmt.Errorf("%s: polygon %d has %d vertices: %w", methodValidate, pi, len(vs), ErrDegeneratePolygon)
		}
		for k, v := range vs {
			if v < 0 || v >= n {
				return fmt.Errorf("%s: polygon %d index %d = %d (vertices=%d): %w", methodValidate, pi, k, v, n, ErrVertexOutOfRange)
			}
			if next := vs[(k+1)%len(vs)]; next == v {
				return fmt.Errorf("%s: polygon %d repeats vertex %d at %d: %w", methodValidate, pi, v, k, ErrRepeatedVertex)
			}
		}
	}

	return nil
}

// polygon returns the polygon at index i or ErrPolygonOutOfRange.
func (m *Mesh) polygon(method string, i int) (Polygon, error) {
	if i < 0 || i >= m.PolygonCount() {
		return Polygon{}, fmt.Errorf("%s: polygon %d (polygons=%d): %w", method, i, m.PolygonCount(), ErrPolygonOutOfRange)
	}
	return m.Polygons[i], nil
}
