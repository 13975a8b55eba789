// SPDX-License-Identifier: MIT
// Package: polyhedra/spatial
//
// index.go — per-polygon bounding boxes and the nearest-box pick.
//
// Contract:
//   • Index is immutable after NewIndex and safe for concurrent queries.
//   • The mesh is read once; later changes to it are not observed.
//
// Complexity:
//   • NewIndex: O(Σ polygon sizes).
//   • PolygonAt, Candidates: O(P).

package spatial

import (
	"fmt"
	"math"

	"github.com/golang/geo/r1"
	"github.com/golang/geo/r3"

	"github.com/katalvlaran/polyhedra/mesh"
)

// DefaultMargin expands every polygon box on each side, so thin or
// axis-aligned polygons still catch points resting slightly off them.
const DefaultMargin = 1.0

const methodNewIndex = "NewIndex"

// Box is a closed axis-aligned box.
type Box struct {
	X, Y, Z r1.Interval
}

// EmptyBox returns a box containing no points.
func EmptyBox() Box {
	return Box{X: r1.EmptyInterval(), Y: r1.EmptyInterval(), Z: r1.EmptyInterval()}
}

// AddPoint returns the smallest box containing b and p.
func (b Box) AddPoint(p r3.Vector) Box {
	return Box{X: b.X.AddPoint(p.X), Y: b.Y.AddPoint(p.Y), Z: b.Z.AddPoint(p.Z)}
}

// Expanded grows every side of b by margin.
func (b Box) Expanded(margin float64) Box {
	return Box{X: b.X.Expanded(margin), Y: b.Y.Expanded(margin), Z: b.Z.Expanded(margin)}
}

// Contains reports whether p lies inside or on b.
func (b Box) Contains(p r3.Vector) bool {
	return b.X.Contains(p.X) && b.Y.Contains(p.Y) && b.Z.Contains(p.Z)
}

// Center returns the midpoint of b.
func (b Box) Center() r3.Vector {
	return r3.Vector{X: b.X.Center(), Y: b.Y.Center(), Z: b.Z.Center()}
}

// IsEmpty reports whether b contains no points.
func (b Box) IsEmpty() bool {
	return b.X.IsEmpty() || b.Y.IsEmpty() || b.Z.IsEmpty()
}

// Index holds one expanded box per polygon of a mesh.
type Index struct {
	boxes []Box
}

// NewIndex validates m and computes the box of every polygon grown by margin.
func NewIndex(m *mesh.Mesh, margin float64) (*Index, error) {
	if margin < 0 || math.IsNaN(margin) || math.IsInf(margin, 0) {
		return nil, fmt.Errorf("%s: margin %v: %w", methodNewIndex, margin, ErrInvalidMargin)
	}
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", methodNewIndex, err)
	}

	boxes := make([]Box, m.PolygonCount())
	for i, p := range m.Polygons {
		b := EmptyBox()
		for _, v := range p.Vertices {
			b = b.AddPoint(m.Vertices[v])
		}
		boxes[i] = b.Expanded(margin)
	}

	return &Index{boxes: boxes}, nil
}

// Len returns the number of indexed polygons.
func (ix *Index) Len() int { return len(ix.boxes) }

// Box returns the expanded box of polygon i.
func (ix *Index) Box(i int) Box { return ix.boxes[i] }

// Candidates returns, in ascending order, every polygon whose box contains p.
func (ix *Index) Candidates(p r3.Vector) []int {
	var out []int
	for i, b := range ix.boxes {
		if b.Contains(p) {
			out = append(out, i)
		}
	}
	return out
}

// PolygonAt returns the polygon whose box contains p and whose box center is
// nearest to p, or -1 when no box contains p.
func (ix *Index) PolygonAt(p r3.Vector) int {
	best, bestDist := -1, math.Inf(1)
	for i, b := range ix.boxes {
		if !b.Contains(p) {
			continue
		}
		// strictly closer wins; ties keep the lower index
		if d := b.Center().Sub(p).Norm2(); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

// PolygonAt is a one-shot lookup with DefaultMargin.
// Build an Index instead when querying the same mesh repeatedly.
func PolygonAt(m *mesh.Mesh, p r3.Vector) (int, error) {
	return PolygonAtMargin(m, p, DefaultMargin)
}

// PolygonAtMargin is PolygonAt with an explicit margin.
func PolygonAtMargin(m *mesh.Mesh, p r3.Vector, margin float64) (int, error) {
	ix, err := NewIndex(m, margin)
	if err != nil {
		return -1, err
	}
	return ix.PolygonAt(p), nil
}
