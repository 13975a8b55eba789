// SPDX-License-Identifier: MIT
// Package: polyhedra/mesh
//
// face.go — the per-polygon view consumed by rendering adapters.
//
// The core commits to positions, one normal per polygon and the material tag.
// Triangulation and texture coordinates belong to the adapter.

package mesh

import (
	"github.com/golang/geo/r3"
)

const methodFace = "Face"

// Face is the rendering view of one polygon.
type Face struct {
	Index     int         // polygon index in the mesh
	Positions []r3.Vector // vertex positions in winding order
	Normal    r3.Vector   // outward unit normal (zero if degenerate area)
	Material  int
}

// Face returns the rendering view of polygon i.
func (m *Mesh) Face(i int) (Face, error) {
	p, err := m.polygon(methodFace, i)
	if err != nil {
		return Face{}, err
	}
	n, err := m.normalOf(methodFace, i, p)
	if err != nil {
		return Face{}, err
	}
	pos := make([]r3.Vector, len(p.Vertices))
	for k, v := range p.Vertices {
		pos[k] = m.Vertices[v]
	}

	return Face{Index: i, Positions: pos, Normal: n, Material: p.Material}, nil
}

// Faces returns the rendering view of every polygon, in polygon order.
// It stops at the first degenerate polygon.
func (m *Mesh) Faces() ([]Face, error) {
	out := make([]Face, 0, m.PolygonCount())
	for i := 0; i < m.PolygonCount(); i++ {
		f, err := m.Face(i)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}

	return out, nil
}
