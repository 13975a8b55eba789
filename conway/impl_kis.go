// SPDX-License-Identifier: MIT
// Package: polyhedra/conway
//
// impl_kis.go — Kis: raise a pyramid on selected faces.
//
// Contract:
//   • filter == KisAllFaces selects every polygon, otherwise only polygons
//     with exactly filter sides.
//   • Input vertices keep their indices; the k-th selected polygon gets apex
//     V+k at center + offset·normal.
//   • Output polygons follow input order: a selected n-gon expands in place
//     into n triangles (prev, cur, apex); others are copied. Triangles keep
//     the material of their source polygon.
//
// Complexity:
//   • Time: O(V + Σ polygon sizes). Space: same.

package conway

import (
	"fmt"

	"github.com/golang/geo/r3"

	"github.com/katalvlaran/polyhedra/mesh"
)

// Kis replaces every polygon with filter sides (all polygons when filter is
// KisAllFaces) by a fan of triangles meeting at an apex lifted offset along
// the polygon normal.
func Kis(m *mesh.Mesh, filter int, offset float64) (*mesh.Mesh, error) {
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", methodKis, err)
	}

	selected := func(p mesh.Polygon) bool {
		return filter == KisAllFaces || filter == p.Len()
	}

	// 1) Size the output exactly.
	apexes, polygons := 0, 0
	for _, p := range m.Polygons {
		if selected(p) {
			apexes++
			polygons += p.Len()
		} else {
			polygons++
		}
	}

	vertexTotal := m.VertexCount()
	out := &mesh.Mesh{
		Vertices: make([]r3.Vector, vertexTotal, vertexTotal+apexes),
		Polygons: make([]mesh.Polygon, 0, polygons),
	}
	copy(out.Vertices, m.Vertices)

	// 2) Emit fans and copies in input order.
	for i, p := range m.Polygons {
		if !selected(p) {
			out.Polygons = append(out.Polygons, mesh.Polygon{
				Vertices: append([]int(nil), p.Vertices...),
				Material: p.Material,
			})
			continue
		}

		center, err := m.PolygonCenter(i)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", methodKis, err)
		}
		normal, err := m.PolygonNormal(i)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", methodKis, err)
		}
		apex := len(out.Vertices)
		out.Vertices = append(out.Vertices, center.Add(normal.Mul(offset)))

		prev := p.Vertices[p.Len()-1]
		for _, cur := range p.Vertices {
			out.Polygons = append(out.Polygons, mesh.Polygon{
				Vertices: []int{prev, cur, apex},
				Material: p.Material,
			})
			prev = cur
		}
	}

	return out, nil
}
