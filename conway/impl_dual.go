// SPDX-License-Identifier: MIT
// Package: polyhedra/conway
//
// impl_dual.go — Dual: faces become vertices, vertices become faces.
//
// Contract:
//   • Output vertex f is the center of input polygon f.
//   • Output polygon v lists the polygons around input vertex v, as returned
//     by halfedge.Adjacency.VertexRing, which preserves the outward winding.
//   • Input must be a closed manifold (halfedge errors otherwise).
//
// Complexity:
//   • Time: O(V + E·d). Space: O(V + E).

package conway

import (
	"fmt"

	"github.com/katalvlaran/polyhedra/halfedge"
	"github.com/katalvlaran/polyhedra/mesh"
)

// Dual returns the dual of m: V' = F, F' = V, E' = E.
// Applying it twice yields a mesh combinatorially equal to m.
func Dual(m *mesh.Mesh) (*mesh.Mesh, error) {
	adj, err := halfedge.Build(m)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodDual, err)
	}
	centers, err := m.PolygonCenters()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodDual, err)
	}

	out := &mesh.Mesh{
		Vertices: centers,
		Polygons: make([]mesh.Polygon, m.VertexCount()),
	}
	for v := range out.Polygons {
		ring, err := adj.VertexRing(v)
		if err != nil {
			return nil, fmt.Errorf("%s: vertex %d: %w", methodDual, v, err)
		}
		out.Polygons[v] = mesh.Polygon{Vertices: ring}
	}

	return out, nil
}
