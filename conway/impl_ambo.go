// SPDX-License-Identifier: MIT
// Package: polyhedra/conway
//
// impl_ambo.go — Ambo (rectify): vertices move to edge midpoints.
//
// Flags:
//   • vertex  mid(a,b) = min(a,b)·V + max(a,b), at the edge midpoint.
//   • face p      : mid(v1,v2) → mid(v2,v3)   (shrunken original face)
//   • face P + v2 : mid(v2,v3) → mid(v1,v2)   (vertex figure of v2)
//
// Complexity:
//   • Time: O(Σ polygon sizes). Space: same.

package conway

import (
	"fmt"

	"github.com/katalvlaran/polyhedra/mesh"
	"github.com/katalvlaran/polyhedra/polyflag"
)

// edgeID returns the order-independent id of the undirected edge {a, b} in
// a mesh with stride vertices.
func edgeID(stride int64, a, b int) int64 {
	if a > b {
		a, b = b, a
	}
	return int64(a)*stride + int64(b)
}

// Ambo returns the rectified mesh: V' = E, F' = F + V.
// Ambo(m) and Ambo(Dual(m)) are combinatorially equal.
func Ambo(m *mesh.Mesh) (*mesh.Mesh, error) {
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", methodAmbo, err)
	}

	stride := int64(m.VertexCount())
	vertexFaces := int64(m.PolygonCount())
	b := polyflag.New()

	for p, poly := range m.Polygons {
		vs := poly.Vertices
		n := len(vs)
		v1, v2 := vs[n-2], vs[n-1]
		for _, v3 := range vs {
			// Each undirected edge is registered once, from its ascending side.
			if v1 < v2 {
				mid := m.Vertices[v1].Add(m.Vertices[v2]).Mul(0.5)
				b.AddVertex(edgeID(stride, v1, v2), mid)
			}
			b.AddFaceEdge(int64(p), edgeID(stride, v1, v2), edgeID(stride, v2, v3))
			b.AddFaceEdge(vertexFaces+int64(v2), edgeID(stride, v2, v3), edgeID(stride, v1, v2))
			v1, v2 = v2, v3
		}
	}

	out, err := b.Finalize()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodAmbo, err)
	}
	return out, nil
}
