// SPDX-License-Identifier: MIT
// Package: polyhedra/conway
//
// impl_chamfer.go — Chamfer: every edge is replaced by a hexagon.
//
// Flags (V vertices, P polygons):
//   • vertex v           : input vertex v scaled by (1 + offset).
//   • vertex V + p·V + v : copy of v inside polygon p, lifted 1.5·offset along p's normal.
//   • face p             : v1' → v2'                    (shrunken original face)
//   • face P + edge(v1,v2): v2 → v2', v2' → v1', v1' → v1 (half of the edge hexagon;
//     the neighbouring polygon contributes the other half)
//
// Complexity:
//   • Time: O(Σ polygon sizes). Space: same.

package conway

import (
	"fmt"

	"github.com/katalvlaran/polyhedra/mesh"
	"github.com/katalvlaran/polyhedra/polyflag"
)

// Chamfer returns the chamfer of m: V' = V + 2E, F' = F + E.
func Chamfer(m *mesh.Mesh, offset float64) (*mesh.Mesh, error) {
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", methodChamfer, err)
	}
	normals, err := m.PolygonNormals()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodChamfer, err)
	}

	stride := int64(m.VertexCount())
	hexBase := int64(m.PolygonCount())
	inner := func(p, v int) int64 {
		return stride + int64(p)*stride + int64(v)
	}

	b := polyflag.New()
	lift := chamferLift * offset
	grow := 1 + offset

	for p, poly := range m.Polygons {
		lifted := normals[p].Mul(lift)
		v1 := poly.Vertices[len(poly.Vertices)-1]
		for _, v2 := range poly.Vertices {
			pos := m.Vertices[v2]
			b.AddVertex(int64(v2), pos.Mul(grow))
			b.AddVertex(inner(p, v2), pos.Add(lifted))

			b.AddFaceEdge(int64(p), inner(p, v1), inner(p, v2))

			hex := hexBase + edgeID(stride, v1, v2)
			b.AddFaceEdge(hex, int64(v2), inner(p, v2))
			b.AddFaceEdge(hex, inner(p, v2), inner(p, v1))
			b.AddFaceEdge(hex, inner(p, v1), int64(v1))

			v1 = v2
		}
	}

	out, err := b.Finalize()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodChamfer, err)
	}
	return out, nil
}
