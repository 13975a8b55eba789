// SPDX-License-Identifier: MIT
// Package: polyhedra/conway
//
// impl_gyro.go — Gyro: every n-gon becomes n pentagons swirling around its center.
//
// Flags (V vertices, P polygons):
//   • vertex v          : input vertex v, normalized.
//   • vertex V + p      : center of polygon p, normalized.
//   • vertex V+P + a·V+b: point 1/3 of the way from a to b (one per directed edge).
//   • face p·V + v1     : center → g(v1,v2) → g(v2,v1) → v2 → g(v2,v3) → center
//
// The face id p·V + v1 is unique because v1 < V.
//
// Complexity:
//   • Time: O(Σ polygon sizes). Space: same.

package conway

import (
	"fmt"

	"github.com/katalvlaran/polyhedra/mesh"
	"github.com/katalvlaran/polyhedra/polyflag"
)

// Gyro returns the gyro of m: V' = V + F + 2E, F' = 2E.
// Gyro is the dual of snub.
func Gyro(m *mesh.Mesh) (*mesh.Mesh, error) {
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", methodGyro, err)
	}
	centers, err := m.PolygonCenters()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodGyro, err)
	}

	stride := int64(m.VertexCount())
	centerBase := stride
	gyroBase := centerBase + int64(m.PolygonCount())
	gyroID := func(a, b int) int64 {
		return gyroBase + int64(a)*stride + int64(b)
	}

	b := polyflag.New()

	// 1) Original vertices, then face centers, both on the unit sphere.
	for v, pos := range m.Vertices {
		b.AddVertex(int64(v), pos.Normalize())
	}
	for p, c := range centers {
		b.AddVertex(centerBase+int64(p), c.Normalize())
	}

	// 2) One pentagon per (polygon, corner).
	for p, poly := range m.Polygons {
		vs := poly.Vertices
		n := len(vs)
		center := centerBase + int64(p)
		v1, v2 := vs[n-2], vs[n-1]
		for _, v3 := range vs {
			face := int64(p)*stride + int64(v1)
			pos1, pos2 := m.Vertices[v1], m.Vertices[v2]
			b.AddVertex(gyroID(v1, v2), pos1.Add(pos2.Sub(pos1).Mul(gyroSplit)))

			b.AddFaceEdge(face, center, gyroID(v1, v2))
			b.AddFaceEdge(face, gyroID(v1, v2), gyroID(v2, v1))
			b.AddFaceEdge(face, gyroID(v2, v1), int64(v2))
			b.AddFaceEdge(face, int64(v2), gyroID(v2, v3))
			b.AddFaceEdge(face, gyroID(v2, v3), center)

			v1, v2 = v2, v3
		}
	}

	out, err := b.Finalize()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodGyro, err)
	}
	return out, nil
}
