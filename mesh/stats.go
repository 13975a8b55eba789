// SPDX-License-Identifier: MIT
// Package: polyhedra/mesh
//
// stats.go — combinatorial statistics and the convex-hull check.

package mesh

import (
	"sort"

	"github.com/golang/geo/r3"
	"github.com/markus-wa/quickhull-go/v2"
)

// hullEpsilon is the quickhull plane tolerance used by HullVertexCount.
const hullEpsilon = 1e-9

// Stats summarizes the combinatorics of a mesh.
type Stats struct {
	Vertices  int
	Edges     int
	Polygons  int
	Euler     int         // V - E + F; 2 for a closed genus-0 polyhedron
	FaceSizes map[int]int // sides -> number of polygons
	Degrees   map[int]int // vertex degree -> number of vertices

	// HullVertices counts vertices on the convex hull; equals Vertices for a
	// convex solid.
	HullVertices int
}

// EdgeCount returns half the summed polygon side counts, i.e. the number of
// undirected edges of a closed manifold mesh.
func (m *Mesh) EdgeCount() int {
	sides := 0
	for i := 0; i < m.PolygonCount(); i++ {
		sides += len(m.Polygons[i].Vertices)
	}
	return sides / 2
}

// EulerCharacteristic returns V - E + F.
func (m *Mesh) EulerCharacteristic() int {
	return m.VertexCount() - m.EdgeCount() + m.PolygonCount()
}

// VertexDegrees returns, per vertex, the number of polygons using it. On a
// closed manifold this equals the number of incident edges.
// Indices outside the mesh are ignored.
func (m *Mesh) VertexDegrees() []int {
	deg := make([]int, m.VertexCount())
	for i := 0; i < m.PolygonCount(); i++ {
		for _, v := range m.Polygons[i].Vertices {
			if v >= 0 && v < len(deg) {
				deg[v]++
			}
		}
	}
	return deg
}

// SortedDegrees returns the vertex degree multiset in ascending order.
// Two combinatorially equivalent meshes have equal SortedDegrees.
func (m *Mesh) SortedDegrees() []int {
	deg := m.VertexDegrees()
	sort.Ints(deg)
	return deg
}

// SortedFaceSizes returns the polygon side-count multiset in ascending order.
func (m *Mesh) SortedFaceSizes() []int {
	sizes := make([]int, m.PolygonCount())
	for i := range sizes {
		sizes[i] = len(m.Polygons[i].Vertices)
	}
	sort.Ints(sizes)
	return sizes
}

// Stats computes the combinatorial summary of m.
// Complexity: O(V log V + Σ polygon sizes).
func (m *Mesh) Stats() Stats {
	s := Stats{
		Vertices:  m.VertexCount(),
		Edges:     m.EdgeCount(),
		Polygons:  m.PolygonCount(),
		FaceSizes: make(map[int]int),
		Degrees:   make(map[int]int),
	}
	s.Euler = s.Vertices - s.Edges + s.Polygons
	for i := 0; i < s.Polygons; i++ {
		s.FaceSizes[len(m.Polygons[i].Vertices)]++
	}
	for _, d := range m.VertexDegrees() {
		s.Degrees[d]++
	}
	s.HullVertices = m.HullVertexCount()

	return s
}

// HullVertexCount returns how many distinct mesh vertices lie on the convex
// hull of the vertex set. A convex polyhedron has HullVertexCount() ==
// VertexCount(). Meshes with fewer than 4 vertices return VertexCount().
// Complexity: O(V log V) expected (quickhull).
func (m *Mesh) HullVertexCount() int {
	n := m.VertexCount()
	if n < 4 {
		return n
	}
	points := make([]r3.Vector, n)
	copy(points, m.Vertices)

	qh := new(quickhull.QuickHull)
	hull := qh.ConvexHull(points, true, true, hullEpsilon)

	seen := make(map[int]struct{}, n)
	for _, idx := range hull.Indices {
		seen[idx] = struct{}{}
	}
	return len(seen)
}
