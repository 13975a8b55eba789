// SPDX-License-Identifier: MIT
// Package: polyhedra/halfedge
//
// halfedge.go — CSR half-edge adjacency builder.

package halfedge

import (
	"fmt"

	"github.com/katalvlaran/polyhedra/mesh"
)

const (
	methodBuild      = "Build"
	methodVertexRing = "VertexRing"

	// none marks an unresolved opposite polygon or an empty bucket slot.
	none = -1
)

// HalfEdge is one directed traversal of a polygon edge.
type HalfEdge struct {
	From    int // source vertex
	To      int // target vertex
	Polygon int // owning polygon
	Across  int // polygon on the other side of the edge
}

// Adjacency is the half-edge index of a closed manifold mesh.
// It is derived data: rebuild it for every mesh, never cache it.
type Adjacency struct {
	HalfEdges       []HalfEdge
	PolygonOffsets  []int // len = polygons+1
	VertexOffsets   []int // len = vertices+1
	VertexHalfEdges []int // outgoing half-edge indices, vertex-major

	// vertexTargets[s] is the target vertex of the half-edge stored in
	// VertexHalfEdges[s]; none while the slot is free.
	vertexTargets []int
}

// Build computes the half-edge adjacency of m.
//
// Steps:
//  1. Validate m (indices in range, ≥3 sides, no repeated consecutive vertex).
//  2. Count half-edges per vertex and per polygon; prefix-sum into offsets.
//  3. For each polygon, walk (previous→current) pairs: store the half-edge in
//     the source vertex bucket (rejecting a duplicate directed edge) and look
//     for the reverse half-edge in the target vertex bucket, linking both
//     Across fields when found.
//  4. Any half-edge left without an opposite polygon is an open edge.
//
// Complexity: O(V + E·d) time, O(V + E) memory.
func Build(m *mesh.Mesh) (*Adjacency, error) {
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w: %w", methodBuild, ErrInvalidMesh, err)
	}

	vertexTotal := m.VertexCount()
	polygonTotal := m.PolygonCount()
	a := &Adjacency{
		PolygonOffsets: make([]int, polygonTotal+1),
		VertexOffsets:  make([]int, vertexTotal+1),
	}

	// 1) Count per vertex (stored shifted by one) and per polygon.
	halfEdgeTotal := 0
	for p := 0; p < polygonTotal; p++ {
		vs := m.Polygons[p].Vertices
		for _, v := range vs {
			a.VertexOffsets[v+1]++
		}
		a.PolygonOffsets[p] = halfEdgeTotal
		halfEdgeTotal += len(vs)
	}
	a.PolygonOffsets[polygonTotal] = halfEdgeTotal

	// 2) Prefix-sum the vertex counts into bucket offsets.
	for v := 0; v < vertexTotal; v++ {
		a.VertexOffsets[v+1] += a.VertexOffsets[v]
	}

	a.HalfEdges = make([]HalfEdge, halfEdgeTotal)
	a.VertexHalfEdges = make([]int, halfEdgeTotal)
	a.vertexTargets = make([]int, halfEdgeTotal)
	for s := range a.vertexTargets {
		a.vertexTargets[s] = none
	}

	// 3) Write half-edges and link opposites.
	h := 0
	for p := 0; p < polygonTotal; p++ {
		vs := m.Polygons[p].Vertices
		from := vs[len(vs)-1]
		for _, to := range vs {
			a.HalfEdges[h] = HalfEdge{From: from, To: to, Polygon: p, Across: none}
			if err := a.store(h); err != nil {
				return nil, fmt.Errorf("%s: %w", methodBuild, err)
			}
			if err := a.linkReverse(h); err != nil {
				return nil, fmt.Errorf("%s: %w", methodBuild, err)
			}
			from = to
			h++
		}
	}

	// 4) Closure: every half-edge must have found its twin.
	for i := range a.HalfEdges {
		if he := a.HalfEdges[i]; he.Across == none {
			return nil, fmt.Errorf("%s: %w", methodBuild, &ManifoldError{Kind: KindOpenEdge, From: he.From, To: he.To, Polygon: he.Polygon})
		}
	}

	return a, nil
}

// store writes half-edge h into the first free slot of its source vertex
// bucket. Slots fill in order, so the scan stops at the first free one.
func (a *Adjacency) store(h int) error {
	he := a.HalfEdges[h]
	for s := a.VertexOffsets[he.From]; s < a.VertexOffsets[he.From+1]; s++ {
		switch a.vertexTargets[s] {
		case he.To:
			return &ManifoldError{Kind: KindDuplicateEdge, From: he.From, To: he.To, Polygon: he.Polygon}
		case none:
			a.vertexTargets[s] = he.To
			a.VertexHalfEdges[s] = h
			return nil
		}
	}

	return &ManifoldError{Kind: KindBucketOverflow, From: he.From, To: he.To, Polygon: he.Polygon}
}

// linkReverse searches the target vertex bucket for the reverse of h. When
// absent, the link is made later, when the reverse half-edge is stored.
func (a *Adjacency) linkReverse(h int) error {
	he := &a.HalfEdges[h]
	for s := a.VertexOffsets[he.To]; s < a.VertexOffsets[he.To+1]; s++ {
		switch a.vertexTargets[s] {
		case he.From:
			rev := &a.HalfEdges[a.VertexHalfEdges[s]]
			if rev.Across != none {
				return &ManifoldError{Kind: KindAlreadyPaired, From: he.From, To: he.To, Polygon: he.Polygon}
			}
			he.Across = rev.Polygon
			rev.Across = he.Polygon
			return nil
		case none:
			return nil
		}
	}

	return nil
}

// HalfEdge returns half-edge i.
func (a *Adjacency) HalfEdge(i int) HalfEdge {
	return a.HalfEdges[i]
}

// HalfEdgeCount returns the number of half-edges (Σ polygon sizes).
func (a *Adjacency) HalfEdgeCount() int {
	return len(a.HalfEdges)
}

// EdgeCount returns the number of undirected edges.
func (a *Adjacency) EdgeCount() int {
	return len(a.HalfEdges) / 2
}

// VertexCount returns the number of vertices indexed.
func (a *Adjacency) VertexCount() int {
	return len(a.VertexOffsets) - 1
}

// PolygonCount returns the number of polygons indexed.
func (a *Adjacency) PolygonCount() int {
	return len(a.PolygonOffsets) - 1
}

// Degree returns the number of half-edges leaving vertex v.
func (a *Adjacency) Degree(v int) int {
	return a.VertexOffsets[v+1] - a.VertexOffsets[v]
}

// Outgoing returns the indices (into HalfEdges) of the half-edges leaving v.
// The returned slice aliases internal storage and must not be modified.
func (a *Adjacency) Outgoing(v int) []int {
	return a.VertexHalfEdges[a.VertexOffsets[v]:a.VertexOffsets[v+1]]
}

// PolygonHalfEdges returns the half-edges of polygon p in winding order,
// starting with the edge that enters p's first vertex.
// The returned slice aliases internal storage and must not be modified.
func (a *Adjacency) PolygonHalfEdges(p int) []HalfEdge {
	return a.HalfEdges[a.PolygonOffsets[p]:a.PolygonOffsets[p+1]]
}

// VertexRing returns the polygons around vertex v in the winding order of the
// mesh: starting from any outgoing half-edge h0 it emits Across(h0),
// Polygon(h0), then repeatedly the polygon of the outgoing half-edge whose
// Across is the last emitted polygon, until the ring returns to Across(h0).
//
// Returns a *ManifoldError of KindBrokenFan when the fan does not close in
// exactly Degree(v) polygons.
// Complexity: O(d²) for a vertex of degree d.
func (a *Adjacency) VertexRing(v int) ([]int, error) {
	out := a.Outgoing(v)
	d := len(out)
	if d == 0 {
		return nil, fmt.Errorf("%s: %w", methodVertexRing, &ManifoldError{Kind: KindBrokenFan, From: v, To: none, Polygon: none})
	}

	first := a.HalfEdges[out[0]]
	ring := make([]int, 0, d)
	ring = append(ring, first.Across, first.Polygon)
	last := first.Polygon

	for len(ring) <= d {
		next := none
		for _, h := range out[1:] {
			if he := a.HalfEdges[h]; he.Across == last {
				next = he.Polygon
				break
			}
		}
		if next == none {
			return nil, fmt.Errorf("%s: %w", methodVertexRing, &ManifoldError{Kind: KindBrokenFan, From: v, To: none, Polygon: last})
		}
		if next == first.Across {
			break
		}
		ring = append(ring, next)
		last = next
	}

	if len(ring) != d {
		return nil, fmt.Errorf("%s: %w", methodVertexRing, &ManifoldError{Kind: KindBrokenFan, From: v, To: none, Polygon: first.Polygon})
	}

	return ring, nil
}
