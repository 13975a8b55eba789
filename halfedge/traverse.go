// SPDX-License-Identifier: MIT
// Package: polyhedra/halfedge
//
// traverse.go — breadth-first walks over the polygon adjacency.
//
// Two polygons are neighbors when they share an edge (HalfEdge.Across).
// Walks visit neighbors in half-edge order, so results are deterministic.
//
// Complexity: O(P + E) per walk.

package halfedge

import (
	"fmt"

	"github.com/katalvlaran/polyhedra/mesh"
)

const (
	methodPolygonDepths = "PolygonDepths"

	// Unlimited disables the depth bound of PolygonDepths.
	Unlimited = -1
)

// PolygonNeighbors returns the polygons across each edge of p, in winding order.
func (a *Adjacency) PolygonNeighbors(p int) []int {
	hs := a.PolygonHalfEdges(p)
	out := make([]int, len(hs))
	for i, h := range hs {
		out[i] = h.Across
	}
	return out
}

// walker holds the state of one breadth-first walk.
type walker struct {
	adj      *Adjacency
	depth    []int // none = not yet reached
	queue    []int
	maxDepth int
}

func newWalker(a *Adjacency, maxDepth int) *walker {
	depth := make([]int, a.PolygonCount())
	for i := range depth {
		depth[i] = none
	}
	return &walker{adj: a, depth: depth, queue: make([]int, 0, len(depth)), maxDepth: maxDepth}
}

// enqueue marks p reached at depth d.
func (w *walker) enqueue(p, d int) {
	w.depth[p] = d
	w.queue = append(w.queue, p)
}

// run drains the queue and returns the visit order.
func (w *walker) run() []int {
	order := make([]int, 0, len(w.queue))
	for len(w.queue) > 0 {
		p := w.queue[0]
		w.queue = w.queue[1:]
		order = append(order, p)

		d := w.depth[p]
		if w.maxDepth != Unlimited && d >= w.maxDepth {
			continue
		}
		for _, q := range w.adj.PolygonNeighbors(p) {
			if w.depth[q] == none {
				w.enqueue(q, d+1)
			}
		}
	}
	return order
}

// PolygonDepths returns, for every polygon, the number of edge crossings
// from start, or -1 when it is farther than maxDepth (Unlimited for no bound)
// or lies on another shell. This is the n-ring selection around a picked polygon.
func (a *Adjacency) PolygonDepths(start, maxDepth int) ([]int, error) {
	if start < 0 || start >= a.PolygonCount() {
		return nil, fmt.Errorf("%s: polygon %d (polygons=%d): %w", methodPolygonDepths, start, a.PolygonCount(), mesh.ErrPolygonOutOfRange)
	}
	w := newWalker(a, maxDepth)
	w.enqueue(start, 0)
	w.run()

	return w.depth, nil
}

// Shells partitions the polygons into edge-connected components, each listed
// in visit order and seeded from its lowest polygon index. A polyhedron
// produced by a seed and operators always has exactly one shell.
func (a *Adjacency) Shells() [][]int {
	w := newWalker(a, Unlimited)
	var shells [][]int
	for p := 0; p < a.PolygonCount(); p++ {
		if w.depth[p] != none {
			continue
		}
		w.enqueue(p, 0)
		shells = append(shells, w.run())
	}
	return shells
}
