// SPDX-License-Identifier: MIT
// Package: polyhedra/polyflag
//
// polyflag.go — flag registration and the Finalize walk.

package polyflag

import (
	"fmt"

	"github.com/golang/geo/r3"

	"github.com/katalvlaran/polyhedra/mesh"
)

const methodFinalize = "Finalize"

// face collects the successor map of one face id.
type face struct {
	id    int64
	start int64           // first declared from-vertex
	next  map[int64]int64 // from -> to
}

// Builder accumulates flags. The zero value is not usable; call New.
type Builder struct {
	vertexIndex map[int64]int
	positions   []r3.Vector

	faceIndex map[int64]int
	faces     []*face
}

// New returns an empty Builder.
func New() *Builder {
	return &Builder{
		vertexIndex: make(map[int64]int),
		faceIndex:   make(map[int64]int),
	}
}

// AddVertex registers id at pos. Re-registering an id keeps its index from
// the first registration and overwrites its position.
func (b *Builder) AddVertex(id int64, pos r3.Vector) {
	if i, ok := b.vertexIndex[id]; ok {
		b.positions[i] = pos
		return
	}
	b.vertexIndex[id] = len(b.positions)
	b.positions = append(b.positions, pos)
}

// AddFaceEdge declares that vertex from is followed by vertex to in face.
func (b *Builder) AddFaceEdge(faceID, from, to int64) {
	i, ok := b.faceIndex[faceID]
	if !ok {
		i = len(b.faces)
		b.faceIndex[faceID] = i
		b.faces = append(b.faces, &face{id: faceID, start: from, next: make(map[int64]int64, 6)})
	}
	b.faces[i].next[from] = to
}

// VertexCount returns the number of registered vertices.
func (b *Builder) VertexCount() int {
	return len(b.positions)
}

// FaceCount returns the number of declared faces.
func (b *Builder) FaceCount() int {
	return len(b.faces)
}

// Finalize converts the flags into a mesh.
//
// Complexity: O(V + Σ face sizes).
func (b *Builder) Finalize() (*mesh.Mesh, error) {
	out := &mesh.Mesh{
		Vertices: make([]r3.Vector, len(b.positions)),
		Polygons: make([]mesh.Polygon, 0, len(b.faces)),
	}
	copy(out.Vertices, b.positions)

	for _, f := range b.faces {
		vs, err := b.walk(f)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", methodFinalize, err)
		}
		out.Polygons = append(out.Polygons, mesh.Polygon{Vertices: vs})
	}

	return out, nil
}

// walk follows f's successor map from f.start, bounded by len(f.next) steps.
func (b *Builder) walk(f *face) ([]int, error) {
	bound := len(f.next)
	vs := make([]int, 0, bound)
	cur := f.start
	for step := 0; step < bound; step++ {
		idx, ok := b.vertexIndex[cur]
		if !ok {
			return nil, fmt.Errorf("face %d vertex %d: %w", f.id, cur, ErrUnknownVertex)
		}
		vs = append(vs, idx)

		nxt, ok := f.next[cur]
		if !ok {
			return nil, fmt.Errorf("face %d after vertex %d: %w", f.id, cur, ErrOpenCycle)
		}
		if _, ok = b.vertexIndex[nxt]; !ok {
			return nil, fmt.Errorf("face %d vertex %d: %w", f.id, nxt, ErrUnknownVertex)
		}
		cur = nxt
		if cur == f.start {
			break
		}
	}

	switch {
	case cur != f.start:
		return nil, fmt.Errorf("face %d: no return to %d within %d edges: %w", f.id, f.start, bound, ErrBrokenCycle)
	case len(vs) != bound:
		return nil, fmt.Errorf("face %d: closed after %d of %d edges: %w", f.id, len(vs), bound, ErrBrokenCycle)
	case len(vs) < mesh.MinPolygonSides:
		return nil, fmt.Errorf("face %d: %d vertices: %w", f.id, len(vs), ErrShortFace)
	}

	return vs, nil
}
