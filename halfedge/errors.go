// SPDX-License-Identifier: MIT
// Package: polyhedra/halfedge
//
// errors.go — sentinels and the typed manifold violation.

package halfedge

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidMesh indicates the input failed structural validation.
	ErrInvalidMesh = errors.New("halfedge: invalid mesh")

	// ErrNonManifold indicates the mesh is not a 2-manifold.
	ErrNonManifold = errors.New("halfedge: mesh is not manifold")

	// ErrOpenEdge indicates a half-edge has no opposite polygon.
	ErrOpenEdge = errors.New("halfedge: half-edge has no opposite polygon")
)

// Kind names the exact manifold violation.
type Kind int

const (
	// KindDuplicateEdge: the same directed edge appears in two polygons
	// (or twice in one), i.e. inconsistent winding or a fin.
	KindDuplicateEdge Kind = iota
	// KindBucketOverflow: a vertex received more half-edges than counted.
	KindBucketOverflow
	// KindAlreadyPaired: the reverse half-edge was already linked to another polygon.
	KindAlreadyPaired
	// KindOpenEdge: no polygon contains the reverse half-edge.
	KindOpenEdge
	// KindBrokenFan: the polygons around a vertex do not form one closed cycle.
	KindBrokenFan
)

// String returns a short description of the violation kind.
func (k Kind) String() string {
	switch k {
	case KindDuplicateEdge:
		return "duplicate directed edge"
	case KindBucketOverflow:
		return "vertex bucket overflow"
	case KindAlreadyPaired:
		return "reverse edge already paired"
	case KindOpenEdge:
		return "open edge"
	case KindBrokenFan:
		return "broken vertex fan"
	default:
		return "unknown"
	}
}

// ManifoldError describes where a manifold violation was detected.
// errors.Is(err, ErrOpenEdge) holds for KindOpenEdge; every other kind
// matches ErrNonManifold.
type ManifoldError struct {
	Kind    Kind
	From    int // source vertex of the offending half-edge (or the fan vertex)
	To      int // target vertex, -1 when not applicable
	Polygon int // owning polygon, -1 when not applicable
}

// Error implements error.
func (e *ManifoldError) Error() string {
	return fmt.Sprintf("%v: %s at edge %d→%d in polygon %d", e.Unwrap(), e.Kind, e.From, e.To, e.Polygon)
}

// Unwrap maps the kind onto its sentinel.
func (e *ManifoldError) Unwrap() error {
	if e.Kind == KindOpenEdge {
		return ErrOpenEdge
	}
	return ErrNonManifold
}
