// SPDX-License-Identifier: MIT
// Package: polyhedra/mesh
//
// sphere.go — fitting a mesh onto a sphere centered at the origin.
//
// Both functions assume the polyhedron is centered at the origin; seeds are
// built that way and every operator preserves it up to rounding.

package mesh

import (
	"fmt"
	"math"
)

const (
	methodScaleToSphere     = "ScaleToSphere"
	methodProjectOntoSphere = "ProjectOntoSphere"
)

func validateRadius(method string, radius float64) error {
	if !(radius > 0) || math.IsInf(radius, 0) {
		return fmt.Errorf("%s: radius %v: %w", method, radius, ErrInvalidRadius)
	}
	return nil
}

// ScaleToSphere returns a copy of m uniformly scaled so that its farthest
// vertex from the origin lies exactly at radius. Shape is preserved.
//
// An empty mesh yields an empty mesh and a nil error. A mesh whose vertices
// all sit at the origin yields ErrDegenerateMesh.
// Complexity: O(V + Σ polygon sizes).
func ScaleToSphere(m *Mesh, radius float64) (*Mesh, error) {
	if err := validateRadius(methodScaleToSphere, radius); err != nil {
		return nil, err
	}
	if m.IsEmpty() {
		return Empty(), nil
	}

	farthest2 := 0.0
	for _, v := range m.Vertices {
		if d2 := v.Norm2(); d2 > farthest2 {
			farthest2 = d2
		}
	}
	if farthest2 == 0 {
		return nil, fmt.Errorf("%s: %d vertices at the origin: %w", methodScaleToSphere, m.VertexCount(), ErrDegenerateMesh)
	}

	scale := radius / math.Sqrt(farthest2)
	out := m.Clone()
	for i, v := range out.Vertices {
		out.Vertices[i] = v.Mul(scale)
	}

	return out, nil
}

// ProjectOntoSphere returns a copy of m with every vertex moved along its
// direction from the origin onto the sphere of the given radius. Vertices at
// the origin stay there. Faces are no longer guaranteed planar.
func ProjectOntoSphere(m *Mesh, radius float64) (*Mesh, error) {
	if err := validateRadius(methodProjectOntoSphere, radius); err != nil {
		return nil, err
	}

	out := m.Clone()
	for i, v := range out.Vertices {
		out.Vertices[i] = safeUnit(v, triangleNorm2Epsilon).Mul(radius)
	}

	return out, nil
}
