// SPDX-License-Identifier: MIT
// Package: polyhedra/conway
//
// impl_composite.go — operators expressed as compositions of the primitives.
//
//	Truncate = Dual ∘ Kis ∘ Dual      Needle = Kis ∘ Dual
//	Join     = Dual ∘ Ambo ∘ Dual     Zip    = Dual ∘ Kis
//	Snub     = Dual ∘ Gyro ∘ Dual     Expand = Ambo ∘ Ambo
//	Meta     = Kis ∘ Join             Ortho  = Join ∘ Join
//	Bevel    = Truncate ∘ Ambo
//
// Steps run right to left; the first failing step aborts the chain and its
// error is wrapped with the composite's name.

package conway

import (
	"fmt"

	"github.com/katalvlaran/polyhedra/mesh"
)

// step is one stage of a composite operator.
type step func(*mesh.Mesh) (*mesh.Mesh, error)

// chain applies steps in order, wrapping the first error with method.
func chain(method string, m *mesh.Mesh, steps ...step) (*mesh.Mesh, error) {
	cur := m
	for _, s := range steps {
		next, err := s(cur)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", method, err)
		}
		cur = next
	}

	return cur, nil
}

// kisStep binds the kis parameters.
func kisStep(filter int, offset float64) step {
	return func(m *mesh.Mesh) (*mesh.Mesh, error) { return Kis(m, filter, offset) }
}

// Truncate cuts every vertex off: V' = 2E, F' = F + V.
func Truncate(m *mesh.Mesh) (*mesh.Mesh, error) {
	return truncate(m, KisAllFaces, DefaultKisOffset)
}

// truncate only cuts vertices of degree filter (all when KisAllFaces).
func truncate(m *mesh.Mesh, filter int, offset float64) (*mesh.Mesh, error) {
	return chain(methodTruncate, m, Dual, kisStep(filter, offset), Dual)
}

// Join returns the dual of the ambo of the dual: V' = V + F, F' = E.
func Join(m *mesh.Mesh) (*mesh.Mesh, error) {
	return chain(methodJoin, m, Dual, Ambo, Dual)
}

// Snub returns the dual of Gyro: V' = 2E, F' = F + V + 2E.
func Snub(m *mesh.Mesh) (*mesh.Mesh, error) {
	return chain(methodSnub, m, Dual, Gyro, Dual)
}

// Expand returns Ambo applied twice: V' = 2E, F' = F + V + E.
func Expand(m *mesh.Mesh) (*mesh.Mesh, error) {
	return chain(methodExpand, m, Ambo, Ambo)
}

// Ortho returns Join applied twice: V' = V + F + E, F' = 2E.
func Ortho(m *mesh.Mesh) (*mesh.Mesh, error) {
	return chain(methodOrtho, m, Join, Join)
}

// Meta returns Kis of Join: V' = V + F + E, F' = 4E.
func Meta(m *mesh.Mesh) (*mesh.Mesh, error) {
	return meta(m, DefaultKisOffset)
}

func meta(m *mesh.Mesh, offset float64) (*mesh.Mesh, error) {
	return chain(methodMeta, m, Join, kisStep(KisAllFaces, offset))
}

// Bevel returns Truncate of Ambo: V' = 4E, F' = F + V + E.
func Bevel(m *mesh.Mesh) (*mesh.Mesh, error) {
	return bevel(m, DefaultKisOffset)
}

func bevel(m *mesh.Mesh, offset float64) (*mesh.Mesh, error) {
	return chain(methodBevel, m, Ambo, func(a *mesh.Mesh) (*mesh.Mesh, error) {
		return truncate(a, KisAllFaces, offset)
	})
}

// Needle returns Kis of the dual: V' = V + F, F' = 2E.
func Needle(m *mesh.Mesh) (*mesh.Mesh, error) {
	return needle(m, DefaultKisOffset)
}

func needle(m *mesh.Mesh, offset float64) (*mesh.Mesh, error) {
	return chain(methodNeedle, m, Dual, kisStep(KisAllFaces, offset))
}

// Zip returns the dual of Kis: V' = 2E, F' = V + F.
func Zip(m *mesh.Mesh) (*mesh.Mesh, error) {
	return zip(m, DefaultKisOffset)
}

func zip(m *mesh.Mesh, offset float64) (*mesh.Mesh, error) {
	return chain(methodZip, m, kisStep(KisAllFaces, offset), Dual)
}
