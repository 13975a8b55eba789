// SPDX-License-Identifier: MIT
// Package: polyhedra/seeds
//
// variants_platonic.go — canonical vertex and face tables of the Platonic solids.
//
// Design:
//   • Single source of truth for the five Platonic seeds (positions and faces).
//   • Tables are package-level and never mutated; generators copy them.
//
// Winding:
//   • Faces are listed so that mesh.TriangleNormal(v0, v1, v2) points outward.
//
// AI-Hints:
//   • Add alternative embeddings as new enums and tables only; the existing
//     index orders are part of the public contract (operator output depends on them).

package seeds

import "github.com/golang/geo/r3"

// PlatonicName enumerates the five Platonic solids.
type PlatonicName int

// Enum values (stable ordering).
const (
	Tetra  PlatonicName = iota // V=4,  F=4
	Hexa                       // V=8,  F=6 (cube)
	Octa                       // V=6,  F=8
	Dodeca                     // V=20, F=12
	Icosa                      // V=12, F=20
)

// String provides a readable identifier for logs and errors.
func (p PlatonicName) String() string {
	switch p {
	case Tetra:
		return "Tetrahedron"
	case Hexa:
		return "Cube"
	case Octa:
		return "Octahedron"
	case Dodeca:
		return "Dodecahedron"
	case Icosa:
		return "Icosahedron"
	default:
		return "Unknown"
	}
}

// platonicTable is the raw data of one solid.
type platonicTable struct {
	vertices []r3.Vector
	faces    [][]int
}

// platonicTables maps each PlatonicName to its table.
var platonicTables = map[PlatonicName]platonicTable{
	// -------------------------------------------------------------------------
	// Tetrahedron: alternate corners of the cube [-1,1]³.
	// -------------------------------------------------------------------------
	Tetra: {
		vertices: []r3.Vector{
			{X: 1, Y: 1, Z: 1},
			{X: 1, Y: -1, Z: -1},
			{X: -1, Y: 1, Z: -1},
			{X: -1, Y: -1, Z: 1},
		},
		faces: [][]int{
			{0, 2, 1}, {0, 3, 2}, {0, 1, 3}, {1, 2, 3},
		},
	},

	// -------------------------------------------------------------------------
	// Cube: corners at ±0.707 (circumradius ≈ 1.22).
	//
	// Layout:
	//   Top ring (z>0):    0(+,+) 1(-,+) 2(-,-) 3(+,-)
	//   Bottom ring (z<0): 4(+,-) 5(+,+) 6(-,+) 7(-,-)
	// -------------------------------------------------------------------------
	Hexa: {
		vertices: []r3.Vector{
			{X: 0.707, Y: 0.707, Z: 0.707},
			{X: -0.707, Y: 0.707, Z: 0.707},
			{X: -0.707, Y: -0.707, Z: 0.707},
			{X: 0.707, Y: -0.707, Z: 0.707},
			{X: 0.707, Y: -0.707, Z: -0.707},
			{X: 0.707, Y: 0.707, Z: -0.707},
			{X: -0.707, Y: 0.707, Z: -0.707},
			{X: -0.707, Y: -0.707, Z: -0.707},
		},
		faces: [][]int{
			{3, 2, 1, 0},
			{3, 0, 5, 4},
			{0, 1, 6, 5},
			{1, 2, 7, 6},
			{2, 3, 4, 7},
			{5, 6, 7, 4},
		},
	},

	// -------------------------------------------------------------------------
	// Octahedron: poles 0 (top) and 5 (bottom), equator 1..4 counter-clockwise.
	// -------------------------------------------------------------------------
	Octa: {
		vertices: []r3.Vector{
			{X: 0, Y: 0, Z: 1.414},
			{X: 1.414, Y: 0, Z: 0},
			{X: 0, Y: 1.414, Z: 0},
			{X: -1.414, Y: 0, Z: 0},
			{X: 0, Y: -1.414, Z: 0},
			{X: 0, Y: 0, Z: -1.414},
		},
		faces: [][]int{
			{0, 2, 1}, {0, 3, 2}, {0, 4, 3}, {0, 1, 4},
			{1, 5, 4}, {1, 2, 5}, {2, 3, 5}, {3, 4, 5},
		},
	},

	// -------------------------------------------------------------------------
	// Dodecahedron: vertex 0 at the north pole, 19 at the south pole.
	// -------------------------------------------------------------------------
	Dodeca: {
		vertices: []r3.Vector{
			{X: 0, Y: 0, Z: 1.07047},
			{X: 0.713644, Y: 0, Z: 0.797878},
			{X: -0.356822, Y: 0.618, Z: 0.797878},
			{X: -0.356822, Y: -0.618, Z: 0.797878},
			{X: 0.797878, Y: 0.618034, Z: 0.356822},
			{X: 0.797878, Y: -0.618, Z: 0.356822},
			{X: -0.934172, Y: 0.381966, Z: 0.356822},
			{X: 0.136294, Y: 1.0, Z: 0.356822},
			{X: 0.136294, Y: -1.0, Z: 0.356822},
			{X: -0.934172, Y: -0.381966, Z: 0.356822},
			{X: 0.934172, Y: 0.381966, Z: -0.356822},
			{X: 0.934172, Y: -0.381966, Z: -0.356822},
			{X: -0.797878, Y: 0.618, Z: -0.356822},
			{X: -0.136294, Y: 1.0, Z: -0.356822},
			{X: -0.136294, Y: -1.0, Z: -0.356822},
			{X: -0.797878, Y: -0.618034, Z: -0.356822},
			{X: 0.356822, Y: 0.618, Z: -0.797878},
			{X: 0.356822, Y: -0.618, Z: -0.797878},
			{X: -0.713644, Y: 0, Z: -0.797878},
			{X: 0, Y: 0, Z: -1.07047},
		},
		faces: [][]int{
			{0, 2, 7, 4, 1},
			{0, 3, 9, 6, 2},
			{0, 1, 5, 8, 3},
			{1, 4, 10, 11, 5},
			{2, 6, 12, 13, 7},
			{3, 8, 14, 15, 9},
			{4, 7, 13, 16, 10},
			{5, 11, 17, 14, 8},
			{6, 9, 15, 18, 12},
			{10, 16, 19, 17, 11},
			{12, 18, 19, 16, 13},
			{14, 17, 19, 18, 15},
		},
	},

	// -------------------------------------------------------------------------
	// Icosahedron: vertex 0 at the north pole, 11 at the south pole,
	// two staggered rings of five in between.
	// -------------------------------------------------------------------------
	Icosa: {
		vertices: []r3.Vector{
			{X: 0, Y: 0, Z: 1.176},
			{X: 1.051, Y: 0, Z: 0.526},
			{X: 0.324, Y: 1.0, Z: 0.525},
			{X: -0.851, Y: 0.618, Z: 0.526},
			{X: -0.851, Y: -0.618, Z: 0.526},
			{X: 0.325, Y: -1.0, Z: 0.526},
			{X: 0.851, Y: 0.618, Z: -0.526},
			{X: 0.851, Y: -0.618, Z: -0.526},
			{X: -0.325, Y: 1.0, Z: -0.526},
			{X: -1.051, Y: 0, Z: -0.526},
			{X: -0.325, Y: -1.0, Z: -0.526},
			{X: 0, Y: 0, Z: -1.176},
		},
		faces: [][]int{
			{0, 2, 1}, {0, 3, 2}, {0, 4, 3}, {0, 5, 4}, {0, 1, 5},
			{1, 7, 5}, {1, 6, 7}, {1, 2, 6}, {2, 8, 6}, {2, 3, 8},
			{3, 9, 8}, {3, 4, 9}, {4, 10, 9}, {4, 5, 10}, {5, 7, 10},
			{6, 11, 7}, {6, 8, 11}, {7, 11, 10}, {8, 9, 11}, {9, 10, 11},
		},
	},
}
