// SPDX-License-Identifier: MIT
// Package: polyhedra/seeds
//
// constants.go — size limits and method tags shared by the generators.

package seeds

//-----------------------------------------------------------------------------
// Method Name Constants
//   used to prefix errors with the generator name for context.
//-----------------------------------------------------------------------------

const (
	methodPlatonic  = "Platonic"
	methodPrism     = "Prism"
	methodAntiprism = "Antiprism"
	methodPyramid   = "Pyramid"
)

//-----------------------------------------------------------------------------
// Side Limits
//-----------------------------------------------------------------------------

// MinSides is the smallest ring size of a prism, antiprism or pyramid.
// Fewer than 3 sides cannot close a cap polygon.
const MinSides = 3

// MaxSides bounds the ring size so a typo such as "P99999999" cannot request
// an unbounded allocation. Complexity impact: O(n) vertices and faces.
const MaxSides = 1 << 16

//-----------------------------------------------------------------------------
// Pyramid Geometry
//-----------------------------------------------------------------------------

// pyramidBaseZ and pyramidApexZ place the base ring and apex so that Pyramid(3)
// is the regular tetrahedron inscribed in the unit sphere.
const (
	pyramidBaseZ = -1.0 / 3.0
	pyramidApexZ = 1.0
)
