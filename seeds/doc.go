// Package seeds produces the starter meshes that Conway notation folds
// operators over: the five Platonic solids and the parametric prism,
// antiprism and pyramid families.
//
// What:
//
//   - Tetrahedron, Cube, Octahedron, Dodecahedron, Icosahedron return fresh
//     copies of constant tables (variants_platonic.go); Platonic(name) selects
//     one by PlatonicName.
//   - Prism(n), Antiprism(n), Pyramid(n) build n-fold solids for
//     MinSides ≤ n ≤ MaxSides.
//   - Lookup maps the notation letters T C O D I P A Y to a Generator.
//
// Winding:
//
//	Every face is wound so that mesh.TriangleNormal over its fan points out of
//	the solid. Each directed edge occurs once and its reverse occurs in the
//	neighbouring face, so every seed passes halfedge.Build.
//
// Scale:
//
//	Seeds are roughly unit-sized and centred at the origin. Callers that need
//	a fixed size use mesh.ScaleToSphere.
//
// Errors:
//
//   - ErrTooFewSides:  n < MinSides.
//   - ErrTooManySides: n > MaxSides.
//   - ErrUnknownSolid: PlatonicName outside the enum.
//
// Every failure returns mesh.Empty() alongside the error.
package seeds
