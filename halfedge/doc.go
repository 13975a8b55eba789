// Package halfedge recovers face/edge adjacency from a bare vertex-and-face
// mesh and verifies that it is a closed 2-manifold.
//
// What:
//
//   - Build walks every polygon twice: once to count half-edges per vertex and
//     per polygon (prefix-summed into CSR offset tables), once to write each
//     half-edge (previous→current vertex) into its source vertex bucket while
//     searching the target vertex bucket for the reverse half-edge.
//   - Every half-edge ends up with the polygon across its edge.
//   - VertexRing lists the polygons around a vertex in winding order; the dual
//     operator turns each ring into a face.
//   - PolygonDepths and Shells walk polygons breadth-first across shared
//     edges: n-ring selection around a picked polygon, connected shells.
//
// Layout:
//
//	HalfEdges            polygon-major: polygon p owns [PolygonOffsets[p], PolygonOffsets[p+1])
//	VertexHalfEdges      vertex-major:  vertex v owns  [VertexOffsets[v],  VertexOffsets[v+1])
//	                     (indices into HalfEdges of the half-edges leaving v)
//
// Complexity:
//
//   - Build: O(V + E·d) time with d the maximum vertex degree, O(V + E) memory.
//     The bucket search is degree-bounded, never O(E²).
//   - VertexRing: O(d²) per vertex.
//   - PolygonDepths, Shells: O(P + E).
//
// Errors:
//
//   - ErrInvalidMesh:  the mesh fails mesh.Validate (wrapped).
//   - ErrNonManifold:  duplicate directed edge, edge shared by >2 polygons,
//     or a vertex fan that does not close. Reported as *ManifoldError.
//   - ErrOpenEdge:     a half-edge without an opposite polygon (boundary).
//     Reported as *ManifoldError.
package halfedge
