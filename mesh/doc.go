// Package mesh defines the shared vertex/polygon representation used by every
// polyhedra package, plus the geometric queries operators depend on.
//
// What:
//
//   - Mesh is a dense vertex slice (r3.Vector) and a polygon slice; a Polygon
//     is a cyclic list of vertex indices plus a material tag.
//   - Polygon center (mean) and normal (normalized sum of fan triangle normals).
//   - Validation of index range, polygon size and repeated consecutive vertices.
//   - Combinatorial statistics: edge count, Euler characteristic, vertex
//     degrees, face-size histogram, convex-hull vertex count.
//   - Sphere normalization: ScaleToSphere and ProjectOntoSphere.
//   - Face/Faces: the per-polygon view handed to rendering adapters.
//
// Winding:
//
//	Polygons are wound so that TriangleNormal(a,b,c) = unit((c-a)×(b-a))
//	points out of the solid. Every seed and operator preserves this.
//
// Lifecycle:
//
//	A Mesh is produced whole by a seed or an operator and is never mutated
//	afterwards; operators always allocate a new Mesh.
//
// Errors:
//
//   - ErrDegeneratePolygon: polygon with fewer than 3 vertices.
//   - ErrVertexOutOfRange:  polygon index outside [0, VertexCount).
//   - ErrRepeatedVertex:    two consecutive polygon indices are equal.
//   - ErrPolygonOutOfRange: polygon index outside [0, PolygonCount).
//   - ErrDegenerateMesh:    every vertex sits at the origin (no extent).
//   - ErrInvalidRadius:     non-positive or non-finite sphere radius.
package mesh
