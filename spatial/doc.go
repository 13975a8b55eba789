// Package spatial answers "which polygon is at this point?" for selection and
// picking code that holds a generated mesh.
//
// What:
//
//   - Box: an axis-aligned bounding box made of three r1.Interval, one per axis.
//   - Index: per-polygon boxes precomputed once, each expanded by a margin.
//   - PolygonAt / Index.PolygonAt: among the polygons whose expanded box
//     contains the point, the one whose box center is nearest. -1 when no
//     box contains the point.
//   - Index.Candidates: every polygon whose box contains the point.
//
// Why:
//
//	The lookup is a heuristic for discrete pick/selection, not a geodesic
//	query. Boxes are closed: a point on a box face is inside. Equal distances
//	resolve to the lower polygon index.
//
// Errors:
//
//   - ErrInvalidMargin: negative, NaN or infinite margin.
//   - mesh validation errors (wrapped) for polygons with bad indices.
package spatial
