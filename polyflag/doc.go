// Package polyflag assembles a mesh from "flags": synthetic integer ids for
// vertices and faces plus directed edge declarations per face. Conway
// operators describe their output this way and let Finalize produce dense
// indices and closed polygon cycles.
//
// What:
//
//   - AddVertex(id, pos) upserts a vertex; the first registration of an id
//     fixes its dense index, later calls overwrite its position.
//   - AddFaceEdge(face, from, to) declares that, inside face, vertex from is
//     followed by vertex to. Redeclaring (face, from) overwrites to.
//   - Finalize walks each face from its first declared from-vertex along the
//     declared successors until the cycle closes.
//
// Determinism:
//
//   - Vertex indices follow first-registration order.
//   - Polygons follow first-declaration order of their face ids.
//   - Each polygon starts at the first from-vertex declared for its face.
//     Traversal never depends on map iteration order.
//
// Errors (all are integrity violations of the caller's flag program):
//
//   - ErrUnknownVertex: an edge endpoint was never registered.
//   - ErrOpenCycle:     a vertex in the walk has no declared successor.
//   - ErrBrokenCycle:   the walk does not return to its start within the
//     number of declared edges, or closes early leaving edges unvisited.
//   - ErrShortFace:     the closed cycle has fewer than 3 vertices.
//
// A Builder is single-use and not safe for concurrent use.
package polyflag
