// Package objfile writes meshes as Wavefront OBJ text, the hand-off format
// for external renderers and modelling tools.
//
// What:
//
//   - one "v" line per vertex, in mesh order;
//   - one "vn" line per polygon (the flat outward normal);
//   - "usemtl material<k>" whenever the material tag changes;
//   - one "f" line per polygon, 1-based, "v//vn" pairs in winding order.
//
// Coordinates are printed with fixed precision so output is byte-stable
// across runs. Triangulation and texture coordinates are left to the reader.
package objfile
