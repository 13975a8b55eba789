// Package conway implements Conway polyhedron notation: topological
// operators over closed manifold meshes and a parser that folds a notation
// string such as "tktI" into a mesh.
//
// What:
//
//   - Primitive operators: Dual (via halfedge vertex rings), Kis (direct
//     construction), Ambo, Gyro and Chamfer (via polyflag).
//   - Composite operators: Truncate, Join, Snub, Expand, Ortho, Meta, Bevel,
//     Needle, Zip (see impl_composite.go).
//   - Generate(notation) parses right to left: the rightmost letter picks a
//     seed (T C O D I P A Y), each letter to its left applies an operator
//     (a b c d e g j k m n o s t z), digits after a letter are its argument.
//     The result is scaled so the farthest vertex lies at the radius.
//   - Apply(m, operators) folds an operator string over an existing mesh.
//
// Why:
//
//   - Every operator is a pure function: the input mesh is never modified,
//     and no state survives between calls, so operators may run concurrently
//     on different meshes.
//
// Determinism:
//
//   - Output vertex and polygon order depends only on input order, never on
//     map iteration, so equal inputs give identical outputs.
//
// Errors and diagnostics:
//
//   - Notation errors: ErrEmptyNotation, ErrUnknownSeed, ErrUnknownOperator,
//     ErrDanglingArgument, ErrArgumentOverflow.
//   - Operator errors wrap mesh, halfedge and polyflag sentinels with the
//     operator name, e.g. "Truncate: Dual: Build: halfedge: ...".
//   - Generate and Apply return mesh.Empty() with the error and report it to
//     the configured diag.Reporter (default: slog) at the level Classify
//     assigns. WithStrict makes integrity violations panic.
//
// Complexity:
//
//   - Each primitive is linear in the size of its input (Dual: O(V + E·d)).
//     Each operator multiplies the mesh size by a constant, so a notation
//     with k operators costs O(c^k) in the seed size.
package conway
