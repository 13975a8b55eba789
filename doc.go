// Package polyhedra generates convex polyhedra from Conway notation: a seed
// letter on the right, operators applied leftwards, each step a new mesh.
//
// What is in the box?
//
//	A pure-Go, deterministic, allocation-per-step engine:
//		• Seeds: T C O D I, prisms P<n>, antiprisms A<n>, pyramids Y<n>
//		• Operators: a b c d e g j k m n o s t z, with k<n> and t<n> filters
//		• Half-edge adjacency with typed non-manifold diagnostics
//		• Sphere normalization, polygon picking and OBJ export
//
// Packages:
//
//	mesh/     — Mesh, Polygon, Face; centers, normals, validation, stats
//	halfedge/ — CSR half-edge index, opposite-polygon links, vertex rings
//	seeds/    — platonic tables and the prism/antiprism/pyramid families
//	polyflag/ — flag-cycle builder behind ambo, gyro and chamfer
//	conway/   — operators, notation parser, Generate and Apply
//	spatial/  — bounding-box polygon lookup for pick/selection
//	diag/     — Reporter interface, slog/recorder/strict reporters
//	objfile/  — Wavefront OBJ writer
//	cmd/polyhedra — command-line front end
//
// Quick example:
//
//	m, err := conway.Generate("tktI", conway.WithRadius(1))
//	// 540 vertices, 272 polygons: the "golf ball" geodesic
//
//	go get github.com/katalvlaran/polyhedra
package polyhedra
