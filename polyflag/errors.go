// SPDX-License-Identifier: MIT
// Package: polyhedra/polyflag
//
// errors.go — sentinel errors for flag finalization.

package polyflag

import "errors"

var (
	// ErrUnknownVertex indicates a face edge references an id never passed to AddVertex.
	ErrUnknownVertex = errors.New("polyflag: edge references unregistered vertex")

	// ErrOpenCycle indicates a face walk reached a vertex without a declared successor.
	ErrOpenCycle = errors.New("polyflag: face cycle is open")

	// ErrBrokenCycle indicates a face walk that does not close over exactly its declared edges.
	ErrBrokenCycle = errors.New("polyflag: face cycle does not close")

	// ErrShortFace indicates a closed face cycle with fewer than 3 vertices.
	ErrShortFace = errors.New("polyflag: face has fewer than 3 vertices")
)
