// SPDX-License-Identifier: MIT
// Package: polyhedra/spatial
//
// errors.go — sentinel errors for the spatial package.

package spatial

import "errors"

// ErrInvalidMargin indicates a negative or non-finite box margin.
var ErrInvalidMargin = errors.New("spatial: margin must be non-negative and finite")
