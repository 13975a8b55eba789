// SPDX-License-Identifier: MIT
// Package: polyhedra/conway
//
// errors.go — sentinel errors for notation parsing.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Operators never define their own sentinels: they wrap the errors of
//     mesh, halfedge and polyflag with the operator name.
//   • Classify maps any error returned by this package onto a diag.Level.

package conway

import "errors"

var (
	// ErrEmptyNotation indicates an empty notation string.
	ErrEmptyNotation = errors.New("conway: empty notation")

	// ErrUnknownSeed indicates the rightmost letter is not a registered seed.
	ErrUnknownSeed = errors.New("conway: unknown seed")

	// ErrUnknownOperator indicates a letter that is not a registered operator.
	ErrUnknownOperator = errors.New("conway: unknown operator")

	// ErrDanglingArgument indicates digits with no letter to their left to consume them.
	ErrDanglingArgument = errors.New("conway: argument without operator")

	// ErrArgumentOverflow indicates a numeric argument with too many digits.
	ErrArgumentOverflow = errors.New("conway: argument too large")
)
