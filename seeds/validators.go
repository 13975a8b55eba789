// SPDX-License-Identifier: MIT
// Package: polyhedra/seeds
//
// validators.go — parameter contracts of the parametric generators.

package seeds

import "fmt"

// validateSides ensures MinSides ≤ n ≤ MaxSides.
// Returns "<Method>: n=<n> ...: <sentinel>" otherwise.
//
// Complexity: O(1) time and space.
func validateSides(method string, n int) error {
	if n < MinSides {
		return fmt.Errorf("%s: n=%d < min=%d: %w", method, n, MinSides, ErrTooFewSides)
	}
	if n > MaxSides {
		return fmt.Errorf("%s: n=%d > max=%d: %w", method, n, MaxSides, ErrTooManySides)
	}

	return nil
}
