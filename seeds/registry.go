// SPDX-License-Identifier: MIT
// Package: polyhedra/seeds
//
// registry.go — notation letter → generator table.

package seeds

import (
	"sort"

	"github.com/katalvlaran/polyhedra/mesh"
)

// Generator builds a seed mesh. n is the notation argument (0 when absent);
// the Platonic generators ignore it.
type Generator func(n int) (*mesh.Mesh, error)

// platonicGenerator adapts a fixed solid to the Generator signature.
func platonicGenerator(name PlatonicName) Generator {
	return func(int) (*mesh.Mesh, error) { return Platonic(name) }
}

// generators maps each seed letter to its Generator.
var generators = map[rune]Generator{
	'T': platonicGenerator(Tetra),
	'C': platonicGenerator(Hexa),
	'O': platonicGenerator(Octa),
	'D': platonicGenerator(Dodeca),
	'I': platonicGenerator(Icosa),
	'P': Prism,
	'A': Antiprism,
	'Y': Pyramid,
}

// Lookup returns the generator registered for letter.
func Lookup(letter rune) (Generator, bool) {
	g, ok := generators[letter]
	return g, ok
}

// Letters returns the registered seed letters in ascending order.
func Letters() []rune {
	out := make([]rune, 0, len(generators))
	for r := range generators {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}
