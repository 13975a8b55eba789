package seeds_test

import (
	"fmt"

	"github.com/katalvlaran/polyhedra/seeds"
)

// ExamplePrism builds a hexagonal prism and prints its face sizes.
func ExamplePrism() {
	m, err := seeds.Prism(6)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(m.VertexCount(), m.PolygonCount(), m.SortedFaceSizes())
	// Output: 12 8 [4 4 4 4 4 4 6 6]
}

// ExampleLookup resolves a notation letter.
func ExampleLookup() {
	gen, _ := seeds.Lookup('D')
	m, _ := gen(0)
	fmt.Println(m.Stats().Euler, m.SortedDegrees()[0])
	// Output: 2 3
}
