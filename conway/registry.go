// SPDX-License-Identifier: MIT
// Package: polyhedra/conway
//
// registry.go — notation letter → operator table.
//
//	a ambo    b bevel   c chamfer  d dual    e expand
//	g gyro    j join    k kis      m meta    n needle
//	o ortho   s snub    t truncate z zip
//
// Numeric arguments: k<n> raises pyramids only on n-sided faces and t<n>
// truncates only n-valent vertices. Every other operator ignores its argument.

package conway

import (
	"sort"

	"github.com/katalvlaran/polyhedra/mesh"
)

// Operator transforms a mesh. arg is the notation argument (0 when absent).
type Operator func(m *mesh.Mesh, arg int) (*mesh.Mesh, error)

// fixed adapts an argument-free operator.
func fixed(op func(*mesh.Mesh) (*mesh.Mesh, error)) Operator {
	return func(m *mesh.Mesh, _ int) (*mesh.Mesh, error) { return op(m) }
}

// operatorTable builds the letter table for the given offsets.
func operatorTable(kisOffset, chamferOffset float64) map[rune]Operator {
	return map[rune]Operator{
		'a': fixed(Ambo),
		'b': func(m *mesh.Mesh, _ int) (*mesh.Mesh, error) { return bevel(m, kisOffset) },
		'c': func(m *mesh.Mesh, _ int) (*mesh.Mesh, error) { return Chamfer(m, chamferOffset) },
		'd': fixed(Dual),
		'e': fixed(Expand),
		'g': fixed(Gyro),
		'j': fixed(Join),
		'k': func(m *mesh.Mesh, n int) (*mesh.Mesh, error) { return Kis(m, n, kisOffset) },
		'm': func(m *mesh.Mesh, _ int) (*mesh.Mesh, error) { return meta(m, kisOffset) },
		'n': func(m *mesh.Mesh, _ int) (*mesh.Mesh, error) { return needle(m, kisOffset) },
		'o': fixed(Ortho),
		's': fixed(Snub),
		't': func(m *mesh.Mesh, n int) (*mesh.Mesh, error) { return truncate(m, n, kisOffset) },
		'z': func(m *mesh.Mesh, _ int) (*mesh.Mesh, error) { return zip(m, kisOffset) },
	}
}

// defaultOperators is the table for the default offsets.
var defaultOperators = operatorTable(DefaultKisOffset, DefaultChamferOffset)

// LookupOperator returns the operator registered for letter, bound to the
// default offsets.
func LookupOperator(letter rune) (Operator, bool) {
	op, ok := defaultOperators[letter]
	return op, ok
}

// OperatorLetters returns the registered operator letters in ascending order.
func OperatorLetters() []rune {
	out := make([]rune, 0, len(defaultOperators))
	for r := range defaultOperators {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}
