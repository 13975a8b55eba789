// SPDX-License-Identifier: MIT
// Package: polyhedra/conway
//
// notation.go — right-to-left tokenizer and Program.
//
// Grammar (read right to left):
//
//	notation := { operator [digits] } seed [digits]
//
// Digits written after a letter are that letter's argument: "P12" is a
// 12-sided prism, "k4C" kis on the quads of a cube. Digits accumulate by
// place value while scanning leftwards and reset after each letter.

package conway

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/polyhedra/seeds"
)

// Step is one letter of a notation with its numeric argument (0 when absent).
type Step struct {
	Letter rune
	Arg    int
}

// String renders the step as written in notation.
func (s Step) String() string {
	if s.Arg == 0 {
		return string(s.Letter)
	}
	return string(s.Letter) + strconv.Itoa(s.Arg)
}

// Program is a parsed notation: a seed and the operators to apply to it,
// in application order (rightmost first).
type Program struct {
	Seed      Step
	Operators []Step
}

// String renders the program back into notation.
func (p Program) String() string {
	var sb strings.Builder
	for i := len(p.Operators) - 1; i >= 0; i-- {
		sb.WriteString(p.Operators[i].String())
	}
	sb.WriteString(p.Seed.String())

	return sb.String()
}

// Parse tokenizes notation and checks every letter against the seed and
// operator registries. No geometry is built.
func Parse(notation string) (Program, error) {
	steps, err := scan(methodParse, notation)
	if err != nil {
		return Program{}, err
	}
	if len(steps) == 0 {
		return Program{}, fmt.Errorf("%s: %w", methodParse, ErrEmptyNotation)
	}
	if _, ok := seeds.Lookup(steps[0].Letter); !ok {
		return Program{}, fmt.Errorf("%s: %q in %q: %w", methodParse, steps[0].Letter, notation, ErrUnknownSeed)
	}
	if err = checkOperators(methodParse, notation, steps[1:]); err != nil {
		return Program{}, err
	}

	return Program{Seed: steps[0], Operators: steps[1:]}, nil
}

// parseOperators tokenizes a seedless operator string for Apply.
func parseOperators(operators string) ([]Step, error) {
	steps, err := scan(methodApply, operators)
	if err != nil {
		return nil, err
	}
	if err = checkOperators(methodApply, operators, steps); err != nil {
		return nil, err
	}
	return steps, nil
}

// checkOperators rejects the first step whose letter has no operator.
func checkOperators(method, notation string, steps []Step) error {
	for _, s := range steps {
		if _, ok := defaultOperators[s.Letter]; !ok {
			return fmt.Errorf("%s: %q in %q: %w", method, s.Letter, notation, ErrUnknownOperator)
		}
	}
	return nil
}

// scan splits notation into steps in application order.
// Complexity: O(len(notation)).
func scan(method, notation string) ([]Step, error) {
	runes := []rune(notation)
	steps := make([]Step, 0, len(runes))

	arg, place, digits := 0, 1, 0
	for i := len(runes) - 1; i >= 0; i-- {
		r := runes[i]
		if r >= '0' && r <= '9' {
			if digits == maxArgumentDigits {
				return nil, fmt.Errorf("%s: more than %d digits in %q: %w", method, maxArgumentDigits, notation, ErrArgumentOverflow)
			}
			arg += int(r-'0') * place
			place *= 10
			digits++
			continue
		}
		steps = append(steps, Step{Letter: r, Arg: arg})
		arg, place, digits = 0, 1, 0
	}
	if digits > 0 {
		return nil, fmt.Errorf("%s: leading argument %d in %q: %w", method, arg, notation, ErrDanglingArgument)
	}

	return steps, nil
}
