// SPDX-License-Identifier: MIT

package problem

import (
	"math/bits"
	"strings"
)

// MaxCities is the largest demo instance: one city per uppercase Latin letter.
const MaxCities = 26

// Cities is the demo instance: n cities labeled 'A', 'B', ... with an ordinal cost
// that charges 1.0 per letter moving forward and 1.5 per letter moving backward.
// The cheapest ordering is therefore alphabetical, with length n-1.
type Cities struct {
	symbols []Symbol
}

var _ Model = (*Cities)(nil)

// NewCities builds the n-city demo instance.
// Returns ErrEmptyModel for n<1 and ErrTooManyCities for n>MaxCities.
//
// Complexity: O(n).
func NewCities(n int) (*Cities, error) {
	if n < 1 {
		return nil, ErrEmptyModel
	}
	if n > MaxCities {
		return nil, ErrTooManyCities
	}
	syms := make([]Symbol, n)
	var i int
	for i = 0; i < n; i++ {
		syms[i] = Symbol('A' + rune(i))
	}

	return &Cities{symbols: syms}, nil
}

// Symbols returns a copy of the city labels in alphabetical order.
func (c *Cities) Symbols() []Symbol {
	out := make([]Symbol, len(c.symbols))
	copy(out, c.symbols)
	return out
}

// Len returns the number of cities.
func (c *Cities) Len() int { return len(c.symbols) }

// Distance returns 1.0*(b-a) when a<b and 1.5*(a-b) otherwise.
func (c *Cities) Distance(a, b Symbol) float64 {
	if a < b {
		return 1.0 * float64(b-a)
	}
	return 1.5 * float64(a-b)
}

// ShortestPathLength is the length of the alphabetical ordering, the known optimum.
func (c *Cities) ShortestPathLength() float64 {
	return 1.0 * float64(len(c.symbols)-1)
}

// NumberOfPossiblePaths returns the number of orderings of the cities.
// See the package-level NumberOfPossiblePaths for overflow semantics.
func (c *Cities) NumberOfPossiblePaths() (uint64, error) {
	return NumberOfPossiblePaths(len(c.symbols))
}

// String renders the instance as "Cities: A B C ".
func (c *Cities) String() string {
	var sb strings.Builder
	sb.WriteString("Cities: ")
	for _, s := range c.symbols {
		sb.WriteString(s.String())
		sb.WriteByte(' ')
	}
	return sb.String()
}

// NumberOfPossiblePaths returns n! computed with explicit overflow checks.
// Returns ErrOutOfRange when the product no longer fits in a uint64 (n ≥ 21)
// and ErrDimensionMismatch for negative n. 0! is 1.
//
// Complexity: O(n).
func NumberOfPossiblePaths(n int) (uint64, error) {
	if n < 0 {
		return 0, ErrDimensionMismatch
	}
	var (
		answer uint64 = 1
		hi     uint64
		i      int
	)
	for i = 2; i <= n; i++ {
		hi, answer = bits.Mul64(answer, uint64(i))
		if hi != 0 {
			return 0, ErrOutOfRange
		}
	}

	return answer, nil
}
