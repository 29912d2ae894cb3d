// SPDX-License-Identifier: MIT

// Package hive - candidate (permutation) model.
//
// A Candidate is one ordering of all symbols of the model. Every constructor in
// this file returns a fresh slice: candidates are copied, never aliased, so a bee
// can overwrite its memory without affecting the Global Best or another bee.
package hive

import (
	"errors"
	"math/rand"
	"strings"

	"github.com/katalvlaran/beehive/problem"
)

// ErrNotPermutation is returned by ValidateCandidate when a candidate is not a
// bijection onto the symbol set.
var ErrNotPermutation = errors.New("hive: candidate is not a permutation of the symbols")

// Candidate is an ordering of every symbol exactly once.
type Candidate []problem.Symbol

// Clone returns an independent copy. Clone of nil is nil.
func (c Candidate) Clone() Candidate {
	if c == nil {
		return nil
	}
	out := make(Candidate, len(c))
	copy(out, c)
	return out
}

// Equal reports whether a and b hold the same symbols in the same order.
func (c Candidate) Equal(other Candidate) bool {
	if len(c) != len(other) {
		return false
	}
	for i := range c {
		if c[i] != other[i] {
			return false
		}
	}
	return true
}

// String renders the path as "A->B->C".
func (c Candidate) String() string {
	var sb strings.Builder
	for i, s := range c {
		if i > 0 {
			sb.WriteString("->")
		}
		sb.WriteString(s.String())
	}
	return sb.String()
}

// generateRandom returns a uniformly shuffled copy of symbols.
//
// Complexity: O(n), n-1 draws.
func generateRandom(symbols []problem.Symbol, rng *rand.Rand) Candidate {
	out := make(Candidate, len(symbols))
	copy(out, symbols)
	shuffleInPlace(out, rng)
	return out
}

// generateNeighbor copies c and swaps one uniformly chosen position with its
// cyclic successor (the last position wraps to the first).
//
// Complexity: O(n) for the copy, exactly one draw.
func generateNeighbor(c Candidate, rng *rand.Rand) Candidate {
	out := c.Clone()
	var (
		n   = len(out)
		pos = rng.Intn(n)
		adj = pos + 1
	)
	if adj == n {
		adj = 0
	}
	out[pos], out[adj] = out[adj], out[pos]
	return out
}

// Evaluate returns the Quality of c: the sum of m.Distance over the N-1 consecutive
// pairs. The path is not closed back to its first symbol. Pure and deterministic.
//
// Complexity: O(n) Distance calls.
func Evaluate(c Candidate, m problem.Model) float64 {
	var (
		sum float64
		k   int
	)
	for k = 0; k+1 < len(c); k++ {
		sum += m.Distance(c[k], c[k+1])
	}
	return sum
}

// ValidateCandidate checks that c is a permutation of symbols.
//
// Complexity: O(n) time and space.
func ValidateCandidate(c Candidate, symbols []problem.Symbol) error {
	if len(c) != len(symbols) {
		return ErrNotPermutation
	}
	want := make(map[problem.Symbol]bool, len(symbols))
	for _, s := range symbols {
		want[s] = true
	}
	for _, s := range c {
		if !want[s] {
			// unknown or duplicate
			return ErrNotPermutation
		}
		want[s] = false
	}
	return nil
}
