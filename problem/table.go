// SPDX-License-Identifier: MIT

package problem

import (
	"fmt"
	"math"
)

// Table is an explicit cost model: n symbols and an n×n cost table stored
// row-major in a single buffer, cost[i*n+j] = Distance(symbols[i], symbols[j]).
//
// The diagonal is never read by the optimizer (a candidate holds each symbol once),
// so it is not required to be zero.
type Table struct {
	symbols []Symbol
	index   map[Symbol]int
	cost    []float64
}

var _ Model = (*Table)(nil)

// NewTable validates symbols and costs and returns an independent Table.
//
// Contract:
//   - symbols non-empty and distinct,
//   - costs is len(symbols)×len(symbols),
//   - every off-diagonal entry is finite and non-negative.
//
// Complexity: O(n²) time and space.
func NewTable(symbols []Symbol, costs [][]float64) (*Table, error) {
	var n = len(symbols)
	if n == 0 {
		return nil, ErrEmptyModel
	}
	if len(costs) != n {
		return nil, ErrDimensionMismatch
	}

	t := &Table{
		symbols: make([]Symbol, n),
		index:   make(map[Symbol]int, n),
		cost:    make([]float64, n*n),
	}
	copy(t.symbols, symbols)

	var (
		i, j int
		w    float64
	)
	for i = 0; i < n; i++ {
		if _, dup := t.index[symbols[i]]; dup {
			return nil, fmt.Errorf("symbol %q: %w", symbols[i], ErrDuplicateSymbol)
		}
		t.index[symbols[i]] = i
	}
	for i = 0; i < n; i++ {
		if len(costs[i]) != n {
			return nil, ErrNonSquare
		}
		for j = 0; j < n; j++ {
			w = costs[i][j]
			if i != j {
				if math.IsNaN(w) || math.IsInf(w, 0) {
					return nil, fmt.Errorf("cost[%d][%d]: %w", i, j, ErrNaNInf)
				}
				if w < 0 {
					return nil, fmt.Errorf("cost[%d][%d]: %w", i, j, ErrNegativeWeight)
				}
			}
			t.cost[i*n+j] = w
		}
	}

	return t, nil
}

// Precompute snapshots m into a Table by evaluating Distance for every ordered pair.
// Useful when m.Distance is expensive: the optimizer calls it N-1 times per evaluation.
//
// Complexity: O(n²) Distance calls.
func Precompute(m Model) (*Table, error) {
	if err := Validate(m); err != nil {
		return nil, err
	}
	syms := m.Symbols()
	n := len(syms)
	costs := make([][]float64, n)

	var i, j int
	for i = 0; i < n; i++ {
		costs[i] = make([]float64, n)
		for j = 0; j < n; j++ {
			if i == j {
				continue
			}
			costs[i][j] = m.Distance(syms[i], syms[j])
		}
	}

	return NewTable(syms, costs)
}

// Symbols returns a copy of the table's symbols in construction order.
func (t *Table) Symbols() []Symbol {
	out := make([]Symbol, len(t.symbols))
	copy(out, t.symbols)
	return out
}

// Len returns the number of symbols.
func (t *Table) Len() int { return len(t.symbols) }

// Distance looks up the cost a→b. Unknown symbols cost +Inf, so a candidate
// containing them can never beat a valid one.
func (t *Table) Distance(a, b Symbol) float64 {
	i, ok := t.index[a]
	if !ok {
		return math.Inf(1)
	}
	j, ok := t.index[b]
	if !ok {
		return math.Inf(1)
	}
	return t.cost[i*len(t.symbols)+j]
}

// Cost is the checked variant of Distance.
func (t *Table) Cost(a, b Symbol) (float64, error) {
	i, ok := t.index[a]
	if !ok {
		return 0, fmt.Errorf("symbol %q: %w", a, ErrUnknownSymbol)
	}
	j, ok := t.index[b]
	if !ok {
		return 0, fmt.Errorf("symbol %q: %w", b, ErrUnknownSymbol)
	}
	return t.cost[i*len(t.symbols)+j], nil
}
