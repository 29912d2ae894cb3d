// SPDX-License-Identifier: MIT

package problem

import "errors"

// Symbol labels one item to be ordered (a city in the demo instance).
type Symbol rune

// String returns the symbol as a one-character string.
func (s Symbol) String() string { return string(rune(s)) }

// Model is the problem contract consumed by the optimizer.
//
// Symbols must return the same distinct symbols, in the same order, on every call.
// Distance may be asymmetric and need not be metric.
type Model interface {
	// Symbols returns the ordered set of symbols to permute.
	Symbols() []Symbol

	// Distance returns the cost of travelling from a to b.
	Distance(a, b Symbol) float64
}

var (
	// ErrNilModel is returned when a nil Model is supplied.
	ErrNilModel = errors.New("problem: model is nil")

	// ErrEmptyModel is returned when a Model exposes no symbols.
	ErrEmptyModel = errors.New("problem: model has no symbols")

	// ErrDuplicateSymbol indicates the symbol set is not a set.
	ErrDuplicateSymbol = errors.New("problem: duplicate symbol")

	// ErrUnknownSymbol indicates a symbol that does not belong to the model.
	ErrUnknownSymbol = errors.New("problem: unknown symbol")

	// ErrTooManyCities is returned when the letter alphabet cannot label n cities.
	ErrTooManyCities = errors.New("problem: too many cities")

	// ErrNonSquare signals a cost table that is not n×n.
	ErrNonSquare = errors.New("problem: cost table is not square")

	// ErrDimensionMismatch signals that table size and symbol count disagree.
	ErrDimensionMismatch = errors.New("problem: dimension mismatch")

	// ErrNaNInf signals a NaN or ±Inf cost.
	ErrNaNInf = errors.New("problem: NaN or Inf cost")

	// ErrNegativeWeight signals a negative cost.
	ErrNegativeWeight = errors.New("problem: negative cost")

	// ErrOutOfRange is returned when an arithmetic result does not fit its type.
	ErrOutOfRange = errors.New("problem: arithmetic result out of range")
)

// Validate checks that m is non-nil, non-empty and that its symbols are distinct.
//
// Complexity: O(n) time, O(n) space.
func Validate(m Model) error {
	if m == nil {
		return ErrNilModel
	}
	syms := m.Symbols()
	if len(syms) == 0 {
		return ErrEmptyModel
	}
	seen := make(map[Symbol]struct{}, len(syms))
	for _, s := range syms {
		if _, ok := seen[s]; ok {
			return ErrDuplicateSymbol
		}
		seen[s] = struct{}{}
	}

	return nil
}
