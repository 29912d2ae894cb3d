// SPDX-License-Identifier: MIT

// Package problem defines the problem model consumed by the bee-colony optimizer:
// a finite ordered set of distinct symbols and a pairwise cost between two symbols.
//
// What:
//
//   - Model: the contract (Symbols + Distance). The cost is opaque; it need not be
//     symmetric nor satisfy the triangle inequality.
//   - Cities: the demo instance with letters 'A', 'B', ... and an ordinal,
//     asymmetric cost (1.0 per step forward, 1.5 per step backward).
//   - Table: an explicit dense cost table over arbitrary symbols, validated on
//     construction. Precompute snapshots any Model into a Table.
//   - NumberOfPossiblePaths: n! with explicit overflow detection.
//
// Errors:
//
//   - ErrNilModel, ErrEmptyModel, ErrDuplicateSymbol  model shape
//   - ErrNonSquare, ErrDimensionMismatch               table shape
//   - ErrNaNInf, ErrNegativeWeight                     table values
//   - ErrOutOfRange                                    factorial overflow
//
// Complexity:
//
//   - Cities.Distance, Table.Distance: O(1)
//   - NewTable, Precompute:            O(n²)
//   - NumberOfPossiblePaths:           O(n)
package problem
