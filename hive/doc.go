// SPDX-License-Identifier: MIT

// Package hive implements a Simulated Bee Colony (SBC) search for a low-cost
// ordering of the symbols of a problem.Model (a non-closed travelling-salesman path).
//
// What:
//
//   - A Candidate is one permutation of the model's symbols. Its Quality is the sum
//     of Distance over the N-1 consecutive pairs (the path is not closed; lower is better).
//   - The Hive owns a fixed population of bees. Each bee has a Role:
//   - Active bees refine their own candidate by swapping one cyclically adjacent pair,
//     occasionally making a "mistake" (ProbMistake) that inverts the accept/reject
//     decision. After more than MaxVisits consecutive non-improving visits an active
//     bee retires to Inactive and a random inactive bee is promoted in its place.
//   - Scout bees draw a fresh random candidate each cycle and keep it if strictly better.
//   - Inactive bees wait in the hive and adopt candidates advertised by the waggle dance
//     with probability ProbPersuasion.
//   - A bee that strictly improves its candidate dances: every inactive bee with a worse
//     candidate may copy the dancer's candidate wholesale.
//   - The Global Best is the running minimum over every candidate observed.
//
// Determinism:
//
//	A Hive is single-threaded. Every probabilistic decision draws exactly once from
//	one *rand.Rand, in bee index order, so the same Config, Seed and model always
//	produce the same run. SolveColonies runs several independent hives concurrently,
//	each with its own derived stream, and stays reproducible.
//
// Errors:
//
//   - ErrPopulationMismatch  role counts do not sum to TotalPopulation
//   - ErrInvalidProbability  ProbPersuasion/ProbMistake outside [0,1]
//   - ErrInvalidConfig       negative counts, visits or cycles; empty population
//   - ErrInvariant           internal state corruption (returned as *InvariantError)
//
// Complexity (N symbols, B bees, I inactive bees, C cycles):
//
//   - New:   O(B·N)
//   - Run:   O(C·B·(N + I·N)) worst case; a dance copies at most I candidates.
//   - Memory O(B·N)
package hive
