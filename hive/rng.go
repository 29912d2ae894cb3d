// SPDX-License-Identifier: MIT

// Package hive - RNG utilities.
//
// All randomness of a Hive flows through one *rand.Rand. Nothing here reads the
// clock: the same seed gives the same run on every platform.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. A Hive owns its stream.
//   - deriveSeed gives each colony of SolveColonies an independent stream.
package hive

import "math/rand"

// defaultRNGSeed is used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ defaultRNGSeed; otherwise the seed is used verbatim.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	var s = seed
	if s == 0 {
		s = defaultRNGSeed
	}
	return rand.New(rand.NewSource(s))
}

// deriveSeed mixes a parent seed and a stream identifier into a new seed
// with the SplitMix64 finalizer, so neighboring stream ids give uncorrelated streams.
//
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// shuffleInPlace performs a Fisher–Yates (Knuth) shuffle of a using rng.
// It consumes exactly len(a)-1 draws (none for len(a) ≤ 1).
//
// Complexity: O(n) time, O(1) extra space.
func shuffleInPlace[T any](a []T, rng *rand.Rand) {
	var (
		n = len(a)
		i int
		j int
	)
	for i = n - 1; i > 0; i-- {
		j = rng.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}
