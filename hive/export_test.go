// SPDX-License-Identifier: MIT

package hive

// Test bridge: exposes private helpers and state mutators to hive_test only.
// Compiled exclusively by `go test`, so the production API stays unchanged.

import "math/rand"

var (
	ExportedGenerateRandom   = generateRandom
	ExportedGenerateNeighbor = generateNeighbor
	ExportedDeriveSeed       = deriveSeed
	ExportedRNGFromSeed      = rngFromSeed
	ExportedNewRegistry      = newRegistry
)

// FreeSlot mirrors freeSlot.
const FreeSlot = freeSlot

// ShuffleForTest exposes shuffleInPlace for ints.
func ShuffleForTest(a []int, rng *rand.Rand) { shuffleInPlace(a, rng) }

// SetMemory overwrites bee i's candidate and recomputes its quality.
func (h *Hive) SetMemory(i int, c Candidate) {
	h.bees[i].adopt(c, Evaluate(c, h.model))
}

// SetRole overwrites bee i's role without touching the registry.
func (h *Hive) SetRole(i int, r Role) { h.bees[i].Role = r }

// SetVisits overwrites bee i's visit counter.
func (h *Hive) SetVisits(i, v int) { h.bees[i].Visits = v }

// Waggle runs the recruitment dance of bee i.
func (h *Hive) Waggle(i int) error { return h.waggle(i) }

// ProcessActive runs one active visit of bee i.
func (h *Hive) ProcessActive(i int) error { return h.processActive(i) }

// ProcessScout runs one scout step of bee i.
func (h *Hive) ProcessScout(i int) error { return h.processScout(i) }

// InactiveSlots returns the registry slots in order.
func (h *Hive) InactiveSlots() []int { return h.inactive.Indices() }
