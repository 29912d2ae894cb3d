// SPDX-License-Identifier: MIT

package hive

import "math/rand"

// freeSlot marks a registry slot whose occupant was promoted and not yet replaced.
const freeSlot = -1

// registry is the Inactive Registry: a fixed-capacity pool of bee indices.
//
// Promote empties one slot and Demote fills the most recently emptied slot, both
// in O(1). Between rotations every slot is occupied, so the number of inactive bees
// never changes. Slot order is stable, which keeps the dance iteration order (and
// therefore the random-draw order) reproducible.
type registry struct {
	slots  []int  // bee index per slot, or freeSlot
	member []bool // member[bee] ⇔ bee occupies some slot
	free   []int  // stack of emptied slots
}

// newRegistry fills the registry with bees 0..capacity-1.
func newRegistry(capacity, population int) *registry {
	r := &registry{
		slots:  make([]int, capacity),
		member: make([]bool, population),
		free:   make([]int, 0, 1),
	}
	var i int
	for i = 0; i < capacity; i++ {
		r.slots[i] = i
		r.member[i] = true
	}
	return r
}

// Cap is the fixed number of slots.
func (r *registry) Cap() int { return len(r.slots) }

// Len is the number of occupied slots.
func (r *registry) Len() int { return len(r.slots) - len(r.free) }

// At returns the bee in slot, or freeSlot.
func (r *registry) At(slot int) int { return r.slots[slot] }

// Contains reports whether bee is registered as inactive.
func (r *registry) Contains(bee int) bool {
	return bee >= 0 && bee < len(r.member) && r.member[bee]
}

// Promote removes and returns the bee occupying slot.
func (r *registry) Promote(slot int) (int, error) {
	if slot < 0 || slot >= len(r.slots) {
		return freeSlot, &InvariantError{Slot: slot, Bee: -1, Reason: "registry slot out of range"}
	}
	bee := r.slots[slot]
	if bee == freeSlot {
		return freeSlot, &InvariantError{Slot: slot, Bee: -1, Reason: "promote from an empty slot"}
	}
	r.slots[slot] = freeSlot
	r.member[bee] = false
	r.free = append(r.free, slot)
	return bee, nil
}

// Demote registers bee in the most recently emptied slot and returns that slot.
func (r *registry) Demote(bee int) (int, error) {
	if bee < 0 || bee >= len(r.member) {
		return freeSlot, &InvariantError{Slot: -1, Bee: bee, Reason: "bee index out of range"}
	}
	if r.member[bee] {
		return freeSlot, &InvariantError{Slot: -1, Bee: bee, Reason: "bee already registered as inactive"}
	}
	if len(r.free) == 0 {
		return freeSlot, &InvariantError{Slot: -1, Bee: bee, Reason: "registry is full"}
	}
	slot := r.free[len(r.free)-1]
	r.free = r.free[:len(r.free)-1]
	r.slots[slot] = bee
	r.member[bee] = true
	return slot, nil
}

// Rotate draws one slot uniformly (one draw), promotes its occupant and demotes
// retired into the same slot. It returns the promoted bee.
func (r *registry) Rotate(rng *rand.Rand, retired int) (int, error) {
	slot := rng.Intn(len(r.slots))
	promoted, err := r.Promote(slot)
	if err != nil {
		return freeSlot, err
	}
	if _, err = r.Demote(retired); err != nil {
		return freeSlot, err
	}
	return promoted, nil
}

// Indices returns a copy of the slots in order.
func (r *registry) Indices() []int {
	out := make([]int, len(r.slots))
	copy(out, r.slots)
	return out
}
