// SPDX-License-Identifier: MIT

package hive

// waggle is the recruitment dance of bee i. Every registered inactive bee whose
// quality is strictly worse than the dancer's draws once and, with probability
// ProbPersuasion, replaces its candidate and quality with a copy of the dancer's.
//
// Registry entries are checked first: a non-inactive bee or a non-zero visit
// counter means the registry is corrupt and yields an *InvariantError.
//
// Complexity: O(I) comparisons, at most I draws and I candidate copies.
func (h *Hive) waggle(i int) error {
	dancer := &h.bees[i]

	var slot int
	for slot = 0; slot < h.inactive.Cap(); slot++ {
		idx := h.inactive.At(slot)
		if idx == freeSlot {
			return &InvariantError{Slot: slot, Bee: -1, Reason: "empty registry slot outside a rotation"}
		}
		watcher := &h.bees[idx]
		if watcher.Role != Inactive {
			return &InvariantError{Slot: slot, Bee: idx, Reason: "registered bee is " + watcher.Role.String()}
		}
		if watcher.Visits != 0 {
			return &InvariantError{Slot: slot, Bee: idx, Reason: "registered bee has non-zero visits"}
		}

		if dancer.Quality < watcher.Quality {
			q := h.rng.Float64()
			if q < h.cfg.ProbPersuasion {
				watcher.adopt(dancer.Memory, dancer.Quality)
			}
		}
	}
	return nil
}
