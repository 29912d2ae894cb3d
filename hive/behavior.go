// SPDX-License-Identifier: MIT

package hive

import "go.uber.org/zap"

// processActive runs one visit of active bee i.
//
// Draws: one for the neighbor position, one for the mistake check, then one
// for the rotation slot if the visit limit is exceeded, or the dance draws if
// the bee improved.
//
//	neighbor better,  p <  ProbMistake → reject (mistake)
//	neighbor better,  p >= ProbMistake → accept, dance
//	neighbor not better, p <  ProbMistake → accept (mistake), no dance
//	neighbor not better, p >= ProbMistake → reject
func (h *Hive) processActive(i int) error {
	b := &h.bees[i]

	neighbor := generateNeighbor(b.Memory, h.rng)
	nq := Evaluate(neighbor, h.model)
	p := h.rng.Float64()
	mistake := p < h.cfg.ProbMistake

	var updated, improved bool
	if nq < b.Quality {
		if mistake {
			b.Visits++
		} else {
			b.adopt(neighbor, nq)
			b.Visits = 0
			updated, improved = true, true
		}
	} else {
		if mistake {
			b.adopt(neighbor, nq)
			b.Visits = 0
			updated = true
		} else {
			b.Visits++
		}
	}

	switch {
	case b.Visits > h.cfg.MaxVisits:
		return h.retire(i)
	case updated:
		h.observe(i)
		if improved {
			return h.waggle(i)
		}
	}
	return nil
}

// processScout gives scout bee i one fresh random candidate and keeps it only if
// strictly better. Scouts never make mistakes and never rotate.
func (h *Hive) processScout(i int) error {
	b := &h.bees[i]

	fresh := generateRandom(h.symbols, h.rng)
	fq := Evaluate(fresh, h.model)
	if fq >= b.Quality {
		return nil
	}
	b.adopt(fresh, fq)
	h.observe(i)
	return h.waggle(i)
}

// retire turns active bee i inactive and promotes a random inactive bee in its
// place; role counts are unchanged. With an empty registry no swap partner
// exists, so the bee stays active and only its visit counter restarts.
func (h *Hive) retire(i int) error {
	b := &h.bees[i]
	b.Visits = 0
	if h.inactive.Cap() == 0 {
		return nil
	}

	promoted, err := h.inactive.Rotate(h.rng, i)
	if err != nil {
		return err
	}
	if h.bees[promoted].Role != Inactive {
		return &InvariantError{Slot: -1, Bee: promoted, Reason: "promoted bee was not inactive"}
	}
	b.Role = Inactive
	h.bees[promoted].Role = Active
	h.bees[promoted].Visits = 0

	h.log.Debug("role rotation",
		zap.Int("cycle", h.cycles+1),
		zap.Int("retired", i),
		zap.Int("promoted", promoted))
	return nil
}
