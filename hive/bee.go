// SPDX-License-Identifier: MIT

package hive

import "fmt"

// Bee is one agent of the colony. It fully owns Memory; Quality always equals
// Evaluate(Memory). Visits counts consecutive non-improving visits and is only
// meaningful while Role == Active (it is zero for every other role).
type Bee struct {
	Role    Role
	Memory  Candidate
	Quality float64
	Visits  int
}

// adopt overwrites the bee's memory with a copy of c.
func (b *Bee) adopt(c Candidate, quality float64) {
	if len(b.Memory) != len(c) {
		b.Memory = make(Candidate, len(c))
	}
	copy(b.Memory, c)
	b.Quality = quality
}

// BeeState is a read-only copy of a bee for progress reporting.
type BeeState struct {
	Index   int
	Role    Role
	Memory  Candidate
	Quality float64
	Visits  int
}

// String renders the bee as
//
//	Bee 3: active
//	 Memory = A->C->B
//	 Quality = 3.5000 Number visits = 2
func (b BeeState) String() string {
	return fmt.Sprintf("Bee %d: %s\n Memory = %s\n Quality = %.4f Number visits = %d",
		b.Index, b.Role, b.Memory, b.Quality, b.Visits)
}

// Solution is a candidate together with its quality.
type Solution struct {
	Candidate Candidate
	Quality   float64
}

// FormatQuality prints q with four decimals, switching to scientific notation
// from 10000 upwards.
func FormatQuality(q float64) string {
	if q < 10000.0 {
		return fmt.Sprintf("%.4f", q)
	}
	return fmt.Sprintf("%.4e", q)
}

func (s Solution) String() string {
	return fmt.Sprintf("%s (%s)", s.Candidate, FormatQuality(s.Quality))
}
