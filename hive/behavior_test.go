package hive_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/beehive/hive"
)

// pairHive builds a four-city hive with one inactive bee (index 0) and one
// active bee (index 1).
func pairHive(t *testing.T, mistake, persuasion float64, maxVisits int) *hive.Hive {
	t.Helper()
	h, err := hive.New(mustCities(t, 4), hive.Config{
		TotalPopulation: 2, Inactive: 1, Active: 1,
		MaxVisits: maxVisits, MaxCycles: 1,
		ProbMistake: mistake, ProbPersuasion: persuasion, Seed: seedDet,
	})
	require.NoError(t, err)
	return h
}

func TestActive_NoMistake_RejectsWorseAndCountsVisits(t *testing.T) {
	h := pairHive(t, 0, 1, 100)
	// ABCD is the unique optimum; every neighbor is worse.
	h.SetMemory(1, cand("ABCD"))

	for k := 1; k <= 20; k++ {
		require.NoError(t, h.ProcessActive(1))
		b := h.Snapshot()[1]
		assert.Equal(t, cand("ABCD"), b.Memory)
		assert.Equal(t, 3.0, b.Quality)
		assert.Equal(t, k, b.Visits)
	}
}

func TestActive_NoMistake_AcceptsImprovementAndDances(t *testing.T) {
	h := pairHive(t, 0, 1, 100)
	// Every neighbor of CADB (quality 9) is strictly better.
	h.SetMemory(1, cand("CADB"))
	h.SetVisits(1, 4)
	h.SetMemory(0, cand("CADB"))

	require.NoError(t, h.ProcessActive(1))
	snap := h.Snapshot()
	active, watcher := snap[1], snap[0]
	assert.Less(t, active.Quality, 9.0)
	assert.Zero(t, active.Visits)
	assert.Equal(t, active.Memory, watcher.Memory, "persuaded watcher copies the dancer")
	assert.Equal(t, active.Quality, watcher.Quality)
	assert.LessOrEqual(t, h.Best().Quality, active.Quality)
}

func TestActive_AlwaysMistaken_AcceptsWorseWithoutDancing(t *testing.T) {
	h := pairHive(t, 1, 1, 100)
	h.SetMemory(1, cand("ABCD"))
	h.SetVisits(1, 7)
	// Worse than any neighbor of ABCD (at most 7), so a dance would persuade it.
	h.SetMemory(0, cand("CADB"))
	bestBefore := h.Best()

	require.NoError(t, h.ProcessActive(1))
	snap := h.Snapshot()
	assert.Greater(t, snap[1].Quality, 3.0, "mistake accepts a worse neighbor")
	assert.Zero(t, snap[1].Visits)
	assert.Equal(t, cand("CADB"), snap[0].Memory, "a mistaken acceptance must not recruit")
	assert.LessOrEqual(t, h.Best().Quality, bestBefore.Quality, "global best never regresses")
}

func TestActive_AlwaysMistaken_RejectsImprovement(t *testing.T) {
	h := pairHive(t, 1, 1, 100)
	h.SetMemory(1, cand("CADB"))

	require.NoError(t, h.ProcessActive(1))
	b := h.Snapshot()[1]
	assert.Equal(t, cand("CADB"), b.Memory)
	assert.Equal(t, 1, b.Visits)
}

func TestActive_VisitLimit_RotatesRoles(t *testing.T) {
	h := pairHive(t, 0, 1, 0)
	h.SetMemory(1, cand("ABCD"))
	retiredMemory := h.Snapshot()[1].Memory

	require.NoError(t, h.ProcessActive(1))
	snap := h.Snapshot()
	assert.Equal(t, hive.Inactive, snap[1].Role)
	assert.Equal(t, hive.Active, snap[0].Role)
	assert.Zero(t, snap[1].Visits)
	assert.Zero(t, snap[0].Visits)
	assert.Equal(t, retiredMemory, snap[1].Memory, "retiring keeps the candidate")
	assert.Equal(t, []int{1}, h.InactiveSlots())

	in, ac, sc := h.Counts()
	assert.Equal(t, [3]int{1, 1, 0}, [3]int{in, ac, sc})
}

func TestActive_VisitLimit_EmptyRegistryKeepsRole(t *testing.T) {
	h, err := hive.New(mustCities(t, 4), hive.Config{
		TotalPopulation: 1, Active: 1, MaxVisits: 0, MaxCycles: 1, Seed: seedDet,
	})
	require.NoError(t, err)
	h.SetMemory(0, cand("ABCD"))

	require.NoError(t, h.ProcessActive(0))
	b := h.Snapshot()[0]
	assert.Equal(t, hive.Active, b.Role)
	assert.Zero(t, b.Visits)
}

func TestScout_KeepsOnlyStrictImprovements(t *testing.T) {
	h, err := hive.New(mustCities(t, 4), hive.Config{
		TotalPopulation: 1, Scout: 1, MaxCycles: 1, Seed: seedDet,
	})
	require.NoError(t, err)
	h.SetMemory(0, cand("ABCD"))

	for k := 0; k < 50; k++ {
		require.NoError(t, h.ProcessScout(0))
		b := h.Snapshot()[0]
		assert.Equal(t, cand("ABCD"), b.Memory)
		assert.Zero(t, b.Visits)
		assert.Equal(t, hive.Scout, b.Role)
	}
}

func TestScout_AdoptsBetterAndUpdatesBest(t *testing.T) {
	h, err := hive.New(mustCities(t, 4), hive.Config{
		TotalPopulation: 2, Inactive: 1, Scout: 1, MaxCycles: 1, ProbPersuasion: 1, Seed: seedDet,
	})
	require.NoError(t, err)
	h.SetMemory(1, cand("CADB")) // 9.0, the worst ordering
	h.SetMemory(0, cand("CADB"))

	// Any fresh candidate other than CADB is strictly better.
	for k := 0; k < 10 && h.Snapshot()[1].Quality == 9.0; k++ {
		require.NoError(t, h.ProcessScout(1))
	}
	snap := h.Snapshot()
	require.Less(t, snap[1].Quality, 9.0)
	assert.Equal(t, snap[1].Memory, snap[0].Memory)
	assert.LessOrEqual(t, h.Best().Quality, snap[1].Quality)
}

// recruitHive has three inactive bees (0..2), one scout (3) and two active
// bees (4,5) on six cities.
func recruitHive(t *testing.T, persuasion float64) *hive.Hive {
	t.Helper()
	h, err := hive.New(mustCities(t, 6), hive.Config{
		TotalPopulation: 6, Inactive: 3, Active: 2, Scout: 1,
		MaxVisits: 5, MaxCycles: 1, ProbPersuasion: persuasion, Seed: seedDet,
	})
	require.NoError(t, err)
	return h
}

func TestWaggle_FullPersuasion_OverwritesEveryWorseWatcher(t *testing.T) {
	h := recruitHive(t, 1)
	h.SetMemory(3, cand("ABCDFE")) // 4 + 1.5 = 6.5
	h.SetMemory(0, cand("FEDCBA")) // 7.5, worse
	h.SetMemory(1, cand("ABCDEF")) // 5.0, better
	h.SetMemory(2, cand("ABCDFE")) // 6.5, equal

	require.NoError(t, h.Waggle(3))
	snap := h.Snapshot()
	assert.Equal(t, cand("ABCDFE"), snap[0].Memory)
	assert.Equal(t, 6.5, snap[0].Quality)
	assert.Equal(t, cand("ABCDEF"), snap[1].Memory, "better watcher untouched")
	assert.Equal(t, cand("ABCDFE"), snap[2].Memory, "equal watcher untouched")

	// The copy is independent from the dancer.
	h.SetMemory(3, cand("FEDCBA"))
	assert.Equal(t, cand("ABCDFE"), h.Snapshot()[0].Memory)
}

func TestWaggle_ZeroPersuasion_ChangesNothing(t *testing.T) {
	h := recruitHive(t, 0)
	h.SetMemory(3, cand("ABCDEF"))
	before := h.Snapshot()

	require.NoError(t, h.Waggle(3))
	assert.Equal(t, before, h.Snapshot())
}

func TestWaggle_RegistryPointsAtNonInactiveBee(t *testing.T) {
	h := recruitHive(t, 1)
	h.SetRole(1, hive.Active)

	err := h.Waggle(3)
	require.ErrorIs(t, err, hive.ErrInvariant)
	var ie *hive.InvariantError
	require.True(t, errors.As(err, &ie))
	assert.Equal(t, 1, ie.Slot)
	assert.Equal(t, 1, ie.Bee)
	assert.Contains(t, ie.Error(), "active")
}

func TestWaggle_InactiveWithVisits(t *testing.T) {
	h := recruitHive(t, 1)
	h.SetVisits(2, 1)

	err := h.Waggle(4)
	assert.ErrorIs(t, err, hive.ErrInvariant)
}
