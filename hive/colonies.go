// SPDX-License-Identifier: MIT

package hive

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/beehive/problem"
)

// ColonyResult is the outcome of SolveColonies.
type ColonyResult struct {
	// Best is the best Global Best across colonies.
	Best Solution

	// Colony is the index of the colony that found Best (lowest index on ties).
	Colony int

	// Solutions holds each colony's Global Best, by colony index.
	Solutions []Solution
}

// ColonySeed returns the seed colony k of SolveColonies runs with.
func ColonySeed(seed int64, k int) int64 {
	var parent = seed
	if parent == 0 {
		parent = defaultRNGSeed
	}
	return deriveSeed(parent, uint64(k))
}

// SolveColonies runs `colonies` independent hives concurrently, each for
// cfg.MaxCycles cycles. Colony k uses Config.Seed = ColonySeed(cfg.Seed, k) and
// its own stream, so the result does not depend on goroutine scheduling.
// Hives share nothing but the read-only model, which must therefore be safe for
// concurrent reads (Cities and Table are).
//
// Any WithRand option is ignored. An OnCycle hook is called from every colony's
// goroutine and must synchronize itself.
//
// The first error cancels the remaining colonies and is returned.
func SolveColonies(ctx context.Context, model problem.Model, cfg Config, colonies int, opts ...Option) (ColonyResult, error) {
	if colonies < 1 {
		return ColonyResult{}, fmt.Errorf("colonies %d: %w", colonies, ErrInvalidConfig)
	}
	if err := cfg.Validate(); err != nil {
		return ColonyResult{}, err
	}

	sols := make([]Solution, colonies)
	g, gctx := errgroup.WithContext(ctx)

	var k int
	for k = 0; k < colonies; k++ {
		k := k
		g.Go(func() error {
			ccfg := cfg
			ccfg.Seed = ColonySeed(cfg.Seed, k)

			copts := make([]Option, 0, len(opts)+1)
			copts = append(copts, opts...)
			copts = append(copts, func(o *Options) { o.Rand = rngFromSeed(ccfg.Seed) })

			h, err := New(model, ccfg, copts...)
			if err != nil {
				return err
			}
			if err = h.RunContext(gctx, ccfg.MaxCycles); err != nil {
				return fmt.Errorf("colony %d: %w", k, err)
			}
			sols[k] = h.Best()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return ColonyResult{}, err
	}

	res := ColonyResult{Best: sols[0], Colony: 0, Solutions: sols}
	for k = 1; k < colonies; k++ {
		if sols[k].Quality < res.Best.Quality {
			res.Best = sols[k]
			res.Colony = k
		}
	}
	return res, nil
}
