// SPDX-License-Identifier: MIT

package hive

import (
	"context"
	"fmt"
	"math/rand"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/beehive/problem"
)

// Hive is the colony: a fixed bee population, the Inactive Registry and the
// Global Best. It is not safe for concurrent use.
type Hive struct {
	model   problem.Model
	symbols []problem.Symbol
	cfg     Config
	opts    Options

	rng *rand.Rand
	log *zap.Logger

	bees     []Bee
	inactive *registry
	best     Solution
	cycles   int

	// err is the fatal error that stopped the hive; every later run returns it.
	err error
}

// New validates cfg and the model, creates every bee with a random candidate and
// records the best initial candidate as Global Best.
//
// Roles are assigned by index range: [0,Inactive) inactive,
// [Inactive, Inactive+Scout) scout, the rest active. The registry starts with the
// first Inactive indices. Candidates are drawn in bee index order.
//
// Errors: ErrInvalidConfig, ErrPopulationMismatch, ErrInvalidProbability and the
// problem.Validate sentinels. No cycle runs on error.
//
// Complexity: O(B·N).
func New(model problem.Model, cfg Config, opts ...Option) (*Hive, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := problem.Validate(model); err != nil {
		return nil, err
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Rand == nil {
		o.Rand = rngFromSeed(cfg.Seed)
	}
	if o.RunID == "" {
		o.RunID = uuid.NewString()
	}

	h := &Hive{
		model:    model,
		symbols:  model.Symbols(),
		cfg:      cfg,
		opts:     o,
		rng:      o.Rand,
		log:      o.Logger.With(zap.String("run", o.RunID)),
		bees:     make([]Bee, cfg.TotalPopulation),
		inactive: newRegistry(cfg.Inactive, cfg.TotalPopulation),
	}

	var i int
	for i = 0; i < cfg.TotalPopulation; i++ {
		var role Role
		switch {
		case i < cfg.Inactive:
			role = Inactive
		case i < cfg.Inactive+cfg.Scout:
			role = Scout
		default:
			role = Active
		}
		mem := generateRandom(h.symbols, h.rng)
		h.bees[i] = Bee{Role: role, Memory: mem, Quality: Evaluate(mem, h.model)}

		if i == 0 || h.bees[i].Quality < h.best.Quality {
			h.best = Solution{Candidate: mem.Clone(), Quality: h.bees[i].Quality}
		}
	}

	h.log.Info("hive initialized",
		zap.Int("bees", cfg.TotalPopulation),
		zap.Int("inactive", cfg.Inactive),
		zap.Int("active", cfg.Active),
		zap.Int("scout", cfg.Scout),
		zap.Int("symbols", len(h.symbols)),
		zap.Float64("best_quality", h.best.Quality))

	return h, nil
}

// Solve creates a hive and runs cfg.MaxCycles cycles, returning the Global Best.
func Solve(model problem.Model, cfg Config, opts ...Option) (Solution, error) {
	h, err := New(model, cfg, opts...)
	if err != nil {
		return Solution{}, err
	}
	if err = h.Run(); err != nil {
		return Solution{}, err
	}
	return h.Best(), nil
}

// Run executes exactly Config.MaxCycles cycles.
func (h *Hive) Run() error {
	return h.RunCycles(h.cfg.MaxCycles)
}

// RunCycles executes exactly n more cycles. There is no convergence check.
// A non-nil error is an *InvariantError and is fatal: the hive stays stopped.
func (h *Hive) RunCycles(n int) error {
	return h.RunContext(context.Background(), n)
}

// RunContext is RunCycles with cancellation checked between cycles.
// On cancellation it returns ctx.Err(); the hive stays usable.
func (h *Hive) RunContext(ctx context.Context, n int) error {
	if h.err != nil {
		return h.err
	}
	if n < 0 {
		return fmt.Errorf("cycles %d: %w", n, ErrInvalidConfig)
	}

	var c int
	for c = 0; c < n; c++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := h.cycle(); err != nil {
			h.err = err
			h.log.Error("hive stopped", zap.Int("cycle", h.cycles+1), zap.Error(err))
			return err
		}
		h.cycles++
		if h.opts.OnCycle != nil {
			h.opts.OnCycle(h.cycles, h.Best())
		}
	}

	h.log.Info("hive run complete",
		zap.Int("cycles", h.cycles),
		zap.Float64("best_quality", h.best.Quality),
		zap.Stringer("best", h.best.Candidate))
	return nil
}

// cycle dispatches every bee once, in index order.
func (h *Hive) cycle() error {
	var (
		i   int
		err error
	)
	for i = range h.bees {
		switch h.bees[i].Role {
		case Active:
			err = h.processActive(i)
		case Scout:
			err = h.processScout(i)
		case Inactive:
			// waits for a dancer
		default:
			err = &InvariantError{Slot: -1, Bee: i, Reason: fmt.Sprintf("unknown role %d", int(h.bees[i].Role))}
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// observe records bee i's candidate as Global Best when strictly better.
func (h *Hive) observe(i int) {
	b := &h.bees[i]
	if b.Quality < h.best.Quality {
		h.best.Candidate = b.Memory.Clone()
		h.best.Quality = b.Quality
		h.log.Debug("new global best",
			zap.Int("cycle", h.cycles+1),
			zap.Int("bee", i),
			zap.Stringer("role", b.Role),
			zap.Float64("quality", b.Quality))
	}
}

// Best returns a copy of the Global Best.
func (h *Hive) Best() Solution {
	return Solution{Candidate: h.best.Candidate.Clone(), Quality: h.best.Quality}
}

// Snapshot returns a copy of every bee, in index order.
func (h *Hive) Snapshot() []BeeState {
	out := make([]BeeState, len(h.bees))
	for i := range h.bees {
		out[i] = BeeState{
			Index:   i,
			Role:    h.bees[i].Role,
			Memory:  h.bees[i].Memory.Clone(),
			Quality: h.bees[i].Quality,
			Visits:  h.bees[i].Visits,
		}
	}
	return out
}

// Counts returns the current number of bees per role.
func (h *Hive) Counts() (inactive, active, scout int) {
	for i := range h.bees {
		switch h.bees[i].Role {
		case Inactive:
			inactive++
		case Active:
			active++
		case Scout:
			scout++
		}
	}
	return inactive, active, scout
}

// Cycles returns the number of completed cycles.
func (h *Hive) Cycles() int { return h.cycles }

// Config returns the configuration the hive was built with.
func (h *Hive) Config() Config { return h.cfg }

// RunID returns the identifier attached to log entries.
func (h *Hive) RunID() string { return h.opts.RunID }

// String renders the Global Best path and its quality.
func (h *Hive) String() string {
	var sb strings.Builder
	sb.WriteString("Best path found: ")
	sb.WriteString(h.best.Candidate.String())
	sb.WriteString("\nPath quality:    ")
	sb.WriteString(FormatQuality(h.best.Quality))
	sb.WriteString("\n")
	return sb.String()
}
