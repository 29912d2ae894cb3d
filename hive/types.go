// SPDX-License-Identifier: MIT

package hive

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"go.uber.org/zap"
)

// Role is the behavior a bee performs in a cycle.
type Role int

const (
	Inactive Role = iota // Inactive bees only adopt candidates advertised by dancers.
	Active               // Active bees refine their candidate by neighbor moves.
	Scout                // Scout bees sample fresh random candidates.
)

// String returns the lowercase role name.
func (r Role) String() string {
	switch r {
	case Inactive:
		return "inactive"
	case Active:
		return "active"
	case Scout:
		return "scout"
	default:
		return fmt.Sprintf("role(%d)", int(r))
	}
}

var (
	// ErrPopulationMismatch is returned when Inactive+Active+Scout != TotalPopulation.
	ErrPopulationMismatch = errors.New("hive: role counts do not sum to total population")

	// ErrInvalidProbability is returned when a probability lies outside [0,1] or is NaN.
	ErrInvalidProbability = errors.New("hive: probability out of range")

	// ErrInvalidConfig covers negative counts, visits or cycles and an empty population.
	ErrInvalidConfig = errors.New("hive: invalid configuration")

	// ErrInvariant marks internal state corruption. It is never caused by user input;
	// seeing it means the hive itself is broken. Match with errors.Is and inspect
	// the *InvariantError with errors.As.
	ErrInvariant = errors.New("hive: internal invariant violated")
)

// InvariantError reports a corrupted Inactive Registry entry found during a dance
// or a role rotation. It is fatal: the hive refuses to run further cycles.
type InvariantError struct {
	Slot   int    // registry slot, -1 when not applicable
	Bee    int    // bee index, -1 when not applicable
	Reason string // what was wrong
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("hive: invariant violated (slot %d, bee %d): %s", e.Slot, e.Bee, e.Reason)
}

// Unwrap lets errors.Is(err, ErrInvariant) match.
func (e *InvariantError) Unwrap() error { return ErrInvariant }

// Default knobs of the demo colony.
const (
	DefaultTotalPopulation = 500
	DefaultMaxVisits       = 95
	DefaultMaxCycles       = 10570
	DefaultProbPersuasion  = 0.95
	DefaultProbMistake     = 0.01
)

// Config is the colony configuration. Field tags match the YAML config file.
type Config struct {
	TotalPopulation int `yaml:"total_population"`
	Inactive        int `yaml:"inactive"`
	Active          int `yaml:"active"`
	Scout           int `yaml:"scout"`

	// MaxVisits is how many consecutive non-improving visits an active bee tolerates;
	// exceeding it retires the bee.
	MaxVisits int `yaml:"max_visits"`

	// MaxCycles is the exact number of cycles Run executes.
	MaxCycles int `yaml:"max_cycles"`

	// ProbPersuasion is the chance an inactive bee adopts a better advertised candidate.
	ProbPersuasion float64 `yaml:"prob_persuasion"`

	// ProbMistake is the chance an active bee inverts its accept/reject decision.
	ProbMistake float64 `yaml:"prob_mistake"`

	// Seed seeds the shared random stream; 0 selects the package default seed.
	Seed int64 `yaml:"seed"`
}

// DefaultConfig returns the demo colony: 500 bees split 10% inactive,
// 75% active and 15% scout, 95 visits, 10570 cycles.
func DefaultConfig() Config {
	inactive, active, scout := Population(DefaultTotalPopulation)
	return Config{
		TotalPopulation: DefaultTotalPopulation,
		Inactive:        inactive,
		Active:          active,
		Scout:           scout,
		MaxVisits:       DefaultMaxVisits,
		MaxCycles:       DefaultMaxCycles,
		ProbPersuasion:  DefaultProbPersuasion,
		ProbMistake:     DefaultProbMistake,
		Seed:            0,
	}
}

// Population splits total into the customary 10% inactive, 75% active and 15% scout.
// Inactive and scout counts are rounded; active absorbs the remainder so the three
// always sum to total. Non-positive totals yield zeros.
func Population(total int) (inactive, active, scout int) {
	if total <= 0 {
		return 0, 0, 0
	}
	inactive = int(math.Round(float64(total) * 0.10))
	scout = int(math.Round(float64(total) * 0.15))
	active = total - inactive - scout
	return inactive, active, scout
}

// Validate checks the configuration before any bee is created.
//
// Error priority: negative values -> population sum -> probabilities.
func (c Config) Validate() error {
	if c.TotalPopulation <= 0 {
		return fmt.Errorf("total population %d: %w", c.TotalPopulation, ErrInvalidConfig)
	}
	if c.Inactive < 0 || c.Active < 0 || c.Scout < 0 {
		return fmt.Errorf("negative role count (inactive=%d active=%d scout=%d): %w",
			c.Inactive, c.Active, c.Scout, ErrInvalidConfig)
	}
	if c.MaxVisits < 0 {
		return fmt.Errorf("max visits %d: %w", c.MaxVisits, ErrInvalidConfig)
	}
	if c.MaxCycles < 0 {
		return fmt.Errorf("max cycles %d: %w", c.MaxCycles, ErrInvalidConfig)
	}
	if c.Inactive+c.Active+c.Scout != c.TotalPopulation {
		return fmt.Errorf("inactive=%d active=%d scout=%d total=%d: %w",
			c.Inactive, c.Active, c.Scout, c.TotalPopulation, ErrPopulationMismatch)
	}
	if !validProbability(c.ProbPersuasion) {
		return fmt.Errorf("prob persuasion %v: %w", c.ProbPersuasion, ErrInvalidProbability)
	}
	if !validProbability(c.ProbMistake) {
		return fmt.Errorf("prob mistake %v: %w", c.ProbMistake, ErrInvalidProbability)
	}

	return nil
}

func validProbability(p float64) bool {
	return !math.IsNaN(p) && p >= 0 && p <= 1
}

// Option configures optional Hive behavior. Use with New(model, cfg, opts...).
type Option func(*Options)

// Options holds the optional collaborators of a Hive.
type Options struct {
	// Rand is the single shared random stream. When nil, a stream seeded from
	// Config.Seed is created.
	Rand *rand.Rand

	// Logger receives initialization, rotation and improvement events.
	// Defaults to zap.NewNop().
	Logger *zap.Logger

	// OnCycle, if non-nil, is invoked after every completed cycle with the
	// 1-based cycle number and a copy of the Global Best. Progress reporting hooks
	// in here. SolveColonies calls it from several goroutines.
	OnCycle func(cycle int, best Solution)

	// RunID tags log entries. Defaults to a random UUID.
	RunID string
}

// DefaultOptions returns Options with a no-op logger and no hook.
func DefaultOptions() Options {
	return Options{
		Rand:    nil,
		Logger:  zap.NewNop(),
		OnCycle: nil,
		RunID:   "",
	}
}

// WithRand injects the shared random stream. A nil rng has no effect.
// The Hive takes ownership; do not draw from rng concurrently with Run.
func WithRand(rng *rand.Rand) Option {
	return func(o *Options) {
		if rng != nil {
			o.Rand = rng
		}
	}
}

// WithLogger sets the logger. A nil logger has no effect.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnCycle installs a per-cycle progress hook.
func WithOnCycle(fn func(cycle int, best Solution)) Option {
	return func(o *Options) {
		o.OnCycle = fn
	}
}

// WithRunID sets the identifier attached to every log entry.
func WithRunID(id string) Option {
	return func(o *Options) {
		o.RunID = id
	}
}
