package config

import (
	"fmt"
	"os"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/beehive/hive"
	"github.com/katalvlaran/beehive/problem"
)

// DefaultCities is the size of the demo instance when the problem section is omitted.
const DefaultCities = 20

// BeeConfig is the top-level beecolony.yml configuration
type BeeConfig struct {
	Colony   *ColonyConfig `yaml:"colony,omitempty"`
	Problem  ProblemConfig `yaml:"problem"`
	Colonies *int          `yaml:"colonies,omitempty"` // Independent colonies run in parallel (default = 1)
}

// ColonyConfig overrides the demo colony. Omitted fields keep hive.DefaultConfig values.
// When only total_population is given, the role split follows hive.Population.
type ColonyConfig struct {
	TotalPopulation *int     `yaml:"total_population,omitempty"`
	Inactive        *int     `yaml:"inactive,omitempty"`
	Active          *int     `yaml:"active,omitempty"`
	Scout           *int     `yaml:"scout,omitempty"`
	MaxVisits       *int     `yaml:"max_visits,omitempty"`
	MaxCycles       *int     `yaml:"max_cycles,omitempty"`
	ProbPersuasion  *float64 `yaml:"prob_persuasion,omitempty"`
	ProbMistake     *float64 `yaml:"prob_mistake,omitempty"`
	Seed            *int64   `yaml:"seed,omitempty"`
}

// ProblemConfig selects the instance: either the lettered demo cities or an
// explicit cost table. The two forms are mutually exclusive.
type ProblemConfig struct {
	Cities  int         `yaml:"cities,omitempty"`
	Symbols []string    `yaml:"symbols,omitempty"` // One character each
	Costs   [][]float64 `yaml:"costs,omitempty"`   // costs[i][j] is the cost from symbols[i] to symbols[j]
}

// Hive returns the colony configuration with defaults applied.
func (c *BeeConfig) Hive() hive.Config {
	cfg := hive.DefaultConfig()
	cc := c.Colony
	if cc == nil {
		return cfg
	}

	if cc.TotalPopulation != nil {
		cfg.TotalPopulation = *cc.TotalPopulation
		if cc.Inactive == nil && cc.Active == nil && cc.Scout == nil {
			cfg.Inactive, cfg.Active, cfg.Scout = hive.Population(cfg.TotalPopulation)
		}
	}
	setInt(&cfg.Inactive, cc.Inactive)
	setInt(&cfg.Active, cc.Active)
	setInt(&cfg.Scout, cc.Scout)
	setInt(&cfg.MaxVisits, cc.MaxVisits)
	setInt(&cfg.MaxCycles, cc.MaxCycles)
	if cc.ProbPersuasion != nil {
		cfg.ProbPersuasion = *cc.ProbPersuasion
	}
	if cc.ProbMistake != nil {
		cfg.ProbMistake = *cc.ProbMistake
	}
	if cc.Seed != nil {
		cfg.Seed = *cc.Seed
	}
	return cfg
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

// ColonyCount returns the number of parallel colonies (default 1).
func (c *BeeConfig) ColonyCount() int {
	if c.Colonies == nil {
		return 1
	}
	return *c.Colonies
}

// Model builds the problem instance described by the problem section.
func (c *BeeConfig) Model() (problem.Model, error) {
	p := c.Problem
	if len(p.Symbols) == 0 && len(p.Costs) == 0 {
		n := p.Cities
		if n == 0 {
			n = DefaultCities
		}
		cities, err := problem.NewCities(n)
		if err != nil {
			return nil, err
		}
		return cities, nil
	}

	syms := make([]problem.Symbol, len(p.Symbols))
	for i, s := range p.Symbols {
		r, _ := utf8.DecodeRuneInString(s)
		syms[i] = problem.Symbol(r)
	}
	table, err := problem.NewTable(syms, p.Costs)
	if err != nil {
		return nil, err
	}
	return table, nil
}

// Validate performs strict validation on the configuration
func (c *BeeConfig) Validate() error {
	p := c.Problem
	explicit := len(p.Symbols) > 0 || len(p.Costs) > 0

	if p.Cities < 0 || p.Cities > problem.MaxCities {
		return fmt.Errorf("problem.cities must be between 1 and %d, got %d", problem.MaxCities, p.Cities)
	}
	if explicit && p.Cities != 0 {
		return fmt.Errorf("problem: 'cities' and 'symbols'/'costs' are mutually exclusive")
	}
	for i, s := range p.Symbols {
		if utf8.RuneCountInString(s) != 1 {
			return fmt.Errorf("problem.symbols[%d] must be a single character, got %q", i, s)
		}
	}
	if explicit {
		if _, err := c.Model(); err != nil {
			return fmt.Errorf("problem: %w", err)
		}
	}

	if c.Colonies != nil && *c.Colonies < 1 {
		return fmt.Errorf("colonies must be >= 1, got %d", *c.Colonies)
	}

	if err := c.Hive().Validate(); err != nil {
		return fmt.Errorf("colony: %w", err)
	}

	return nil
}

// Default returns the configuration used when no file is given: the 20-city demo
// instance solved by the default colony.
func Default() *BeeConfig {
	return &BeeConfig{}
}

// Load reads, parses and validates a configuration file.
func Load(path string) (*BeeConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var config BeeConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}
