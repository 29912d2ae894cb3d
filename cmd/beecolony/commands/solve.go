package commands

import (
	"errors"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/beehive/hive"
	"github.com/katalvlaran/beehive/internal/config"
	"github.com/katalvlaran/beehive/internal/printer"
	"github.com/katalvlaran/beehive/problem"
)

type solveOptions struct {
	configPath string
	cities     int
	bees       int
	visits     int
	cycles     int
	seed       int64
	colonies   int
	mistake    float64
	persuasion float64
	progress   bool
	showBees   bool
}

func newSolveCmd(root *rootOptions) *cobra.Command {
	o := &solveOptions{}

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Run the bee colony on a problem instance",
		Long: `Solve builds a problem instance and a colony, prints the initial hive,
runs every cycle and prints the final hive.

Without --config the 20-city demo instance and the default 500-bee colony
are used. Flags override values read from the config file.

Examples:
  beecolony solve
  beecolony solve --cities 8 --bees 100 --cycles 2000 --seed 42
  beecolony solve --config beecolony.yml --colonies 4`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd, root, o)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&o.configPath, "config", "c", "", "Path to a beecolony.yml file")
	f.IntVar(&o.cities, "cities", config.DefaultCities, "Number of demo cities (1-26)")
	f.IntVar(&o.bees, "bees", hive.DefaultTotalPopulation, "Total bees, split 10% inactive / 75% active / 15% scout")
	f.IntVar(&o.visits, "visits", hive.DefaultMaxVisits, "Non-improving visits before an active bee retires")
	f.IntVar(&o.cycles, "cycles", hive.DefaultMaxCycles, "Number of cycles to run")
	f.Int64Var(&o.seed, "seed", 0, "Random seed (0 selects the default seed)")
	f.IntVar(&o.colonies, "colonies", 1, "Independent colonies solved in parallel")
	f.Float64Var(&o.mistake, "mistake", hive.DefaultProbMistake, "Probability an active bee inverts its decision")
	f.Float64Var(&o.persuasion, "persuasion", hive.DefaultProbPersuasion, "Probability an inactive bee follows a better dance")
	f.BoolVar(&o.progress, "progress", true, "Show a progress bar")
	f.BoolVar(&o.showBees, "show-bees", false, "Print every bee of the initial and final hive")

	return cmd
}

func runSolve(cmd *cobra.Command, root *rootOptions, o *solveOptions) error {
	p := printer.New(cmd.OutOrStdout(), cmd.ErrOrStderr())

	cfg, err := loadConfig(o.configPath)
	if err != nil {
		return p.ErrorWithContext(
			"Failed to load configuration",
			err.Error(),
			map[string]string{"Config": o.configPath},
			[]string{"Check the file path and its YAML syntax"},
		)
	}
	o.apply(cmd.Flags(), cfg)
	if err = cfg.Validate(); err != nil {
		return p.Error("Invalid configuration", err.Error(), []string{
			"Check that inactive + active + scout equals total_population",
			"Use --bees to let the colony be split automatically",
		})
	}

	model, err := cfg.Model()
	if err != nil {
		return p.Error("Invalid problem instance", err.Error(), nil)
	}
	hcfg := cfg.Hive()

	p.Println("Begin Simulated Bee Colony demo")
	printInstance(p, model)
	p.Info("Colony: %d bees (%d inactive, %d active, %d scout), max visits %d, cycles %d\n",
		hcfg.TotalPopulation, hcfg.Inactive, hcfg.Active, hcfg.Scout, hcfg.MaxVisits, hcfg.MaxCycles)

	var bar *printer.Progress
	opts := []hive.Option{
		hive.WithLogger(root.Logger()),
		hive.WithOnCycle(func(int, hive.Solution) {
			if bar != nil {
				bar.Tick()
			}
		}),
	}

	var best hive.Solution
	if n := cfg.ColonyCount(); n > 1 {
		if o.progress {
			p.Info("\nSolving with %d colonies\n\n", n)
			bar = p.Progress(hcfg.MaxCycles * n)
		}
		res, err := hive.SolveColonies(cmd.Context(), model, hcfg, n, opts...)
		if bar != nil {
			bar.Done()
		}
		if err != nil {
			return solveError(p, err)
		}
		p.Println()
		for k, s := range res.Solutions {
			p.Info("Colony %d: %s\n", k, s)
		}
		p.Info("\nBest colony: %d\n", res.Colony)
		p.Info("Best path found: %s\nPath quality:    %s\n", res.Best.Candidate, hive.FormatQuality(res.Best.Quality))
		best = res.Best
	} else {
		h, err := hive.New(model, hcfg, opts...)
		if err != nil {
			return p.Error("Invalid configuration", err.Error(), nil)
		}
		p.Println("\nInitial random hive")
		printHive(p, h, o.showBees)

		if o.progress {
			p.Println("\nEntering main processing loop")
			p.Println()
			bar = p.Progress(hcfg.MaxCycles)
		}
		err = h.RunContext(cmd.Context(), hcfg.MaxCycles)
		if bar != nil {
			bar.Done()
		}
		if err != nil {
			return solveError(p, err)
		}
		p.Println("\nFinal hive")
		printHive(p, h, o.showBees)
		best = h.Best()
	}

	if c, ok := model.(*problem.Cities); ok {
		if best.Quality <= c.ShortestPathLength() {
			p.Success("Shortest path found\n")
		} else {
			p.Warning("Best path is %s above the shortest path\n", hive.FormatQuality(best.Quality-c.ShortestPathLength()))
		}
	}
	p.Println("End Simulated Bee Colony demo")
	return nil
}

// apply copies explicitly set flags over the file configuration.
func (o *solveOptions) apply(flags *pflag.FlagSet, cfg *config.BeeConfig) {
	if flags.Changed("cities") {
		cfg.Problem = config.ProblemConfig{Cities: o.cities}
	}

	colonyFlags := []string{"bees", "visits", "cycles", "seed", "mistake", "persuasion"}
	for _, name := range colonyFlags {
		if flags.Changed(name) && cfg.Colony == nil {
			cfg.Colony = &config.ColonyConfig{}
			break
		}
	}
	if flags.Changed("bees") {
		cfg.Colony.TotalPopulation = &o.bees
		cfg.Colony.Inactive, cfg.Colony.Active, cfg.Colony.Scout = nil, nil, nil
	}
	if flags.Changed("visits") {
		cfg.Colony.MaxVisits = &o.visits
	}
	if flags.Changed("cycles") {
		cfg.Colony.MaxCycles = &o.cycles
	}
	if flags.Changed("seed") {
		cfg.Colony.Seed = &o.seed
	}
	if flags.Changed("mistake") {
		cfg.Colony.ProbMistake = &o.mistake
	}
	if flags.Changed("persuasion") {
		cfg.Colony.ProbPersuasion = &o.persuasion
	}
	if flags.Changed("colonies") {
		cfg.Colonies = &o.colonies
	}
}

func loadConfig(path string) (*config.BeeConfig, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

func printHive(p *printer.Printer, h *hive.Hive, showBees bool) {
	if showBees {
		for _, b := range h.Snapshot() {
			p.Println(b)
		}
	}
	p.Info("%s", h)
}

func solveError(p *printer.Printer, err error) error {
	if errors.Is(err, hive.ErrInvariant) {
		return p.Error("Colony stopped", err.Error(), []string{"This is a bug in beecolony; please report it with the seed used"})
	}
	return p.Error("Solve interrupted", err.Error(), nil)
}

// printInstance prints the instance summary shared by solve and paths.
func printInstance(p *printer.Printer, model problem.Model) {
	syms := model.Symbols()
	if c, ok := model.(*problem.Cities); ok {
		p.Println("Loading cities data")
		p.Println(c)
	} else {
		p.Info("Loading cost table: %v\n", syms)
	}
	p.Info("Number of cities = %d\n", len(syms))
	p.Info("Number of possible paths = %s\n", formatPaths(len(syms)))
	if c, ok := model.(*problem.Cities); ok {
		p.Info("Best possible solution (shortest path) length = %.4f\n", c.ShortestPathLength())
	}
}
