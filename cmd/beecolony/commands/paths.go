package commands

import (
	"errors"
	"math"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/beehive/internal/config"
	"github.com/katalvlaran/beehive/internal/printer"
	"github.com/katalvlaran/beehive/problem"
)

func newPathsCmd(root *rootOptions) *cobra.Command {
	var (
		configPath string
		cities     int
	)

	cmd := &cobra.Command{
		Use:   "paths",
		Short: "Describe a problem instance without solving it",
		Long: `Paths prints the symbols of an instance, the number of possible orderings
and, for the demo cities, the length of the shortest path.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := printer.New(cmd.OutOrStdout(), cmd.ErrOrStderr())

			cfg, err := loadConfig(configPath)
			if err != nil {
				return p.ErrorWithContext("Failed to load configuration", err.Error(),
					map[string]string{"Config": configPath}, nil)
			}
			if cmd.Flags().Changed("cities") {
				cfg.Problem = config.ProblemConfig{Cities: cities}
			}
			if err = cfg.Validate(); err != nil {
				return p.Error("Invalid configuration", err.Error(), nil)
			}
			model, err := cfg.Model()
			if err != nil {
				return p.Error("Invalid problem instance", err.Error(), nil)
			}

			root.Logger().Debug("describing instance")
			printInstance(p, model)
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to a beecolony.yml file")
	cmd.Flags().IntVar(&cities, "cities", config.DefaultCities, "Number of demo cities (1-26)")

	return cmd
}

// formatPaths renders n! with thousands separators, or "more than" the largest
// uint64 when n! overflows.
func formatPaths(n int) string {
	paths, err := problem.NumberOfPossiblePaths(n)
	if errors.Is(err, problem.ErrOutOfRange) {
		return "more than " + humanize.Comma(math.MaxInt64)
	}
	if err != nil {
		return err.Error()
	}
	return humanize.Comma(int64(paths))
}
