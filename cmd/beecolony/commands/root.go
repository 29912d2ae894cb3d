package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// rootOptions carries the state shared by every subcommand.
type rootOptions struct {
	verbose bool
	quiet   bool
	logger  *zap.Logger
}

// Logger returns the command logger, a no-op logger before PersistentPreRunE.
func (o *rootOptions) Logger() *zap.Logger {
	if o.logger == nil {
		return zap.NewNop()
	}
	return o.logger
}

// NewRootCmd builds the beecolony command tree.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "beecolony",
		Short: "beecolony - Simulated Bee Colony path optimizer",
		Long: `beecolony searches for the cheapest ordering of a set of symbols with a
Simulated Bee Colony: active bees refine their paths by local moves, scouts
sample random paths and successful bees recruit inactive ones by dancing.

Run "beecolony solve" for the 20-city demo instance.`,
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.quiet {
				opts.logger = zap.NewNop()
				return nil
			}
			config := zap.NewProductionConfig()
			if opts.verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			var err error
			opts.logger, err = config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.logger != nil {
				_ = opts.logger.Sync()
			}
		},
		// Prevent silent success when unknown flags are passed to root command
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		FParseErrWhitelist: cobra.FParseErrWhitelist{},
		SilenceErrors:      true,
		SilenceUsage:       true,
	}

	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging (role rotations, new global bests)")
	rootCmd.PersistentFlags().BoolVarP(&opts.quiet, "quiet", "q", false, "Disable logging")
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	rootCmd.AddCommand(newSolveCmd(opts))
	rootCmd.AddCommand(newPathsCmd(opts))

	return rootCmd
}

// Execute runs the command tree with a background context.
func Execute() error {
	return ExecuteContext(context.Background())
}

// ExecuteContext runs the command tree; cancelling ctx stops a running solve
// between cycles.
func ExecuteContext(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
}
