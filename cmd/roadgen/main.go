// Command roadgen generates, validates and varies road scenario suites.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/roadgen/parameter"
)

// options holds the persistent flags shared by every command
type options struct {
	configPath string
	seed       uint64
	debug      bool
	suiteDir   string

	logFile *os.File
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	opts := &options{}

	err := newRootCmd(opts).ExecuteContext(ctx)
	stop()
	if opts.logFile != nil {
		opts.logFile.Close()
	}
	if err != nil {
		os.Exit(1)
	}
}

func newRootCmd(opts *options) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "roadgen",
		Short:        "Road scenario generator for driving simulator tests",
		SilenceUsage: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			opts.logFile = setupLogging(opts.debug)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "TOML configuration file (defaults when empty)")
	flags.Uint64Var(&opts.seed, "seed", 0, "random seed, overrides the configured seed when non-zero")
	flags.BoolVar(&opts.debug, "debug", false, "write logs to "+logDir+"/"+logFileName)
	flags.StringVar(&opts.suiteDir, "dir", parameter.SuitePersistencePath, "suite directory")

	rootCmd.AddCommand(generateCmd(opts))
	rootCmd.AddCommand(validateCmd(opts))
	rootCmd.AddCommand(mutateCmd(opts))
	rootCmd.AddCommand(crossoverCmd(opts))
	rootCmd.AddCommand(configCmd(opts))

	return rootCmd
}

func generateCmd(opts *options) *cobra.Command {
	var (
		count  int
		out    string
		points bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a suite of valid scenarios",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd.Context(), opts, count, out, points, cmd.OutOrStdout())
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 0, "number of scenarios (configured population size when 0)")
	cmd.Flags().StringVarP(&out, "out", "o", "", "suite name")
	cmd.Flags().BoolVar(&points, "points", false, "store dense polylines with each scenario")
	_ = cmd.MarkFlagRequired("out")
	return cmd
}

func validateCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [suite]",
		Short: "Check every scenario of a suite against the validity oracle",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(opts, args[0], cmd.OutOrStdout())
		},
	}
}

func mutateCmd(opts *options) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "mutate [suite]",
		Short: "Mutate every scenario of a suite",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMutate(opts, args[0], out, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "output suite name")
	_ = cmd.MarkFlagRequired("out")
	return cmd
}

func crossoverCmd(opts *options) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "crossover [suite]",
		Short: "Recombine consecutive scenario pairs of a suite",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCrossover(opts, args[0], out, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "output suite name")
	_ = cmd.MarkFlagRequired("out")
	return cmd
}

func configCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.resolveConfig(nil)
			if err != nil {
				return err
			}
			return cfg.Encode(cmd.OutOrStdout())
		},
	}
}
