// Command tpsolve solves balanced or unbalanced transportation problems with
// the northwest-corner rule followed by stepping-stone optimization.
//
//	tpsolve init [dir]       create the working directory and an empty input file
//	tpsolve solve            read the input, write initial and optimal plans
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// app carries state shared by the subcommands.
type app struct {
	configPath string
	verbose    bool
	logger     *zap.Logger
	out        io.Writer
}

func main() {
	if err := newRootCmd(&app{out: os.Stdout}).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "tpsolve",
		Short:         "Transportation problem solver",
		Long:          `Builds a northwest-corner plan and improves it with the stepping-stone method.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if a.logger != nil {
				return nil
			}
			cfg := zap.NewProductionConfig()
			if a.verbose {
				cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			l, err := cfg.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			a.logger = l

			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "tpsolve.yaml", "path to the configuration file")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log every pivot")

	root.AddCommand(newInitCmd(a), newSolveCmd(a))

	return root
}
