package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/tpsolve/config"
	"github.com/katalvlaran/tpsolve/instance"
	"github.com/katalvlaran/tpsolve/lpcheck"
	"github.com/katalvlaran/tpsolve/report"
	"github.com/katalvlaran/tpsolve/transport"
)

// noSolution replaces the plans whenever the instance cannot be solved.
const noSolution = "the problem has no solution under the given conditions"

// solveFlags override the matching config keys when set.
type solveFlags struct {
	input   string
	output  string
	style   string
	verify  bool
	maxIter int
}

func newSolveCmd(a *app) *cobra.Command {
	var f solveFlags
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve the configured input and write the initial and optimal plans",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.configPath)
			if err != nil {
				return err
			}
			fl := cmd.Flags()
			if fl.Changed("input") {
				cfg.Input = f.input
			}
			if fl.Changed("output") {
				cfg.Output = f.output
			}
			if fl.Changed("style") {
				cfg.Style = strings.ToLower(f.style)
			}
			if fl.Changed("verify") {
				cfg.Verify = f.verify
			}
			if fl.Changed("max-iterations") {
				cfg.Solver.MaxIterations = f.maxIter
			}

			return a.runSolve(cmd.Context(), cfg)
		},
	}
	cmd.Flags().StringVarP(&f.input, "input", "i", "", "input file (text or .yaml)")
	cmd.Flags().StringVarP(&f.output, "output", "o", "", `output file, "-" for stdout`)
	cmd.Flags().StringVar(&f.style, "style", "", "plain or boxed")
	cmd.Flags().BoolVar(&f.verify, "verify", false, "cross-check the optimum with the LP simplex")
	cmd.Flags().IntVar(&f.maxIter, "max-iterations", 0, "pivot limit")

	return cmd
}

// runSolve writes either both plans or the no-solution message. Only I/O on
// the output itself is reported as an error.
func (a *app) runSolve(ctx context.Context, cfg config.Config) error {
	if ctx == nil {
		ctx = context.Background()
	}

	body, err := a.solve(ctx, cfg)
	if err != nil {
		a.logger.Warn("no solution", zap.String("input", cfg.InputPath()), zap.Error(err))
		body = noSolution + "\n"
	}

	return a.write(cfg.OutputPath(), body)
}

func (a *app) solve(ctx context.Context, cfg config.Config) (string, error) {
	in, err := instance.Load(cfg.InputPath())
	if err != nil {
		return "", err
	}
	if !in.Balanced() {
		s, d := in.Totals()
		a.logger.Info("balancing instance", zap.Int("supply", s), zap.Int("demand", d))
	}
	bal, err := in.Balance()
	if err != nil {
		return "", err
	}

	res, err := transport.Solve(ctx, bal.Supply, bal.Demand, bal.Cost, ptr(cfg.SolverOptions(a.logger)))
	if err != nil {
		return "", err
	}
	a.logger.Debug("solved",
		zap.Float64("initialCost", res.InitialCost),
		zap.Float64("optimalCost", res.OptimalCost),
		zap.Int("pivots", res.Pivots))

	if cfg.Verify {
		if err = lpcheck.Verify(bal, res.Optimal, 1e-6); err != nil {
			return "", err
		}
	}

	render := report.Render
	if cfg.Style == config.StyleBoxed {
		render = report.Boxed
	}
	initial, err := render("Initial plan:", "Initial cost", res.Initial, bal)
	if err != nil {
		return "", err
	}
	optimal, err := render("Optimal plan:", "Optimal cost", res.Optimal, bal)
	if err != nil {
		return "", err
	}

	return initial + "\n" + optimal, nil
}

func (a *app) write(path, body string) error {
	if path == "-" {
		_, err := io.WriteString(a.out, body)

		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("solve: %w", err)
	}
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		return fmt.Errorf("solve: %w", err)
	}
	a.logger.Info("plan written", zap.String("path", path))

	return nil
}

func ptr[T any](v T) *T { return &v }
