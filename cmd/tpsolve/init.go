package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/tpsolve/config"
)

func newInitCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "init [dir]",
		Short: "Create the working directory, an empty input file and a default config",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}

			return a.runInit(dir)
		},
	}
}

// runInit is idempotent: existing files are left untouched.
func (a *app) runInit(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("init: %w", err)
	}

	cfgPath := filepath.Join(dir, config.FileName)
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}
	if _, err = os.Stat(cfgPath); errors.Is(err, fs.ErrNotExist) {
		if err = config.Save(cfgPath, config.Default()); err != nil {
			return err
		}
		a.logger.Info("config written", zap.String("path", cfgPath))
	}

	in := cfg.InputPath()
	if err = os.MkdirAll(filepath.Dir(in), 0o755); err != nil {
		return fmt.Errorf("init: %w", err)
	}
	f, err := os.OpenFile(in, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	switch {
	case errors.Is(err, fs.ErrExist):
		a.logger.Info("input already present", zap.String("path", in))
	case err != nil:
		return fmt.Errorf("init: %w", err)
	default:
		if err = f.Close(); err != nil {
			return fmt.Errorf("init: %w", err)
		}
		a.logger.Info("input created", zap.String("path", in))
	}

	return nil
}
