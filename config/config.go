// Package config loads the tpsolve YAML configuration.
//
// A project directory may hold a tpsolve.yaml:
//
//	version: 1
//	workdir: data
//	input: input.txt
//	output: output.txt
//	style: plain        # plain | boxed
//	verify: false       # cross-check the optimum with the LP simplex
//	solver:
//	  max_iterations: 10000
//	  epsilon: 1e-9
//
// A missing file means defaults. Relative input/output paths are resolved
// against workdir, and workdir against the directory holding the file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/tpsolve/transport"
)

const (
	// FileName is the configuration file looked up in the project directory.
	FileName = "tpsolve.yaml"

	// StylePlain renders plans as plain text; StyleBoxed adds a border.
	StylePlain = "plain"
	StyleBoxed = "boxed"

	defaultInput  = "input.txt"
	defaultOutput = "output.txt"
)

// SolverConfig mirrors transport.Options.
type SolverConfig struct {
	MaxIterations int     `yaml:"max_iterations"`
	Epsilon       float64 `yaml:"epsilon"`
}

// Config models tpsolve.yaml.
type Config struct {
	Version int          `yaml:"version"`
	WorkDir string       `yaml:"workdir"`
	Input   string       `yaml:"input"`
	Output  string       `yaml:"output"`
	Style   string       `yaml:"style"`
	Verify  bool         `yaml:"verify"`
	Solver  SolverConfig `yaml:"solver"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	opts := transport.DefaultOptions()

	return Config{
		Version: 1,
		WorkDir: ".",
		Input:   defaultInput,
		Output:  defaultOutput,
		Style:   StylePlain,
		Solver: SolverConfig{
			MaxIterations: opts.MaxIterations,
			Epsilon:       opts.Epsilon,
		},
	}
}

// Load reads path. A missing file yields Default with WorkDir resolved
// against the file's directory.
func Load(path string) (Config, error) {
	base := filepath.Dir(path)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			c := Default()
			c.normalize(base)

			return c, nil
		}

		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	parsed := Default()
	if err = yaml.Unmarshal(data, &parsed); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	parsed.applyDefaults()
	parsed.normalize(base)
	if err = parsed.validate(); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}

	return parsed, nil
}

// Save writes c to path as YAML, creating parent directories.
func Save(path string, c Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("config: mkdir: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("config: encode: %w", err)
	}
	if err = os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}

	return nil
}

// InputPath is Input resolved against WorkDir.
func (c Config) InputPath() string { return resolve(c.WorkDir, c.Input) }

// OutputPath is Output resolved against WorkDir. "-" means stdout.
func (c Config) OutputPath() string {
	if c.Output == "-" {
		return "-"
	}

	return resolve(c.WorkDir, c.Output)
}

// SolverOptions converts the solver section into transport.Options.
func (c Config) SolverOptions(log *zap.Logger) transport.Options {
	return transport.Options{
		Epsilon:       c.Solver.Epsilon,
		MaxIterations: c.Solver.MaxIterations,
		Logger:        log,
	}
}

func (c *Config) applyDefaults() {
	def := Default()
	if c.Version == 0 {
		c.Version = def.Version
	}
	if strings.TrimSpace(c.Input) == "" {
		c.Input = def.Input
	}
	if strings.TrimSpace(c.Output) == "" {
		c.Output = def.Output
	}
	if c.Style == "" {
		c.Style = def.Style
	}
	if c.Solver.MaxIterations == 0 {
		c.Solver.MaxIterations = def.Solver.MaxIterations
	}
	if c.Solver.Epsilon == 0 {
		c.Solver.Epsilon = def.Solver.Epsilon
	}
}

func (c *Config) normalize(base string) {
	c.WorkDir = strings.TrimSpace(c.WorkDir)
	if c.WorkDir == "" {
		c.WorkDir = "."
	}
	if !filepath.IsAbs(c.WorkDir) {
		c.WorkDir = filepath.Join(base, c.WorkDir)
	}
	c.Style = strings.ToLower(strings.TrimSpace(c.Style))
}

func (c *Config) validate() error {
	if c.Version < 1 {
		return errors.New("config version must be >= 1")
	}
	if c.Style != StylePlain && c.Style != StyleBoxed {
		return fmt.Errorf("style must be %q or %q, got %q", StylePlain, StyleBoxed, c.Style)
	}
	if c.Solver.MaxIterations < 0 {
		return errors.New("solver.max_iterations must be >= 0")
	}
	if c.Solver.Epsilon < 0 {
		return errors.New("solver.epsilon must be >= 0")
	}

	return nil
}

func resolve(dir, name string) string {
	if filepath.IsAbs(name) {
		return name
	}

	return filepath.Join(dir, name)
}
