package instance

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Parse reads the four-line text format (see package doc). Blank lines are
// skipped; every other deviation yields ErrUnparsable.
func Parse(r io.Reader) (*Instance, error) {
	lines, err := readLines(r, 4)
	if err != nil {
		return nil, err
	}

	dims, err := parseInts(lines[0], "dimensions")
	if err != nil {
		return nil, err
	}
	if len(dims) != 2 || dims[0] <= 0 || dims[1] <= 0 {
		return nil, fmt.Errorf("%w: line 1: want two positive counts, got %q", ErrUnparsable, lines[0])
	}
	m, n := dims[0], dims[1]

	flat, err := parseFloats(lines[1], "costs")
	if err != nil {
		return nil, err
	}
	if len(flat) != m*n {
		return nil, fmt.Errorf("%w: line 2: want %d costs, got %d", ErrUnparsable, m*n, len(flat))
	}
	cost := make([][]float64, m)
	for i := range cost {
		cost[i] = flat[i*n : (i+1)*n]
	}

	supply, err := parseInts(lines[2], "supply")
	if err != nil {
		return nil, err
	}
	if len(supply) != m {
		return nil, fmt.Errorf("%w: line 3: want %d supplies, got %d", ErrUnparsable, m, len(supply))
	}

	demand, err := parseInts(lines[3], "demand")
	if err != nil {
		return nil, err
	}
	if len(demand) != n {
		return nil, fmt.Errorf("%w: line 4: want %d demands, got %d", ErrUnparsable, n, len(demand))
	}

	return New(supply, demand, cost)
}

// Load reads an instance from path, choosing the YAML decoder for .yaml/.yml
// files and the text parser otherwise.
func Load(path string) (*Instance, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("instance: open %s: %w", path, err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAML(f)
	default:
		return Parse(f)
	}
}

// readLines returns the first want non-blank lines of r.
func readLines(r io.Reader, want int) ([]string, error) {
	sc := bufio.NewScanner(r)
	lines := make([]string, 0, want)
	for sc.Scan() && len(lines) < want {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnparsable, err)
	}
	if len(lines) < want {
		return nil, fmt.Errorf("%w: want %d lines, got %d", ErrUnparsable, want, len(lines))
	}

	return lines, nil
}

func parseInts(line, what string) ([]int, error) {
	fields := strings.Fields(line)
	out := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %q is not an integer", ErrUnparsable, what, f)
		}
		out[i] = v
	}

	return out, nil
}

func parseFloats(line, what string) ([]float64, error) {
	fields := strings.Fields(line)
	out := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %q is not a number", ErrUnparsable, what, f)
		}
		out[i] = v
	}

	return out, nil
}
