package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"

	"github.com/katalvlaran/tpsolve/config"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// run executes the root command with a nop logger and returns stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd(&app{logger: zap.NewNop(), out: &out})
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), err
}

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
}

const squareTwoText = "2 2\n2 3 4 1\n20 30\n10 40\n"

func TestInitCreatesWorkspace(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "pr3")

	_, err := run(t, "init", dir)
	require.NoError(t, err)

	info, err := os.Stat(filepath.Join(dir, "input.txt"))
	require.NoError(t, err)
	assert.Zero(t, info.Size())
	assert.FileExists(t, filepath.Join(dir, config.FileName))

	// Existing input must survive a second init.
	writeFile(t, filepath.Join(dir, "input.txt"), squareTwoText)
	_, err = run(t, "init", dir)
	require.NoError(t, err)
	got, err := os.ReadFile(filepath.Join(dir, "input.txt"))
	require.NoError(t, err)
	assert.Equal(t, squareTwoText, string(got))
}

func TestSolveToStdout(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "input.txt")
	writeFile(t, in, squareTwoText)

	out, err := run(t, "solve", "-c", filepath.Join(dir, config.FileName), "-i", in, "-o", "-")
	require.NoError(t, err)

	want := "Initial plan:\n10 40\n20 2|10 3|10\n30 4 1|30\n\nInitial cost F(x) = 80\n" +
		"\n" +
		"Optimal plan:\n10 40\n20 2|10 3|10\n30 4 1|30\n\nOptimal cost F(x) = 80\n"
	assert.Equal(t, want, out)
}

func TestSolveFromConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, config.FileName)
	writeFile(t, cfgPath, strings.TrimSpace(`
workdir: data
input: problem.yaml
output: result.txt
style: boxed
verify: true
`))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "data"), 0o755))
	writeFile(t, filepath.Join(dir, "data", "problem.yaml"), strings.TrimSpace(`
supply: [20, 30, 25]
demand: [10, 35, 30]
cost:
  - [8, 6, 10]
  - [9, 12, 13]
  - [14, 9, 16]
`))

	_, err := run(t, "solve", "--config", cfgPath)
	require.NoError(t, err)

	got, err := os.ReadFile(filepath.Join(dir, "data", "result.txt"))
	require.NoError(t, err)
	assert.Contains(t, string(got), "Initial cost F(x) = 905")
	assert.Contains(t, string(got), "Optimal cost F(x) = 735")
	assert.NotContains(t, string(got), noSolution)
}

func TestSolveBalancesInput(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "input.txt")
	// Supply exceeds demand by 10: a dummy sink is added.
	writeFile(t, in, "2 2\n2 3 4 1\n20 30\n10 30\n")

	out, err := run(t, "solve", "-c", filepath.Join(dir, config.FileName), "-i", in, "-o", "-", "--verify")
	require.NoError(t, err)
	assert.NotContains(t, out, noSolution)
	assert.Contains(t, out, "Initial plan:\n10 30 10\n")
}

func TestSolveReportsNoSolution(t *testing.T) {
	for name, body := range map[string]string{
		"empty":        "",
		"garbage":      "2 2\n2 x 4 1\n20 30\n10 40\n",
		"short counts": "2 2\n2 3 4\n20 30\n10 40\n",
	} {
		t.Run(name, func(t *testing.T) {
			dir := t.TempDir()
			in := filepath.Join(dir, "input.txt")
			writeFile(t, in, body)

			out, err := run(t, "solve", "-c", filepath.Join(dir, config.FileName), "-i", in, "-o", "-")
			require.NoError(t, err)
			assert.Equal(t, noSolution+"\n", out)
		})
	}
}

func TestSolveMissingInput(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "output.txt")

	_, err := run(t, "solve", "-c", filepath.Join(dir, config.FileName), "-o", out)
	require.NoError(t, err)

	got, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, noSolution+"\n", string(got))
}

func TestSolveRejectsBadConfig(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, config.FileName)
	writeFile(t, cfgPath, "style: neon\n")

	_, err := run(t, "solve", "-c", cfgPath)
	require.Error(t, err)
}
