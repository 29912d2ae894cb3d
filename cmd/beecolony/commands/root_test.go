package commands

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes a fresh command tree with args and returns stdout and stderr.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })

	var out, errOut bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

func TestRootCommand_ShowsHelpWhenNoSubcommand(t *testing.T) {
	out, _, err := run(t)
	assert.NoError(t, err)
	assert.Contains(t, out, "Usage:", "Help should be displayed")
	assert.Contains(t, out, "beecolony")
	assert.Contains(t, out, "solve")
	assert.Contains(t, out, "paths")
}

func TestRootCommand_RejectsUnknownFlags(t *testing.T) {
	_, _, err := run(t, "--unknown-flag", "value")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown flag")
}

func TestRootCommand_VerboseAndQuietExclusive(t *testing.T) {
	_, _, err := run(t, "paths", "--verbose", "--quiet")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "none of the others can be")
}

func TestRootCommand_Version(t *testing.T) {
	SetVersionInfo("1.2.3", "abc", "today")
	t.Cleanup(func() { SetVersionInfo("dev", "none", "unknown") })

	out, _, err := run(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "1.2.3 (commit: abc, built: today)")
}

func TestPaths_DemoCities(t *testing.T) {
	out, _, err := run(t, "paths", "--quiet", "--cities", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "Cities: A B C D E")
	assert.Contains(t, out, "Number of cities = 5\n")
	assert.Contains(t, out, "Number of possible paths = 120\n")
	assert.Contains(t, out, "Best possible solution (shortest path) length = 4.0000\n")
}

func TestPaths_DefaultInstance(t *testing.T) {
	out, _, err := run(t, "paths", "--quiet")
	require.NoError(t, err)
	assert.Contains(t, out, "Number of cities = 20\n")
	assert.Contains(t, out, "Number of possible paths = 2,432,902,008,176,640,000\n")
	assert.Contains(t, out, "length = 19.0000\n")
}

func TestPaths_Overflow(t *testing.T) {
	out, _, err := run(t, "paths", "--quiet", "--cities", "21")
	require.NoError(t, err)
	assert.Contains(t, out, "Number of possible paths = more than 9,223,372,036,854,775,807\n")
}

func TestPaths_CostTableConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "beecolony.yml")
	require.NoError(t, os.WriteFile(path, []byte(`problem:
  symbols: [x, y, z]
  costs:
    - [0, 1, 2]
    - [1, 0, 1]
    - [2, 1, 0]
`), 0644))

	out, _, err := run(t, "paths", "--quiet", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Loading cost table: [x y z]")
	assert.Contains(t, out, "Number of possible paths = 6\n")
	assert.NotContains(t, out, "shortest path")
}

func TestSolve_SmallInstance(t *testing.T) {
	out, _, err := run(t, "solve", "--quiet", "--cities", "4", "--bees", "20",
		"--cycles", "200", "--seed", "42", "--progress=false")
	require.NoError(t, err)
	assert.Contains(t, out, "Colony: 20 bees (2 inactive, 15 active, 3 scout), max visits 95, cycles 200")
	assert.Contains(t, out, "Initial random hive")
	assert.Contains(t, out, "Final hive\nBest path found: A->B->C->D\nPath quality:    3.0000\n")
	assert.Contains(t, out, "✓ Shortest path found")
	assert.NotContains(t, out, "Progress:")
}

func TestSolve_ProgressAndBees(t *testing.T) {
	out, _, err := run(t, "solve", "--quiet", "--cities", "4", "--bees", "10",
		"--cycles", "50", "--seed", "3", "--show-bees")
	require.NoError(t, err)
	assert.Contains(t, out, "Progress: |==========|\n           ^^^^^^^^^^   Total Time:")
	assert.Contains(t, out, "Bee 0: inactive\n Memory = ")
	assert.Contains(t, out, "Bee 9: active\n")
}

func TestSolve_Reproducible(t *testing.T) {
	args := []string{"solve", "--quiet", "--cities", "9", "--bees", "30", "--cycles", "40", "--seed", "11", "--progress=false"}
	first, _, err := run(t, args...)
	require.NoError(t, err)
	second, _, err := run(t, args...)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestSolve_Colonies(t *testing.T) {
	out, _, err := run(t, "solve", "--quiet", "--cities", "5", "--bees", "40",
		"--cycles", "300", "--colonies", "3", "--seed", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "Colony 0: ")
	assert.Contains(t, out, "Colony 2: ")
	assert.Contains(t, out, "Best colony: ")
	assert.Contains(t, out, "Best path found: A->B->C->D->E\n")
	assert.Contains(t, out, "^^^^^^^^^^")
}

func TestSolve_InvalidConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "beecolony.yml")
	require.NoError(t, os.WriteFile(path, []byte(`colony:
  total_population: 4
  inactive: 1
  active: 1
  scout: 1
`), 0644))

	out, errOut, err := run(t, "solve", "--quiet", "--config", path)
	require.Error(t, err)
	assert.Equal(t, "Failed to load configuration", err.Error())
	assert.Contains(t, errOut, "role counts do not sum to total population")
	assert.Contains(t, errOut, "Config: "+path)
	assert.Empty(t, out)
}

func TestSolve_FlagsOverrideConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "beecolony.yml")
	require.NoError(t, os.WriteFile(path, []byte(`colony:
  max_cycles: 5
problem:
  cities: 3
`), 0644))

	out, _, err := run(t, "solve", "--quiet", "--config", path, "--bees", "10", "--cities", "4", "--progress=false")
	require.NoError(t, err)
	assert.Contains(t, out, "Colony: 10 bees (1 inactive, 7 active, 2 scout), max visits 95, cycles 5")
	assert.Contains(t, out, "Number of cities = 4")
}

func TestSolve_InvalidFlags(t *testing.T) {
	_, errOut, err := run(t, "solve", "--quiet", "--cities", "30")
	require.Error(t, err)
	assert.Equal(t, "Invalid configuration", err.Error())
	assert.Contains(t, errOut, "problem.cities must be between 1 and 26")

	_, _, err = run(t, "solve", "--quiet", "--mistake", "2")
	require.Error(t, err)
	assert.Equal(t, "Invalid configuration", err.Error())
}

func TestSolve_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out, errOut bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs([]string{"solve", "--quiet", "--cities", "4", "--bees", "10", "--cycles", "10", "--progress=false"})
	err := cmd.ExecuteContext(ctx)
	require.Error(t, err)
	assert.Equal(t, "Solve interrupted", err.Error())
	assert.Contains(t, errOut.String(), "context canceled")
}
