package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with args and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "percolate version "+version+"\n", out)
}

func TestRun_Text(t *testing.T) {
	out, _, err := execute(t, "run", "--n", "10", "--trials", "5", "--seed", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "Sample Mean")
	assert.Contains(t, out, "95% Confidence Interval = [")
	assert.Contains(t, out, "10 X 10 Grid")
	assert.Contains(t, out, "Number of Trials: 5")
}

func TestRun_JSON(t *testing.T) {
	out, _, err := execute(t, "run", "--n", "12", "--trials", "8", "--workers", "3", "--output", "json")
	require.NoError(t, err)

	var got struct {
		N        int     `json:"n"`
		Trials   int     `json:"trials"`
		Recorded int     `json:"recorded"`
		Mean     float64 `json:"mean"`
		Low      float64 `json:"confidence_low"`
		High     float64 `json:"confidence_high"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, 12, got.N)
	assert.Equal(t, 8, got.Trials)
	assert.Equal(t, 8, got.Recorded)
	assert.Greater(t, got.Mean, 0.0)
	assert.LessOrEqual(t, got.Low, got.Mean)
	assert.GreaterOrEqual(t, got.High, got.Mean)
}

func TestRun_SameSeedSameOutput(t *testing.T) {
	a, _, err := execute(t, "run", "--n", "15", "--trials", "6", "--seed", "77")
	require.NoError(t, err)
	b, _, err := execute(t, "run", "--n", "15", "--trials", "6", "--seed", "77", "--workers", "4")
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestRun_PlotAndShow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grid.png")
	out, _, err := execute(t, "run", "--n", "6", "--trials", "2", "--plot", path, "--show")
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("\x89PNG")))

	lines := strings.Split(out, "\n")
	require.GreaterOrEqual(t, len(lines), 6)
	for _, line := range lines[:6] {
		assert.Len(t, line, 6, "grid row %q", line)
	}
}

func TestRun_DBAndHistory(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "runs.db")
	out, _, err := execute(t, "run", "--n", "8", "--trials", "4", "--db", dbPath, "--output", "json")
	require.NoError(t, err)

	var run struct {
		RunID string `json:"run_id"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &run))
	require.NotEmpty(t, run.RunID)

	hist, _, err := execute(t, "history", "--db", dbPath)
	require.NoError(t, err)
	assert.Contains(t, hist, "RUN")
	assert.Contains(t, hist, run.RunID)
}

func TestHistory_RequiresDB(t *testing.T) {
	_, _, err := execute(t, "history")
	assert.Error(t, err)
}

func TestRun_ConfigFileAndFlags(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "percolate.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("n: 9\ntrials: 3\noutput: json\n"), 0o644))

	out, _, err := execute(t, "run", "--config", cfgPath, "--trials", "2")
	require.NoError(t, err)
	assert.Contains(t, out, `"n": 9`)
	assert.Contains(t, out, `"trials": 2`, "flags override the file")
}

func TestRun_InvalidFlags(t *testing.T) {
	_, _, err := execute(t, "run", "--n", "0")
	assert.Error(t, err)
	_, _, err = execute(t, "run", "--output", "xml")
	assert.Error(t, err)
}

func TestRun_DebugLogging(t *testing.T) {
	_, stderr, err := execute(t, "run", "--n", "5", "--trials", "2", "--log-level", "debug", "--log-format", "json")
	require.NoError(t, err)
	assert.Contains(t, stderr, `"msg":"trial complete"`)
	assert.Contains(t, stderr, `"msg":"simulation finished"`)
}
