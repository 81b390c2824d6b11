package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/disentangle/config"
	"github.com/katalvlaran/disentangle/parser"
	"github.com/katalvlaran/disentangle/solver"
)

func solvePair(t *testing.T) []solver.Frame {
	t.Helper()
	initial, err := parser.ReadFile("../../parser/testdata/pair.txt")
	require.NoError(t, err)
	s, err := solver.New(initial)
	require.NoError(t, err)
	for !s.Done() {
		require.NoError(t, s.Step())
	}
	require.True(t, s.Solved())

	return s.MoveSequence()
}

func TestWriteSolution_Text(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeSolution(&buf, config.OutputText, solvePair(t)))
	assert.Equal(t, "solved in 2 moves\n  1. Remove A\n  2. Remove B\n", buf.String())
}

func TestWriteSolution_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeSolution(&buf, config.OutputJSON, solvePair(t)))

	var got []moveRecord
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 2)
	// B's cell is local (1,0,0); normalising moves it to the origin.
	assert.Equal(t, moveRecord{
		Step:      1,
		Move:      "Remove A",
		Pieces:    []string{"A"},
		Direction: [3]int{-1, 0, 0},
		Removal:   true,
		State:     "B@(-1,0,0)",
	}, got[0])
	assert.Equal(t, "<empty>", got[1].State)
}

func TestWriteSolution_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeSolution(&buf, config.OutputText, nil))
	assert.Empty(t, buf.String())
}

func TestRun(t *testing.T) {
	cfg := config.Default()
	cfg.Puzzle = "../../parser/testdata/cross.txt"
	cfg.ProgressEvery = 0

	solved, err := run(context.Background(), cfg)
	require.NoError(t, err)
	assert.True(t, solved)
}

func TestRun_StepLimit(t *testing.T) {
	cfg := config.Default()
	cfg.Puzzle = "../../parser/testdata/cross.txt"
	cfg.MaxSteps = 1

	solved, err := run(context.Background(), cfg)
	require.NoError(t, err)
	assert.False(t, solved)
}

func TestRun_MissingPuzzle(t *testing.T) {
	cfg := config.Default()
	cfg.Puzzle = "../../parser/testdata/nope.txt"

	_, err := run(context.Background(), cfg)
	assert.Error(t, err)
}

func TestLoadConfig_ExplicitZeroProgressDisablesReports(t *testing.T) {
	assert.Contains(t, flag.Lookup("progress").Usage, "0 disables")

	require.NoError(t, flag.Set("progress", "0"))
	cfg, err := loadConfig()
	require.NoError(t, err)
	assert.Zero(t, cfg.ProgressEvery, "an explicit flag overrides the default")
	assert.Equal(t, config.Default().MaxSteps, cfg.MaxSteps, "unset flags keep config values")
}
