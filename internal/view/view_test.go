package view

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gabrielssanches/i3lock-game-of-life/internal/life"
)

var block = [][2]int{{2, 2}, {3, 2}, {2, 3}, {3, 3}}

// Compile-time check that the grid satisfies the terminal surfaces.
var (
	_ Board   = (*life.Grid)(nil)
	_ Stepper = (*life.Grid)(nil)
)

func TestRunBatchStopsAtStepLimit(t *testing.T) {
	g := life.NewGrid(8, 8)
	g.Settle(block)

	var buf bytes.Buffer
	res := RunBatch(context.Background(), g, 20, 0, NewReporter(&buf, false, 10))

	assert.Equal(t, ReasonMaxSteps, res.Reason)
	assert.Equal(t, 20, res.Generation)
	assert.Equal(t, 4, res.LiveCells)

	out := buf.String()
	assert.Contains(t, out, "Generation 10: 4 live cells")
	assert.Contains(t, out, "Generation 20: 4 live cells")
	assert.NotContains(t, out, "Generation 5:")
	assert.Contains(t, out, "Reason: step limit reached")
	assert.NotContains(t, out, "\x1b[", "colours should be disabled")
}

func TestRunBatchStopsWhenExtinct(t *testing.T) {
	g := life.NewGrid(8, 8)
	g.Set(4, 4, true)

	res := RunBatch(context.Background(), g, 0, 0, nil)
	assert.Equal(t, ReasonExtinct, res.Reason)
	assert.Equal(t, 1, res.Generation)
	assert.Zero(t, res.LiveCells)
}

func TestRunBatchHonoursCancellation(t *testing.T) {
	g := life.NewGrid(8, 8)
	g.Settle(block)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res := RunBatch(ctx, g, 0, time.Hour, nil)
	assert.Equal(t, ReasonCancelled, res.Reason)
	assert.Zero(t, res.Generation)

	res = RunBatch(ctx, g, 0, 0, nil)
	assert.Equal(t, ReasonCancelled, res.Reason)
}

func TestRunBatchPacesWithInterval(t *testing.T) {
	g := life.NewGrid(8, 8)
	g.Settle(block)

	res := RunBatch(context.Background(), g, 3, time.Millisecond, nil)
	assert.Equal(t, 3, res.Generation)
	assert.GreaterOrEqual(t, res.Elapsed, 3*time.Millisecond)
}

func TestReporterConfiguration(t *testing.T) {
	g := life.NewGrid(12, 9)
	var buf bytes.Buffer
	r := NewReporter(&buf, false, 0)
	r.Configuration(g.Parameters(), map[string]interface{}{"Seed": 42})
	r.Started()

	out := buf.String()
	require.Contains(t, out, "Running configuration:")
	assert.Contains(t, out, "Columns: 12")
	assert.Contains(t, out, "Rows: 9")
	assert.Contains(t, out, "Cell pitch: 5")
	assert.Contains(t, out, "Seed: 42")
	assert.Contains(t, out, "Simulation started...")
	assert.NotContains(t, out, "Live cells", "population group is not configuration")
}
