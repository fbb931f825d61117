package view

import (
	"context"
	"time"

	"github.com/gabrielssanches/i3lock-game-of-life/internal/core"
)

// Stepper is the board surface a headless run needs.
type Stepper interface {
	core.Sim
	Generation() int
	LiveCells() int
}

// Reasons a headless run stops.
const (
	ReasonMaxSteps  = "step limit reached"
	ReasonExtinct   = "no live cells"
	ReasonCancelled = "cancelled"
)

// Result summarises a headless run.
type Result struct {
	Generation int
	LiveCells  int
	Reason     string
	Elapsed    time.Duration
}

// RunBatch steps b until maxSteps generations have run (0 means no limit),
// the board dies out, or ctx is cancelled. A board that stops changing keeps
// running: its cells still age towards an explosion. A positive interval
// paces the generations.
func RunBatch(ctx context.Context, b Stepper, maxSteps int, interval time.Duration, r *Reporter) Result {
	start := time.Now()
	res := Result{Reason: ReasonMaxSteps}

	var tick <-chan time.Time
	if interval > 0 {
		tk := time.NewTicker(interval)
		defer tk.Stop()
		tick = tk.C
	}

	for steps := 0; maxSteps == 0 || steps < maxSteps; steps++ {
		if tick != nil {
			select {
			case <-ctx.Done():
				res.Reason = ReasonCancelled
				return finish(b, res, start, r)
			case <-tick:
			}
		} else if ctx.Err() != nil {
			res.Reason = ReasonCancelled
			return finish(b, res, start, r)
		}

		b.Step()
		live := b.LiveCells()
		if r != nil {
			r.Progress(b.Generation(), live)
		}
		if live == 0 {
			res.Reason = ReasonExtinct
			break
		}
	}
	return finish(b, res, start, r)
}

func finish(b Stepper, res Result, start time.Time, r *Reporter) Result {
	res.Generation = b.Generation()
	res.LiveCells = b.LiveCells()
	res.Elapsed = time.Since(start)
	if r != nil {
		r.Finished(res)
	}
	return res
}
