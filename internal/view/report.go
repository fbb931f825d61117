package view

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/logrusorgru/aurora"

	"github.com/gabrielssanches/i3lock-game-of-life/internal/core"
)

// Reporter prints the progress of a headless run.
type Reporter struct {
	w     io.Writer
	au    aurora.Aurora
	every int
}

// NewReporter returns a Reporter writing to w that prints progress every
// `every` generations. colors enables ANSI colouring.
func NewReporter(w io.Writer, colors bool, every int) *Reporter {
	if every <= 0 {
		every = 10
	}
	return &Reporter{w: w, au: aurora.NewAurora(colors), every: every}
}

// Configuration prints the grid parameters and any extra settings.
func (r *Reporter) Configuration(snap core.ParameterSnapshot, extra map[string]interface{}) {
	fmt.Fprintln(r.w, r.au.Bold("Running configuration:"))
	for _, g := range snap.Groups {
		if g.Name != "Grid" {
			continue
		}
		for _, p := range g.Params {
			fmt.Fprintf(r.w, "  %s: %s\n", r.au.Green(p.Label), p.Value)
		}
	}
	r.printHashData(extra)
}

// Started announces the beginning of the run.
func (r *Reporter) Started() {
	fmt.Fprintln(r.w, r.au.Cyan("\nSimulation started..."))
}

// Progress prints a line when generation is a multiple of the interval.
func (r *Reporter) Progress(generation, live int) {
	if generation%r.every != 0 {
		return
	}
	fmt.Fprintf(r.w, "  Generation %v: %v live cells\n", r.au.Yellow(generation), live)
}

// Finished prints the run summary.
func (r *Reporter) Finished(res Result) {
	fmt.Fprintln(r.w, r.au.Red("\nFinished:"))
	r.printHashData(map[string]interface{}{
		"Last generation": res.Generation,
		"Live cells":      res.LiveCells,
		"Reason":          res.Reason,
		"Total time":      res.Elapsed.Round(time.Millisecond),
	})
}

func (r *Reporter) printHashData(d map[string]interface{}) {
	names := make([]string, 0, len(d))
	for k := range d {
		names = append(names, k)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(r.w, "  %s: %v\n", r.au.Green(name), d[name])
	}
}
