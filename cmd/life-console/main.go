package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/integrii/flaggy"
	"github.com/sirupsen/logrus"

	"github.com/gabrielssanches/i3lock-game-of-life/internal/life"
	"github.com/gabrielssanches/i3lock-game-of-life/internal/logging"
	"github.com/gabrielssanches/i3lock-game-of-life/internal/view"
)

type envOptions struct {
	width       int
	height      int
	seed        int64
	interval    time.Duration
	maxSteps    int
	interactive bool
	pattern     string
	noColor     bool
	logLevel    string
	logFile     string
}

func main() {
	eo := initOptions()

	log, closeLog, err := newLogger(eo)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	defer closeLog()

	g := life.New(eo.width, eo.height, eo.seed)
	if eo.pattern != "" {
		p, ok := life.LookupPattern(eo.pattern)
		if !ok {
			flaggy.ShowHelpAndExit("unknown pattern " + eo.pattern)
		}
		g.SettlePattern(p, 1, 1)
	}
	cols, rows, pitch := g.Dimensions()
	log.WithFields(logrus.Fields{
		"columns": cols,
		"rows":    rows,
		"pitch":   pitch,
		"seed":    eo.seed,
		"pattern": eo.pattern,
	}).Info("grid ready")

	if eo.interactive {
		ui, err := view.NewConsoleUI(g, eo.interval, log)
		if err != nil {
			log.WithError(err).Fatal("cannot open terminal")
		}
		if err := ui.Start(); err != nil {
			log.WithError(err).Fatal("terminal viewer stopped")
		}
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	r := view.NewReporter(os.Stdout, !eo.noColor, 10)
	r.Configuration(g.Parameters(), map[string]interface{}{
		"Interval":        eo.interval,
		"Max generations": eo.maxSteps,
		"Seed":            eo.seed,
	})
	r.Started()
	res := view.RunBatch(ctx, g, eo.maxSteps, eo.interval, r)
	log.WithFields(logrus.Fields{
		"generation": res.Generation,
		"live":       res.LiveCells,
		"reason":     res.Reason,
	}).Debug("run finished")
}

func initOptions() *envOptions {
	eo := &envOptions{
		width:    400,
		height:   150,
		seed:     time.Now().UnixNano(),
		interval: 100 * time.Millisecond,
		maxSteps: 1000,
		logLevel: logging.DefaultLevel,
	}
	flaggy.SetName("life-console")
	flaggy.SetDescription("Runs the Game of Life backdrop in a terminal")
	flaggy.DefaultParser.ShowHelpOnUnexpected = true
	flaggy.Int(&eo.width, "x", "width", "Display width; the grid has width/5 columns")
	flaggy.Int(&eo.height, "y", "height", "Display height; the grid has height/5 rows")
	flaggy.Int64(&eo.seed, "", "seed", "Seed for the random board (defaults to the clock)")
	flaggy.Duration(&eo.interval, "i", "interval", "Interval between generations, for example 150ms")
	flaggy.Int(&eo.maxSteps, "s", "maxSteps", "Stop after maxSteps generations in batch mode (0 runs until extinct)")
	flaggy.Bool(&eo.interactive, "n", "interactive", "Start the interactive terminal viewer")
	flaggy.String(&eo.pattern, "p", "pattern", "Seed with a pattern instead of random data ["+strings.Join(life.PatternNames(), "|")+"]")
	flaggy.Bool(&eo.noColor, "", "no-color", "Disable coloured output")
	flaggy.String(&eo.logLevel, "", "log-level", "Log level (debug, info, warn, error)")
	flaggy.String(&eo.logFile, "", "log-file", "Write logs to this file (interactive mode discards logs otherwise)")
	flaggy.Parse()

	if eo.width <= 0 || eo.height <= 0 {
		flaggy.ShowHelpAndExit("width and height must be positive")
	}
	if eo.interval < 0 || eo.maxSteps < 0 {
		flaggy.ShowHelpAndExit("interval and maxSteps must not be negative")
	}
	if eo.interactive && eo.interval == 0 {
		eo.interval = 100 * time.Millisecond
	}
	return eo
}

// newLogger keeps log records off the terminal while gocui owns it.
func newLogger(eo *envOptions) (*logrus.Logger, func(), error) {
	var out io.Writer = os.Stderr
	closeFn := func() {}
	switch {
	case eo.logFile != "":
		f, err := os.OpenFile(eo.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		out = f
		closeFn = func() { _ = f.Close() }
	case eo.interactive:
		return logging.Discard(), closeFn, nil
	}
	log, err := logging.New(eo.logLevel, out)
	if err != nil {
		closeFn()
		return nil, nil, err
	}
	return log, closeFn, nil
}
