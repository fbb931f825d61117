//go:build ebiten

package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/integrii/flaggy"

	"github.com/gabrielssanches/i3lock-game-of-life/internal/app"
	"github.com/gabrielssanches/i3lock-game-of-life/internal/core"
	_ "github.com/gabrielssanches/i3lock-game-of-life/internal/life"
	"github.com/gabrielssanches/i3lock-game-of-life/internal/logging"
)

func main() {
	cfg := app.NewConfig()
	p := flaggy.NewParser("backdrop")
	p.Description = "Game of Life lock-screen backdrop"
	cfg.Bind(p)
	if err := p.Parse(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	log, err := logging.New(cfg.LogLevel, os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if err := cfg.Validate(); err != nil {
		log.WithError(err).Fatal("cannot start backdrop")
	}

	sim := core.Sims()[cfg.Sim](cfg.SimConfig())

	// Colours change on every start, independent of the board seed.
	palette, err := cfg.Palette(core.NewRNG(time.Now().UnixNano()))
	if err != nil {
		log.WithError(err).Fatal("cannot resolve palette")
	}

	game := app.New(sim, cfg, palette, log)
	w, h := app.DisplaySize(sim)

	ebiten.SetWindowTitle("i3lock game of life - " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)
	ebiten.SetFullscreen(cfg.Fullscreen)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.WithError(err).Fatal("backdrop stopped")
	}
	log.Info("backdrop closed")
}
