package app

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/integrii/flaggy"

	"github.com/gabrielssanches/i3lock-game-of-life/internal/core"
	"github.com/gabrielssanches/i3lock-game-of-life/internal/render"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config represents the command-line parameters for the backdrop.
type Config struct {
	Sim        string
	Width      int
	Height     int
	Seed       int64
	TPS        int
	GPS        int
	Background string
	Cells      string
	Fullscreen bool
	LogLevel   string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Sim:      "life",
		Width:    1280,
		Height:   720,
		Seed:     42,
		TPS:      60,
		GPS:      10,
		LogLevel: "info",
	}
}

// Bind attaches the configuration to the provided parser.
func (c *Config) Bind(p *flaggy.Parser) {
	p.String(&c.Sim, "", "sim", "simulation to run ["+strings.Join(core.SimNames(), "|")+"]")
	p.Int(&c.Width, "x", "width", "display width in pixels")
	p.Int(&c.Height, "y", "height", "display height in pixels")
	p.Int64(&c.Seed, "", "seed", "seed for the initial board")
	p.Int(&c.TPS, "", "tps", "redraws per second")
	p.Int(&c.GPS, "", "gps", "generations per second")
	p.String(&c.Background, "", "background", "background colour as rrggbb (random when empty)")
	p.String(&c.Cells, "", "cells", "live cell colour as rrggbb (complement of the background when empty)")
	p.Bool(&c.Fullscreen, "f", "fullscreen", "cover the whole screen")
	p.String(&c.LogLevel, "", "log-level", "log level (debug, info, warn, error)")
}

// Validate reports the first unusable setting.
func (c *Config) Validate() error {
	if _, ok := core.Sims()[c.Sim]; !ok {
		return fmt.Errorf("%w: unknown sim %q", ErrInvalidConfig, c.Sim)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: display size %dx%d must be positive", ErrInvalidConfig, c.Width, c.Height)
	}
	if c.TPS <= 0 {
		return fmt.Errorf("%w: tps %d must be positive", ErrInvalidConfig, c.TPS)
	}
	if c.GPS <= 0 || c.GPS > c.TPS {
		return fmt.Errorf("%w: gps %d must be in [1, %d]", ErrInvalidConfig, c.GPS, c.TPS)
	}
	if _, err := c.Palette(core.NewRNG(c.Seed)); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// Palette resolves the configured colours. Missing colours are derived the
// way the lock screen picks them: a random background and its complement.
func (c *Config) Palette(rng *core.RNG) (render.Palette, error) {
	switch {
	case c.Background == "" && c.Cells == "":
		return render.RandomPalette(rng), nil
	case c.Background == "":
		cell, err := render.ParseHex(c.Cells)
		if err != nil {
			return render.Palette{}, err
		}
		p := render.ComplementPalette(rgbOf(cell))
		return render.Palette{Background: p.Cell, Cell: cell}, nil
	}
	bg, err := render.ParseHex(c.Background)
	if err != nil {
		return render.Palette{}, err
	}
	p := render.ComplementPalette(rgbOf(bg))
	if c.Cells != "" {
		if p.Cell, err = render.ParseHex(c.Cells); err != nil {
			return render.Palette{}, err
		}
	}
	return p, nil
}

// SimConfig returns the registry configuration map for the selected sim.
func (c *Config) SimConfig() map[string]string {
	return map[string]string{
		"w":    strconv.Itoa(c.Width),
		"h":    strconv.Itoa(c.Height),
		"seed": strconv.FormatInt(c.Seed, 10),
	}
}

func rgbOf(c color.RGBA) uint32 {
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}
