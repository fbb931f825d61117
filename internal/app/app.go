//go:build ebiten

package app

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/sirupsen/logrus"

	"github.com/gabrielssanches/i3lock-game-of-life/internal/core"
	"github.com/gabrielssanches/i3lock-game-of-life/internal/render"
	"github.com/gabrielssanches/i3lock-game-of-life/internal/ui"
)

// Game adapts a core simulation to the ebiten.Game interface. Generations
// advance on their own fixed cadence; every other frame only redraws.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	overlay *ui.Overlay
	palette render.Palette
	gate    *core.FixedStep
	log     *logrus.Entry

	pitch    int
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, cfg *Config, palette render.Palette, log *logrus.Logger) *Game {
	size := sim.Size()
	pitch := pitchOf(sim)
	g := &Game{
		sim:     sim,
		painter: render.NewGridPainter(size.W, size.H),
		overlay: ui.NewOverlay(sim, pitch),
		palette: palette,
		gate:    core.NewFixedStep(cfg.GPS),
		log:     log.WithField("sim", sim.Name()),
		pitch:   pitch,
		seed:    cfg.Seed,
	}
	g.log.WithFields(logrus.Fields{
		"columns":    size.W,
		"rows":       size.H,
		"pitch":      pitch,
		"background": render.Hex(palette.Background),
		"cells":      render.Hex(palette.Cell),
	}).Info("backdrop ready")
	return g
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
	g.log.WithField("seed", seed).Debug("board reset")
}

// Update handles per-frame logic and advances the simulation when the
// generation gate opens.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.log.Info("quit requested")
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
		g.log.WithField("paused", g.paused).Debug("toggled pause")
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}

	g.overlay.Update()

	if g.tickOnce || (!g.paused && g.gate.ShouldStep()) {
		g.sim.Step()
		g.tickOnce = false
	}
	return nil
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Cells(), g.palette, g.pitch)
	g.overlay.Draw(screen)
}

// Layout returns the logical screen size: the grid at cell pitch.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W * g.pitch, s.H * g.pitch
}
