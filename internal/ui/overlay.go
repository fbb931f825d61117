//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gabrielssanches/i3lock-game-of-life/internal/core"
	"github.com/gabrielssanches/i3lock-game-of-life/internal/life"
	"github.com/gabrielssanches/i3lock-game-of-life/internal/render"
)

type ageProvider interface {
	Age(column, row int) int
}

// ageLevels is the number of heat-map shades, including the transparent one.
const ageLevels = 16

// Overlay draws optional debugging visuals on top of the base simulation:
// an age heat-map (A) and a status line (I).
type Overlay struct {
	sim        core.Sim
	pitch      int
	showAge    bool
	showStatus bool

	painter *render.GridPainter
	levels  []uint8
	ramp    []color.RGBA
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, pitch int) *Overlay {
	s := sim.Size()
	return &Overlay{
		sim:     sim,
		pitch:   pitch,
		painter: render.NewGridPainter(s.W, s.H),
		levels:  make([]uint8, s.W*s.H),
		ramp:    render.AgeRamp(ageLevels, color.RGBA{R: 0xFF, G: 0x60, B: 0x20, A: 0xFF}),
	}
}

// Update toggles the overlay layers.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyA) {
		o.showAge = !o.showAge
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyI) {
		o.showStatus = !o.showStatus
	}
}

// Draw renders the enabled layers onto screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if o.showAge {
		if ap, ok := o.sim.(ageProvider); ok {
			o.fillLevels(ap)
			o.painter.BlitPalette(screen, o.levels, o.ramp, o.pitch)
		}
	}
	if o.showStatus {
		ebitenutil.DebugPrintAt(screen, o.status(), 4, 4)
	}
}

// fillLevels buckets every cell's age into a ramp index. Cells about to
// explode get the hottest shade.
func (o *Overlay) fillLevels(ap ageProvider) {
	s := o.sim.Size()
	top := ageLevels - 1
	for y := 0; y < s.H; y++ {
		for x := 0; x < s.W; x++ {
			age := ap.Age(x, y)
			lvl := 0
			if age > 0 {
				lvl = 1 + age*(top-1)/life.ExplosionAge
			}
			o.levels[y*s.W+x] = uint8(min(lvl, top))
		}
	}
}

func (o *Overlay) status() string {
	pp, ok := o.sim.(core.ParameterProvider)
	if !ok {
		return o.sim.Name()
	}
	snap := pp.Parameters()
	gen, _ := snap.Lookup("generation")
	live, _ := snap.Lookup("live")
	return fmt.Sprintf("%s  gen %s  live %s  fps %.0f", o.sim.Name(), gen.Value, live.Value, ebiten.ActualFPS())
}
