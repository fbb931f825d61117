//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter updates a single RGBA image, one pixel per cell, and draws it
// scaled up to the cell pitch.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Blit paints a 0/1 board in the colours of p.
func (gp *GridPainter) Blit(dst *ebiten.Image, cells []uint8, p Palette, pitch int) {
	gp.BlitPalette(dst, cells, p.Entries(), pitch)
}

// BlitPalette uploads palette-indexed cell values and draws them on top of dst.
func (gp *GridPainter) BlitPalette(dst *ebiten.Image, cells []uint8, palette []color.RGBA, pitch int) {
	if len(cells) != gp.w*gp.h {
		return
	}
	Fill(gp.buf, cells, palette)
	gp.img.WritePixels(gp.buf)
	gp.draw(dst, pitch)
}

func (gp *GridPainter) draw(dst *ebiten.Image, pitch int) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(pitch), float64(pitch))
	op.Filter = ebiten.FilterNearest
	dst.DrawImage(gp.img, op)
}
