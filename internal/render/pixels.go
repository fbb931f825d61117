package render

import "image/color"

// Fill converts cell values into RGBA pixels in buf. Each cell value indexes
// palette; values past the end use the last entry. An empty palette clears
// the pixels to transparent black.
func Fill(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		clear(buf[:4*len(cells)])
		return
	}
	last := len(palette) - 1
	for i, c := range cells {
		col := palette[min(int(c), last)]
		px := buf[i*4 : i*4+4 : i*4+4]
		px[0], px[1], px[2], px[3] = col.R, col.G, col.B, col.A
	}
}

// Entries returns the palette as a value-indexed table for a 0/1 board.
func (p Palette) Entries() []color.RGBA {
	return []color.RGBA{p.Background, p.Cell}
}
