package app

import "github.com/gabrielssanches/i3lock-game-of-life/internal/core"

type dimensioner interface {
	Dimensions() (columns, rows, pitch int)
}

// pitchOf returns the display units per cell of sim, 1 when it has no pitch.
func pitchOf(sim core.Sim) int {
	if d, ok := sim.(dimensioner); ok {
		if _, _, pitch := d.Dimensions(); pitch > 0 {
			return pitch
		}
	}
	return 1
}

// DisplaySize returns the area covered by sim in display units.
func DisplaySize(sim core.Sim) (int, int) {
	s := sim.Size()
	p := pitchOf(sim)
	return s.W * p, s.H * p
}
