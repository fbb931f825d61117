package core

// Torus resolves arbitrary integer coordinates onto a W×H row-major grid
// whose opposite edges are adjacent.
type Torus struct {
	W, H int
}

// NewTorus returns a Torus with the given dimensions, clamped to at least 1×1.
func NewTorus(w, h int) Torus {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return Torus{W: w, H: h}
}

// Len returns the number of cells covered by the torus.
func (t Torus) Len() int { return t.W * t.H }

// Wrap maps (x, y) into [0, W)×[0, H) using floored modulo, so negative
// and far out-of-range inputs land on the same cell as their in-range twin.
func (t Torus) Wrap(x, y int) (int, int) {
	x %= t.W
	if x < 0 {
		x += t.W
	}
	y %= t.H
	if y < 0 {
		y += t.H
	}
	return x, y
}

// Index returns the linear slice index for the wrapped coordinates (x, y).
func (t Torus) Index(x, y int) int {
	x, y = t.Wrap(x, y)
	return y*t.W + x
}
