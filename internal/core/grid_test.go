package core

import "testing"

func TestTorusWrapFlooredModulo(t *testing.T) {
	tor := NewTorus(5, 3)
	cases := []struct {
		x, y   int
		wx, wy int
	}{
		{0, 0, 0, 0},
		{4, 2, 4, 2},
		{5, 3, 0, 0},
		{-1, -1, 4, 2},
		{-5, -3, 0, 0},
		{-6, -4, 4, 2},
		{11, 7, 1, 1},
		{-11, -7, 4, 2},
	}
	for _, tc := range cases {
		gx, gy := tor.Wrap(tc.x, tc.y)
		if gx != tc.wx || gy != tc.wy {
			t.Errorf("Wrap(%d,%d) = (%d,%d), expected (%d,%d)", tc.x, tc.y, gx, gy, tc.wx, tc.wy)
		}
	}
}

func TestTorusIndexRowMajor(t *testing.T) {
	tor := NewTorus(4, 3)
	if got := tor.Index(1, 2); got != 9 {
		t.Fatalf("Index(1,2) = %d, expected 9", got)
	}
	if got := tor.Index(-1, 0); got != 3 {
		t.Fatalf("Index(-1,0) = %d, expected 3", got)
	}
	if got := tor.Index(0, -1); got != 8 {
		t.Fatalf("Index(0,-1) = %d, expected 8", got)
	}
	for y := -6; y < 6; y++ {
		for x := -8; x < 8; x++ {
			idx := tor.Index(x, y)
			if idx < 0 || idx >= tor.Len() {
				t.Fatalf("Index(%d,%d) = %d out of range", x, y, idx)
			}
		}
	}
}

func TestNewTorusClampsDegenerateSizes(t *testing.T) {
	tor := NewTorus(0, -3)
	if tor.W != 1 || tor.H != 1 {
		t.Fatalf("expected 1x1 torus, got %dx%d", tor.W, tor.H)
	}
	if got := tor.Index(17, -9); got != 0 {
		t.Fatalf("every coordinate should resolve to 0 on a 1x1 torus, got %d", got)
	}
}
