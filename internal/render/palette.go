package render

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/gabrielssanches/i3lock-game-of-life/internal/core"
)

// Palette holds the two colours used to paint the board.
type Palette struct {
	Background color.RGBA
	Cell       color.RGBA
}

// RandomPalette picks a random 24-bit background colour and paints live
// cells in its bitwise complement.
func RandomPalette(rng *core.RNG) Palette {
	return ComplementPalette(uint32(rng.IntN(0x1000000)))
}

// ComplementPalette returns a palette with background rgb (0xRRGGBB) and
// cells in 0xFFFFFF^rgb.
func ComplementPalette(rgb uint32) Palette {
	rgb &= 0xFFFFFF
	return Palette{Background: fromRGB(rgb), Cell: fromRGB(0xFFFFFF ^ rgb)}
}

// ParseHex parses a colour written as "rrggbb" or "#rrggbb".
func ParseHex(s string) (color.RGBA, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return color.RGBA{}, fmt.Errorf("colour %q: expected 6 hex digits", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("colour %q: %w", s, err)
	}
	return fromRGB(uint32(v)), nil
}

// Hex formats c as "#rrggbb", ignoring alpha.
func Hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// AgeRamp returns n colours fading from transparent to hot. Index 0 is
// fully transparent so dead cells leave the board untouched.
func AgeRamp(n int, hot color.RGBA) []color.RGBA {
	if n < 2 {
		n = 2
	}
	ramp := make([]color.RGBA, n)
	last := n - 1
	for i := 1; i < n; i++ {
		// Premultiplied alpha, as ebiten expects.
		a := uint32(255 * i / last)
		ramp[i] = color.RGBA{
			R: uint8(uint32(hot.R) * a / 255),
			G: uint8(uint32(hot.G) * a / 255),
			B: uint8(uint32(hot.B) * a / 255),
			A: uint8(a),
		}
	}
	return ramp
}

func fromRGB(rgb uint32) color.RGBA {
	return color.RGBA{R: uint8(rgb >> 16), G: uint8(rgb >> 8), B: uint8(rgb), A: 0xFF}
}
