package colorutil

import (
	"fmt"
	"strconv"

	"github.com/Badsnus/qrstudio/internal/domain/common/errorz"
)

// Color is an opaque RGB color. It satisfies color.Color, so it can be handed
// straight to drawing code.
type Color struct {
	R, G, B uint8
}

var (
	Black = Color{0, 0, 0}
	White = Color{255, 255, 255}
)

// NewColor builds a Color from integer channels, rejecting anything outside 0-255.
func NewColor(r, g, b int) (Color, error) {
	for _, ch := range []int{r, g, b} {
		if ch < 0 || ch > 255 {
			return Color{}, fmt.Errorf("%w: color channel %d is outside 0-255", errorz.InvalidParameter, ch)
		}
	}
	return Color{R: uint8(r), G: uint8(g), B: uint8(b)}, nil
}

// ParseHex parses a "#RRGGBB" string. Case is ignored.
func ParseHex(s string) (Color, error) {
	if len(s) != 7 || s[0] != '#' {
		return Color{}, fmt.Errorf("%w: color %q is not in #RRGGBB form", errorz.InvalidParameter, s)
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("%w: color %q is not in #RRGGBB form", errorz.InvalidParameter, s)
	}
	return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// MustParseHex is ParseHex for package-level values.
func MustParseHex(s string) Color {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func (c Color) String() string {
	return c.Hex()
}

// RGBA implements color.Color. The alpha is always fully opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xffff
}
