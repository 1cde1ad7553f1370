// Package tokens defines the design token vocabulary: typed colors,
// scale tables, and the immutable DesignTokens snapshot consumed by
// rendering code.
package tokens

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an opaque RGBA color value. Colors are comparable with ==,
// which the engine relies on for its consistency checks.
type Color struct {
	R uint8
	G uint8
	B uint8
	A uint8
}

// Hex parses a color from "#RRGGBB" or "#RGB" notation.
func Hex(s string) (Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return Color{R: r, G: g, B: b, A: 0xFF}, nil
}

// MustHex is Hex for static palette tables; it panics on malformed input.
func MustHex(s string) Color {
	c, err := Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Hex renders the color in "#RRGGBB" notation. The alpha channel is not
// encoded; palette colors are always opaque.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

func (c Color) String() string {
	return c.Hex()
}
