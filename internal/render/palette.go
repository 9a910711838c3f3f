package render

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/gridsnake/internal/core"
)

// Palette maps paints to concrete colors.
type Palette map[core.Paint]color.Color

// ParsePalette builds a palette from hex color strings ("#rrggbb" or "#rgb").
func ParsePalette(hex map[core.Paint]string) (Palette, error) {
	p := make(Palette, len(hex))
	for paint, h := range hex {
		c, err := colorful.Hex(h)
		if err != nil {
			return nil, fmt.Errorf("render: invalid %s color %q: %w", paint, h, err)
		}
		p[paint] = c
	}
	return p, nil
}

// Color returns the color for paint, or opaque black if none is assigned.
func (p Palette) Color(paint core.Paint) color.Color {
	if c, ok := p[paint]; ok {
		return c
	}
	return color.Black
}

// Hex returns the color for paint as a "#rrggbb" string.
func (p Palette) Hex(paint core.Paint) string {
	return HexOf(p.Color(paint))
}

// HexOf converts any color to a "#rrggbb" string.
// Fully transparent colors come back as black.
func HexOf(c color.Color) string {
	cf, ok := colorful.MakeColor(c)
	if !ok {
		return "#000000"
	}
	return cf.Hex()
}
