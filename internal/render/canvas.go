// Package render turns simulation snapshots into drawing operations on a 2D
// surface and text on a status panel.
package render

import "github.com/vovakirdan/gridsnake/internal/core"

// Canvas is a 2D raster surface with stroke and fill primitives.
type Canvas interface {
	// Clear wipes the whole surface.
	Clear()

	// StrokeLine draws a grid-colored line from (x0, y0) to (x1, y1).
	StrokeLine(x0, y0, x1, y1 float64)

	// FillRect fills r with the color assigned to paint p.
	FillRect(r core.Rect, p core.Paint)
}

// Panel holds the text elements shown next to the canvas.
type Panel interface {
	SetStatus(text string)
	SetScore(text string)
	SetButton(text string)
}
