package render

import (
	"image"
	"io"

	"github.com/fogleman/gg"

	"github.com/vovakirdan/gridsnake/internal/core"
)

// Raster is a Canvas backed by an in-memory RGBA image.
type Raster struct {
	dc      *gg.Context
	palette Palette
}

// NewRaster creates a raster canvas of the given pixel size.
func NewRaster(width, height int, palette Palette) *Raster {
	dc := gg.NewContext(width, height)
	dc.SetLineWidth(1)
	return &Raster{dc: dc, palette: palette}
}

// NewRasterFor creates a raster canvas sized to hold an n×n grid drawn by r,
// including the closing grid line on the right and bottom edges.
func NewRasterFor(r *Renderer, n int, palette Palette) *Raster {
	side := int(r.Extent(n)) + 1
	return NewRaster(side, side, palette)
}

// Width returns the image width in pixels.
func (r *Raster) Width() int {
	return r.dc.Width()
}

// Height returns the image height in pixels.
func (r *Raster) Height() int {
	return r.dc.Height()
}

// Clear fills the whole image with the background paint.
func (r *Raster) Clear() {
	r.dc.SetColor(r.palette.Color(core.PaintBackground))
	r.dc.Clear()
}

// StrokeLine draws a one pixel grid line. Coordinates are shifted onto pixel
// centers so integer positions produce crisp lines.
func (r *Raster) StrokeLine(x0, y0, x1, y1 float64) {
	r.dc.SetColor(r.palette.Color(core.PaintGrid))
	r.dc.DrawLine(x0+0.5, y0+0.5, x1+0.5, y1+0.5)
	r.dc.Stroke()
}

// FillRect fills a rectangle with the color of paint p.
func (r *Raster) FillRect(rect core.Rect, p core.Paint) {
	r.dc.SetColor(r.palette.Color(p))
	r.dc.DrawRectangle(rect.X, rect.Y, rect.W, rect.H)
	r.dc.Fill()
}

// Image returns the backing image. It is overwritten by later draws.
func (r *Raster) Image() image.Image {
	return r.dc.Image()
}

// EncodePNG writes the current image as PNG.
func (r *Raster) EncodePNG(w io.Writer) error {
	return r.dc.EncodePNG(w)
}

// SavePNG writes the current image to a PNG file.
func (r *Raster) SavePNG(path string) error {
	return r.dc.SavePNG(path)
}

// Rasterize draws snap onto a fresh raster sized for r. Panel text is
// discarded.
func Rasterize(r *Renderer, palette Palette, snap core.Snapshot) *Raster {
	raster := NewRasterFor(r, snap.Size, palette)
	r.Render(raster, discardPanel{}, snap)
	return raster
}

type discardPanel struct{}

func (discardPanel) SetStatus(string) {}
func (discardPanel) SetScore(string)  {}
func (discardPanel) SetButton(string) {}
