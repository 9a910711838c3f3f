package render

import (
	"fmt"

	"github.com/vovakirdan/gridsnake/internal/core"
	"github.com/vovakirdan/gridsnake/internal/lifecycle"
)

// Options control the geometry of a rendered frame.
type Options struct {
	CellSize      float64 // Pixels per cell side
	RewardPadding float64 // Reward inset as a fraction of CellSize
	RewardHalo    float64 // Halo width as a fraction of the reward size
	ScoreDigits   int     // Zero-padded width of the score text
}

// DefaultOptions returns the stock frame geometry.
func DefaultOptions() Options {
	return Options{
		CellSize:      75,
		RewardPadding: 0.35,
		RewardHalo:    0.15,
		ScoreDigits:   4,
	}
}

// Renderer draws snapshots. It holds no per-frame state, so the same
// snapshot always produces the same operations.
type Renderer struct {
	opts Options
}

// New creates a renderer with the given options.
func New(opts Options) *Renderer {
	return &Renderer{opts: opts}
}

// Options returns the renderer's options.
func (r *Renderer) Options() Options {
	return r.opts
}

// Extent returns the pixel width (and height) of an n×n grid.
func (r *Renderer) Extent(n int) float64 {
	return float64(n) * r.opts.CellSize
}

// Render draws snap onto c and writes the status and score to p.
// Order: clear, grid, reward, snake, panel text.
func (r *Renderer) Render(c Canvas, p Panel, snap core.Snapshot) {
	c.Clear()
	r.drawGrid(c, snap.Size)
	if snap.HasReward {
		r.drawReward(c, snap.Size, snap.Reward)
	}
	r.drawSnake(c, snap.Size, snap.Body)

	p.SetStatus(StatusText(snap.Status))
	p.SetScore(r.ScoreText(snap.Score))
}

// drawGrid strokes n+1 vertical and n+1 horizontal lines.
func (r *Renderer) drawGrid(c Canvas, n int) {
	extent := r.Extent(n)

	for i := 0; i <= n; i++ {
		x := r.opts.CellSize * float64(i)
		c.StrokeLine(x, 0, x, extent)
	}
	for i := 0; i <= n; i++ {
		y := r.opts.CellSize * float64(i)
		c.StrokeLine(0, y, extent, y)
	}
}

// drawReward draws the two-layer marker centered in the reward cell.
func (r *Renderer) drawReward(c Canvas, n, cell int) {
	padding := r.opts.CellSize * r.opts.RewardPadding
	inner := core.CellRect(cell, n, r.opts.CellSize).Inset(padding)
	outer := inner.Expand(inner.W * r.opts.RewardHalo)

	c.FillRect(outer, core.PaintRewardHalo)
	c.FillRect(inner, core.PaintReward)
}

// drawSnake fills every body cell; the first cell gets the head paint.
func (r *Renderer) drawSnake(c Canvas, n int, body []int) {
	for i, cell := range body {
		paint := core.PaintBody
		if i == 0 {
			paint = core.PaintHead
		}
		c.FillRect(core.CellRect(cell, n, r.opts.CellSize), paint)
	}
}

// StatusText returns the phase label for a status.
func StatusText(s core.Status) string {
	return lifecycle.FromStatus(s).Label()
}

// ScoreText formats a score as a zero-padded decimal.
func (r *Renderer) ScoreText(score int) string {
	return fmt.Sprintf("%0*d", r.opts.ScoreDigits, score)
}
