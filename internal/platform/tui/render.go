package tui

import (
	"image"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/gridsnake/internal/core"
	"github.com/vovakirdan/gridsnake/internal/render"
)

// halfBlock paints the top half of a cell in the foreground color, leaving
// the bottom half to the background color.
const halfBlock = '▀'

// Blit copies img into s at (x0, y0), two pixel rows per terminal row.
// An odd last pixel row leaves the bottom half of its cells uncolored.
func Blit(s *core.Screen, img image.Image, x0, y0 int) {
	b := img.Bounds()
	hex := make(map[color.Color]string)
	colorAt := func(x, y int) string {
		c := img.At(x, y)
		h, ok := hex[c]
		if !ok {
			h = render.HexOf(c)
			hex[c] = h
		}
		return h
	}

	for py := b.Min.Y; py < b.Max.Y; py += 2 {
		ty := y0 + (py-b.Min.Y)/2
		for px := b.Min.X; px < b.Max.X; px++ {
			cell := core.ScreenCell{Rune: halfBlock, FG: colorAt(px, py)}
			if py+1 < b.Max.Y {
				cell.BG = colorAt(px, py+1)
			}
			s.Set(x0+px-b.Min.X, ty, cell)
		}
	}
}

// BlitSize returns the terminal cells needed to show a w×h pixel image.
func BlitSize(w, h int) (cols, rows int) {
	return w, (h + 1) / 2
}

type colorPair struct{ fg, bg string }

// styleCache holds one lipgloss style per color pair.
type styleCache map[colorPair]lipgloss.Style

func (sc styleCache) style(p colorPair) lipgloss.Style {
	if st, ok := sc[p]; ok {
		return st
	}
	st := lipgloss.NewStyle()
	if p.fg != "" {
		st = st.Foreground(lipgloss.Color(p.fg))
	}
	if p.bg != "" {
		st = st.Background(lipgloss.Color(p.bg))
	}
	sc[p] = st
	return st
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	styles := make(styleCache)

	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			start := colorPair{cell.FG, cell.BG}

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if (colorPair{cell.FG, cell.BG}) != start {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if start == (colorPair{}) {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(styles.style(start).Render(run.String()))
		}
	}
	return sb.String()
}
