package tui

import (
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/vovakirdan/gridsnake/internal/core"
)

func TestBlitSize(t *testing.T) {
	tests := []struct {
		w, h       int
		cols, rows int
	}{
		{31, 31, 31, 16},
		{10, 10, 10, 5},
		{1, 1, 1, 1},
		{0, 0, 0, 0},
	}
	for _, tc := range tests {
		cols, rows := BlitSize(tc.w, tc.h)
		if cols != tc.cols || rows != tc.rows {
			t.Errorf("BlitSize(%d, %d) = (%d, %d), expected (%d, %d)", tc.w, tc.h, cols, rows, tc.cols, tc.rows)
		}
	}
}

func TestBlit(t *testing.T) {
	red := color.RGBA{R: 255, A: 255}
	blue := color.RGBA{B: 255, A: 255}
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}

	img := image.NewRGBA(image.Rect(0, 0, 2, 3))
	img.Set(0, 0, red)
	img.Set(1, 0, blue)
	img.Set(0, 1, blue)
	img.Set(1, 1, red)
	img.Set(0, 2, white)
	img.Set(1, 2, white)

	s := core.NewScreen(4, 3)
	Blit(s, img, 1, 1)

	tests := []struct {
		x, y   int
		fg, bg string
	}{
		{1, 1, "#ff0000", "#0000ff"},
		{2, 1, "#0000ff", "#ff0000"},
		{1, 2, "#ffffff", ""}, // Odd last row
		{2, 2, "#ffffff", ""},
	}
	for _, tc := range tests {
		c := s.GetCell(tc.x, tc.y)
		if c.Rune != halfBlock || c.FG != tc.fg || c.BG != tc.bg {
			t.Errorf("cell (%d, %d) = %+v, expected fg %s bg %q", tc.x, tc.y, c, tc.fg, tc.bg)
		}
	}

	// Outside the blit area nothing changes
	if s.Get(0, 1) != ' ' || s.Get(3, 1) != ' ' || s.Get(1, 0) != ' ' {
		t.Error("Blit wrote outside the image area")
	}
}

func TestRenderScreenPlain(t *testing.T) {
	s := core.NewScreen(3, 2)
	s.DrawText(0, 0, "abc", "")

	if got := RenderScreen(s); got != "abc\n   " {
		t.Errorf("RenderScreen() = %q, expected %q", got, "abc\n   ")
	}
}

func TestRenderScreenColoredRuns(t *testing.T) {
	s := core.NewScreen(4, 1)
	s.Set(0, 0, core.ScreenCell{Rune: 'x', FG: "#ff0000", BG: "#000000"})
	s.Set(1, 0, core.ScreenCell{Rune: 'y', FG: "#ff0000", BG: "#000000"})
	s.Set(2, 0, core.ScreenCell{Rune: 'z', FG: "#00ff00"})

	out := RenderScreen(s)
	for _, part := range []string{"xy", "z"} {
		if !strings.Contains(out, part) {
			t.Errorf("output %q should contain %q", out, part)
		}
	}
	if strings.Count(out, "\n") != 0 {
		t.Errorf("single row should have no newlines, got %q", out)
	}
}
