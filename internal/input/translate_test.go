package input

import (
	"testing"

	"github.com/vovakirdan/gridsnake/internal/core"
)

func TestTranslate(t *testing.T) {
	tests := []struct {
		key      string
		expected core.Direction
	}{
		{"ArrowRight", core.DirRight},
		{"d", core.DirRight},
		{"right", core.DirRight},
		{"ArrowLeft", core.DirLeft},
		{"a", core.DirLeft},
		{"left", core.DirLeft},
		{"ArrowUp", core.DirUp},
		{"w", core.DirUp},
		{"up", core.DirUp},
		{"ArrowDown", core.DirDown},
		{"s", core.DirDown},
		{"down", core.DirDown},
	}

	for _, tc := range tests {
		t.Run(tc.key, func(t *testing.T) {
			if got := Translate(tc.key); got != tc.expected {
				t.Errorf("Translate(%q) = %v, expected %v", tc.key, got, tc.expected)
			}
		})
	}
}

func TestTranslateFallback(t *testing.T) {
	for _, key := range []string{"q", "", "D", "W", "enter", " ", "ctrl+c", "Arrowright", "🐍"} {
		if got := Translate(key); got != core.DirRight {
			t.Errorf("Translate(%q) = %v, expected fallback right", key, got)
		}
		if IsMovementKey(key) {
			t.Errorf("IsMovementKey(%q) = true, expected false", key)
		}
	}
}

func TestTranslateIsTotal(t *testing.T) {
	valid := map[core.Direction]bool{
		core.DirUp: true, core.DirDown: true, core.DirLeft: true, core.DirRight: true,
	}

	// Every single-rune key yields one of the four directions.
	for r := rune(0); r < 0x3000; r++ {
		if d := Translate(string(r)); !valid[d] {
			t.Fatalf("Translate(%q) = %v, not a cardinal direction", string(r), d)
		}
	}
}

func TestIsMovementKey(t *testing.T) {
	for _, key := range []string{"ArrowUp", "up", "w", "s", "a", "d", "ArrowLeft"} {
		if !IsMovementKey(key) {
			t.Errorf("IsMovementKey(%q) = false, expected true", key)
		}
	}
}
