// Package input maps raw key identifiers to movement directions.
package input

import "github.com/vovakirdan/gridsnake/internal/core"

// Fallback is the direction returned for keys with no binding.
const Fallback = core.DirRight

// Translate maps a key identifier to a direction.
//
// Browser-style names ("ArrowRight") and Bubble Tea names ("right") are both
// accepted, along with WASD. Any other key maps to Fallback.
func Translate(key string) core.Direction {
	switch key {
	case "ArrowRight", "right", "d":
		return core.DirRight
	case "ArrowLeft", "left", "a":
		return core.DirLeft
	case "ArrowUp", "up", "w":
		return core.DirUp
	case "ArrowDown", "down", "s":
		return core.DirDown
	default:
		return Fallback
	}
}

// IsMovementKey reports whether key has an explicit direction binding.
// Translate still answers for every other key.
func IsMovementKey(key string) bool {
	switch key {
	case "ArrowRight", "right", "d",
		"ArrowLeft", "left", "a",
		"ArrowUp", "up", "w",
		"ArrowDown", "down", "s":
		return true
	}
	return false
}
