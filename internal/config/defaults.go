package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/gridsnake.yaml
var defaultYAML []byte

// Default returns the built-in configuration. It matches the embedded
// defaults/gridsnake.yaml and is used if that fails to parse.
func Default() Config {
	return Config{
		Grid: GridConfig{
			Size:     10,
			CellSize: 75,
		},
		Snake: SnakeConfig{
			InitialLength: 3,
		},
		Loop: LoopConfig{
			Interval: 250 * time.Millisecond,
		},
		Render: RenderConfig{
			RewardPadding: 0.35,
			RewardHalo:    0.15,
			ScoreDigits:   4,
		},
		Colors: ColorConfig{
			Background: "#1e1e2e",
			Grid:       "#45475a",
			Body:       "#a6e3a1",
			Head:       "#40a02b",
			Reward:     "#f38ba8",
			RewardHalo: "#fab387",
		},
		source: "builtin",
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
