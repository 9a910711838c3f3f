// Package config provides YAML-based configuration loading and speed
// presets for gridsnake.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/gridsnake/internal/core"
	"github.com/vovakirdan/gridsnake/internal/loop"
	"github.com/vovakirdan/gridsnake/internal/render"
)

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("invalid config")

// Config contains all gridsnake settings.
type Config struct {
	Grid   GridConfig   `yaml:"grid"`
	Snake  SnakeConfig  `yaml:"snake"`
	Loop   LoopConfig   `yaml:"loop"`
	Render RenderConfig `yaml:"render"`
	Colors ColorConfig  `yaml:"colors"`

	source string
}

// GridConfig defines the board.
type GridConfig struct {
	Size     int     `yaml:"size"`      // Cells per side
	CellSize float64 `yaml:"cell_size"` // Pixels per cell in exported frames
}

// SnakeConfig defines the initial snake.
type SnakeConfig struct {
	InitialHead   *int `yaml:"initial_head,omitempty"` // Derived from the seed if unset
	InitialLength int  `yaml:"initial_length"`
}

// LoopConfig defines the tick loop.
type LoopConfig struct {
	Interval time.Duration `yaml:"interval"`
}

// RenderConfig defines frame geometry other than the cell size.
type RenderConfig struct {
	RewardPadding float64 `yaml:"reward_padding"` // Fraction of a cell
	RewardHalo    float64 `yaml:"reward_halo"`    // Fraction of the reward size
	ScoreDigits   int     `yaml:"score_digits"`
}

// ColorConfig holds hex colors for each paint.
type ColorConfig struct {
	Background string `yaml:"background"`
	Grid       string `yaml:"grid"`
	Body       string `yaml:"body"`
	Head       string `yaml:"head"`
	Reward     string `yaml:"reward"`
	RewardHalo string `yaml:"reward_halo"`
}

// Source returns where the config was loaded from: a file path, "embedded"
// or "builtin".
func (c Config) Source() string {
	return c.source
}

// Validate checks every field and reports all problems at once.
func (c Config) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
	}

	n := c.Grid.Size
	if n < 1 {
		bad("grid.size must be at least 1, got %d", n)
	}
	if c.Grid.CellSize < 1 {
		bad("grid.cell_size must be at least 1, got %g", c.Grid.CellSize)
	}
	if c.Snake.InitialLength < 1 || (n >= 1 && c.Snake.InitialLength > n) {
		bad("snake.initial_length must be in [1, %d], got %d", max(n, 1), c.Snake.InitialLength)
	}
	if h := c.Snake.InitialHead; h != nil && n >= 1 && !core.InGrid(*h, n) {
		bad("snake.initial_head must be in [0, %d), got %d", n*n, *h)
	}
	if c.Loop.Interval <= 0 {
		bad("loop.interval must be positive, got %s", c.Loop.Interval)
	}
	if c.Render.RewardPadding < 0 || c.Render.RewardPadding >= 0.5 {
		bad("render.reward_padding must be in [0, 0.5), got %g", c.Render.RewardPadding)
	}
	if c.Render.RewardHalo < 0 {
		bad("render.reward_halo must not be negative, got %g", c.Render.RewardHalo)
	}
	if c.Render.ScoreDigits < 1 {
		bad("render.score_digits must be at least 1, got %d", c.Render.ScoreDigits)
	}
	if _, err := render.ParsePalette(c.PaletteHex()); err != nil {
		errs = append(errs, fmt.Errorf("%w: %w", ErrInvalid, err))
	}

	return errors.Join(errs...)
}

// PaletteHex returns the configured colors keyed by paint.
func (c Config) PaletteHex() map[core.Paint]string {
	return map[core.Paint]string{
		core.PaintBackground: c.Colors.Background,
		core.PaintGrid:       c.Colors.Grid,
		core.PaintBody:       c.Colors.Body,
		core.PaintHead:       c.Colors.Head,
		core.PaintReward:     c.Colors.Reward,
		core.PaintRewardHalo: c.Colors.RewardHalo,
	}
}

// Palette parses the configured colors.
func (c Config) Palette() (render.Palette, error) {
	return render.ParsePalette(c.PaletteHex())
}

// RenderOptions returns the frame geometry for exported frames.
func (c Config) RenderOptions() render.Options {
	return render.Options{
		CellSize:      c.Grid.CellSize,
		RewardPadding: c.Render.RewardPadding,
		RewardHalo:    c.Render.RewardHalo,
		ScoreDigits:   c.Render.ScoreDigits,
	}
}

// EngineParams returns engine construction parameters. When no initial head
// is configured it is derived from seed, so the same seed always starts in
// the same place.
func (c Config) EngineParams(seed int64) loop.EngineParams {
	n := c.Grid.Size
	head := 0
	if c.Snake.InitialHead != nil {
		head = *c.Snake.InitialHead
	} else if n > 0 {
		head = int(uint64(seed) % uint64(n*n))
	}
	return loop.EngineParams{
		Size:          n,
		InitialHead:   head,
		InitialLength: c.Snake.InitialLength,
		Seed:          seed,
	}
}
