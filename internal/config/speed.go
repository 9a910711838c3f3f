package config

import (
	"fmt"
	"time"
)

// SpeedPreset represents a named tick interval.
type SpeedPreset string

const (
	SpeedSlow   SpeedPreset = "slow"
	SpeedNormal SpeedPreset = "normal"
	SpeedFast   SpeedPreset = "fast"
)

// Presets lists the speed presets from slowest to fastest.
var Presets = []SpeedPreset{SpeedSlow, SpeedNormal, SpeedFast}

// IntervalForPreset returns the tick interval for a preset.
func IntervalForPreset(preset SpeedPreset) (time.Duration, bool) {
	switch preset {
	case SpeedSlow:
		return 400 * time.Millisecond, true
	case SpeedNormal:
		return 250 * time.Millisecond, true
	case SpeedFast:
		return 120 * time.Millisecond, true
	default:
		return 0, false
	}
}

// ApplySpeedPreset sets the loop interval from a preset.
// An empty preset leaves the config unchanged.
func ApplySpeedPreset(cfg *Config, preset SpeedPreset) error {
	if preset == "" {
		return nil
	}
	d, ok := IntervalForPreset(preset)
	if !ok {
		return fmt.Errorf("%w: unknown speed %q (use slow, normal or fast)", ErrInvalid, preset)
	}
	cfg.Loop.Interval = d
	return nil
}
