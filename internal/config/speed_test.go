package config

import (
	"errors"
	"testing"
	"time"
)

func TestIntervalForPreset(t *testing.T) {
	tests := []struct {
		preset   SpeedPreset
		expected time.Duration
		ok       bool
	}{
		{SpeedSlow, 400 * time.Millisecond, true},
		{SpeedNormal, 250 * time.Millisecond, true},
		{SpeedFast, 120 * time.Millisecond, true},
		{"ludicrous", 0, false},
	}

	for _, tc := range tests {
		d, ok := IntervalForPreset(tc.preset)
		if d != tc.expected || ok != tc.ok {
			t.Errorf("IntervalForPreset(%q) = (%v, %v), expected (%v, %v)", tc.preset, d, ok, tc.expected, tc.ok)
		}
	}
}

func TestPresetsGetFaster(t *testing.T) {
	prev := time.Duration(1<<63 - 1)
	for _, p := range Presets {
		d, _ := IntervalForPreset(p)
		if d >= prev {
			t.Errorf("preset %s (%v) should be faster than the one before", p, d)
		}
		prev = d
	}
}

func TestApplySpeedPreset(t *testing.T) {
	cfg := Default()
	cfg.Loop.Interval = time.Second

	if err := ApplySpeedPreset(&cfg, ""); err != nil || cfg.Loop.Interval != time.Second {
		t.Errorf("empty preset should leave the interval alone, got %v (%v)", cfg.Loop.Interval, err)
	}

	if err := ApplySpeedPreset(&cfg, SpeedFast); err != nil {
		t.Fatalf("ApplySpeedPreset failed: %v", err)
	}
	if cfg.Loop.Interval != 120*time.Millisecond {
		t.Errorf("interval = %v, expected 120ms", cfg.Loop.Interval)
	}

	if err := ApplySpeedPreset(&cfg, "warp"); !errors.Is(err, ErrInvalid) {
		t.Errorf("unknown preset should wrap ErrInvalid, got %v", err)
	}
}
