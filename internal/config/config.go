// Package config provides YAML-based configuration loading for the memory
// match game: animation timings, layout tunables, and the tick rate.
package config

import (
	"time"

	"github.com/vovakirdan/memory-match/internal/game"
	"github.com/vovakirdan/memory-match/internal/layout"
)

// GameConfig contains all configuration for the memory match game.
type GameConfig struct {
	Timing   TimingConfig `yaml:"timing"`
	Layout   LayoutConfig `yaml:"layout"`
	TickRate int          `yaml:"tick_rate"`
}

// TimingConfig defines the animation and resolution delays in milliseconds.
type TimingConfig struct {
	FlipMS     int `yaml:"flip_ms"`
	MismatchMS int `yaml:"mismatch_ms"`
	WinMS      int `yaml:"win_ms"`
}

// LayoutConfig defines the board geometry tunables in pixel units.
type LayoutConfig struct {
	Spacing      int `yaml:"spacing"`
	Margin       int `yaml:"margin"`
	HeaderHeight int `yaml:"header_height"`
	MinCardSize  int `yaml:"min_card_size"`
	MaxCardSize  int `yaml:"max_card_size"`
}

// GameTiming converts the millisecond values to the core timing struct.
func (c GameConfig) GameTiming() game.Timing {
	return game.Timing{
		FlipDuration:  time.Duration(c.Timing.FlipMS) * time.Millisecond,
		MismatchDelay: time.Duration(c.Timing.MismatchMS) * time.Millisecond,
		WinDelay:      time.Duration(c.Timing.WinMS) * time.Millisecond,
	}
}

// LayoutOptions converts the layout section to layout engine options.
func (c GameConfig) LayoutOptions() layout.Options {
	return layout.Options{
		Spacing:      c.Layout.Spacing,
		Margin:       c.Layout.Margin,
		HeaderHeight: c.Layout.HeaderHeight,
		MinCardSize:  c.Layout.MinCardSize,
		MaxCardSize:  c.Layout.MaxCardSize,
	}
}
