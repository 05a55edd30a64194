package config

import (
	_ "embed"
)

//go:embed defaults/memory.yaml
var defaultMemoryYAML []byte

// Default returns the default memory match configuration.
func Default() GameConfig {
	return GameConfig{
		Timing: TimingConfig{
			FlipMS:     200,
			MismatchMS: 1000,
			WinMS:      1000,
		},
		Layout: LayoutConfig{
			Spacing:      16,
			Margin:       40,
			HeaderHeight: 100,
			MinCardSize:  40,
			MaxCardSize:  120,
		},
		TickRate: 60,
	}
}
