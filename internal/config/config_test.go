package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultValues(t *testing.T) {
	cfg := Default()

	if cfg.Timing.FlipMS != 200 {
		t.Errorf("FlipMS = %d, expected 200", cfg.Timing.FlipMS)
	}
	if cfg.Timing.MismatchMS != 1000 {
		t.Errorf("MismatchMS = %d, expected 1000", cfg.Timing.MismatchMS)
	}
	if cfg.Timing.WinMS != 1000 {
		t.Errorf("WinMS = %d, expected 1000", cfg.Timing.WinMS)
	}
	if cfg.TickRate != 60 {
		t.Errorf("TickRate = %d, expected 60", cfg.TickRate)
	}
}

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	// Load with no custom path falls through to the embedded YAML (the test
	// runner's cwd has no configs/ directory and the user config is unlikely
	// to exist; either way the values must match the hardcoded defaults).
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") failed: %v", err)
	}

	def := Default()
	if cfg.Timing != def.Timing {
		t.Errorf("embedded timing = %+v, expected %+v", cfg.Timing, def.Timing)
	}
}

func TestLoadCustomConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")

	yaml := `
timing:
  flip_ms: 150
  mismatch_ms: 800
  win_ms: 500
layout:
  spacing: 8
  margin: 20
  header_height: 60
  min_card_size: 30
  max_card_size: 90
tick_rate: 30
`
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%s) failed: %v", path, err)
	}

	if cfg.Timing.FlipMS != 150 {
		t.Errorf("FlipMS = %d, expected 150", cfg.Timing.FlipMS)
	}
	if cfg.Layout.Spacing != 8 {
		t.Errorf("Spacing = %d, expected 8", cfg.Layout.Spacing)
	}
	if cfg.TickRate != 30 {
		t.Errorf("TickRate = %d, expected 30", cfg.TickRate)
	}
}

func TestLoadMissingCustomConfig(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Error("Load of a missing explicit path should fail")
	}
}

func TestLoadMalformedConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(path, []byte("timing: [not a map"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load of malformed YAML should fail")
	}
}

func TestGameTimingConversion(t *testing.T) {
	cfg := GameConfig{
		Timing: TimingConfig{FlipMS: 250, MismatchMS: 1200, WinMS: 900},
	}

	timing := cfg.GameTiming()
	if timing.FlipDuration != 250*time.Millisecond {
		t.Errorf("FlipDuration = %v, expected 250ms", timing.FlipDuration)
	}
	if timing.MismatchDelay != 1200*time.Millisecond {
		t.Errorf("MismatchDelay = %v, expected 1.2s", timing.MismatchDelay)
	}
	if timing.WinDelay != 900*time.Millisecond {
		t.Errorf("WinDelay = %v, expected 900ms", timing.WinDelay)
	}
}

func TestLayoutOptionsConversion(t *testing.T) {
	cfg := Default()
	opts := cfg.LayoutOptions()

	if opts.Spacing != cfg.Layout.Spacing {
		t.Errorf("Spacing = %d, expected %d", opts.Spacing, cfg.Layout.Spacing)
	}
	if opts.MinCardSize != cfg.Layout.MinCardSize || opts.MaxCardSize != cfg.Layout.MaxCardSize {
		t.Error("card size clamps not carried over")
	}
}
