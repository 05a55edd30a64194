package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/memory-match/internal/config"
	"github.com/vovakirdan/memory-match/internal/core"
	"github.com/vovakirdan/memory-match/internal/platform/tui"
	"github.com/vovakirdan/memory-match/internal/storage"
)

var (
	flagConfig   string
	flagPlayGrid int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play memory match",
	Long: `Start the game in the current terminal.

Controls:
  WASD/Arrows  - Move cursor
  Enter/Space  - Flip card
  Mouse        - Hover and click cards
  R            - Restart
  B/Esc        - Back
  Q/Ctrl+C     - Quit

Examples:
  memory play
  memory play --grid 6
  memory play --seed 42
  memory play --config ./my-memory.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().IntVar(&flagPlayGrid, "grid", 0, "Skip menus and start a 4x4 or 6x6 board")
}

func runPlay(_ *cobra.Command, _ []string) {
	if flagPlayGrid != 0 && flagPlayGrid != 4 && flagPlayGrid != 6 {
		fmt.Fprintf(os.Stderr, "Error: unsupported grid size %d (use 4 or 6)\n", flagPlayGrid)
		os.Exit(1)
	}

	// Terminal size, with safe defaults when not a TTY
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	gameCfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	cfg := core.DefaultConfig()
	cfg.ScreenW = width
	cfg.ScreenH = height
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open results database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(store, cfg, gameCfg, flagPlayGrid)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
