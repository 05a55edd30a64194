package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/memory-match/internal/storage"
)

var flagGrid int

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show best games",
	Long: `Display the top 10 games for a board size, ranked by fewest moves.

Examples:
  memory scores
  memory scores --grid 6`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagGrid, "grid", 4, "Board size (4 or 6)")
}

func runScores(_ *cobra.Command, _ []string) {
	if flagGrid != 4 && flagGrid != 6 {
		fmt.Fprintf(os.Stderr, "Error: unsupported grid size %d (use 4 or 6)\n", flagGrid)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening results database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	results, err := store.TopResults(flagGrid, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving results: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Best Games - %d × %d\n", flagGrid, flagGrid)
	fmt.Println()

	if len(results) == 0 {
		fmt.Println("No games recorded yet.")
		fmt.Println()
		fmt.Println("Play 'memory play' to record the first one!")
		return
	}

	fmt.Printf("  %-4s  %-8s  %-8s  %s\n", "Rank", "Moves", "Time", "Date")
	fmt.Printf("  %-4s  %-8s  %-8s  %s\n", "----", "-----", "----", "----")

	for i, entry := range results {
		timeStr := fmt.Sprintf("%02d:%02d", entry.DurationSecs/60, entry.DurationSecs%60)
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-8d  %-8s  %s\n", i+1, entry.Moves, timeStr, dateStr)
	}

	fmt.Println()
	if best, err := store.BestMoves(flagGrid); err == nil {
		fmt.Printf("Best: %d moves\n", best)
	}
}
