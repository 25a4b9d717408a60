package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-creeps/internal/games/creeps"
	"github.com/vovakirdan/tui-creeps/internal/registry"
	"github.com/vovakirdan/tui-creeps/internal/storage"
)

var (
	flagScoresLimit  int
	flagScoresRecent bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show the best runs for a mode",
	Long: `Display the best recorded runs for the specified mode (default: creeps).

Examples:
  creeps scores
  creeps scores creeps_classic --limit 25`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresRecent, "recent", false, "Show the latest runs instead of the best")
}

func runScores(cmd *cobra.Command, args []string) {
	gameID := creeps.IDSurvival
	if len(args) == 1 {
		gameID = args[0]
	}

	// Check if mode exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'creeps list' to see available modes.")
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	heading := "Best Runs"
	fetch := store.TopRuns
	if flagScoresRecent {
		heading = "Recent Runs"
		fetch = store.RecentRuns
	}

	runs, err := fetch(gameID, flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		return
	}

	fmt.Printf("%s - %s\n", heading, title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'creeps play %s' to set the first score!\n", gameID)
		return
	}

	fmt.Printf("  %-4s  %-8s  %-8s  %-12s  %-20s  %s\n", "Rank", "Score", "Time", "Killed by", "Seed", "Date")
	fmt.Printf("  %-4s  %-8s  %-8s  %-12s  %-20s  %s\n", "----", "-----", "----", "---------", "----", "----")

	for i, run := range runs {
		fmt.Printf("  %-4d  %-8d  %-8s  %-12s  %-20d  %s\n",
			i+1, run.Score, formatTicks(run.Ticks), run.KilledBy, run.Seed, run.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	fmt.Printf("Replay a run with 'creeps play %s --seed <seed>'.\n", gameID)
	if stats, err := store.GetGameStats(gameID); err == nil && stats != nil {
		fmt.Printf("Runs: %d  Best: %d  Average: %.1f\n", stats.RunsCount, stats.HighScore, stats.AvgScore)
	}
}

// formatTicks renders a tick count as m:ss at the configured tick rate.
func formatTicks(ticks int) string {
	secs := ticks / max(flagFPS, 1)
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}
