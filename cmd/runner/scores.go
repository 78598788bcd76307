package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-runner/internal/games/dino"
	"github.com/vovakirdan/tui-runner/internal/platform/tui"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

var (
	flagScoresTUI   bool
	flagScoresReset bool
	flagScoresLimit int
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best runs",
	Long: `Display the best recorded runs and lifetime stats.

Examples:
  runner scores
  runner scores --limit 25
  runner scores --tui
  runner scores --reset`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse scores in an interactive table")
	scoresCmd.Flags().BoolVar(&flagScoresReset, "reset", false, "Delete all recorded runs and the high score")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagScoresReset {
		if err := store.Reset(dino.GameID); err != nil {
			return fmt.Errorf("resetting scores: %w", err)
		}
		fmt.Println("Scores cleared.")
		return nil
	}

	if flagScoresTUI {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, dino.GameID, dino.DisplayName, width, height)
	}

	runs, err := store.TopRuns(dino.GameID, flagScoresLimit)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Printf("High Scores - %s\n", dino.DisplayName)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'runner play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %-8s  %-8s  %s\n", "Rank", "Score", "Ticks", "Preset", "Date")
	fmt.Printf("  %-4s  %-10s  %-8s  %-8s  %s\n", "----", "-----", "-----", "------", "----")

	for i, r := range runs {
		dateStr := r.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %-8d  %-8s  %s\n", i+1, r.Score, r.Frames, r.Difficulty, dateStr)
	}

	fmt.Println()
	if best, err := store.HighScore(dino.GameID); err == nil {
		fmt.Printf("Best: %d\n", best)
	}
	if stats, err := store.Stats(dino.GameID); err == nil && stats.Runs > 0 {
		fmt.Printf("Runs: %d  Avg: %.1f  Ticks played: %d\n", stats.Runs, stats.AvgScore, stats.TotalTicks)
	}
	return nil
}
