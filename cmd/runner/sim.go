package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/games/dino"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

var (
	flagSimTicks     int
	flagSimJumpEvery int
	flagSimAutopilot bool
	flagSimRuns      int
	flagSimRecord    bool
)

// simJumpHold is how long a scripted jump keeps the key down.
const simJumpHold = 10

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless simulation",
	Long: `Run the game without a terminal UI and print a summary.

The same seed and input script always produce the same result, which makes
this useful for tuning configs and reproducing bugs.

Input scripts:
  (none)          - Never press anything
  --jump-every N  - Tap jump every N ticks
  --autopilot     - Jump over cacti and duck under low birds

Examples:
  runner sim --seed 42
  runner sim --ticks 5000 --seed 42 --autopilot
  runner sim --runs 10 --autopilot --difficulty hard --record`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimTicks, "ticks", 3600, "Maximum number of ticks to simulate")
	simCmd.Flags().IntVar(&flagSimJumpEvery, "jump-every", 0, "Tap jump every N ticks (0 = never)")
	simCmd.Flags().BoolVar(&flagSimAutopilot, "autopilot", false, "Let the autopilot play")
	simCmd.Flags().IntVar(&flagSimRuns, "runs", 1, "Number of runs; restarts after each game over")
	simCmd.Flags().BoolVar(&flagSimRecord, "record", false, "Save finished runs to the scores database")
}

type simResult struct {
	Score  int
	Frames int
}

func runSim(_ *cobra.Command, _ []string) error {
	gameCfg, preset, err := loadGameConfig()
	if err != nil {
		return err
	}
	if flagSimTicks <= 0 {
		return fmt.Errorf("--ticks must be positive, got %d", flagSimTicks)
	}
	if flagSimRuns <= 0 {
		return fmt.Errorf("--runs must be positive, got %d", flagSimRuns)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if preset == "" {
		preset = config.DifficultyNormal
	}

	logger := newLogger(os.Stderr, "sim")

	var store *storage.Store
	if flagSimRecord {
		store, err = storage.Open(flagDBPath)
		if err != nil {
			return fmt.Errorf("opening scores database: %w", err)
		}
		defer store.Close()
	}

	observer := func(e dino.Event, f dino.FrameState) {
		switch e {
		case dino.EventGameOver:
			logger.Info("game over", "score", f.Score, "frame", f.Frame, "speed", f.Speed)
		case dino.EventNewHighScore:
			logger.Info("new high score", "score", f.Score)
		case dino.EventRestarted:
			logger.Debug("restarted", "high", f.HighScore)
		}
	}

	game, err := dino.New(gameCfg, seed, simHighScores(store, logger), dino.WithObserver(observer))
	if err != nil {
		return err
	}

	progression := "on"
	if config.IsFixedPreset(preset) {
		progression = "off"
	}
	logger.Debug("simulating", "seed", seed, "difficulty", preset, "progression", progression, "ticks", flagSimTicks)

	var (
		autopilot = dino.NewAutopilot()
		results   []simResult
		runTick   int
		last      dino.FrameState
	)

	for tick := 0; tick < flagSimTicks; tick++ {
		switch {
		case flagSimAutopilot:
			for _, in := range autopilot.Decide(game.Frame()) {
				game.Push(in)
			}
		case flagSimJumpEvery > 0:
			if runTick%flagSimJumpEvery == 0 {
				game.Push(core.IntentJumpPressed)
			}
			if runTick%flagSimJumpEvery == simJumpHold {
				game.Push(core.IntentJumpReleased)
			}
		}

		last = game.Tick()
		runTick++

		if last.Has(dino.EventRestarted) {
			runTick = 0
		}
		if !last.Has(dino.EventGameOver) {
			continue
		}

		results = append(results, simResult{Score: last.Score, Frames: last.Frame})
		if store != nil {
			if _, err := store.RecordRun(storage.RunRecord{
				GameID:     dino.GameID,
				Score:      last.Score,
				Frames:     last.Frame,
				Seed:       seed,
				Difficulty: string(preset),
			}); err != nil {
				logger.Warn("could not record run", "err", err)
			}
		}
		if len(results) >= flagSimRuns {
			break
		}
		if !flagSimAutopilot {
			game.Push(core.IntentRestart)
		}
	}

	printSimSummary(game.Title(), seed, preset, progression, results, last)
	return nil
}

// simHighScores keeps the best score in memory unless runs are being
// recorded, in which case it reads and updates the stored high score.
func simHighScores(store *storage.Store, logger *log.Logger) dino.HighScoreStore {
	if store == nil {
		return dino.NewMemoryHighScores(0)
	}
	return storage.NewHighScores(store, dino.GameID, logger)
}

func printSimSummary(title string, seed int64, preset config.DifficultyPreset, progression string, results []simResult, last dino.FrameState) {
	fmt.Printf("Simulation - %s\n", title)
	fmt.Println()
	fmt.Printf("  Seed:        %d\n", seed)
	fmt.Printf("  Difficulty:  %s (progression %s)\n", preset, progression)
	fmt.Println()

	if len(results) == 0 {
		fmt.Printf("Still running after %d ticks: score %d, speed %.2f\n", last.Frame, last.Score, last.Speed)
		return
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Run", "Score", "Ticks")
	fmt.Printf("  %-4s  %-10s  %s\n", "---", "-----", "-----")

	best, total := 0, 0
	for i, r := range results {
		fmt.Printf("  %-4d  %-10d  %d\n", i+1, r.Score, r.Frames)
		total += r.Score
		best = max(best, r.Score)
	}

	fmt.Println()
	fmt.Printf("Best: %d  Avg: %.1f\n", best, float64(total)/float64(len(results)))
	if !last.GameOver() {
		fmt.Printf("Unfinished run: score %d after %d ticks\n", last.Score, last.Frame)
	}
}
