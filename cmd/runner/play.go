package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/games/dino"
	"github.com/vovakirdan/tui-runner/internal/platform/tui"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a run in the terminal.

Controls:
  Space/Up   - Jump (hold for a higher jump)
  Down       - Duck
  R          - Restart (Space also works after game over)
  ?          - Toggle help
  Ctrl+S     - Save a text screenshot to ~/.runner/screenshots
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Slower start, sparser cacti, birds arrive later
  normal - Shipped defaults
  hard   - Faster start, denser cacti, birds arrive early
  fixed  - No progression, speed and spawn rates never change

Examples:
  runner play
  runner play --difficulty easy
  runner play --config ./my-dino.yaml --seed 42`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	gameCfg, preset, err := loadGameConfig()
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.DefaultConfig()
	cfg.ScreenW = width
	cfg.ScreenH = height
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	var logOut io.Writer = io.Discard
	if f, logErr := openLogFile(); logErr == nil {
		defer f.Close()
		logOut = f
	}
	logger := newLogger(logOut, "runner")

	// Scores are optional; the game still works without them.
	var (
		highScores dino.HighScoreStore
		opts       = []tui.ModelOption{tui.WithLogger(logger), tui.WithDifficulty(string(preset))}
	)
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	} else {
		defer store.Close()
		hs := storage.NewHighScores(store, dino.GameID, logger)
		highScores = hs
		opts = append(opts, tui.WithHighScores(hs))
	}

	game, err := dino.New(gameCfg, cfg.Seed, highScores)
	if err != nil {
		return err
	}

	logger.Debug("starting run", "seed", cfg.Seed, "difficulty", preset, "fps", cfg.TickRate)

	if err := tui.Run(game, store, cfg, opts...); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
