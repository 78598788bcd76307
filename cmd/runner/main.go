// runner is an endless side-scrolling runner for the terminal.
//
// Usage:
//
//	runner play              - Play in the terminal
//	runner sim               - Run a headless simulation and print a summary
//	runner scores            - Show the best runs
//	runner serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible runs
//	--db <path>     - Set database path (default: ~/.runner/scores.db)
//	--debug         - Log at debug level
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-runner/internal/config"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
	flagDebug  bool

	// Shared by play, sim and serve
	flagConfig     string
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "runner",
	Short: "Dino Dash - an endless runner in your terminal",
	Long: `Dino Dash is an endless side-scrolling runner. Jump over cacti, duck
under birds, and keep going as the world speeds up.

Available commands:
  play     - Play in the terminal
  sim      - Headless deterministic simulation
  scores   - View the best runs
  serve    - Start SSH server for remote play

Examples:
  runner play
  runner play --difficulty hard
  runner sim --ticks 5000 --seed 42 --autopilot
  runner serve --ssh :2222
  runner scores`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.runner/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log at debug level")

	for _, cmd := range []*cobra.Command{playCmd, simCmd, serveCmd} {
		cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
		cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	}

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadGameConfig resolves the config file and applies the difficulty preset.
func loadGameConfig() (config.DinoConfig, config.DifficultyPreset, error) {
	cfg, err := config.LoadDino(flagConfig)
	if err != nil {
		return config.DinoConfig{}, "", err
	}

	preset := config.ParsePreset(flagDifficulty)
	if flagDifficulty != "" && preset == "" {
		return config.DinoConfig{}, "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
	}
	config.ApplyDinoPreset(&cfg, preset)

	if err := cfg.Validate(); err != nil {
		return config.DinoConfig{}, "", err
	}
	return cfg, preset, nil
}

// newLogger returns a timestamped logger writing to w.
func newLogger(w io.Writer, prefix string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// openLogFile opens ~/.runner/runner.log for appending. The terminal is
// owned by the game while playing, so logs go to a file instead.
func openLogFile() (*os.File, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	dir := filepath.Join(home, ".runner")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(filepath.Join(dir, "runner.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
}
