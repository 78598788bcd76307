package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/games/dino"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

// Refresher is implemented by high score stores shared between sessions.
type Refresher interface {
	Refresh()
}

// Model is the Bubble Tea model for one player's game.
type Model struct {
	game       *dino.Game
	screen     *core.Screen
	store      *storage.Store
	highScores Refresher
	logger     *log.Logger
	config     core.RuntimeConfig
	difficulty string
	keys       KeyMap
	help       help.Model
	held       *HeldKeys
	tick       int
	runSaved   bool // Run recorded for the current game over
	quitting   bool
}

// ModelOption configures a Model.
type ModelOption func(*Model)

// WithLogger sets the session logger. Events are logged at debug level.
func WithLogger(l *log.Logger) ModelOption {
	return func(m *Model) {
		m.logger = l
	}
}

// WithDifficulty labels recorded runs with a difficulty preset.
func WithDifficulty(name string) ModelOption {
	return func(m *Model) {
		m.difficulty = name
	}
}

// WithHighScores lets the model pick up high scores from other sessions
// after each game over.
func WithHighScores(r Refresher) ModelOption {
	return func(m *Model) {
		m.highScores = r
	}
}

// NewModel creates a Bubble Tea model driving game. store may be nil.
func NewModel(game *dino.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...ModelOption) Model {
	cfg = cfg.Normalized()

	h := help.New()
	h.ShowAll = false

	m := Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, max(1, cfg.ScreenH-1)),
		store:  store,
		config: cfg,
		keys:   DefaultKeyMap(),
		help:   h,
		held:   NewHeldKeys(cfg.TickRate),
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		m.fitScreen()
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Map(msg, m.game.Frame().GameOver())

	switch action {
	case ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
		m.fitScreen()
	case ActionScreenshot:
		m.saveScreenshot()
	case ActionRestart:
		m.held.Reset()
		m.game.Push(core.IntentRestart)
	case ActionJump, ActionDuck:
		for _, i := range m.held.Press(action, m.tick) {
			m.game.Push(i)
		}
	}

	return m, nil
}

// handleTick advances the game by one step.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.tick++
	for _, i := range m.held.Expire(m.tick) {
		m.game.Push(i)
	}

	f := m.game.Tick()
	for _, e := range f.Events {
		m.handleEvent(e, f)
	}

	return m, tickCmd(m.config.TickRate)
}

func (m *Model) handleEvent(e dino.Event, f dino.FrameState) {
	switch e {
	case dino.EventGameOver:
		m.debug("game over", "score", f.Score, "frames", f.Frame, "speed", f.Speed)
		m.recordRun(f)
		// Pick up scores from other sessions before the next run starts.
		if m.highScores != nil {
			m.highScores.Refresh()
		}

	case dino.EventNewHighScore:
		m.debug("new high score", "score", f.Score)

	case dino.EventRestarted:
		m.runSaved = false
		m.debug("restarted", "high_score", f.HighScore)
	}
}

// recordRun stores the finished run once. Failures are logged only.
func (m *Model) recordRun(f dino.FrameState) {
	if m.runSaved || m.store == nil || f.Score == 0 {
		return
	}
	m.runSaved = true

	_, err := m.store.RecordRun(storage.RunRecord{
		GameID:     m.game.ID(),
		Score:      f.Score,
		Frames:     f.Frame,
		Seed:       m.config.Seed,
		Difficulty: m.difficulty,
	})
	if err != nil && m.logger != nil {
		m.logger.Warn("record run failed", "err", err)
	}
}

// fitScreen leaves room below the playfield for the help bar.
func (m *Model) fitScreen() {
	helpRows := 1
	if m.help.ShowAll {
		helpRows = 3
	}
	m.screen.Resize(m.config.ScreenW, max(1, m.config.ScreenH-helpRows))
}

func (m *Model) debug(msg string, keyvals ...any) {
	if m.logger != nil {
		m.logger.Debug(msg, keyvals...)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".runner", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.debug("screenshot failed", "err", err)
		return
	}
	m.debug("screenshot saved", "path", path)
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// View renders the current frame with the help bar underneath.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program with the given model.
func Run(game *dino.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...ModelOption) error {
	model := NewModel(game, store, cfg, opts...)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
