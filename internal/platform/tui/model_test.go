package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/games/dino"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

func newTestModel(t *testing.T, store *storage.Store) Model {
	t.Helper()
	game, err := dino.New(config.DefaultDinoConfig(), 7, nil)
	if err != nil {
		t.Fatalf("dino.New: %v", err)
	}
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 7}
	return NewModel(game, store, cfg, WithDifficulty("normal"))
}

func step(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm
}

func TestModelTickAdvancesGame(t *testing.T) {
	m := newTestModel(t, nil)
	for i := 0; i < 10; i++ {
		m = step(t, m, TickMsg{})
	}

	if got := m.game.Frame().Score; got != 10 {
		t.Errorf("expected score 10 after 10 ticks, got %d", got)
	}
}

func TestModelJumpKey(t *testing.T) {
	m := newTestModel(t, nil)
	m = step(t, m, tea.KeyMsg{Type: tea.KeySpace})
	m = step(t, m, TickMsg{})

	if !m.game.Frame().Runner.IsJumping {
		t.Error("space should make the runner jump")
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t, nil)
	next, cmd := m.Update(runeKey('q'))
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if next.(Model).View() != "" {
		t.Error("view should be empty once quitting")
	}
}

func TestModelRecordsRunAndRestarts(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open: %v", err)
	}
	defer store.Close()

	m := newTestModel(t, store)
	for i := 0; i < 2000 && !m.game.Frame().GameOver(); i++ {
		m = step(t, m, TickMsg{})
	}
	if !m.game.Frame().GameOver() {
		t.Fatal("expected game over without input")
	}
	final := m.game.Frame().Score

	// Further ticks must not record the same run twice
	m = step(t, m, TickMsg{})
	m = step(t, m, TickMsg{})

	runs, err := store.TopRuns(dino.GameID, 10)
	if err != nil {
		t.Fatalf("TopRuns: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 recorded run, got %d", len(runs))
	}
	if runs[0].Score != final || runs[0].Difficulty != "normal" || runs[0].Seed != 7 {
		t.Errorf("unexpected run record %+v", runs[0])
	}

	// Space restarts after game over
	m = step(t, m, tea.KeyMsg{Type: tea.KeySpace})
	m = step(t, m, TickMsg{})
	if m.game.Frame().GameOver() {
		t.Error("expected a new run after restart")
	}
}

func TestModelView(t *testing.T) {
	m := newTestModel(t, nil)
	m = step(t, m, TickMsg{})

	view := m.View()
	if !strings.Contains(view, "Score: 1") {
		t.Error("view should show the score")
	}
	if !strings.Contains(view, "jump") {
		t.Error("view should include the help bar")
	}
}

func TestModelResize(t *testing.T) {
	m := newTestModel(t, nil)
	m = step(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	if m.screen.Width() != 120 || m.screen.Height() != 39 {
		t.Errorf("expected 120x39 playfield, got %dx%d", m.screen.Width(), m.screen.Height())
	}

	m = step(t, m, runeKey('?'))
	if m.screen.Height() != 37 {
		t.Errorf("full help should take three rows, playfield height %d", m.screen.Height())
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(20, 2)
	s.DrawTextColored(0, 0, "HI", core.ColorHighScore)
	s.DrawText(3, 0, "there")

	out := RenderScreen(s)
	if !strings.Contains(out, "HI") || !strings.Contains(out, "there") {
		t.Errorf("rendered output lost text: %q", out)
	}
	if strings.Count(out, "\n") != 1 {
		t.Errorf("expected 2 rows, got %q", out)
	}
}
