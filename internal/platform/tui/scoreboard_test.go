package tui

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-runner/internal/storage"
)

func TestScoreboardShowsRuns(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open: %v", err)
	}
	defer store.Close()

	for _, score := range []int{120, 480, 300} {
		if _, err := store.RecordRun(storage.RunRecord{GameID: "dino", Score: score, Frames: score + 1, Seed: 42, Difficulty: "hard"}); err != nil {
			t.Fatalf("RecordRun: %v", err)
		}
	}

	m := NewScoreboardModel(store, "dino", "Dino Dash", 100, 30)
	if len(m.runs) != 3 {
		t.Fatalf("expected 3 runs loaded, got %d", len(m.runs))
	}
	if m.runs[0].Score != 480 {
		t.Errorf("best run should come first, got %d", m.runs[0].Score)
	}

	view := m.View()
	for _, want := range []string{"HIGH SCORES - Dino Dash", "480", "3 runs", "best 480"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestScoreboardEmptyAndReload(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open: %v", err)
	}
	defer store.Close()

	m := NewScoreboardModel(store, "dino", "Dino Dash", 80, 24)
	if !strings.Contains(m.View(), "No runs recorded yet") {
		t.Error("empty scoreboard should say so")
	}

	if _, err := store.RecordRun(storage.RunRecord{GameID: "dino", Score: 77}); err != nil {
		t.Fatalf("RecordRun: %v", err)
	}

	next, _ := m.Update(runeKey('r'))
	m = next.(ScoreboardModel)
	if len(m.runs) != 1 || m.runs[0].Score != 77 {
		t.Errorf("reload should pick up the new run, got %+v", m.runs)
	}

	_, cmd := m.Update(runeKey('q'))
	if cmd == nil {
		t.Error("q should quit")
	}
}
