package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store, dbPath
}

func TestStoreOpenClose(t *testing.T) {
	_, dbPath := openTestStore(t)

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreOpenCreatesParentDirs(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "deeper", "scores.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	store.Close()

	if _, err := os.Stat(dbPath); err != nil {
		t.Errorf("Database file was not created: %v", err)
	}
}

func TestStoreRecordAndTopRuns(t *testing.T) {
	store, _ := openTestStore(t)

	runs := []RunRecord{
		{GameID: "dino", Score: 100, Frames: 101, Seed: 1, Difficulty: "normal"},
		{GameID: "dino", Score: 50, Frames: 51, Seed: 2, Difficulty: "easy"},
		{GameID: "dino", Score: 200, Frames: 201, Seed: 3, Difficulty: "hard"},
		{GameID: "other", Score: 500, Frames: 501},
	}
	for _, r := range runs {
		if _, err := store.RecordRun(r); err != nil {
			t.Fatalf("RecordRun() failed: %v", err)
		}
	}

	top, err := store.TopRuns("dino", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(top))
	}

	want := []int{200, 100, 50}
	for i, w := range want {
		if top[i].Score != w {
			t.Errorf("run %d: expected score %d, got %d", i, w, top[i].Score)
		}
	}
	if top[0].Seed != 3 || top[0].Difficulty != "hard" || top[0].Frames != 201 {
		t.Errorf("run fields not round-tripped: %+v", top[0])
	}
}

func TestStoreTopRunsLimit(t *testing.T) {
	store, _ := openTestStore(t)

	for i := 0; i < 15; i++ {
		if _, err := store.RecordRun(RunRecord{GameID: "dino", Score: i * 10}); err != nil {
			t.Fatalf("RecordRun() failed: %v", err)
		}
	}

	top, err := store.TopRuns("dino", 5)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 5 {
		t.Errorf("Expected 5 runs, got %d", len(top))
	}

	// Zero limit falls back to 10
	top, err = store.TopRuns("dino", 0)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 10 {
		t.Errorf("Expected default limit 10, got %d", len(top))
	}
}

func TestStoreHighScore(t *testing.T) {
	store, _ := openTestStore(t)

	hs, err := store.HighScore("dino")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if hs != 0 {
		t.Errorf("Expected 0 for empty store, got %d", hs)
	}

	tests := []struct {
		set  int
		want int
	}{
		{120, 120},
		{300, 300},
		{150, 300}, // never lowered
	}
	for _, tt := range tests {
		if err := store.SetHighScore("dino", tt.set); err != nil {
			t.Fatalf("SetHighScore(%d) failed: %v", tt.set, err)
		}
		hs, err := store.HighScore("dino")
		if err != nil {
			t.Fatalf("HighScore() failed: %v", err)
		}
		if hs != tt.want {
			t.Errorf("after SetHighScore(%d): expected %d, got %d", tt.set, tt.want, hs)
		}
	}
}

func TestStoreHighScoreSurvivesReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if err := store.SetHighScore("dino", 4242); err != nil {
		t.Fatalf("SetHighScore() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	hs, err := store.HighScore("dino")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if hs != 4242 {
		t.Errorf("Expected 4242 after reopen, got %d", hs)
	}
}

func TestStoreReset(t *testing.T) {
	store, _ := openTestStore(t)

	store.RecordRun(RunRecord{GameID: "dino", Score: 10})
	store.RecordRun(RunRecord{GameID: "other", Score: 20})
	store.SetHighScore("dino", 10)

	if err := store.Reset("dino"); err != nil {
		t.Fatalf("Reset() failed: %v", err)
	}

	top, _ := store.TopRuns("dino", 10)
	if len(top) != 0 {
		t.Errorf("Expected no dino runs after reset, got %d", len(top))
	}
	hs, _ := store.HighScore("dino")
	if hs != 0 {
		t.Errorf("Expected high score cleared, got %d", hs)
	}

	other, _ := store.TopRuns("other", 10)
	if len(other) != 1 {
		t.Errorf("Reset should not touch other games, got %d runs", len(other))
	}
}

func TestStoreStats(t *testing.T) {
	store, _ := openTestStore(t)

	empty, err := store.Stats("dino")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if empty.Runs != 0 || empty.BestRun != 0 {
		t.Errorf("Expected empty stats, got %+v", empty)
	}

	store.RecordRun(RunRecord{GameID: "dino", Score: 100, Frames: 101})
	store.RecordRun(RunRecord{GameID: "dino", Score: 300, Frames: 301})

	st, err := store.Stats("dino")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if st.Runs != 2 {
		t.Errorf("Expected 2 runs, got %d", st.Runs)
	}
	if st.BestRun != 300 {
		t.Errorf("Expected best 300, got %d", st.BestRun)
	}
	if st.AvgScore != 200 {
		t.Errorf("Expected average 200, got %f", st.AvgScore)
	}
	if st.TotalTicks != 402 {
		t.Errorf("Expected 402 total ticks, got %d", st.TotalTicks)
	}
	if st.LastPlayed.IsZero() {
		t.Error("Expected last played time")
	}
}
