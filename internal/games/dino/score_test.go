package dino

import "testing"

func TestScoreKeeperFirstRun(t *testing.T) {
	store := NewMemoryHighScores(0)
	k := NewScoreKeeper(store)

	for i := 0; i < 50; i++ {
		if k.Increment() {
			t.Fatalf("tick %d: no high score to beat on a first run", i)
		}
	}
	if k.HighScore != 50 || store.Get() != 50 {
		t.Errorf("high score should track the score: keeper=%d store=%d", k.HighScore, store.Get())
	}
}

func TestScoreKeeperAnnouncesOnce(t *testing.T) {
	store := NewMemoryHighScores(10)
	k := NewScoreKeeper(store)

	announced := 0
	at := 0
	for i := 1; i <= 30; i++ {
		if k.Increment() {
			announced++
			at = i
		}
	}

	if announced != 1 {
		t.Errorf("expected exactly one announcement, got %d", announced)
	}
	if at != 11 {
		t.Errorf("expected announcement when passing 10, got tick %d", at)
	}
	if store.Get() != 30 {
		t.Errorf("store should hold 30, got %d", store.Get())
	}
	if store.Writes() != 20 {
		t.Errorf("expected a write per improving tick (20), got %d", store.Writes())
	}
}

func TestScoreKeeperBelowHighScore(t *testing.T) {
	store := NewMemoryHighScores(100)
	k := NewScoreKeeper(store)

	for i := 0; i < 100; i++ {
		k.Increment()
	}
	if store.Writes() != 0 {
		t.Errorf("tying the high score should not write, got %d writes", store.Writes())
	}
	if k.HighScore != 100 {
		t.Errorf("expected high score 100, got %d", k.HighScore)
	}
}
