package dino

import "sync"

// HighScoreStore persists the best score across runs and restarts.
// Implementations handle their own failures; the game treats both calls as
// infallible.
type HighScoreStore interface {
	Get() int
	Set(score int)
}

// MemoryHighScores is an in-process HighScoreStore.
type MemoryHighScores struct {
	mu    sync.Mutex
	score int
	sets  int
}

// NewMemoryHighScores returns a store seeded with an initial high score.
func NewMemoryHighScores(initial int) *MemoryHighScores {
	return &MemoryHighScores{score: initial}
}

// Get returns the stored high score.
func (m *MemoryHighScores) Get() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.score
}

// Set stores a new high score.
func (m *MemoryHighScores) Set(score int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.score = score
	m.sets++
}

// Writes returns how many times Set was called.
func (m *MemoryHighScores) Writes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sets
}

// ScoreKeeper counts the score of one run and maintains the high score.
type ScoreKeeper struct {
	Score          int
	HighScore      int
	priorHighScore int  // High score when the run started
	announced      bool // NewHighScore already emitted this run
	store          HighScoreStore
}

// NewScoreKeeper starts a run with the high score read from store.
func NewScoreKeeper(store HighScoreStore) ScoreKeeper {
	hs := store.Get()
	return ScoreKeeper{
		HighScore:      hs,
		priorHighScore: hs,
		store:          store,
	}
}

// Increment adds one point. It returns true on the tick the run first beats
// a nonzero previous high score.
func (k *ScoreKeeper) Increment() bool {
	k.Score++
	if k.Score <= k.HighScore {
		return false
	}

	k.HighScore = k.Score
	k.store.Set(k.HighScore)

	// A first-ever run has nothing to celebrate beating.
	if k.priorHighScore == 0 || k.announced {
		return false
	}
	k.announced = true
	return true
}
