package storage

import (
	"sync"

	"github.com/charmbracelet/log"
)

// HighScores adapts a Store to the game's HighScoreStore.
// Reads are served from a cached value loaded once; writes go straight to
// SQLite. Failures are logged and never reach the game loop.
type HighScores struct {
	store  *Store
	gameID string
	logger *log.Logger

	mu    sync.Mutex
	cache int
}

// NewHighScores loads the stored high score for gameID.
// A nil logger discards failures silently.
func NewHighScores(store *Store, gameID string, logger *log.Logger) *HighScores {
	h := &HighScores{store: store, gameID: gameID, logger: logger}

	score, err := store.HighScore(gameID)
	if err != nil {
		h.warn("load high score failed", err)
	}
	h.cache = score
	return h
}

// Get returns the best known high score.
func (h *HighScores) Get() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.cache
}

// Set persists a new high score.
func (h *HighScores) Set(score int) {
	h.mu.Lock()
	if score > h.cache {
		h.cache = score
	}
	h.mu.Unlock()

	if err := h.store.SetHighScore(h.gameID, score); err != nil {
		h.warn("save high score failed", err, "score", score)
	}
}

// Refresh re-reads the stored value, picking up scores set by other
// sessions sharing the database.
func (h *HighScores) Refresh() {
	score, err := h.store.HighScore(h.gameID)
	if err != nil {
		h.warn("refresh high score failed", err)
		return
	}

	h.mu.Lock()
	if score > h.cache {
		h.cache = score
	}
	h.mu.Unlock()
}

func (h *HighScores) warn(msg string, err error, keyvals ...any) {
	if h.logger == nil {
		return
	}
	h.logger.Warn(msg, append([]any{"game", h.gameID, "err", err}, keyvals...)...)
}
