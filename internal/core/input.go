package core

import "sync"

// Intent represents an abstract player action, decoupled from the physical
// key that triggered it.
type Intent int

const (
	IntentNone Intent = iota
	IntentJumpPressed
	IntentJumpReleased
	IntentDuckPressed
	IntentDuckReleased
	IntentRestart
)

// String returns a human-readable name for the intent.
func (i Intent) String() string {
	switch i {
	case IntentNone:
		return "None"
	case IntentJumpPressed:
		return "JumpPressed"
	case IntentJumpReleased:
		return "JumpReleased"
	case IntentDuckPressed:
		return "DuckPressed"
	case IntentDuckReleased:
		return "DuckReleased"
	case IntentRestart:
		return "Restart"
	default:
		return "Unknown"
	}
}

// IntentQueue buffers intents between ticks.
// Producers may push from any goroutine; the simulation drains it once at
// the start of each tick.
type IntentQueue struct {
	mu      sync.Mutex
	pending []Intent
}

// NewIntentQueue creates an empty intent queue.
func NewIntentQueue() *IntentQueue {
	return &IntentQueue{pending: make([]Intent, 0, 8)}
}

// Push appends an intent. IntentNone is ignored.
func (q *IntentQueue) Push(i Intent) {
	if i == IntentNone {
		return
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	q.pending = append(q.pending, i)
}

// Drain returns all pending intents in arrival order and empties the queue.
// Adjacent repeats of the same intent collapse into one.
func (q *IntentQueue) Drain() []Intent {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.pending) == 0 {
		return nil
	}

	out := make([]Intent, 0, len(q.pending))
	for _, i := range q.pending {
		if n := len(out); n > 0 && out[n-1] == i {
			continue
		}
		out = append(out, i)
	}
	q.pending = q.pending[:0]
	return out
}

// Len returns the number of buffered intents.
func (q *IntentQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}
