package dino

// Phase is the state of the game state machine.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseGameOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "Playing"
	case PhaseGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Event is a fire-and-forget notification raised during a tick.
type Event int

const (
	EventGameOver Event = iota + 1
	EventNewHighScore
	EventRestarted
)

// String returns a human-readable name for the event.
func (e Event) String() string {
	switch e {
	case EventGameOver:
		return "GameOver"
	case EventNewHighScore:
		return "NewHighScore"
	case EventRestarted:
		return "Restarted"
	default:
		return "Unknown"
	}
}

// Observer receives every event together with the frame that raised it.
type Observer func(Event, FrameState)

// FrameState is a full snapshot of one tick, enough for a stateless
// renderer to redraw the scene.
type FrameState struct {
	Runner    Runner
	Obstacles []Obstacle // Deep copies; safe to keep across ticks
	Clouds    []Cloud
	Dots      []GroundDot
	Score     int
	HighScore int
	Frame     int
	Speed     float64
	Phase     Phase
	Events    []Event // Raised during this tick, in order
}

// GameOver reports whether the run has ended.
func (f FrameState) GameOver() bool {
	return f.Phase == PhaseGameOver
}

// Has reports whether e was raised during this tick.
func (f FrameState) Has(e Event) bool {
	for _, got := range f.Events {
		if got == e {
			return true
		}
	}
	return false
}

func copyObstacles(src []Obstacle) []Obstacle {
	out := make([]Obstacle, 0, len(src))
	for _, o := range src {
		switch ob := o.(type) {
		case *GroundObstacle:
			c := *ob
			out = append(out, &c)
		case *AerialObstacle:
			c := *ob
			out = append(out, &c)
		}
	}
	return out
}
