package dino

import (
	"testing"

	"github.com/vovakirdan/tui-runner/internal/core"
)

func hasIntent(intents []core.Intent, want core.Intent) bool {
	for _, i := range intents {
		if i == want {
			return true
		}
	}
	return false
}

func TestAutopilotDecide(t *testing.T) {
	g := newTestGame(t, 1, nil)
	base := g.Frame()
	base.Speed = 5
	ap := NewAutopilot()

	cactus := &GroundObstacle{X: 100, Y: 240, Width: 20, Height: 40}
	farCactus := &GroundObstacle{X: 600, Y: 240, Width: 20, Height: 40}
	lowBird := &AerialObstacle{X: 100, Y: 225, Width: 30, Height: 20}
	highBird := &AerialObstacle{X: 100, Y: 180, Width: 30, Height: 20}

	tests := []struct {
		name      string
		obstacles []Obstacle
		want      core.Intent
		wantNone  bool
	}{
		{"jumps near cactus", []Obstacle{cactus}, core.IntentJumpPressed, false},
		{"ignores distant cactus", []Obstacle{farCactus}, 0, true},
		{"ducks under low bird", []Obstacle{lowBird}, core.IntentDuckPressed, false},
		{"runs under high bird", []Obstacle{highBird}, 0, true},
		{"empty field", nil, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := base
			f.Obstacles = tt.obstacles
			got := ap.Decide(f)
			if tt.wantNone {
				if len(got) != 0 {
					t.Errorf("expected no intents, got %v", got)
				}
				return
			}
			if !hasIntent(got, tt.want) {
				t.Errorf("expected %v in %v", tt.want, got)
			}
		})
	}
}

func TestAutopilotRestartsAfterGameOver(t *testing.T) {
	f := FrameState{Phase: PhaseGameOver}
	got := NewAutopilot().Decide(f)
	if len(got) != 1 || got[0] != core.IntentRestart {
		t.Errorf("expected Restart, got %v", got)
	}
}

func TestAutopilotOutlastsIdleRunner(t *testing.T) {
	idle := runUntilGameOver(t, newTestGame(t, 1, nil)).Score

	g := newTestGame(t, 1, nil)
	ap := NewAutopilot()
	score := 0
	for i := 0; i < 5000; i++ {
		f := g.Frame()
		if f.GameOver() {
			break
		}
		for _, in := range ap.Decide(f) {
			g.Push(in)
		}
		score = g.Tick().Score
	}

	if score <= idle {
		t.Errorf("autopilot scored %d, idle runner %d", score, idle)
	}
}
