package dino

import "github.com/vovakirdan/tui-runner/internal/core"

// Autopilot is a simple scripted player for headless runs and demos.
// It reads only the published frame, the same view a human has.
type Autopilot struct {
	// Lead is how many ticks ahead of an obstacle to react.
	Lead float64
}

// NewAutopilot returns an autopilot tuned for the default physics.
func NewAutopilot() *Autopilot {
	return &Autopilot{Lead: 8}
}

// Decide returns the intents to push before the next tick.
func (a *Autopilot) Decide(f FrameState) []core.Intent {
	if f.GameOver() {
		return []core.Intent{core.IntentRestart}
	}

	r := f.Runner
	front := r.X + r.Width
	reach := f.Speed*a.Lead + 10

	var intents []core.Intent
	threat := a.nearestThreat(f, front, reach)

	switch ob := threat.(type) {
	case *GroundObstacle:
		if r.IsDucking {
			intents = append(intents, core.IntentDuckReleased)
		}
		if !r.IsJumping {
			intents = append(intents, core.IntentJumpPressed)
		}
	case *AerialObstacle:
		if !r.IsJumping && !r.IsDucking && ob.Rect().Bottom() > r.GroundLevel {
			intents = append(intents, core.IntentDuckPressed)
		}
	case nil:
		if r.IsDucking {
			intents = append(intents, core.IntentDuckReleased)
		}
	}

	// Let go once the climb is nearly over so the next jump starts clean.
	if r.IsJumping && r.JumpHeld && r.VelocityY > -2 {
		intents = append(intents, core.IntentJumpReleased)
	}
	return intents
}

// nearestThreat returns the closest obstacle still ahead of the runner's
// back edge and within reach of its front edge.
func (a *Autopilot) nearestThreat(f FrameState, front, reach float64) Obstacle {
	var (
		best     Obstacle
		bestDist float64
	)
	for _, o := range f.Obstacles {
		rect := o.Rect()
		if rect.Right() < f.Runner.X {
			continue
		}
		dist := rect.X - front
		if dist > reach {
			continue
		}
		if best == nil || dist < bestDist {
			best, bestDist = o, dist
		}
	}
	return best
}
