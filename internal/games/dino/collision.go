package dino

import (
	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

func inset(r core.Rect, b config.Box) core.Rect {
	return r.Inset(b.X, b.Y, b.W, b.H)
}

// RunnerHitboxes returns the runner's body and head hitboxes.
// The head box sits forward of and above the body and moves when ducking.
func RunnerHitboxes(r Runner, hb config.HitboxConfig) (body, head core.Rect) {
	visual := r.Rect()
	body = inset(visual, hb.RunnerBody)
	if r.IsDucking {
		head = inset(visual, hb.RunnerHeadDucking)
	} else {
		head = inset(visual, hb.RunnerHeadStanding)
	}
	return body, head
}

// GroundHitbox returns the collidable region of a cactus.
func GroundHitbox(g *GroundObstacle, hb config.HitboxConfig) core.Rect {
	return inset(g.Rect(), hb.Ground)
}

// AerialHitboxes returns a bird's body, head and wing hitboxes.
func AerialHitboxes(a *AerialObstacle, hb config.HitboxConfig) [3]core.Rect {
	visual := a.Rect()
	wing := hb.AerialWingDown
	if a.WingUp {
		wing = hb.AerialWingUp
	}
	return [3]core.Rect{
		inset(visual, hb.AerialBody),
		inset(visual, hb.AerialHead),
		inset(visual, wing),
	}
}

// Collides reports whether the runner touches a single obstacle.
func Collides(r Runner, o Obstacle, hb config.HitboxConfig) bool {
	body, head := RunnerHitboxes(r, hb)

	switch ob := o.(type) {
	case *GroundObstacle:
		box := GroundHitbox(ob, hb)
		return body.Intersects(box) || head.Intersects(box)
	case *AerialObstacle:
		for _, part := range AerialHitboxes(ob, hb) {
			if body.Intersects(part) || head.Intersects(part) {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// CheckAll reports whether any obstacle hits the runner this frame.
func CheckAll(r Runner, obstacles []Obstacle, hb config.HitboxConfig) bool {
	for _, o := range obstacles {
		if Collides(r, o, hb) {
			return true
		}
	}
	return false
}
