package dino

import (
	"math"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// Runner is the player-controlled entity.
type Runner struct {
	X, Y          float64 // Top-left of the visual rectangle
	Width, Height float64
	VelocityY     float64 // Negative = up
	IsJumping     bool
	IsDucking     bool
	JumpHeld      bool
	// GroundLevel is the resting Y of the standing pose. A crouch is
	// shorter, so its Y sits below GroundLevel with the feet still on the
	// floor; the bound that holds in every pose is Rect().Bottom() <= floor.
	GroundLevel   float64
	JumpForce     float64 // Smoothed jump-force indicator in [0, 1]
}

// NewRunner places a standing runner on the ground.
func NewRunner(cfg config.RunnerConfig) Runner {
	return Runner{
		X:           cfg.X,
		Y:           cfg.GroundLevel,
		Width:       cfg.StandWidth,
		Height:      cfg.StandHeight,
		GroundLevel: cfg.GroundLevel,
	}
}

// Rect returns the runner's visual rectangle.
func (r Runner) Rect() core.Rect {
	return core.NewRect(r.X, r.Y, r.Width, r.Height)
}

// PressJump starts a jump. Ignored while airborne or ducking.
func (r Runner) PressJump(p config.PhysicsConfig) Runner {
	if r.IsJumping || r.IsDucking {
		return r
	}
	r.IsJumping = true
	r.JumpHeld = true
	r.VelocityY = p.MaxJumpSpeed
	return r
}

// ReleaseJump stops the held-jump float and cuts residual upward velocity
// down to MinJumpSpeed so tapped jumps stay short.
func (r Runner) ReleaseJump(p config.PhysicsConfig) Runner {
	r.JumpHeld = false
	if r.VelocityY < p.MinJumpSpeed {
		r.VelocityY = p.MinJumpSpeed
	}
	return r
}

// PressDuck crouches the runner, keeping its feet on the floor.
// Ignored while airborne.
func (r Runner) PressDuck(cfg config.RunnerConfig) Runner {
	if r.IsJumping || r.IsDucking {
		return r
	}
	r.IsDucking = true
	r.Width = cfg.CrouchWidth
	r.Height = cfg.CrouchHeight
	r.Y = r.GroundLevel + (cfg.StandHeight - cfg.CrouchHeight)
	return r
}

// ReleaseDuck returns a crouching runner to the standing pose.
func (r Runner) ReleaseDuck(cfg config.RunnerConfig) Runner {
	if !r.IsDucking {
		return r
	}
	r.IsDucking = false
	r.Width = cfg.StandWidth
	r.Height = cfg.StandHeight
	r.Y = r.GroundLevel
	return r
}

// UpdateRunner advances the runner's physics by one tick.
func UpdateRunner(r Runner, p config.PhysicsConfig) Runner {
	target := 0.0
	if r.IsJumping {
		target = core.ClampF(math.Abs(r.VelocityY)/math.Abs(p.MaxJumpSpeed), 0, 1)

		// Holding the key while rising gives a floatier, higher arc.
		mult := 1.0
		if r.JumpHeld && r.VelocityY < 0 {
			mult = p.HeldGravityMultiplier
		}
		r.VelocityY += p.Gravity * mult
		r.Y += r.VelocityY

		if r.Y >= r.GroundLevel {
			r.Y = r.GroundLevel
			r.IsJumping = false
			r.VelocityY = 0
			target = 0
		}
	}

	r.JumpForce += (target - r.JumpForce) * p.JumpBarSmoothing
	return r
}
