package config

import (
	"errors"
	"fmt"
)

// Validate reports every out-of-range setting at once.
// A config that passes can be simulated without undefined behaviour.
func (c DinoConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("config: "+format, args...))
		}
	}

	check(c.Field.Width > 0 && c.Field.Height > 0, "field size must be positive, got %vx%v", c.Field.Width, c.Field.Height)

	p := c.Physics
	check(p.Gravity > 0, "physics.gravity must be positive, got %v", p.Gravity)
	check(p.MaxJumpSpeed < 0, "physics.max_jump_speed must be negative (upward), got %v", p.MaxJumpSpeed)
	check(p.MinJumpSpeed < 0, "physics.min_jump_speed must be negative (upward), got %v", p.MinJumpSpeed)
	check(p.MaxJumpSpeed <= p.MinJumpSpeed, "physics.max_jump_speed %v must be at least as strong as min_jump_speed %v", p.MaxJumpSpeed, p.MinJumpSpeed)
	check(p.HeldGravityMultiplier > 0 && p.HeldGravityMultiplier <= 1, "physics.held_gravity_multiplier must be in (0, 1], got %v", p.HeldGravityMultiplier)
	check(p.JumpBarSmoothing > 0 && p.JumpBarSmoothing <= 1, "physics.jump_bar_smoothing must be in (0, 1], got %v", p.JumpBarSmoothing)

	r := c.Runner
	check(r.StandWidth > 0 && r.StandHeight > 0, "runner standing size must be positive")
	check(r.CrouchWidth > 0 && r.CrouchHeight > 0, "runner crouching size must be positive")
	check(r.CrouchHeight <= r.StandHeight, "runner.crouch_height %v exceeds stand_height %v", r.CrouchHeight, r.StandHeight)
	check(r.GroundLevel > 0 && r.FloorY() <= c.Field.Height, "runner.ground_level %v does not fit the field", r.GroundLevel)

	g := c.Ground
	check(g.Width > 0, "ground.width must be positive, got %v", g.Width)
	check(g.MinHeight > 0, "ground.min_height must be positive, got %v", g.MinHeight)
	check(g.MinHeight <= g.MaxHeight, "ground height bounds inverted: min %v > max %v", g.MinHeight, g.MaxHeight)
	check(len(g.Groups) > 0, "ground.groups must not be empty")
	for i, grp := range g.Groups {
		check(grp.Count >= 1 && grp.Count <= 4, "ground.groups[%d].count must be 1..4, got %d", i, grp.Count)
		check(grp.Spacing >= 0, "ground.groups[%d].spacing must not be negative, got %v", i, grp.Spacing)
	}
	check(g.GroupGapFactor >= 0, "ground.group_gap_factor must not be negative, got %v", g.GroupGapFactor)
	check(g.MinSpawnInterval > 0, "ground.min_spawn_interval must be positive, got %v", g.MinSpawnInterval)
	check(g.MinSpawnInterval <= g.MaxSpawnInterval, "ground spawn bounds inverted: min %v > max %v", g.MinSpawnInterval, g.MaxSpawnInterval)
	check(g.MinIntervalFloor > 0 && g.MinIntervalFloor <= g.MaxIntervalFloor, "ground interval floors invalid: min %v, max %v", g.MinIntervalFloor, g.MaxIntervalFloor)
	check(g.MinSpawnInterval >= g.MinIntervalFloor, "ground.min_spawn_interval %v is below its floor %v", g.MinSpawnInterval, g.MinIntervalFloor)
	check(g.MaxSpawnInterval >= g.MaxIntervalFloor, "ground.max_spawn_interval %v is below its floor %v", g.MaxSpawnInterval, g.MaxIntervalFloor)
	check(g.MinIntervalDecrement >= 0 && g.MaxIntervalDecrement >= 0, "ground interval decrements must not be negative")

	a := c.Aerial
	check(a.UnlockScore >= 0, "aerial.unlock_score must not be negative, got %d", a.UnlockScore)
	check(a.SpawnChance > 0 && a.SpawnChance <= 1, "aerial.spawn_chance must be in (0, 1], got %v", a.SpawnChance)
	check(a.MinInterval > 0 && a.MinInterval <= a.MaxInterval, "aerial interval bounds invalid: min %d, max %d", a.MinInterval, a.MaxInterval)
	check(a.Height > 0, "aerial.height must be positive, got %v", a.Height)
	check(a.MinAltitude <= a.MaxAltitude, "aerial altitude bounds inverted: min %v > max %v", a.MinAltitude, a.MaxAltitude)
	check(len(a.Speeds) > 0, "aerial.speeds must not be empty")
	for i, s := range a.Speeds {
		check(s > 0, "aerial.speeds[%d] must be positive, got %v", i, s)
	}
	check(len(a.Widths) > 0, "aerial.widths must not be empty")
	for i, w := range a.Widths {
		check(w > 0, "aerial.widths[%d] must be positive, got %v", i, w)
	}
	check(a.WingFlapFrames > 0, "aerial.wing_flap_frames must be positive, got %d", a.WingFlapFrames)

	s := c.Speed
	check(s.Base > 0, "speed.base must be positive, got %v", s.Base)
	check(s.IncrementInterval > 0, "speed.increment_interval must be positive, got %v", s.IncrementInterval)
	check(s.IncrementAmount >= 0, "speed.increment_amount must not be negative, got %v", s.IncrementAmount)
	check(s.CloudFactor >= 0 && s.GroundFactor >= 0, "parallax factors must not be negative")

	sc := c.Scenery
	check(sc.CloudInterval > 0, "scenery.cloud_interval must be positive, got %d", sc.CloudInterval)
	check(sc.CloudChance >= 0 && sc.CloudChance <= 1, "scenery.cloud_chance must be in [0, 1], got %v", sc.CloudChance)
	check(sc.CloudMinWidth <= sc.CloudMaxWidth && sc.CloudMinHeight <= sc.CloudMaxHeight, "scenery cloud bounds inverted")
	check(sc.DotSpacing > 0, "scenery.dot_spacing must be positive, got %v", sc.DotSpacing)
	check(sc.DotMinSize <= sc.DotMaxSize, "scenery dot size bounds inverted")

	return errors.Join(errs...)
}
