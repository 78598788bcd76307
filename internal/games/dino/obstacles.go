package dino

import (
	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// Obstacle is either a *GroundObstacle or an *AerialObstacle.
type Obstacle interface {
	Rect() core.Rect
	obstacle()
}

// GroundObstacle is a cactus standing on the floor line.
type GroundObstacle struct {
	X, Y          float64
	Width, Height float64
	Group         int // Size of the group it was spawned with
	Index         int // Position within that group
}

func (*GroundObstacle) obstacle() {}

// Rect returns the visual rectangle.
func (g *GroundObstacle) Rect() core.Rect {
	return core.NewRect(g.X, g.Y, g.Width, g.Height)
}

// AerialObstacle is a flying obstacle with its own speed and a two-phase
// wing animation that moves its wing hitbox.
type AerialObstacle struct {
	X, Y          float64
	Width, Height float64
	Speed         float64
	WingUp        bool
	WingFrame     int
}

func (*AerialObstacle) obstacle() {}

// Rect returns the visual rectangle.
func (a *AerialObstacle) Rect() core.Rect {
	return core.NewRect(a.X, a.Y, a.Width, a.Height)
}

// SpawnSchedule tracks when the next obstacles may appear.
type SpawnSchedule struct {
	NextGroundSpawnFrame float64
	MinSpawnInterval     float64
	MaxSpawnInterval     float64
	LastAerialSpawnFrame int
	AerialSpawnInterval  int
}

// NewSpawnSchedule returns the schedule at the start of a run.
func NewSpawnSchedule(cfg *config.DinoConfig, rng RandomSource) SpawnSchedule {
	return SpawnSchedule{
		NextGroundSpawnFrame: 0,
		MinSpawnInterval:     cfg.Ground.MinSpawnInterval,
		MaxSpawnInterval:     cfg.Ground.MaxSpawnInterval,
		AerialSpawnInterval:  uniformInt(rng, cfg.Aerial.MinInterval, cfg.Aerial.MaxInterval),
	}
}

// SpawnGround emits a group of cacti once frame reaches the scheduled spawn
// frame. Every spawn tightens both interval bounds down to their floors.
func SpawnGround(frame int, s SpawnSchedule, rng RandomSource, cfg *config.DinoConfig) ([]*GroundObstacle, SpawnSchedule) {
	if float64(frame) < s.NextGroundSpawnFrame {
		return nil, s
	}

	g := cfg.Ground
	group := pick(rng, g.Groups)
	floorY := cfg.Runner.FloorY()

	spawned := make([]*GroundObstacle, 0, group.Count)
	for i := 0; i < group.Count; i++ {
		h := uniform(rng, g.MinHeight, g.MaxHeight)
		spawned = append(spawned, &GroundObstacle{
			X:      cfg.Field.Width + float64(i)*group.Spacing,
			Y:      floorY - h,
			Width:  g.Width,
			Height: h,
			Group:  group.Count,
			Index:  i,
		})
	}

	// Larger groups reserve a longer gap afterward.
	interval := uniform(rng, s.MinSpawnInterval, s.MaxSpawnInterval)
	s.NextGroundSpawnFrame = float64(frame) + interval*(1+float64(group.Count)*g.GroupGapFactor)

	s.MinSpawnInterval = max(g.MinIntervalFloor, s.MinSpawnInterval-g.MinIntervalDecrement)
	s.MaxSpawnInterval = max(g.MaxIntervalFloor, s.MaxSpawnInterval-g.MaxIntervalDecrement)
	// The max bound shrinks faster than the min; never let them cross.
	s.MaxSpawnInterval = max(s.MaxSpawnInterval, s.MinSpawnInterval)

	return spawned, s
}

// SpawnAerial may emit one flying obstacle once score reaches the unlock
// threshold. A random trial gates each eligible frame.
func SpawnAerial(score, frame int, s SpawnSchedule, rng RandomSource, cfg *config.DinoConfig) (*AerialObstacle, SpawnSchedule) {
	a := cfg.Aerial
	if score < a.UnlockScore {
		return nil, s
	}
	if frame-s.LastAerialSpawnFrame <= s.AerialSpawnInterval {
		return nil, s
	}
	if rng.Float64() >= a.SpawnChance {
		return nil, s
	}

	// Altitude is measured from ground level so the bird clears a crouching
	// runner and still catches a jumping one.
	altitude := uniform(rng, a.MinAltitude, a.MaxAltitude)
	bird := &AerialObstacle{
		X:      cfg.Field.Width,
		Y:      cfg.Runner.GroundLevel - altitude,
		Width:  pick(rng, a.Widths),
		Height: a.Height,
		Speed:  pick(rng, a.Speeds),
	}

	s.LastAerialSpawnFrame = frame
	s.AerialSpawnInterval = uniformInt(rng, a.MinInterval, a.MaxInterval)
	return bird, s
}

// AdvanceObstacles moves every obstacle left and drops the ones that are
// fully past the left edge. Cacti move at the scroll speed, birds at their own.
func AdvanceObstacles(obstacles []Obstacle, scrollSpeed float64, wingFlapFrames int) []Obstacle {
	kept := obstacles[:0]
	for _, o := range obstacles {
		switch ob := o.(type) {
		case *GroundObstacle:
			ob.X -= scrollSpeed
		case *AerialObstacle:
			ob.X -= ob.Speed
			ob.WingFrame++
			if ob.WingFrame >= wingFlapFrames {
				ob.WingFrame = 0
				ob.WingUp = !ob.WingUp
			}
		}
		if r := o.Rect(); r.Right() > 0 {
			kept = append(kept, o)
		}
	}
	// Clear the tail so dropped obstacles can be collected.
	for i := len(kept); i < len(obstacles); i++ {
		obstacles[i] = nil
	}
	return kept
}
