package dino

import "github.com/vovakirdan/tui-runner/internal/config"

// Cloud is a background cloud drifting at a fraction of the scroll speed.
type Cloud struct {
	X, Y          float64
	Width, Height float64
}

// GroundDot is one speck of ground texture below the floor line.
type GroundDot struct {
	X, Y float64
	Size float64
}

// Scenery holds the cosmetic parallax layers. It draws from its own
// generator so it never shifts the obstacle sequence.
type Scenery struct {
	Clouds         []Cloud
	Dots           []GroundDot
	lastCloudFrame int
	rng            RandomSource
	cfg            *config.DinoConfig
}

// NewScenery scatters the initial ground texture across the field.
func NewScenery(cfg *config.DinoConfig, rng RandomSource) *Scenery {
	s := &Scenery{
		Clouds: make([]Cloud, 0, 4),
		rng:    rng,
		cfg:    cfg,
	}

	sc := cfg.Scenery
	floorY := cfg.Runner.FloorY()
	for x := 0.0; x < cfg.Field.Width; x += sc.DotSpacing {
		if rng.Float64() >= sc.DotDensity {
			continue
		}
		s.Dots = append(s.Dots, GroundDot{
			X:    x + rng.Float64()*sc.DotSpacing,
			Y:    floorY + rng.Float64()*sc.DotBand,
			Size: uniform(rng, sc.DotMinSize, sc.DotMaxSize),
		})
	}
	return s
}

// Update spawns and scrolls clouds and wraps ground dots.
func (s *Scenery) Update(frame int, speed float64) {
	sc := s.cfg.Scenery

	if frame-s.lastCloudFrame > sc.CloudInterval && s.rng.Float64() < sc.CloudChance {
		s.Clouds = append(s.Clouds, Cloud{
			X:      s.cfg.Field.Width,
			Y:      s.rng.Float64() * (s.cfg.Field.Height / 3),
			Width:  uniform(s.rng, sc.CloudMinWidth, sc.CloudMaxWidth),
			Height: uniform(s.rng, sc.CloudMinHeight, sc.CloudMaxHeight),
		})
		s.lastCloudFrame = frame
	}

	cloudSpeed := ParallaxSpeed(speed, s.cfg.Speed.CloudFactor)
	kept := s.Clouds[:0]
	for _, c := range s.Clouds {
		c.X -= cloudSpeed
		if c.X > -c.Width {
			kept = append(kept, c)
		}
	}
	s.Clouds = kept

	dotSpeed := ParallaxSpeed(speed, s.cfg.Speed.GroundFactor)
	floorY := s.cfg.Runner.FloorY()
	for i := range s.Dots {
		d := &s.Dots[i]
		d.X -= dotSpeed
		if d.X < 0 {
			d.X = s.cfg.Field.Width
			d.Y = floorY + s.rng.Float64()*sc.DotBand
			d.Size = uniform(s.rng, sc.DotMinSize, sc.DotMaxSize)
		}
	}
}
