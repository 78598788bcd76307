package config

import (
	_ "embed"
)

//go:embed defaults/dino.yaml
var defaultDinoYAML []byte

// DefaultDinoConfig returns the default runner configuration.
// It mirrors defaults/dino.yaml and is used when the embedded file cannot be parsed.
func DefaultDinoConfig() DinoConfig {
	return DinoConfig{
		Field: FieldConfig{
			Width:  800,
			Height: 300,
		},
		Physics: PhysicsConfig{
			Gravity:               1.2,
			MaxJumpSpeed:          -15,
			MinJumpSpeed:          -10,
			HeldGravityMultiplier: 0.6,
			JumpBarSmoothing:      0.2,
		},
		Runner: RunnerConfig{
			X:            50,
			GroundLevel:  240,
			StandWidth:   30,
			StandHeight:  40,
			CrouchWidth:  40,
			CrouchHeight: 25,
		},
		Hitboxes: HitboxConfig{
			RunnerBody:         Box{X: 0.2, Y: 0.1, W: 0.6, H: 0.8},
			RunnerHeadStanding: Box{X: 0.6, Y: 0.0, W: 0.45, H: 0.3},
			RunnerHeadDucking:  Box{X: 0.7, Y: 0.1, W: 0.35, H: 0.4},
			Ground:             Box{X: 0.1, Y: 0.1, W: 0.8, H: 0.8},
			AerialBody:         Box{X: 0.2, Y: 0.3, W: 0.6, H: 0.4},
			AerialHead:         Box{X: 0.0, Y: 0.2, W: 0.25, H: 0.35},
			AerialWingUp:       Box{X: 0.35, Y: -0.3, W: 0.3, H: 0.4},
			AerialWingDown:     Box{X: 0.35, Y: 0.6, W: 0.3, H: 0.4},
		},
		Ground: GroundConfig{
			Width:     20,
			MinHeight: 30,
			MaxHeight: 60,
			Groups: []GroupConfig{
				{Count: 1, Spacing: 0},
				{Count: 2, Spacing: 25},
				{Count: 3, Spacing: 23},
				{Count: 4, Spacing: 22},
			},
			GroupGapFactor:       0.5,
			MinSpawnInterval:     40,
			MaxSpawnInterval:     100,
			MinIntervalFloor:     30,
			MaxIntervalFloor:     60,
			MinIntervalDecrement: 0.1,
			MaxIntervalDecrement: 0.2,
		},
		Aerial: AerialConfig{
			UnlockScore:    1000,
			SpawnChance:    0.5,
			MinInterval:    100,
			MaxInterval:    200,
			Height:         20,
			MinAltitude:    15,
			MaxAltitude:    45,
			Speeds:         []float64{5, 6, 7, 8},
			Widths:         []float64{30, 36, 42},
			WingFlapFrames: 10,
		},
		Speed: SpeedConfig{
			Base:              5,
			IncrementInterval: 500,
			IncrementAmount:   0.5,
			CloudFactor:       0.33,
			GroundFactor:      0.5,
		},
		Scenery: SceneryConfig{
			CloudInterval:  200,
			CloudChance:    0.3,
			CloudMinWidth:  40,
			CloudMaxWidth:  100,
			CloudMinHeight: 15,
			CloudMaxHeight: 35,
			DotSpacing:     4,
			DotDensity:     0.3,
			DotBand:        20,
			DotMinSize:     1,
			DotMaxSize:     3,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultDinoYAML
}
