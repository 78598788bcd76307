// Package config provides YAML-based configuration loading, validation and
// difficulty presets for the runner.
package config

// DinoConfig contains every tuning constant of the runner simulation.
// Distances are in field units and rates are per tick.
type DinoConfig struct {
	Field    FieldConfig   `yaml:"field"`
	Physics  PhysicsConfig `yaml:"physics"`
	Runner   RunnerConfig  `yaml:"runner"`
	Hitboxes HitboxConfig  `yaml:"hitboxes"`
	Ground   GroundConfig  `yaml:"ground"`
	Aerial   AerialConfig  `yaml:"aerial"`
	Speed    SpeedConfig   `yaml:"speed"`
	Scenery  SceneryConfig `yaml:"scenery"`
}

// FieldConfig defines the size of the visible play field.
type FieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PhysicsConfig defines the runner's jump physics.
type PhysicsConfig struct {
	Gravity               float64 `yaml:"gravity"`
	MaxJumpSpeed          float64 `yaml:"max_jump_speed"` // Launch velocity (negative = up)
	MinJumpSpeed          float64 `yaml:"min_jump_speed"` // Ceiling applied on early release
	HeldGravityMultiplier float64 `yaml:"held_gravity_multiplier"`
	JumpBarSmoothing      float64 `yaml:"jump_bar_smoothing"`
}

// RunnerConfig defines the runner's placement and its two poses.
type RunnerConfig struct {
	X            float64 `yaml:"x"`
	GroundLevel  float64 `yaml:"ground_level"` // Resting top Y while standing
	StandWidth   float64 `yaml:"stand_width"`
	StandHeight  float64 `yaml:"stand_height"`
	CrouchWidth  float64 `yaml:"crouch_width"`
	CrouchHeight float64 `yaml:"crouch_height"`
}

// FloorY returns the Y of the line the runner's feet rest on.
func (r RunnerConfig) FloorY() float64 {
	return r.GroundLevel + r.StandHeight
}

// Box is a hitbox expressed as fractions of an entity's visual rectangle.
type Box struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

// HitboxConfig defines the collidable parts of every entity.
type HitboxConfig struct {
	RunnerBody         Box `yaml:"runner_body"`
	RunnerHeadStanding Box `yaml:"runner_head_standing"`
	RunnerHeadDucking  Box `yaml:"runner_head_ducking"`
	Ground             Box `yaml:"ground"`
	AerialBody         Box `yaml:"aerial_body"`
	AerialHead         Box `yaml:"aerial_head"`
	AerialWingUp       Box `yaml:"aerial_wing_up"`
	AerialWingDown     Box `yaml:"aerial_wing_down"`
}

// GroupConfig is one ground-obstacle group layout.
type GroupConfig struct {
	Count   int     `yaml:"count"`
	Spacing float64 `yaml:"spacing"`
}

// GroundConfig defines ground obstacle generation.
type GroundConfig struct {
	Width                float64       `yaml:"width"`
	MinHeight            float64       `yaml:"min_height"`
	MaxHeight            float64       `yaml:"max_height"`
	Groups               []GroupConfig `yaml:"groups"`
	GroupGapFactor       float64       `yaml:"group_gap_factor"`
	MinSpawnInterval     float64       `yaml:"min_spawn_interval"`
	MaxSpawnInterval     float64       `yaml:"max_spawn_interval"`
	MinIntervalFloor     float64       `yaml:"min_interval_floor"`
	MaxIntervalFloor     float64       `yaml:"max_interval_floor"`
	MinIntervalDecrement float64       `yaml:"min_interval_decrement"`
	MaxIntervalDecrement float64       `yaml:"max_interval_decrement"`
}

// AerialConfig defines flying obstacle generation.
type AerialConfig struct {
	UnlockScore    int       `yaml:"unlock_score"`
	SpawnChance    float64   `yaml:"spawn_chance"`
	MinInterval    int       `yaml:"min_interval"`
	MaxInterval    int       `yaml:"max_interval"`
	Height         float64   `yaml:"height"`
	MinAltitude    float64   `yaml:"min_altitude"` // Top Y offset above ground level
	MaxAltitude    float64   `yaml:"max_altitude"`
	Speeds         []float64 `yaml:"speeds"`
	Widths         []float64 `yaml:"widths"`
	WingFlapFrames int       `yaml:"wing_flap_frames"`
}

// SpeedConfig defines the stepwise scroll speed ramp and parallax factors.
type SpeedConfig struct {
	Base              float64 `yaml:"base"`
	IncrementInterval float64 `yaml:"increment_interval"`
	IncrementAmount   float64 `yaml:"increment_amount"`
	CloudFactor       float64 `yaml:"cloud_factor"`
	GroundFactor      float64 `yaml:"ground_factor"`
}

// SceneryConfig defines the cosmetic clouds and ground texture.
type SceneryConfig struct {
	CloudInterval  int     `yaml:"cloud_interval"`
	CloudChance    float64 `yaml:"cloud_chance"`
	CloudMinWidth  float64 `yaml:"cloud_min_width"`
	CloudMaxWidth  float64 `yaml:"cloud_max_width"`
	CloudMinHeight float64 `yaml:"cloud_min_height"`
	CloudMaxHeight float64 `yaml:"cloud_max_height"`
	DotSpacing     float64 `yaml:"dot_spacing"`
	DotDensity     float64 `yaml:"dot_density"`
	DotBand        float64 `yaml:"dot_band"` // Depth below the floor line
	DotMinSize     float64 `yaml:"dot_min_size"`
	DotMaxSize     float64 `yaml:"dot_max_size"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI string to a preset. Unknown values return "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}
