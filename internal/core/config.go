package core

// RuntimeConfig describes the host the simulation is shown on: the terminal
// size, how often the platform calls Tick, and the seed for the run.
type RuntimeConfig struct {
	ScreenW  int   // Terminal columns
	ScreenH  int   // Terminal rows, help bar included
	TickRate int   // Ticks per second driven by the platform clock
	Seed     int64 // 0 asks the platform to pick one from the clock
}

// DefaultConfig returns the config for a standard 80x24 terminal at 60 ticks
// per second.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// Normalized replaces unset or nonsensical fields with their defaults.
func (c RuntimeConfig) Normalized() RuntimeConfig {
	d := DefaultConfig()
	if c.ScreenW <= 0 {
		c.ScreenW = d.ScreenW
	}
	if c.ScreenH <= 0 {
		c.ScreenH = d.ScreenH
	}
	if c.TickRate <= 0 {
		c.TickRate = d.TickRate
	}
	return c
}
