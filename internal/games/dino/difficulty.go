package dino

import "math"

// CurrentSpeed is the scroll speed for a score. It steps up by amount every
// interval points instead of growing continuously.
func CurrentSpeed(score int, baseSpeed, incrementInterval, incrementAmount float64) float64 {
	if incrementInterval <= 0 {
		return baseSpeed
	}
	return baseSpeed + math.Floor(float64(score)/incrementInterval)*incrementAmount
}

// ParallaxSpeed scales the scroll speed for a background layer.
func ParallaxSpeed(speed, factor float64) float64 {
	return speed * factor
}
