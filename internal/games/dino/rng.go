package dino

import "math/rand"

// RandomSource is the uniform generator used by the spawners.
// *rand.Rand satisfies it; tests can substitute a scripted source.
type RandomSource interface {
	Float64() float64
	Intn(n int) int
}

// NewRandomSource returns a seeded generator.
func NewRandomSource(seed int64) RandomSource {
	return rand.New(rand.NewSource(seed))
}

// uniform draws from [min, max). Equal bounds return min.
func uniform(rng RandomSource, min, max float64) float64 {
	if max <= min {
		return min
	}
	return min + rng.Float64()*(max-min)
}

// uniformInt draws from [min, max] inclusive.
func uniformInt(rng RandomSource, min, max int) int {
	if max <= min {
		return min
	}
	return min + rng.Intn(max-min+1)
}

// pick returns a random element of a non-empty slice.
func pick[T any](rng RandomSource, items []T) T {
	return items[rng.Intn(len(items))]
}
