package montecarlo

import "math/rand"

// Source is the uniform-draw capability the estimator samples from.
// Modeling randomness as an injected interface rather than ambient
// global state keeps seeding and replay fully caller-controlled: one
// Source per estimation call, never shared across concurrent runs.
type Source interface {
	// Float64 returns a uniform draw in [0, 1)
	Float64() float64
}

// NewSource returns the default Source for a seed, backed by math/rand.
// The same seed always yields the same draw sequence.
func NewSource(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}
