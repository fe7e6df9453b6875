package engine

import "math/rand"

// Roller is the randomness seam. Battle variance, loot drops and
// skill-learning rolls all go through it so tests can pin outcomes.
type Roller interface {
	// IntN returns a uniform int in [0, n); n must be positive.
	IntN(n int) int
	// Float64 returns a uniform float in [0, 1).
	Float64() float64
}

type systemRoller struct{}

func (systemRoller) IntN(n int) int   { return rand.Intn(n) }
func (systemRoller) Float64() float64 { return rand.Float64() }
