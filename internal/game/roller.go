package game

import "math/rand/v2"

// Roller supplies the randomness behind draws and generated rewards.
type Roller interface {
	// Roll returns a uniform value in [0, 100).
	Roll() float64
	// Between returns a uniform integer in [lo, hi].
	Between(lo, hi int64) int64
}

type mathRoller struct{}

// NewRoller returns the default Roller backed by math/rand/v2.
func NewRoller() Roller {
	return mathRoller{}
}

func (mathRoller) Roll() float64 {
	return rand.Float64() * 100 //nolint:gosec // Game logic randomness, not security critical
}

func (mathRoller) Between(lo, hi int64) int64 {
	if lo >= hi {
		return lo
	}
	return lo + rand.Int64N(hi-lo+1) //nolint:gosec // Game logic randomness, not security critical
}
