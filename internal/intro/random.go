package intro

import (
	"math"
	"math/rand"
	"time"
)

// Random is the jitter source used by the scribble renderer.
type Random interface {
	Float64() float64
}

// NewRandom returns a seeded source. A zero seed draws one from the clock.
func NewRandom(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// snoise is a cheap two-phase sine sum in [-1, 1].
func snoise(a, b float64) float64 {
	return math.Sin(a)*0.5 + math.Sin(b)*0.5
}
