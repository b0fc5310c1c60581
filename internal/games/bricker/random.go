package bricker

import (
	"math/rand/v2"
	"time"
)

// Random is the source of randomness for strategy selection, puck angles and ball respawn.
type Random interface {
	IntN(n int) int
	Float64() float64
}

// NewRandom returns a PCG-backed Random. A zero seed uses the current time.
func NewRandom(seed int64) Random {
	s := uint64(seed) //#nosec G115 -- intentional conversion for RNG seeding
	if s == 0 {
		s = uint64(time.Now().UnixNano()) //#nosec G115 -- time is positive
	}
	return rand.New(rand.NewPCG(s, s^0x9e3779b97f4a7c15))
}
