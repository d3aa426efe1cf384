package randutil

import (
	rand "math/rand/v2"
	"time"
)

const (
	goldenRatio64 = 0x9e3779b97f4a7c15
)

// New returns a *rand.Rand seeded deterministically from seed. A zero seed
// is replaced with the current time so interactive games differ run to run.
func New(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// Derive returns the seed for the n-th independent stream of base, so that
// parallel workers get reproducible, uncorrelated sequences.
func Derive(base int64, n int) int64 {
	return int64(mix(uint64(base) + uint64(n)*goldenRatio64))
}

// Chance reports true with a probability of percent/100. 0 and 100 are
// certain and don't draw from rng.
func Chance(rng *rand.Rand, percent int) bool {
	switch {
	case percent <= 0:
		return false
	case percent >= 100:
		return true
	}
	return rng.IntN(100) < percent
}

// Coin returns the result of a fair coin flip.
func Coin(rng *rand.Rand) bool {
	return rng.IntN(2) == 0
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
