package game

import (
	"math/rand/v2"
	"time"
)

const goldenRatio64 = 0x9e3779b97f4a7c15

// NewRand returns a generator seeded from seed, or from the wall clock when
// seed is 0. Equal non-zero seeds give equal shuffles.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// mix is the splitmix64 finalizer.
func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
