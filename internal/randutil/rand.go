// Package randutil builds the seeded random generators injected into decks,
// bots and simulations.
package randutil

import (
	rand "math/rand/v2"
	"time"
)

const goldenRatio64 = 0x9e3779b97f4a7c15

// New returns a *rand.Rand seeded deterministically from seed. Both PCG
// words are derived from the one seed so every call site gets reproducible
// sequences.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(splitmix(u), splitmix(u+goldenRatio64)))
}

// NewTimeSeeded returns a generator seeded from the wall clock, for
// interactive runs where reproducibility is not needed.
func NewTimeSeeded() *rand.Rand {
	return New(time.Now().UnixNano())
}

// Derive returns a child seed for stream i of a parent seed, so that
// independent tables of one simulation never share a sequence.
func Derive(seed int64, i int) int64 {
	return int64(splitmix(uint64(seed) + uint64(i)*goldenRatio64))
}

func splitmix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
