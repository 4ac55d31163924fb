package seqs

import (
	"math/rand/v2"
)

// Rand is the randomness source consumed by the draw generators.
// *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	Uint64() uint64
	Uint64N(n uint64) uint64
}

// globalRand forwards to the process-wide math/rand/v2 generator.
type globalRand struct{}

func (globalRand) Uint64() uint64          { return rand.Uint64() }
func (globalRand) Uint64N(n uint64) uint64 { return rand.Uint64N(n) }

// NewSeededRand returns a deterministic source, useful for reproducible draws.
func NewSeededRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func orGlobal(rng Rand) Rand {
	if rng == nil {
		return globalRand{}
	}
	return rng
}

// span returns the number of integers in [lo, hi] minus one.
// Unsigned arithmetic keeps it exact for any lo <= hi.
func span(lo, hi int) uint64 {
	return uint64(hi) - uint64(lo)
}

// intIn draws a uniform integer from [lo, hi]. Caller guarantees lo <= hi.
func intIn(rng Rand, lo, hi int) int {
	s := span(lo, hi)
	if s == ^uint64(0) {
		// whole int range
		return int(rng.Uint64())
	}
	return int(uint64(lo) + rng.Uint64N(s+1))
}
