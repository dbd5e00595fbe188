// Package adapter contains infrastructure adapters for the mangle CLI:
// the seeded random source, sample persistence, and config loading.
package adapter

import "math/rand/v2"

// Rand adapts math/rand/v2 to the mutate.Rand contract. Sessions with
// the same seed replay identical draw sequences.
type Rand struct {
	src *rand.Rand
}

// NewSeededRand constructs a deterministic PCG-backed source.
func NewSeededRand(seed uint64) *Rand {
	return &Rand{src: rand.New(rand.NewPCG(seed, seed^0x9E3779B97F4A7C15))}
}

// IntN returns a uniform int in [0, n).
func (r *Rand) IntN(n int) int {
	return r.src.IntN(n)
}

// Uint64 returns a uniform 64-bit value.
func (r *Rand) Uint64() uint64 {
	return r.src.Uint64()
}

// Float64 returns a uniform float in [0, 1).
func (r *Rand) Float64() float64 {
	return r.src.Float64()
}
