package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// NewTickRNG creates an RNG whose stream is a pure function of (seed, tick),
// so replaying a tick over the same grid reproduces every draw.
func NewTickRNG(seed int64, tick uint64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), tick))}
}

// Bool returns a random boolean value.
func (r *RNG) Bool() bool {
	return r.r.IntN(2) == 1
}

// IntN returns a random int in [0, n).
func (r *RNG) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return r.r.IntN(n)
}

// Float64 returns a random float64 in [0, 1).
func (r *RNG) Float64() float64 { return r.r.Float64() }

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }

// Hash2 mixes two ints plus a salt into a uint64 using splitmix64 finalizer
// steps. The same inputs always yield the same value, independent of any RNG
// stream; used for per-row scan bias and per-cell color jitter.
func Hash2(salt uint64, a, b int) uint64 {
	z := salt ^ (uint64(uint32(a)) | uint64(uint32(b))<<32)
	z += 0x9e3779b97f4a7c15
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}
