package common

import "math"

// SeededRNG implements a Mulberry32 seeded pseudo-random number generator.
// Gameplay draws every random value from one of these so a session can be
// replayed from its seed and a recorded input trace.
type SeededRNG struct {
	state       uint32
	initialSeed uint32
}

// NewSeededRNG creates a new seeded random number generator.
func NewSeededRNG(seed uint32) *SeededRNG {
	return &SeededRNG{
		state:       seed,
		initialSeed: seed,
	}
}

// SetSeed sets a new seed and resets the generator state.
func (r *SeededRNG) SetSeed(seed uint32) {
	r.state = seed
	r.initialSeed = seed
}

// Seed returns the seed the generator was last reset to.
func (r *SeededRNG) Seed() uint32 {
	return r.initialSeed
}

// Reset rewinds the generator to its initial seed.
func (r *SeededRNG) Reset() {
	r.state = r.initialSeed
}

// Float64 returns the next value in [0, 1).
func (r *SeededRNG) Float64() float64 {
	r.state += 0x6D2B79F5
	t := r.state
	t = (t ^ (t >> 15)) * (t | 1)
	t ^= t + (t^(t>>7))*(t|61)
	return float64(t^(t>>14)) / 4294967296.0
}

// Range returns a value in [min, max).
func (r *SeededRNG) Range(min, max float64) float64 {
	return RandRange(r, min, max)
}

// Intn returns an integer in [0, n).
func (r *SeededRNG) Intn(n int) int {
	return int(math.Floor(r.Float64() * float64(n)))
}

// Angle returns a random angle in [0, 2π).
func (r *SeededRNG) Angle() float64 {
	return r.Float64() * math.Pi * 2
}
