package core

import "math/rand/v2"

// RNG wraps math/rand/v2 so simulations can be reseeded for reproducible starts.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Seed resets the generator state as if it had been created with seed.
func (r *RNG) Seed(seed int64) {
	r.r = rand.New(rand.NewPCG(uint64(seed), 0))
}

// Bool returns a random boolean value with even odds.
func (r *RNG) Bool() bool {
	return r.r.IntN(2) == 1
}

// FillBool overwrites every entry of buf with an independent coin flip.
func (r *RNG) FillBool(buf []bool) {
	for i := range buf {
		buf[i] = r.Bool()
	}
}
