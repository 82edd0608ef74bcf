// Package xorshiftstar implements the xorshift* pseudorandom number generator,
// with the float helpers particle initialization needs.
//
// https://en.wikipedia.org/wiki/Xorshift
package xorshiftstar

import "math/rand"

// Source is a xorshift* random number generator. The zero value is usable but
// always yields the same sequence; prefer New.
type Source struct {
	state uint64
}

var _ rand.Source64 = (*Source)(nil)

// New returns a generator for the given seed.
func New(seed int64) *Source {
	var r Source
	r.Seed(seed)
	return &r
}

// Seed resets the generator state. The state is never zero, since xorshift
// would stay at zero forever.
func (r *Source) Seed(seed int64) {
	r.state = uint64(seed) + 1442695040888963407
	if r.state == 0 {
		r.state = 1
	}
}

// Uint64 returns the next 64 random bits.
func (r *Source) Uint64() uint64 {
	x := r.state
	x ^= x >> 12
	x ^= x << 25
	x ^= x >> 27
	r.state = x
	return x * 2685821657736338717
}

// Int63 returns a non-negative random number.
func (r *Source) Int63() int64 {
	return int64(r.Uint64() >> 1)
}

// Float32 returns a number in [0, 1).
func (r *Source) Float32() float32 {
	return float32(r.Uint64()>>40) / (1 << 24)
}

// Uniform returns a number in [lo, hi).
func (r *Source) Uniform(lo, hi float32) float32 {
	return lo + (hi-lo)*r.Float32()
}
