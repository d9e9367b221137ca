package vmath

import "time"

// Abs returns the absolute value of v.
func Abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// Clamp limits v to the inclusive range [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// FastRand is a xorshift64 pseudo-random generator. Deterministic under
// seeding and cheap enough for per-tick use; not cryptographically
// secure and not safe for concurrent use, so each owner keeps its own
// instance.
type FastRand struct {
	state uint64
}

// NewFastRand creates a generator. A zero seed is replaced with the
// current time so the zero value never degenerates into a constant
// stream.
func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano()) | 1
	}
	return &FastRand{state: seed}
}

// Next returns the next raw 64-bit value.
func (r *FastRand) Next() uint64 {
	r.state ^= r.state << 13
	r.state ^= r.state >> 7
	r.state ^= r.state << 17
	return r.state
}

// Intn returns a value in [0, n). n must be positive.
func (r *FastRand) Intn(n int) int {
	return int(r.Next() % uint64(n))
}

// IntRange returns a value in [lo, hi). hi must exceed lo.
func (r *FastRand) IntRange(lo, hi int) int {
	return lo + r.Intn(hi-lo)
}

// Float64 returns a value in [0, 1).
func (r *FastRand) Float64() float64 {
	return float64(r.Next()>>11) / (1 << 53)
}

// FloatRange returns a value in [lo, hi).
func (r *FastRand) FloatRange(lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}
