package status

import (
	"math"
	"sync/atomic"
)

// AtomicFloat is a float64 with atomic access, held as raw bits.
// The zero value reads as 0.
type AtomicFloat struct {
	v atomic.Uint64
}

// Store atomically replaces the value.
func (f *AtomicFloat) Store(x float64) {
	f.v.Store(math.Float64bits(x))
}

// Load atomically reads the value.
func (f *AtomicFloat) Load() float64 {
	return math.Float64frombits(f.v.Load())
}

// Add atomically adds delta and returns the result, retrying on a
// compare-and-swap loop under contention.
func (f *AtomicFloat) Add(delta float64) float64 {
	for {
		old := f.v.Load()
		next := math.Float64frombits(old) + delta
		if f.v.CompareAndSwap(old, math.Float64bits(next)) {
			return next
		}
	}
}
