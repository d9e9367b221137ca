package engine

import (
	"sync"
	"sync/atomic"

	"github.com/lixenwraith/orb-arena/physics"
)

// Registry is the copy-on-write body list. Every mutation copies the
// backing slice and publishes the new one atomically, so readers
// iterate a consistent snapshot without locking while writers stay
// serialized behind the mutex. Mutations are rare (spawns, removals)
// next to the per-tick reads, which is the trade the copy pays for.
//
// The list structure is safe to read from any goroutine; the kinetic
// fields of the bodies inside it are engine-owned. External consumers
// read body state through the engine's published Snapshot instead.
type Registry struct {
	mu     sync.Mutex
	bodies atomic.Pointer[[]*physics.Body]
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	r := &Registry{}
	empty := make([]*physics.Body, 0)
	r.bodies.Store(&empty)
	return r
}

// Snapshot returns the current body list. Callers must not modify it.
func (r *Registry) Snapshot() []*physics.Body {
	return *r.bodies.Load()
}

// Len returns the current body count.
func (r *Registry) Len() int {
	return len(*r.bodies.Load())
}

// Append publishes a new list with the given bodies added at the tail.
func (r *Registry) Append(bodies ...*physics.Body) {
	if len(bodies) == 0 {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	cur := *r.bodies.Load()
	next := make([]*physics.Body, 0, len(cur)+len(bodies))
	next = append(next, cur...)
	next = append(next, bodies...)
	r.bodies.Store(&next)
}

// Remove unlinks a specific body. Returns true if it was present.
func (r *Registry) Remove(b *physics.Body) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	cur := *r.bodies.Load()
	for i, cand := range cur {
		if cand == b {
			next := make([]*physics.Body, 0, len(cur)-1)
			next = append(next, cur[:i]...)
			next = append(next, cur[i+1:]...)
			r.bodies.Store(&next)
			return true
		}
	}
	return false
}

// RemoveLastPassive unlinks the most recently added passive body and
// returns it, or nil when only controlled bodies (or nothing) remain.
func (r *Registry) RemoveLastPassive() *physics.Body {
	r.mu.Lock()
	defer r.mu.Unlock()

	cur := *r.bodies.Load()
	for i := len(cur) - 1; i >= 0; i-- {
		if cur[i].Controlled() {
			continue
		}
		removed := cur[i]
		next := make([]*physics.Body, 0, len(cur)-1)
		next = append(next, cur[:i]...)
		next = append(next, cur[i+1:]...)
		r.bodies.Store(&next)
		return removed
	}
	return nil
}

// RemoveWhere unlinks every body matching pred and returns the removed
// bodies in list order. Publishes nothing when no body matches.
func (r *Registry) RemoveWhere(pred func(*physics.Body) bool) []*physics.Body {
	r.mu.Lock()
	defer r.mu.Unlock()

	cur := *r.bodies.Load()
	var removed []*physics.Body
	var kept []*physics.Body
	for _, b := range cur {
		if pred(b) {
			removed = append(removed, b)
		} else {
			kept = append(kept, b)
		}
	}
	if len(removed) == 0 {
		return nil
	}
	if kept == nil {
		kept = make([]*physics.Body, 0)
	}
	r.bodies.Store(&kept)
	return removed
}

// Clear empties the list and returns the previous contents.
func (r *Registry) Clear() []*physics.Body {
	r.mu.Lock()
	defer r.mu.Unlock()

	cur := *r.bodies.Load()
	empty := make([]*physics.Body, 0)
	r.bodies.Store(&empty)
	return cur
}
