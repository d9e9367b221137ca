package status

import "sync/atomic"

// AtomicString is a string with atomic replace and read. The zero
// value reads as the empty string.
type AtomicString struct {
	p atomic.Pointer[string]
}

// Store atomically replaces the value.
func (s *AtomicString) Store(val string) {
	s.p.Store(&val)
}

// Load atomically reads the value.
func (s *AtomicString) Load() string {
	if p := s.p.Load(); p != nil {
		return *p
	}
	return ""
}
