package status

import (
	"slices"
	"sync"
)

// MetricMap holds named metrics of one atomic type. Lookup takes the
// lock; the returned pointer is stable for the process lifetime, so
// hot paths resolve their metrics once and write lock-free after.
type MetricMap[T any] struct {
	mu   sync.RWMutex
	vals map[string]*T
}

func NewMetricMap[T any]() *MetricMap[T] {
	return &MetricMap[T]{vals: make(map[string]*T)}
}

// Get returns the metric named key, allocating it on first use.
func (m *MetricMap[T]) Get(key string) *T {
	m.mu.RLock()
	ptr := m.vals[key]
	m.mu.RUnlock()
	if ptr != nil {
		return ptr
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if ptr = m.vals[key]; ptr != nil {
		return ptr
	}
	ptr = new(T)
	m.vals[key] = ptr
	return ptr
}

// Has reports whether key was ever requested.
func (m *MetricMap[T]) Has(key string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.vals[key]
	return ok
}

// Range calls fn for every metric in ascending key order.
func (m *MetricMap[T]) Range(fn func(key string, ptr *T)) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	keys := make([]string, 0, len(m.vals))
	for k := range m.vals {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	for _, k := range keys {
		fn(k, m.vals[k])
	}
}

// Count returns the number of distinct metrics.
func (m *MetricMap[T]) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.vals)
}
