package status

import "sync/atomic"

// Registry groups the process metrics by kind. Producers resolve
// their pointers once at startup and write from hot loops without
// further lookups; readers walk the maps on demand.
type Registry struct {
	// Counters are monotonic or windowed int64 tallies.
	Counters *MetricMap[atomic.Int64]

	// Gauges are point-in-time float64 readings.
	Gauges *MetricMap[AtomicFloat]

	// Labels are short state strings.
	Labels *MetricMap[AtomicString]

	// Flags are boolean switches.
	Flags *MetricMap[atomic.Bool]
}

func NewRegistry() *Registry {
	return &Registry{
		Counters: NewMetricMap[atomic.Int64](),
		Gauges:   NewMetricMap[AtomicFloat](),
		Labels:   NewMetricMap[AtomicString](),
		Flags:    NewMetricMap[atomic.Bool](),
	}
}

// TotalCount returns the number of metrics across all kinds.
func (r *Registry) TotalCount() int {
	return r.Counters.Count() + r.Gauges.Count() + r.Labels.Count() + r.Flags.Count()
}
