package status

import "sync/atomic"

// Registry is the central metrics facade
// Systems cache pointers at construction; Update loops write straight to the atomics
type Registry struct {
	Ints   *MetricMap[atomic.Int64]
	Floats *MetricMap[AtomicFloat]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Ints:   NewMetricMap[atomic.Int64](),
		Floats: NewMetricMap[AtomicFloat](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Ints.Count() + r.Floats.Count()
}

// Snapshot copies current values into plain maps, keyed by metric name
func (r *Registry) Snapshot() (ints map[string]int64, floats map[string]float64) {
	ints = make(map[string]int64, r.Ints.Count())
	floats = make(map[string]float64, r.Floats.Count())
	r.Ints.Range(func(key string, ptr *atomic.Int64) {
		ints[key] = ptr.Load()
	})
	r.Floats.Range(func(key string, ptr *AtomicFloat) {
		floats[key] = ptr.Get()
	})
	return ints, floats
}
