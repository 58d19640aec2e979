package status

import (
	"slices"
	"sync"
	"sync/atomic"
)

// MetricMap hands out one stable *T per key
// Callers cache the pointer at registration and write through it without touching the map again
type MetricMap[T any] struct {
	items sync.Map // string -> *T
	count atomic.Int64
}

// NewMetricMap creates an empty MetricMap
func NewMetricMap[T any]() *MetricMap[T] {
	return &MetricMap[T]{}
}

// Get returns the metric for key, allocating it on first use
func (m *MetricMap[T]) Get(key string) *T {
	if p, ok := m.items.Load(key); ok {
		return p.(*T)
	}
	p, loaded := m.items.LoadOrStore(key, new(T))
	if !loaded {
		m.count.Add(1)
	}
	return p.(*T)
}

// Has reports whether key was ever registered
func (m *MetricMap[T]) Has(key string) bool {
	_, ok := m.items.Load(key)
	return ok
}

// Keys returns the registered keys, sorted
func (m *MetricMap[T]) Keys() []string {
	var keys []string
	m.items.Range(func(k, _ any) bool {
		keys = append(keys, k.(string))
		return true
	})
	slices.Sort(keys)
	return keys
}

// Range calls fn for every metric in key order
func (m *MetricMap[T]) Range(fn func(key string, ptr *T)) {
	for _, k := range m.Keys() {
		p, _ := m.items.Load(k)
		fn(k, p.(*T))
	}
}

// Count returns the number of registered metrics
func (m *MetricMap[T]) Count() int {
	return int(m.count.Load())
}
