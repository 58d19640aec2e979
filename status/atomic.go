package status

import (
	"math"
	"sync/atomic"
)

// MaxStringLen bounds AtomicString values, long enough for a compound trick name
const MaxStringLen = 48

// AtomicFloat is a float64 stored as its IEEE bits; the zero value reads 0.0
type AtomicFloat struct {
	bits atomic.Uint64
}

func (f *AtomicFloat) Store(v float64) { f.bits.Store(math.Float64bits(v)) }

func (f *AtomicFloat) Load() float64 { return math.Float64frombits(f.bits.Load()) }

// Add adds delta and returns the new value
func (f *AtomicFloat) Add(delta float64) float64 {
	return f.update(func(cur float64) (float64, bool) { return cur + delta, true })
}

// StoreMax raises the value to v if v is larger, returning the resulting value
func (f *AtomicFloat) StoreMax(v float64) float64 {
	return f.update(func(cur float64) (float64, bool) { return v, v > cur })
}

// update applies fn in a CAS loop; fn returning false leaves the value untouched
func (f *AtomicFloat) update(fn func(cur float64) (float64, bool)) float64 {
	for {
		old := f.bits.Load()
		cur := math.Float64frombits(old)
		next, ok := fn(cur)
		if !ok {
			return cur
		}
		if f.bits.CompareAndSwap(old, math.Float64bits(next)) {
			return next
		}
	}
}

// AtomicString holds a string truncated to MaxStringLen bytes; the zero value reads ""
type AtomicString struct {
	ptr atomic.Pointer[string]
}

func (s *AtomicString) Store(v string) {
	if len(v) > MaxStringLen {
		v = v[:MaxStringLen]
	}
	s.ptr.Store(&v)
}

func (s *AtomicString) Load() string {
	if p := s.ptr.Load(); p != nil {
		return *p
	}
	return ""
}
