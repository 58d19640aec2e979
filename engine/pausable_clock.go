package engine

import (
	"sync"
	"sync/atomic"
	"time"
)

// PausableClock provides pausable simulation time on top of a real time source
// While paused Now is frozen; on resume it continues from the frozen point
type PausableClock struct {
	mu sync.RWMutex

	real      TimeProvider
	realStart time.Time
	simStart  time.Time

	isPaused    atomic.Bool
	pauseStart  time.Time     // real time of the current pause
	totalPaused time.Duration // cumulative completed pauses
}

// NewPausableClock creates a running clock reading real time from src
// A nil src uses the monotonic system clock
func NewPausableClock(src TimeProvider) *PausableClock {
	if src == nil {
		src = NewMonotonicTimeProvider()
	}
	now := src.Now()
	return &PausableClock{
		real:      src,
		realStart: now,
		simStart:  now,
	}
}

// Now returns current simulation time
func (pc *PausableClock) Now() time.Time {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	if pc.isPaused.Load() {
		return pc.simStart.Add(pc.pauseStart.Sub(pc.realStart) - pc.totalPaused)
	}
	return pc.simStart.Add(pc.real.Now().Sub(pc.realStart) - pc.totalPaused)
}

// RealTime returns the underlying real time, unaffected by pause
func (pc *PausableClock) RealTime() time.Time {
	return pc.real.Now()
}

// Pause stops simulation time advancement
func (pc *PausableClock) Pause() {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	if pc.isPaused.CompareAndSwap(false, true) {
		pc.pauseStart = pc.real.Now()
	}
}

// Resume continues simulation time advancement
func (pc *PausableClock) Resume() {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	if pc.isPaused.CompareAndSwap(true, false) {
		pc.totalPaused += pc.real.Now().Sub(pc.pauseStart)
		pc.pauseStart = time.Time{}
	}
}

// Toggle flips the pause state and returns the new state
func (pc *PausableClock) Toggle() bool {
	if pc.IsPaused() {
		pc.Resume()
		return false
	}
	pc.Pause()
	return true
}

// IsPaused returns current pause state
func (pc *PausableClock) IsPaused() bool {
	return pc.isPaused.Load()
}

// TotalPauseDuration returns cumulative pause time including the current pause
func (pc *PausableClock) TotalPauseDuration() time.Duration {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	total := pc.totalPaused
	if pc.isPaused.Load() {
		total += pc.real.Now().Sub(pc.pauseStart)
	}
	return total
}
