package engine

import (
	"context"
	"sync/atomic"
	"time"
)

// Stepper advances a simulation by one fixed step
type Stepper interface {
	Step()
}

// Scheduler converts elapsed clock time into whole fixed steps
// Leftover time carries to the next Advance; a stall longer than the catch-up cap is dropped
type Scheduler struct {
	target   Stepper
	clock    TimeProvider
	step     time.Duration
	maxSteps int

	last        time.Time
	accumulator time.Duration

	steps   atomic.Int64
	dropped atomic.Int64 // steps skipped by the catch-up cap
}

// NewScheduler creates a scheduler stepping target every step of clock time
// maxSteps <= 0 disables the catch-up cap
func NewScheduler(target Stepper, clock TimeProvider, step time.Duration, maxSteps int) *Scheduler {
	return &Scheduler{
		target:   target,
		clock:    clock,
		step:     step,
		maxSteps: maxSteps,
		last:     clock.Now(),
	}
}

// Advance runs every whole step elapsed since the previous call and returns the count
func (s *Scheduler) Advance() int {
	now := s.clock.Now()
	elapsed := now.Sub(s.last)
	s.last = now
	if elapsed <= 0 || s.step <= 0 {
		return 0
	}

	s.accumulator += elapsed
	n := int(s.accumulator / s.step)
	s.accumulator -= time.Duration(n) * s.step

	if s.maxSteps > 0 && n > s.maxSteps {
		s.dropped.Add(int64(n - s.maxSteps))
		n = s.maxSteps
	}

	for i := 0; i < n; i++ {
		s.target.Step()
	}
	s.steps.Add(int64(n))
	return n
}

// Resync discards accumulated time, used after a pause on a non-pausable clock
func (s *Scheduler) Resync() {
	s.last = s.clock.Now()
	s.accumulator = 0
}

// Alpha returns the fraction of a step carried in the accumulator, for render interpolation
func (s *Scheduler) Alpha() float64 {
	if s.step <= 0 {
		return 0
	}
	return float64(s.accumulator) / float64(s.step)
}

// Steps returns the total steps run
func (s *Scheduler) Steps() int64 { return s.steps.Load() }

// Dropped returns the total steps skipped by the catch-up cap
func (s *Scheduler) Dropped() int64 { return s.dropped.Load() }

// Run advances on every frame tick until ctx is done, calling onFrame after each advance
// onFrame may be nil. Returns ctx.Err()
func (s *Scheduler) Run(ctx context.Context, frame time.Duration, onFrame func(steps int)) error {
	ticker := time.NewTicker(frame)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			n := s.Advance()
			if onFrame != nil {
				onFrame(n)
			}
		}
	}
}
