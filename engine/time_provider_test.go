package engine

import (
	"testing"
	"time"
)

func TestMonotonicTimeProvider(t *testing.T) {
	provider := NewMonotonicTimeProvider()

	t1 := provider.Now()
	time.Sleep(10 * time.Millisecond)
	t2 := provider.Now()

	if !t2.After(t1) {
		t.Errorf("Expected t2 to be after t1, but got t1=%v, t2=%v", t1, t2)
	}

	// Check that the time has a monotonic component
	// In Go, time.Now() includes a monotonic clock reading by default
	diff := t2.Sub(t1)
	if diff < 10*time.Millisecond {
		t.Errorf("Expected at least 10ms difference, got %v", diff)
	}
}

func TestManualClock(t *testing.T) {
	startTime := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	mock := NewManualClock(startTime)

	// Test initial time
	now := mock.Now()
	if !now.Equal(startTime) {
		t.Errorf("Expected initial time to be %v, got %v", startTime, now)
	}

	// Test Set
	newTime := time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)
	mock.Set(newTime)
	now = mock.Now()
	if !now.Equal(newTime) {
		t.Errorf("Expected time to be %v after Set, got %v", newTime, now)
	}

	// Test Advance
	mock.Advance(1 * time.Hour)
	now = mock.Now()
	expected := newTime.Add(1 * time.Hour)
	if !now.Equal(expected) {
		t.Errorf("Expected time to be %v after Advance, got %v", expected, now)
	}

	// Test multiple advances
	mock.Advance(30 * time.Minute)
	mock.Advance(15 * time.Minute)
	now = mock.Now()
	expected = newTime.Add(1*time.Hour + 30*time.Minute + 15*time.Minute)
	if !now.Equal(expected) {
		t.Errorf("Expected time to be %v after multiple advances, got %v", expected, now)
	}
}

func TestManualClockConcurrency(t *testing.T) {
	startTime := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	mock := NewManualClock(startTime)

	// Test concurrent reads and writes
	done := make(chan bool)

	// Multiple readers
	for i := 0; i < 10; i++ {
		go func() {
			for j := 0; j < 100; j++ {
				_ = mock.Now()
			}
			done <- true
		}()
	}

	// Multiple writers
	for i := 0; i < 5; i++ {
		go func() {
			for j := 0; j < 50; j++ {
				mock.Advance(1 * time.Millisecond)
			}
			done <- true
		}()
	}

	// Wait for all goroutines to complete
	for i := 0; i < 15; i++ {
		<-done
	}

	// Verify the time advanced by 5 * 50 * 1ms = 250ms
	expected := startTime.Add(250 * time.Millisecond)
	now := mock.Now()
	if !now.Equal(expected) {
		t.Errorf("Expected time to be %v after concurrent operations, got %v", expected, now)
	}
}

func TestTimeProviderInterface(t *testing.T) {
	var _ TimeProvider = &MonotonicTimeProvider{}
	var _ TimeProvider = &ManualClock{}
	var _ TimeProvider = &PausableClock{}
}

func TestPausableClockFreezesWhilePaused(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	src := NewManualClock(start)
	pc := NewPausableClock(src)

	src.Advance(100 * time.Millisecond)
	if got := pc.Now().Sub(start); got != 100*time.Millisecond {
		t.Fatalf("Expected 100ms of sim time, got %v", got)
	}

	if !pc.Toggle() {
		t.Fatal("Expected Toggle to pause")
	}
	src.Advance(time.Second)
	if got := pc.Now().Sub(start); got != 100*time.Millisecond {
		t.Errorf("Expected sim time frozen at 100ms, got %v", got)
	}
	if got := pc.TotalPauseDuration(); got != time.Second {
		t.Errorf("Expected 1s of pause, got %v", got)
	}

	pc.Resume()
	src.Advance(50 * time.Millisecond)
	if got := pc.Now().Sub(start); got != 150*time.Millisecond {
		t.Errorf("Expected sim time 150ms after resume, got %v", got)
	}
	if pc.IsPaused() {
		t.Error("Expected clock running after resume")
	}
	if !pc.RealTime().Equal(start.Add(1150 * time.Millisecond)) {
		t.Errorf("Expected real time unaffected by pause, got %v", pc.RealTime())
	}
}
