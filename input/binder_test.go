package input

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vi-skate/trick"
)

type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time          { return c.now }
func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newBinder() (*fakeClock, *Binder) {
	c := &fakeClock{now: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
	return c, NewBinder(c, 500*time.Millisecond)
}

func TestBinderPressHoldRelease(t *testing.T) {
	clock, b := newBinder()

	assert.Equal(t, []Command{Trick(trick.DownPress)}, b.Key(ActionTrickDown))

	clock.Advance(300 * time.Millisecond)
	assert.Empty(t, b.Poll(), "within timeout")
	assert.Equal(t, []Command{Trick(trick.DownHold)}, b.Key(ActionTrickDown))

	// Repeat refreshed the timer
	clock.Advance(400 * time.Millisecond)
	assert.Empty(t, b.Poll())

	clock.Advance(100 * time.Millisecond)
	assert.Equal(t, []Command{Trick(trick.DownRelease)}, b.Poll())
	assert.False(t, b.Held(ActionTrickDown))
	assert.Empty(t, b.Poll(), "released once")
}

func TestBinderSteerSetAndClear(t *testing.T) {
	clock, b := newBinder()

	assert.Equal(t, []Command{Steer(-1)}, b.Key(ActionSteerLeft))
	assert.Empty(t, b.Key(ActionSteerLeft), "repeat keeps steering")

	// Switching direction drops the previous hold
	assert.Equal(t, []Command{Steer(1)}, b.Key(ActionSteerRight))
	assert.False(t, b.Held(ActionSteerLeft))

	clock.Advance(time.Second)
	assert.Equal(t, []Command{Steer(0)}, b.Poll())
}

func TestBinderPushAndReset(t *testing.T) {
	_, b := newBinder()

	assert.Equal(t, []Command{Push()}, b.Key(ActionPush))
	b.Key(ActionTrickUp)
	b.Key(ActionSteerRight)

	assert.Equal(t, []Command{Reset()}, b.Key(ActionReset))
	assert.False(t, b.Held(ActionTrickUp))
	assert.False(t, b.Held(ActionSteerRight))
	assert.Empty(t, b.Key(ActionQuit), "system actions are not board commands")
}

func TestBinderReleaseOrderAndReleaseAll(t *testing.T) {
	clock, b := newBinder()
	b.Key(ActionTrickRight)
	b.Key(ActionTrickUp)
	b.Key(ActionSteerLeft)

	clock.Advance(time.Second)
	got := b.Poll()
	require.Len(t, got, 3)
	assert.Equal(t, Steer(0), got[0])
	assert.Equal(t, Trick(trick.UpRelease), got[1])
	assert.Equal(t, Trick(trick.RightRelease), got[2])

	b.Key(ActionTrickLeft)
	assert.Equal(t, []Command{Trick(trick.LeftRelease)}, b.ReleaseAll())
}

func TestCommandString(t *testing.T) {
	assert.Equal(t, "push", Push().String())
	assert.Equal(t, "steer(-1.00)", Steer(-1).String())
	assert.Equal(t, "trick(up_press)", Trick(trick.UpPress).String())
	assert.Equal(t, "reset", Reset().String())
}
