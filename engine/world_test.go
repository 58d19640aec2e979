package engine

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vi-skate/input"
	"github.com/lixenwraith/vi-skate/locomotion"
	"github.com/lixenwraith/vi-skate/trick"
	"github.com/lixenwraith/vi-skate/vmath"
)

func newTestWorld(t *testing.T) *World {
	t.Helper()
	return NewWorld(DefaultSettings(), locomotion.DefaultParams(), trick.DefaultParams(), nil, zerolog.Nop())
}

func TestSpawnBoardRestsOnGround(t *testing.T) {
	w := newTestWorld(t)

	b, err := w.SpawnBoard("p1", mgl64.Vec3{1, -5, 2})
	require.NoError(t, err)
	assert.Equal(t, "p1", b.Name)
	assert.InDelta(t, w.Settings().BoardClearHeight, b.Body.Position().Y(), 1e-12)
	assert.Equal(t, 1, w.BoardCount())

	_, err = w.SpawnBoard("p1", mgl64.Vec3{})
	assert.True(t, errors.Is(err, ErrDuplicateBoard))

	got, ok := w.Board("p1")
	require.True(t, ok)
	assert.Same(t, b.Body, got.Body, "copies share the board")
}

func TestStepKeepsRestingBoardOnGround(t *testing.T) {
	w := newTestWorld(t)
	b, err := w.SpawnBoard("p1", mgl64.Vec3{})
	require.NoError(t, err)

	w.StepN(50)

	assert.InDelta(t, w.Settings().BoardClearHeight, b.Body.Position().Y(), 1e-12)
	assert.True(t, b.Metrics.Grounded.Load())
	assert.Equal(t, int64(50), b.Metrics.Steps.Load())
	assert.Equal(t, int64(50), w.StepCount())
}

func TestPushAndSteerCommands(t *testing.T) {
	w := newTestWorld(t)
	b, _ := w.SpawnBoard("p1", mgl64.Vec3{})

	require.True(t, w.Send("p1", input.Push()))
	w.Step()
	assert.Greater(t, b.Body.LinearVelocity().Z(), 0.0)

	require.True(t, w.Send("p1", input.Steer(1)))
	w.StepN(25)
	assert.Greater(t, b.Body.Position().X(), 0.0, "carves toward +X")
	assert.Less(t, b.Deck.Lean(), 0.0, "leans into the turn")

	assert.False(t, w.Send("ghost", input.Push()))
}

func TestCommandsApplyInArrivalOrder(t *testing.T) {
	w := newTestWorld(t)
	b, _ := w.SpawnBoard("p1", mgl64.Vec3{})

	// Press then release in the same step pops with no charge
	b.Send(input.Trick(trick.DownPress))
	b.Send(input.Trick(trick.DownRelease))
	w.Step()

	st := b.Trick.State()
	assert.Equal(t, trick.PhaseInAir, st.Phase)
	assert.Equal(t, trick.DefaultParams().BasePopForce, st.PopForce)
}

func TestQueueFullDropsCommand(t *testing.T) {
	s := DefaultSettings()
	s.CommandQueueSize = 2
	w := NewWorld(s, locomotion.DefaultParams(), trick.DefaultParams(), nil, zerolog.Nop())
	b, _ := w.SpawnBoard("p1", mgl64.Vec3{})

	assert.True(t, b.Send(input.Push()))
	assert.True(t, b.Send(input.Push()))
	assert.False(t, b.Send(input.Push()))
}

func TestOllieThroughWorld(t *testing.T) {
	w := newTestWorld(t)
	b, _ := w.SpawnBoard("p1", mgl64.Vec3{})

	var events []BoardEvent
	w.Subscribe(func(e BoardEvent) { events = append(events, e) })

	b.Send(input.Trick(trick.DownPress))
	w.StepN(25)
	b.Send(input.Trick(trick.DownRelease))
	w.Step()
	assert.Greater(t, b.Body.Position().Y(), w.Settings().BoardClearHeight)

	for i := 0; i < 300 && b.Trick.Phase() == trick.PhaseInAir; i++ {
		w.Step()
	}

	require.Equal(t, trick.PhaseIdle, b.Trick.Phase())
	require.Len(t, events, 3)
	assert.Equal(t, trick.EventChargeStart, events[0].Event.Type)
	assert.Equal(t, trick.EventPop, events[1].Event.Type)
	assert.Equal(t, trick.EventGroundReset, events[2].Event.Type)
	assert.Equal(t, "p1", events[1].Board)
	assert.Equal(t, int64(26), events[1].Step)

	assert.Equal(t, int64(1), b.Metrics.Pops.Load())
	assert.Equal(t, int64(1), b.Metrics.GroundResets.Load())
	assert.Equal(t, "idle", b.Metrics.Phase.Load())
}

// popFullOllie charges an ollie to saturation and pops it; the board is in air on return
func popFullOllie(t *testing.T, w *World, b BoardData) {
	t.Helper()
	b.Send(input.Trick(trick.DownPress))
	w.StepN(25)
	b.Send(input.Trick(trick.DownRelease))
	w.Step()
	require.Equal(t, trick.PhaseInAir, b.Trick.Phase())
	require.Equal(t, 2*trick.DefaultParams().BasePopForce, b.Trick.State().PopForce)
}

func TestDefaultOllieSeesawsWithoutTumbling(t *testing.T) {
	w := newTestWorld(t)
	b, _ := w.SpawnBoard("p1", mgl64.Vec3{})
	popFullOllie(t, w, b)

	pitch := b.Body.AngularVelocity().Dot(b.Body.Right())
	assert.Less(t, math.Abs(pitch), 0.5, "pop pitch stays a seesaw")

	minTilt := 1.0
	for i := 0; i < 300 && b.Trick.Phase() == trick.PhaseInAir; i++ {
		minTilt = math.Min(minTilt, vmath.Tilt(b.Body.Orientation()))
		w.Step()
	}
	require.Equal(t, trick.PhaseIdle, b.Trick.Phase())
	assert.Greater(t, minTilt, math.Cos(math.Pi/4), "peak tilt under 45 deg over the whole flight")
}

func TestDefaultOllieCaughtInAirLandsClean(t *testing.T) {
	for _, k := range []int{10, 30, 50, 70} {
		t.Run(fmt.Sprintf("catch after %d steps", k), func(t *testing.T) {
			w := newTestWorld(t)
			b, _ := w.SpawnBoard("p1", mgl64.Vec3{})

			var last BoardEvent
			w.Subscribe(func(e BoardEvent) { last = e })

			popFullOllie(t, w, b)
			w.StepN(k)
			require.Equal(t, trick.PhaseInAir, b.Trick.Phase())

			b.Send(input.Trick(trick.DownRelease))
			w.Step()

			assert.Equal(t, trick.EventCatch, last.Event.Type)
			assert.True(t, last.Event.Result.Landed)
			assert.Equal(t, "ollie", last.Event.Result.Name())
			assert.Equal(t, "ollie", b.Metrics.LastTrick.Load())
		})
	}
}

func TestHeldFlipFollowsInputSign(t *testing.T) {
	tests := []struct {
		name string
		dir  trick.Direction
		sign float64
	}{
		{"right", trick.DirRight, 1},
		{"left", trick.DirLeft, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld(t)
			b, _ := w.SpawnBoard("p1", mgl64.Vec3{})
			popFullOllie(t, w, b)

			b.Send(input.Trick(trick.Input{Dir: tt.dir, Action: trick.ActionPress}))
			w.StepN(15)
			b.Send(input.Trick(trick.Input{Dir: tt.dir, Action: trick.ActionRelease}))
			w.Step()

			flip := b.Trick.State().AccumulatedFlip
			assert.Greater(t, flip*tt.sign, 0.0, "flip %v deg", flip)
		})
	}
}

func TestCatchUpdatesMetrics(t *testing.T) {
	w := newTestWorld(t)
	b, _ := w.SpawnBoard("p1", mgl64.Vec3{})

	b.Send(input.Trick(trick.DownPress))
	b.Send(input.Trick(trick.DownRelease))
	w.StepN(5)
	b.Send(input.Trick(trick.UpPress))
	b.Send(input.Trick(trick.UpRelease))
	w.Step()

	assert.Equal(t, trick.PhaseIdle, b.Trick.Phase())
	catches := b.Metrics.Catches.Load() + b.Metrics.Bails.Load()
	assert.Equal(t, int64(1), catches)
	assert.NotEmpty(t, b.Metrics.LastTrick.Load())
}

func TestResetCommandRespawns(t *testing.T) {
	w := newTestWorld(t)
	b, _ := w.SpawnBoard("p1", mgl64.Vec3{3, 0, 4})

	b.Send(input.Push())
	b.Send(input.Steer(-1))
	b.Send(input.Trick(trick.UpPress))
	w.StepN(10)

	b.Send(input.Reset())
	w.Step()

	assert.Equal(t, trick.PhaseIdle, b.Trick.Phase())
	assert.Zero(t, b.Loco.Steering())
	assert.InDelta(t, 3, b.Body.Position().X(), 1e-9)
	assert.InDelta(t, 4, b.Body.Position().Z(), 1e-9)
	assert.InDelta(t, 1, b.Body.Forward().Z(), 1e-9)
}

func TestRemoveBoard(t *testing.T) {
	w := newTestWorld(t)
	w.SpawnBoard("a", mgl64.Vec3{})
	w.SpawnBoard("b", mgl64.Vec3{})

	assert.True(t, w.RemoveBoard("a"))
	assert.False(t, w.RemoveBoard("a"))
	assert.Equal(t, 1, w.BoardCount())

	boards := w.Boards()
	require.Len(t, boards, 1)
	assert.Equal(t, "b", boards[0].Name)
	w.Step()
}

func TestTrickEventsAreLogged(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf).Level(zerolog.DebugLevel)
	w := NewWorld(DefaultSettings(), locomotion.DefaultParams(), trick.DefaultParams(), nil, log)
	b, _ := w.SpawnBoard("p1", mgl64.Vec3{})

	b.Send(input.Trick(trick.UpPress))
	w.Step()

	var found bool
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		var rec map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &rec))
		if rec["message"] == "trick event" {
			found = true
			assert.Equal(t, "p1", rec["board"])
			assert.Equal(t, "charge_start", rec["event"])
			assert.Equal(t, true, rec["nollie"])
		}
	}
	assert.True(t, found)
}
