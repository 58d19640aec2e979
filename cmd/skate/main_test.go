package main

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vi-skate/audio"
	"github.com/lixenwraith/vi-skate/config"
	"github.com/lixenwraith/vi-skate/input"
	"github.com/lixenwraith/vi-skate/trick"
)

func newTestApp(t *testing.T) *app {
	t.Helper()

	screen := tcell.NewSimulationScreen("")
	require.NoError(t, screen.Init())
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 24)

	cfg := config.Default()
	cfg.Audio.Enabled = false

	a, err := newApp(cfg, screen, audio.NewSoundManager(cfg.AudioConfig()), zerolog.Nop())
	require.NoError(t, err)
	return a
}

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestQuitKeys(t *testing.T) {
	a := newTestApp(t)

	assert.False(t, a.handleEvent(runeKey('q')))
	assert.False(t, a.handleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)))
	assert.True(t, a.handleEvent(runeKey('z')), "unbound keys are ignored")
}

func TestPushReachesBoard(t *testing.T) {
	a := newTestApp(t)

	require.True(t, a.handleEvent(runeKey('w')))
	assert.Len(t, a.board.Commands, 1)

	a.world.Step()
	assert.Empty(t, a.board.Commands)
	assert.Greater(t, a.board.Body.LinearVelocity().Len(), 0.0)
}

func TestTrickKeyStartsCharge(t *testing.T) {
	a := newTestApp(t)

	require.True(t, a.handleEvent(tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone)))
	a.world.Step()

	assert.Equal(t, trick.PhaseCharging, a.board.Trick.Phase())
	assert.False(t, a.board.Trick.State().IsNollie)
}

func TestPauseBlocksBoardInput(t *testing.T) {
	a := newTestApp(t)

	require.True(t, a.handleEvent(runeKey('p')))
	assert.True(t, a.clock.IsPaused())

	a.handleEvent(runeKey('w'))
	assert.Empty(t, a.board.Commands, "board keys are dropped while paused")

	a.handleEvent(runeKey('p'))
	assert.False(t, a.clock.IsPaused())
}

func TestPauseReleasesHeldKeys(t *testing.T) {
	a := newTestApp(t)

	a.handleEvent(runeKey('a'))
	require.True(t, a.binder.Held(input.ActionSteerLeft))

	a.handleEvent(runeKey('p'))
	assert.False(t, a.binder.Held(input.ActionSteerLeft))
	// steer left then steer release
	assert.Len(t, a.board.Commands, 2)
}

func TestMuteToggle(t *testing.T) {
	a := newTestApp(t)

	a.handleEvent(runeKey('m'))
	assert.True(t, a.muted)
	a.handleEvent(runeKey('m'))
	assert.False(t, a.muted)
}

func TestFrameDrawsStatusBar(t *testing.T) {
	a := newTestApp(t)

	a.frame(16 * time.Millisecond)

	w, h := a.screen.Size()
	require.Equal(t, 80, w)
	require.Equal(t, 24, h)

	nonBlank := 0
	for x := 0; x < w; x++ {
		if r, _, _, _ := a.screen.GetContent(x, h-1); r != ' ' && r != 0 {
			nonBlank++
		}
	}
	assert.Positive(t, nonBlank, "status bar row should have text")
}
