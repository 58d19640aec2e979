package render

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vi-skate/engine"
	"github.com/lixenwraith/vi-skate/input"
	"github.com/lixenwraith/vi-skate/locomotion"
	"github.com/lixenwraith/vi-skate/trick"
)

func newScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(80, 24)
	t.Cleanup(screen.Fini)
	return screen
}

func rowText(screen tcell.Screen, y int) string {
	w, _ := screen.Size()
	var sb strings.Builder
	for x := 0; x < w; x++ {
		ch, _, _, _ := screen.GetContent(x, y)
		sb.WriteRune(ch)
	}
	return sb.String()
}

func TestRenderFrameDrawsBoardAndHUD(t *testing.T) {
	screen := newScreen(t)
	w := engine.NewWorld(engine.DefaultSettings(), locomotion.DefaultParams(), trick.DefaultParams(), nil, zerolog.Nop())
	b, err := w.SpawnBoard("p1", mgl64.Vec3{})
	require.NoError(t, err)

	b.Send(input.Trick(trick.DownPress))
	w.StepN(10)

	r := NewTerminalRenderer(screen, 4, 2)
	r.RenderFrame(Frame{Focus: b.Body.Position(), Boards: w.Boards(), Paused: true})

	assert.Contains(t, rowText(screen, 0), "charging")
	assert.Contains(t, rowText(screen, 1), "#")
	assert.Contains(t, rowText(screen, 2), "last -")
	assert.Contains(t, rowText(screen, 3), "pops 0")
	assert.Contains(t, rowText(screen, 23), "[PAUSED]")

	// Board at the view center, facing up the screen
	x, y, ok := r.project(b.Body.Position(), b.Body.Position())
	require.True(t, ok)
	ch, _, _, _ := screen.GetContent(x, y)
	assert.Equal(t, '↑', ch)
}

func TestProjectAxes(t *testing.T) {
	screen := newScreen(t)
	r := NewTerminalRenderer(screen, 4, 2)
	focus := mgl64.Vec3{}

	cx, cy, _ := r.project(focus, focus)
	x, y, ok := r.project(focus, mgl64.Vec3{1, 0, 1})
	require.True(t, ok)
	assert.Equal(t, cx+4, x, "+X is right")
	assert.Equal(t, cy-2, y, "+Z is up")

	_, _, ok = r.project(focus, mgl64.Vec3{1000, 0, 0})
	assert.False(t, ok)
}

func TestHeadingGlyph(t *testing.T) {
	tests := []struct {
		forward mgl64.Vec3
		want    rune
	}{
		{mgl64.Vec3{0, 0, 1}, '↑'},
		{mgl64.Vec3{1, 0, 0}, '→'},
		{mgl64.Vec3{0, 0, -1}, '↓'},
		{mgl64.Vec3{-1, 0, 0}, '←'},
		{mgl64.Vec3{1, 0, 1}, '↗'},
		{mgl64.Vec3{-1, 0, -1}, '↙'},
	}
	for _, tt := range tests {
		assert.Equal(t, string(tt.want), string(HeadingGlyph(tt.forward)), "forward %v", tt.forward)
	}
}

func TestChargeBar(t *testing.T) {
	assert.Equal(t, "[----]", ChargeBar(0, 4))
	assert.Equal(t, "[##--]", ChargeBar(0.5, 4))
	assert.Equal(t, "[####]", ChargeBar(3, 4))
	assert.Equal(t, "[----]", ChargeBar(-1, 4))
}
