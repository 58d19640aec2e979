package trick

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoutingByPhase(t *testing.T) {
	tests := []struct {
		name      string
		inputs    []Input
		wantPhase Phase
		wantFired bool // result of the last input
	}{
		{"down starts ollie", []Input{DownPress}, PhaseCharging, true},
		{"up starts nollie", []Input{UpPress}, PhaseCharging, true},
		{"side press idle", []Input{LeftPress}, PhaseIdle, false},
		{"release idle", []Input{DownRelease}, PhaseIdle, false},
		{"ollie pop", []Input{DownPress, DownRelease}, PhaseInAir, true},
		{"nollie pop", []Input{UpPress, UpRelease}, PhaseInAir, true},
		{"wrong release keeps charging", []Input{DownPress, UpRelease}, PhaseCharging, false},
		{"yaw charge", []Input{DownPress, RightPress}, PhaseCharging, true},
		{"side release charging", []Input{DownPress, RightPress, RightRelease}, PhaseCharging, false},
		{"level in air", []Input{DownPress, DownRelease, UpPress}, PhaseInAir, true},
		{"catch on release", []Input{DownPress, DownRelease, UpPress, UpRelease}, PhaseIdle, true},
		{"hold never fires", []Input{DownPress, DownHold}, PhaseCharging, false},
		{"side in air is held", []Input{DownPress, DownRelease, LeftPress}, PhaseInAir, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, m, _ := newMachine(t)
			var fired bool
			for _, in := range tt.inputs {
				fired = m.HandleInput(in)
			}
			assert.Equal(t, tt.wantPhase, m.Phase())
			assert.Equal(t, tt.wantFired, fired)
		})
	}
}

func TestYawChargeDirection(t *testing.T) {
	_, m, _ := newMachine(t)
	m.HandleInput(DownPress)
	m.HandleInput(LeftPress)
	m.HandleInput(LeftPress)
	m.HandleInput(RightPress)
	assert.Equal(t, -1.0, m.State().YawCharge)
}

func TestHeldFlipDrivesTick(t *testing.T) {
	body, m, _ := newMachine(t)
	m.HandleInput(DownPress)
	m.HandleInput(DownRelease)
	require.Equal(t, PhaseInAir, m.Phase())

	m.HandleInput(RightPress)
	assert.True(t, m.Held(DirRight))
	n := len(body.torques)
	m.Tick(dt)
	require.Greater(t, len(body.torques), n)
	assert.Greater(t, body.angular.X(), 0.0, "right flips about +right")
	assert.Greater(t, m.State().AccumulatedFlip, 0.0)

	m.HandleInput(RightRelease)
	assert.False(t, m.Held(DirRight))
	n = len(body.torques)
	m.Tick(dt)
	assert.Len(t, body.torques, n, "no controls after release")
}

func TestHeldPopDirectionLevelsInAir(t *testing.T) {
	body, m, _ := newMachine(t)
	m.HandleInput(DownPress)
	m.HandleInput(DownRelease)
	m.HandleInput(UpHold)
	n := len(body.torques)
	m.Tick(dt)
	assert.Len(t, body.torques, n+1)
}

func TestHandleInputRejectsUnknownDirection(t *testing.T) {
	_, m, _ := newMachine(t)
	assert.False(t, m.HandleInput(Input{Dir: directionCount}))
	assert.Equal(t, PhaseIdle, m.Phase())
}

func TestParseInput(t *testing.T) {
	in, ok := ParseInput("left_hold")
	require.True(t, ok)
	assert.Equal(t, LeftHold, in)

	_, ok = ParseInput("jump")
	assert.False(t, ok)
}
