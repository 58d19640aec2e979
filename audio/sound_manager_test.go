package audio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vi-skate/trick"
)

func TestSoundManagerDisabledIsNoop(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.Enabled = false
	sm := NewSoundManager(cfg)

	require.NoError(t, sm.Initialize())
	assert.False(t, sm.Enabled())

	sm.Play(SoundPop)
	sm.OnTrickEvent(trick.Event{Type: trick.EventCatch})
	assert.Zero(t, sm.Played())
	assert.Zero(t, sm.mixer.Len())

	sm.Cleanup()
}

func TestSoundManagerQueuesCues(t *testing.T) {
	sm := NewSoundManager(nil)
	sm.initialized = true // skip the device

	sm.OnTrickEvent(trick.Event{Type: trick.EventPop})
	sm.OnTrickEvent(trick.Event{Type: trick.EventChargeStart})
	sm.OnTrickEvent(trick.Event{Type: trick.EventBail})

	assert.Equal(t, int64(2), sm.Played())
	assert.Equal(t, 2, sm.mixer.Len())

	assert.True(t, sm.ToggleMute())
	sm.Play(SoundCatch)
	assert.Equal(t, int64(2), sm.Played(), "muted")
	assert.False(t, sm.Enabled())

	assert.False(t, sm.ToggleMute())
	assert.True(t, sm.Enabled())
}

func TestSoundFor(t *testing.T) {
	tests := []struct {
		event trick.EventType
		want  SoundType
		ok    bool
	}{
		{trick.EventPop, SoundPop, true},
		{trick.EventCatch, SoundCatch, true},
		{trick.EventBail, SoundBail, true},
		{trick.EventGroundReset, 0, false},
		{trick.EventReset, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.event.String(), func(t *testing.T) {
			got, ok := SoundFor(tt.event)
			assert.Equal(t, tt.ok, ok)
			if ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestSetEffectVolume(t *testing.T) {
	cfg := DefaultAudioConfig()
	assert.True(t, cfg.SetEffectVolume("pop", 2))
	assert.Equal(t, 1.0, cfg.EffectVolumes[SoundPop])
	assert.True(t, cfg.SetEffectVolume("bail", -1))
	assert.Equal(t, 0.0, cfg.EffectVolumes[SoundBail])
	assert.False(t, cfg.SetEffectVolume("kickflip", 1))
}
