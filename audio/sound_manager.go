package audio

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/vi-skate/parameter"
	"github.com/lixenwraith/vi-skate/trick"
)

// SoundManager plays the trick cues through a single speaker mixer
// All methods are safe to call when audio is disabled or failed to initialize
type SoundManager struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	mixer       *beep.Mixer
	initialized bool
	muted       atomic.Bool
	played      atomic.Int64
}

// NewSoundManager creates a new sound manager, nil cfg uses defaults
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	return &SoundManager{
		cfg:   cfg,
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker; a disabled config is not an error
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.cfg.Enabled {
		return nil
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(parameter.AudioBufferDuration)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	speaker.Close()
	sm.initialized = false
}

// Enabled reports whether sounds reach the speaker
func (sm *SoundManager) Enabled() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized && !sm.muted.Load()
}

// ToggleMute flips mute and returns the new state
func (sm *SoundManager) ToggleMute() bool {
	for {
		old := sm.muted.Load()
		if sm.muted.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

// Played returns the number of cues queued since creation
func (sm *SoundManager) Played() int64 { return sm.played.Load() }

// Play queues a sound effect
func (sm *SoundManager) Play(st SoundType) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted.Load() {
		return
	}

	s := GetSoundEffect(st, sm.cfg)
	if s == nil {
		return
	}

	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
	sm.played.Add(1)
}

// OnTrickEvent plays the cue mapped to a trick event, if any
func (sm *SoundManager) OnTrickEvent(e trick.Event) {
	if st, ok := SoundFor(e.Type); ok {
		sm.Play(st)
	}
}

// SoundFor maps trick events to sound cues
func SoundFor(t trick.EventType) (SoundType, bool) {
	switch t {
	case trick.EventPop:
		return SoundPop, true
	case trick.EventCatch:
		return SoundCatch, true
	case trick.EventBail:
		return SoundBail, true
	}
	return 0, false
}
