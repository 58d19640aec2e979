package services

import (
	"github.com/rs/zerolog"

	"github.com/lixenwraith/vi-skate/audio"
	"github.com/lixenwraith/vi-skate/engine"
)

// AudioService plays trick cues for every board
// A speaker that fails to open degrades to silence instead of failing Start
type AudioService struct {
	sound *audio.SoundManager
	log   zerolog.Logger
}

// NewAudioService wraps a sound manager
func NewAudioService(sound *audio.SoundManager, log zerolog.Logger) *AudioService {
	return &AudioService{
		sound: sound,
		log:   log.With().Str("service", "audio").Logger(),
	}
}

// Name implements Service
func (s *AudioService) Name() string { return "audio" }

// Dependencies implements Service
func (s *AudioService) Dependencies() []string { return nil }

// Init implements Service
func (s *AudioService) Init(w *engine.World) error {
	w.Subscribe(func(e engine.BoardEvent) { s.sound.OnTrickEvent(e.Event) })
	return nil
}

// Start implements Service
func (s *AudioService) Start() error {
	if err := s.sound.Initialize(); err != nil {
		s.log.Warn().Err(err).Msg("audio initialization failed, continuing without audio")
	}
	return nil
}

// Stop implements Service
func (s *AudioService) Stop() error {
	s.sound.Cleanup()
	s.log.Debug().Int64("played", s.sound.Played()).Msg("audio stopped")
	return nil
}

// Sound returns the underlying sound manager
func (s *AudioService) Sound() *audio.SoundManager { return s.sound }
