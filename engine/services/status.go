package services

import (
	"github.com/rs/zerolog"

	"github.com/lixenwraith/vi-skate/engine"
	"github.com/lixenwraith/vi-skate/status"
)

// eventKeyPrefix prefixes the world-wide event counters, e.g. "events.pop"
const eventKeyPrefix = "events."

// StatusService counts trick events across all boards into the world registry
// and logs the final registry snapshot on Stop
type StatusService struct {
	world *engine.World
	log   zerolog.Logger
}

// NewStatusService creates the status service
func NewStatusService(log zerolog.Logger) *StatusService {
	return &StatusService{log: log.With().Str("service", "status").Logger()}
}

// Name implements Service
func (s *StatusService) Name() string { return "status" }

// Dependencies implements Service
func (s *StatusService) Dependencies() []string { return nil }

// Init implements Service
func (s *StatusService) Init(w *engine.World) error {
	s.world = w
	reg := w.Registry()
	w.Subscribe(func(e engine.BoardEvent) {
		reg.Ints.Get(eventKeyPrefix + e.Event.Type.String()).Add(1)
	})
	return nil
}

// Start implements Service
func (s *StatusService) Start() error {
	s.log.Info().Int("boards", s.world.BoardCount()).Msg("status started")
	return nil
}

// Stop implements Service
func (s *StatusService) Stop() error {
	s.log.Info().
		Int64("steps", s.world.StepCount()).
		Fields(s.Snapshot()).
		Msg("final metrics")
	return nil
}

// Registry returns the world metrics registry
func (s *StatusService) Registry() *status.Registry {
	return s.world.Registry()
}

// Snapshot returns the current value of every metric
func (s *StatusService) Snapshot() map[string]any {
	return s.world.Registry().Snapshot()
}
