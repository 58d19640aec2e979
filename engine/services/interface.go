// Package services runs the non-simulation subsystems of the game (audio, metrics reporting)
// with dependency-ordered lifecycle management
package services

import "github.com/lixenwraith/vi-skate/engine"

// Service defines the lifecycle interface for subsystems living beside the world
type Service interface {
	// Name returns the unique identifier for this service
	Name() string

	// Dependencies lists services that must initialize and start first
	Dependencies() []string

	// Init wires the service to the world, e.g. subscribing to board events
	// Called before the first Step
	Init(w *engine.World) error

	// Start begins service operation
	// Called after all services are initialized
	Start() error

	// Stop halts service operation and releases resources
	Stop() error
}
