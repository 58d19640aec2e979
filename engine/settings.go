package engine

import (
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/vi-skate/parameter"
	"github.com/lixenwraith/vi-skate/physics"
)

// Settings configures the world and scheduler
type Settings struct {
	FixedTimestep       time.Duration `mapstructure:"fixed_timestep"`
	FrameUpdateInterval time.Duration `mapstructure:"frame_update_interval"`
	MaxStepsPerAdvance  int           `mapstructure:"max_steps_per_advance"`
	CommandQueueSize    int           `mapstructure:"command_queue_size"`

	Gravity              float64 `mapstructure:"gravity"`
	GroundHeight         float64 `mapstructure:"ground_height"`
	BoardClearHeight     float64 `mapstructure:"board_clear_height"`
	GroundProbeDistance  float64 `mapstructure:"ground_probe_distance"`
	GroundAngularDamping float64 `mapstructure:"ground_angular_damping"`

	InertiaRight    float64 `mapstructure:"inertia_right"`
	InertiaUp       float64 `mapstructure:"inertia_up"`
	InertiaForward  float64 `mapstructure:"inertia_forward"`
	MaxAngularSpeed float64 `mapstructure:"max_angular_speed"`
}

// DefaultSettings returns the stock engine tuning
func DefaultSettings() Settings {
	return Settings{
		FixedTimestep:        parameter.FixedTimestep,
		FrameUpdateInterval:  parameter.FrameUpdateInterval,
		MaxStepsPerAdvance:   parameter.MaxStepsPerAdvance,
		CommandQueueSize:     parameter.CommandQueueSize,
		Gravity:              parameter.Gravity,
		GroundHeight:         parameter.GroundHeight,
		BoardClearHeight:     parameter.BoardClearHeight,
		GroundProbeDistance:  parameter.GroundProbeDistance,
		GroundAngularDamping: parameter.GroundAngularDamping,
		InertiaRight:         parameter.BoardInertiaRight,
		InertiaUp:            parameter.BoardInertiaUp,
		InertiaForward:       parameter.BoardInertiaForward,
		MaxAngularSpeed:      parameter.BoardMaxAngularSpeed,
	}
}

// Ground returns the ground plane described by the settings
func (s Settings) Ground() physics.Plane {
	return physics.Plane{
		Height:         s.GroundHeight,
		ClearHeight:    s.BoardClearHeight,
		ProbeDistance:  s.GroundProbeDistance,
		AngularDamping: s.GroundAngularDamping,
	}
}

// Inertia returns the body-frame inertia vector (right, up, forward)
func (s Settings) Inertia() mgl64.Vec3 {
	return mgl64.Vec3{s.InertiaRight, s.InertiaUp, s.InertiaForward}
}

// StepSeconds returns the fixed timestep in seconds
func (s Settings) StepSeconds() float64 {
	return s.FixedTimestep.Seconds()
}
