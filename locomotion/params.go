package locomotion

import "github.com/lixenwraith/vi-skate/parameter"

// Params holds the tunables of the locomotion controller
type Params struct {
	PushForce       float64 `mapstructure:"push_force"`
	MaxSpeed        float64 `mapstructure:"max_speed"`
	TurnRate        float64 `mapstructure:"turn_rate"`          // deg/s while rolling
	InPlaceTurnRate float64 `mapstructure:"in_place_turn_rate"` // deg/s when almost stopped
	PivotOffset     float64 `mapstructure:"pivot_offset"`
	LeanAngle       float64 `mapstructure:"lean_angle"`
	LeanSpeed       float64 `mapstructure:"lean_speed"`
	GroundFriction  float64 `mapstructure:"ground_friction"`
	SteerDeadzone   float64 `mapstructure:"steer_deadzone"`
	MovingThreshold float64 `mapstructure:"moving_threshold"`
}

// DefaultParams returns the stock tuning
func DefaultParams() Params {
	return Params{
		PushForce:       parameter.PushForce,
		MaxSpeed:        parameter.MaxSpeed,
		TurnRate:        parameter.TurnRate,
		InPlaceTurnRate: parameter.InPlaceTurnRate,
		PivotOffset:     parameter.PivotOffset,
		LeanAngle:       parameter.LeanAngle,
		LeanSpeed:       parameter.LeanSpeed,
		GroundFriction:  parameter.GroundFriction,
		SteerDeadzone:   parameter.SteerDeadzone,
		MovingThreshold: parameter.MovingThreshold,
	}
}
