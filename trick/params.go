package trick

import "github.com/lixenwraith/vi-skate/parameter"

// Params holds the tunables of the trick state machine
type Params struct {
	MaxChargeTime       float64 `mapstructure:"max_charge_time"`
	BasePopForce        float64 `mapstructure:"base_pop_force"`
	PopOffset           float64 `mapstructure:"pop_offset"`
	SnapTorque          float64 `mapstructure:"snap_torque"`
	SpinTorque          float64 `mapstructure:"spin_torque"`
	YawChargeThreshold  float64 `mapstructure:"yaw_charge_threshold"`
	FlipTorque          float64 `mapstructure:"flip_torque"`
	LevelForce          float64 `mapstructure:"level_force"`
	LevelImpulseRatio   float64 `mapstructure:"level_impulse_ratio"`
	HoldLevelForce      float64 `mapstructure:"hold_level_force"`
	AirDamping          float64 `mapstructure:"air_damping"`
	CatchDamping        float64 `mapstructure:"catch_damping"`
	CatchLinearDamping  float64 `mapstructure:"catch_linear_damping"`
	CatchSkillThreshold float64 `mapstructure:"catch_skill_threshold"`
	MinAirTime          float64 `mapstructure:"min_air_time"`
}

// DefaultParams returns the stock tuning
func DefaultParams() Params {
	return Params{
		MaxChargeTime:       parameter.MaxChargeTime,
		BasePopForce:        parameter.BasePopForce,
		PopOffset:           parameter.PopOffset,
		SnapTorque:          parameter.SnapTorque,
		SpinTorque:          parameter.SpinTorque,
		YawChargeThreshold:  parameter.YawChargeThreshold,
		FlipTorque:          parameter.FlipTorque,
		LevelForce:          parameter.LevelForce,
		LevelImpulseRatio:   parameter.LevelImpulseRatio,
		HoldLevelForce:      parameter.HoldLevelForce,
		AirDamping:          parameter.AirDamping,
		CatchDamping:        parameter.CatchDamping,
		CatchLinearDamping:  parameter.CatchLinearDamping,
		CatchSkillThreshold: parameter.CatchSkillThreshold,
		MinAirTime:          parameter.MinAirTime,
	}
}

// PopForce returns the pop velocity change for a given charge
// Linear from BasePopForce at zero charge to 2x at MaxChargeTime; charge is clamped
func (p Params) PopForce(chargeTime float64) float64 {
	if p.MaxChargeTime <= 0 {
		return p.BasePopForce * 2
	}
	if chargeTime < 0 {
		chargeTime = 0
	}
	if chargeTime > p.MaxChargeTime {
		chargeTime = p.MaxChargeTime
	}
	return p.BasePopForce * (1 + chargeTime/p.MaxChargeTime)
}
