package parameter

// Locomotion defaults
const (
	// PushForce is the forward velocity change per push
	PushForce = 10.0

	// MaxSpeed caps linear speed after pushes and steering
	MaxSpeed = 15.0

	// TurnRate is the carve yaw rate at full steering while rolling (deg/s)
	TurnRate = 90.0

	// InPlaceTurnRate is the yaw rate at full steering when almost stopped (deg/s)
	InPlaceTurnRate = 30.0

	// PivotOffset is the distance of the front-truck carve pivot ahead of center
	PivotOffset = 0.5

	// LeanAngle is the cosmetic deck tilt at full steering (deg)
	LeanAngle = 25.0

	// LeanSpeed is the lerp rate of the cosmetic tilt (1/s)
	LeanSpeed = 8.0

	// GroundFriction is the lateral velocity attenuation rate (1/s)
	GroundFriction = 2.0

	// SteerDeadzone ignores steering magnitudes at or below this value
	SteerDeadzone = 0.01

	// MovingThreshold separates carving from in-place yaw (units/s)
	MovingThreshold = 0.1
)

// Trick defaults
const (
	// MaxChargeTime saturates pop charge (s)
	MaxChargeTime = 0.5

	// BasePopForce is the pop velocity change at zero charge, doubled at full charge
	BasePopForce = 5.0

	// PopOffset is the distance of the pop point from center along forward
	PopOffset = 0.25

	// SnapTorque is the seesaw spin about the board up axis applied at pop
	// Kept under a scoring half turn over a full-charge flight
	SnapTorque = 0.8

	// SpinTorque scales the shove-it spin seeded from yaw charge
	SpinTorque = 6.0

	// YawChargeThreshold is the minimum |yaw charge| that seeds a spin
	YawChargeThreshold = 0.1

	// FlipTorque is the angular acceleration about the board right axis while flip is held
	FlipTorque = 8.0

	// LevelForce is the corrective torque magnitude of a level input
	LevelForce = 4.0

	// LevelImpulseRatio scales the downward level impulse relative to LevelForce
	LevelImpulseRatio = 0.1

	// HoldLevelForce is the continuous leveling rate while the pop direction is held in air
	HoldLevelForce = 2.0

	// AirDamping multiplies angular velocity every step in air
	AirDamping = 0.995

	// CatchDamping multiplies angular velocity on a clean catch
	CatchDamping = 0.2

	// CatchLinearDamping multiplies linear velocity on a clean catch
	CatchLinearDamping = 0.8

	// CatchSkillThreshold is the minimum dot(boardUp, worldUp) for a clean catch
	CatchSkillThreshold = 0.85

	// MinAirTime ignores ground contact right after pop (s)
	MinAirTime = 0.15
)
