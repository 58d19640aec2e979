package parameter

import "time"

// Simulation loop timing
const (
	// FixedTimestep is the physics step duration (50 Hz)
	FixedTimestep = 20 * time.Millisecond

	// FrameUpdateInterval is the render frame interval for the terminal view (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// MaxStepsPerAdvance caps catch-up steps after a stall so one slow frame cannot spiral
	MaxStepsPerAdvance = 8

	// CommandQueueSize is the per-board buffered command capacity between steps
	CommandQueueSize = 64
)

// World physics
const (
	// Gravity is the vertical acceleration applied to every body (units/s^2)
	Gravity = -9.81

	// GroundHeight is the surface height of the default ground plane
	GroundHeight = 0.0

	// BoardClearHeight is the resting height of the board center above the surface
	BoardClearHeight = 0.08

	// GroundProbeDistance is the max gap below the wheels still reported as contact
	GroundProbeDistance = 0.06

	// GroundAngularDamping is applied to angular velocity every step in contact
	GroundAngularDamping = 0.8
)

// Board inertia per unit mass (body frame: right, up, forward)
// Pitch carries the rider's feet pinning both trucks, so an off-center pop only seesaws the
// deck: a full-charge pop pitches at 0.25*10/6 rad/s, under 45 deg over a full flight
const (
	BoardInertiaRight   = 6.0
	BoardInertiaUp      = 0.25
	BoardInertiaForward = 0.06

	// BoardMaxAngularSpeed caps spin in rad/s
	BoardMaxAngularSpeed = 7.0
)
