package physics

import "github.com/go-gl/mathgl/mgl64"

// Body is the rigid-body surface the board controllers mutate
// Owned by the world; controllers borrow it for the duration of a step
// All impulse methods use velocity-change semantics (mass independent)
type Body interface {
	Position() mgl64.Vec3
	SetPosition(p mgl64.Vec3)
	Orientation() mgl64.Quat
	SetOrientation(q mgl64.Quat)

	LinearVelocity() mgl64.Vec3
	SetLinearVelocity(v mgl64.Vec3)
	AngularVelocity() mgl64.Vec3
	SetAngularVelocity(w mgl64.Vec3)

	Forward() mgl64.Vec3
	Up() mgl64.Vec3
	Right() mgl64.Vec3

	// ApplyImpulseAtPoint changes linear velocity by deltaV and angular velocity by the
	// induced moment about the center of mass
	ApplyImpulseAtPoint(worldPoint, deltaV mgl64.Vec3)

	// ApplyTorqueImpulse changes angular velocity by deltaOmega (rad/s, world frame)
	ApplyTorqueImpulse(deltaOmega mgl64.Vec3)
}

// GroundProbe reports ground contact below a world position
type GroundProbe interface {
	Grounded(pos mgl64.Vec3) bool
}

// Orienter exposes an up axis, used as reference for landing checks
type Orienter interface {
	Up() mgl64.Vec3
}
