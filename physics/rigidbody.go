package physics

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/vi-skate/vmath"
)

// RigidBody is a single simulated body with quaternion orientation
// Inertia is per unit mass and diagonal in the body frame
type RigidBody struct {
	position        mgl64.Vec3
	orientation     mgl64.Quat
	linearVelocity  mgl64.Vec3
	angularVelocity mgl64.Vec3

	invInertia mgl64.Vec3 // body frame diagonal, 1/I per axis
	gravity    mgl64.Vec3
	maxAngular float64 // rad/s, 0 = unlimited
}

var _ Body = (*RigidBody)(nil)

// NewRigidBody creates a body at pos facing +Z with the given per-unit-mass inertia
// Zero inertia components lock rotation about that axis
func NewRigidBody(pos mgl64.Vec3, inertia mgl64.Vec3, gravity float64) *RigidBody {
	var inv mgl64.Vec3
	for i := 0; i < 3; i++ {
		if inertia[i] > 0 {
			inv[i] = 1.0 / inertia[i]
		}
	}
	return &RigidBody{
		position:    pos,
		orientation: mgl64.QuatIdent(),
		invInertia:  inv,
		gravity:     mgl64.Vec3{0, gravity, 0},
	}
}

func (b *RigidBody) Position() mgl64.Vec3            { return b.position }
func (b *RigidBody) SetPosition(p mgl64.Vec3)        { b.position = p }
func (b *RigidBody) Orientation() mgl64.Quat         { return b.orientation }
func (b *RigidBody) SetOrientation(q mgl64.Quat)     { b.orientation = q.Normalize() }
func (b *RigidBody) LinearVelocity() mgl64.Vec3      { return b.linearVelocity }
func (b *RigidBody) SetLinearVelocity(v mgl64.Vec3)  { b.linearVelocity = v }
func (b *RigidBody) AngularVelocity() mgl64.Vec3     { return b.angularVelocity }
func (b *RigidBody) SetAngularVelocity(w mgl64.Vec3) { b.angularVelocity = w }
func (b *RigidBody) Forward() mgl64.Vec3             { return vmath.Forward(b.orientation) }
func (b *RigidBody) Up() mgl64.Vec3                  { return vmath.Up(b.orientation) }
func (b *RigidBody) Right() mgl64.Vec3               { return vmath.Right(b.orientation) }

// SetMaxAngularSpeed caps the angular speed applied on each Integrate, 0 disables the cap
func (b *RigidBody) SetMaxAngularSpeed(limit float64) { b.maxAngular = limit }

// ApplyImpulseAtPoint adds deltaV to linear velocity and I^-1 (r x deltaV) to angular velocity
func (b *RigidBody) ApplyImpulseAtPoint(worldPoint, deltaV mgl64.Vec3) {
	b.linearVelocity = b.linearVelocity.Add(deltaV)
	r := worldPoint.Sub(b.position)
	b.angularVelocity = b.angularVelocity.Add(b.applyInvInertia(r.Cross(deltaV)))
}

// ApplyTorqueImpulse adds deltaOmega directly to angular velocity
func (b *RigidBody) ApplyTorqueImpulse(deltaOmega mgl64.Vec3) {
	b.angularVelocity = b.angularVelocity.Add(deltaOmega)
}

// applyInvInertia maps a world-frame moment through the body-frame inverse inertia
func (b *RigidBody) applyInvInertia(m mgl64.Vec3) mgl64.Vec3 {
	local := vmath.ToLocal(b.orientation, m)
	local = mgl64.Vec3{local[0] * b.invInertia[0], local[1] * b.invInertia[1], local[2] * b.invInertia[2]}
	return vmath.ToWorld(b.orientation, local)
}

// Integrate performs semi-implicit Euler: v += g*dt; p += v*dt; q += 0.5*w*q*dt
func (b *RigidBody) Integrate(dt float64) {
	b.linearVelocity = b.linearVelocity.Add(b.gravity.Mul(dt))
	b.position = b.position.Add(b.linearVelocity.Mul(dt))

	if b.maxAngular > 0 {
		b.angularVelocity = vmath.V3FClampMagnitude(b.angularVelocity, b.maxAngular)
	}

	w := b.angularVelocity
	if w.LenSqr() == 0 {
		return
	}
	spin := mgl64.Quat{W: 0, V: w}.Mul(b.orientation)
	q := b.orientation
	q.W += 0.5 * spin.W * dt
	q.V = q.V.Add(spin.V.Mul(0.5 * dt))
	b.orientation = q.Normalize()
}
