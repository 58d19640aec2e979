package physics

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Plane is a flat horizontal ground at Height
// Bodies are treated as points resting ClearHeight above the surface
type Plane struct {
	Height         float64
	ClearHeight    float64 // resting offset of the body center above the surface
	ProbeDistance  float64 // max gap still reported as contact
	AngularDamping float64 // per-contact multiplier on angular velocity
}

var _ GroundProbe = Plane{}

// Grounded casts a ray down from pos and reports a hit within ProbeDistance
func (p Plane) Grounded(pos mgl64.Vec3) bool {
	gap := pos[1] - p.ClearHeight - p.Height
	return gap <= p.ProbeDistance
}

// Resolve pushes the body out of the plane and removes downward velocity
// Returns true when the body is in contact after resolution
func (p Plane) Resolve(b Body) bool {
	pos := b.Position()
	rest := p.Height + p.ClearHeight
	if pos[1] > rest {
		return false
	}

	pos[1] = rest
	b.SetPosition(pos)

	v := b.LinearVelocity()
	if v[1] < 0 {
		v[1] = 0
		b.SetLinearVelocity(v)
	}

	if p.AngularDamping > 0 && p.AngularDamping < 1 {
		b.SetAngularVelocity(b.AngularVelocity().Mul(p.AngularDamping))
	}
	return true
}
