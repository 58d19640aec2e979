// Package locomotion shapes board velocity on the ground: pushes, carving, speed limit and
// anisotropic wheel friction
//
// Velocity is redirected along the heading instead of being accelerated sideways, so the
// board behaves like wheels constrained to the deck. Step order is turn, clamp, friction
package locomotion

import (
	"math"

	"github.com/lixenwraith/vi-skate/physics"
	"github.com/lixenwraith/vi-skate/vmath"
)

// Deck receives the cosmetic lean angle (deg) of the visual board
type Deck interface {
	SetLean(deg float64)
}

// Controller drives one board body
type Controller struct {
	params Params
	body   physics.Body

	probe physics.GroundProbe // nil = always treated as grounded
	deck  Deck                // nil = cosmetic lean not forwarded

	steering float64
	lean     float64
}

// NewController binds a controller to a body
func NewController(body physics.Body, params Params) *Controller {
	return &Controller{
		params: params,
		body:   body,
	}
}

// SetGroundProbe enables air detection; airborne steps skip wheel constraints
func (c *Controller) SetGroundProbe(p physics.GroundProbe) { c.probe = p }

// SetDeck attaches the visual deck collaborator
func (c *Controller) SetDeck(d Deck) { c.deck = d }

// Params returns the active tuning
func (c *Controller) Params() Params { return c.params }

// Steering returns the last steering value in [-1,1]
func (c *Controller) Steering() float64 { return c.steering }

// Lean returns the current cosmetic lean (deg)
func (c *Controller) Lean() float64 { return c.lean }

// Push adds a forward velocity change of PushForce and clamps to MaxSpeed
func (c *Controller) Push() {
	v := c.body.LinearVelocity().Add(c.body.Forward().Mul(c.params.PushForce))
	c.body.SetLinearVelocity(vmath.V3FClampMagnitude(v, c.params.MaxSpeed))
}

// SetSteering stores the latest steering value; applied on the next Step
func (c *Controller) SetSteering(value float64) {
	if math.IsNaN(value) {
		value = 0
	}
	c.steering = vmath.ClampF(value, -1, 1)
}

// Step advances the controller by dt seconds
func (c *Controller) Step(dt float64) {
	if dt <= 0 {
		return
	}
	grounded := c.probe == nil || c.probe.Grounded(c.body.Position())

	if grounded {
		c.turn(dt)
	}

	c.body.SetLinearVelocity(vmath.V3FClampMagnitude(c.body.LinearVelocity(), c.params.MaxSpeed))

	if grounded {
		c.applyFriction(dt)
	}

	c.updateLean(dt)
}

// turn carves around the front-truck pivot when rolling, or yaws in place when stopped
func (c *Controller) turn(dt float64) {
	if math.Abs(c.steering) <= c.params.SteerDeadzone {
		return
	}

	vel := c.body.LinearVelocity()
	speed := vel.Len()

	if speed > c.params.MovingThreshold {
		pivot := c.body.Position().Add(c.body.Forward().Mul(c.params.PivotOffset))
		rot := vmath.YawRotation(c.steering * c.params.TurnRate * dt)
		pos, orient := vmath.RotateAround(c.body.Position(), c.body.Orientation(), pivot, rot)
		c.body.SetPosition(pos)
		c.body.SetOrientation(orient)

		// Wheels constrain velocity to the new heading
		c.body.SetLinearVelocity(c.body.Forward().Mul(speed))
		return
	}

	rot := vmath.YawRotation(c.steering * c.params.InPlaceTurnRate * dt)
	c.body.SetOrientation(rot.Mul(c.body.Orientation()))
}

// applyFriction attenuates sideways velocity in the body frame
// Forward rolling resistance is zero; vertical is left to gravity
func (c *Controller) applyFriction(dt float64) {
	q := c.body.Orientation()
	local := vmath.ToLocal(q, c.body.LinearVelocity())
	local[0] *= 1 - c.params.GroundFriction*dt
	c.body.SetLinearVelocity(vmath.ToWorld(q, local))
}

func (c *Controller) updateLean(dt float64) {
	target := -c.steering * c.params.LeanAngle
	c.lean = vmath.LerpF(c.lean, target, c.params.LeanSpeed*dt)
	if c.deck != nil {
		c.deck.SetLean(c.lean)
	}
}
