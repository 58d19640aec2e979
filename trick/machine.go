// Package trick implements the board trick state machine: charge, pop, air control, catch
// and rotation scoring
//
// The machine is an explicit phase enum with one method per transition. Every transition
// checks its source phase and silently does nothing when called out of phase, so inputs may
// arrive in any order without surfacing errors
package trick

import (
	"math"

	"github.com/lixenwraith/vi-skate/physics"
	"github.com/lixenwraith/vi-skate/vmath"
)

// State is a read-only snapshot of the machine data
type State struct {
	Phase           Phase
	IsNollie        bool
	ChargeTime      float64 // seconds, clamped to MaxChargeTime
	YawCharge       float64 // signed pre-spin bias
	AccumulatedYaw  float64 // degrees about board up while in air
	AccumulatedFlip float64 // degrees about board right while in air
	AirTime         float64 // seconds since pop
	PopForce        float64 // velocity change of the last pop
	LastResult      Result
}

// Machine is the per-board trick state machine
// It borrows the body; the world owns it
type Machine struct {
	params Params
	body   physics.Body

	probe    physics.GroundProbe // nil = never grounded
	ref      physics.Orienter    // catch reference, nil = catch always clean
	listener Listener

	state State
	held  [directionCount]bool
}

// NewMachine creates an idle machine bound to body
func NewMachine(body physics.Body, params Params) *Machine {
	return &Machine{
		params: params,
		body:   body,
	}
}

// SetGroundProbe enables the implicit ground reset from InAir
func (m *Machine) SetGroundProbe(p physics.GroundProbe) { m.probe = p }

// SetCatchReference sets the orientation used by the landing skill check
func (m *Machine) SetCatchReference(o physics.Orienter) { m.ref = o }

// SetListener sets the event callback
func (m *Machine) SetListener(l Listener) { m.listener = l }

// Params returns the active tuning
func (m *Machine) Params() Params { return m.params }

// State returns a snapshot of the machine data
func (m *Machine) State() State { return m.state }

// Phase returns the current phase
func (m *Machine) Phase() Phase { return m.state.Phase }

// LastResult returns the result of the last catch
func (m *Machine) LastResult() Result { return m.state.LastResult }

// Held reports whether a direction is currently held
func (m *Machine) Held(d Direction) bool {
	if d >= directionCount {
		return false
	}
	return m.held[d]
}

// StartCharge begins winding up a pop, only from Idle
func (m *Machine) StartCharge(nollie bool) bool {
	if m.state.Phase != PhaseIdle {
		return false
	}

	m.state.Phase = PhaseCharging
	m.state.IsNollie = nollie
	m.state.ChargeTime = 0
	m.state.YawCharge = 0

	m.emit(Event{Type: EventChargeStart, Nollie: nollie})
	return true
}

// AddYawCharge accumulates the pre-spin bias, only while Charging
func (m *Machine) AddYawCharge(dir float64) bool {
	if m.state.Phase != PhaseCharging {
		return false
	}
	m.state.YawCharge += dir
	return true
}

// Pop launches the board, only from Charging
func (m *Machine) Pop() bool {
	if m.state.Phase != PhaseCharging {
		return false
	}

	p := m.params
	force := p.PopForce(m.state.ChargeTime)

	side := 1.0 // ollie: front truck
	if m.state.IsNollie {
		side = -1 // nollie: back truck
	}

	forward := m.body.Forward()
	popPoint := m.body.Position().Add(forward.Mul(side * p.PopOffset))
	m.body.ApplyImpulseAtPoint(popPoint, vmath.WorldUp.Mul(force))

	// Seesaw snap about the deck's own up axis
	m.body.ApplyTorqueImpulse(m.body.Up().Mul(side * p.SnapTorque))

	// Shove-it seed from the wind-up presses
	if math.Abs(m.state.YawCharge) > p.YawChargeThreshold {
		m.body.ApplyTorqueImpulse(vmath.WorldUp.Mul(m.state.YawCharge * p.SpinTorque))
	}

	m.state.AccumulatedYaw = 0
	m.state.AccumulatedFlip = 0
	m.state.AirTime = 0
	m.state.PopForce = force
	m.state.Phase = PhaseInAir

	m.emit(Event{Type: EventPop, Nollie: m.state.IsNollie, PopForce: force})
	return true
}

// ApplyFlip spins the board about its right axis for one step
// Allowed in air and, for early flips, while Charging
func (m *Machine) ApplyFlip(dir, dt float64) bool {
	if m.state.Phase != PhaseInAir && m.state.Phase != PhaseCharging {
		return false
	}

	right := m.body.Right()
	m.body.ApplyTorqueImpulse(right.Mul(dir * m.params.FlipTorque * dt))

	if m.state.Phase == PhaseInAir {
		m.state.AccumulatedFlip += m.body.AngularVelocity().Dot(right) * vmath.Rad2Deg * dt
	}
	return true
}

// Level applies a corrective nudge toward flat, only in air; phase is unchanged
// Leveling torque turns board up toward world up; a small downward impulse at the pop
// point works against the pop
func (m *Machine) Level() bool {
	if m.state.Phase != PhaseInAir {
		return false
	}

	p := m.params
	up := m.body.Up()
	m.body.ApplyTorqueImpulse(up.Cross(vmath.WorldUp).Mul(p.LevelForce))

	side := 1.0
	if m.state.IsNollie {
		side = -1
	}
	point := m.body.Position().Add(m.body.Forward().Mul(side * p.PopOffset))
	m.body.ApplyImpulseAtPoint(point, vmath.WorldUp.Mul(-p.LevelForce*p.LevelImpulseRatio))
	return true
}

// holdLevel is the continuous form of Level while the pop direction is held in air
func (m *Machine) holdLevel(dt float64) {
	up := m.body.Up()
	m.body.ApplyTorqueImpulse(up.Cross(vmath.WorldUp).Mul(m.params.HoldLevelForce * dt))
}

// Catch ends the trick and scores it, only from InAir
// A clean catch (board up within the skill threshold of world up) damps the board;
// a failed catch leaves physics untouched. Both return to Idle
func (m *Machine) Catch() bool {
	if m.state.Phase != PhaseInAir {
		return false
	}

	result := m.score()
	result.Landed = m.canCatch()

	if result.Landed {
		m.body.SetAngularVelocity(m.body.AngularVelocity().Mul(m.params.CatchDamping))
		m.body.SetLinearVelocity(m.body.LinearVelocity().Mul(m.params.CatchLinearDamping))
	}

	m.state.LastResult = result
	m.toIdle()

	if result.Landed {
		m.emit(Event{Type: EventCatch, Nollie: result.Nollie, Result: result})
	} else {
		m.emit(Event{Type: EventBail, Nollie: result.Nollie, Result: result})
	}
	return true
}

// Reset forces Idle from any phase and clears all trick data except the last result
func (m *Machine) Reset() {
	m.state = State{LastResult: m.state.LastResult}
	m.held = [directionCount]bool{}
	m.emit(Event{Type: EventReset})
}

// Tick advances time-dependent state by dt
// Runs every step regardless of input, after locomotion
func (m *Machine) Tick(dt float64) {
	if dt <= 0 {
		return
	}

	if m.state.Phase == PhaseInAir && m.state.AirTime >= m.params.MinAirTime &&
		m.probe != nil && m.probe.Grounded(m.body.Position()) {
		// Landed without a catch: end the trick, score is not recorded
		result := m.score()
		nollie := m.state.IsNollie
		m.toIdle()
		m.emit(Event{Type: EventGroundReset, Nollie: nollie, Result: result})
	}

	switch m.state.Phase {
	case PhaseCharging:
		m.state.ChargeTime += dt
		if m.state.ChargeTime > m.params.MaxChargeTime {
			m.state.ChargeTime = m.params.MaxChargeTime
		}

	case PhaseInAir:
		m.state.AirTime += dt
		m.body.SetAngularVelocity(m.body.AngularVelocity().Mul(m.params.AirDamping))
		m.state.AccumulatedYaw += m.body.AngularVelocity().Dot(m.body.Up()) * vmath.Rad2Deg * dt
	}

	m.applyHeld(dt)
}

// applyHeld drives the continuous controls from held directions
func (m *Machine) applyHeld(dt float64) {
	for _, d := range [...]Direction{DirLeft, DirRight} {
		if m.held[d] {
			m.ApplyFlip(d.sign(), dt)
		}
	}

	if m.state.Phase == PhaseInAir && (m.held[DirUp] || m.held[DirDown]) {
		m.holdLevel(dt)
	}
}

// score quantizes the accumulators: half turns of yaw, full turns of flip
func (m *Machine) score() Result {
	return Result{
		ShuvitCount:   vmath.RoundHalfAway(m.state.AccumulatedYaw / 180),
		KickflipCount: vmath.RoundHalfAway(m.state.AccumulatedFlip / 360),
		Yaw:           m.state.AccumulatedYaw,
		Flip:          m.state.AccumulatedFlip,
		Nollie:        m.state.IsNollie,
	}
}

// canCatch is the landing skill check
func (m *Machine) canCatch() bool {
	if m.ref == nil {
		return true
	}
	return m.ref.Up().Dot(vmath.WorldUp) >= m.params.CatchSkillThreshold
}

// toIdle returns to Idle; accumulators stay frozen until the next pop
func (m *Machine) toIdle() {
	m.state.Phase = PhaseIdle
	m.state.IsNollie = false
	m.state.ChargeTime = 0
	m.state.YawCharge = 0
}

func (m *Machine) emit(e Event) {
	if m.listener != nil {
		m.listener(e)
	}
}

// compile-time check that the default body satisfies the catch reference
var _ physics.Orienter = (*physics.RigidBody)(nil)
