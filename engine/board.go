package engine

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"

	"github.com/lixenwraith/vi-skate/input"
	"github.com/lixenwraith/vi-skate/locomotion"
	"github.com/lixenwraith/vi-skate/physics"
	"github.com/lixenwraith/vi-skate/status"
	"github.com/lixenwraith/vi-skate/trick"
)

// BoardData is the board component: one rigid body and the two controllers borrowing it
// Every field is a reference, copies of BoardData share the same board
type BoardData struct {
	Name     string
	Spawn    mgl64.Vec3
	Body     *physics.RigidBody
	Loco     *locomotion.Controller
	Trick    *trick.Machine
	Deck     *Deck
	Metrics  *status.BoardMetrics
	Commands chan input.Command
}

// Board is the donburi component type for boards
var Board = donburi.NewComponentType[BoardData]()

// Deck is the visual deck lean fed by locomotion
type Deck struct {
	lean float64
}

// SetLean stores the lean angle in degrees
func (d *Deck) SetLean(deg float64) { d.lean = deg }

// Lean returns the last lean angle in degrees
func (d *Deck) Lean() float64 { return d.lean }

// Send queues a command for the next step
// Non-blocking; returns false when the queue is full and the command was dropped
func (b BoardData) Send(cmd input.Command) bool {
	select {
	case b.Commands <- cmd:
		return true
	default:
		return false
	}
}
