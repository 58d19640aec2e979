package input

import (
	"time"

	"github.com/lixenwraith/vi-skate/trick"
)

// Clock is the time source the binder measures silence against
type Clock interface {
	Now() time.Time
}

// heldOrder fixes the release order of simultaneously expiring keys
var heldOrder = [...]Action{
	ActionSteerLeft, ActionSteerRight,
	ActionTrickUp, ActionTrickDown, ActionTrickLeft, ActionTrickRight,
}

// Binder converts key press and repeat streams into board commands
// Not safe for concurrent use; the host input loop owns it
type Binder struct {
	clock   Clock
	timeout time.Duration

	lastSeen map[Action]time.Time // held actions
	steer    Action               // active steering action, ActionNone when centered
}

// NewBinder creates a binder releasing keys after timeout of silence
func NewBinder(clock Clock, timeout time.Duration) *Binder {
	return &Binder{
		clock:    clock,
		timeout:  timeout,
		lastSeen: make(map[Action]time.Time),
	}
}

// Key handles one press or auto-repeat of a board action
func (b *Binder) Key(a Action) []Command {
	now := b.clock.Now()

	switch a {
	case ActionPush:
		return []Command{Push()}

	case ActionReset:
		b.lastSeen = make(map[Action]time.Time)
		b.steer = ActionNone
		return []Command{Reset()}

	case ActionSteerLeft, ActionSteerRight:
		b.lastSeen[a] = now
		if b.steer == a {
			return nil
		}
		if b.steer != ActionNone {
			delete(b.lastSeen, b.steer)
		}
		b.steer = a
		return []Command{Steer(steerValue(a))}

	case ActionTrickUp, ActionTrickDown, ActionTrickLeft, ActionTrickRight:
		dir := trickDirection(a)
		_, held := b.lastSeen[a]
		b.lastSeen[a] = now
		if held {
			return []Command{Trick(trick.Input{Dir: dir, Action: trick.ActionHold})}
		}
		return []Command{Trick(trick.Input{Dir: dir, Action: trick.ActionPress})}
	}

	return nil
}

// Poll synthesizes releases for held keys silent for at least the timeout
func (b *Binder) Poll() []Command {
	if len(b.lastSeen) == 0 {
		return nil
	}
	now := b.clock.Now()

	var out []Command
	for _, a := range heldOrder {
		last, ok := b.lastSeen[a]
		if !ok || now.Sub(last) < b.timeout {
			continue
		}
		out = append(out, b.release(a)...)
	}
	return out
}

// ReleaseAll releases every held key, used when focus or pause interrupts input
func (b *Binder) ReleaseAll() []Command {
	var out []Command
	for _, a := range heldOrder {
		if _, ok := b.lastSeen[a]; ok {
			out = append(out, b.release(a)...)
		}
	}
	return out
}

// Held reports whether an action is currently considered held
func (b *Binder) Held(a Action) bool {
	_, ok := b.lastSeen[a]
	return ok
}

func (b *Binder) release(a Action) []Command {
	delete(b.lastSeen, a)

	switch a {
	case ActionSteerLeft, ActionSteerRight:
		if b.steer == a {
			b.steer = ActionNone
			return []Command{Steer(0)}
		}
		return nil
	}
	return []Command{Trick(trick.Input{Dir: trickDirection(a), Action: trick.ActionRelease})}
}

func steerValue(a Action) float64 {
	if a == ActionSteerLeft {
		return -1
	}
	return 1
}

func trickDirection(a Action) trick.Direction {
	switch a {
	case ActionTrickUp:
		return trick.DirUp
	case ActionTrickDown:
		return trick.DirDown
	case ActionTrickLeft:
		return trick.DirLeft
	}
	return trick.DirRight
}
