package input

import (
	"fmt"

	"github.com/lixenwraith/vi-skate/trick"
)

// CommandKind selects which board operation a command drives
type CommandKind uint8

const (
	CommandPush CommandKind = iota
	CommandSteer
	CommandTrick
	CommandReset
)

// Command is one queued board operation, applied in arrival order at the next step
type Command struct {
	Kind  CommandKind
	Steer float64     // CommandSteer, [-1,1]
	Trick trick.Input // CommandTrick
}

// Push returns a push command
func Push() Command { return Command{Kind: CommandPush} }

// Steer returns a steering command
func Steer(v float64) Command { return Command{Kind: CommandSteer, Steer: v} }

// Trick returns a trick input command
func Trick(in trick.Input) Command { return Command{Kind: CommandTrick, Trick: in} }

// Reset returns a board reset command
func Reset() Command { return Command{Kind: CommandReset} }

func (c Command) String() string {
	switch c.Kind {
	case CommandPush:
		return "push"
	case CommandSteer:
		return fmt.Sprintf("steer(%.2f)", c.Steer)
	case CommandTrick:
		return "trick(" + c.Trick.String() + ")"
	case CommandReset:
		return "reset"
	}
	return "unknown"
}
