// Package input binds terminal keys to board commands
// Terminals report key presses and auto-repeat but never key-up; the Binder turns those
// streams into Press/Hold/Release symbols by synthesizing releases after a silence timeout
package input

import (
	"errors"
	"sort"
	"strings"
)

// ErrUnknownAction is returned for keymap entries naming no registered action
var ErrUnknownAction = errors.New("unknown action")

// ErrUnknownKey is returned for keymap entries naming no known key
var ErrUnknownKey = errors.New("unknown key")

// Action is a bindable intent
type Action uint8

const (
	ActionNone Action = iota

	// System
	ActionQuit
	ActionPause
	ActionToggleMute
	ActionReset

	// Locomotion
	ActionPush
	ActionSteerLeft
	ActionSteerRight

	// Trick directions
	ActionTrickUp
	ActionTrickDown
	ActionTrickLeft
	ActionTrickRight
)

// actionRegistry maps canonical action names used in keymap config
// "none" unbinds a key
var actionRegistry = map[string]Action{
	"none": ActionNone,

	"quit":        ActionQuit,
	"pause":       ActionPause,
	"toggle_mute": ActionToggleMute,
	"reset":       ActionReset,

	"push":        ActionPush,
	"steer_left":  ActionSteerLeft,
	"steer_right": ActionSteerRight,

	"trick_up":    ActionTrickUp,
	"trick_down":  ActionTrickDown,
	"trick_left":  ActionTrickLeft,
	"trick_right": ActionTrickRight,
}

// ActionByName resolves a canonical action name, case-insensitive
func ActionByName(name string) (Action, bool) {
	a, ok := actionRegistry[strings.ToLower(strings.TrimSpace(name))]
	return a, ok
}

// ActionNames returns all registered action names, sorted
func ActionNames() []string {
	names := make([]string, 0, len(actionRegistry))
	for n := range actionRegistry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func (a Action) String() string {
	for n, v := range actionRegistry {
		if v == a {
			return n
		}
	}
	return "unknown"
}

// IsSystem reports whether the action is handled by the host loop rather than the board
func (a Action) IsSystem() bool {
	return a >= ActionQuit && a <= ActionToggleMute
}
