package input

import "github.com/gdamore/tcell/v2"

// KeyTable maps terminal keys to actions
type KeyTable struct {
	// Special keys (arrows, Ctrl+*, Esc)
	SpecialKeys map[tcell.Key]Action

	// Printable rune bindings
	Runes map[rune]Action
}

// DefaultKeyTable returns the default key bindings
// Arrows drive the trick directions, wasd the locomotion
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]Action{
			tcell.KeyCtrlC:  ActionQuit,
			tcell.KeyEscape: ActionQuit,
			tcell.KeyUp:     ActionTrickUp,
			tcell.KeyDown:   ActionTrickDown,
			tcell.KeyLeft:   ActionTrickLeft,
			tcell.KeyRight:  ActionTrickRight,
		},
		Runes: map[rune]Action{
			'q': ActionQuit,
			'p': ActionPause,
			'm': ActionToggleMute,
			'r': ActionReset,
			'w': ActionPush,
			' ': ActionPush,
			'a': ActionSteerLeft,
			'd': ActionSteerRight,
			'k': ActionTrickUp,
			'j': ActionTrickDown,
			'h': ActionTrickLeft,
			'l': ActionTrickRight,
		},
	}
}

// Clone returns a deep copy
func (kt *KeyTable) Clone() *KeyTable {
	out := &KeyTable{
		SpecialKeys: make(map[tcell.Key]Action, len(kt.SpecialKeys)),
		Runes:       make(map[rune]Action, len(kt.Runes)),
	}
	for k, v := range kt.SpecialKeys {
		out.SpecialKeys[k] = v
	}
	for k, v := range kt.Runes {
		out.Runes[k] = v
	}
	return out
}

// Lookup resolves a key event to its bound action
func (kt *KeyTable) Lookup(ev *tcell.EventKey) Action {
	if ev.Key() == tcell.KeyRune {
		return kt.Runes[ev.Rune()]
	}
	return kt.SpecialKeys[ev.Key()]
}
