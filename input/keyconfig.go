package input

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Rune aliases for keys that can't be bare single-char config keys
var runeAliases = map[string]rune{
	"space":     ' ',
	"backslash": '\\',
}

// keysByName is the reverse of tcell.KeyNames, lowercased
var keysByName = func() map[string]tcell.Key {
	m := make(map[string]tcell.Key, len(tcell.KeyNames))
	for k, name := range tcell.KeyNames {
		m[strings.ToLower(name)] = k
	}
	return m
}()

// ParseKeyMap converts a key name -> action name map into a sparse override KeyTable
// Key names are single characters, rune aliases or tcell key names ("Up", "Ctrl-C")
// Returns ErrUnknownKey or ErrUnknownAction wrapped with the offending entry
func ParseKeyMap(entries map[string]string) (*KeyTable, error) {
	kt := &KeyTable{
		SpecialKeys: make(map[tcell.Key]Action),
		Runes:       make(map[rune]Action),
	}

	for keyStr, actionName := range entries {
		action, ok := ActionByName(actionName)
		if !ok {
			return nil, fmt.Errorf("key %q: %w: %q", keyStr, ErrUnknownAction, actionName)
		}

		if r, ok := resolveRune(keyStr); ok {
			kt.Runes[r] = action
			continue
		}

		k, ok := keysByName[strings.ToLower(keyStr)]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownKey, keyStr)
		}
		kt.SpecialKeys[k] = action
	}

	return kt, nil
}

// resolveRune converts a config key string to a rune
// Accepts single characters and named aliases
func resolveRune(s string) (rune, bool) {
	if r, ok := runeAliases[strings.ToLower(s)]; ok {
		return r, true
	}
	runes := []rune(s)
	if len(runes) == 1 {
		return runes[0], true
	}
	return 0, false
}

// MergeKeyTable returns a new KeyTable with base values overridden by override
// Override entries bound to ActionNone ("none") delete the key from the result
func MergeKeyTable(base, override *KeyTable) *KeyTable {
	result := base.Clone()
	if override == nil {
		return result
	}
	mergeMap(result.Runes, override.Runes)
	mergeMap(result.SpecialKeys, override.SpecialKeys)
	return result
}

func mergeMap[K comparable](base, override map[K]Action) {
	for k, v := range override {
		if v == ActionNone {
			delete(base, k)
		} else {
			base[k] = v
		}
	}
}
