package terminal

import (
	"errors"
	"fmt"
	"maps"
	"strings"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/baobei/input"
)

var ErrUnknownKeyName = errors.New("unknown terminal key name")

// Rune aliases for keys that can't be bare single-char TOML keys
var runeAliases = map[string]rune{
	"space":     ' ',
	"backslash": '\\',
}

// Named special keys accepted in keymap config
var specialNames = map[string]tcell.Key{
	"up":        tcell.KeyUp,
	"down":      tcell.KeyDown,
	"left":      tcell.KeyLeft,
	"right":     tcell.KeyRight,
	"enter":     tcell.KeyEnter,
	"escape":    tcell.KeyEscape,
	"esc":       tcell.KeyEscape,
	"tab":       tcell.KeyTab,
	"backspace": tcell.KeyBackspace2,
}

// KeyMap binds terminal keys to logical keys
type KeyMap struct {
	Special map[tcell.Key]input.Key
	Runes   map[rune]input.Key
}

// DefaultKeyMap binds arrows and WASD to directions, space to action, escape to escape
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Special: map[tcell.Key]input.Key{
			tcell.KeyUp:     input.KeyUp,
			tcell.KeyDown:   input.KeyDown,
			tcell.KeyLeft:   input.KeyLeft,
			tcell.KeyRight:  input.KeyRight,
			tcell.KeyEscape: input.KeyEscape,
		},
		Runes: map[rune]input.Key{
			'w': input.KeyUp,
			's': input.KeyDown,
			'a': input.KeyLeft,
			'd': input.KeyRight,
			' ': input.KeyAction,
		},
	}
}

// ParseKeyMap merges config bindings over the defaults
// Names are special key names, rune aliases, or a single character
func ParseKeyMap(bindings map[string]string) (KeyMap, error) {
	km := DefaultKeyMap()
	km.Special = maps.Clone(km.Special)
	km.Runes = maps.Clone(km.Runes)

	for name, target := range bindings {
		k, err := input.ParseKey(target)
		if err != nil {
			return KeyMap{}, fmt.Errorf("keymap %q: %w", name, err)
		}

		lower := strings.ToLower(name)
		if sk, ok := specialNames[lower]; ok {
			km.Special[sk] = k
			continue
		}
		r, err := resolveRune(name)
		if err != nil {
			return KeyMap{}, fmt.Errorf("keymap %q: %w", name, err)
		}
		km.Runes[r] = k
	}
	return km, nil
}

// resolveRune converts a config key string to a rune
func resolveRune(name string) (rune, error) {
	if r, ok := runeAliases[strings.ToLower(name)]; ok {
		return r, nil
	}
	if utf8.RuneCountInString(name) == 1 {
		r, _ := utf8.DecodeRuneInString(name)
		return r, nil
	}
	return 0, ErrUnknownKeyName
}

// Lookup maps a key event to a logical key
// Letter bindings match either case
func (km KeyMap) Lookup(ev *tcell.EventKey) (input.Key, bool) {
	if ev.Key() != tcell.KeyRune {
		k, ok := km.Special[ev.Key()]
		return k, ok
	}
	r := ev.Rune()
	if k, ok := km.Runes[r]; ok {
		return k, true
	}
	k, ok := km.Runes[toLower(r)]
	return k, ok
}

func toLower(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}
