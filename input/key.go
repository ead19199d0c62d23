package input

import (
	"fmt"
	"strings"
)

// Key is a logical control, independent of the device that produced it
type Key uint8

const (
	KeyUp Key = iota
	KeyDown
	KeyLeft
	KeyRight
	KeyAction
	KeyEscape
	KeyCount
)

var keyNames = [KeyCount]string{"up", "down", "left", "right", "action", "escape"}

func (k Key) String() string {
	if k >= KeyCount {
		return fmt.Sprintf("key(%d)", uint8(k))
	}
	return keyNames[k]
}

// ParseKey resolves a logical key by name, case-insensitive
func ParseKey(name string) (Key, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range keyNames {
		if n == name {
			return Key(i), nil
		}
	}
	return KeyCount, fmt.Errorf("unknown key %q", name)
}

// KeySet is a bitmask of logical keys
type KeySet uint8

// KeysOf builds a set from keys
func KeysOf(keys ...Key) KeySet {
	var s KeySet
	for _, k := range keys {
		s = s.With(k)
	}
	return s
}

func (s KeySet) Has(k Key) bool {
	return k < KeyCount && s&(1<<k) != 0
}

func (s KeySet) With(k Key) KeySet {
	if k >= KeyCount {
		return s
	}
	return s | 1<<k
}

func (s KeySet) Without(k Key) KeySet {
	if k >= KeyCount {
		return s
	}
	return s &^ (1 << k)
}
