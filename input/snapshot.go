package input

import (
	"fmt"
	"math"
)

// GamepadID identifies a physical gamepad for the lifetime of its connection
type GamepadID uint32

// GamepadEvent is a connection change reported by the device layer
type GamepadEvent struct {
	ID        GamepadID
	Connected bool
}

// Stick is a left analog stick reading, axes in [-1, 1], +Y up
type Stick struct {
	X, Y float64
}

// Snapshot is the raw device state sampled at the start of a tick
type Snapshot struct {
	Keys          KeySet              // Held keyboard keys
	JustPressed   KeySet              // Keys that went down since the previous snapshot
	Gamepads      []GamepadEvent      // Connection changes since the previous snapshot
	Axes          map[GamepadID]Stick // Missing entry reads as centred
	GamepadAction map[GamepadID]bool  // Action button held per pad
}

// Stick returns the stick of pad id, zero when absent or non-finite
func (s Snapshot) Stick(id GamepadID) Stick {
	st, ok := s.Axes[id]
	if !ok {
		return Stick{}
	}
	if math.IsNaN(st.X) || math.IsInf(st.X, 0) {
		st.X = 0
	}
	if math.IsNaN(st.Y) || math.IsInf(st.Y, 0) {
		st.Y = 0
	}
	return st
}

// EscapePressed reports a fresh escape press
func (s Snapshot) EscapePressed() bool {
	return s.JustPressed.Has(KeyEscape)
}

// Source identifies the producer of a direction intent
type Source struct {
	Gamepad bool
	ID      GamepadID
}

// SourceKeyboard is the single keyboard source
var SourceKeyboard = Source{}

// PadSource returns the source for gamepad id
func PadSource(id GamepadID) Source {
	return Source{Gamepad: true, ID: id}
}

func (s Source) String() string {
	if !s.Gamepad {
		return "keyboard"
	}
	return fmt.Sprintf("gamepad:%d", s.ID)
}
