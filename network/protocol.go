package network

import (
	"github.com/lixenwraith/baobei/engine"
	"github.com/lixenwraith/baobei/input"
	"github.com/lixenwraith/baobei/render"
)

// Frame types
const (
	FrameHello    = "hello"
	FrameSnapshot = "snapshot"
	FramePad      = "pad"
)

// ServerFrame is every message written to feed clients
type ServerFrame struct {
	Type     string         `json:"type"`
	Session  string         `json:"session,omitempty"`
	Client   string         `json:"client,omitempty"`
	Room     *[2]float64    `json:"room,omitempty"` // Width and height, hello only
	Snapshot *SnapshotFrame `json:"snapshot,omitempty"`
}

// SnapshotFrame is the wire form of engine.Snapshot
type SnapshotFrame struct {
	Tick      uint64        `json:"tick"`
	ElapsedMs int64         `json:"elapsed_ms"`
	Mode      string        `json:"mode"`
	Room      [2]float64    `json:"room"`
	Entities  []EntityFrame `json:"entities"`
	Carrying  bool          `json:"carrying"`
	Carried   string        `json:"carried,omitempty"`
	Requested string        `json:"requested,omitempty"`
	Mood      float64       `json:"mood"`
	MoodIndex int           `json:"mood_index"`
	Gamepads  int           `json:"gamepads"`
}

// EntityFrame is one positioned entity
type EntityFrame struct {
	ID    uint64     `json:"id"`
	Kind  string     `json:"kind"`
	Name  string     `json:"name,omitempty"`
	Pos   [3]float64 `json:"pos"`
	Depth float64    `json:"depth"`
	Box   []float64  `json:"box,omitempty"` // centre x, centre y, half width, half height
	Item  string     `json:"item,omitempty"`
}

// ClientFrame is a message read from a feed client
// Pad frames drive a remote gamepad: connection changes, stick and action
type ClientFrame struct {
	Type      string  `json:"type"`
	Pad       uint32  `json:"pad"`
	Connected *bool   `json:"connected,omitempty"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Action    bool    `json:"action"`
}

// NewSnapshotFrame converts a published snapshot
func NewSnapshotFrame(s engine.Snapshot) *SnapshotFrame {
	f := &SnapshotFrame{
		Tick:      s.Tick,
		ElapsedMs: s.Elapsed.Milliseconds(),
		Mode:      s.Mode.String(),
		Room:      [2]float64{s.Room.X, s.Room.Y},
		Entities:  make([]EntityFrame, 0, len(s.Entities)),
		Carrying:  s.Carrying,
		Mood:      float64(s.Mood),
		MoodIndex: s.MoodIndex,
		Gamepads:  s.Gamepads,
	}
	if s.Carrying {
		f.Carried = s.Carried.String()
	}
	if s.HasRequest {
		f.Requested = s.Requested.String()
	}

	for _, v := range s.Entities {
		ef := EntityFrame{
			ID:    uint64(v.Entity),
			Kind:  v.Kind.String(),
			Name:  v.Name,
			Pos:   [3]float64{v.Position.X, v.Position.Y, v.Position.Z},
			Depth: render.Depth(v.Position.Y, s.Room.Y),
		}
		if v.HasBox {
			ef.Box = []float64{v.Box.CX, v.Box.CY, v.Box.HW, v.Box.HH}
		}
		if v.HasItem {
			ef.Item = v.Item.String()
		}
		f.Entities = append(f.Entities, ef)
	}
	return f
}

func (c ClientFrame) padID() input.GamepadID {
	return input.GamepadID(c.Pad)
}
