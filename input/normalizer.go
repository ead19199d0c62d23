package input

import (
	"fmt"
	"math"
	"strings"

	"github.com/lixenwraith/baobei/vmath"
)

// StickPolicy selects which stick readings produce a direction
type StickPolicy uint8

const (
	// StickAnyAxis emits whenever the stick leaves the dead zone
	StickAnyAxis StickPolicy = iota
	// StickBothAxes emits only when both axes are non-zero, pure horizontal or vertical input is dropped
	StickBothAxes
)

func (p StickPolicy) String() string {
	switch p {
	case StickAnyAxis:
		return "any_axis"
	case StickBothAxes:
		return "both_axes"
	default:
		return "unknown"
	}
}

// ParseStickPolicy resolves a policy by its config name
func ParseStickPolicy(name string) (StickPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "any_axis":
		return StickAnyAxis, nil
	case "both_axes":
		return StickBothAxes, nil
	default:
		return StickAnyAxis, fmt.Errorf("unknown stick policy %q", name)
	}
}

// Intent is one normalized movement direction from one source
type Intent struct {
	Source    Source
	Direction vmath.Vec3F // Unit length, planar
}

// Normalizer converts raw device snapshots into per-source unit directions
type Normalizer struct {
	lobby     *Lobby
	policy    StickPolicy
	deadZone  float64
	padAction map[GamepadID]bool // Action buttons held at the previous call
}

// NewNormalizer creates a normalizer with an empty gamepad lobby
func NewNormalizer(policy StickPolicy, deadZone float64) *Normalizer {
	if !vmath.Finite(deadZone) || deadZone < 0 {
		deadZone = 0
	}
	return &Normalizer{
		lobby:     NewLobby(),
		policy:    policy,
		deadZone:  deadZone,
		padAction: make(map[GamepadID]bool),
	}
}

func (n *Normalizer) Lobby() *Lobby {
	return n.lobby
}

// ApplyConnections updates the lobby from the snapshot
// Returns the events that changed membership, in snapshot order
func (n *Normalizer) ApplyConnections(snap Snapshot) []GamepadEvent {
	var changed []GamepadEvent
	for _, ev := range snap.Gamepads {
		if n.lobby.Apply(ev) {
			changed = append(changed, ev)
		}
	}
	return changed
}

// Directions returns at most one intent per source: keyboard first, then pads by ascending ID
// Zero net input produces no intent
func (n *Normalizer) Directions(snap Snapshot) []Intent {
	var out []Intent

	if dir, ok := KeyboardDirection(snap.Keys); ok {
		out = append(out, Intent{Source: SourceKeyboard, Direction: dir})
	}

	for _, id := range n.lobby.Connected() {
		if dir, ok := n.stickDirection(snap.Stick(id)); ok {
			out = append(out, Intent{Source: PadSource(id), Direction: dir})
		}
	}
	return out
}

// ActionAsserted reports a fresh action press on keyboard or any connected pad
// Holding the control asserts once; it must be released before it asserts again
func (n *Normalizer) ActionAsserted(snap Snapshot) bool {
	asserted := snap.JustPressed.Has(KeyAction)

	for id := range n.padAction {
		if !snap.GamepadAction[id] || !n.lobby.Has(id) {
			delete(n.padAction, id)
		}
	}
	for id, held := range snap.GamepadAction {
		if !held || !n.lobby.Has(id) {
			continue
		}
		if !n.padAction[id] {
			asserted = true
			n.padAction[id] = true
		}
	}
	return asserted
}

// KeyboardDirection sums unit vectors of held arrows and normalizes
// Opposite keys cancel; a zero sum reports false
func KeyboardDirection(keys KeySet) (vmath.Vec3F, bool) {
	var sum vmath.Vec3F
	if keys.Has(KeyUp) {
		sum.Y++
	}
	if keys.Has(KeyDown) {
		sum.Y--
	}
	if keys.Has(KeyLeft) {
		sum.X--
	}
	if keys.Has(KeyRight) {
		sum.X++
	}
	if sum.IsZero() {
		return vmath.Vec3F{}, false
	}
	return vmath.V3FNormalize(sum), true
}

func (n *Normalizer) stickDirection(st Stick) (vmath.Vec3F, bool) {
	switch n.policy {
	case StickBothAxes:
		if st.X == 0 || st.Y == 0 {
			return vmath.Vec3F{}, false
		}
	default:
		if math.Hypot(st.X, st.Y) <= n.deadZone {
			return vmath.Vec3F{}, false
		}
	}

	dir := vmath.V3FNormalize(vmath.Vec3F{X: st.X, Y: st.Y})
	if dir.IsZero() {
		return vmath.Vec3F{}, false
	}
	return dir, true
}
