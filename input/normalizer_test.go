package input

import (
	"math"
	"testing"

	"github.com/lixenwraith/baobei/vmath"
	"pgregory.net/rapid"
)

// TestKeyboardAllArrowCombinations walks the 16 arrow subsets
func TestKeyboardAllArrowCombinations(t *testing.T) {
	arrows := []Key{KeyUp, KeyDown, KeyLeft, KeyRight}
	for mask := 0; mask < 16; mask++ {
		var keys KeySet
		for i, k := range arrows {
			if mask&(1<<i) != 0 {
				keys = keys.With(k)
			}
		}

		dir, ok := KeyboardDirection(keys)

		var wantX, wantY float64
		if keys.Has(KeyRight) {
			wantX++
		}
		if keys.Has(KeyLeft) {
			wantX--
		}
		if keys.Has(KeyUp) {
			wantY++
		}
		if keys.Has(KeyDown) {
			wantY--
		}

		if wantX == 0 && wantY == 0 {
			if ok {
				t.Errorf("mask %04b: Expected no direction, got %+v", mask, dir)
			}
			continue
		}
		if !ok {
			t.Errorf("mask %04b: Expected a direction", mask)
			continue
		}
		if math.Abs(vmath.V3FMag(dir)-1) > 1e-9 {
			t.Errorf("mask %04b: Expected unit vector, got length %v", mask, vmath.V3FMag(dir))
		}
		if math.Signbit(dir.X) != math.Signbit(wantX) && wantX != 0 {
			t.Errorf("mask %04b: Expected X sign of %v, got %v", mask, wantX, dir.X)
		}
		if math.Signbit(dir.Y) != math.Signbit(wantY) && wantY != 0 {
			t.Errorf("mask %04b: Expected Y sign of %v, got %v", mask, wantY, dir.Y)
		}
	}
}

func TestKeyboardUpIsPositiveY(t *testing.T) {
	dir, ok := KeyboardDirection(KeysOf(KeyUp))
	if !ok || dir.Y != 1 || dir.X != 0 {
		t.Errorf("Expected (0,1), got %+v ok=%v", dir, ok)
	}
}

// TestNormalizerNeverEmitsNonUnit checks every emitted intent for arbitrary device state
func TestNormalizerNeverEmitsNonUnit(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		policy := StickPolicy(rapid.IntRange(0, 1).Draw(t, "policy"))
		n := NewNormalizer(policy, rapid.Float64Range(0, 0.5).Draw(t, "deadzone"))

		pads := rapid.IntRange(0, 4).Draw(t, "pads")
		snap := Snapshot{
			Keys: KeySet(rapid.Uint8Range(0, 63).Draw(t, "keys")),
			Axes: make(map[GamepadID]Stick),
		}
		for i := 0; i < pads; i++ {
			id := GamepadID(i)
			snap.Gamepads = append(snap.Gamepads, GamepadEvent{ID: id, Connected: true})
			snap.Axes[id] = Stick{
				X: rapid.Float64Range(-1, 1).Draw(t, "x"),
				Y: rapid.Float64Range(-1, 1).Draw(t, "y"),
			}
		}
		n.ApplyConnections(snap)

		seen := make(map[Source]bool)
		for _, in := range n.Directions(snap) {
			if !vmath.IsUnitOrZero(in.Direction) || in.Direction.IsZero() {
				t.Fatalf("Non-unit direction %+v from %v", in.Direction, in.Source)
			}
			if seen[in.Source] {
				t.Fatalf("Duplicate intent from %v", in.Source)
			}
			seen[in.Source] = true
		}
	})
}

func TestStickPolicies(t *testing.T) {
	tests := []struct {
		name   string
		policy StickPolicy
		stick  Stick
		want   bool
	}{
		{"both axes diagonal", StickBothAxes, Stick{0.5, 0.5}, true},
		{"both axes horizontal dropped", StickBothAxes, Stick{1, 0}, false},
		{"both axes vertical dropped", StickBothAxes, Stick{0, -1}, false},
		{"any axis horizontal", StickAnyAxis, Stick{1, 0}, true},
		{"any axis vertical", StickAnyAxis, Stick{0, -1}, true},
		{"any axis inside dead zone", StickAnyAxis, Stick{0.05, 0.05}, false},
		{"any axis centred", StickAnyAxis, Stick{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := NewNormalizer(tt.policy, 0.15)
			snap := Snapshot{
				Gamepads: []GamepadEvent{{ID: 3, Connected: true}},
				Axes:     map[GamepadID]Stick{3: tt.stick},
			}
			n.ApplyConnections(snap)

			got := n.Directions(snap)
			if (len(got) == 1) != tt.want {
				t.Fatalf("Expected emit=%v, got %d intents", tt.want, len(got))
			}
			if tt.want && got[0].Source != PadSource(3) {
				t.Errorf("Expected source gamepad:3, got %v", got[0].Source)
			}
		})
	}
}

func TestDisconnectedPadIgnored(t *testing.T) {
	n := NewNormalizer(StickAnyAxis, 0.1)

	// Stick data for a pad never connected
	snap := Snapshot{Axes: map[GamepadID]Stick{7: {1, 0}}, GamepadAction: map[GamepadID]bool{7: true}}
	if got := n.Directions(snap); len(got) != 0 {
		t.Errorf("Expected no intents from unknown pad, got %d", len(got))
	}
	if n.ActionAsserted(snap) {
		t.Error("Expected action from unknown pad to be ignored")
	}

	n.ApplyConnections(Snapshot{Gamepads: []GamepadEvent{{ID: 7, Connected: true}}})
	if got := n.Directions(snap); len(got) != 1 {
		t.Errorf("Expected 1 intent after connect, got %d", len(got))
	}
	if !n.ActionAsserted(snap) {
		t.Error("Expected action from connected pad")
	}

	n.ApplyConnections(Snapshot{Gamepads: []GamepadEvent{{ID: 7, Connected: false}}})
	if got := n.Directions(snap); len(got) != 0 {
		t.Errorf("Expected no intents after disconnect, got %d", len(got))
	}
}

func TestActionAssertsOnPressOnly(t *testing.T) {
	n := NewNormalizer(StickAnyAxis, 0.1)

	if n.ActionAsserted(Snapshot{Keys: KeysOf(KeyAction)}) {
		t.Error("Expected held key without fresh press to be ignored")
	}
	if !n.ActionAsserted(Snapshot{Keys: KeysOf(KeyAction), JustPressed: KeysOf(KeyAction)}) {
		t.Error("Expected fresh key press to assert")
	}

	n.ApplyConnections(Snapshot{Gamepads: []GamepadEvent{{ID: 1, Connected: true}}})
	held := Snapshot{GamepadAction: map[GamepadID]bool{1: true}}
	released := Snapshot{GamepadAction: map[GamepadID]bool{1: false}}

	want := []struct {
		snap Snapshot
		want bool
	}{
		{held, true},
		{held, false},
		{held, false},
		{released, false},
		{held, true},
	}
	for i, step := range want {
		if got := n.ActionAsserted(step.snap); got != step.want {
			t.Errorf("Step %d: expected %v, got %v", i, step.want, got)
		}
	}
}

func TestMissingAxisReadsZero(t *testing.T) {
	snap := Snapshot{Axes: map[GamepadID]Stick{1: {math.NaN(), 0.5}}}
	if st := snap.Stick(2); st != (Stick{}) {
		t.Errorf("Expected zero stick for missing pad, got %+v", st)
	}
	if st := snap.Stick(1); st.X != 0 || st.Y != 0.5 {
		t.Errorf("Expected NaN axis to read zero, got %+v", st)
	}
}

func TestKeyboardBeforePadsInIDOrder(t *testing.T) {
	n := NewNormalizer(StickAnyAxis, 0)
	snap := Snapshot{
		Keys: KeysOf(KeyLeft),
		Gamepads: []GamepadEvent{
			{ID: 9, Connected: true},
			{ID: 2, Connected: true},
		},
		Axes: map[GamepadID]Stick{9: {0, 1}, 2: {1, 0}},
	}
	changed := n.ApplyConnections(snap)
	if len(changed) != 2 {
		t.Fatalf("Expected 2 lobby changes, got %d", len(changed))
	}

	got := n.Directions(snap)
	want := []Source{SourceKeyboard, PadSource(2), PadSource(9)}
	if len(got) != len(want) {
		t.Fatalf("Expected %d intents, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i].Source != want[i] {
			t.Errorf("Intent %d: expected %v, got %v", i, want[i], got[i].Source)
		}
	}
}

func TestLobbyIgnoresDuplicates(t *testing.T) {
	l := NewLobby()
	if !l.Apply(GamepadEvent{ID: 1, Connected: true}) {
		t.Error("Expected first connect to change lobby")
	}
	if l.Apply(GamepadEvent{ID: 1, Connected: true}) {
		t.Error("Expected duplicate connect to be ignored")
	}
	if l.Apply(GamepadEvent{ID: 5, Connected: false}) {
		t.Error("Expected unknown disconnect to be ignored")
	}
	if l.Len() != 1 {
		t.Errorf("Expected 1 pad, got %d", l.Len())
	}
}

func TestParseStickPolicy(t *testing.T) {
	if p, err := ParseStickPolicy("both_axes"); err != nil || p != StickBothAxes {
		t.Errorf("Expected StickBothAxes, got %v err=%v", p, err)
	}
	if p, err := ParseStickPolicy(""); err != nil || p != StickAnyAxis {
		t.Errorf("Expected default StickAnyAxis, got %v err=%v", p, err)
	}
	if _, err := ParseStickPolicy("diagonal"); err == nil {
		t.Error("Expected error for unknown policy")
	}
}
