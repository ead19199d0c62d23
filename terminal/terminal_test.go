package terminal

import (
	"context"
	"errors"
	"io"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/baobei/core"
	"github.com/lixenwraith/baobei/input"
	"github.com/lixenwraith/baobei/parameter"
)

func TestDefaultKeyMapLookup(t *testing.T) {
	km := DefaultKeyMap()
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want input.Key
	}{
		{"arrow up", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), input.KeyUp},
		{"wasd d", tcell.NewEventKey(tcell.KeyRune, 'd', tcell.ModNone), input.KeyRight},
		{"shifted A", tcell.NewEventKey(tcell.KeyRune, 'A', tcell.ModNone), input.KeyLeft},
		{"space", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), input.KeyAction},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), input.KeyEscape},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := km.Lookup(tt.ev)
			if !ok || got != tt.want {
				t.Errorf("Expected %v, got %v (%v)", tt.want, got, ok)
			}
		})
	}

	if _, ok := km.Lookup(tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone)); ok {
		t.Error("Expected unbound rune to miss")
	}
}

func TestParseKeyMap(t *testing.T) {
	km, err := ParseKeyMap(map[string]string{
		"enter": "action",
		"k":     "up",
		"space": "escape",
	})
	if err != nil {
		t.Fatalf("ParseKeyMap failed: %v", err)
	}
	if km.Special[tcell.KeyEnter] != input.KeyAction {
		t.Errorf("Expected enter bound to action")
	}
	if km.Runes['k'] != input.KeyUp || km.Runes[' '] != input.KeyEscape {
		t.Errorf("Expected rune overrides, got %v", km.Runes)
	}
	// Defaults survive and are not shared
	if km.Runes['w'] != input.KeyUp {
		t.Error("Expected default w binding kept")
	}
	if DefaultKeyMap().Runes[' '] != input.KeyAction {
		t.Error("Expected defaults unchanged by parse")
	}

	if _, err := ParseKeyMap(map[string]string{"pagedown": "up"}); !errors.Is(err, ErrUnknownKeyName) {
		t.Errorf("Expected ErrUnknownKeyName, got %v", err)
	}
	if _, err := ParseKeyMap(map[string]string{"k": "jump"}); err == nil {
		t.Error("Expected error for unknown logical key")
	}
}

func newFakeClockTracker() (*KeyTracker, *time.Time) {
	tr := NewKeyTracker()
	now := time.Unix(0, 0)
	tr.now = func() time.Time { return now }
	return tr, &now
}

func TestTrackerHoldAndRepeat(t *testing.T) {
	tr, now := newFakeClockTracker()

	tr.Press(input.KeyUp)
	snap := tr.Snapshot()
	if !snap.Keys.Has(input.KeyUp) || !snap.JustPressed.Has(input.KeyUp) {
		t.Fatalf("Expected fresh held up, got %+v", snap)
	}

	*now = now.Add(parameter.KeyHoldInitial - time.Millisecond)
	snap = tr.Snapshot()
	if !snap.Keys.Has(input.KeyUp) || snap.JustPressed.Has(input.KeyUp) {
		t.Errorf("Expected held without fresh press, got %+v", snap)
	}

	// Repeat before the deadline keeps it held
	tr.Press(input.KeyUp)
	*now = now.Add(parameter.KeyHoldRepeat - time.Millisecond)
	if snap = tr.Snapshot(); !snap.Keys.Has(input.KeyUp) || snap.JustPressed.Has(input.KeyUp) {
		t.Errorf("Expected repeat to extend hold, got %+v", snap)
	}

	*now = now.Add(parameter.KeyHoldRepeat)
	if snap = tr.Snapshot(); snap.Keys.Has(input.KeyUp) {
		t.Errorf("Expected release after deadline, got %+v", snap)
	}
}

func TestTrackerTapSeenOnce(t *testing.T) {
	tr, now := newFakeClockTracker()
	tr.Press(input.KeyAction)
	*now = now.Add(time.Second)

	if snap := tr.Snapshot(); !snap.Keys.Has(input.KeyAction) {
		t.Error("Expected tap visible in the next snapshot")
	}
	if snap := tr.Snapshot(); snap.Keys.Has(input.KeyAction) {
		t.Error("Expected tap gone after one snapshot")
	}
}

func TestTrackerReleaseAll(t *testing.T) {
	tr, _ := newFakeClockTracker()
	tr.Press(input.KeyLeft)
	tr.ReleaseAll()

	if snap := tr.Snapshot(); snap.Keys != 0 || snap.JustPressed != 0 {
		t.Errorf("Expected empty snapshot, got %+v", snap)
	}
}

type fakeControls struct {
	mode  atomic.Uint32
	muted atomic.Bool
}

func (f *fakeControls) Mode() core.Mode { return core.Mode(f.mode.Load()) }
func (f *fakeControls) StartGame()      { f.mode.Store(uint32(core.ModeInGame)) }
func (f *fakeControls) ToggleMute() bool {
	v := !f.muted.Load()
	f.muted.Store(v)
	return v
}

func newSimScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	t.Cleanup(screen.Fini)
	return screen
}

func silentLog() *logrus.Entry {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return logrus.NewEntry(l)
}

func TestPumpMenuThenGame(t *testing.T) {
	screen := newSimScreen(t)
	tr := NewKeyTracker()
	ctl := &fakeControls{}

	post := func(k tcell.Key, r rune, mod tcell.ModMask) {
		if err := screen.PostEvent(tcell.NewEventKey(k, r, mod)); err != nil {
			t.Fatalf("PostEvent: %v", err)
		}
	}
	post(tcell.KeyRune, 'd', tcell.ModNone) // ignored in menu
	post(tcell.KeyRune, 'm', tcell.ModNone)
	post(tcell.KeyEnter, 0, tcell.ModNone)
	post(tcell.KeyRune, 'd', tcell.ModNone)
	post(tcell.KeyCtrlC, 0, tcell.ModCtrl)

	err := Pump(context.Background(), screen, tr, DefaultKeyMap(), ctl, silentLog())
	if !errors.Is(err, ErrQuit) {
		t.Fatalf("Expected ErrQuit, got %v", err)
	}

	if ctl.Mode() != core.ModeInGame {
		t.Error("Expected game started by enter")
	}
	if !ctl.muted.Load() {
		t.Error("Expected mute toggled in menu")
	}
	snap := tr.Snapshot()
	if !snap.JustPressed.Has(input.KeyRight) || snap.JustPressed.Has(input.KeyUp) {
		t.Errorf("Expected only right pressed, got %+v", snap)
	}
}

func TestPumpQuitInMenu(t *testing.T) {
	screen := newSimScreen(t)
	_ = screen.PostEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone))

	err := Pump(context.Background(), screen, NewKeyTracker(), DefaultKeyMap(), &fakeControls{}, silentLog())
	if !errors.Is(err, ErrQuit) {
		t.Errorf("Expected ErrQuit, got %v", err)
	}
}

func TestPumpStopsOnCancel(t *testing.T) {
	screen := newSimScreen(t)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)

	go func() {
		done <- Pump(ctx, screen, NewKeyTracker(), DefaultKeyMap(), &fakeControls{}, silentLog())
	}()
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Expected nil on cancel, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Pump did not stop")
	}
}
