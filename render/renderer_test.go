package render

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/baobei/core"
	"github.com/lixenwraith/baobei/engine"
	"github.com/lixenwraith/baobei/parameter"
	"github.com/lixenwraith/baobei/room"
	"github.com/lixenwraith/baobei/vmath"
)

func TestDepth(t *testing.T) {
	tests := []struct {
		y, h, want float64
	}{
		{0, 720, 1000},
		{360, 720, 500},
		{720, 720, 0},
		{100, 0, 0},
	}
	for _, tt := range tests {
		if got := Depth(tt.y, tt.h); got != tt.want {
			t.Errorf("Depth(%v, %v): expected %v, got %v", tt.y, tt.h, tt.want, got)
		}
	}
}

func TestViewportFlipsY(t *testing.T) {
	vp := NewViewport(vmath.Vec2F{X: 1280, Y: 720}, 128, 72)

	if x, y := vp.Cell(0, 0); x != 0 || y != 71 {
		t.Errorf("Expected bottom-left at (0,71), got (%d,%d)", x, y)
	}
	if x, y := vp.Cell(1279, 719); x != 127 || y != 0 {
		t.Errorf("Expected top-right at (127,0), got (%d,%d)", x, y)
	}
	// Out of room points clamp to the edge cells
	if x, y := vp.Cell(-50, 9999); x != 0 || y != 0 {
		t.Errorf("Expected clamp to (0,0), got (%d,%d)", x, y)
	}

	x0, y0, x1, y1 := vp.Rect(vmath.BoxAt(vmath.Vec3F{X: 640, Y: 360}, vmath.Vec2F{X: 200, Y: 360}))
	if x0 != 54 || x1 != 74 || y0 != 18 || y1 != 54 {
		t.Errorf("Expected rect (54,18)-(74,54), got (%d,%d)-(%d,%d)", x0, y0, x1, y1)
	}
}

func newTestScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	screen.SetSize(w, h)
	t.Cleanup(screen.Fini)
	return screen
}

func screenText(s tcell.Screen) []string {
	w, h := s.Size()
	rows := make([]string, h)
	for y := 0; y < h; y++ {
		var b strings.Builder
		for x := 0; x < w; x++ {
			ch, _, _, _ := s.GetContent(x, y)
			b.WriteRune(ch)
		}
		rows[y] = b.String()
	}
	return rows
}

func spawnedSnapshot(t *testing.T, mode core.Mode) engine.Snapshot {
	t.Helper()
	w := engine.NewWorld()
	w.Resource.Rand = vmath.NewFastRand(3)
	if _, err := room.Spawn(w); err != nil {
		t.Fatalf("Spawn failed: %v", err)
	}
	if err := w.Resource.Game.SetMode(mode); err != nil {
		t.Fatal(err)
	}
	return engine.BuildSnapshot(w, 0)
}

func TestDrawMenu(t *testing.T) {
	screen := newTestScreen(t, 80, 24)
	NewRenderer(screen, true).Draw(spawnedSnapshot(t, core.ModeMenu))

	text := strings.Join(screenText(screen), "\n")
	if !strings.Contains(text, parameter.MenuTitle) {
		t.Error("Expected menu title on screen")
	}
	if !strings.Contains(text, parameter.MenuHint) {
		t.Error("Expected menu hint on screen")
	}
	if strings.ContainsRune(text, 'P') {
		t.Error("Expected no player drawn in menu")
	}
}

func TestDrawRoom(t *testing.T) {
	screen := newTestScreen(t, 128, 37)
	snap := spawnedSnapshot(t, core.ModeInGame)
	NewRenderer(screen, false).Draw(snap)

	rows := screenText(screen)
	text := strings.Join(rows, "\n")

	if n := strings.Count(text, "P"); n != 1 {
		t.Errorf("Expected one player glyph, got %d", n)
	}
	if !strings.ContainsRune(text, '@') {
		t.Error("Expected companion glyph")
	}
	for _, it := range []core.Item{core.ItemWaterGlass, core.ItemChips, core.ItemIceCream} {
		if !strings.ContainsRune(text, ItemGlyph(it)) {
			t.Errorf("Expected producer glyph for %v", it)
		}
	}
	if !strings.Contains(text, parameter.MoodFaces[len(parameter.MoodFaces)-1]) {
		t.Error("Expected happiest face for full mood")
	}

	status := rows[len(rows)-1]
	if !strings.Contains(status, "Happiness: 1.00") {
		t.Errorf("Expected happiness in status row, got %q", status)
	}
	if !strings.Contains(status, "wants:"+snap.Requested.String()) {
		t.Errorf("Expected requested item in status row, got %q", status)
	}
}

func TestObserveKeepsLatest(t *testing.T) {
	r := NewRenderer(newTestScreen(t, 10, 5), false)
	r.Observe(engine.Snapshot{Tick: 1})
	r.Observe(engine.Snapshot{Tick: 2})

	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.fresh || r.latest.Tick != 2 {
		t.Errorf("Expected fresh tick 2, got %v %d", r.fresh, r.latest.Tick)
	}
}
