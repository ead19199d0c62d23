package system

import (
	"testing"
	"time"

	"github.com/lixenwraith/baobei/component"
	"github.com/lixenwraith/baobei/core"
	"github.com/lixenwraith/baobei/engine"
	"github.com/lixenwraith/baobei/input"
	"github.com/lixenwraith/baobei/room"
	"github.com/lixenwraith/baobei/vmath"
)

// harness is a spawned room with every phase registered
type harness struct {
	t      *testing.T
	world  *engine.World
	sched  *engine.Scheduler
	input  *InputSystem
	layout room.Layout
}

func newHarness(t *testing.T, audio engine.AudioPlayer) *harness {
	t.Helper()

	w := engine.NewWorld()
	w.Resource.Rand = vmath.NewFastRand(42)
	w.Resource.Audio = audio

	layout, err := room.Spawn(w)
	if err != nil {
		t.Fatalf("Spawn failed: %v", err)
	}

	sched := engine.NewScheduler(w)
	in, err := RegisterAll(sched, w, input.NewNormalizer(input.StickAnyAxis, 0.15))
	if err != nil {
		t.Fatalf("RegisterAll failed: %v", err)
	}

	return &harness{t: t, world: w, sched: sched, input: in, layout: layout}
}

func (h *harness) tick(snap input.Snapshot, dt time.Duration) {
	h.sched.Tick(snap, dt)
}

func (h *harness) action(dt time.Duration) {
	h.tick(input.Snapshot{Keys: input.KeysOf(input.KeyAction), JustPressed: input.KeysOf(input.KeyAction)}, dt)
}

func (h *harness) place(e core.Entity, x, y float64) {
	h.world.Components.Position.Set(e, component.PositionComponent{Vec3F: vmath.Vec3F{X: x, Y: y}})
}

func (h *harness) position(e core.Entity) vmath.Vec3F {
	pos, ok := h.world.Components.Position.Get(e)
	if !ok {
		h.t.Fatalf("entity %d has no position", e)
	}
	return pos.Vec3F
}

func (h *harness) carrier() component.CarrierComponent {
	c, _ := h.world.Components.Carrier.Get(h.layout.Player)
	return c
}

func (h *harness) carry(item core.Item) {
	h.world.Components.Carrier.Set(h.layout.Player, component.CarrierComponent{Item: item, Carrying: true})
}

func (h *harness) request() core.Item {
	r, _ := h.world.Components.Requester.Get(h.layout.Companion)
	return r.Item
}

func (h *harness) setRequest(item core.Item) {
	h.world.Components.Requester.Set(h.layout.Companion, component.RequesterComponent{Item: item})
}

func (h *harness) mood() core.Mood {
	m, _ := h.world.Components.Mood.Get(h.layout.Companion)
	return m.Value
}

func (h *harness) setMood(v core.Mood) {
	h.world.Components.Mood.Set(h.layout.Companion, component.MoodComponent{Value: v})
}

func (h *harness) stat(key string) int64 {
	return h.world.Resource.Status.Ints.Get(key).Load()
}

// Spots inside trigger areas of the default room that touch no solid
var (
	spotCompanion = vmath.Vec3F{X: 1050, Y: 110}
	spotIceCream  = vmath.Vec3F{X: 720, Y: 470}
	spotNowhere   = vmath.Vec3F{X: 640, Y: 260}
)

var noInput = input.Snapshot{}
