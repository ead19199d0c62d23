package engine

import (
	"slices"
	"time"

	"github.com/lixenwraith/baobei/core"
	"github.com/lixenwraith/baobei/parameter"
	"github.com/lixenwraith/baobei/vmath"
)

// EntityView is the read-only presentation state of one entity
type EntityView struct {
	Entity     core.Entity
	Kind       core.Kind
	Name       string
	Position   vmath.Vec3F
	Box        vmath.Box // Collider box, valid when HasBox
	HasBox     bool
	Trigger    vmath.Box // Trigger area, valid when HasTrigger
	HasTrigger bool
	Item       core.Item // Produced or carried item, valid when HasItem
	HasItem    bool
}

// Snapshot is the output state published after each tick
// Value type, safe to hand to other goroutines
type Snapshot struct {
	Tick       uint64
	Elapsed    time.Duration
	Mode       core.Mode
	Room       vmath.Vec2F
	Entities   []EntityView // Sorted by entity ID
	Carrying   bool
	Carried    core.Item
	Requested  core.Item // Valid when HasRequest
	HasRequest bool
	Mood       core.Mood
	MoodIndex  int
	Gamepads   int
}

// BuildSnapshot copies presentation state out of the world
func BuildSnapshot(w *World, gamepads int) Snapshot {
	res := w.Resource
	cs := w.Components

	snap := Snapshot{
		Tick:     res.Time.TickNumber,
		Elapsed:  res.Time.Elapsed,
		Mode:     res.Game.Mode(),
		Room:     vmath.Vec2F{X: res.Config.RoomWidth, Y: res.Config.RoomHeight},
		Gamepads: gamepads,
	}

	entities := cs.Position.All()
	slices.Sort(entities)
	snap.Entities = make([]EntityView, 0, len(entities))

	for _, e := range entities {
		pos, _ := cs.Position.Get(e)
		view := EntityView{Entity: e, Position: pos.Vec3F}

		if k, ok := cs.Kind.Get(e); ok {
			view.Kind = k.Kind
			view.Name = k.Name
		}
		if col, ok := cs.Collider.Get(e); ok {
			view.Box = col.Box(pos.Vec3F)
			view.HasBox = true
		}
		if trig, ok := cs.Trigger.Get(e); ok {
			view.Trigger = trig.Box(pos.Vec3F)
			view.HasTrigger = true
		}
		if prod, ok := cs.Producer.Get(e); ok {
			view.Item = prod.Item
			view.HasItem = true
		}
		if carrier, ok := cs.Carrier.Get(e); ok && carrier.Carrying {
			view.Item = carrier.Item
			view.HasItem = true
			snap.Carrying = true
			snap.Carried = carrier.Item
		}

		snap.Entities = append(snap.Entities, view)
	}

	if companion, ok := Single(cs.Companion); ok {
		if req, ok := cs.Requester.Get(companion); ok {
			snap.Requested = req.Item
			snap.HasRequest = true
		}
		if mood, ok := cs.Mood.Get(companion); ok {
			snap.Mood = mood.Value
			snap.MoodIndex = mood.Value.Index(parameter.MoodFrames)
		}
	}

	return snap
}

// Player returns the view of the player entity
func (s Snapshot) Player() (EntityView, bool) {
	return s.find(core.KindPlayer)
}

// Companion returns the view of the companion entity
func (s Snapshot) Companion() (EntityView, bool) {
	return s.find(core.KindCompanion)
}

func (s Snapshot) find(k core.Kind) (EntityView, bool) {
	for _, v := range s.Entities {
		if v.Kind == k {
			return v, true
		}
	}
	return EntityView{}, false
}
