package system

import (
	"slices"

	"github.com/lixenwraith/baobei/engine"
	"github.com/lixenwraith/baobei/event"
	"github.com/lixenwraith/baobei/parameter"
	"github.com/lixenwraith/baobei/physics"
	"github.com/lixenwraith/baobei/vmath"
)

// TriggerSystem tests every trigger area against every other positioned entity
// Entities with a collider are tested by box overlap, others by their point position
type TriggerSystem struct {
	world   *engine.World
	tracker *physics.TriggerTracker
}

func NewTriggerSystem(world *engine.World) engine.System {
	s := &TriggerSystem{
		world:   world,
		tracker: physics.NewTriggerTracker(),
	}
	s.Init()
	return s
}

// Init forgets remembered overlaps
func (s *TriggerSystem) Init() {
	s.tracker.Reset()
}

func (s *TriggerSystem) Name() string {
	return "trigger"
}

func (s *TriggerSystem) Priority() int {
	return parameter.PriorityTrigger
}

func (s *TriggerSystem) Update() {
	cs := s.world.Components
	queue := s.world.Resource.Event.Trigger

	owners := s.world.Query().With(cs.Position).With(cs.Trigger).Execute()
	others := cs.Position.All()
	slices.Sort(others)

	for _, owner := range owners {
		opos, _ := cs.Position.Get(owner)
		trig, _ := cs.Trigger.Get(owner)
		area := trig.Box(opos.Vec3F)

		for _, other := range others {
			if other == owner {
				continue
			}
			pos, _ := cs.Position.Get(other)

			var inside bool
			if col, ok := cs.Collider.Get(other); ok {
				inside = physics.Overlaps(area, col.Box(pos.Vec3F))
			} else {
				inside = vmath.BoxContainsPoint(area, pos.X, pos.Y)
			}

			pair := physics.Pair{Owner: owner, Other: other}
			if state := s.tracker.Observe(pair, inside); state != physics.TriggerNone {
				queue.Push(event.TriggerMessage{Owner: owner, Other: other, State: state})
			}
		}
	}

	for _, pair := range s.tracker.Sweep() {
		queue.Push(event.TriggerMessage{Owner: pair.Owner, Other: pair.Other, State: physics.TriggerExited})
	}
}
