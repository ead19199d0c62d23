package system

import (
	"github.com/lixenwraith/baobei/engine"
	"github.com/lixenwraith/baobei/event"
	"github.com/lixenwraith/baobei/parameter"
	"github.com/lixenwraith/baobei/physics"
	"github.com/lixenwraith/baobei/vmath"
)

// MovementSystem integrates positions of movable entities from direction messages
// Several messages in one tick accumulate
type MovementSystem struct {
	world  *engine.World
	cursor event.Cursor
}

func NewMovementSystem(world *engine.World) engine.System {
	s := &MovementSystem{world: world}
	s.Init()
	return s
}

func (s *MovementSystem) Init() {
	s.cursor = event.Cursor{}
}

func (s *MovementSystem) Name() string {
	return "movement"
}

func (s *MovementSystem) Priority() int {
	return parameter.PriorityMovement
}

func (s *MovementSystem) Update() {
	res := s.world.Resource
	cs := s.world.Components
	dt := res.Time.DeltaTime
	msgs := res.Event.Direction.Read(&s.cursor)

	var sum vmath.Vec3F
	for _, m := range msgs {
		sum = vmath.V3FAdd(sum, m.Direction)
	}

	for _, e := range s.world.Query().With(cs.Movement).With(cs.Position).Execute() {
		mv, _ := cs.Movement.Get(e)
		pos, _ := cs.Position.Get(e)

		next := pos.Vec3F
		for _, m := range msgs {
			next = physics.Integrate(next, m.Direction, mv.Speed, dt)
		}

		mv.Direction = vmath.V3FNormalize(sum)
		mv.Moved = next != pos.Vec3F
		mv.From = pos.Vec3F
		pos.Vec3F = next

		cs.Movement.Set(e, mv)
		cs.Position.Set(e, pos)
	}
}
