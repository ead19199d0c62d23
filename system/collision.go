package system

import (
	"math"

	"github.com/lixenwraith/baobei/core"
	"github.com/lixenwraith/baobei/engine"
	"github.com/lixenwraith/baobei/parameter"
	"github.com/lixenwraith/baobei/physics"
	"github.com/lixenwraith/baobei/vmath"
)

// CollisionSystem pushes moved solids out of every other solid
// Static anchors never move; only the entity being resolved is displaced
// The move is replayed in short steps so a long tick cannot tunnel through a wall
type CollisionSystem struct {
	world *engine.World
}

func NewCollisionSystem(world *engine.World) engine.System {
	s := &CollisionSystem{world: world}
	s.Init()
	return s
}

func (s *CollisionSystem) Init() {}

func (s *CollisionSystem) Name() string {
	return "collision"
}

func (s *CollisionSystem) Priority() int {
	return parameter.PriorityCollision
}

func (s *CollisionSystem) Update() {
	cs := s.world.Components
	solids := s.world.Query().With(cs.Position).With(cs.Collider).Execute()

	var movers []core.Entity
	for _, e := range solids {
		if cs.Static.Has(e) {
			continue
		}
		if mv, ok := cs.Movement.Get(e); ok && mv.Moved {
			movers = append(movers, e)
		}
	}
	if len(movers) == 0 {
		return
	}

	maxStep := s.maxStep(solids)
	for _, m := range movers {
		s.sweep(m, solids, maxStep)
	}
}

// maxStep is half the thinnest solid half-extent
// A step this short cannot carry a box centre past the centre of any solid it enters
func (s *CollisionSystem) maxStep(solids []core.Entity) float64 {
	cs := s.world.Components
	step := math.Inf(1)
	for _, e := range solids {
		col, _ := cs.Collider.Get(e)
		step = min(step, col.Size.X/4, col.Size.Y/4)
	}
	return step
}

// sweep replays m's move from its pre-move position in steps no longer than maxStep
// Each step is settled before the next; corrections carry forward so the mover slides along solids
func (s *CollisionSystem) sweep(m core.Entity, solids []core.Entity, maxStep float64) {
	cs := s.world.Components
	mv, _ := cs.Movement.Get(m)
	pos, _ := cs.Position.Get(m)

	target := pos.Vec3F
	delta := vmath.V3FSub(target, mv.From)
	steps := 1
	if dist := vmath.V3FMag(vmath.V3FPlanar(delta)); dist > maxStep {
		steps = int(math.Ceil(dist / maxStep))
	}

	var shift vmath.Vec3F
	for i := 1; i <= steps; i++ {
		next := target
		if i < steps {
			next = vmath.V3FAdd(mv.From, vmath.V3FScale(delta, float64(i)/float64(steps)))
		}
		next = vmath.V3FAdd(next, shift)
		settled := s.settle(m, next, solids)
		shift = vmath.V3FAdd(shift, vmath.V3FSub(settled, next))
	}

	if !shift.IsZero() {
		pos.Vec3F = vmath.V3FAdd(target, shift)
		cs.Position.Set(m, pos)
	}
}

// settle pushes m at pos out of every overlapping solid, in ID order, until a pass is clean
func (s *CollisionSystem) settle(m core.Entity, pos vmath.Vec3F, solids []core.Entity) vmath.Vec3F {
	cs := s.world.Components
	col, _ := cs.Collider.Get(m)

	for pass := 0; pass < parameter.CollisionIterations; pass++ {
		clean := true
		for _, o := range solids {
			if o == m {
				continue
			}
			opos, _ := cs.Position.Get(o)
			ocol, _ := cs.Collider.Get(o)

			dx, dy, hit := physics.Resolve(col.Box(pos), ocol.Box(opos.Vec3F), parameter.CollisionSkin)
			if !hit {
				continue
			}
			pos.X += dx
			pos.Y += dy
			clean = false
		}
		if clean {
			break
		}
	}
	return pos
}
