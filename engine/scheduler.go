package engine

import (
	"errors"
	"fmt"
	"sort"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/baobei/core"
	"github.com/lixenwraith/baobei/input"
	"github.com/lixenwraith/baobei/status"
)

var ErrDuplicatePriority = errors.New("duplicate system priority")

// Scheduler composes systems into one tick
// Order per tick: time, device snapshot, pre-updates, escape check, mode gate, phases, drain
type Scheduler struct {
	world       *World
	systems     []System
	preUpdaters []PreUpdater

	statTicks   *atomic.Int64
	statDropped *atomic.Int64
	statMode    *status.AtomicString
}

// NewScheduler creates a scheduler over world
func NewScheduler(world *World) *Scheduler {
	reg := world.Resource.Status
	s := &Scheduler{
		world:       world,
		statTicks:   reg.Ints.Get(status.KeyTicks),
		statDropped: reg.Ints.Get(status.KeyDropped),
		statMode:    reg.Strings.Get(status.KeyMode),
	}
	s.statMode.Store(world.Resource.Game.Mode().String())
	return s
}

// Register adds a system and keeps phases sorted by priority
func (s *Scheduler) Register(sys System) error {
	for _, existing := range s.systems {
		if existing.Priority() == sys.Priority() {
			return fmt.Errorf("register %s at %d, taken by %s: %w",
				sys.Name(), sys.Priority(), existing.Name(), ErrDuplicatePriority)
		}
	}

	s.systems = append(s.systems, sys)
	sort.SliceStable(s.systems, func(i, j int) bool {
		return s.systems[i].Priority() < s.systems[j].Priority()
	})

	if pu, ok := sys.(PreUpdater); ok {
		s.preUpdaters = append(s.preUpdaters, pu)
	}
	return nil
}

// Systems returns registered systems in execution order
func (s *Scheduler) Systems() []System {
	result := make([]System, len(s.systems))
	copy(result, s.systems)
	return result
}

// StartGame switches Menu to InGame, nothing else is reset
func (s *Scheduler) StartGame() {
	s.setMode(core.ModeInGame)
}

// Tick advances the simulation by dt using snap as the device state
func (s *Scheduler) Tick(snap input.Snapshot, dt time.Duration) {
	res := s.world.Resource
	if dt < 0 {
		dt = 0
	}

	res.Time.Update(dt)
	res.Input.Snapshot = snap
	s.statTicks.Store(int64(res.Time.TickNumber))

	for _, pu := range s.preUpdaters {
		pu.PreUpdate()
	}

	// Escape is independent of gameplay phases
	if res.Game.InGame() && snap.EscapePressed() {
		s.setMode(core.ModeMenu)
	}

	if res.Game.InGame() {
		for _, sys := range s.systems {
			sys.Update()
		}
	}

	s.statDropped.Store(int64(res.Event.Dropped()))
	res.Event.Drain()
}

func (s *Scheduler) setMode(m core.Mode) {
	game := s.world.Resource.Game
	prev := game.Mode()
	if prev == m {
		return
	}
	if err := game.SetMode(m); err != nil {
		s.world.Resource.Log.WithError(err).Error("mode change rejected")
		return
	}
	s.statMode.Store(m.String())
	s.world.Resource.Log.WithFields(logrus.Fields{
		"from": prev.String(),
		"to":   m.String(),
	}).Info("mode changed")
}
