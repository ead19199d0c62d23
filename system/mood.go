package system

import (
	"fmt"

	"github.com/lixenwraith/baobei/core"
	"github.com/lixenwraith/baobei/engine"
	"github.com/lixenwraith/baobei/event"
	"github.com/lixenwraith/baobei/parameter"
)

// MoodSystem rewards deliveries and decays the companion mood on a fixed interval
// Depletion is reported once per fall to zero
type MoodSystem struct {
	world *engine.World

	interval core.Interval
	cursor   event.Cursor
	depleted bool
}

func NewMoodSystem(world *engine.World) (engine.System, error) {
	iv, err := core.NewInterval(world.Resource.Config.MoodInterval.Duration)
	if err != nil {
		return nil, fmt.Errorf("mood: %w", err)
	}
	s := &MoodSystem{world: world, interval: iv}
	s.Init()
	return s, nil
}

func (s *MoodSystem) Init() {
	s.interval.Reset()
	s.cursor = event.Cursor{}
	s.depleted = false
}

func (s *MoodSystem) Name() string {
	return "mood"
}

func (s *MoodSystem) Priority() int {
	return parameter.PriorityMood
}

func (s *MoodSystem) Update() {
	res := s.world.Resource
	cs := s.world.Components
	cfg := res.Config

	delivered := res.Event.Delivered.Read(&s.cursor)
	periods := s.interval.Advance(res.Time.DeltaTime)

	companion, ok := engine.Single(cs.Companion)
	if !ok {
		return
	}
	mood, ok := cs.Mood.Get(companion)
	if !ok {
		return
	}

	for range delivered {
		mood.Value = mood.Value.Add(cfg.MoodReward)
	}
	if periods > 0 {
		mood.Value = mood.Value.Sub(cfg.MoodDecay * float64(periods))
	}
	cs.Mood.Set(companion, mood)

	switch {
	case mood.Value <= core.MoodEmpty && !s.depleted:
		s.depleted = true
		res.Event.MoodDepleted.Push(event.MoodDepletedMessage{Companion: companion})
	case mood.Value > core.MoodEmpty:
		s.depleted = false
	}
}
