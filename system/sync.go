package system

import (
	"sync/atomic"

	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/baobei/core"
	"github.com/lixenwraith/baobei/engine"
	"github.com/lixenwraith/baobei/event"
	"github.com/lixenwraith/baobei/parameter"
	"github.com/lixenwraith/baobei/status"
)

// SyncSystem forwards gameplay outcomes to presentation: audio cues, metrics and log
// It never mutates entity state
type SyncSystem struct {
	world *engine.World
	log   *logrus.Entry

	exchangeCursor event.Cursor
	depletedCursor event.Cursor

	statPickups    *atomic.Int64
	statDrops      *atomic.Int64
	statDeliveries *atomic.Int64
	statDepletions *atomic.Int64
	statCues       *atomic.Int64
	statMood       *status.AtomicFloat
}

func NewSyncSystem(world *engine.World) engine.System {
	reg := world.Resource.Status
	s := &SyncSystem{
		world:          world,
		statPickups:    reg.Ints.Get(status.KeyPickups),
		statDrops:      reg.Ints.Get(status.KeyDrops),
		statDeliveries: reg.Ints.Get(status.KeyDeliveries),
		statDepletions: reg.Ints.Get(status.KeyDepletions),
		statCues:       reg.Ints.Get(status.KeyCuesPlayed),
		statMood:       reg.Floats.Get(status.KeyMood),
	}
	s.log = world.Resource.Log.WithField("system", s.Name())
	s.Init()
	return s
}

func (s *SyncSystem) Init() {
	s.exchangeCursor = event.Cursor{}
	s.depletedCursor = event.Cursor{}
}

func (s *SyncSystem) Name() string {
	return "sync"
}

func (s *SyncSystem) Priority() int {
	return parameter.PrioritySync
}

func (s *SyncSystem) Update() {
	res := s.world.Resource

	for _, ex := range res.Event.Exchange.Read(&s.exchangeCursor) {
		var cue core.SoundType
		switch ex.Kind {
		case event.ExchangePickup:
			cue = core.SoundPickup
			s.statPickups.Add(1)
		case event.ExchangeDrop:
			cue = core.SoundDrop
			s.statDrops.Add(1)
		case event.ExchangeDeliver:
			cue = core.SoundDeliver
			s.statDeliveries.Add(1)
		}
		s.play(cue)

		s.log.WithFields(logrus.Fields{
			"transition": ex.Kind.String(),
			"item":       ex.Item.String(),
			"requested":  ex.Requested.String(),
			"tick":       res.Time.TickNumber,
		}).Debug("item exchange")
	}

	for _, dep := range res.Event.MoodDepleted.Read(&s.depletedCursor) {
		s.statDepletions.Add(1)
		s.play(core.SoundSad)
		s.log.WithField("companion", dep.Companion).Info("companion mood depleted")
	}

	if companion, ok := engine.Single(s.world.Components.Companion); ok {
		if mood, ok := s.world.Components.Mood.Get(companion); ok {
			s.statMood.Set(float64(mood.Value))
		}
	}
}

func (s *SyncSystem) play(cue core.SoundType) {
	player := s.world.Resource.Audio
	if player == nil {
		return
	}
	if player.Play(cue) {
		s.statCues.Add(1)
	}
}
