package system

import (
	"sync/atomic"

	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/baobei/engine"
	"github.com/lixenwraith/baobei/event"
	"github.com/lixenwraith/baobei/input"
	"github.com/lixenwraith/baobei/parameter"
	"github.com/lixenwraith/baobei/status"
)

// InputSystem turns the tick's device snapshot into direction and action messages
// Lobby maintenance runs in every mode, message emission only in-game
type InputSystem struct {
	world      *engine.World
	normalizer *input.Normalizer
	log        *logrus.Entry

	statPads *atomic.Int64
}

// NewInputSystem creates an input system owning normalizer and its gamepad lobby
func NewInputSystem(world *engine.World, normalizer *input.Normalizer) *InputSystem {
	s := &InputSystem{
		world:      world,
		normalizer: normalizer,
		statPads:   world.Resource.Status.Ints.Get(status.KeyGamepads),
	}
	s.log = world.Resource.Log.WithField("system", s.Name())
	s.Init()
	return s
}

// Init resets session state for new game
func (s *InputSystem) Init() {}

// Name returns system's name
func (s *InputSystem) Name() string {
	return "input"
}

// Priority returns the system's priority
func (s *InputSystem) Priority() int {
	return parameter.PriorityInput
}

// PreUpdate applies gamepad connection changes
func (s *InputSystem) PreUpdate() {
	snap := s.world.Resource.Input.Snapshot
	for _, ev := range s.normalizer.ApplyConnections(snap) {
		if ev.Connected {
			s.log.WithField("gamepad", ev.ID).Info("gamepad connected")
		} else {
			s.log.WithField("gamepad", ev.ID).Info("gamepad disconnected")
		}
	}
	s.statPads.Store(int64(s.normalizer.Lobby().Len()))
}

// Update emits one direction message per active source and the action message
func (s *InputSystem) Update() {
	res := s.world.Resource
	snap := res.Input.Snapshot

	for _, intent := range s.normalizer.Directions(snap) {
		if !res.Event.Direction.Push(event.DirectionMessage{Source: intent.Source, Direction: intent.Direction}) {
			s.log.WithField("source", intent.Source.String()).Warn("direction queue full")
		}
	}

	if s.normalizer.ActionAsserted(snap) {
		res.Event.Action.Push(event.ActionMessage{})
	}
}

// Gamepads returns the number of connected pads
func (s *InputSystem) Gamepads() int {
	return s.normalizer.Lobby().Len()
}
