package system

import (
	"fmt"

	"github.com/lixenwraith/baobei/engine"
	"github.com/lixenwraith/baobei/input"
)

// RegisterAll builds every gameplay phase and registers it with sched
// Returns the input system, which also reports connected gamepads
func RegisterAll(sched *engine.Scheduler, world *engine.World, normalizer *input.Normalizer) (*InputSystem, error) {
	in := NewInputSystem(world, normalizer)

	exchange, err := NewExchangeSystem(world)
	if err != nil {
		return nil, err
	}
	mood, err := NewMoodSystem(world)
	if err != nil {
		return nil, err
	}

	systems := []engine.System{
		in,
		NewMovementSystem(world),
		NewCollisionSystem(world),
		NewTriggerSystem(world),
		exchange,
		mood,
		NewSyncSystem(world),
	}
	for _, s := range systems {
		if err := sched.Register(s); err != nil {
			return nil, fmt.Errorf("register systems: %w", err)
		}
	}
	return in, nil
}
