package event

import "github.com/lixenwraith/baobei/parameter"

// Bus holds one queue per message kind
type Bus struct {
	Direction    *Queue[DirectionMessage]
	Action       *Queue[ActionMessage]
	Trigger      *Queue[TriggerMessage]
	Exchange     *Queue[ExchangeMessage]
	Delivered    *Queue[DeliveredMessage]
	MoodDepleted *Queue[MoodDepletedMessage]
}

// NewBus creates queues sized from parameter limits
func NewBus() *Bus {
	return &Bus{
		Direction:    NewQueue[DirectionMessage](parameter.DirectionQueueSize),
		Action:       NewQueue[ActionMessage](parameter.ActionQueueSize),
		Trigger:      NewQueue[TriggerMessage](parameter.TriggerQueueSize),
		Exchange:     NewQueue[ExchangeMessage](parameter.ExchangeQueueSize),
		Delivered:    NewQueue[DeliveredMessage](parameter.MoodQueueSize),
		MoodDepleted: NewQueue[MoodDepletedMessage](parameter.MoodQueueSize),
	}
}

// Drain empties every queue, called at end of tick
func (b *Bus) Drain() {
	b.Direction.Drain()
	b.Action.Drain()
	b.Trigger.Drain()
	b.Exchange.Drain()
	b.Delivered.Drain()
	b.MoodDepleted.Drain()
}

// Dropped sums rejected messages across queues
func (b *Bus) Dropped() uint64 {
	return b.Direction.Dropped() + b.Action.Dropped() + b.Trigger.Dropped() +
		b.Exchange.Dropped() + b.Delivered.Dropped() + b.MoodDepleted.Dropped()
}
