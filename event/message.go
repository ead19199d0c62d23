package event

import (
	"github.com/lixenwraith/baobei/core"
	"github.com/lixenwraith/baobei/input"
	"github.com/lixenwraith/baobei/physics"
	"github.com/lixenwraith/baobei/vmath"
)

// DirectionMessage is one normalized movement intent
// Trigger: InputSystem, one per source per tick
// Consumer: MovementSystem
type DirectionMessage struct {
	Source    input.Source
	Direction vmath.Vec3F
}

// ActionMessage signals the pick/drop control is asserted this tick
// Trigger: InputSystem
// Consumer: ExchangeSystem
type ActionMessage struct {
	Source input.Source
}

// TriggerMessage reports a trigger pair transition other than None
// Trigger: TriggerSystem
// Consumer: ExchangeSystem
type TriggerMessage struct {
	Owner core.Entity
	Other core.Entity
	State physics.TriggerState
}

// ExchangeKind is the transition taken by the item exchange
type ExchangeKind uint8

const (
	ExchangePickup ExchangeKind = iota
	ExchangeDrop
	ExchangeDeliver
)

func (k ExchangeKind) String() string {
	switch k {
	case ExchangePickup:
		return "pickup"
	case ExchangeDrop:
		return "drop"
	case ExchangeDeliver:
		return "deliver"
	default:
		return "unknown"
	}
}

// ExchangeMessage reports a fired exchange transition
// Trigger: ExchangeSystem
// Consumer: SyncSystem (audio, metrics, log)
type ExchangeMessage struct {
	Kind      ExchangeKind
	Item      core.Item   // Item moved by the transition
	Requested core.Item   // Request after the transition
	Producer  core.Entity // Source of a pickup, zero otherwise
}

// DeliveredMessage reports a fulfilled request
// Trigger: ExchangeSystem
// Consumer: MoodSystem
type DeliveredMessage struct {
	Companion core.Entity
	Item      core.Item
}

// MoodDepletedMessage reports mood reaching zero, emitted once per depletion
// Trigger: MoodSystem
// Consumer: SyncSystem
type MoodDepletedMessage struct {
	Companion core.Entity
}
