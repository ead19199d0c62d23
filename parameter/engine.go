package parameter

import "time"

// Game Loop & Engine Timing
const (
	// GameUpdateInterval is the game logic update interval (clock tick, ~60 Hz)
	GameUpdateInterval = 16 * time.Millisecond

	// MaxDeltaTime caps a single tick step after stalls (debugger, suspended terminal)
	MaxDeltaTime = 250 * time.Millisecond

	// FrameUpdateInterval is the rendering frame interval
	FrameUpdateInterval = 33 * time.Millisecond
)

// Message Queue Limits
const (
	// DirectionQueueSize bounds direction messages per tick (keyboard + pads)
	DirectionQueueSize = 16

	// ActionQueueSize bounds action messages per tick
	ActionQueueSize = 8

	// TriggerQueueSize bounds trigger transitions per tick
	TriggerQueueSize = 128

	// ExchangeQueueSize bounds exchange transitions per tick, at most one is expected
	ExchangeQueueSize = 4

	// MoodQueueSize bounds delivery and depletion notifications per tick
	MoodQueueSize = 4
)
