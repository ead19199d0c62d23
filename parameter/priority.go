package parameter

// System Execution Priorities (lower runs first)
// Phase order is fixed; the scheduler rejects duplicate priorities
const (
	PriorityInput     = 10
	PriorityMovement  = 20 // After input, consumes direction messages
	PriorityCollision = 30 // After movement, only moved solids are resolved
	PriorityTrigger   = 40 // After collision, sees final positions
	PriorityExchange  = 50 // After trigger, reads inside state of this tick
	PriorityMood      = 60 // After exchange, rewards deliveries of this tick
	PrioritySync      = 70 // After all gameplay, presentation side effects
)
