package engine

// System is a gameplay phase run by the Scheduler
type System interface {
	// Init resets session state
	Init()

	// Name returns the system's name for logging
	Name() string

	// Priority orders phases, lower runs first; must be unique
	Priority() int

	// Update runs one tick, only while in-game
	Update()
}

// PreUpdater is implemented by systems that keep device state current in every mode
// PreUpdate must not touch entity components
type PreUpdater interface {
	PreUpdate()
}
