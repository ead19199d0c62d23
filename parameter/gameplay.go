package parameter

import "time"

// Player
const (
	// PlayerSpeed in room units per second
	PlayerSpeed = 300.0

	// PickDropCooldown debounces pick, drop and deliver actions
	PickDropCooldown = 200 * time.Millisecond
)

// Mood
const (
	// MoodDecayAmount is subtracted every MoodDecayInterval
	MoodDecayAmount = 0.02

	// MoodDecayInterval is the period of the repeating decay timer
	MoodDecayInterval = time.Second

	// MoodReward is added on each successful delivery
	MoodReward = 0.25

	// MoodInitial is the mood at spawn
	MoodInitial = 1.0

	// MoodFrames is the number of faces in the mood atlas
	MoodFrames = 5
)
