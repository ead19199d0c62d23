package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines latency of the speaker buffer
	AudioBufferDuration = 50 * time.Millisecond

	// MinSoundGap between two cues of the same type
	MinSoundGap = 50 * time.Millisecond

	// DefaultMasterVolume applied when config does not set one
	DefaultMasterVolume = 0.6
)

// Pickup Sound, rising two-note blip
const (
	PickupSoundNoteDuration = 60 * time.Millisecond
	PickupSoundAttack       = 4 * time.Millisecond
	PickupSoundRelease      = 30 * time.Millisecond
)

// Drop Sound
const (
	DropSoundDuration = 90 * time.Millisecond
	DropSoundAttack   = 3 * time.Millisecond
	DropSoundRelease  = 50 * time.Millisecond
)

// Deliver Sound, bell with overtone
const (
	DeliverSoundDuration        = 500 * time.Millisecond
	DeliverSoundAttack          = 5 * time.Millisecond
	DeliverSoundFundamentalRel  = 450 * time.Millisecond
	DeliverSoundOvertoneRelease = 250 * time.Millisecond
)

// Sad Sound, falling saw
const (
	SadSoundNoteDuration = 180 * time.Millisecond
	SadSoundAttack       = 10 * time.Millisecond
	SadSoundRelease      = 120 * time.Millisecond
)
