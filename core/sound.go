package core

// SoundType represents gameplay audio cues
type SoundType int

const (
	SoundPickup  SoundType = iota // Item picked from a producer
	SoundDrop                     // Carried item discarded
	SoundDeliver                  // Correct item handed over
	SoundSad                      // Mood reached zero
	SoundTypeCount
)

var soundNames = [SoundTypeCount]string{"pickup", "drop", "deliver", "sad"}

func (s SoundType) String() string {
	if s < 0 || s >= SoundTypeCount {
		return "unknown"
	}
	return soundNames[s]
}
