package parameter

import "time"

// Layout
const (
	// StatusRows at the bottom of the screen for mood, item and mode text
	StatusRows = 1
)

// Terminal Key Hold
// Terminals report presses and auto-repeat, never releases
// A key counts as held until its deadline passes without a repeat
const (
	// KeyHoldInitial covers the delay before the terminal starts auto-repeat
	KeyHoldInitial = 500 * time.Millisecond

	// KeyHoldRepeat covers the gap between two auto-repeat events
	KeyHoldRepeat = 100 * time.Millisecond
)

// Text
const (
	MenuTitle    = "B A O B E I"
	MenuHint     = "[Enter] start   [q] quit"
	GameHint     = "[arrows] move   [space] pick/drop   [esc] menu"
	HappinessFmt = "Happiness: %.2f"
)

// MoodFaces is the mood atlas, saddest first, indexed by Mood.Index(len)
var MoodFaces = [MoodFrames]string{"(T_T)", "(-_-)", "(._.)", "(^_^)", "(^o^)"}
