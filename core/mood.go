package core

import "math"

// Mood is the companion satisfaction, always within [MoodEmpty, MoodFull]
type Mood float64

const (
	MoodEmpty Mood = 0
	MoodFull  Mood = 1
)

// Add returns m increased by v and clamped to [0, 1]
// NaN deltas are ignored
func (m Mood) Add(v float64) Mood {
	if math.IsNaN(v) {
		return m
	}
	return clampMood(float64(m) + v)
}

// Sub returns m decreased by v and clamped to [0, 1]
func (m Mood) Sub(v float64) Mood {
	return m.Add(-v)
}

// Index maps mood onto a display frame in [0, n)
// floor(m*n), with a full mood landing on the last frame
func (m Mood) Index(n int) int {
	if n <= 0 {
		return 0
	}
	idx := int(math.Floor(float64(m) * float64(n)))
	if idx >= n {
		idx = n - 1
	}
	if idx < 0 {
		idx = 0
	}
	return idx
}

func clampMood(v float64) Mood {
	if math.IsNaN(v) || v < 0 {
		return MoodEmpty
	}
	if v > 1 {
		return MoodFull
	}
	return Mood(v)
}
