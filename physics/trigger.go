package physics

import (
	"sort"

	"github.com/lixenwraith/baobei/core"
)

// TriggerState is the per-frame transition of a trigger pair
type TriggerState uint8

const (
	TriggerNone TriggerState = iota
	TriggerEntered
	TriggerStillInside
	TriggerExited
)

func (s TriggerState) String() string {
	switch s {
	case TriggerNone:
		return "none"
	case TriggerEntered:
		return "entered"
	case TriggerStillInside:
		return "still_inside"
	case TriggerExited:
		return "exited"
	default:
		return "unknown"
	}
}

// Inside reports whether the state means the other entity is in the area this frame
func (s TriggerState) Inside() bool {
	return s == TriggerEntered || s == TriggerStillInside
}

// Classify derives the transition from previous and current overlap
func Classify(was, is bool) TriggerState {
	switch {
	case !was && is:
		return TriggerEntered
	case was && is:
		return TriggerStillInside
	case was && !is:
		return TriggerExited
	default:
		return TriggerNone
	}
}

// Pair keys trigger memory by trigger owner and the tested entity
type Pair struct {
	Owner core.Entity
	Other core.Entity
}

// TriggerTracker remembers which pairs overlapped on the previous frame
// Call Observe for every tested pair, then Sweep once per frame
type TriggerTracker struct {
	inside map[Pair]bool
	seen   map[Pair]bool
}

func NewTriggerTracker() *TriggerTracker {
	return &TriggerTracker{
		inside: make(map[Pair]bool),
		seen:   make(map[Pair]bool),
	}
}

// Observe records current overlap of a pair and returns its transition
func (t *TriggerTracker) Observe(p Pair, overlapping bool) TriggerState {
	was := t.inside[p]
	t.seen[p] = true
	if overlapping {
		t.inside[p] = true
	} else {
		delete(t.inside, p)
	}
	return Classify(was, overlapping)
}

// Sweep ends the frame: pairs inside last frame but not observed now are
// forgotten and returned sorted, their entity is gone or no longer tested
func (t *TriggerTracker) Sweep() []Pair {
	var gone []Pair
	for p := range t.inside {
		if !t.seen[p] {
			gone = append(gone, p)
			delete(t.inside, p)
		}
	}
	clear(t.seen)

	sort.Slice(gone, func(i, j int) bool {
		if gone[i].Owner != gone[j].Owner {
			return gone[i].Owner < gone[j].Owner
		}
		return gone[i].Other < gone[j].Other
	})
	return gone
}

// Inside reports the remembered overlap of a pair
func (t *TriggerTracker) Inside(p Pair) bool {
	return t.inside[p]
}

// Reset forgets all pairs
func (t *TriggerTracker) Reset() {
	clear(t.inside)
	clear(t.seen)
}
