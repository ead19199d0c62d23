package terminal

import (
	"sync"
	"time"

	"github.com/lixenwraith/baobei/input"
	"github.com/lixenwraith/baobei/parameter"
)

// KeyTracker turns terminal press/repeat events into held key state
// Terminals never report releases; a key is held until its deadline lapses
type KeyTracker struct {
	mu        sync.Mutex
	deadlines [input.KeyCount]time.Time
	pressed   input.KeySet // Fresh presses since the last snapshot
	tapped    input.KeySet // Any press since the last snapshot, including repeats
	now       func() time.Time
}

func NewKeyTracker() *KeyTracker {
	return &KeyTracker{now: time.Now}
}

// Press records a key event, repeats of a held key extend its deadline
func (t *KeyTracker) Press(k input.Key) {
	if k >= input.KeyCount {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()
	hold := parameter.KeyHoldInitial
	if t.deadlines[k].After(now) {
		hold = parameter.KeyHoldRepeat
	} else {
		t.pressed = t.pressed.With(k)
	}
	if d := now.Add(hold); d.After(t.deadlines[k]) {
		t.deadlines[k] = d
	}
	t.tapped = t.tapped.With(k)
}

// ReleaseAll forgets every held key, used on focus loss and mode change
func (t *KeyTracker) ReleaseAll() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.deadlines = [input.KeyCount]time.Time{}
	t.pressed = 0
	t.tapped = 0
}

// Snapshot returns held keys and fresh presses, then clears the press set
// A tap shorter than a tick still shows as held for that one snapshot
func (t *KeyTracker) Snapshot() input.Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()
	held := t.tapped
	for k := input.Key(0); k < input.KeyCount; k++ {
		if t.deadlines[k].After(now) {
			held = held.With(k)
		}
	}

	snap := input.Snapshot{Keys: held, JustPressed: t.pressed}
	t.pressed = 0
	t.tapped = 0
	return snap
}
