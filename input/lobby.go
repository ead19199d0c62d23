package input

import "sort"

// Lobby is the set of currently connected gamepads
// Owned by the normalizer, starts empty
type Lobby struct {
	pads map[GamepadID]struct{}
}

func NewLobby() *Lobby {
	return &Lobby{pads: make(map[GamepadID]struct{})}
}

// Apply records a connection change and reports whether membership changed
// Duplicate connects and unknown disconnects are ignored
func (l *Lobby) Apply(ev GamepadEvent) bool {
	_, present := l.pads[ev.ID]
	if ev.Connected {
		if present {
			return false
		}
		l.pads[ev.ID] = struct{}{}
		return true
	}
	if !present {
		return false
	}
	delete(l.pads, ev.ID)
	return true
}

func (l *Lobby) Has(id GamepadID) bool {
	_, ok := l.pads[id]
	return ok
}

func (l *Lobby) Len() int {
	return len(l.pads)
}

// Connected returns pad IDs in ascending order
func (l *Lobby) Connected() []GamepadID {
	ids := make([]GamepadID, 0, len(l.pads))
	for id := range l.pads {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
