package network

import (
	"errors"
	"fmt"
	"maps"
	"math"
	"sync"

	"github.com/google/uuid"

	"github.com/lixenwraith/baobei/input"
)

var ErrPadOwned = errors.New("pad owned by another client")

// RemotePads collects gamepad state sent by feed clients
// Written from connection goroutines, read once per tick by the input source
type RemotePads struct {
	mu      sync.Mutex
	owners  map[input.GamepadID]uuid.UUID
	pending []input.GamepadEvent
	axes    map[input.GamepadID]input.Stick
	action  map[input.GamepadID]bool
}

func NewRemotePads() *RemotePads {
	return &RemotePads{
		owners: make(map[input.GamepadID]uuid.UUID),
		axes:   make(map[input.GamepadID]input.Stick),
		action: make(map[input.GamepadID]bool),
	}
}

// Apply records one pad frame from client
func (p *RemotePads) Apply(client uuid.UUID, f ClientFrame) error {
	id := f.padID()

	p.mu.Lock()
	defer p.mu.Unlock()

	owner, owned := p.owners[id]
	if owned && owner != client {
		return fmt.Errorf("pad %d: %w", id, ErrPadOwned)
	}

	if f.Connected != nil {
		switch {
		case *f.Connected && !owned:
			p.owners[id] = client
			p.pending = append(p.pending, input.GamepadEvent{ID: id, Connected: true})
		case !*f.Connected && owned:
			p.release(id)
		}
		return nil
	}

	if !owned {
		return fmt.Errorf("pad %d: not connected", id)
	}
	p.axes[id] = input.Stick{X: clampAxis(f.X), Y: clampAxis(f.Y)}
	p.action[id] = f.Action
	return nil
}

// Drop disconnects every pad owned by client
func (p *RemotePads) Drop(client uuid.UUID) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for id, owner := range p.owners {
		if owner == client {
			p.release(id)
		}
	}
}

func (p *RemotePads) release(id input.GamepadID) {
	delete(p.owners, id)
	delete(p.axes, id)
	delete(p.action, id)
	p.pending = append(p.pending, input.GamepadEvent{ID: id, Connected: false})
}

// Fill copies pad state into snap and consumes pending connection changes
func (p *RemotePads) Fill(snap *input.Snapshot) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if len(p.pending) > 0 {
		snap.Gamepads = append(snap.Gamepads, p.pending...)
		p.pending = p.pending[:0]
	}
	if len(p.axes) > 0 {
		if snap.Axes == nil {
			snap.Axes = make(map[input.GamepadID]input.Stick, len(p.axes))
		}
		maps.Copy(snap.Axes, p.axes)
	}
	if len(p.action) > 0 {
		if snap.GamepadAction == nil {
			snap.GamepadAction = make(map[input.GamepadID]bool, len(p.action))
		}
		maps.Copy(snap.GamepadAction, p.action)
	}
}

// Connected returns the number of owned pads
func (p *RemotePads) Connected() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.owners)
}

func clampAxis(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(-1, math.Min(1, v))
}
