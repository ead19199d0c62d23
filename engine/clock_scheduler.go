package engine

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/baobei/input"
	"github.com/lixenwraith/baobei/parameter"
)

// InputSource provides the device snapshot at tick start
type InputSource interface {
	Snapshot() input.Snapshot
}

// Observer receives the published state after every tick
// Called on the clock goroutine; implementations must not block
type Observer interface {
	Observe(Snapshot)
}

// GamepadCounter reports connected pads for the published snapshot
type GamepadCounter interface {
	Gamepads() int
}

// ClockScheduler runs Scheduler.Tick on a fixed real-time interval
type ClockScheduler struct {
	world     *World
	scheduler *Scheduler
	source    InputSource
	pads      GamepadCounter
	observers []Observer

	tickInterval time.Duration
	maxDelta     time.Duration
	now          func() time.Time

	tickCount atomic.Uint64
	running   atomic.Bool
}

// NewClockScheduler creates a clock; pads may be nil
func NewClockScheduler(world *World, scheduler *Scheduler, source InputSource, pads GamepadCounter, tickInterval time.Duration) *ClockScheduler {
	if tickInterval <= 0 {
		tickInterval = parameter.GameUpdateInterval
	}
	return &ClockScheduler{
		world:        world,
		scheduler:    scheduler,
		source:       source,
		pads:         pads,
		tickInterval: tickInterval,
		maxDelta:     parameter.MaxDeltaTime,
		now:          time.Now,
	}
}

// AddObserver registers an observer, must be called before Run
func (cs *ClockScheduler) AddObserver(o Observer) {
	cs.observers = append(cs.observers, o)
}

// Run ticks until ctx is cancelled
// Delta is measured wall time between ticks, capped at MaxDeltaTime after stalls
func (cs *ClockScheduler) Run(ctx context.Context) error {
	if !cs.running.CompareAndSwap(false, true) {
		return nil
	}
	defer cs.running.Store(false)

	ticker := time.NewTicker(cs.tickInterval)
	defer ticker.Stop()

	last := cs.now()
	cs.Step(0)

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			now := cs.now()
			cs.Step(now.Sub(last))
			last = now
		}
	}
}

// Step runs exactly one tick with the given delta and notifies observers
func (cs *ClockScheduler) Step(dt time.Duration) Snapshot {
	if dt > cs.maxDelta {
		dt = cs.maxDelta
	}

	var snap input.Snapshot
	if cs.source != nil {
		snap = cs.source.Snapshot()
	}
	cs.scheduler.Tick(snap, dt)
	cs.tickCount.Add(1)

	pads := 0
	if cs.pads != nil {
		pads = cs.pads.Gamepads()
	}
	out := BuildSnapshot(cs.world, pads)
	for _, o := range cs.observers {
		o.Observe(out)
	}
	return out
}

// TickCount returns ticks run by this clock
func (cs *ClockScheduler) TickCount() uint64 {
	return cs.tickCount.Load()
}

// IsRunning reports whether Run is active
func (cs *ClockScheduler) IsRunning() bool {
	return cs.running.Load()
}
