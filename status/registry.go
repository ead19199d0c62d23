package status

import "sync/atomic"

// Metric keys written by the simulation
const (
	KeyTicks        = "engine.ticks"
	KeyDropped      = "engine.dropped_messages"
	KeyMode         = "engine.mode"
	KeyPickups      = "exchange.pickups"
	KeyDrops        = "exchange.drops"
	KeyDeliveries   = "exchange.deliveries"
	KeyMood         = "mood.value"
	KeyDepletions   = "mood.depletions"
	KeyGamepads     = "input.gamepads"
	KeyCuesPlayed   = "audio.cues_played"
	KeyFeedClients  = "network.clients"
	KeyFramesPushed = "network.frames"
)

// Registry is the central metrics facade
// Systems cache pointers during Init; Update loops write directly to atomics
type Registry struct {
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[AtomicFloat]
	Strings *MetricMap[AtomicString]
}

func NewRegistry() *Registry {
	return &Registry{
		Ints:    NewMetricMap[atomic.Int64](),
		Floats:  NewMetricMap[AtomicFloat](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// Export flattens all metrics into a map for publication and logging
func (r *Registry) Export() map[string]any {
	out := make(map[string]any, r.Ints.Count()+r.Floats.Count()+r.Strings.Count())
	r.Ints.Range(func(k string, v *atomic.Int64) { out[k] = v.Load() })
	r.Floats.Range(func(k string, v *AtomicFloat) { out[k] = v.Get() })
	r.Strings.Range(func(k string, v *AtomicString) { out[k] = v.Load() })
	return out
}
