package engine

import (
	"io"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/baobei/config"
	"github.com/lixenwraith/baobei/core"
	"github.com/lixenwraith/baobei/event"
	"github.com/lixenwraith/baobei/input"
	"github.com/lixenwraith/baobei/status"
	"github.com/lixenwraith/baobei/vmath"
)

// Resource holds singleton game resources, accessed via World.Resource
type Resource struct {
	// World Resource
	Time   *TimeResource
	Input  *InputResource
	Config *config.Gameplay
	Game   *GameState
	Event  *event.Bus
	Rand   *vmath.FastRand

	// Telemetry
	Status *status.Registry
	Log    *logrus.Entry

	// Bridged from services, nil when unavailable
	Audio AudioPlayer
}

// NewResource creates resources with built-in gameplay defaults and a silent logger
func NewResource() *Resource {
	gameplay := config.Default().Gameplay

	silent := logrus.New()
	silent.SetOutput(io.Discard)

	return &Resource{
		Time:   &TimeResource{},
		Input:  &InputResource{},
		Config: &gameplay,
		Game:   NewGameState(),
		Event:  event.NewBus(),
		Rand:   vmath.NewFastRand(uint64(time.Now().UnixNano())),
		Status: status.NewRegistry(),
		Log:    logrus.NewEntry(silent),
	}
}

// TimeResource is updated by the Scheduler at the start of a tick
type TimeResource struct {
	// DeltaTime is the simulated duration of the current tick
	DeltaTime time.Duration

	// Elapsed is the total simulated time since start
	Elapsed time.Duration

	// TickNumber counts ticks including gated ones
	TickNumber uint64
}

// Update modifies TimeResource fields in-place
func (tr *TimeResource) Update(dt time.Duration) {
	tr.DeltaTime = dt
	tr.Elapsed += dt
	tr.TickNumber++
}

// InputResource holds the device snapshot of the current tick
type InputResource struct {
	Snapshot input.Snapshot
}

//go:generate go tool mockgen -destination=./mocks/audio_player_mock.go -package=mocks . AudioPlayer

// AudioPlayer defines the minimal audio interface used by game systems
type AudioPlayer interface {
	Play(core.SoundType) bool
	ToggleMute() bool
	IsMuted() bool
}
