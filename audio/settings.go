package audio

import (
	"github.com/lixenwraith/baobei/config"
	"github.com/lixenwraith/baobei/core"
	"github.com/lixenwraith/baobei/parameter"
)

// Settings holds synthesis and playback parameters
type Settings struct {
	Enabled      bool
	MasterVolume float64 // 0.0 to 1.0
	SampleRate   int
	Volumes      [core.SoundTypeCount]float64
}

// DefaultSettings returns settings with audio enabled at the default volume
func DefaultSettings() Settings {
	return Settings{
		Enabled:      true,
		MasterVolume: parameter.DefaultMasterVolume,
		SampleRate:   parameter.AudioSampleRate,
		Volumes: [core.SoundTypeCount]float64{
			core.SoundPickup:  0.5,
			core.SoundDrop:    0.4,
			core.SoundDeliver: 0.6,
			core.SoundSad:     0.5,
		},
	}
}

// FromConfig overlays the audio config section on defaults
func FromConfig(cfg config.Audio) Settings {
	s := DefaultSettings()
	s.Enabled = cfg.Enabled
	s.MasterVolume = clampUnit(cfg.MasterVolume)
	return s
}

func clampUnit(v float64) float64 {
	if v < 0 || v != v {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
