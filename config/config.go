package config

import (
	"time"

	"github.com/lixenwraith/baobei/parameter"
)

// Config is the full process configuration
// Layering: Default, then TOML file, then BAOBEI_* environment, then Validate
type Config struct {
	Gameplay Gameplay          `toml:"gameplay"`
	Input    Input             `toml:"input"`
	Audio    Audio             `toml:"audio"`
	Network  Network           `toml:"network"`
	Log      Log               `toml:"log"`
	Keymap   map[string]string `toml:"keymap"` // Terminal key name -> logical key name
}

// Gameplay holds the tunables read by the simulation
type Gameplay struct {
	RoomWidth    float64  `toml:"room_width"`
	RoomHeight   float64  `toml:"room_height"`
	PlayerSpeed  float64  `toml:"player_speed"`
	Cooldown     Duration `toml:"cooldown"`
	MoodDecay    float64  `toml:"mood_decay"`
	MoodInterval Duration `toml:"mood_interval"`
	MoodReward   float64  `toml:"mood_reward"`
	MoodInitial  float64  `toml:"mood_initial"`
	TickInterval Duration `toml:"tick_interval"`
	Seed         uint64   `toml:"seed"` // 0 seeds from the clock
}

type Input struct {
	StickPolicy string  `toml:"stick_policy"` // any_axis | both_axes
	DeadZone    float64 `toml:"dead_zone"`
}

type Audio struct {
	Enabled      bool    `toml:"enabled"`
	MasterVolume float64 `toml:"master_volume"` // 0.0 - 1.0
}

type Network struct {
	Listen string `toml:"listen"` // Empty disables the snapshot feed
}

type Log struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // text | json
	Debug  bool   `toml:"debug"`  // Write log file, otherwise discard
	Dir    string `toml:"dir"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Gameplay: Gameplay{
			RoomWidth:    parameter.RoomWidth,
			RoomHeight:   parameter.RoomHeight,
			PlayerSpeed:  parameter.PlayerSpeed,
			Cooldown:     Duration{parameter.PickDropCooldown},
			MoodDecay:    parameter.MoodDecayAmount,
			MoodInterval: Duration{parameter.MoodDecayInterval},
			MoodReward:   parameter.MoodReward,
			MoodInitial:  parameter.MoodInitial,
			TickInterval: Duration{parameter.GameUpdateInterval},
		},
		Input: Input{
			StickPolicy: "any_axis",
			DeadZone:    parameter.StickDeadZone,
		},
		Audio: Audio{
			Enabled:      true,
			MasterVolume: parameter.DefaultMasterVolume,
		},
		Log: Log{
			Level:  "info",
			Format: "text",
			Dir:    "logs",
		},
	}
}

// Duration is a time.Duration read from TOML strings such as "200ms"
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}
