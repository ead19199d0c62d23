package config

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/baobei/input"
)

var (
	ErrUnknownKey = errors.New("unknown configuration key")
	ErrInvalid    = errors.New("invalid configuration")
)

// Load builds the configuration from defaults, an optional TOML file and the environment
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err := Decode(string(data), &cfg); err != nil {
			return cfg, fmt.Errorf("%s: %w", path, err)
		}
	}

	ApplyEnv(&cfg, os.LookupEnv)

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Decode overlays TOML data onto cfg, rejecting keys that match no field
func Decode(data string, cfg *Config) error {
	md, err := toml.Decode(data, cfg)
	if err != nil {
		return fmt.Errorf("parse: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)
		return fmt.Errorf("%w: %s", ErrUnknownKey, strings.Join(keys, ", "))
	}
	return nil
}

// Write encodes cfg as TOML
func Write(w io.Writer, cfg Config) error {
	return toml.NewEncoder(w).Encode(cfg)
}

// ApplyEnv overrides fields from BAOBEI_* variables
// Unparseable values are ignored
func ApplyEnv(cfg *Config, lookup func(string) (string, bool)) {
	if v, ok := lookup("BAOBEI_LOG_LEVEL"); ok && v != "" {
		cfg.Log.Level = v
	}

	if v, ok := lookup("BAOBEI_AUDIO_ENABLED"); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Audio.Enabled = b
		}
	}

	// Master volume 0-100 converted to 0.0-1.0
	if v, ok := lookup("BAOBEI_MASTER_VOLUME"); ok {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Audio.MasterVolume = math.Max(0, math.Min(1, float64(n)/100.0))
		}
	}

	if v, ok := lookup("BAOBEI_LISTEN"); ok {
		cfg.Network.Listen = v
	}

	if v, ok := lookup("BAOBEI_STICK_POLICY"); ok && v != "" {
		cfg.Input.StickPolicy = v
	}
}

// Validate checks ranges; all problems are reported together
func (c Config) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
	}

	g := c.Gameplay
	if !positive(g.RoomWidth) || !positive(g.RoomHeight) {
		bad("room %gx%g must be positive", g.RoomWidth, g.RoomHeight)
	}
	if !positive(g.PlayerSpeed) {
		bad("player_speed %g must be positive", g.PlayerSpeed)
	}
	if g.Cooldown.Duration < 0 {
		bad("cooldown %v must not be negative", g.Cooldown)
	}
	if g.MoodInterval.Duration <= 0 {
		bad("mood_interval %v must be positive", g.MoodInterval)
	}
	if g.TickInterval.Duration <= 0 {
		bad("tick_interval %v must be positive", g.TickInterval)
	}
	if !inUnit(g.MoodDecay) || !inUnit(g.MoodReward) || !inUnit(g.MoodInitial) {
		bad("mood_decay, mood_reward and mood_initial must be within [0,1]")
	}

	if _, err := input.ParseStickPolicy(c.Input.StickPolicy); err != nil {
		bad("%v", err)
	}
	if !inUnit(c.Input.DeadZone) {
		bad("dead_zone %g must be within [0,1]", c.Input.DeadZone)
	}

	if !inUnit(c.Audio.MasterVolume) {
		bad("master_volume %g must be within [0,1]", c.Audio.MasterVolume)
	}

	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		bad("log level: %v", err)
	}
	if c.Log.Format != "text" && c.Log.Format != "json" {
		bad("log format %q must be text or json", c.Log.Format)
	}

	for name, key := range c.Keymap {
		if name == "" {
			bad("keymap entry with empty key name")
		}
		if _, err := input.ParseKey(key); err != nil {
			bad("keymap %q: %v", name, err)
		}
	}

	return errors.Join(errs...)
}

func positive(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v > 0
}

func inUnit(v float64) bool {
	return !math.IsNaN(v) && v >= 0 && v <= 1
}
