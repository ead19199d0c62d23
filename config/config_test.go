package config

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Expected default config valid, got %v", err)
	}
}

func TestLoadFileOverlaysDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "baobei.toml")
	data := `
[gameplay]
player_speed = 450.0
cooldown = "350ms"

[input]
stick_policy = "both_axes"

[keymap]
w = "up"
e = "action"
`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if cfg.Gameplay.PlayerSpeed != 450 {
		t.Errorf("Expected speed 450, got %v", cfg.Gameplay.PlayerSpeed)
	}
	if cfg.Gameplay.Cooldown.Duration != 350*time.Millisecond {
		t.Errorf("Expected cooldown 350ms, got %v", cfg.Gameplay.Cooldown)
	}
	if cfg.Input.StickPolicy != "both_axes" {
		t.Errorf("Expected both_axes, got %q", cfg.Input.StickPolicy)
	}
	// Untouched keys keep defaults
	if cfg.Gameplay.MoodReward != Default().Gameplay.MoodReward {
		t.Errorf("Expected default reward, got %v", cfg.Gameplay.MoodReward)
	}
	if cfg.Keymap["e"] != "action" {
		t.Errorf("Expected keymap e=action, got %q", cfg.Keymap["e"])
	}
}

func TestDecodeRejectsUnknownKey(t *testing.T) {
	cfg := Default()
	err := Decode("[gameplay]\nplayer_sped = 1.0\n", &cfg)
	if !errors.Is(err, ErrUnknownKey) {
		t.Fatalf("Expected ErrUnknownKey, got %v", err)
	}
}

func TestValidateReportsProblems(t *testing.T) {
	cfg := Default()
	cfg.Gameplay.Cooldown = Duration{-time.Second}
	cfg.Gameplay.RoomWidth = 0
	cfg.Log.Format = "xml"
	cfg.Keymap = map[string]string{"x": "jump"}

	err := cfg.Validate()
	if !errors.Is(err, ErrInvalid) {
		t.Fatalf("Expected ErrInvalid, got %v", err)
	}
	if joined, ok := err.(interface{ Unwrap() []error }); !ok || len(joined.Unwrap()) != 4 {
		t.Errorf("Expected 4 problems, got %v", err)
	}
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		"BAOBEI_LOG_LEVEL":     "debug",
		"BAOBEI_AUDIO_ENABLED": "false",
		"BAOBEI_MASTER_VOLUME": "150",
		"BAOBEI_LISTEN":        "127.0.0.1:9000",
	}
	lookup := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}

	cfg := Default()
	ApplyEnv(&cfg, lookup)

	if cfg.Log.Level != "debug" {
		t.Errorf("Expected debug level, got %q", cfg.Log.Level)
	}
	if cfg.Audio.Enabled {
		t.Error("Expected audio disabled")
	}
	if cfg.Audio.MasterVolume != 1 {
		t.Errorf("Expected volume clamped to 1, got %v", cfg.Audio.MasterVolume)
	}
	if cfg.Network.Listen != "127.0.0.1:9000" {
		t.Errorf("Expected listen address, got %q", cfg.Network.Listen)
	}
}

func TestWriteRoundTripsThroughDecode(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, Default()); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	var cfg Config
	if err := Decode(buf.String(), &cfg); err != nil {
		t.Fatalf("Decode of written config failed: %v", err)
	}
	if cfg.Gameplay.TickInterval != Default().Gameplay.TickInterval {
		t.Errorf("Expected tick interval %v, got %v", Default().Gameplay.TickInterval, cfg.Gameplay.TickInterval)
	}
}
