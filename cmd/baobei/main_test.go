package main

import (
	"testing"

	"github.com/google/uuid"

	"github.com/lixenwraith/baobei/core"
	"github.com/lixenwraith/baobei/engine"
	"github.com/lixenwraith/baobei/input"
	"github.com/lixenwraith/baobei/network"
	"github.com/lixenwraith/baobei/terminal"
)

func TestDeviceSourceMergesPads(t *testing.T) {
	keys := terminal.NewKeyTracker()
	pads := network.NewRemotePads()
	src := deviceSource{keys: keys, pads: pads}

	on := true
	client := uuid.New()
	if err := pads.Apply(client, network.ClientFrame{Type: network.FramePad, Pad: 3, Connected: &on}); err != nil {
		t.Fatal(err)
	}
	if err := pads.Apply(client, network.ClientFrame{Type: network.FramePad, Pad: 3, X: -1}); err != nil {
		t.Fatal(err)
	}
	keys.Press(input.KeyAction)

	snap := src.Snapshot()
	if !snap.Keys.Has(input.KeyAction) {
		t.Error("Expected keyboard action in merged snapshot")
	}
	if len(snap.Gamepads) != 1 || snap.Gamepads[0].ID != 3 {
		t.Errorf("Expected pad 3 connect event, got %+v", snap.Gamepads)
	}
	if snap.Stick(3).X != -1 {
		t.Errorf("Expected pad stick -1, got %+v", snap.Stick(3))
	}
}

func TestControlsStartGame(t *testing.T) {
	w := engine.NewWorld()
	c := controls{world: w, sched: engine.NewScheduler(w)}

	if c.Mode() != core.ModeMenu {
		t.Fatalf("Expected Menu, got %v", c.Mode())
	}
	c.StartGame()
	if c.Mode() != core.ModeInGame {
		t.Errorf("Expected InGame, got %v", c.Mode())
	}
}
