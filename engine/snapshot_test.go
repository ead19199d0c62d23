package engine

import (
	"testing"

	"github.com/lixenwraith/baobei/component"
	"github.com/lixenwraith/baobei/core"
)

func TestSnapshotWithoutCompanionHasNoRequest(t *testing.T) {
	w := NewWorld()
	player := w.CreateEntity()
	w.Components.Position.Set(player, component.PositionComponent{})

	snap := BuildSnapshot(w, 0)
	if snap.HasRequest {
		t.Errorf("Expected no request without a companion, got %v", snap.Requested)
	}
	if len(snap.Entities) != 1 {
		t.Errorf("Expected 1 entity, got %d", len(snap.Entities))
	}
}

func TestSnapshotCarriesCompanionRequest(t *testing.T) {
	w := NewWorld()
	cs := w.Components
	companion := w.CreateEntity()
	cs.Position.Set(companion, component.PositionComponent{})
	cs.Companion.Set(companion, component.CompanionComponent{})
	cs.Requester.Set(companion, component.RequesterComponent{Item: core.ItemChips})
	cs.Mood.Set(companion, component.MoodComponent{Value: core.MoodEmpty.Add(1)})

	snap := BuildSnapshot(w, 0)
	if !snap.HasRequest || snap.Requested != core.ItemChips {
		t.Errorf("Expected request chips, got %v (present %v)", snap.Requested, snap.HasRequest)
	}
	if snap.MoodIndex != 4 {
		t.Errorf("Expected happiest mood index 4, got %d", snap.MoodIndex)
	}
}
