package engine

import (
	"testing"

	"github.com/lixenwraith/baobei/component"
	"github.com/lixenwraith/baobei/core"
)

func TestQueryIntersectsSorted(t *testing.T) {
	w := NewWorld()
	cs := w.Components

	var ids []core.Entity
	for i := 0; i < 5; i++ {
		ids = append(ids, w.CreateEntity())
	}
	// Insert out of order so store order differs from ID order
	for _, i := range []int{4, 0, 2, 3} {
		cs.Position.Set(ids[i], component.PositionComponent{})
	}
	cs.Static.Set(ids[3], component.StaticComponent{})
	cs.Static.Set(ids[0], component.StaticComponent{})
	cs.Static.Set(ids[1], component.StaticComponent{})

	got := w.Query().With(cs.Position).With(cs.Static).Execute()
	if len(got) != 2 || got[0] != ids[0] || got[1] != ids[3] {
		t.Errorf("Expected [%d %d], got %v", ids[0], ids[3], got)
	}

	if empty := w.Query().Execute(); empty != nil {
		t.Errorf("Expected nil for empty query, got %v", empty)
	}
}

func TestStoreRemoveAndDestroy(t *testing.T) {
	w := NewWorld()
	cs := w.Components
	e := w.CreateEntity()
	cs.Position.Set(e, component.PositionComponent{})
	cs.Player.Set(e, component.PlayerComponent{})

	if !w.Alive(e) {
		t.Fatal("Expected entity alive")
	}
	cs.Position.Remove(e)
	if cs.Position.Has(e) || cs.Position.Count() != 0 {
		t.Error("Expected position removed")
	}

	w.DestroyEntity(e)
	if w.Alive(e) {
		t.Error("Expected entity destroyed")
	}
}

func TestSingle(t *testing.T) {
	w := NewWorld()
	cs := w.Components

	if _, ok := Single(cs.Player); ok {
		t.Error("Expected no player in empty world")
	}

	a := w.CreateEntity()
	cs.Player.Set(a, component.PlayerComponent{})
	if got, ok := Single(cs.Player); !ok || got != a {
		t.Errorf("Expected %d, got %d (%v)", a, got, ok)
	}

	cs.Player.Set(w.CreateEntity(), component.PlayerComponent{})
	if _, ok := Single(cs.Player); ok {
		t.Error("Expected ambiguous result with two players")
	}
}

func TestClearRestartsIDs(t *testing.T) {
	w := NewWorld()
	first := w.CreateEntity()
	w.Components.Position.Set(first, component.PositionComponent{})
	w.CreateEntity()

	w.Clear()

	if w.Components.Position.Count() != 0 {
		t.Error("Expected empty stores after clear")
	}
	if got := w.CreateEntity(); got != first {
		t.Errorf("Expected ID %d after clear, got %d", first, got)
	}
}
