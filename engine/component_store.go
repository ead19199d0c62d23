package engine

import "github.com/lixenwraith/baobei/component"

// ComponentStore provides typed pointers to every component store
// Pointers stay valid for the world lifetime
type ComponentStore struct {
	// Spatial
	Position *Store[component.PositionComponent]
	Movement *Store[component.MovementComponent]
	Collider *Store[component.BoxColliderComponent]
	Trigger  *Store[component.TriggerAreaComponent]
	Static   *Store[component.StaticComponent]

	// Exchange
	Carrier   *Store[component.CarrierComponent]
	Requester *Store[component.RequesterComponent]
	Producer  *Store[component.ProducerComponent]
	Mood      *Store[component.MoodComponent]

	// Tags
	Player    *Store[component.PlayerComponent]
	Companion *Store[component.CompanionComponent]
	Kind      *Store[component.KindComponent]
}

func newComponentStore() (ComponentStore, []AnyStore) {
	cs := ComponentStore{
		Position:  NewStore[component.PositionComponent](),
		Movement:  NewStore[component.MovementComponent](),
		Collider:  NewStore[component.BoxColliderComponent](),
		Trigger:   NewStore[component.TriggerAreaComponent](),
		Static:    NewStore[component.StaticComponent](),
		Carrier:   NewStore[component.CarrierComponent](),
		Requester: NewStore[component.RequesterComponent](),
		Producer:  NewStore[component.ProducerComponent](),
		Mood:      NewStore[component.MoodComponent](),
		Player:    NewStore[component.PlayerComponent](),
		Companion: NewStore[component.CompanionComponent](),
		Kind:      NewStore[component.KindComponent](),
	}

	all := []AnyStore{
		cs.Position, cs.Movement, cs.Collider, cs.Trigger, cs.Static,
		cs.Carrier, cs.Requester, cs.Producer, cs.Mood,
		cs.Player, cs.Companion, cs.Kind,
	}
	return cs, all
}
