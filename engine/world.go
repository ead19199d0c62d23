package engine

import "github.com/lixenwraith/baobei/core"

// World is the entity arena: an ID counter plus one store per component kind
type World struct {
	nextEntityID core.Entity

	Components ComponentStore
	Resource   *Resource

	allStores []AnyStore
}

// NewWorld creates an empty world with default resources
func NewWorld() *World {
	w := &World{
		nextEntityID: 1,
		Resource:     NewResource(),
	}
	w.Components, w.allStores = newComponentStore()
	return w
}

// CreateEntity reserves a new entity ID, IDs are never reused
func (w *World) CreateEntity() core.Entity {
	id := w.nextEntityID
	w.nextEntityID++
	return id
}

// DestroyEntity removes all components of an entity
func (w *World) DestroyEntity(e core.Entity) {
	for _, store := range w.allStores {
		store.Remove(e)
	}
}

// Alive reports whether the entity holds at least one component
func (w *World) Alive(e core.Entity) bool {
	for _, store := range w.allStores {
		if store.Has(e) {
			return true
		}
	}
	return false
}

// Clear removes all entities and restarts ID issue
func (w *World) Clear() {
	w.nextEntityID = 1
	for _, store := range w.allStores {
		store.Clear()
	}
}

// Single returns the only entity of a tag store
// False when the store is empty or holds more than one entity
func Single[T any](s *Store[T]) (core.Entity, bool) {
	if len(s.entities) != 1 {
		return 0, false
	}
	return s.entities[0], true
}
