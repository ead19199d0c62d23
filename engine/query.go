package engine

import (
	"slices"
	"sort"

	"github.com/lixenwraith/baobei/core"
)

// QueryBuilder finds entities present in every given store
// Results are sorted by entity ID so iteration order is deterministic
//
// Example:
//
//	entities := world.Query().
//	    With(world.Components.Position).
//	    With(world.Components.Collider).
//	    Execute()
type QueryBuilder struct {
	stores []QueryableStore
}

// Query creates a new QueryBuilder
func (w *World) Query() *QueryBuilder {
	return &QueryBuilder{stores: make([]QueryableStore, 0, 4)}
}

// With adds a component store to the filter
func (qb *QueryBuilder) With(store QueryableStore) *QueryBuilder {
	qb.stores = append(qb.stores, store)
	return qb
}

// Execute intersects the stores, starting from the smallest
func (qb *QueryBuilder) Execute() []core.Entity {
	if len(qb.stores) == 0 {
		return nil
	}

	sort.Slice(qb.stores, func(i, j int) bool {
		return qb.stores[i].Count() < qb.stores[j].Count()
	})

	candidates := qb.stores[0].All()
	for _, store := range qb.stores[1:] {
		filtered := candidates[:0]
		for _, e := range candidates {
			if store.Has(e) {
				filtered = append(filtered, e)
			}
		}
		candidates = filtered
		if len(candidates) == 0 {
			return candidates
		}
	}

	slices.Sort(candidates)
	return candidates
}
