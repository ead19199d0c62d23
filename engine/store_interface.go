package engine

import "github.com/lixenwraith/baobei/core"

// AnyStore provides type-erased operations for lifecycle management
// World destroys entities across all stores without knowing concrete types
type AnyStore interface {
	Remove(e core.Entity)
	Has(e core.Entity) bool
	Count() int
	Clear()
}

// QueryableStore extends AnyStore with the entity listing needed by queries
type QueryableStore interface {
	AnyStore
	All() []core.Entity
}
