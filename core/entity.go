package core

// Entity is a unique identifier for an entity
// Zero is never issued and marks "no entity"
type Entity uint64

// Kind classifies an entity for presentation
type Kind uint8

const (
	KindNone Kind = iota
	KindPlayer
	KindCompanion
	KindFurniture
	KindWall
	KindProducer
)

var kindNames = [...]string{"none", "player", "companion", "furniture", "wall", "producer"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}
