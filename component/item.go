package component

import (
	"fmt"

	"github.com/lixenwraith/baobei/core"
)

// CarrierComponent is the single carried-item slot of the player
type CarrierComponent struct {
	Item     core.Item
	Carrying bool
}

// Pick fills the slot; picking while carrying is a logic fault
func (c *CarrierComponent) Pick(item core.Item) {
	if c.Carrying {
		panic(fmt.Sprintf("carrier: pick %v while carrying %v", item, c.Item))
	}
	if !item.Valid() {
		panic(fmt.Sprintf("carrier: pick invalid item %v", item))
	}
	c.Item = item
	c.Carrying = true
}

// Clear empties the slot and returns the item it held
func (c *CarrierComponent) Clear() core.Item {
	item := c.Item
	c.Carrying = false
	c.Item = 0
	return item
}

// RequesterComponent holds the item the companion currently wants
type RequesterComponent struct {
	Item core.Item
}

// ProducerComponent is a fixed, never depleted item source
type ProducerComponent struct {
	Item core.Item
}

// MoodComponent holds the companion mood
type MoodComponent struct {
	Value core.Mood
}
