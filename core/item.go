package core

import "fmt"

// Item is a deliverable object, closed set
type Item uint8

const (
	ItemWaterGlass Item = iota
	ItemChips
	ItemIceCream
	ItemCount
)

var itemNames = [ItemCount]string{"water_glass", "chips", "ice_cream"}

// Valid reports whether i belongs to the item set
func (i Item) Valid() bool {
	return i < ItemCount
}

func (i Item) String() string {
	if !i.Valid() {
		return fmt.Sprintf("item(%d)", uint8(i))
	}
	return itemNames[i]
}

// ParseItem resolves an item by its string name
func ParseItem(name string) (Item, error) {
	for i, n := range itemNames {
		if n == name {
			return Item(i), nil
		}
	}
	return ItemCount, fmt.Errorf("unknown item %q", name)
}

// Intner is any random source able to pick in [0, n)
type Intner interface {
	Intn(n int) int
}

// RandomItem picks an item uniformly
func RandomItem(rng Intner) Item {
	return Item(rng.Intn(int(ItemCount)))
}
