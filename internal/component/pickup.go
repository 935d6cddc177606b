package component

import (
	"mengya/internal/ecs"
	"mengya/internal/inventory"
)

const CPickup ecs.ComponentType = 13

// Pickup makes a level entity collectible. The wrapped Item is copied into
// the backpack on confirm; the entity is then hidden.
type Pickup struct {
	Item   inventory.Item
	Radius float64 // reach in tiles; 0 uses the configured default
}

func (Pickup) Type() ecs.ComponentType { return CPickup }
