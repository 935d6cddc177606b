package component

import "mengya/internal/ecs"

const CApparition ecs.ComponentType = 17

// Apparition is a figure that shows only while the backpack holds ItemID,
// flickering On seconds visible and Off seconds hidden.
type Apparition struct {
	ItemID  int
	On, Off float64

	Timer   float64
	Present bool // the backpack holds the item
	Lit     bool // drawn this frame
}

func (Apparition) Type() ecs.ComponentType { return CApparition }
