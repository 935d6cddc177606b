package component

import "mengya/internal/ecs"

const CMover ecs.ComponentType = 4

// Mover holds horizontal walking state.
type Mover struct {
	Speed  float64 // tiles per second
	Input  float64 // -1, 0 or 1
	Hold   float64 // seconds Input stays applied
	Facing int     // -1 left, 1 right
}

func (Mover) Type() ecs.ComponentType { return CMover }
