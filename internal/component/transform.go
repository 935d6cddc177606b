package component

import (
	"mengya/internal/ecs"
	"mengya/internal/geom"
)

const CTransform ecs.ComponentType = 1

// Transform places an entity in its level. Position is the entity's feet, in
// tiles; Y grows downward like screen rows.
type Transform struct {
	Position geom.Vec2
	Rotation float64 // degrees
	Scale    geom.Vec2
	Parent   string // group within the level, "" for the root
}

func (Transform) Type() ecs.ComponentType { return CTransform }

// At returns an unrotated, unit-scale transform at (x, y).
func At(x, y float64) Transform {
	return Transform{Position: geom.Vec2{X: x, Y: y}, Scale: geom.Vec2{X: 1, Y: 1}}
}
