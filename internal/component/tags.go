package component

import "mengya/internal/ecs"

const (
	CTagPlayer ecs.ComponentType = 8
	CTagHidden ecs.ComponentType = 9
)

// TagPlayer marks the player-controlled entity.
type TagPlayer struct{}

func (TagPlayer) Type() ecs.ComponentType { return CTagPlayer }

// TagHidden marks an entity that is kept in the level but neither drawn nor
// reachable. Collected items are hidden, not destroyed, so a later swap can
// put the same instance back.
type TagHidden struct{}

func (TagHidden) Type() ecs.ComponentType { return CTagHidden }
