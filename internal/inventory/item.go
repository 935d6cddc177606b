package inventory

import (
	"mengya/internal/geom"

	"github.com/gdamore/tcell/v2"
)

// DefaultSlotCount is the number of backpack slots, one per story level.
const DefaultSlotCount = 8

// Icon is what a slot display paints for an item.
type Icon struct {
	Glyph string
	Color tcell.Color
}

// IsZero reports whether the icon paints nothing.
func (i Icon) IsZero() bool { return i.Glyph == "" }

// Template describes how to put an item back into a level after it has been
// collected. Key names the catalog entry the restorer builds from.
type Template struct {
	Key     string
	Default Snapshot // spawn transform used when no captured transform is usable
}

// Item is a collectible. It is a plain value record; the store copies it.
type Item struct {
	ID          int
	Name        string
	Description string
	Icon        Icon
	Level       int // owning level, 1..slotCount; slot = Level-1
	Template    *Template
}

// Slot returns the backpack index this item belongs to.
func (it Item) Slot() int { return it.Level - 1 }

// Snapshot is the world transform of an item at the moment it left the level.
type Snapshot struct {
	Position geom.Vec2
	Rotation float64 // degrees
	Scale    geom.Vec2
	Parent   string // parent group within the level; "" is the level root
	Level    int    // level the snapshot was taken in
	Instance uint64 // hidden scene entity, 0 when none was kept
}

// usable reports whether the captured position can be used for restoration.
func (s Snapshot) usable() bool {
	return !s.Position.IsZero() && !s.Position.IsNaN()
}
