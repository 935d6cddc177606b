package level

import "mengya/internal/component"

// Spawned is an entity added to a level after it was authored.
type Spawned struct {
	Key string
	At  component.Transform
}

type memo struct {
	removed map[string]bool
	spawned []Spawned
}

// Memory keeps per-level changes across loads: placements that were replaced
// and what replaced them. Items in the backpack need no entry; a level skips
// them when it is built. The zero value is ready to use.
type Memory struct {
	levels map[ID]*memo
}

func (m *Memory) get(id ID) *memo {
	if m.levels == nil {
		m.levels = make(map[ID]*memo)
	}
	mm := m.levels[id]
	if mm == nil {
		mm = &memo{removed: make(map[string]bool)}
		m.levels[id] = mm
	}
	return mm
}

// Replaced records that placement key in level id gave way to spawn.
func (m *Memory) Replaced(id ID, key string, spawn Spawned) {
	mm := m.get(id)
	mm.removed[key] = true
	mm.spawned = append(mm.spawned, spawn)
}

// Removed reports whether placement key in level id is gone.
func (m *Memory) Removed(id ID, key string) bool {
	mm := m.levels[id]
	return mm != nil && mm.removed[key]
}

// Spawns returns the entities added to level id, in order.
func (m *Memory) Spawns(id ID) []Spawned {
	mm := m.levels[id]
	if mm == nil {
		return nil
	}
	return append([]Spawned(nil), mm.spawned...)
}
