package level

import (
	"fmt"
	"io"
	"log"

	"mengya/assets"
	"mengya/internal/component"
	"mengya/internal/ecs"
	"mengya/internal/factory"
	"mengya/internal/gamemap"
	"mengya/internal/inventory"
	"mengya/internal/lighting"
)

// Holder answers whether the backpack holds an item.
type Holder interface {
	Find(id int) int
}

// Options tunes level construction.
type Options struct {
	Slots       int
	PlayerSpeed float64
	Lighting    bool
	Logger      *log.Logger
}

// Level is one loaded level: its world, stage, light and HUD cells. It is
// rebuilt from scratch on every load.
type Level struct {
	ID     ID
	World  *ecs.World
	Map    *gamemap.GameMap
	Light  *lighting.Map
	Player ecs.EntityID

	// Slots are the backpack cells of this level's HUD in layout order;
	// Displays is the same set ordered by slot name.
	Slots    []*inventory.Slot
	Displays []inventory.SlotDisplay

	mem *Memory
	log *log.Logger
}

// Load builds level id. Items already in the backpack and placements that
// were replaced are left out; replacements recorded in mem are added.
func Load(id ID, mem *Memory, held Holder, opts Options) (*Level, error) {
	if !id.Valid() {
		return nil, fmt.Errorf("load %v: no such level", id)
	}
	if mem == nil {
		mem = &Memory{}
	}
	lg := opts.Logger
	if lg == nil {
		lg = log.New(io.Discard, "", 0)
	}
	def := assets.Levels[id]
	gmap, err := gamemap.Parse(def.Layout)
	if err != nil {
		return nil, fmt.Errorf("load %v: %w", id, err)
	}

	l := &Level{ID: id, World: ecs.NewWorld(), Map: gmap, mem: mem, log: lg}
	w, row := l.World, gmap.Spawn.Y

	for _, d := range def.Doors {
		factory.NewDoor(w, d, row)
	}
	for _, p := range def.Props {
		prop, ok := assets.Props[p.Key]
		if !ok {
			return nil, fmt.Errorf("load %v: unknown prop %q", id, p.Key)
		}
		factory.NewProp(w, prop, p.X, row)
	}
	for _, p := range def.Items {
		item, ok := assets.Items[p.Key]
		if !ok {
			return nil, fmt.Errorf("load %v: unknown item %q", id, p.Key)
		}
		if held.Find(item.ID) >= 0 || mem.Removed(id, p.Key) {
			continue
		}
		factory.NewItem(w, item, p.X, row, int(id))
	}
	for _, s := range mem.Spawns(id) {
		if item, ok := assets.Items[s.Key]; ok && held.Find(item.ID) >= 0 {
			continue
		}
		if _, err := factory.Spawn(w, s.Key, s.At, int(id)); err != nil {
			return nil, fmt.Errorf("load %v: %w", id, err)
		}
	}
	for _, a := range def.Apparitions {
		factory.NewApparition(w, a, row)
	}
	l.Player = factory.NewPlayer(w, gmap.Spawn.X, row, opts.PlayerSpeed)

	amb := lighting.Day
	var lights []lighting.Light
	if opts.Lighting {
		if def.Night {
			amb = lighting.Night
		}
		for _, ld := range def.Lights {
			lights = append(lights, lighting.New(ld.Kind, ld.X, ld.Y))
		}
	}
	l.Light = lighting.Compute(gmap, lights, amb)

	n := opts.Slots
	if n <= 0 {
		n = inventory.DefaultSlotCount
	}
	for i := 0; i < n; i++ {
		l.Slots = append(l.Slots, inventory.NewSlot(fmt.Sprintf("%s%d", inventory.SlotPrefix, i)))
	}
	if l.Displays, err = inventory.OrderSlots(l.Slots); err != nil {
		return nil, fmt.Errorf("load %v: %w", id, err)
	}
	lg.Printf("loaded %v: %d entities", id, w.Len())
	return l, nil
}

// Capture returns the transform of entity id as a backpack snapshot.
func (l *Level) Capture(id ecs.EntityID) (inventory.Snapshot, bool) {
	tr, ok := ecs.Get[component.Transform](l.World, id)
	if !ok {
		return inventory.Snapshot{Level: int(l.ID)}, false
	}
	return inventory.Snapshot{
		Position: tr.Position,
		Rotation: tr.Rotation,
		Scale:    tr.Scale,
		Parent:   tr.Parent,
		Level:    int(l.ID),
	}, true
}

// Hide takes id out of play. The entity stays in the world so it can be
// shown again.
func (l *Level) Hide(id ecs.EntityID) {
	l.World.Add(id, component.TagHidden{})
}

// Replace hides id and spawns catalog entry key where it stood. The swap is
// remembered for later visits.
func (l *Level) Replace(id ecs.EntityID, key string) (ecs.EntityID, error) {
	at, ok := ecs.Get[component.Transform](l.World, id)
	if !ok {
		return ecs.NilEntity, fmt.Errorf("replace entity %d: no transform", id)
	}
	nid, err := factory.Spawn(l.World, key, at, int(l.ID))
	if err != nil {
		return ecs.NilEntity, err
	}
	l.Hide(id)
	if p, ok := ecs.Get[component.Pickup](l.World, id); ok && p.Item.Template != nil {
		l.mem.Replaced(l.ID, p.Item.Template.Key, Spawned{Key: key, At: at})
	}
	return nid, nil
}

// Restore puts a displaced backpack item back. Items that belong to another
// level need nothing: that level rebuilds them on its next load because they
// are no longer held.
func (l *Level) Restore(item inventory.Item, snap inventory.Snapshot) error {
	if snap.Level != int(l.ID) {
		if item.Template == nil {
			return fmt.Errorf("%q: %w", item.Name, inventory.ErrMissingTemplate)
		}
		l.log.Printf("%q returns to %v", item.Name, ID(snap.Level))
		return nil
	}
	_, err := factory.Restore(l.World, item, snap)
	return err
}
