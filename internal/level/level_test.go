package level

import (
	"errors"
	"testing"

	"mengya/assets"
	"mengya/internal/component"
	"mengya/internal/ecs"
	"mengya/internal/inventory"
)

// held is a fake backpack holding the listed item IDs.
type held []int

func (h held) Find(id int) int {
	for i, v := range h {
		if v == id {
			return i
		}
	}
	return -1
}

func opts() Options { return Options{PlayerSpeed: 6, Lighting: true} }

func pickups(l *Level) map[int]ecs.EntityID {
	out := map[int]ecs.EntityID{}
	for _, id := range l.World.Query(component.CPickup) {
		if l.World.Has(id, component.CTagHidden) {
			continue
		}
		p, _ := ecs.Get[component.Pickup](l.World, id)
		out[p.Item.ID] = id
	}
	return out
}

func TestLoadEveryLevel(t *testing.T) {
	for id := ID(0); id.Valid(); id++ {
		t.Run(id.String(), func(t *testing.T) {
			l, err := Load(id, nil, held{}, opts())
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if !l.World.Has(l.Player, component.CTagPlayer) {
				t.Fatal("level has no player")
			}
			if len(l.Displays) != inventory.DefaultSlotCount {
				t.Fatalf("%d displays bound, want %d", len(l.Displays), inventory.DefaultSlotCount)
			}
			for i, d := range l.Displays {
				if s := d.(*inventory.Slot); s != l.Slots[i] {
					t.Fatalf("display %d is %q", i, s.Name)
				}
			}
			// Every item in levels 1..8 belongs to that level's slot.
			for _, e := range l.World.Query(component.CPickup) {
				p, _ := ecs.Get[component.Pickup](l.World, e)
				if p.Item.Level != int(id) {
					t.Fatalf("%q placed in %v but owned by level %d", p.Item.Name, id, p.Item.Level)
				}
			}
		})
	}
}

func TestLoadInvalid(t *testing.T) {
	if _, err := Load(ID(42), nil, held{}, opts()); err == nil {
		t.Fatal("expected an error for an unknown level")
	}
	if ID(42).String() != "level(42)" {
		t.Fatal("unknown IDs should still print")
	}
}

func TestHeldItemsAreSkipped(t *testing.T) {
	l, err := Load(Classroom, nil, held{assets.IDHandbook}, opts())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if _, ok := pickups(l)[assets.IDHandbook]; ok {
		t.Fatal("a held item must not be rebuilt")
	}
}

func TestReplaceIsRemembered(t *testing.T) {
	mem := &Memory{}
	l, err := Load(Classroom, mem, held{}, opts())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	book := pickups(l)[assets.IDHandbook]
	photo, err := l.Replace(book, assets.KeyPhotograph)
	if err != nil {
		t.Fatalf("Replace: %v", err)
	}
	bt, _ := ecs.Get[component.Transform](l.World, book)
	pt, _ := ecs.Get[component.Transform](l.World, photo)
	if bt != pt {
		t.Fatalf("replacement at %+v, original at %+v", pt, bt)
	}
	if !l.World.Has(book, component.CTagHidden) {
		t.Fatal("original should be hidden")
	}

	again, err := Load(Classroom, mem, held{}, opts())
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	got := pickups(again)
	if _, ok := got[assets.IDHandbook]; ok {
		t.Fatal("replaced handbook came back")
	}
	photoID := assets.Items[assets.KeyPhotograph].ID
	if _, ok := got[photoID]; !ok {
		t.Fatal("photograph should be rebuilt on reload")
	}

	third, _ := Load(Classroom, mem, held{photoID}, opts())
	if _, ok := pickups(third)[photoID]; ok {
		t.Fatal("a held replacement must not be rebuilt")
	}
}

func TestCaptureHideRestore(t *testing.T) {
	l, _ := Load(Library, nil, held{}, opts())
	key := pickups(l)[assets.IDKey]
	snap, ok := l.Capture(key)
	if !ok || snap.Level != int(Library) || snap.Position.IsZero() {
		t.Fatalf("Capture = %+v, %v", snap, ok)
	}
	l.Hide(key)
	if _, ok := pickups(l)[assets.IDKey]; ok {
		t.Fatal("hidden item should not be reachable")
	}
	snap.Instance = uint64(key)
	p, _ := ecs.Get[component.Pickup](l.World, key)
	if err := l.Restore(p.Item, snap); err != nil {
		t.Fatalf("Restore: %v", err)
	}
	if pickups(l)[assets.IDKey] != key {
		t.Fatal("restore should re-show the same instance")
	}
}

func TestRestoreOtherLevel(t *testing.T) {
	l, _ := Load(Library, nil, held{}, opts())
	n := l.World.Len()
	item := assets.Items["cassette"]
	if err := l.Restore(item, inventory.Snapshot{Level: int(MusicRoom), Instance: 5}); err != nil {
		t.Fatalf("Restore: %v", err)
	}
	if l.World.Len() != n {
		t.Fatal("an item from another level must not appear here")
	}
	bare := inventory.Item{ID: 9, Name: "bare", Level: 3}
	if err := l.Restore(bare, inventory.Snapshot{Level: int(MusicRoom), Instance: 5}); !errors.Is(err, inventory.ErrMissingTemplate) {
		t.Fatalf("Restore without template = %v", err)
	}
}

func TestLightingToggle(t *testing.T) {
	o := opts()
	o.Lighting = false
	l, _ := Load(Dormitory, nil, held{}, o)
	if b := l.Light.Brightness(5, l.Map.Spawn.Y); b != 1 {
		t.Fatalf("unlit level brightness = %v, want 1", b)
	}
	lit, _ := Load(Dormitory, nil, held{}, opts())
	if b := lit.Light.Brightness(5, lit.Map.Spawn.Y); b >= 1 {
		t.Fatalf("night level should be darker, got %v", b)
	}
}
