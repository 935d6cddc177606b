package factory

import (
	"fmt"

	"mengya/assets"
	"mengya/internal/component"
	"mengya/internal/ecs"
	"mengya/internal/geom"
	"mengya/internal/inventory"

	"github.com/gdamore/tcell/v2"
)

// ErrUnknownKey is returned when a catalog key names neither an item nor a
// prop. It wraps inventory.ErrMissingTemplate so callers of the store see the
// usual taxonomy.
var ErrUnknownKey = fmt.Errorf("unknown catalog key: %w", inventory.ErrMissingTemplate)

// Render orders, back to front.
const (
	orderDoor   = 1
	orderProp   = 2
	orderItem   = 3
	orderFigure = 4
	orderPlayer = 10
)

// NewPlayer creates the player entity at (x, y).
func NewPlayer(w *ecs.World, x, y int, speed float64) ecs.EntityID {
	id := w.CreateEntity()
	w.Add(id, component.At(float64(x), float64(y)))
	w.Add(id, component.Renderable{
		Glyph:       assets.GlyphPlayer,
		FGColor:     assets.ColorPlayer,
		BGColor:     tcell.ColorDefault,
		RenderOrder: orderPlayer,
	})
	w.Add(id, component.Mover{Speed: speed, Facing: 1})
	w.Add(id, component.TagPlayer{})
	return id
}

// NewItem creates a collectible at (x, y). The item's template records this
// spot as its default so it can be put back even without a usable capture.
func NewItem(w *ecs.World, item inventory.Item, x, y, level int) ecs.EntityID {
	at := component.At(float64(x), float64(y))
	if item.Template != nil {
		t := *item.Template
		t.Default = inventory.Snapshot{Position: at.Position, Scale: at.Scale, Level: level}
		item.Template = &t
	}
	id := w.CreateEntity()
	w.Add(id, at)
	w.Add(id, component.Renderable{
		Glyph:       item.Icon.Glyph,
		FGColor:     item.Icon.Color,
		BGColor:     tcell.ColorDefault,
		RenderOrder: orderItem,
	})
	w.Add(id, component.Pickup{Item: item})
	return id
}

// NewProp creates examinable scenery at (x, y).
func NewProp(w *ecs.World, def assets.PropDef, x, y int) ecs.EntityID {
	id := w.CreateEntity()
	w.Add(id, component.At(float64(x), float64(y)))
	w.Add(id, component.Renderable{
		Glyph:       def.Glyph,
		FGColor:     tcell.ColorWhite,
		BGColor:     tcell.ColorDefault,
		RenderOrder: orderProp,
	})
	w.Add(id, component.Interactable{
		Kind:  component.InteractExamine,
		Label: def.Name,
		Text:  def.Description,
	})
	return id
}

// NewDoor creates a door or trigger at (x, y).
func NewDoor(w *ecs.World, d assets.DoorDef, y int) ecs.EntityID {
	glyph := assets.GlyphDoor
	if d.Kind == component.InteractBackToLevel {
		glyph = assets.GlyphBack
	}
	id := w.CreateEntity()
	w.Add(id, component.At(float64(d.X), float64(y)))
	w.Add(id, component.Renderable{
		Glyph:       glyph,
		FGColor:     assets.ColorDoor,
		BGColor:     tcell.ColorDefault,
		RenderOrder: orderDoor,
	})
	w.Add(id, component.Interactable{Kind: d.Kind, Target: d.Target, Label: d.Label})
	return id
}

// NewApparition creates a figure that only shows while the backpack holds a
// given item.
func NewApparition(w *ecs.World, a assets.ApparitionDef, y int) ecs.EntityID {
	id := w.CreateEntity()
	w.Add(id, component.At(float64(a.X), float64(y)))
	w.Add(id, component.Renderable{
		Glyph:       a.Glyph,
		FGColor:     assets.ColorSpooky,
		BGColor:     tcell.ColorDefault,
		RenderOrder: orderFigure,
	})
	w.Add(id, component.Apparition{ItemID: a.ItemID, On: 0.12, Off: 0.08})
	return id
}

// Spawn builds catalog entry key at the given transform. Items take their
// catalog template; props become scenery.
func Spawn(w *ecs.World, key string, at component.Transform, level int) (ecs.EntityID, error) {
	x, y := at.Position.Round()
	if item, ok := assets.Items[key]; ok {
		id := NewItem(w, item, x, y, level)
		w.Add(id, at)
		return id, nil
	}
	if def, ok := assets.Props[key]; ok {
		id := NewProp(w, def, x, y)
		w.Add(id, at)
		return id, nil
	}
	return ecs.NilEntity, fmt.Errorf("%q: %w", key, ErrUnknownKey)
}

// Restore puts item back into w at snap. A hidden instance still in w is
// shown again in place; otherwise a fresh entity is built from the item's
// template.
func Restore(w *ecs.World, item inventory.Item, snap inventory.Snapshot) (ecs.EntityID, error) {
	at := component.Transform{Position: snap.Position, Rotation: snap.Rotation, Scale: snap.Scale, Parent: snap.Parent}
	if at.Scale.IsZero() {
		at.Scale = geom.Vec2{X: 1, Y: 1}
	}
	if id := ecs.EntityID(snap.Instance); id != ecs.NilEntity && w.Alive(id) {
		if p, ok := ecs.Get[component.Pickup](w, id); ok && p.Item.ID == item.ID {
			w.Add(id, at)
			w.Remove(id, component.CTagHidden)
			return id, nil
		}
	}
	if item.Template == nil {
		return ecs.NilEntity, fmt.Errorf("%q: %w", item.Name, inventory.ErrMissingTemplate)
	}
	return Spawn(w, item.Template.Key, at, snap.Level)
}
