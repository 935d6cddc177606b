package system

import (
	"mengya/internal/component"
	"mengya/internal/ecs"
)

// TargetKind says what the player is in reach of.
type TargetKind uint8

const (
	TargetItem TargetKind = iota
	TargetInteractable
)

// Target is the thing E would act on.
type Target struct {
	Entity ecs.EntityID
	Kind   TargetKind
	Dist   float64
}

// Nearest returns the closest visible pickup or interactable whose reach
// covers the player. Entities with no radius of their own use reach. Ties go
// to the entity created first.
func Nearest(w *ecs.World, player ecs.EntityID, reach float64) (Target, bool) {
	ptr, ok := ecs.Get[component.Transform](w, player)
	if !ok {
		return Target{}, false
	}
	var best Target
	found := false
	consider := func(id ecs.EntityID, kind TargetKind, radius float64) {
		if w.Has(id, component.CTagHidden) {
			return
		}
		tr, ok := ecs.Get[component.Transform](w, id)
		if !ok {
			return
		}
		if radius <= 0 {
			radius = reach
		}
		d := ptr.Position.Dist(tr.Position)
		if d > radius {
			return
		}
		if !found || d < best.Dist || (d == best.Dist && id < best.Entity) {
			best = Target{Entity: id, Kind: kind, Dist: d}
			found = true
		}
	}
	for _, id := range w.Query(component.CPickup, component.CTransform) {
		p, _ := ecs.Get[component.Pickup](w, id)
		consider(id, TargetItem, p.Radius)
	}
	for _, id := range w.Query(component.CInteractable, component.CTransform) {
		it, _ := ecs.Get[component.Interactable](w, id)
		consider(id, TargetInteractable, it.Radius)
	}
	return best, found
}

// Highlight sets the Outline flag on target and clears it everywhere else.
func Highlight(w *ecs.World, target ecs.EntityID) {
	for _, id := range w.Query(component.CRenderable) {
		r, _ := ecs.Get[component.Renderable](w, id)
		want := id == target && target != ecs.NilEntity
		if r.Outline != want {
			r.Outline = want
			w.Add(id, r)
		}
	}
}
