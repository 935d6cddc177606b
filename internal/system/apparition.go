package system

import (
	"math"

	"mengya/internal/component"
	"mengya/internal/ecs"
)

// Holder answers whether the backpack holds an item.
type Holder interface {
	Find(id int) int
}

// UpdateApparitions shows each apparition while its item is held, flickering
// it on and off.
func UpdateApparitions(w *ecs.World, held Holder, dt float64) {
	for _, id := range w.Query(component.CApparition) {
		a, _ := ecs.Get[component.Apparition](w, id)
		a.Present = held.Find(a.ItemID) >= 0
		if !a.Present {
			a.Timer, a.Lit = 0, false
		} else {
			a.Timer += dt
			period := a.On + a.Off
			a.Lit = period <= 0 || math.Mod(a.Timer, period) < a.On
		}
		w.Add(id, a)
	}
}
