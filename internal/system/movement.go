package system

import (
	"math"

	"mengya/internal/component"
	"mengya/internal/ecs"
	"mengya/internal/gamemap"
)

// MoveResult describes the outcome of a Walk call.
type MoveResult uint8

const (
	MoveIdle    MoveResult = iota // no input
	MoveOK                        // position updated
	MoveBlocked                   // wall or out-of-bounds ahead
	MoveLocked                    // input ignored while movement is locked
)

// HoldTime is how long one key press keeps the walker going. Terminals send
// no key-up events, so auto-repeat has to bridge the gap.
const HoldTime = 0.2

// Steer sets the walking direction of id for the next HoldTime seconds.
func Steer(w *ecs.World, id ecs.EntityID, dir int) {
	mv, ok := ecs.Get[component.Mover](w, id)
	if !ok {
		return
	}
	mv.Input = float64(sign(dir))
	mv.Hold = HoldTime
	w.Add(id, mv)
}

// Walk moves id along its row by its Mover input for dt seconds. Walking
// turns the entity to face its direction; a locked walker stays put and
// its input is dropped.
func Walk(w *ecs.World, gmap *gamemap.GameMap, id ecs.EntityID, dt float64, locked bool) MoveResult {
	mv, ok := ecs.Get[component.Mover](w, id)
	if !ok {
		return MoveIdle
	}
	tr, ok := ecs.Get[component.Transform](w, id)
	if !ok {
		return MoveIdle
	}
	dir := mv.Input
	mv.Hold -= dt
	if mv.Hold <= 0 {
		mv.Hold, mv.Input = 0, 0
	}
	if locked {
		mv.Hold, mv.Input = 0, 0
		w.Add(id, mv)
		if dir != 0 {
			return MoveLocked
		}
		return MoveIdle
	}
	if dir == 0 {
		w.Add(id, mv)
		return MoveIdle
	}
	mv.Facing = int(dir)
	tr.Scale.X = math.Abs(tr.Scale.X) * dir
	w.Add(id, mv)

	row := int(math.Round(tr.Position.Y))
	nx := tr.Position.X + dir*mv.Speed*dt
	if !gmap.IsWalkable(int(math.Round(nx)), row) {
		// Stop at the centre of the last open tile.
		tr.Position.X = math.Round(tr.Position.X)
		w.Add(id, tr)
		return MoveBlocked
	}
	tr.Position.X = nx
	w.Add(id, tr)
	return MoveOK
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
