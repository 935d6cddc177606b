// Package pickup runs the select → inspect → take flow for collectible items.
package pickup

import (
	"errors"
	"fmt"
	"io"
	"log"

	"mengya/internal/ecs"
	"mengya/internal/inventory"
)

var (
	// ErrNothingSelected is returned by Confirm and Investigate with no pending selection.
	ErrNothingSelected = errors.New("no item selected")
	// ErrNotInvestigable is returned when no investigation applies to the selected item here.
	ErrNotInvestigable = errors.New("item cannot be investigated")
)

// State is the pending-selection state.
type State uint8

const (
	Idle State = iota
	Selected
)

func (s State) String() string {
	if s == Selected {
		return "selected"
	}
	return "idle"
}

// Scene is the loaded level as the flow sees it.
type Scene interface {
	// Capture returns the entity's current transform.
	Capture(id ecs.EntityID) (inventory.Snapshot, bool)
	// Hide takes the entity out of play without destroying it.
	Hide(id ecs.EntityID)
	// Replace hides the entity and spawns the catalog entry key at its
	// transform.
	Replace(id ecs.EntityID, key string) (ecs.EntityID, error)
}

// Backpack is the part of the inventory store the flow uses.
type Backpack interface {
	TryAdd(item *inventory.Item, at inventory.Snapshot) error
	Find(id int) int
}

// Locker freezes player movement while the detail panel is up.
type Locker interface {
	Lock(reason string)
	Unlock(reason string)
}

const lockReason = "detail"

// Selection is the item waiting on the detail panel.
type Selection struct {
	Entity ecs.EntityID
	Item   inventory.Item
}

// Flow owns the single pending selection. The zero value is not usable; use
// NewFlow.
type Flow struct {
	store          Backpack
	scene          Scene
	level          int
	lock           Locker
	log            *log.Logger
	investigations []Investigation

	state State
	sel   Selection
}

// NewFlow wires a flow to the backpack and the movement lock. The scene is
// set per level with SetScene.
func NewFlow(store Backpack, lock Locker, investigations []Investigation, lg *log.Logger) *Flow {
	if lg == nil {
		lg = log.New(io.Discard, "", 0)
	}
	return &Flow{store: store, lock: lock, investigations: investigations, log: lg}
}

// SetScene points the flow at a newly loaded level and drops any selection
// made in the previous one.
func (f *Flow) SetScene(s Scene, level int) {
	f.close()
	f.scene = s
	f.level = level
}

func (f *Flow) State() State { return f.state }

// Selected returns the pending selection.
func (f *Flow) Selected() (Selection, bool) {
	return f.sel, f.state == Selected
}

// Select makes item the pending selection, replacing any earlier one.
func (f *Flow) Select(id ecs.EntityID, item inventory.Item) {
	if f.state == Selected {
		if f.sel.Entity != id {
			f.log.Printf("selection of %q discarded for %q", f.sel.Item.Name, item.Name)
		}
	} else if f.lock != nil {
		f.lock.Lock(lockReason)
	}
	f.sel = Selection{Entity: id, Item: item}
	f.state = Selected
}

// Confirm takes the pending item into the backpack. The panel closes whether
// or not the store accepts it; the item only leaves the level on success.
func (f *Flow) Confirm() error {
	if f.state != Selected {
		return ErrNothingSelected
	}
	sel := f.sel
	f.close()

	var snap inventory.Snapshot
	if f.scene != nil {
		snap, _ = f.scene.Capture(sel.Entity)
	}
	snap.Instance = uint64(sel.Entity)

	item := sel.Item
	if err := f.store.TryAdd(&item, snap); err != nil {
		return fmt.Errorf("take %q: %w", item.Name, err)
	}
	if f.scene != nil {
		f.scene.Hide(sel.Entity)
	}
	return nil
}

// Cancel closes the panel and leaves the item where it is.
func (f *Flow) Cancel() { f.close() }

// applicable returns the investigation that applies to the pending item.
func (f *Flow) applicable() (Investigation, bool) {
	if f.state != Selected {
		return Investigation{}, false
	}
	for _, p := range f.investigations {
		if !p.Matches(f.sel.Item) {
			continue
		}
		if p.Level != 0 && p.Level != f.level {
			continue
		}
		if p.Requires > 0 && f.store.Find(p.Requires) < 0 {
			continue
		}
		return p, true
	}
	return Investigation{}, false
}

// CanInvestigate reports whether the pending item can be investigated now.
func (f *Flow) CanInvestigate() bool {
	_, ok := f.applicable()
	return ok
}

// Investigate swaps the pending item for its replacement and closes the panel.
func (f *Flow) Investigate() (ecs.EntityID, error) {
	if f.state != Selected {
		return ecs.NilEntity, ErrNothingSelected
	}
	p, ok := f.applicable()
	if !ok || f.scene == nil {
		return ecs.NilEntity, fmt.Errorf("%q: %w", f.sel.Item.Name, ErrNotInvestigable)
	}
	sel := f.sel
	f.close()
	id, err := f.scene.Replace(sel.Entity, p.Replacement)
	if err != nil {
		return ecs.NilEntity, fmt.Errorf("investigate %q: %w", sel.Item.Name, err)
	}
	f.log.Printf("investigated %q, spawned %q", sel.Item.Name, p.Replacement)
	return id, nil
}

func (f *Flow) close() {
	if f.state == Selected && f.lock != nil {
		f.lock.Unlock(lockReason)
	}
	f.state = Idle
	f.sel = Selection{}
}
