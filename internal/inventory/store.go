package inventory

import (
	"errors"
	"fmt"
	"io"
	"log"
)

// RestoreFunc puts a displaced item back into the active level at snap.
// A non-nil error aborts the add that displaced it.
type RestoreFunc func(item Item, snap Snapshot) error

// maxRecorded bounds the rejection history kept for the HUD and tests.
const maxRecorded = 32

// Options configures a Store. The zero value gives eight slots, no restorer
// and a discarding logger.
type Options struct {
	Slots   int
	Restore RestoreFunc
	Logger  *log.Logger
}

type slotState struct {
	item *Item
	snap Snapshot
}

// Store holds at most one item per level. It is created once per process by
// the game driver and outlives every level load. It is not safe for
// concurrent use; the frame loop is its only mutator.
type Store struct {
	slots    []slotState
	restore  RestoreFunc
	log      *log.Logger
	displays []SlotDisplay
	errs     []error
}

// NewStore creates an empty store.
func NewStore(opts Options) *Store {
	n := opts.Slots
	if n <= 0 {
		n = DefaultSlotCount
	}
	lg := opts.Logger
	if lg == nil {
		lg = log.New(io.Discard, "", 0)
	}
	return &Store{
		slots:   make([]slotState, n),
		restore: opts.Restore,
		log:     lg,
	}
}

// SetRestore replaces the restoration callback. The game installs one bound
// to the level that is currently loaded.
func (s *Store) SetRestore(fn RestoreFunc) { s.restore = fn }

// Len returns the fixed slot count.
func (s *Store) Len() int { return len(s.slots) }

// ItemAt returns a copy of the item in slot i.
func (s *Store) ItemAt(i int) (Item, bool) {
	if i < 0 || i >= len(s.slots) || s.slots[i].item == nil {
		return Item{}, false
	}
	return *s.slots[i].item, true
}

// SnapshotAt returns the transform recorded for slot i.
func (s *Store) SnapshotAt(i int) (Snapshot, bool) {
	if i < 0 || i >= len(s.slots) || s.slots[i].item == nil {
		return Snapshot{}, false
	}
	return s.slots[i].snap, true
}

// Count returns how many slots are occupied.
func (s *Store) Count() int {
	n := 0
	for _, st := range s.slots {
		if st.item != nil {
			n++
		}
	}
	return n
}

// Find returns the slot holding an item with the given ID, or -1.
func (s *Store) Find(id int) int {
	for i, st := range s.slots {
		if st.item != nil && st.item.ID == id {
			return i
		}
	}
	return -1
}

// TryAdd stores item in the slot of its owning level. at is the item's world
// transform right before it leaves the level. If the slot is occupied the
// previous item is handed to the restoration callback first; when that fails
// nothing changes and the error is returned.
func (s *Store) TryAdd(item *Item, at Snapshot) error {
	if item == nil || item.Name == "" {
		return s.reject(fmt.Errorf("add: %w", ErrInvalidItem))
	}
	idx := item.Slot()
	if idx < 0 || idx >= len(s.slots) {
		return s.reject(fmt.Errorf("add %q: level %d has no slot (1..%d): %w",
			item.Name, item.Level, len(s.slots), ErrSlotOutOfRange))
	}

	if !at.usable() {
		if item.Template == nil {
			return s.reject(fmt.Errorf("add %q: unusable position %v and no template: %w",
				item.Name, at.Position, ErrInvalidItem))
		}
		s.log.Printf("%q captured at %v, falling back to template position %v",
			item.Name, at.Position, item.Template.Default.Position)
		at.Position = item.Template.Default.Position
	}

	if old := s.slots[idx]; old.item != nil {
		if err := s.displace(*old.item, old.snap); err != nil {
			return s.reject(fmt.Errorf("add %q: return %q to level: %w", item.Name, old.item.Name, err))
		}
	}

	stored := *item
	s.slots[idx] = slotState{item: &stored, snap: at}
	s.paint(idx)
	s.log.Printf("stored %q (id %d) in %s%d", item.Name, item.ID, SlotPrefix, idx)
	return nil
}

// displace runs the restoration callback for an item leaving its slot. A
// panicking callback is reported as an error.
func (s *Store) displace(old Item, snap Snapshot) (err error) {
	if s.restore == nil {
		s.log.Printf("no restorer bound, %q is dropped", old.Name)
		return nil
	}
	if old.Template == nil && snap.Instance == 0 {
		return fmt.Errorf("%q: %w", old.Name, ErrMissingTemplate)
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("restore %q: %w: %v", old.Name, ErrRestorePanicked, r)
		}
	}()
	if err := s.restore(old, snap); err != nil {
		return err
	}
	s.log.Printf("returned %q to level %d at %v", old.Name, snap.Level, snap.Position)
	return nil
}

// Bind replaces the displays repainted after each mutation. It is called on
// every level load with that level's HUD cells.
func (s *Store) Bind(displays []SlotDisplay) { s.displays = displays }

// Sync repaints the bound displays.
func (s *Store) Sync() error { return s.SyncToDisplays(s.displays) }

// SyncToDisplays clears every display and paints the icon of each occupied
// slot. Displays past the slot count are cleared; a short collection is
// painted as far as it goes and reported.
func (s *Store) SyncToDisplays(displays []SlotDisplay) error {
	for _, d := range displays {
		if !absent(d) {
			d.Clear()
		}
	}
	var missing []int
	for i, st := range s.slots {
		if i >= len(displays) || absent(displays[i]) {
			missing = append(missing, i)
			continue
		}
		if st.item != nil {
			displays[i].SetIcon(st.item.Icon)
		}
	}
	if len(missing) > 0 {
		return s.reject(fmt.Errorf("sync: no display for slots %v: %w", missing, ErrMissingDisplayBinding))
	}
	return nil
}

// paint refreshes one bound display.
func (s *Store) paint(i int) {
	if i >= len(s.displays) || absent(s.displays[i]) {
		return
	}
	if st := s.slots[i]; st.item != nil {
		s.displays[i].SetIcon(st.item.Icon)
	} else {
		s.displays[i].Clear()
	}
}

// absent reports whether d is unset, including a nil *Slot held by the
// interface.
func absent(d SlotDisplay) bool {
	if d == nil {
		return true
	}
	s, ok := d.(*Slot)
	return ok && s == nil
}

// reject logs and records err, then returns it.
func (s *Store) reject(err error) error {
	s.log.Printf("rejected: %v", err)
	s.errs = append(s.errs, err)
	if len(s.errs) > maxRecorded {
		s.errs = s.errs[len(s.errs)-maxRecorded:]
	}
	return err
}

// Errors returns the recorded rejections, oldest first.
func (s *Store) Errors() []error {
	out := make([]error, len(s.errs))
	copy(out, s.errs)
	return out
}

// CountErrors returns how many recorded rejections match target.
func (s *Store) CountErrors(target error) int {
	n := 0
	for _, err := range s.errs {
		if errors.Is(err, target) {
			n++
		}
	}
	return n
}
