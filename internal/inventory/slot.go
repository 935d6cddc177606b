package inventory

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// SlotDisplay is a backpack cell that can show one icon.
type SlotDisplay interface {
	Clear()
	SetIcon(Icon)
}

// Slot is the concrete backpack cell drawn by the renderer. The zero value is
// an idle, empty cell.
type Slot struct {
	Name string
	icon Icon
}

// NewSlot returns an idle cell with the given hierarchy name (e.g. "Slot_3").
func NewSlot(name string) *Slot { return &Slot{Name: name} }

// Clear hides the icon and leaves the idle background. A nil cell ignores it.
func (s *Slot) Clear() {
	if s == nil {
		return
	}
	s.icon = Icon{}
}

// SetIcon shows icon, or clears the cell when icon is empty.
func (s *Slot) SetIcon(icon Icon) {
	if s == nil {
		return
	}
	if icon.IsZero() {
		s.Clear()
		return
	}
	s.icon = icon
}

// Icon returns the icon currently shown and whether one is shown at all.
func (s *Slot) Icon() (Icon, bool) {
	if s == nil {
		return Icon{}, false
	}
	return s.icon, !s.icon.IsZero()
}

// SlotPrefix is the naming convention for backpack cells in a level's HUD.
const SlotPrefix = "Slot_"

// MaxSlotOrdinal bounds the N in "Slot_N".
const MaxSlotOrdinal = 63

// slotOrdinal parses the N of "Slot_N". N is plain decimal digits.
func slotOrdinal(name string) (int, bool) {
	digits, ok := strings.CutPrefix(name, SlotPrefix)
	if !ok || digits == "" || strings.TrimLeft(digits, "0123456789") != "" {
		return 0, false
	}
	n, err := strconv.Atoi(digits)
	if err != nil || n > MaxSlotOrdinal {
		return 0, false
	}
	return n, true
}

// OrderSlots arranges named cells by their "Slot_N" ordinal. The result has
// length max(N)+1; ordinals with no cell are nil. Names that do not follow the
// convention and repeated ordinals are reported in the error and left out;
// the first cell with an ordinal keeps it.
func OrderSlots(named []*Slot) ([]SlotDisplay, error) {
	type indexed struct {
		n    int
		slot *Slot
	}
	var (
		ok   []indexed
		bad  []string
		dups []string
		seen = make(map[int]bool)
	)
	for _, s := range named {
		if s == nil {
			continue
		}
		n, valid := slotOrdinal(s.Name)
		if !valid {
			bad = append(bad, s.Name)
			continue
		}
		if seen[n] {
			dups = append(dups, s.Name)
			continue
		}
		seen[n] = true
		ok = append(ok, indexed{n, s})
	}
	sort.SliceStable(ok, func(i, j int) bool { return ok[i].n < ok[j].n })

	var out []SlotDisplay
	if len(ok) > 0 {
		out = make([]SlotDisplay, ok[len(ok)-1].n+1)
		for _, e := range ok {
			out[e.n] = e.slot
		}
	}
	var errs []error
	if len(bad) > 0 {
		errs = append(errs, fmt.Errorf("unrecognised slot names %q", bad))
	}
	if len(dups) > 0 {
		errs = append(errs, fmt.Errorf("duplicate slot names %q", dups))
	}
	return out, errors.Join(errs...)
}
