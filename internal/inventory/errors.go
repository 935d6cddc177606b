package inventory

import "errors"

var (
	// ErrInvalidItem is returned for a nil item or one with no name, and for an
	// item whose captured position is unusable and that has no template.
	ErrInvalidItem = errors.New("invalid item")
	// ErrSlotOutOfRange is returned when an item's level has no backpack slot.
	ErrSlotOutOfRange = errors.New("slot out of range")
	// ErrMissingDisplayBinding is returned when fewer slot displays are bound
	// than the store has slots, or when one of them is nil.
	ErrMissingDisplayBinding = errors.New("missing slot display binding")
	// ErrMissingTemplate is returned when a displaced item must be put back
	// into a level but nothing describes how to build it.
	ErrMissingTemplate = errors.New("missing spawn template")
	// ErrRestorePanicked is returned when the restoration callback panics.
	ErrRestorePanicked = errors.New("restore panicked")
)
