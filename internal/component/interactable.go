package component

import "mengya/internal/ecs"

const CInteractable ecs.ComponentType = 16

// InteractKind classifies what happens when the player uses an interactable.
type InteractKind uint8

const (
	InteractNextLevel   InteractKind = iota // load Target
	InteractBackToLevel                     // load Target without replaying its intro
	InteractExitConfirm                     // open the leave-confirmation dialog
	InteractExamine                         // show Text in the message log
)

// Interactable is a door or trigger the player can use while in reach.
type Interactable struct {
	Kind   InteractKind
	Target int // level ID for the level-changing kinds
	Label  string
	Text   string
	Radius float64
	Locked bool // shown but not usable
}

func (Interactable) Type() ecs.ComponentType { return CInteractable }

// CanInteract reports whether the interactable is usable now.
func (i Interactable) CanInteract() bool { return !i.Locked }
