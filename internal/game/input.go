package game

import (
	"errors"
	"fmt"

	"mengya/assets"
	"mengya/internal/audio"
	"mengya/internal/component"
	"mengya/internal/ecs"
	"mengya/internal/level"
	"mengya/internal/pickup"
	"mengya/internal/system"

	"github.com/gdamore/tcell/v2"
)

// Action represents a player-requested game action.
type Action uint8

const (
	ActionNone Action = iota
	ActionLeft
	ActionRight
	ActionUp
	ActionDown
	ActionInteract
	ActionConfirm
	ActionCancel
	ActionInvestigate
	ActionBackpack
	ActionContinue
	ActionQuit
)

// keyToAction maps a tcell key event to a game action.
func keyToAction(ev *tcell.EventKey) Action {
	// Named keys.
	switch ev.Key() {
	case tcell.KeyLeft:
		return ActionLeft
	case tcell.KeyRight:
		return ActionRight
	case tcell.KeyUp:
		return ActionUp
	case tcell.KeyDown:
		return ActionDown
	case tcell.KeyEnter:
		return ActionConfirm
	case tcell.KeyEscape:
		return ActionCancel
	case tcell.KeyTab:
		return ActionBackpack
	case tcell.KeyCtrlC:
		return ActionQuit
	}

	// Rune keys.
	switch ev.Rune() {
	case 'a', 'A':
		return ActionLeft
	case 'd', 'D':
		return ActionRight
	case 'w', 'W':
		return ActionUp
	case 's', 'S':
		return ActionDown
	case 'e', 'E':
		return ActionInteract
	case 'y', 'Y':
		return ActionConfirm
	case 'n', 'N':
		return ActionCancel
	case 'i', 'I':
		return ActionInvestigate
	case 'b', 'B':
		return ActionBackpack
	case ' ':
		return ActionContinue
	case 'q', 'Q':
		return ActionQuit
	}
	return ActionNone
}

// handle routes an action to whatever has focus. Open panels take input
// before the dialogue box, and the dialogue box before gameplay.
func (g *Game) handle(a Action) {
	if a == ActionQuit {
		g.quit = true
		return
	}
	switch {
	case g.exit.CGVisible():
		if a == ActionConfirm || a == ActionCancel {
			g.quit = true
		}
	case g.fade.Active():
	case g.exit.Visible():
		g.handleExit(a)
	case g.volume.Visible():
		g.handleVolume(a)
	case g.flow.State() == pickup.Selected:
		g.handleDetail(a)
	case g.director.Prompt():
		if a == ActionContinue || a == ActionConfirm {
			g.director.Press()
		}
	default:
		g.handlePlay(a)
	}
}

func (g *Game) handleExit(a Action) {
	switch a {
	case ActionConfirm:
		g.sounds.Play(audio.SoundBlip)
		if g.exit.Confirm() {
			g.director.Play(assets.Outro)
		}
	case ActionCancel:
		g.sounds.Play(audio.SoundClose)
		g.exit.Cancel()
	}
}

func (g *Game) handleVolume(a Action) {
	switch a {
	case ActionUp:
		g.volume.Move(-1)
	case ActionDown:
		g.volume.Move(1)
	case ActionLeft:
		g.volume.Adjust(-1)
	case ActionRight:
		g.volume.Adjust(1)
	case ActionCancel, ActionConfirm:
		g.volume.Close()
	}
}

func (g *Game) handleDetail(a Action) {
	switch a {
	case ActionConfirm:
		g.take()
	case ActionCancel:
		g.sounds.Play(audio.SoundClose)
		g.flow.Cancel()
	case ActionInvestigate:
		g.investigate()
	}
}

func (g *Game) handlePlay(a Action) {
	switch a {
	case ActionLeft:
		system.Steer(g.lvl.World, g.lvl.Player, -1)
	case ActionRight:
		system.Steer(g.lvl.World, g.lvl.Player, 1)
	case ActionBackpack:
		g.drawer.Toggle()
		if g.drawer.Shown() {
			g.sounds.Play(audio.SoundOpen)
		} else {
			g.sounds.Play(audio.SoundClose)
		}
	case ActionContinue:
		g.director.Press()
	case ActionInteract:
		g.interact()
	case ActionCancel:
		g.volume.Toggle()
	}
}

// interact uses whatever is in reach.
func (g *Game) interact() {
	if !g.hasTarget || g.lock.Locked() {
		return
	}
	w, id := g.lvl.World, g.target.Entity
	switch g.target.Kind {
	case system.TargetItem:
		p, ok := ecs.Get[component.Pickup](w, id)
		if !ok {
			return
		}
		g.sounds.Play(audio.SoundOpen)
		g.flow.Select(id, p.Item)
	case system.TargetInteractable:
		it, ok := ecs.Get[component.Interactable](w, id)
		if !ok {
			return
		}
		if !it.CanInteract() {
			g.sounds.Play(audio.SoundReject)
			g.addMessage(fmt.Sprintf("The %s will not budge.", it.Label))
			return
		}
		switch it.Kind {
		case component.InteractNextLevel:
			g.travel(level.ID(it.Target))
		case component.InteractBackToLevel:
			to := level.ID(it.Target)
			g.skip.Mark(to)
			g.travel(to)
		case component.InteractExitConfirm:
			g.sounds.Play(audio.SoundOpen)
			g.exit.Open()
		case component.InteractExamine:
			g.addMessage(it.Text)
		}
	}
}

// take moves the selected item into the backpack.
func (g *Game) take() {
	sel, _ := g.flow.Selected()
	if err := g.flow.Confirm(); err != nil {
		g.log.Printf("%v", err)
		g.sounds.Play(audio.SoundReject)
		g.addMessage(fmt.Sprintf("You cannot carry the %s.", sel.Item.Name))
		return
	}
	g.sounds.Play(audio.SoundPickup)
	g.session.collect(sel.Item.Name)
	g.addMessage(fmt.Sprintf("You put the %s in your backpack.", sel.Item.Name))
}

// investigate looks closer at the selected item.
func (g *Game) investigate() {
	sel, _ := g.flow.Selected()
	if _, err := g.flow.Investigate(); err != nil {
		if errors.Is(err, pickup.ErrNotInvestigable) {
			g.addMessage(fmt.Sprintf("There is nothing more to the %s.", sel.Item.Name))
			return
		}
		g.log.Printf("%v", err)
		g.sounds.Play(audio.SoundReject)
		return
	}
	g.sounds.Play(audio.SoundOpen)
	g.addMessage(fmt.Sprintf("You look closer at the %s.", sel.Item.Name))
}
