package pickup

import "mengya/internal/inventory"

// Action is a button on the detail panel.
type Action uint8

const (
	ActionTake Action = iota
	ActionCancel
	ActionInvestigate
)

func (a Action) Label() string {
	switch a {
	case ActionTake:
		return "[Enter] Take"
	case ActionCancel:
		return "[Esc] Cancel"
	case ActionInvestigate:
		return "[I] Investigate"
	}
	return ""
}

// Panel is what the detail panel shows for the pending selection.
type Panel struct {
	Title   string
	Body    string
	Icon    inventory.Icon
	Actions []Action
}

// Panel returns the detail panel contents, or false when nothing is selected.
func (f *Flow) Panel() (Panel, bool) {
	if f.state != Selected {
		return Panel{}, false
	}
	it := f.sel.Item
	p := Panel{
		Title:   it.Name,
		Body:    it.Description,
		Icon:    it.Icon,
		Actions: []Action{ActionTake, ActionCancel},
	}
	if f.CanInvestigate() {
		p.Actions = append(p.Actions, ActionInvestigate)
	}
	return p, true
}
