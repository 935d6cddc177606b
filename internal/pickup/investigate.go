package pickup

import "mengya/internal/inventory"

// DefaultInvestigationName is the item matched by name when an investigation
// names neither an ID nor a name.
const DefaultInvestigationName = "PROP_StudentHandbook_1"

// Investigation lets one item be examined instead of taken. Examining it
// replaces it in the level with another catalog entry.
type Investigation struct {
	TargetID    int    // preferred when > 0
	TargetName  string // used when TargetID is unset
	Replacement string // catalog key spawned in its place
	Level       int    // only in this level; 0 for any
	Requires    int    // item ID that must already be in the backpack; 0 for none
}

// Matches reports whether item is the investigation target.
func (inv Investigation) Matches(item inventory.Item) bool {
	if inv.Replacement == "" {
		return false
	}
	if inv.TargetID > 0 {
		return item.ID == inv.TargetID
	}
	name := inv.TargetName
	if name == "" {
		name = DefaultInvestigationName
	}
	return item.Name == name
}
