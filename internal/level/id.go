// Package level builds playable levels from the authored definitions and
// remembers what changed in each one.
package level

import (
	"fmt"

	"mengya/assets"
)

// ID names a level. Levels 1..8 own the backpack slot ID-1.
type ID int

const (
	Dormitory ID = iota
	Classroom
	Library
	MusicRoom
	Restroom
	ArtRoom
	Infirmary
	StaffOffice
	Rooftop
	count
)

// Count is the number of levels.
const Count = int(count)

func (id ID) Valid() bool { return id >= 0 && id < count }

func (id ID) String() string {
	if !id.Valid() {
		return fmt.Sprintf("level(%d)", int(id))
	}
	return assets.LevelNames[id]
}
