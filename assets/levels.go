package assets

import (
	"strings"

	"mengya/internal/component"
	"mengya/internal/lighting"
)

// Placement puts a catalog entry at column X of a level's walking row.
type Placement struct {
	Key string
	X   int
}

// DoorDef is an interactable door on the walking row.
type DoorDef struct {
	Kind   component.InteractKind
	Target int
	X      int
	Label  string
}

// LightDef is a point light in tile coordinates.
type LightDef struct {
	Kind lighting.Kind
	X, Y int
}

// ApparitionDef is a figure that appears only while the backpack holds
// ItemID.
type ApparitionDef struct {
	Glyph  string
	X      int
	ItemID int
}

// LevelDef is one authored level.
type LevelDef struct {
	Layout      []string
	Night       bool
	Lights      []LightDef
	Items       []Placement
	Props       []Placement
	Doors       []DoorDef
	Apparitions []ApparitionDef
}

// Rows of the hall layout.
const (
	rowCeiling = 1
	rowSign    = 2
	rowWalk    = 4
)

// hall draws a one-room side view: ceiling, three rows of room and the floor.
// Doors are two tiles tall; exits also get a sign above.
func hall(width, spawn int, doors, exits, windows []int) []string {
	rows := make([][]byte, 6)
	for y := range rows {
		fill := byte('.')
		switch y {
		case 0:
			fill = '#'
		case 5:
			fill = '_'
		}
		rows[y] = []byte(strings.Repeat(string(fill), width))
		if y > 0 && y < 5 {
			rows[y][0], rows[y][width-1] = '#', '#'
		}
	}
	for _, x := range windows {
		rows[rowSign][x] = 'W'
	}
	for _, x := range append(doors, exits...) {
		rows[3][x], rows[rowWalk][x] = 'D', 'D'
	}
	for _, x := range exits {
		rows[rowSign][x] = 'X'
	}
	rows[rowWalk][spawn] = 'P'
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = string(r)
	}
	return out
}

func ceiling(xs ...int) []LightDef {
	out := make([]LightDef, len(xs))
	for i, x := range xs {
		out[i] = LightDef{Kind: lighting.Ceiling, X: x, Y: rowCeiling}
	}
	return out
}

func next(x, target int) DoorDef {
	return DoorDef{Kind: component.InteractNextLevel, Target: target, X: x, Label: LevelNames[target]}
}

func back(x, target int) DoorDef {
	return DoorDef{Kind: component.InteractBackToLevel, Target: target, X: x, Label: LevelNames[target]}
}

// Levels holds every level, indexed by level number. Level 0 is the
// dormitory where the story starts and ends; levels 1..8 each hold the item
// for the matching backpack slot.
var Levels = [9]LevelDef{
	{ // 0: Dormitory Corridor
		Layout: hall(40, 3, []int{30}, []int{36}, []int{10, 22}),
		Night:  true,
		Lights: append(ceiling(8, 20),
			LightDef{Kind: lighting.ExitSign, X: 36, Y: rowSign},
			LightDef{Kind: lighting.Perimeter, X: 1, Y: rowWalk},
		),
		Props: []Placement{{"bunk", 6}, {"locker", 14}, {"plant", 25}},
		Doors: []DoorDef{
			next(30, 1),
			{Kind: component.InteractExitConfirm, X: 36, Label: "Leave"},
		},
	},
	{ // 1: Classroom 1-1
		Layout: hall(44, 3, []int{1, 40}, nil, []int{12, 24, 36}),
		Night:  true,
		Lights: ceiling(10, 22, 34),
		Items:  []Placement{{"handbook", 18}},
		Props:  []Placement{{"blackboard", 8}, {"desk", 14}, {"desk", 26}},
		Doors:  []DoorDef{back(1, 0), next(40, 2)},
	},
	{ // 2: Library
		Layout: hall(48, 3, []int{1, 44}, nil, []int{20}),
		Lights: ceiling(12, 30),
		Items:  []Placement{{"brass_key", 33}},
		Props:  []Placement{{"bookshelf", 8}, {"bookshelf", 16}, {"bookshelf", 24}, {"desk", 38}},
		Doors:  []DoorDef{back(1, 1), next(44, 3)},
	},
	{ // 3: Music Room
		Layout: hall(42, 3, []int{1, 38}, nil, nil),
		Night:  true,
		Lights: append(ceiling(12),
			LightDef{Kind: lighting.RedDoor, X: 38, Y: rowSign},
		),
		Items:       []Placement{{"cassette", 26}},
		Props:       []Placement{{"piano", 10}},
		Doors:       []DoorDef{back(1, 2), next(38, 4)},
		Apparitions: []ApparitionDef{{Glyph: GlyphShadow, X: 18, ItemID: IDKey}},
	},
	{ // 4: Restroom
		Layout: hall(32, 3, []int{1, 28}, nil, []int{15}),
		Night:  true,
		Lights: []LightDef{
			{Kind: lighting.Restroom, X: 9, Y: rowCeiling},
			{Kind: lighting.Restroom, X: 21, Y: rowCeiling},
		},
		Items: []Placement{{"scarf", 20}},
		Props: []Placement{{"sink", 7}, {"mirror", 12}},
		Doors: []DoorDef{back(1, 3), next(28, 5)},
	},
	{ // 5: Art Room
		Layout: hall(46, 3, []int{1, 42}, nil, []int{11, 23, 35}),
		Lights: ceiling(10, 24, 36),
		Items:  []Placement{{"scissors", 30}, {"paintbrush", 36}},
		Props:  []Placement{{"easel", 9}, {"easel", 17}, {"desk", 24}},
		Doors:  []DoorDef{back(1, 4), next(42, 6)},
	},
	{ // 6: Infirmary
		Layout: hall(38, 3, []int{1, 34}, nil, []int{18}),
		Night:  true,
		Lights: append(ceiling(10, 26),
			LightDef{Kind: lighting.Perimeter, X: 36, Y: rowWalk},
		),
		Items: []Placement{{"panda", 22}},
		Props: []Placement{{"bed", 9}, {"cabinet", 15}},
		Doors: []DoorDef{back(1, 5), next(34, 7)},
	},
	{ // 7: Staff Office
		Layout: hall(44, 3, []int{1, 40}, nil, []int{14, 30}),
		Night:  true,
		Lights: ceiling(12, 28),
		Items:  []Placement{{"phone", 24}},
		Props:  []Placement{{"cabinet", 8}, {"desk", 17}, {"desk", 31}, {"plant", 36}},
		Doors:  []DoorDef{back(1, 6), next(40, 8)},
	},
	{ // 8: Rooftop Stairwell
		Layout: hall(36, 3, []int{1, 33}, nil, []int{9, 18, 27}),
		Night:  true,
		Lights: []LightDef{
			{Kind: lighting.Perimeter, X: 9, Y: rowSign},
			{Kind: lighting.Perimeter, X: 27, Y: rowSign},
		},
		Items: []Placement{{"class_photo", 20}},
		Props: []Placement{{"railing", 12}},
		Doors: []DoorDef{back(1, 7), back(33, 0)},
	},
}
