package gamemap

import (
	"fmt"
	"strings"
)

// Rect is an axis-aligned rectangle of tiles, inclusive on both edges.
type Rect struct {
	X1, Y1, X2, Y2 int
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return (r.X1 + r.X2) / 2, (r.Y1 + r.Y2) / 2
}

// Contains reports whether (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X1 && x <= r.X2 && y >= r.Y1 && y <= r.Y2
}

// GameMap is the side-view tile grid of one level. Row 0 is the top.
type GameMap struct {
	Width, Height int
	Tiles         [][]Tile
	// Spawn is where the player appears, from the layout's 'P' marker.
	Spawn struct{ X, Y int }
}

// New creates a GameMap filled with walls.
func New(width, height int) *GameMap {
	tiles := make([][]Tile, height)
	for y := range tiles {
		tiles[y] = make([]Tile, width)
		for x := range tiles[y] {
			tiles[y][x] = MakeWall()
		}
	}
	return &GameMap{Width: width, Height: height, Tiles: tiles}
}

// Legend maps layout characters to tiles.
//
//	' ' void   '#' wall   '.' air   '_' floor
//	'D' door   'W' window 'X' exit sign
//	'P' player spawn (air)
var Legend = map[rune]func() Tile{
	' ': MakeVoid,
	'#': MakeWall,
	'.': MakeAir,
	'_': MakeFloor,
	'D': MakeDoor,
	'W': MakeWindow,
	'X': MakeExitSign,
	'P': MakeAir,
}

// Parse builds a map from layout rows. Short rows are padded with void.
func Parse(rows []string) (*GameMap, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("empty layout")
	}
	width := 0
	for _, r := range rows {
		if n := len([]rune(r)); n > width {
			width = n
		}
	}
	m := New(width, len(rows))
	spawn := false
	for y, row := range rows {
		runes := []rune(row)
		for x := 0; x < width; x++ {
			ch := ' '
			if x < len(runes) {
				ch = runes[x]
			}
			mk, ok := Legend[ch]
			if !ok {
				return nil, fmt.Errorf("row %d col %d: unknown tile %q", y, x, ch)
			}
			m.Tiles[y][x] = mk()
			if ch == 'P' {
				m.Spawn.X, m.Spawn.Y = x, y
				spawn = true
			}
		}
	}
	if !spawn {
		return nil, fmt.Errorf("layout has no spawn marker 'P'")
	}
	return m, nil
}

// String renders the map back into layout characters, spawn omitted.
func (m *GameMap) String() string {
	glyph := map[TileKind]rune{
		TileVoid: ' ', TileWall: '#', TileAir: '.', TileFloor: '_',
		TileDoor: 'D', TileWindow: 'W', TileExitSign: 'X',
	}
	var b strings.Builder
	for y, row := range m.Tiles {
		if y > 0 {
			b.WriteByte('\n')
		}
		for _, t := range row {
			b.WriteRune(glyph[t.Kind])
		}
	}
	return b.String()
}

// Bounds is the rectangle covering the whole map.
func (m *GameMap) Bounds() Rect {
	return Rect{X1: 0, Y1: 0, X2: m.Width - 1, Y2: m.Height - 1}
}

// InBounds reports whether (x, y) is within the map boundaries.
func (m *GameMap) InBounds(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

// At returns a pointer to the tile at (x, y). Panics if out of bounds.
func (m *GameMap) At(x, y int) *Tile {
	return &m.Tiles[y][x]
}

// Set replaces the tile at (x, y).
func (m *GameMap) Set(x, y int, t Tile) {
	m.Tiles[y][x] = t
}

// IsWalkable returns true when (x, y) is in bounds and walkable.
func (m *GameMap) IsWalkable(x, y int) bool {
	if !m.InBounds(x, y) {
		return false
	}
	return m.Tiles[y][x].Walkable
}

// IsTransparent returns true when (x, y) is in bounds and transparent.
func (m *GameMap) IsTransparent(x, y int) bool {
	if !m.InBounds(x, y) {
		return false
	}
	return m.Tiles[y][x].Transparent
}
