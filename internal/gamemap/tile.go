package gamemap

// TileKind identifies the type of a stage tile.
type TileKind uint8

const (
	TileVoid   TileKind = iota // outside the building, drawn blank
	TileWall                   // solid, blocks walking and light
	TileAir                    // open room space in front of the back wall
	TileFloor                  // the ground the player stands on
	TileDoor                   // a door in the back wall; decorative
	TileWindow                 // lets light through a wall
	TileExitSign               // glowing sign above an exit
)

// Tile holds the kind and physical properties of one stage cell.
type Tile struct {
	Kind        TileKind
	Walkable    bool
	Transparent bool
}

// MakeWall returns a blocking, opaque wall tile.
func MakeWall() Tile {
	return Tile{Kind: TileWall}
}

// MakeVoid returns an opaque, unwalkable tile outside the stage.
func MakeVoid() Tile {
	return Tile{Kind: TileVoid}
}

// MakeAir returns open, transparent room space.
func MakeAir() Tile {
	return Tile{Kind: TileAir, Walkable: true, Transparent: true}
}

// MakeFloor returns a ground tile. It is solid underfoot but lets light
// spread along the room.
func MakeFloor() Tile {
	return Tile{Kind: TileFloor, Transparent: true}
}

// MakeDoor returns a door drawn on the back wall; the player walks past it.
func MakeDoor() Tile {
	return Tile{Kind: TileDoor, Walkable: true, Transparent: true}
}

// MakeWindow returns a see-through wall tile.
func MakeWindow() Tile {
	return Tile{Kind: TileWindow, Transparent: true}
}

// MakeExitSign returns the sign above an exit door.
func MakeExitSign() Tile {
	return Tile{Kind: TileExitSign, Walkable: true, Transparent: true}
}
