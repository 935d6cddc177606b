package render

import (
	"mengya/assets"
	"mengya/internal/gamemap"

	"github.com/gdamore/tcell/v2"
)

// TileLook is how one tile kind is drawn: two columns of Glyph over BG.
// Both colours are shaded by the light map.
type TileLook struct {
	Glyph string // exactly two single-width runes
	FG    tcell.Color
	BG    tcell.Color
}

// TileLooks maps tile kinds to their look. Void is left undrawn.
var TileLooks = map[gamemap.TileKind]TileLook{
	gamemap.TileWall:     {Glyph: "▓▓", FG: assets.ColorWall, BG: tcell.ColorBlack},
	gamemap.TileAir:      {Glyph: "  ", FG: assets.ColorBack, BG: assets.ColorBack},
	gamemap.TileFloor:    {Glyph: "▀▀", FG: assets.ColorFloor, BG: tcell.ColorBlack},
	gamemap.TileDoor:     {Glyph: "▐▌", FG: assets.ColorDoor, BG: assets.ColorBack},
	gamemap.TileWindow:   {Glyph: "░░", FG: assets.ColorWindow, BG: assets.ColorBack},
	gamemap.TileExitSign: {Glyph: "EX", FG: assets.ColorSign, BG: tcell.ColorBlack},
}

// UI colours.
var (
	colorText    = tcell.ColorWhite
	colorDim     = tcell.ColorGray
	colorMessage = tcell.ColorLightYellow
	colorHint    = tcell.ColorLightGreen
	colorPanel   = tcell.NewRGBColor(25, 25, 35)
	colorBorder  = tcell.ColorSilver
	colorSlotBG  = tcell.NewRGBColor(45, 45, 60)
	colorSelect  = tcell.ColorYellow
	colorSpeaker = tcell.ColorLightSkyBlue
)
