package assets

import "github.com/gdamore/tcell/v2"

// Emoji constants used as entity glyphs.
const (
	GlyphPlayer     = "🧒"
	GlyphHandbook   = "📘"
	GlyphPhotograph = "🖼️"
	GlyphKey        = "🔑"
	GlyphCassette   = "📼"
	GlyphScarf      = "🧣"
	GlyphScissors   = "✂️"
	GlyphBrush      = "🖌️"
	GlyphPanda      = "🐼"
	GlyphBadPanda   = "👹"
	GlyphPhone      = "📱"
	GlyphClassPhoto = "📷"
	GlyphShadow     = "👤"
	GlyphDoor       = "🚪"
	GlyphExit       = "🚪"
	GlyphBack       = "🔙"
)

// Palette for item icons and the stage.
var (
	ColorPaper  = tcell.NewRGBColor(235, 225, 200)
	ColorBrass  = tcell.NewRGBColor(205, 170, 80)
	ColorTape   = tcell.NewRGBColor(120, 120, 130)
	ColorScarf  = tcell.NewRGBColor(210, 50, 50)
	ColorSteel  = tcell.NewRGBColor(180, 190, 200)
	ColorPaint  = tcell.NewRGBColor(70, 140, 90)
	ColorPlush  = tcell.NewRGBColor(240, 240, 240)
	ColorScreen = tcell.NewRGBColor(90, 160, 230)
	ColorPhoto  = tcell.NewRGBColor(220, 200, 160)

	ColorWall    = tcell.NewRGBColor(150, 145, 135)
	ColorBack    = tcell.NewRGBColor(60, 58, 55)
	ColorFloor   = tcell.NewRGBColor(120, 90, 60)
	ColorDoor    = tcell.NewRGBColor(140, 100, 60)
	ColorWindow  = tcell.NewRGBColor(90, 120, 170)
	ColorSign    = tcell.NewRGBColor(80, 230, 80)
	ColorSpooky  = tcell.NewRGBColor(40, 40, 50)
	ColorCG      = tcell.NewRGBColor(210, 205, 190)
	ColorPlayer  = tcell.ColorYellow
	ColorOutline = tcell.ColorYellow
)
