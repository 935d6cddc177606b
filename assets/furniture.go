package assets

// PropDef is scenery the player can examine but not take.
type PropDef struct {
	Glyph       string
	Name        string
	Description string
}

// Props is the catalog of examinable scenery by key.
var Props = map[string]PropDef{
	"bunk":       {Glyph: "🛏️", Name: "Bunk Bed", Description: "The top bunk is made with hospital corners. Nobody has slept in it for years."},
	"locker":     {Glyph: "🗄️", Name: "Locker", Description: "Dented at knee height. The name plate has been peeled off."},
	"desk":       {Glyph: "🪑", Name: "Desk", Description: "Initials carved into the lid, then carefully sanded away."},
	"blackboard": {Glyph: "🧮", Name: "Blackboard", Description: "Half-erased sums. The last line reads 'see me after class'."},
	"bookshelf":  {Glyph: "📚", Name: "Bookshelf", Description: "Every spine faces the wall."},
	"piano":      {Glyph: "🎹", Name: "Piano", Description: "Middle C is missing."},
	"sink":       {Glyph: "🚰", Name: "Sink", Description: "The tap drips in threes."},
	"mirror":     {Glyph: "🪞", Name: "Mirror", Description: "It shows the corridor behind you, a moment late."},
	"easel":      {Glyph: "🎨", Name: "Easel", Description: "An unfinished portrait. The eyes were painted first."},
	"bed":        {Glyph: "🛌", Name: "Infirmary Bed", Description: "The sheets are warm."},
	"cabinet":    {Glyph: "🗃️", Name: "Filing Cabinet", Description: "One drawer is labelled with your name. It is locked."},
	"plant":      {Glyph: "🪴", Name: "Potted Plant", Description: "Plastic. Somebody waters it anyway."},
	"railing":    {Glyph: "🚧", Name: "Railing", Description: "The rooftop door was never supposed to open."},
	KeyBadPanda:  {Glyph: GlyphBadPanda, Name: "Something", Description: "The seam is open. Whatever was inside is looking at you."},
}
