package assets

import (
	"mengya/internal/inventory"
	"mengya/internal/pickup"
)

// Catalog keys of items that are not placed in any level at start.
const (
	KeyPhotograph = "photograph"
	KeyBadPanda   = "bad_panda"
)

// Item IDs referenced outside the catalog.
const (
	IDHandbook = 101
	IDKey      = 102
	IDScissors = 105
	IDBrush    = 109
	IDPanda    = 106
)

// Items is the catalog of collectibles by key. Each entry's Template names its
// own key so a displaced item can be rebuilt from here. The art room holds two
// items for slot 4; taking one puts the other back.
var Items = map[string]inventory.Item{
	"handbook": {
		ID: IDHandbook, Name: "Student Handbook", Level: 1,
		Description: "Rules for every hour of the day. Someone has pressed a photograph between the last pages.",
		Icon:        inventory.Icon{Glyph: GlyphHandbook, Color: ColorPaper},
	},
	KeyPhotograph: {
		ID: 111, Name: "Photograph", Level: 1,
		Description: "A class lined up in the sun. One face has been scratched out.",
		Icon:        inventory.Icon{Glyph: GlyphPhotograph, Color: ColorPhoto},
	},
	"brass_key": {
		ID: IDKey, Name: "Brass Key", Level: 2,
		Description: "Heavy and warm. The tag reads MUSIC ROOM in faded ink.",
		Icon:        inventory.Icon{Glyph: GlyphKey, Color: ColorBrass},
	},
	"cassette": {
		ID: 103, Name: "Cassette Tape", Level: 3,
		Description: "Side A is labelled 'rehearsal'. Side B has been taped over.",
		Icon:        inventory.Icon{Glyph: GlyphCassette, Color: ColorTape},
	},
	"scarf": {
		ID: 104, Name: "Red Scarf", Level: 4,
		Description: "Still damp, as if someone wore it in the rain a minute ago.",
		Icon:        inventory.Icon{Glyph: GlyphScarf, Color: ColorScarf},
	},
	"scissors": {
		ID: IDScissors, Name: "Scissors", Level: 5,
		Description: "Craft scissors with rounded tips. The blades are sharper than they should be.",
		Icon:        inventory.Icon{Glyph: GlyphScissors, Color: ColorSteel},
	},
	"paintbrush": {
		ID: IDBrush, Name: "Paintbrush", Level: 5,
		Description: "The bristles are stiff with green paint. It matches the handprints on the easel.",
		Icon:        inventory.Icon{Glyph: GlyphBrush, Color: ColorPaint},
	},
	"panda": {
		ID: IDPanda, Name: "Panda Plush", Level: 6,
		Description: "A soft toy with a neat seam down its back. Something inside rattles.",
		Icon:        inventory.Icon{Glyph: GlyphPanda, Color: ColorPlush},
	},
	"phone": {
		ID: 107, Name: "Old Phone", Level: 7,
		Description: "The screen lights up with one unread message and no sender.",
		Icon:        inventory.Icon{Glyph: GlyphPhone, Color: ColorScreen},
	},
	"class_photo": {
		ID: 108, Name: "Class Photo", Level: 8,
		Description: "The same class, years later. Everyone is here this time.",
		Icon:        inventory.Icon{Glyph: GlyphClassPhoto, Color: ColorPhoto},
	},
}

func init() {
	for key, it := range Items {
		it.Template = &inventory.Template{Key: key}
		Items[key] = it
	}
}

// Investigations lists the items that can be examined instead of taken.
var Investigations = []pickup.Investigation{
	{TargetID: IDHandbook, Replacement: KeyPhotograph},
	{TargetID: IDPanda, Replacement: KeyBadPanda, Level: 6, Requires: IDScissors},
}
