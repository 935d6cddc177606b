// Package lighting computes per-tile light for a level from its point lights
// and an optional night ambient.
package lighting

import (
	"math"

	"mengya/internal/gamemap"

	"github.com/gdamore/tcell/v2"
)

// RGB is a linear light colour; 1 is full brightness per channel.
type RGB struct{ R, G, B float64 }

func (c RGB) Scale(k float64) RGB { return RGB{c.R * k, c.G * k, c.B * k} }
func (c RGB) Add(o RGB) RGB       { return RGB{c.R + o.R, c.G + o.G, c.B + o.B} }

var (
	Warm      = RGB{1, 0.95, 0.85}
	ExitGreen = RGB{0.3, 1, 0.3}
	DoorRed   = RGB{1, 0.25, 0.25}
	NightBlue = RGB{0.2, 0.35, 0.6}
	White     = RGB{1, 1, 1}
)

// Kind is the role of a point light in a level.
type Kind uint8

const (
	Ceiling Kind = iota
	ExitSign
	RedDoor
	Restroom
	Perimeter
)

// tilesPerUnit converts authored radii to terminal tiles.
const tilesPerUnit = 2

// Light is a point light. Inside Inner the light is at full intensity; it
// falls off linearly to nothing at Outer. Radii are in tiles.
type Light struct {
	X, Y      int
	Kind      Kind
	Color     RGB
	Intensity float64
	Inner     float64
	Outer     float64
}

// New returns a light of kind k at (x, y) with that kind's standard look.
func New(k Kind, x, y int) Light {
	l := Light{X: x, Y: y, Kind: k, Intensity: 1, Inner: 0.8 * tilesPerUnit, Outer: 3.5 * tilesPerUnit}
	switch k {
	case Ceiling, Restroom:
		l.Color = Warm
	case ExitSign:
		l.Color = ExitGreen
		l.Inner *= 0.6
		l.Outer *= 0.8
	case RedDoor:
		l.Color = DoorRed
	case Perimeter:
		l.Color = NightBlue
		l.Intensity = 0.6
		l.Inner = 1.0 * tilesPerUnit
		l.Outer = 6.0 * tilesPerUnit
	}
	return l
}

// falloff returns the light's strength at distance d.
func (l Light) falloff(d float64) float64 {
	switch {
	case d <= l.Inner:
		return l.Intensity
	case d >= l.Outer || l.Outer <= l.Inner:
		return 0
	}
	return l.Intensity * (l.Outer - d) / (l.Outer - l.Inner)
}

// Ambient is the light every tile receives regardless of point lights.
type Ambient struct {
	Color     RGB
	Intensity float64
}

// Night is the dim blue ambient of the night levels.
var Night = Ambient{Color: NightBlue, Intensity: 0.2}

// Day leaves every tile fully lit.
var Day = Ambient{Color: White, Intensity: 1}

// Map is the computed light of every tile of a level.
type Map struct {
	w, h  int
	cells []RGB
}

// Compute lights gmap. Each light is occluded by opaque tiles.
func Compute(gmap *gamemap.GameMap, lights []Light, amb Ambient) *Map {
	lm := &Map{w: gmap.Width, h: gmap.Height, cells: make([]RGB, gmap.Width*gmap.Height)}
	base := amb.Color.Scale(amb.Intensity)
	for i := range lm.cells {
		lm.cells[i] = base
	}
	for _, l := range lights {
		// Cells on octant borders are reported twice; count each once.
		seen := make(map[int]bool)
		shadowcast(gmap, l.X, l.Y, int(math.Ceil(l.Outer)), func(x, y, distSq int) {
			i := y*lm.w + x
			if seen[i] {
				return
			}
			seen[i] = true
			k := l.falloff(math.Sqrt(float64(distSq)))
			if k > 0 {
				lm.cells[i] = lm.cells[i].Add(l.Color.Scale(k))
			}
		})
	}
	return lm
}

// At returns the light at (x, y); out-of-bounds tiles are dark.
func (lm *Map) At(x, y int) RGB {
	if x < 0 || y < 0 || x >= lm.w || y >= lm.h {
		return RGB{}
	}
	return lm.cells[y*lm.w+x]
}

// Brightness is the mean channel value at (x, y), capped at 1.
func (lm *Map) Brightness(x, y int) float64 {
	c := lm.At(x, y)
	return math.Min(1, (c.R+c.G+c.B)/3)
}

// Shade tints base by the light at (x, y). Each channel is capped at the
// base colour's own value so lights never wash a colour out to white.
func (lm *Map) Shade(base tcell.Color, x, y int) tcell.Color {
	if base == tcell.ColorDefault {
		return base
	}
	r, g, b := base.RGB()
	if r < 0 {
		return base
	}
	c := lm.At(x, y)
	ch := func(v int32, k float64) int32 {
		return int32(math.Round(float64(v) * math.Min(1, k)))
	}
	return tcell.NewRGBColor(ch(r, c.R), ch(g, c.G), ch(b, c.B))
}
