package render

import (
	"math"
	"sort"

	"mengya/internal/component"
	"mengya/internal/ecs"
	"mengya/internal/gamemap"
	"mengya/internal/inventory"
	"mengya/internal/lighting"
	"mengya/internal/pickup"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// hudRows is the number of rows reserved below the stage.
const hudRows = 4

// DialogueView is the dialogue box contents.
type DialogueView struct {
	Speaker string
	Text    string
	Bold    bool
	Prompt  bool // show the continue prompt
}

// VolumeView is the volume panel contents.
type VolumeView struct {
	Labels   []string
	Values   []float64
	Selected int
}

// Frame is everything drawn in one frame. Nil views are not drawn.
type Frame struct {
	World *ecs.World
	Map   *gamemap.GameMap
	Light *lighting.Map

	Title    string
	Messages []string
	Hint     string

	Slots        []*inventory.Slot
	DrawerOffset float64

	Dialogue *DialogueView
	Detail   *pickup.Panel
	Exit     string // confirmation on screen, "" when closed
	CG       bool
	Volume   *VolumeView
	Fade     float64 // 0 clear, 1 black
}

// Renderer draws the game onto a tcell screen.
type Renderer struct {
	screen tcell.Screen
	camera *Camera
	light  *lighting.Map
	fade   float64
}

// NewRenderer creates a Renderer for the given screen.
func NewRenderer(screen tcell.Screen, smooth float64) *Renderer {
	r := &Renderer{screen: screen, camera: NewCamera(0, 0, smooth)}
	r.Resize()
	return r
}

// Camera returns the stage camera.
func (r *Renderer) Camera() *Camera { return r.camera }

// Resize fits the viewport to the screen: one status row on top, the HUD
// at the bottom.
func (r *Renderer) Resize() {
	w, h := r.screen.Size()
	r.camera.ViewWidth = w
	r.camera.ViewHeight = max(h-1-hudRows, 1)
	r.camera.Top = 1
	if r.camera.bounded {
		r.camera.pos = r.camera.clamp(r.camera.pos)
	}
}

// Draw renders f and shows it.
func (r *Renderer) Draw(f Frame) {
	r.screen.Clear()
	r.light = f.Light
	r.fade = geomClamp01(f.Fade)

	if f.CG {
		r.drawCG()
		r.screen.Show()
		return
	}
	if f.Map != nil {
		r.drawMap(f.Map)
	}
	if f.World != nil {
		r.drawEntities(f.World)
	}
	r.drawStatus(f.Title)
	r.drawHUD(f.Hint, f.Messages)
	r.drawDrawer(f.Slots, f.DrawerOffset)
	if f.Dialogue != nil {
		r.drawDialogue(*f.Dialogue)
	}
	if f.Detail != nil {
		r.drawDetail(*f.Detail)
	}
	if f.Exit != "" {
		r.drawExit(f.Exit)
	}
	if f.Volume != nil {
		r.drawVolume(*f.Volume)
	}
	r.screen.Show()
}

// drawMap renders every tile in view, shaded by the light map.
func (r *Renderer) drawMap(gmap *gamemap.GameMap) {
	for y := 0; y < gmap.Height; y++ {
		for x := 0; x < gmap.Width; x++ {
			look, ok := TileLooks[gmap.At(x, y).Kind]
			if !ok {
				continue
			}
			sx, sy, onScreen := r.camera.WorldToScreen(x, y)
			if !onScreen {
				continue
			}
			style := tcell.StyleDefault.
				Foreground(r.shade(look.FG, x, y)).
				Background(r.shade(look.BG, x, y))
			r.drawText(sx, sy, look.Glyph, style)
		}
	}
}

// renderableEntity holds sorting info for entity rendering.
type renderableEntity struct {
	id   ecs.EntityID
	x, y int
	rend component.Renderable
}

// drawEntities renders visible entities ordered by RenderOrder.
func (r *Renderer) drawEntities(w *ecs.World) {
	ids := w.Query(component.CRenderable, component.CTransform)
	entities := make([]renderableEntity, 0, len(ids))
	for _, id := range ids {
		if w.Has(id, component.CTagHidden) {
			continue
		}
		if a, ok := ecs.Get[component.Apparition](w, id); ok && !a.Lit {
			continue
		}
		tr, _ := ecs.Get[component.Transform](w, id)
		rend, _ := ecs.Get[component.Renderable](w, id)
		x, y := tr.Position.Round()
		entities = append(entities, renderableEntity{id: id, x: x, y: y, rend: rend})
	}
	sort.SliceStable(entities, func(i, j int) bool {
		return entities[i].rend.RenderOrder < entities[j].rend.RenderOrder
	})

	for _, e := range entities {
		sx, sy, onScreen := r.camera.WorldToScreen(e.x, e.y)
		if !onScreen {
			continue
		}
		bg := r.shade(tcell.ColorBlack, e.x, e.y)
		if look, ok := TileLooks[gamemap.TileAir]; ok {
			bg = r.shade(look.BG, e.x, e.y)
		}
		if e.rend.Outline {
			bg = r.dim(colorSelect)
		}
		style := tcell.StyleDefault.Foreground(r.shade(e.rend.FGColor, e.x, e.y)).Background(bg)
		r.putGlyph(sx, sy, e.rend.Glyph, style)
	}
}

// shade applies the light at (x, y) and the fade to c.
func (r *Renderer) shade(c tcell.Color, x, y int) tcell.Color {
	if r.light != nil {
		c = r.light.Shade(c, x, y)
	}
	return r.dim(c)
}

// dim darkens c by the current fade.
func (r *Renderer) dim(c tcell.Color) tcell.Color {
	if r.fade <= 0 || c == tcell.ColorDefault {
		return c
	}
	cr, cg, cb := c.RGB()
	if cr < 0 {
		return c
	}
	k := 1 - r.fade
	sc := func(v int32) int32 { return int32(math.Round(float64(v) * k)) }
	return tcell.NewRGBColor(sc(cr), sc(cg), sc(cb))
}

// putGlyph draws a single glyph (ASCII or multi-rune emoji) at screen position (x, y).
func (r *Renderer) putGlyph(x, y int, glyph string, style tcell.Style) {
	runes := []rune(glyph)
	if len(runes) == 0 {
		return
	}
	mainc := runes[0]
	var combc []rune
	if len(runes) > 1 {
		combc = runes[1:]
	}
	r.screen.SetContent(x, y, mainc, combc, style)
	if runewidth.StringWidth(glyph) < 2 {
		// Fill the second column of the tile.
		r.screen.SetContent(x+1, y, ' ', nil, style)
	}
}

func geomClamp01(v float64) float64 { return math.Max(0, math.Min(1, v)) }
