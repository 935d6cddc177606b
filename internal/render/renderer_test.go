package render

import (
	"strings"
	"testing"

	"mengya/internal/component"
	"mengya/internal/ecs"
	"mengya/internal/geom"
	"mengya/internal/inventory"
	"mengya/internal/pickup"

	"github.com/gdamore/tcell/v2"
)

// newSimScreen creates an initialized 80×24 simulation screen.
func newSimScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	ss := tcell.NewSimulationScreen("UTF-8")
	if err := ss.Init(); err != nil {
		t.Fatalf("SimulationScreen.Init: %v", err)
	}
	ss.SetSize(80, 24)
	return ss
}

func cellAt(ss tcell.SimulationScreen, x, y int) tcell.SimCell {
	cells, w, _ := ss.GetContents()
	return cells[y*w+x]
}

func rowText(ss tcell.SimulationScreen, y int) string {
	cells, w, _ := ss.GetContents()
	var b strings.Builder
	for _, c := range cells[y*w : (y+1)*w] {
		for _, r := range c.Runes {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func screenText(ss tcell.SimulationScreen) string {
	_, _, h := ss.GetContents()
	var b strings.Builder
	for y := 0; y < h; y++ {
		b.WriteString(rowText(ss, y))
		b.WriteByte('\n')
	}
	return b.String()
}

func spawnGlyph(w *ecs.World, glyph string, x, y float64) ecs.EntityID {
	id := w.CreateEntity()
	w.Add(id, component.At(x, y))
	w.Add(id, component.Renderable{Glyph: glyph, FGColor: tcell.ColorWhite, RenderOrder: 1})
	return id
}

func TestDrawEntitiesSkipsHiddenAndUnlit(t *testing.T) {
	ss := newSimScreen(t)
	r := NewRenderer(ss, 1)
	r.Camera().Snap(geom.Vec2{X: 5, Y: 4})

	w := ecs.NewWorld()
	spawnGlyph(w, "🧒", 5, 4)
	hidden := spawnGlyph(w, "🔑", 6, 4)
	w.Add(hidden, component.TagHidden{})
	ghost := spawnGlyph(w, "👤", 7, 4)
	w.Add(ghost, component.Apparition{Present: true, Lit: false})

	r.Draw(Frame{World: w, Title: "Dormitory"})

	sx, sy, ok := r.Camera().WorldToScreen(5, 4)
	if !ok {
		t.Fatal("player tile should be on screen")
	}
	if got := cellAt(ss, sx, sy).Runes; len(got) == 0 || got[0] != '🧒' {
		t.Fatalf("player cell = %q, want 🧒", string(got))
	}
	text := screenText(ss)
	if strings.Contains(text, "🔑") {
		t.Error("hidden entity was drawn")
	}
	if strings.Contains(text, "👤") {
		t.Error("unlit apparition was drawn")
	}
	if !strings.Contains(rowText(ss, 0), "Dormitory") {
		t.Errorf("status row = %q", rowText(ss, 0))
	}
}

func TestDrawerShowsSlotIcons(t *testing.T) {
	ss := newSimScreen(t)
	r := NewRenderer(ss, 1)

	slots := make([]*inventory.Slot, 8)
	for i := range slots {
		slots[i] = inventory.NewSlot(inventory.SlotPrefix + string(rune('0'+i)))
	}
	slots[1].SetIcon(inventory.Icon{Glyph: "🔑", Color: tcell.ColorYellow})

	r.Draw(Frame{Slots: slots, DrawerOffset: float64(DrawerWidth(len(slots)))})

	x0 := 80 - DrawerWidth(8)
	cell := cellAt(ss, x0+1+slotCellWidth, 2)
	if len(cell.Runes) == 0 || cell.Runes[0] != '🔑' {
		t.Fatalf("slot 1 cell = %q, want 🔑", string(cell.Runes))
	}

	r.Draw(Frame{Slots: slots, DrawerOffset: 0})
	if strings.Contains(screenText(ss), "🔑") {
		t.Fatal("closed drawer should not be drawn")
	}
}

func TestFadeDarkensEverything(t *testing.T) {
	ss := newSimScreen(t)
	r := NewRenderer(ss, 1)
	r.Draw(Frame{Title: "Rooftop", Fade: 1})

	fg, _, _ := cellAt(ss, 1, 0).Style.Decompose()
	if fg != tcell.NewRGBColor(0, 0, 0) {
		t.Fatalf("faded title colour = %v, want black", fg)
	}
}

func TestOverlays(t *testing.T) {
	cases := []struct {
		name  string
		frame Frame
		want  []string
	}{
		{
			name:  "dialogue",
			frame: Frame{Dialogue: &DialogueView{Speaker: "Me", Text: "The lights are off.", Prompt: true}},
			want:  []string{"Me", "The lights are off.", "[Space]"},
		},
		{
			name: "detail",
			frame: Frame{Detail: &pickup.Panel{
				Title:   "Brass Key",
				Body:    "Cold to the touch.",
				Actions: []pickup.Action{pickup.ActionTake, pickup.ActionCancel},
			}},
			want: []string{"Brass Key", "Cold to the touch.", "[Enter] Take", "[Esc] Cancel"},
		},
		{
			name:  "exit",
			frame: Frame{Exit: "Really leave?"},
			want:  []string{"Really leave?", "[Y] Yes"},
		},
		{
			name: "volume",
			frame: Frame{Volume: &VolumeView{
				Labels: []string{"Master", "Effects"}, Values: []float64{1, 0.5}, Selected: 1,
			}},
			want: []string{"Volume", "Master", "100%", "▸ Effects", "50%"},
		},
		{
			name:  "cg",
			frame: Frame{CG: true, Title: "hidden by cg"},
			want:  []string{"The gate stands open."},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ss := newSimScreen(t)
			NewRenderer(ss, 1).Draw(tc.frame)
			text := screenText(ss)
			for _, want := range tc.want {
				if !strings.Contains(text, want) {
					t.Errorf("screen missing %q:\n%s", want, text)
				}
			}
		})
	}
}

func TestResizeFitsViewport(t *testing.T) {
	ss := newSimScreen(t)
	r := NewRenderer(ss, 1)
	if r.Camera().ViewWidth != 80 || r.Camera().ViewHeight != 24-1-hudRows {
		t.Fatalf("viewport = %dx%d", r.Camera().ViewWidth, r.Camera().ViewHeight)
	}
	ss.SetSize(100, 30)
	r.Resize()
	if r.Camera().ViewWidth != 100 || r.Camera().ViewHeight != 30-1-hudRows {
		t.Fatalf("viewport after resize = %dx%d", r.Camera().ViewWidth, r.Camera().ViewHeight)
	}
}
