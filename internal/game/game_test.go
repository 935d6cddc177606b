package game

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"mengya/assets"
	"mengya/internal/audio"
	"mengya/internal/component"
	"mengya/internal/config"
	"mengya/internal/ecs"
	"mengya/internal/level"
	"mengya/internal/pickup"
	"mengya/internal/settings"
	"mengya/internal/ui"

	"github.com/gdamore/tcell/v2"
)

// fakeSounds records what the game asked to play.
type fakeSounds struct {
	played        []audio.Sound
	master, effct float64
}

func (f *fakeSounds) Play(s audio.Sound) { f.played = append(f.played, s) }
func (f *fakeSounds) SetVolume(m, e float64) {
	f.master, f.effct = m, e
}

// newSimScreen creates an initialized 80×24 simulation screen.
func newSimScreen() tcell.SimulationScreen {
	ss := tcell.NewSimulationScreen("UTF-8")
	ss.SetSize(80, 24)
	_ = ss.Init()
	return ss
}

func newTestGame(t *testing.T, opts Options) (*Game, *fakeSounds) {
	t.Helper()
	snd := &fakeSounds{}
	opts.Config = config.Default()
	opts.Sounds = snd
	if opts.DataDir == "" {
		opts.DataDir = t.TempDir()
	}
	return New(newSimScreen(), opts), snd
}

// enter loads id with no dialogue running.
func enter(t *testing.T, g *Game, id level.ID) {
	t.Helper()
	if err := g.loadLevel(id); err != nil {
		t.Fatalf("loadLevel(%v): %v", id, err)
	}
	g.director.Stop()
}

// place moves the player to column x and refreshes the target.
func place(g *Game, x float64) {
	tr, _ := ecs.Get[component.Transform](g.lvl.World, g.lvl.Player)
	tr.Position.X = x
	g.lvl.World.Add(g.lvl.Player, tr)
	g.tick(0.01)
}

// settle ticks until cond holds, pressing through dialogue pauses.
func settle(g *Game, cond func() bool) bool {
	for range 1000 {
		if cond() {
			return true
		}
		g.tick(0.05)
		if g.director.Prompt() {
			g.director.Press()
		}
	}
	return cond()
}

// findPickup returns the visible pickup entity holding item id.
func findPickup(g *Game, id int) (ecs.EntityID, bool) {
	w := g.lvl.World
	for _, e := range w.Query(component.CPickup) {
		p, _ := ecs.Get[component.Pickup](w, e)
		if p.Item.ID == id && !w.Has(e, component.CTagHidden) {
			return e, true
		}
	}
	return ecs.NilEntity, false
}

func TestLoadLevelPlaysIntro(t *testing.T) {
	g, _ := newTestGame(t, Options{})
	if err := g.loadLevel(level.Classroom); err != nil {
		t.Fatalf("loadLevel: %v", err)
	}
	if !g.director.Playing() {
		t.Fatal("intro should play on entering a level")
	}
	if g.store.Len() != 8 {
		t.Fatalf("backpack has %d slots, want 8", g.store.Len())
	}
	if !strings.Contains(g.messages[len(g.messages)-1], level.Classroom.String()) {
		t.Errorf("last message = %q", g.messages[len(g.messages)-1])
	}
}

func TestPickupFlow(t *testing.T) {
	g, snd := newTestGame(t, Options{})
	enter(t, g, level.Classroom)

	book, ok := findPickup(g, assets.IDHandbook)
	if !ok {
		t.Fatal("handbook missing from the classroom")
	}
	place(g, 17.5)
	if !g.hasTarget || g.target.Entity != book {
		t.Fatalf("target = %+v, want the handbook", g.target)
	}
	if h := g.hint(); h != "[E] Pick up Student Handbook" {
		t.Errorf("hint = %q", h)
	}

	g.handle(ActionInteract)
	if g.flow.State() != pickup.Selected || !g.lock.Locked() {
		t.Fatal("interacting should open the detail panel and lock movement")
	}
	if f := g.frame(); f.Detail == nil || f.Detail.Title != "Student Handbook" {
		t.Fatalf("detail panel = %+v", f.Detail)
	}

	g.handle(ActionConfirm)
	if slot := g.store.Find(assets.IDHandbook); slot != 0 {
		t.Fatalf("handbook in slot %d, want 0", slot)
	}
	if !g.lvl.World.Has(book, component.CTagHidden) {
		t.Error("taken handbook should be hidden")
	}
	if g.lock.Locked() {
		t.Error("movement should be free after taking")
	}
	if icon, ok := g.lvl.Slots[0].Icon(); !ok || icon.Glyph != assets.GlyphHandbook {
		t.Errorf("slot 0 shows %+v", icon)
	}
	if len(g.session.Collected) != 1 {
		t.Errorf("session collected = %v", g.session.Collected)
	}
	if last := snd.played[len(snd.played)-1]; last != audio.SoundPickup {
		t.Errorf("last sound = %v, want pickup", last)
	}

	// Held items stay out of the level when it is reloaded.
	enter(t, g, level.Classroom)
	if _, ok := findPickup(g, assets.IDHandbook); ok {
		t.Fatal("held handbook reappeared on reload")
	}
}

func TestTakingSecondItemReturnsFirst(t *testing.T) {
	g, _ := newTestGame(t, Options{})
	enter(t, g, level.ArtRoom)

	scissors, ok := findPickup(g, assets.IDScissors)
	if !ok {
		t.Fatal("scissors missing from the art room")
	}
	place(g, 29.5)
	g.handle(ActionInteract)
	g.handle(ActionConfirm)
	if slot := g.store.Find(assets.IDScissors); slot != 4 {
		t.Fatalf("scissors in slot %d, want 4", slot)
	}
	snap, _ := g.store.SnapshotAt(4)

	brush, ok := findPickup(g, assets.IDBrush)
	if !ok {
		t.Fatal("paintbrush missing from the art room")
	}
	place(g, 35.5)
	if g.target.Entity != brush {
		t.Fatalf("target = %+v, want the paintbrush", g.target)
	}
	g.handle(ActionInteract)
	g.handle(ActionConfirm)

	if got, ok := g.store.ItemAt(4); !ok || got.ID != assets.IDBrush {
		t.Fatalf("slot 4 = %+v, %v; want the paintbrush", got, ok)
	}
	if g.store.Find(assets.IDScissors) >= 0 {
		t.Fatal("scissors should have left the backpack")
	}
	if !g.lvl.World.Has(brush, component.CTagHidden) {
		t.Error("taken paintbrush should be hidden")
	}
	back, ok := findPickup(g, assets.IDScissors)
	if !ok || back != scissors {
		t.Fatalf("scissors entity = %d, %v; want %d shown again", back, ok, scissors)
	}
	tr, _ := ecs.Get[component.Transform](g.lvl.World, scissors)
	if tr.Position != snap.Position {
		t.Errorf("scissors at %v, want snapshot %v", tr.Position, snap.Position)
	}
	if icon, ok := g.lvl.Slots[4].Icon(); !ok || icon.Glyph != assets.GlyphBrush {
		t.Errorf("slot 4 shows %+v", icon)
	}

	// The swap holds across a reload: the held item stays out, the other is back.
	enter(t, g, level.ArtRoom)
	if _, ok := findPickup(g, assets.IDBrush); ok {
		t.Error("held paintbrush reappeared on reload")
	}
	if _, ok := findPickup(g, assets.IDScissors); !ok {
		t.Error("returned scissors missing after reload")
	}
}

func TestCancelLeavesItem(t *testing.T) {
	g, _ := newTestGame(t, Options{})
	enter(t, g, level.Classroom)
	place(g, 17.5)

	g.handle(ActionInteract)
	g.handle(ActionCancel)
	if g.flow.State() != pickup.Idle || g.lock.Locked() {
		t.Fatal("cancel should close the panel and unlock")
	}
	if g.store.Count() != 0 {
		t.Fatal("cancel must not store anything")
	}
	if g.volume.Visible() {
		t.Fatal("cancel on the panel must not open the volume panel")
	}
}

func TestInvestigateIsRemembered(t *testing.T) {
	g, _ := newTestGame(t, Options{})
	enter(t, g, level.Classroom)
	place(g, 17.5)

	g.handle(ActionInteract)
	g.handle(ActionInvestigate)
	if _, ok := findPickup(g, assets.IDHandbook); ok {
		t.Fatal("handbook should be gone after investigating")
	}
	photo := assets.Items[assets.KeyPhotograph].ID
	if _, ok := findPickup(g, photo); !ok {
		t.Fatal("photograph should appear in its place")
	}

	enter(t, g, level.Library)
	enter(t, g, level.Classroom)
	if _, ok := findPickup(g, assets.IDHandbook); ok {
		t.Error("handbook came back on revisit")
	}
	if _, ok := findPickup(g, photo); !ok {
		t.Error("photograph missing on revisit")
	}
}

func TestInvestigateNotAvailable(t *testing.T) {
	g, _ := newTestGame(t, Options{})
	enter(t, g, level.Library)
	key, _ := findPickup(g, assets.IDKey)
	tr, _ := ecs.Get[component.Transform](g.lvl.World, key)
	place(g, tr.Position.X-0.5)

	g.handle(ActionInteract)
	g.handle(ActionInvestigate)
	if g.flow.State() != pickup.Selected {
		t.Fatal("a failed investigation should keep the panel open")
	}
	if !strings.Contains(g.messages[len(g.messages)-1], "nothing more") {
		t.Errorf("last message = %q", g.messages[len(g.messages)-1])
	}
}

func TestDoorTransition(t *testing.T) {
	g, snd := newTestGame(t, Options{})
	enter(t, g, level.Dormitory)
	place(g, 30)

	g.handle(ActionInteract)
	if !g.fade.Active() {
		t.Fatal("door should start a fade")
	}
	if snd.played[len(snd.played)-1] != audio.SoundDoor {
		t.Errorf("door sound not played: %v", snd.played)
	}
	// Input is ignored mid-fade.
	g.handle(ActionBackpack)
	if g.drawer.Shown() {
		t.Error("backpack toggled during a fade")
	}
	if !settle(g, func() bool { return g.lvl.ID == level.Classroom && !g.fade.Active() }) {
		t.Fatalf("never reached the classroom; at %v", g.lvl.ID)
	}
	if len(g.session.Levels) != 2 {
		t.Errorf("session levels = %v", g.session.Levels)
	}
}

func TestBackDoorSkipsIntro(t *testing.T) {
	g, _ := newTestGame(t, Options{})
	enter(t, g, level.Classroom)
	place(g, 1)

	g.handle(ActionInteract)
	if !settle(g, func() bool { return g.lvl.ID == level.Dormitory && !g.fade.Active() }) {
		t.Fatal("back door did not lead to the dormitory")
	}
	if g.director.Playing() {
		t.Error("intro should be skipped after a back door")
	}

	// The skip is used up by that one load.
	g.travel(level.Classroom)
	settle(g, func() bool { return g.lvl.ID == level.Classroom && !g.fade.Active() })
	g.travel(level.Dormitory)
	settle(g, func() bool { return g.lvl.ID == level.Dormitory && g.director.Playing() })
	if !g.director.Playing() {
		t.Error("intro should play again on a normal entry")
	}
}

func TestExitConfirmEndsWithCG(t *testing.T) {
	g, _ := newTestGame(t, Options{})
	enter(t, g, level.Dormitory)
	place(g, 36)

	g.handle(ActionInteract)
	if !g.exit.Visible() {
		t.Fatal("exit sign should open the confirmation")
	}
	for i, want := range ui.DefaultExitMessages {
		if g.frame().Exit != want {
			t.Fatalf("step %d shows %q", i, g.frame().Exit)
		}
		g.handle(ActionConfirm)
	}
	if g.exit.Visible() || !g.director.Playing() {
		t.Fatal("final confirm should close the dialog and start the outro")
	}
	if !settle(g, g.exit.CGVisible) {
		t.Fatal("closing picture never shown")
	}
	if !g.session.Finished {
		t.Error("session not marked finished")
	}
	if !g.frame().CG {
		t.Error("frame should draw the closing picture")
	}
	g.handle(ActionConfirm)
	if !g.quit {
		t.Error("any confirm on the closing picture should quit")
	}
}

func TestExitCancel(t *testing.T) {
	g, _ := newTestGame(t, Options{})
	enter(t, g, level.Dormitory)
	place(g, 36)
	g.handle(ActionInteract)
	g.handle(ActionConfirm)
	g.handle(ActionCancel)
	if g.exit.Visible() || g.lock.Locked() {
		t.Fatal("cancel should close the exit dialog and unlock")
	}
	if g.director.Playing() {
		t.Fatal("outro must not start after cancelling")
	}
}

func TestVolumePersists(t *testing.T) {
	dir := t.TempDir()
	prefs, err := settings.OpenPrefs(filepath.Join(dir, settings.PrefsFile))
	if err != nil {
		t.Fatalf("OpenPrefs: %v", err)
	}
	defer prefs.Close()

	g, snd := newTestGame(t, Options{Prefs: prefs})
	enter(t, g, level.Dormitory)

	g.handle(ActionCancel)
	if !g.volume.Visible() || !g.lock.Locked() {
		t.Fatal("Esc in play should open the volume panel")
	}
	g.handle(ActionLeft)
	g.handle(ActionDown)
	g.handle(ActionLeft)
	g.handle(ActionLeft)
	g.handle(ActionCancel)
	if g.volume.Visible() {
		t.Fatal("Esc should close the volume panel")
	}
	if snd.master != 0.9 || snd.effct != 0.8 {
		t.Errorf("mixer volume = %v/%v, want 0.9/0.8", snd.master, snd.effct)
	}

	v, err := settings.LoadVolume(context.Background(), prefs)
	if err != nil {
		t.Fatalf("LoadVolume: %v", err)
	}
	if v.Master != 0.9 || v.Effects != 0.8 {
		t.Fatalf("saved volume = %+v", v)
	}

	g2, snd2 := newTestGame(t, Options{Prefs: prefs})
	if g2.volume.Master() != 0.9 || snd2.master != 0.9 {
		t.Errorf("new game starts at %v, want the saved 0.9", g2.volume.Master())
	}
}

func TestWalkAndDrawer(t *testing.T) {
	g, _ := newTestGame(t, Options{})
	enter(t, g, level.Dormitory)
	start := g.playerPos().X

	g.handle(ActionRight)
	g.tick(0.1)
	if g.playerPos().X <= start {
		t.Fatal("player should walk right")
	}

	g.handle(ActionBackpack)
	settle(g, g.drawer.Done)
	if g.frame().DrawerOffset != g.cfg.Drawer.ShowOffset {
		t.Fatalf("drawer offset = %v", g.frame().DrawerOffset)
	}
}

func TestDrawShowsLevel(t *testing.T) {
	g, _ := newTestGame(t, Options{})
	enter(t, g, level.Library)
	g.draw()

	ss := g.screen.(tcell.SimulationScreen)
	cells, w, _ := ss.GetContents()
	var top strings.Builder
	for _, c := range cells[:w] {
		for _, r := range c.Runes {
			top.WriteRune(r)
		}
	}
	if !strings.Contains(top.String(), level.Library.String()) {
		t.Fatalf("status row = %q", top.String())
	}
}

func TestQuit(t *testing.T) {
	g, _ := newTestGame(t, Options{})
	enter(t, g, level.Dormitory)
	g.handle(ActionQuit)
	if !g.quit {
		t.Fatal("quit not set")
	}
}

func TestKeyToAction(t *testing.T) {
	cases := []struct {
		ev   *tcell.EventKey
		want Action
	}{
		{tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), ActionLeft},
		{tcell.NewEventKey(tcell.KeyRune, 'd', tcell.ModNone), ActionRight},
		{tcell.NewEventKey(tcell.KeyRune, 'E', tcell.ModNone), ActionInteract},
		{tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), ActionConfirm},
		{tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), ActionCancel},
		{tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone), ActionBackpack},
		{tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), ActionContinue},
		{tcell.NewEventKey(tcell.KeyRune, 'i', tcell.ModNone), ActionInvestigate},
		{tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), ActionQuit},
		{tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone), ActionNone},
	}
	for _, tc := range cases {
		if got := keyToAction(tc.ev); got != tc.want {
			t.Errorf("keyToAction(%v) = %v, want %v", tc.ev.Name(), got, tc.want)
		}
	}
}
