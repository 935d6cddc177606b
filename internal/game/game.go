// Package game runs one play-through: it owns the backpack and the panels,
// loads levels and drives the frame loop.
package game

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	"mengya/assets"
	"mengya/internal/audio"
	"mengya/internal/component"
	"mengya/internal/config"
	"mengya/internal/dialogue"
	"mengya/internal/ecs"
	"mengya/internal/geom"
	"mengya/internal/inventory"
	"mengya/internal/level"
	"mengya/internal/pickup"
	"mengya/internal/render"
	"mengya/internal/settings"
	"mengya/internal/system"
	"mengya/internal/ui"

	"github.com/gdamore/tcell/v2"
)

// maxMessages caps the message log.
const maxMessages = 50

// maxStep bounds one frame's dt so a stalled terminal does not teleport the
// player through a wall.
const maxStep = 0.1

// Sounds plays effects. *audio.Mixer implements it.
type Sounds interface {
	Play(audio.Sound)
	SetVolume(master, effects float64)
}

type silent struct{}

func (silent) Play(audio.Sound)           {}
func (silent) SetVolume(float64, float64) {}

// Options configures a Game. Only Config is required.
type Options struct {
	Config  config.Config
	Prefs   *settings.Prefs // volume persistence; nil keeps it in memory
	Sounds  Sounds          // nil plays nothing
	DataDir string          // session log directory; "" uses settings.DataDir
	Logger  *log.Logger
	Player  string // name recorded in the session log
	Start   level.ID
}

// Game is the top-level orchestrator.
type Game struct {
	screen   tcell.Screen
	renderer *render.Renderer
	cfg      config.Config
	log      *log.Logger
	prefs    *settings.Prefs
	sounds   Sounds
	dataDir  string
	start    level.ID

	lock     system.MoveLock
	store    *inventory.Store
	flow     *pickup.Flow
	director *dialogue.Director
	drawer   *ui.Drawer
	exit     *ui.ExitConfirm
	volume   *ui.VolumePanel
	fade     *ui.Fade
	skip     dialogue.SkipSet[level.ID]
	mem      level.Memory

	lvl       *level.Level
	target    system.Target
	hasTarget bool
	messages  []string
	session   Session
	quit      bool
}

// New creates a Game drawing on screen. The screen must already be
// initialised; Run finalises it.
func New(screen tcell.Screen, opts Options) *Game {
	lg := opts.Logger
	if lg == nil {
		lg = log.New(io.Discard, "", 0)
	}
	sounds := opts.Sounds
	if sounds == nil {
		sounds = silent{}
	}
	cfg := opts.Config

	g := &Game{
		screen:   screen,
		renderer: render.NewRenderer(screen, cfg.Camera.Smooth),
		cfg:      cfg,
		log:      lg,
		prefs:    opts.Prefs,
		sounds:   sounds,
		dataDir:  opts.DataDir,
		start:    opts.Start,
		drawer:   ui.NewDrawer(cfg.Drawer.ShowOffset, cfg.Drawer.SlideSpeed),
		fade:     ui.NewFade(cfg.Transition.FadeSeconds),
		session:  Session{Player: opts.Player, Started: time.Now()},
	}
	g.renderer.Camera().Offset = geom.Vec2{X: cfg.Camera.OffsetX, Y: cfg.Camera.OffsetY}

	g.store = inventory.NewStore(inventory.Options{
		Slots:  cfg.Inventory.Slots,
		Logger: prefixed(lg, "backpack: "),
	})
	g.flow = pickup.NewFlow(g.store, &g.lock, assets.Investigations, prefixed(lg, "pickup: "))
	g.director = dialogue.NewDirector(cfg.Dialogue.TypewriterInterval, &g.lock, prefixed(lg, "dialogue: "))
	g.director.OnFinish = g.scriptFinished
	g.exit = ui.NewExitConfirm(ui.DefaultExitMessages, &g.lock)

	vol := settings.DefaultVolume
	if g.prefs != nil {
		var err error
		if vol, err = settings.LoadVolume(context.Background(), g.prefs); err != nil {
			lg.Printf("load volume: %v", err)
		}
	}
	g.volume = ui.NewVolumePanel(vol.Master, vol.Effects, &g.lock)
	g.volume.OnChange = g.volumeChanged
	g.sounds.SetVolume(vol.Master, vol.Effects)
	return g
}

func prefixed(lg *log.Logger, prefix string) *log.Logger {
	return log.New(lg.Writer(), lg.Prefix()+prefix, lg.Flags())
}

// Run is the main loop. It returns when the player quits, the screen closes
// or ctx is done.
func (g *Game) Run(ctx context.Context) error {
	defer g.screen.Fini()
	defer g.saveSession()

	if err := g.loadLevel(g.start); err != nil {
		return err
	}

	done := make(chan struct{})
	defer close(done)
	events := make(chan tcell.Event, 32)
	go g.pollEvents(events, done)

	fps := g.cfg.Frame.FPS
	if fps <= 0 {
		fps = 30
	}
	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	last := time.Now()
	g.draw()
	for !g.quit {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			g.handleEvent(ev)
		case now := <-ticker.C:
			dt := min(now.Sub(last).Seconds(), maxStep)
			last = now
			g.tick(dt)
			g.draw()
		}
	}
	return nil
}

// pollEvents feeds screen events to the loop until the screen is finalised.
func (g *Game) pollEvents(events chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := g.screen.PollEvent()
		if ev == nil {
			close(events)
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

func (g *Game) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		g.screen.Sync()
		g.renderer.Resize()
	case *tcell.EventKey:
		g.handle(keyToAction(ev))
	}
}

// loadLevel replaces the active level with id and rebinds everything that
// points into it.
func (g *Game) loadLevel(id level.ID) error {
	l, err := level.Load(id, &g.mem, g.store, level.Options{
		Slots:       g.cfg.Inventory.Slots,
		PlayerSpeed: g.cfg.Player.Speed,
		Lighting:    g.cfg.Lighting.Enabled,
		Logger:      prefixed(g.log, "level: "),
	})
	if err != nil {
		return fmt.Errorf("load level: %w", err)
	}
	g.lvl = l
	g.hasTarget = false

	g.store.Bind(l.Displays)
	if err := g.store.Sync(); err != nil {
		g.log.Printf("backpack sync: %v", err)
	}
	g.store.SetRestore(l.Restore)
	g.flow.SetScene(l, int(id))
	g.drawer.Reset()

	cam := g.renderer.Camera()
	cam.SetBounds(l.Map.Bounds())
	cam.Snap(g.playerPos())

	g.director.Stop()
	if !g.skip.Consume(id) {
		g.director.Play(assets.Intros[id])
	}
	g.session.visit(id)
	g.addMessage(fmt.Sprintf("You enter the %s.", id))
	return nil
}

// travel fades out and loads id at full black.
func (g *Game) travel(id level.ID) {
	if g.fade.Active() {
		return
	}
	g.sounds.Play(audio.SoundDoor)
	g.fade.FadeOut(func() {
		if err := g.loadLevel(id); err != nil {
			g.log.Printf("travel to %v: %v", id, err)
			g.addMessage("The door will not open.")
		}
	})
}

// tick advances the simulation by dt seconds.
func (g *Game) tick(dt float64) {
	g.fade.Tick(dt)
	g.director.Tick(dt)
	g.drawer.Tick(dt)
	if g.lvl == nil {
		return
	}
	w := g.lvl.World
	system.UpdateApparitions(w, g.store, dt)
	system.Walk(w, g.lvl.Map, g.lvl.Player, dt, g.lock.Locked() || g.fade.Active())

	g.target, g.hasTarget = system.Nearest(w, g.lvl.Player, g.cfg.Pickup.Radius)
	if g.hasTarget {
		system.Highlight(w, g.target.Entity)
	} else {
		system.Highlight(w, ecs.NilEntity)
	}
	g.renderer.Camera().Follow(g.playerPos())
}

func (g *Game) playerPos() geom.Vec2 {
	tr, _ := ecs.Get[component.Transform](g.lvl.World, g.lvl.Player)
	return tr.Position
}

// draw renders the current state.
func (g *Game) draw() {
	g.renderer.Draw(g.frame())
}

func (g *Game) frame() render.Frame {
	f := render.Frame{
		Messages:     g.messages,
		Hint:         g.hint(),
		DrawerOffset: g.drawer.Offset(),
		Fade:         g.fade.Alpha(),
		CG:           g.exit.CGVisible(),
	}
	if g.lvl != nil {
		f.World, f.Map, f.Light, f.Slots = g.lvl.World, g.lvl.Map, g.lvl.Light, g.lvl.Slots
		f.Title = fmt.Sprintf("%s   🎒 %d/%d", g.lvl.ID, g.store.Count(), g.store.Len())
	}
	if g.director.BoxVisible() {
		c, _ := g.director.Current()
		f.Dialogue = &render.DialogueView{
			Speaker: c.Speaker,
			Text:    g.director.Text(),
			Bold:    c.Size > dialogue.NormalSize,
			Prompt:  g.director.Prompt(),
		}
	}
	if p, ok := g.flow.Panel(); ok {
		f.Detail = &p
	}
	if g.exit.Visible() {
		f.Exit = g.exit.Message()
	}
	if g.volume.Visible() {
		f.Volume = &render.VolumeView{
			Labels:   []string{ui.SliderMaster.Label(), ui.SliderEffects.Label()},
			Values:   []float64{g.volume.Master(), g.volume.Effects()},
			Selected: int(g.volume.Selected()),
		}
	}
	return f
}

// hint describes what E would do, or "" when nothing is in reach.
func (g *Game) hint() string {
	if !g.hasTarget || g.lock.Locked() || g.lvl == nil {
		return ""
	}
	w := g.lvl.World
	switch g.target.Kind {
	case system.TargetItem:
		p, _ := ecs.Get[component.Pickup](w, g.target.Entity)
		return ui.Hint("E", "Pick up", p.Item.Name)
	case system.TargetInteractable:
		it, _ := ecs.Get[component.Interactable](w, g.target.Entity)
		switch it.Kind {
		case component.InteractNextLevel, component.InteractBackToLevel:
			return ui.Hint("E", "Go to", it.Label)
		case component.InteractExitConfirm:
			return ui.Hint("E", it.Label, "")
		default:
			return ui.Hint("E", "Examine", it.Label)
		}
	}
	return ""
}

// scriptFinished runs when the director reaches the end of a script.
func (g *Game) scriptFinished(name string) {
	if name != assets.Outro.Name {
		return
	}
	g.session.Finished = true
	g.exit.ShowCG()
}

// volumeChanged applies and persists new volume levels.
func (g *Game) volumeChanged(master, effects float64) {
	g.sounds.SetVolume(master, effects)
	g.sounds.Play(audio.SoundBlip)
	if g.prefs == nil {
		return
	}
	v := settings.Volume{Master: master, Effects: effects}
	if err := settings.SaveVolume(context.Background(), g.prefs, v); err != nil {
		g.log.Printf("save volume: %v", err)
	}
}

func (g *Game) saveSession() {
	g.session.Ended = time.Now()
	dir := g.dataDir
	if dir == "" {
		var err error
		if dir, err = settings.DataDir(); err != nil {
			g.log.Printf("session log: %v", err)
			return
		}
	}
	if err := saveSession(dir, g.session); err != nil {
		g.log.Printf("session log: %v", err)
	}
}

// addMessage appends a message to the log (capped at maxMessages).
func (g *Game) addMessage(msg string) {
	g.messages = append(g.messages, msg)
	if len(g.messages) > maxMessages {
		g.messages = g.messages[len(g.messages)-maxMessages:]
	}
}
