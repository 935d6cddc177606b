package dialogue

import (
	"io"
	"log"
)

// Clip is one line of a script.
type Clip struct {
	Speaker      string
	Line         string
	Size         int     // authored emphasis; above NormalSize draws bold
	Duration     float64 // seconds the clip stays on screen
	RequirePause bool    // wait for the player before the next clip
}

// NormalSize is the default clip size.
const NormalSize = 36

// Script is an ordered run of clips.
type Script struct {
	Name  string
	Clips []Clip
}

// Mode is what the frame loop should route input to.
type Mode uint8

const (
	ModeGameplay Mode = iota
	ModeDialogue      // paused on a clip, waiting for Space
)

// Locker freezes player movement while dialogue waits.
type Locker interface {
	Lock(reason string)
	Unlock(reason string)
}

const lockReason = "dialogue"

// Director plays one script at a time. It replaces timeline playback: Tick
// moves through the clips, a pausing clip stops the clock until Press.
type Director struct {
	// OnFinish, if set, is called with the script name when the last clip
	// ends.
	OnFinish func(name string)

	tw   *Typewriter
	lock Locker
	log  *log.Logger

	script  Script
	clip    int
	elapsed float64
	playing bool
	paused  bool
	box     bool
}

func NewDirector(interval float64, lock Locker, lg *log.Logger) *Director {
	if lg == nil {
		lg = log.New(io.Discard, "", 0)
	}
	return &Director{tw: NewTypewriter(interval), lock: lock, log: lg, clip: -1}
}

// Play starts s from its first clip, abandoning whatever was playing.
func (d *Director) Play(s Script) {
	d.Stop()
	if len(s.Clips) == 0 {
		return
	}
	d.script = s
	d.playing = true
	d.log.Printf("play %q (%d clips)", s.Name, len(s.Clips))
	d.enter(0)
}

// Stop abandons the current script without calling OnFinish.
func (d *Director) Stop() {
	d.setPaused(false)
	d.playing = false
	d.box = false
	d.clip = -1
	d.elapsed = 0
	d.script = Script{}
	d.tw.Stop()
}

func (d *Director) enter(i int) {
	d.clip = i
	d.elapsed = 0
	d.box = true
	d.tw.Start(d.script.Clips[i].Line)
}

// Tick advances playback by dt seconds.
func (d *Director) Tick(dt float64) {
	if !d.playing || d.paused {
		return
	}
	d.tw.Tick(dt)
	d.elapsed += dt
	c := d.script.Clips[d.clip]
	if d.elapsed < c.Duration {
		return
	}
	if c.RequirePause {
		d.tw.Complete()
		d.setPaused(true)
		return
	}
	d.box = false
	d.next()
}

// Press handles the continue key. While paused it resumes playback; while a
// line is still typing it reveals the rest. It reports whether the key was
// used.
func (d *Director) Press() bool {
	switch {
	case d.paused:
		d.setPaused(false)
		d.next()
		return true
	case d.playing && !d.tw.Done():
		d.tw.Complete()
		return true
	}
	return false
}

func (d *Director) next() {
	if d.clip+1 < len(d.script.Clips) {
		d.enter(d.clip + 1)
		return
	}
	name := d.script.Name
	d.Stop()
	d.log.Printf("finished %q", name)
	if d.OnFinish != nil {
		d.OnFinish(name)
	}
}

func (d *Director) setPaused(p bool) {
	if d.paused == p {
		return
	}
	d.paused = p
	if d.lock == nil {
		return
	}
	if p {
		d.lock.Lock(lockReason)
	} else {
		d.lock.Unlock(lockReason)
	}
}

func (d *Director) Playing() bool { return d.playing }

// Mode returns ModeDialogue while a pausing clip waits for the player.
func (d *Director) Mode() Mode {
	if d.paused {
		return ModeDialogue
	}
	return ModeGameplay
}

// Prompt reports whether the "Space to continue" prompt should show.
func (d *Director) Prompt() bool { return d.paused }

// BoxVisible reports whether the dialogue box should be drawn.
func (d *Director) BoxVisible() bool { return d.box }

// Current returns the clip on screen.
func (d *Director) Current() (Clip, bool) {
	if !d.playing || d.clip < 0 {
		return Clip{}, false
	}
	return d.script.Clips[d.clip], true
}

// Text returns the revealed part of the current line.
func (d *Director) Text() string { return d.tw.Text() }
