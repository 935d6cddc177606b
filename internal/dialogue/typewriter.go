// Package dialogue plays authored dialogue scripts with a typewriter effect.
package dialogue

// DefaultInterval is the delay between revealed runes, in seconds.
const DefaultInterval = 0.05

// Typewriter reveals a line one rune at a time. The first rune shows as soon
// as Start is called; each further rune needs Interval seconds of Tick.
type Typewriter struct {
	Interval float64

	runes []rune
	shown int
	acc   float64
}

func NewTypewriter(interval float64) *Typewriter {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Typewriter{Interval: interval}
}

// Start replaces whatever is being typed with text.
func (t *Typewriter) Start(text string) {
	t.runes = []rune(text)
	t.acc = 0
	t.shown = 0
	if len(t.runes) > 0 {
		t.shown = 1
	}
}

// Tick advances the effect by dt seconds.
func (t *Typewriter) Tick(dt float64) {
	if t.Done() {
		return
	}
	t.acc += dt
	for t.acc >= t.Interval && t.shown < len(t.runes) {
		t.acc -= t.Interval
		t.shown++
	}
}

// Done reports whether the whole line is visible.
func (t *Typewriter) Done() bool { return t.shown >= len(t.runes) }

// Complete reveals the rest of the line at once.
func (t *Typewriter) Complete() {
	t.shown = len(t.runes)
	t.acc = 0
}

// Stop clears the line.
func (t *Typewriter) Stop() {
	t.runes = nil
	t.shown = 0
	t.acc = 0
}

// Text returns the revealed part of the line.
func (t *Typewriter) Text() string { return string(t.runes[:t.shown]) }

// Full returns the whole line being typed.
func (t *Typewriter) Full() string { return string(t.runes) }
