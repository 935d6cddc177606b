package ui

// Fade darkens the screen for level transitions. FadeOut ramps the black
// overlay to full over Seconds, runs the callback, then ramps back.
type Fade struct {
	Seconds float64

	alpha  float64
	target float64
	then   func()
}

func NewFade(seconds float64) *Fade { return &Fade{Seconds: seconds} }

// FadeOut starts a transition. then runs once, at full black. A transition
// already in flight is replaced.
func (f *Fade) FadeOut(then func()) {
	f.target = 1
	f.then = then
}

// Tick advances the overlay by dt seconds.
func (f *Fade) Tick(dt float64) {
	step := 1.0
	if f.Seconds > 0 {
		step = dt / f.Seconds
	}
	switch {
	case f.alpha < f.target:
		f.alpha += step
		if f.alpha >= f.target {
			f.alpha = f.target
		}
	case f.alpha > f.target:
		f.alpha -= step
		if f.alpha < f.target {
			f.alpha = f.target
		}
	}
	if f.alpha == 1 && f.target == 1 {
		f.target = 0
		if then := f.then; then != nil {
			f.then = nil
			then()
		}
	}
}

// Alpha is the overlay opacity in [0, 1].
func (f *Fade) Alpha() float64 { return f.alpha }

// Active reports whether a transition is running.
func (f *Fade) Active() bool { return f.alpha > 0 || f.target > 0 }
