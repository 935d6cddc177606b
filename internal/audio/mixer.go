// Package audio mixes the game's sound effects under the master and effect
// volume levels.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

// SampleRate is the rate of every generated sound.
const SampleRate = beep.SampleRate(44100)

// Mixer owns the effect voices and applies both volume levels to them. It
// is a beep.Streamer and is safe to play from one goroutine while another
// feeds it.
type Mixer struct {
	mu      sync.Mutex
	voices  *beep.Mixer
	effects *effects.Volume
	master  *effects.Volume
	started bool
}

func NewMixer() *Mixer {
	voices := &beep.Mixer{}
	fx := &effects.Volume{Streamer: voices, Base: 2}
	return &Mixer{
		voices:  voices,
		effects: fx,
		master:  &effects.Volume{Streamer: fx, Base: 2},
	}
}

// SetVolume applies linear master and effect levels in [0, 1].
func (m *Mixer) SetVolume(master, fx float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	setLinear(m.master, master)
	setLinear(m.effects, fx)
}

// setLinear converts a linear level to the exponent effects.Volume expects.
// log2(0) is -Inf, so zero means silent.
func setLinear(v *effects.Volume, level float64) {
	if level <= 0 || math.IsNaN(level) {
		v.Silent = true
		v.Volume = 0
		return
	}
	v.Silent = false
	v.Volume = math.Log2(math.Min(level, 1))
}

// Play starts sound s. Unknown sounds are ignored.
func (m *Mixer) Play(s Sound) {
	st := s.streamer()
	if st == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.voices.Add(st)
}

// Active returns the number of sounds still playing.
func (m *Mixer) Active() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.voices.Len()
}

// Stream fills samples with the mix. It never runs dry: silence pads the
// buffer when nothing is playing.
func (m *Mixer) Stream(samples [][2]float64) (int, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n, _ := m.master.Stream(samples)
	for i := n; i < len(samples); i++ {
		samples[i] = [2]float64{}
	}
	return len(samples), true
}

func (m *Mixer) Err() error { return nil }

// Start opens the sound device and plays the mix through it. A machine
// without audio returns an error and the game carries on silent.
func (m *Mixer) Start() error {
	if m.started {
		return nil
	}
	if err := speaker.Init(SampleRate, SampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(m)
	m.started = true
	return nil
}

// Close silences everything still playing.
func (m *Mixer) Close() {
	m.mu.Lock()
	m.voices.Clear()
	m.mu.Unlock()
	if m.started {
		speaker.Clear()
		m.started = false
	}
}
