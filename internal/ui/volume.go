package ui

import "math"

// VolumeStep is how much one key press moves a slider.
const VolumeStep = 0.1

// Slider identifies a row of the volume panel.
type Slider uint8

const (
	SliderMaster Slider = iota
	SliderEffects
	sliderCount
)

func (s Slider) Label() string {
	if s == SliderEffects {
		return "Sound effects"
	}
	return "Master"
}

const volumeLock = "volume"

// VolumePanel edits the two volume levels. OnChange runs after every
// adjustment so the caller can persist and apply the new values.
type VolumePanel struct {
	OnChange func(master, effects float64)

	lock     Locker
	open     bool
	selected Slider
	values   [sliderCount]float64
}

func NewVolumePanel(master, effects float64, lock Locker) *VolumePanel {
	p := &VolumePanel{lock: lock}
	p.Set(master, effects)
	return p
}

// Set replaces both values without calling OnChange.
func (p *VolumePanel) Set(master, effects float64) {
	p.values[SliderMaster] = clampVolume(master)
	p.values[SliderEffects] = clampVolume(effects)
}

func (p *VolumePanel) Master() float64  { return p.values[SliderMaster] }
func (p *VolumePanel) Effects() float64 { return p.values[SliderEffects] }

// Value returns the level of slider s.
func (p *VolumePanel) Value(s Slider) float64 { return p.values[s] }

// Toggle opens or closes the panel.
func (p *VolumePanel) Toggle() {
	if p.open {
		p.Close()
	} else {
		p.Open()
	}
}

func (p *VolumePanel) Open() {
	if p.open {
		return
	}
	p.open = true
	p.selected = SliderMaster
	if p.lock != nil {
		p.lock.Lock(volumeLock)
	}
}

func (p *VolumePanel) Close() {
	if !p.open {
		return
	}
	p.open = false
	if p.lock != nil {
		p.lock.Unlock(volumeLock)
	}
}

func (p *VolumePanel) Visible() bool { return p.open }

func (p *VolumePanel) Selected() Slider { return p.selected }

// Move changes the selected slider by delta rows, wrapping around.
func (p *VolumePanel) Move(delta int) {
	n := int(sliderCount)
	p.selected = Slider(((int(p.selected)+delta)%n + n) % n)
}

// Adjust moves the selected slider by delta steps.
func (p *VolumePanel) Adjust(delta int) {
	s := p.selected
	v := clampVolume(p.values[s] + float64(delta)*VolumeStep)
	if v == p.values[s] {
		return
	}
	p.values[s] = v
	if p.OnChange != nil {
		p.OnChange(p.Master(), p.Effects())
	}
}

// clampVolume keeps v in [0, 1] and drops float noise from repeated steps.
func clampVolume(v float64) float64 {
	if math.IsNaN(v) {
		return 1
	}
	return math.Round(math.Max(0, math.Min(1, v))*100) / 100
}
