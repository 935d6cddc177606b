// Package ui holds the state of the game's overlay panels. Drawing them is
// the renderer's job; everything here is plain state advanced by Tick.
package ui

import "math"

// Locker freezes player movement while a panel is open.
type Locker interface {
	Lock(reason string)
	Unlock(reason string)
}

// Drawer is the backpack panel. It slides between hidden (offset 0) and
// shown (offset ShowOffset) by easing a fraction of the remaining distance
// every tick.
type Drawer struct {
	ShowOffset float64 // columns the panel moves in when shown
	Speed      float64

	offset float64
	shown  bool
}

func NewDrawer(showOffset, speed float64) *Drawer {
	return &Drawer{ShowOffset: showOffset, Speed: speed}
}

// Toggle flips the target position.
func (d *Drawer) Toggle() { d.shown = !d.shown }

func (d *Drawer) Shown() bool { return d.shown }

func (d *Drawer) target() float64 {
	if d.shown {
		return d.ShowOffset
	}
	return 0
}

// Tick eases the offset toward the target.
func (d *Drawer) Tick(dt float64) {
	t := d.target()
	d.offset += (t - d.offset) * math.Min(1, d.Speed*dt)
	if math.Abs(t-d.offset) < 0.01 {
		d.offset = t
	}
}

// Offset returns the current slide distance in columns.
func (d *Drawer) Offset() float64 { return d.offset }

// Done reports whether the panel has reached its target.
func (d *Drawer) Done() bool { return d.offset == d.target() }

// Reset hides the panel immediately. Called on every level load.
func (d *Drawer) Reset() {
	d.shown = false
	d.offset = 0
}
