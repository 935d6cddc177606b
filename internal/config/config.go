// Package config loads game tuning from config.json.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// FileName is the settings file looked up in the data directory.
const FileName = "config.json"

// Config is the tunable part of the game. Every field has a default; a file
// only needs the fields it changes.
type Config struct {
	Inventory struct {
		Slots int
	}
	Player struct {
		Speed float64 // tiles per second
	}
	Pickup struct {
		Radius float64
	}
	Dialogue struct {
		TypewriterInterval float64
	}
	Drawer struct {
		ShowOffset float64
		SlideSpeed float64
	}
	Camera struct {
		Smooth  float64
		OffsetX float64
		OffsetY float64
	}
	Transition struct {
		FadeSeconds float64
	}
	Frame struct {
		FPS int
	}
	Lighting struct {
		Enabled bool
	}
	Audio struct {
		Enabled bool
	}
}

// Default returns the built-in settings.
func Default() Config {
	var c Config
	c.Inventory.Slots = 8
	c.Player.Speed = 6
	c.Pickup.Radius = 1.5
	c.Dialogue.TypewriterInterval = 0.05
	c.Drawer.ShowOffset = 30
	c.Drawer.SlideSpeed = 8
	c.Camera.Smooth = 0.125
	c.Transition.FadeSeconds = 0.4
	c.Frame.FPS = 30
	c.Lighting.Enabled = true
	c.Audio.Enabled = true
	return c
}

// Load reads path over the defaults. A missing file is not an error. A file
// that does not parse yields the defaults and the parse error.
func Load(path string) (Config, error) {
	c := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return c, nil
	}
	if err != nil {
		return c, fmt.Errorf("read config: %w", err)
	}
	if err := json.Unmarshal(data, &c); err != nil {
		return Default(), fmt.Errorf("parse %s: %w", path, err)
	}
	c.sanitize()
	return c, nil
}

// maxSlots is the number of "Slot_N" names a level HUD can give its cells.
const maxSlots = 64

// sanitize replaces out-of-range values with their defaults.
func (c *Config) sanitize() {
	d := Default()
	if c.Inventory.Slots <= 0 || c.Inventory.Slots > maxSlots {
		c.Inventory.Slots = d.Inventory.Slots
	}
	if c.Player.Speed <= 0 {
		c.Player.Speed = d.Player.Speed
	}
	if c.Pickup.Radius <= 0 {
		c.Pickup.Radius = d.Pickup.Radius
	}
	if c.Dialogue.TypewriterInterval <= 0 {
		c.Dialogue.TypewriterInterval = d.Dialogue.TypewriterInterval
	}
	if c.Drawer.ShowOffset < 0 {
		c.Drawer.ShowOffset = d.Drawer.ShowOffset
	}
	if c.Drawer.SlideSpeed <= 0 {
		c.Drawer.SlideSpeed = d.Drawer.SlideSpeed
	}
	if c.Camera.Smooth <= 0 || c.Camera.Smooth > 1 {
		c.Camera.Smooth = d.Camera.Smooth
	}
	if c.Transition.FadeSeconds < 0 {
		c.Transition.FadeSeconds = d.Transition.FadeSeconds
	}
	if c.Frame.FPS <= 0 || c.Frame.FPS > 120 {
		c.Frame.FPS = d.Frame.FPS
	}
}
