package render

import (
	"math"

	"mengya/internal/gamemap"
	"mengya/internal/geom"
)

// Camera translates between world coordinates and screen coordinates and
// trails the player. World X is multiplied by 2 because each tile is 2
// terminal columns wide.
type Camera struct {
	ViewWidth  int // in terminal columns
	ViewHeight int // in terminal rows
	Top        int // first screen row of the viewport

	Smooth float64  // fraction of the remaining distance covered per Follow
	Offset geom.Vec2 // added to the followed point

	pos     geom.Vec2 // world point at the viewport centre
	bounds  gamemap.Rect
	bounded bool
}

// NewCamera creates a camera for a viewport of the given size.
func NewCamera(viewW, viewH int, smooth float64) *Camera {
	return &Camera{ViewWidth: viewW, ViewHeight: viewH, Smooth: smooth}
}

// SetBounds keeps the viewport inside r.
func (c *Camera) SetBounds(r gamemap.Rect) {
	c.bounds = r
	c.bounded = true
	c.pos = c.clamp(c.pos)
}

// Snap centres the camera on target at once. Used on level load.
func (c *Camera) Snap(target geom.Vec2) {
	c.pos = c.clamp(target.Add(c.Offset))
}

// Follow eases the camera toward target by Smooth.
func (c *Camera) Follow(target geom.Vec2) {
	c.pos = c.clamp(geom.Lerp(c.pos, target.Add(c.Offset), c.Smooth))
}

// Pos returns the world point at the viewport centre.
func (c *Camera) Pos() geom.Vec2 { return c.pos }

// halfTiles is half the viewport size in tiles.
func (c *Camera) halfTiles() geom.Vec2 {
	return geom.Vec2{X: float64(c.ViewWidth) / 4, Y: float64(c.ViewHeight) / 2}
}

func (c *Camera) clamp(p geom.Vec2) geom.Vec2 {
	if !c.bounded {
		return p
	}
	h := c.halfTiles()
	axis := func(v, lo, hi, half float64) float64 {
		// Tiles are centred on integers; the stage spans [lo-0.5, hi+0.5].
		min, max := lo-0.5+half, hi+0.5-half
		if min > max {
			return (lo + hi) / 2
		}
		return geom.Clamp(v, min, max)
	}
	return geom.Vec2{
		X: axis(p.X, float64(c.bounds.X1), float64(c.bounds.X2), h.X),
		Y: axis(p.Y, float64(c.bounds.Y1), float64(c.bounds.Y2), h.Y),
	}
}

// origin is the world tile drawn at the viewport's top-left cell.
func (c *Camera) origin() (int, int) {
	h := c.halfTiles()
	return int(math.Floor(c.pos.X - h.X + 0.5)), int(math.Floor(c.pos.Y - h.Y + 0.5))
}

// WorldToScreen converts world (wx, wy) to screen (sx, sy).
// visible is false when the result falls outside the viewport.
func (c *Camera) WorldToScreen(wx, wy int) (sx, sy int, visible bool) {
	ox, oy := c.origin()
	sx = (wx - ox) * 2
	sy = wy - oy + c.Top
	visible = sx >= 0 && sx+1 < c.ViewWidth && sy >= c.Top && sy < c.Top+c.ViewHeight
	return
}

// ScreenToWorld converts screen (sx, sy) to world coordinates.
func (c *Camera) ScreenToWorld(sx, sy int) (int, int) {
	ox, oy := c.origin()
	return sx/2 + ox, sy - c.Top + oy
}
