package geom

import "math"

// Vec2 is a point or offset in world units. One world unit is one tile.
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2      { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2      { return Vec2{v.X - o.X, v.Y - o.Y} }
func (v Vec2) Mul(k float64) Vec2   { return Vec2{v.X * k, v.Y * k} }
func (v Vec2) Len() float64         { return math.Hypot(v.X, v.Y) }
func (v Vec2) Dist(o Vec2) float64  { return v.Sub(o).Len() }
func (v Vec2) IsZero() bool         { return v.X == 0 && v.Y == 0 }
func (v Vec2) IsNaN() bool          { return math.IsNaN(v.X) || math.IsNaN(v.Y) }
func (v Vec2) Round() (int, int)    { return int(math.Round(v.X)), int(math.Round(v.Y)) }
func (v Vec2) Eq(o Vec2, eps float64) bool {
	return math.Abs(v.X-o.X) <= eps && math.Abs(v.Y-o.Y) <= eps
}

// Lerp moves a toward b by t, where t is clamped to [0, 1].
func Lerp(a, b Vec2, t float64) Vec2 {
	t = Clamp01(t)
	return Vec2{a.X + (b.X-a.X)*t, a.Y + (b.Y-a.Y)*t}
}

// Lerpf is the scalar form of Lerp.
func Lerpf(a, b, t float64) float64 {
	return a + (b-a)*Clamp01(t)
}

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func Clamp01(v float64) float64 { return Clamp(v, 0, 1) }
