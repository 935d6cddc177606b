package render

import (
	"math"
	"testing"

	"mengya/internal/gamemap"
	"mengya/internal/geom"
)

func TestWorldToScreenRoundTrip(t *testing.T) {
	c := NewCamera(40, 10, 1)
	c.Snap(geom.Vec2{X: 10, Y: 5})
	sx, sy, ok := c.WorldToScreen(10, 5)
	if !ok {
		t.Fatal("followed point should be on screen")
	}
	if sx != 20 || sy != 5 {
		t.Fatalf("WorldToScreen = (%d,%d), want (20,5)", sx, sy)
	}
	if wx, wy := c.ScreenToWorld(sx, sy); wx != 10 || wy != 5 {
		t.Fatalf("ScreenToWorld = (%d,%d)", wx, wy)
	}
	if _, _, ok := c.WorldToScreen(40, 5); ok {
		t.Fatal("far tile should be off screen")
	}
}

func TestFollowEases(t *testing.T) {
	c := NewCamera(40, 10, 0.125)
	c.Snap(geom.Vec2{})
	c.Follow(geom.Vec2{X: 8})
	if got := c.Pos().X; math.Abs(got-1) > 1e-9 {
		t.Fatalf("after one Follow X = %v, want 1", got)
	}
	for i := 0; i < 200; i++ {
		c.Follow(geom.Vec2{X: 8})
	}
	if got := c.Pos().X; math.Abs(got-8) > 1e-6 {
		t.Fatalf("camera should settle on target, X = %v", got)
	}
}

func TestFollowOffset(t *testing.T) {
	c := NewCamera(40, 10, 1)
	c.Offset = geom.Vec2{X: 2, Y: -1}
	c.Follow(geom.Vec2{X: 5, Y: 5})
	if c.Pos() != (geom.Vec2{X: 7, Y: 4}) {
		t.Fatalf("Pos = %+v", c.Pos())
	}
}

func TestBoundsClamp(t *testing.T) {
	c := NewCamera(20, 4, 1) // 10 tiles wide, 4 tall
	c.SetBounds(gamemap.Rect{X1: 0, Y1: 0, X2: 39, Y2: 5})
	c.Snap(geom.Vec2{X: 0, Y: 0})
	if p := c.Pos(); p.X != 4.5 || p.Y != 1.5 {
		t.Fatalf("clamped to %+v, want (4.5,1.5)", p)
	}
	if sx, _, ok := c.WorldToScreen(0, 0); !ok || sx != 0 {
		t.Fatalf("left edge should sit at column 0, got %d (%v)", sx, ok)
	}
	c.Snap(geom.Vec2{X: 100, Y: 100})
	if p := c.Pos(); p.X != 34.5 || p.Y != 3.5 {
		t.Fatalf("clamped to %+v, want (34.5,3.5)", p)
	}
}

func TestBoundsSmallerThanView(t *testing.T) {
	c := NewCamera(80, 20, 1)
	c.SetBounds(gamemap.Rect{X1: 0, Y1: 0, X2: 9, Y2: 5})
	c.Snap(geom.Vec2{X: 0, Y: 0})
	if p := c.Pos(); p.X != 4.5 || p.Y != 2.5 {
		t.Fatalf("small stage should be centred, got %+v", p)
	}
}
