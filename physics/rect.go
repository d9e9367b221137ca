package physics

import (
	"github.com/lixenwraith/orb-arena/vmath"
)

// Rect is an axis-aligned rectangle in arena px.
type Rect struct {
	X, Y float64
	W, H float64
}

// MaxX returns the right edge.
func (r Rect) MaxX() float64 { return r.X + r.W }

// MaxY returns the bottom edge.
func (r Rect) MaxY() float64 { return r.Y + r.H }

// ContainsPoint reports whether (px, py) lies inside r, edges included.
func (r Rect) ContainsPoint(px, py float64) bool {
	return px >= r.X && px <= r.MaxX() && py >= r.Y && py <= r.MaxY()
}

// ContainsCircle reports whether the circle lies fully inside r.
func (r Rect) ContainsCircle(cx, cy, radius float64) bool {
	return cx-radius >= r.X && cx+radius <= r.MaxX() &&
		cy-radius >= r.Y && cy+radius <= r.MaxY()
}

// IntersectsCircle reports whether the circle overlaps r at all, using
// the closest-point test.
func (r Rect) IntersectsCircle(cx, cy, radius float64) bool {
	nearX := vmath.Clamp(cx, r.X, r.MaxX())
	nearY := vmath.Clamp(cy, r.Y, r.MaxY())
	return vmath.DistanceSq(cx, cy, nearX, nearY) <= radius*radius
}
