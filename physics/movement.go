package physics

import (
	"github.com/lixenwraith/orb-arena/vmath"
)

// CapSpeed limits the velocity magnitude of k to maxSpeed, preserving
// heading. Returns true if velocity was clamped.
func CapSpeed(k *Kinetic, maxSpeed float64) bool {
	if vmath.MagnitudeSq(k.VX, k.VY) <= maxSpeed*maxSpeed {
		return false
	}
	k.VX, k.VY = vmath.ClampMagnitude(k.VX, k.VY, maxSpeed)
	return true
}

// ReflectBounds bounces a circle of the given radius off the arena
// edges: the center is clamped back to the valid range on the violated
// axis and that velocity component is negated. Returns true if any
// edge was hit.
func ReflectBounds(k *Kinetic, radius, width, height float64) bool {
	hit := false
	if k.X-radius < 0 {
		k.X = radius
		k.VX = -k.VX
		hit = true
	} else if k.X+radius > width {
		k.X = width - radius
		k.VX = -k.VX
		hit = true
	}
	if k.Y-radius < 0 {
		k.Y = radius
		k.VY = -k.VY
		hit = true
	} else if k.Y+radius > height {
		k.Y = height - radius
		k.VY = -k.VY
		hit = true
	}
	return hit
}
