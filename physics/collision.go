package physics

import (
	"math"

	"github.com/lixenwraith/orb-arena/parameter"
	"github.com/lixenwraith/orb-arena/vmath"
)

// ResolveCollision runs the narrow-phase test and response for one
// candidate pair. Every overlapping pair with a usable contact normal
// counts an impact on both bodies. Approaching pairs additionally
// exchange an equal-and-opposite impulse along the normal and are
// pushed apart by half the overlap plus a small pad; already-separating
// overlaps keep their velocities and positions. Treats the pair as
// equal-mass regardless of radii, matching the deliberately simplified
// response model. Pairs that are apart or coincident are left
// untouched. Returns true if an overlap was counted.
func ResolveCollision(a, b *Body) bool {
	dx := b.X - a.X
	dy := b.Y - a.Y
	distSq := dx*dx + dy*dy

	total := float64(a.radius + b.radius)
	if distSq >= total*total {
		return false
	}
	if distSq < parameter.MinSeparationSq {
		// No usable normal; the next tick's motion separates them.
		return false
	}

	dist := math.Sqrt(distSq)
	nx := dx / dist
	ny := dy / dist

	rvx := b.VX - a.VX
	rvy := b.VY - a.VY
	alongNormal := vmath.DotProduct(rvx, rvy, nx, ny)
	if alongNormal <= 0 {
		impulse := -alongNormal
		ix := impulse * nx
		iy := impulse * ny
		a.VX -= ix
		a.VY -= iy
		b.VX += ix
		b.VY += iy

		overlap := total - dist
		correction := overlap*0.5 + parameter.CorrectionPadding
		a.X -= nx * correction
		a.Y -= ny * correction
		b.X += nx * correction
		b.Y += ny * correction
	}

	a.RecordImpact()
	b.RecordImpact()
	return true
}
