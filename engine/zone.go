package engine

import (
	"github.com/lixenwraith/orb-arena/parameter"
	"github.com/lixenwraith/orb-arena/physics"
	"github.com/lixenwraith/orb-arena/vmath"
)

// rectEdge identifies the zone edge a bounce resolves through.
type rectEdge uint8

const (
	edgeLeft rectEdge = iota
	edgeRight
	edgeTop
	edgeBottom
)

// ZoneTracker owns the capacity-limited rectangle inside the arena.
// While capacity remains, any body whose center crosses in is admitted
// as an occupant; once full, non-occupants overlapping the rectangle
// are bounced off its nearest edge. Occupancy follows admission order,
// so capacity cuts evict the newest occupants first.
//
// All methods run on the engine goroutine or under the engine mutex.
type ZoneTracker struct {
	explicit  *physics.Rect // nil means the ratio-derived default
	capacity  int
	occupants []*physics.Body
}

// NewZoneTracker creates a tracker with the given capacity, clamped to
// the minimum.
func NewZoneTracker(capacity int) *ZoneTracker {
	if capacity < parameter.ZoneMinCapacity {
		capacity = parameter.ZoneDefaultCapacity
	}
	return &ZoneTracker{capacity: capacity}
}

// Rect returns the active zone rectangle for the given arena size:
// the explicit rectangle when pinned, otherwise a centered rectangle
// derived from the arena by the configured ratios, with a size floor.
// An explicit rectangle is refitted into the arena on every read, so
// it survives later arena resizes.
func (z *ZoneTracker) Rect(arenaW, arenaH float64) physics.Rect {
	if z.explicit != nil {
		return fitIntoArena(*z.explicit, arenaW, arenaH)
	}
	w := arenaW * parameter.ZoneWidthRatio
	if w < parameter.ZoneMinSize {
		w = parameter.ZoneMinSize
	}
	h := arenaH * parameter.ZoneHeightRatio
	if h < parameter.ZoneMinSize {
		h = parameter.ZoneMinSize
	}
	return physics.Rect{X: (arenaW - w) / 2, Y: (arenaH - h) / 2, W: w, H: h}
}

// SetRect pins the zone to an explicit rectangle. Dimensions are
// clamped to the size floor; occupants outside the new rectangle fall
// out on the next update.
func (z *ZoneTracker) SetRect(r physics.Rect) {
	if r.W < parameter.ZoneMinSize {
		r.W = parameter.ZoneMinSize
	}
	if r.H < parameter.ZoneMinSize {
		r.H = parameter.ZoneMinSize
	}
	z.explicit = &r
}

// ClearRect returns the zone to the ratio-derived default.
func (z *ZoneTracker) ClearRect() {
	z.explicit = nil
}

// fitIntoArena shrinks r to the arena dimensions and slides its origin
// so the whole rectangle lies inside.
func fitIntoArena(r physics.Rect, width, height float64) physics.Rect {
	if r.W > width {
		r.W = width
	}
	if r.H > height {
		r.H = height
	}
	r.X = vmath.Clamp(r.X, 0, width-r.W)
	r.Y = vmath.Clamp(r.Y, 0, height-r.H)
	return r
}

// Capacity returns the occupant limit.
func (z *ZoneTracker) Capacity() int { return z.capacity }

// SetCapacity clamps n to the minimum and evicts the newest occupants
// while over the new limit.
func (z *ZoneTracker) SetCapacity(n int) {
	if n < parameter.ZoneMinCapacity {
		n = parameter.ZoneMinCapacity
	}
	z.capacity = n
	for len(z.occupants) > z.capacity {
		z.occupants = z.occupants[:len(z.occupants)-1]
	}
}

// OccupantCount returns the number of current occupants.
func (z *ZoneTracker) OccupantCount() int { return len(z.occupants) }

// IsOccupant reports whether b currently occupies the zone.
func (z *ZoneTracker) IsOccupant(b *physics.Body) bool {
	for _, occ := range z.occupants {
		if occ == b {
			return true
		}
	}
	return false
}

// Forget drops specific bodies from the occupant list, used when they
// leave the simulation entirely.
func (z *ZoneTracker) Forget(removed ...*physics.Body) {
	if len(z.occupants) == 0 {
		return
	}
	kept := z.occupants[:0]
	for _, occ := range z.occupants {
		dropped := false
		for _, r := range removed {
			if occ == r {
				dropped = true
				break
			}
		}
		if !dropped {
			kept = append(kept, occ)
		}
	}
	z.occupants = kept
}

// Reset clears all occupants.
func (z *ZoneTracker) Reset() {
	z.occupants = z.occupants[:0]
}

// Update runs one tick of zone bookkeeping: departures first, then a
// per-body pass that either admits (center inside, capacity left) or
// bounces (zone full, circle overlapping). Capacity is rechecked per
// body, so when several bodies cross in on the same tick exactly as
// many as fit become occupants. The hooks fire per affected body and
// may be nil.
func (z *ZoneTracker) Update(bodies []*physics.Body, arenaW, arenaH float64, admitted, bounced func(*physics.Body)) {
	rect := z.Rect(arenaW, arenaH)

	// Departures: occupants whose center has left.
	kept := z.occupants[:0]
	for _, occ := range z.occupants {
		if rect.ContainsPoint(occ.X, occ.Y) {
			kept = append(kept, occ)
		}
	}
	z.occupants = kept

	for _, b := range bodies {
		if z.IsOccupant(b) {
			continue
		}
		if len(z.occupants) < z.capacity {
			if rect.ContainsPoint(b.X, b.Y) {
				z.occupants = append(z.occupants, b)
				if admitted != nil {
					admitted(b)
				}
			}
			continue
		}
		if rect.IntersectsCircle(b.X, b.Y, float64(b.Radius())) {
			bounceOffRect(b, rect)
			if bounced != nil {
				bounced(b)
			}
		}
	}
}

// bounceOffRect ejects a circle overlapping rect through its
// shallowest edge: snap the center just outside and force the velocity
// component outward. Ties resolve in left, right, top, bottom order.
func bounceOffRect(b *physics.Body, rect physics.Rect) {
	r := float64(b.Radius())

	leftPen := b.X + r - rect.X
	rightPen := rect.MaxX() - (b.X - r)
	topPen := b.Y + r - rect.Y
	bottomPen := rect.MaxY() - (b.Y - r)

	pen := leftPen
	edge := edgeLeft
	if rightPen < pen {
		pen = rightPen
		edge = edgeRight
	}
	if topPen < pen {
		pen = topPen
		edge = edgeTop
	}
	if bottomPen < pen {
		edge = edgeBottom
	}

	switch edge {
	case edgeLeft:
		b.X = rect.X - r
		b.VX = -vmath.Abs(b.VX)
	case edgeRight:
		b.X = rect.MaxX() + r
		b.VX = vmath.Abs(b.VX)
	case edgeTop:
		b.Y = rect.Y - r
		b.VY = -vmath.Abs(b.VY)
	case edgeBottom:
		b.Y = rect.MaxY() + r
		b.VY = vmath.Abs(b.VY)
	}
}
