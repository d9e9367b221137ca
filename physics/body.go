package physics

import (
	"math"
	"sync/atomic"

	"github.com/lixenwraith/orb-arena/parameter"
	"github.com/lixenwraith/orb-arena/vmath"
)

// Color is an 8-bit RGB triple, decoupled from any render backend.
type Color struct {
	R, G, B uint8
}

// ColorDodgerBlue is the controlled body's fixed color.
var ColorDodgerBlue = Color{30, 144, 255}

// Direction identifies one steering axis half for the controlled body.
type Direction uint8

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Control carries the steering flags of a player-driven body. Flags
// are written by the input goroutine and read by the engine each tick,
// hence atomics.
type Control struct {
	up, down, left, right atomic.Bool
}

// Body is a circular simulation participant. Kinetic state is written
// only by the engine between ticks; radius, mass and color are fixed
// at construction. A non-nil ctrl marks the controlled variant.
type Body struct {
	Kinetic
	radius  int
	mass    float64
	color   Color
	impacts int
	ctrl    *Control
}

// NewBody spawns a passive body with a random radius. Placement,
// velocity and color follow the same randomization as explicit-radius
// spawns.
func NewBody(rng *vmath.FastRand, arenaW, arenaH float64, zone Rect) *Body {
	return NewBodyWithRadius(rng, rng.IntRange(parameter.BodyMinRadius, parameter.BodyMaxRadius), arenaW, arenaH, zone)
}

// NewBodyWithRadius spawns a passive body with a fixed radius (raised
// to 1 if smaller). Placement avoids positions fully inside the zone;
// when the attempts run out the body is parked just left of the zone.
// Speed is drawn in px/s and converted to px/ms; heading and color are
// uniform random.
func NewBodyWithRadius(rng *vmath.FastRand, radius int, arenaW, arenaH float64, zone Rect) *Body {
	if radius < 1 {
		radius = 1
	}
	r := float64(radius)

	var x, y float64
	placed := false
	for attempt := 0; attempt < parameter.SpawnAttemptLimit; attempt++ {
		x = randCoord(rng, r, arenaW)
		y = randCoord(rng, r, arenaH)
		if !zone.ContainsCircle(x, y, r) {
			placed = true
			break
		}
	}
	if !placed {
		x = zone.X - r - parameter.SpawnFallbackGap
		if x < r {
			x = r
		}
		y = randCoord(rng, r, arenaH)
	}

	speed := rng.FloatRange(parameter.BodySpeedMin, parameter.BodySpeedMax) / parameter.MillisPerSecond
	angle := rng.Float64() * 2 * math.Pi

	b := &Body{
		radius: radius,
		mass:   r * r,
		color: Color{
			R: uint8(rng.IntRange(parameter.ColorChannelMin, parameter.ColorChannelMax)),
			G: uint8(rng.IntRange(parameter.ColorChannelMin, parameter.ColorChannelMax)),
			B: uint8(rng.IntRange(parameter.ColorChannelMin, parameter.ColorChannelMax)),
		},
	}
	b.X, b.Y = x, y
	b.VX = speed * math.Cos(angle)
	b.VY = speed * math.Sin(angle)
	return b
}

// randCoord draws a center coordinate keeping the circle inside
// [radius, limit-radius]. Degenerate arenas collapse to radius; the
// wall pass sorts the rest out on the next tick.
func randCoord(rng *vmath.FastRand, radius, limit float64) float64 {
	span := limit - 2*radius
	if span <= 0 {
		return radius
	}
	return radius + rng.Float64()*span
}

// NewControlledBody creates the player body: fixed radius, centered in
// the arena, at rest, DodgerBlue.
func NewControlledBody(arenaW, arenaH float64) *Body {
	b := &Body{
		radius: parameter.ControlRadius,
		mass:   float64(parameter.ControlRadius * parameter.ControlRadius),
		color:  ColorDodgerBlue,
		ctrl:   &Control{},
	}
	b.X = arenaW / 2
	b.Y = arenaH / 2
	return b
}

// Radius returns the body radius in px.
func (b *Body) Radius() int { return b.radius }

// Mass returns the collision mass (radius squared).
func (b *Body) Mass() float64 { return b.mass }

// Color returns the display color.
func (b *Body) Color() Color { return b.color }

// Controlled reports whether this is the player-driven variant.
func (b *Body) Controlled() bool { return b.ctrl != nil }

// Impacts returns the accumulated impact count. Engine-thread only.
func (b *Body) Impacts() int { return b.impacts }

// RecordImpact bumps the impact counter and returns the new count.
// Engine-thread only.
func (b *Body) RecordImpact() int {
	b.impacts++
	return b.impacts
}

// ApplyImpulse adds an instantaneous momentum change, scaled down by
// the body's mass.
func (b *Body) ApplyImpulse(ix, iy float64) {
	if b.mass <= 0 {
		return
	}
	b.VX += ix / b.mass
	b.VY += iy / b.mass
}

// SetDirection updates one steering flag. No-op on passive bodies.
func (b *Body) SetDirection(d Direction, pressed bool) {
	if b.ctrl == nil {
		return
	}
	switch d {
	case DirUp:
		b.ctrl.up.Store(pressed)
	case DirDown:
		b.ctrl.down.Store(pressed)
	case DirLeft:
		b.ctrl.left.Store(pressed)
	case DirRight:
		b.ctrl.right.Store(pressed)
	}
}

// DirectionHeld reports the current state of one steering flag.
// Always false on passive bodies.
func (b *Body) DirectionHeld(d Direction) bool {
	if b.ctrl == nil {
		return false
	}
	switch d {
	case DirUp:
		return b.ctrl.up.Load()
	case DirDown:
		return b.ctrl.down.Load()
	case DirLeft:
		return b.ctrl.left.Load()
	case DirRight:
		return b.ctrl.right.Load()
	}
	return false
}

// ClearDirections releases all steering flags.
func (b *Body) ClearDirections() {
	if b.ctrl == nil {
		return
	}
	b.ctrl.up.Store(false)
	b.ctrl.down.Store(false)
	b.ctrl.left.Store(false)
	b.ctrl.right.Store(false)
}

// Step advances the body one tick. Passive bodies integrate their
// standing velocity and acceleration. Controlled bodies derive
// acceleration from the steering flags (opposing flags cancel), clamp
// speed, and bleed velocity through friction only while no flag is
// held.
func (b *Body) Step(dt float64) {
	if b.ctrl == nil {
		Integrate(&b.Kinetic, dt)
		return
	}

	ax, ay := 0.0, 0.0
	held := false
	if b.ctrl.up.Load() {
		ay -= parameter.ControlAccel
		held = true
	}
	if b.ctrl.down.Load() {
		ay += parameter.ControlAccel
		held = true
	}
	if b.ctrl.left.Load() {
		ax -= parameter.ControlAccel
		held = true
	}
	if b.ctrl.right.Load() {
		ax += parameter.ControlAccel
		held = true
	}
	b.AX, b.AY = ax, ay

	Integrate(&b.Kinetic, dt)
	CapSpeed(&b.Kinetic, parameter.ControlMaxSpeed)

	if !held {
		b.VX *= parameter.ControlIdleFriction
		b.VY *= parameter.ControlIdleFriction
	}
}
