package physics

// Kinetic holds the integrable state of a body. Positions are px,
// velocities px/ms, accelerations px/ms².
type Kinetic struct {
	X, Y   float64
	VX, VY float64
	AX, AY float64
}

// Integrate performs semi-implicit Euler integration: v = v + a*dt,
// then p = p + v*dt with the updated velocity.
func Integrate(k *Kinetic, dt float64) {
	k.VX += k.AX * dt
	k.VY += k.AY * dt
	k.X += k.VX * dt
	k.Y += k.VY * dt
}
