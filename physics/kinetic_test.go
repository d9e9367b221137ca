package physics

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func near(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestIntegrateConstantVelocity(t *testing.T) {
	k := &Kinetic{X: 100, Y: 100, VX: 0.1, VY: 0}

	Integrate(k, 16)

	if !near(k.X, 101.6) || !near(k.Y, 100) {
		t.Errorf("Expected position (101.6, 100), got (%f, %f)", k.X, k.Y)
	}
	if !near(k.VX, 0.1) || !near(k.VY, 0) {
		t.Errorf("Expected velocity unchanged, got (%f, %f)", k.VX, k.VY)
	}
}

func TestIntegrateSemiImplicitOrder(t *testing.T) {
	// Velocity must update before position: with v0=0 and a=0.001,
	// one 16ms step moves by (a*dt)*dt = 0.256, not the explicit-Euler 0.
	k := &Kinetic{AX: 0.001}

	Integrate(k, 16)

	if !near(k.VX, 0.016) {
		t.Errorf("Expected velocity 0.016, got %f", k.VX)
	}
	if !near(k.X, 0.256) {
		t.Errorf("Expected position 0.256 (updated velocity applied), got %f", k.X)
	}
}

func TestIntegrateDeterminism(t *testing.T) {
	a := &Kinetic{X: 3, Y: 7, VX: 0.05, VY: -0.02, AX: 0.0001, AY: 0.0002}
	b := *a

	for i := 0; i < 1000; i++ {
		Integrate(a, 16)
		Integrate(&b, 16)
	}

	if a.X != b.X || a.Y != b.Y || a.VX != b.VX || a.VY != b.VY {
		t.Error("Identical inputs diverged over repeated integration")
	}
}
