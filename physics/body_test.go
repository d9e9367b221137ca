package physics

import (
	"testing"

	"github.com/lixenwraith/orb-arena/parameter"
	"github.com/lixenwraith/orb-arena/vmath"
)

func TestNewBodySpawnRanges(t *testing.T) {
	rng := vmath.NewFastRand(99)
	zone := Rect{X: 150, Y: 100, W: 300, H: 200}

	for i := 0; i < 200; i++ {
		b := NewBody(rng, 600, 400, zone)

		if b.Radius() < parameter.BodyMinRadius || b.Radius() >= parameter.BodyMaxRadius {
			t.Fatalf("Radius %d out of [%d, %d)", b.Radius(), parameter.BodyMinRadius, parameter.BodyMaxRadius)
		}
		if b.Mass() != float64(b.Radius()*b.Radius()) {
			t.Fatalf("Expected mass %d, got %f", b.Radius()*b.Radius(), b.Mass())
		}

		speed := vmath.Magnitude(b.VX, b.VY)
		if speed < 0.06-1e-9 || speed >= 0.18 {
			t.Fatalf("Speed %f px/ms out of [0.06, 0.18)", speed)
		}

		for name, ch := range map[string]uint8{"R": b.Color().R, "G": b.Color().G, "B": b.Color().B} {
			if int(ch) < parameter.ColorChannelMin || int(ch) >= parameter.ColorChannelMax {
				t.Fatalf("Channel %s=%d out of [%d, %d)", name, ch, parameter.ColorChannelMin, parameter.ColorChannelMax)
			}
		}

		if b.Controlled() {
			t.Fatal("Random spawn must be passive")
		}
		if b.Impacts() != 0 {
			t.Fatal("New body must start with zero impacts")
		}
	}
}

func TestNewBodyAvoidsZoneInterior(t *testing.T) {
	rng := vmath.NewFastRand(7)
	zone := Rect{X: 150, Y: 100, W: 300, H: 200}

	for i := 0; i < 200; i++ {
		b := NewBody(rng, 600, 400, zone)
		if zone.ContainsCircle(b.X, b.Y, float64(b.Radius())) {
			t.Fatalf("Body spawned fully inside the zone at (%f, %f)", b.X, b.Y)
		}
	}
}

func TestNewBodyFallbackPlacement(t *testing.T) {
	rng := vmath.NewFastRand(13)
	// Zone covering the whole arena forces every attempt to fail.
	zone := Rect{X: 0, Y: 0, W: 600, H: 400}

	b := NewBodyWithRadius(rng, 10, 600, 400, zone)

	// Fallback parks left of the zone, clamped to stay in the arena.
	expectedX := zone.X - 10 - parameter.SpawnFallbackGap
	if expectedX < 10 {
		expectedX = 10
	}
	if !near(b.X, expectedX) {
		t.Errorf("Expected fallback x=%f, got %f", expectedX, b.X)
	}
}

func TestNewBodyWithRadiusClampsToOne(t *testing.T) {
	rng := vmath.NewFastRand(5)
	zone := Rect{X: 150, Y: 100, W: 300, H: 200}

	for _, radius := range []int{0, -3} {
		b := NewBodyWithRadius(rng, radius, 600, 400, zone)
		if b.Radius() != 1 {
			t.Errorf("Expected radius clamped to 1, got %d", b.Radius())
		}
		if b.Mass() != 1 {
			t.Errorf("Expected mass 1, got %f", b.Mass())
		}
	}
}

func TestNewControlledBody(t *testing.T) {
	b := NewControlledBody(600, 400)

	if !b.Controlled() {
		t.Fatal("Expected controlled variant")
	}
	if b.Radius() != parameter.ControlRadius {
		t.Errorf("Expected radius %d, got %d", parameter.ControlRadius, b.Radius())
	}
	if b.X != 300 || b.Y != 200 {
		t.Errorf("Expected centered at (300, 200), got (%f, %f)", b.X, b.Y)
	}
	if b.VX != 0 || b.VY != 0 {
		t.Errorf("Expected at rest, got (%f, %f)", b.VX, b.VY)
	}
	if b.Color() != ColorDodgerBlue {
		t.Errorf("Expected DodgerBlue, got %+v", b.Color())
	}
}

func TestControlledStepAccelerates(t *testing.T) {
	b := NewControlledBody(600, 400)
	b.SetDirection(DirRight, true)

	b.Step(16)

	if !near(b.VX, parameter.ControlAccel*16) {
		t.Errorf("Expected VX %f, got %f", parameter.ControlAccel*16, b.VX)
	}
	if b.VY != 0 {
		t.Errorf("Expected VY 0, got %f", b.VY)
	}
	if b.X <= 300 {
		t.Errorf("Expected rightward movement, got x=%f", b.X)
	}
}

func TestControlledStepOpposingFlagsCancel(t *testing.T) {
	b := NewControlledBody(600, 400)
	b.VX = 0.1
	b.SetDirection(DirLeft, true)
	b.SetDirection(DirRight, true)

	b.Step(16)

	// Flags cancel to zero acceleration, but holding them suppresses
	// idle friction.
	if !near(b.VX, 0.1) {
		t.Errorf("Expected velocity 0.1 (no accel, no friction), got %f", b.VX)
	}
}

func TestControlledStepSpeedCap(t *testing.T) {
	b := NewControlledBody(600, 400)
	b.SetDirection(DirRight, true)

	// Far more ticks than needed to reach the cap.
	for i := 0; i < 200; i++ {
		b.Step(16)
	}

	speed := vmath.Magnitude(b.VX, b.VY)
	if speed > parameter.ControlMaxSpeed+1e-9 {
		t.Errorf("Expected speed capped at %f, got %f", parameter.ControlMaxSpeed, speed)
	}
	if !near(speed, parameter.ControlMaxSpeed) {
		t.Errorf("Expected sustained input to hold the cap, got %f", speed)
	}
}

func TestControlledStepIdleFriction(t *testing.T) {
	b := NewControlledBody(600, 400)
	b.VX = 0.2

	b.Step(16)

	if !near(b.VX, 0.2*parameter.ControlIdleFriction) {
		t.Errorf("Expected friction-scaled velocity %f, got %f", 0.2*parameter.ControlIdleFriction, b.VX)
	}

	// Velocity decays toward rest but never flips sign.
	for i := 0; i < 500; i++ {
		b.Step(16)
		if b.VX < 0 {
			t.Fatal("Friction must not reverse direction")
		}
	}
	if b.VX > 0.001 {
		t.Errorf("Expected velocity to decay near zero, got %f", b.VX)
	}
}

func TestPassiveBodyIgnoresDirections(t *testing.T) {
	rng := vmath.NewFastRand(21)
	zone := Rect{X: 150, Y: 100, W: 300, H: 200}
	b := NewBodyWithRadius(rng, 10, 600, 400, zone)

	b.SetDirection(DirUp, true)
	if b.DirectionHeld(DirUp) {
		t.Error("Passive body must not report held directions")
	}
}

func TestClearDirections(t *testing.T) {
	b := NewControlledBody(600, 400)
	b.SetDirection(DirUp, true)
	b.SetDirection(DirLeft, true)

	b.ClearDirections()

	for _, d := range []Direction{DirUp, DirDown, DirLeft, DirRight} {
		if b.DirectionHeld(d) {
			t.Errorf("Expected direction %d released", d)
		}
	}
}

func TestApplyImpulseDividesByMass(t *testing.T) {
	rng := vmath.NewFastRand(31)
	zone := Rect{X: 150, Y: 100, W: 300, H: 200}
	b := NewBodyWithRadius(rng, 10, 600, 400, zone)
	b.VX, b.VY = 0, 0

	b.ApplyImpulse(50, -25)

	// mass = 100
	if !near(b.VX, 0.5) || !near(b.VY, -0.25) {
		t.Errorf("Expected velocity (0.5, -0.25), got (%f, %f)", b.VX, b.VY)
	}
}
