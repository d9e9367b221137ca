package physics

import (
	"testing"

	"github.com/lixenwraith/orb-arena/vmath"
)

func TestCapSpeed(t *testing.T) {
	t.Run("over_limit", func(t *testing.T) {
		k := &Kinetic{VX: 0.6, VY: 0.8}
		if !CapSpeed(k, 0.5) {
			t.Error("Expected clamp to occur")
		}
		if got := vmath.Magnitude(k.VX, k.VY); !near(got, 0.5) {
			t.Errorf("Expected speed 0.5, got %f", got)
		}
		if !near(k.VX/k.VY, 0.6/0.8) {
			t.Errorf("Expected heading preserved, got (%f, %f)", k.VX, k.VY)
		}
	})

	t.Run("under_limit", func(t *testing.T) {
		k := &Kinetic{VX: 0.1, VY: 0.1}
		if CapSpeed(k, 0.5) {
			t.Error("Expected no clamp")
		}
		if k.VX != 0.1 || k.VY != 0.1 {
			t.Errorf("Expected velocity unchanged, got (%f, %f)", k.VX, k.VY)
		}
	})

	t.Run("at_rest", func(t *testing.T) {
		k := &Kinetic{}
		if CapSpeed(k, 0.5) {
			t.Error("Expected no clamp on zero velocity")
		}
	})
}

func TestReflectBounds(t *testing.T) {
	tests := []struct {
		name       string
		k          Kinetic
		radius     float64
		expectedX  float64
		expectedY  float64
		expectedVX float64
		expectedVY float64
		hit        bool
	}{
		{
			name: "left_edge",
			k:    Kinetic{X: 5, Y: 200, VX: -0.1, VY: 0.05},
			radius: 10, expectedX: 10, expectedY: 200, expectedVX: 0.1, expectedVY: 0.05, hit: true,
		},
		{
			name: "right_edge",
			k:    Kinetic{X: 595, Y: 200, VX: 0.1, VY: 0},
			radius: 10, expectedX: 590, expectedY: 200, expectedVX: -0.1, expectedVY: 0, hit: true,
		},
		{
			name: "top_edge",
			k:    Kinetic{X: 300, Y: 3, VX: 0, VY: -0.2},
			radius: 10, expectedX: 300, expectedY: 10, expectedVX: 0, expectedVY: 0.2, hit: true,
		},
		{
			name: "bottom_edge",
			k:    Kinetic{X: 300, Y: 398, VX: 0, VY: 0.2},
			radius: 10, expectedX: 300, expectedY: 390, expectedVX: 0, expectedVY: -0.2, hit: true,
		},
		{
			name: "corner_both_axes",
			k:    Kinetic{X: 2, Y: 399, VX: -0.1, VY: 0.1},
			radius: 10, expectedX: 10, expectedY: 390, expectedVX: 0.1, expectedVY: -0.1, hit: true,
		},
		{
			name: "interior_untouched",
			k:    Kinetic{X: 300, Y: 200, VX: 0.1, VY: 0.1},
			radius: 10, expectedX: 300, expectedY: 200, expectedVX: 0.1, expectedVY: 0.1, hit: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k := tt.k
			hit := ReflectBounds(&k, tt.radius, 600, 400)
			if hit != tt.hit {
				t.Errorf("Expected hit=%v, got %v", tt.hit, hit)
			}
			if !near(k.X, tt.expectedX) || !near(k.Y, tt.expectedY) {
				t.Errorf("Expected position (%f, %f), got (%f, %f)", tt.expectedX, tt.expectedY, k.X, k.Y)
			}
			if !near(k.VX, tt.expectedVX) || !near(k.VY, tt.expectedVY) {
				t.Errorf("Expected velocity (%f, %f), got (%f, %f)", tt.expectedVX, tt.expectedVY, k.VX, k.VY)
			}
		})
	}
}

func TestReflectBoundsContainmentOverTime(t *testing.T) {
	k := &Kinetic{X: 50, Y: 50, VX: 0.37, VY: -0.29}
	const radius = 12.0

	for i := 0; i < 2000; i++ {
		Integrate(k, 16)
		ReflectBounds(k, radius, 600, 400)
		if k.X < radius || k.X > 600-radius || k.Y < radius || k.Y > 400-radius {
			t.Fatalf("Body escaped at tick %d: (%f, %f)", i, k.X, k.Y)
		}
	}
}
