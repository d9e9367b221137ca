package physics

import "testing"

func TestRectContainsPoint(t *testing.T) {
	r := Rect{X: 150, Y: 100, W: 300, H: 200}

	tests := []struct {
		name     string
		px, py   float64
		expected bool
	}{
		{"center", 300, 200, true},
		{"left_edge", 150, 200, true},
		{"right_edge", 450, 200, true},
		{"top_edge", 300, 100, true},
		{"bottom_edge", 300, 300, true},
		{"outside_left", 149.9, 200, false},
		{"outside_below", 300, 300.1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.ContainsPoint(tt.px, tt.py); got != tt.expected {
				t.Errorf("ContainsPoint(%f, %f) = %v, expected %v", tt.px, tt.py, got, tt.expected)
			}
		})
	}
}

func TestRectContainsCircle(t *testing.T) {
	r := Rect{X: 150, Y: 100, W: 300, H: 200}

	if !r.ContainsCircle(300, 200, 50) {
		t.Error("Expected centered circle contained")
	}
	if r.ContainsCircle(160, 200, 50) {
		t.Error("Expected circle poking past the left edge rejected")
	}
	if !r.ContainsCircle(160, 200, 10) {
		t.Error("Expected circle exactly touching the left edge contained")
	}
}

func TestRectIntersectsCircle(t *testing.T) {
	r := Rect{X: 150, Y: 100, W: 300, H: 200}

	tests := []struct {
		name     string
		cx, cy   float64
		radius   float64
		expected bool
	}{
		{"inside", 300, 200, 10, true},
		{"overlapping_left_edge", 145, 200, 10, true},
		{"touching_left_edge", 140, 200, 10, true},
		{"clear_of_left_edge", 130, 200, 10, false},
		{"near_corner_hit", 145, 95, 10, true},
		{"near_corner_miss", 140, 90, 10, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.IntersectsCircle(tt.cx, tt.cy, tt.radius); got != tt.expected {
				t.Errorf("IntersectsCircle(%f, %f, %f) = %v, expected %v", tt.cx, tt.cy, tt.radius, got, tt.expected)
			}
		})
	}
}
