package vmath

import "math"

// Magnitude returns vector length.
func Magnitude(x, y float64) float64 {
	return math.Sqrt(x*x + y*y)
}

// MagnitudeSq returns squared magnitude without sqrt, for comparisons.
func MagnitudeSq(x, y float64) float64 {
	return x*x + y*y
}

// DistanceSq returns the squared distance between points a and b.
func DistanceSq(ax, ay, bx, by float64) float64 {
	dx := bx - ax
	dy := by - ay
	return dx*dx + dy*dy
}

// DotProduct returns the dot product of two vectors.
func DotProduct(ax, ay, bx, by float64) float64 {
	return ax*bx + ay*by
}

// ClampMagnitude limits the vector to maxMag while preserving direction.
// Returns the vector unchanged if its magnitude is within the limit.
func ClampMagnitude(x, y, maxMag float64) (cx, cy float64) {
	sq := x*x + y*y
	if sq == 0 || sq <= maxMag*maxMag {
		return x, y
	}
	scale := maxMag / math.Sqrt(sq)
	return x * scale, y * scale
}
