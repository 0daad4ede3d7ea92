package quat

import "math"

// Vector3 is the 3-component vector used for Euler angles and rotated
// points.
type Vector3 struct {
	X, Y, Z float64
}

// NewVector3 returns the vector (x, y, z).
func NewVector3(x, y, z float64) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

// Length returns the magnitude of v.
func (v Vector3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}
