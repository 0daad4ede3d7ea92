package quat

import "math"

// Dot returns the four-component dot product of a and b.
func Dot(a, b Quaternion) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z + a.W*b.W
}

// Magnitude returns the length of q.
func Magnitude(q Quaternion) float64 {
	return q.Magnitude()
}

// Add returns the component-wise sum a + b.
func Add(a, b Quaternion) Quaternion {
	return Quaternion{X: a.X + b.X, Y: a.Y + b.Y, Z: a.Z + b.Z, W: a.W + b.W}
}

// Sub returns the component-wise difference a - b.
func Sub(a, b Quaternion) Quaternion {
	return Quaternion{X: a.X - b.X, Y: a.Y - b.Y, Z: a.Z - b.Z, W: a.W - b.W}
}

// Mul returns the Hamilton product lhs * rhs: the rotation rhs followed
// by lhs. Multiplication is not commutative.
func Mul(lhs, rhs Quaternion) Quaternion {
	return Quaternion{
		X: lhs.W*rhs.X + lhs.X*rhs.W + lhs.Y*rhs.Z - lhs.Z*rhs.Y,
		Y: lhs.W*rhs.Y + lhs.Y*rhs.W + lhs.Z*rhs.X - lhs.X*rhs.Z,
		Z: lhs.W*rhs.Z + lhs.Z*rhs.W + lhs.X*rhs.Y - lhs.Y*rhs.X,
		W: lhs.W*rhs.W - lhs.X*rhs.X - lhs.Y*rhs.Y - lhs.Z*rhs.Z,
	}
}

// Div returns lhs * rhs.Inverse().
func Div(lhs, rhs Quaternion) Quaternion {
	return Mul(lhs, rhs.Inverse())
}

// Equal reports exact component-wise equality of a and b.
func Equal(a, b Quaternion) bool {
	return a == b
}

// Negate returns the component-wise negation of q. For unit quaternions
// q and Negate(q) describe the same rotation.
func Negate(q Quaternion) Quaternion {
	return Quaternion{X: -q.X, Y: -q.Y, Z: -q.Z, W: -q.W}
}

// Angle returns the arc angle between from and to on the unit
// hypersphere, in degrees. Both operands must have non-zero magnitude;
// a zero operand yields NaN.
func Angle(from, to Quaternion) float64 {
	cos := Dot(from, to) / (from.Magnitude() * to.Magnitude())
	// acos would return NaN for a ratio pushed past ±1 by rounding.
	return math.Acos(math.Max(-1, math.Min(cos, 1))) * radToDeg
}

// ClampMagnitude returns q scaled uniformly so its magnitude does not
// exceed maxLength. Quaternions already within the limit are returned
// unchanged.
func ClampMagnitude(q Quaternion, maxLength float64) Quaternion {
	m := q.Magnitude()
	if m <= maxLength || m == 0 {
		return q
	}
	return scale(q, maxLength/m)
}

func scale(q Quaternion, s float64) Quaternion {
	return Quaternion{X: q.X * s, Y: q.Y * s, Z: q.Z * s, W: q.W * s}
}
