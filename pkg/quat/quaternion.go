// Package quat implements quaternion algebra for 3D rotations:
// construction, normalization, spherical and linear interpolation,
// composition and Euler-angle conversion.
package quat

import "math"

const (
	degToRad = math.Pi / 180
	radToDeg = 180 / math.Pi
)

// Quaternion represents the rotation w + xi + yj + zk.
// The zero value is (0,0,0,0), which is not a valid rotation;
// use Identity for the no-rotation value.
//
// Most rotation operations assume unit quaternions but nothing enforces
// that, so denormalized values are legal intermediates (clamping,
// component-wise sums).
type Quaternion struct {
	X, Y, Z, W float64
}

// Identity returns the quaternion representing no rotation.
func Identity() Quaternion {
	return Quaternion{X: 0, Y: 0, Z: 0, W: 1}
}

// New returns the quaternion (x, y, z, w). All four components are
// required and set exactly as given: New(0, 1, 0, 0).W is 0, not the
// identity's 1.
func New(x, y, z, w float64) Quaternion {
	return Quaternion{X: x, Y: y, Z: z, W: w}
}

// Magnitude returns the length of q.
func (q Quaternion) Magnitude() float64 {
	return math.Sqrt(Dot(q, q))
}

// SqrMagnitude returns the squared length of q.
func (q Quaternion) SqrMagnitude() float64 {
	return Dot(q, q)
}

// MagnitudeSqrt returns the square root of the magnitude. It exists for
// compatibility with callers of the historical sqrMagnitude property,
// which computed sqrt(|q|) rather than |q|^2; use SqrMagnitude for the
// actual squared length.
func (q Quaternion) MagnitudeSqrt() float64 {
	return math.Sqrt(q.Magnitude())
}

// Normalized returns q scaled to unit length, or Identity when q has
// zero magnitude.
func (q Quaternion) Normalized() Quaternion {
	m := q.Magnitude()
	if m == 0 {
		return Identity()
	}
	return Quaternion{X: q.X / m, Y: q.Y / m, Z: q.Z / m, W: q.W / m}
}

// Conjugate returns (-x, -y, -z, w), the reverse rotation for unit q.
func (q Quaternion) Conjugate() Quaternion {
	return Quaternion{X: -q.X, Y: -q.Y, Z: -q.Z, W: q.W}
}

// Inverse returns the multiplicative inverse, the conjugate divided by
// the squared magnitude. Unlike Normalized there is no zero guard:
// inverting a zero quaternion yields Inf/NaN components.
func (q Quaternion) Inverse() Quaternion {
	m := q.SqrMagnitude()
	return Quaternion{X: -q.X / m, Y: -q.Y / m, Z: -q.Z / m, W: q.W / m}
}

// EulerAngles returns the rotation as Euler angles in degrees, Z-Y-X
// order (roll about X, pitch about Y, yaw about Z). The pitch operand is
// clamped to [-1, 1] before asin so floating-point overshoot near the
// gimbal-lock poles cannot produce NaN.
func (q Quaternion) EulerAngles() Vector3 {
	roll := math.Atan2(2*(q.W*q.X+q.Y*q.Z), 1-2*(q.X*q.X+q.Y*q.Y))

	sinPitch := 2 * (q.W*q.Y - q.Z*q.X)
	pitch := math.Asin(math.Max(-1, math.Min(sinPitch, 1)))

	yaw := math.Atan2(2*(q.W*q.Z+q.X*q.Y), 1-2*(q.Y*q.Y+q.Z*q.Z))

	return Vector3{X: roll * radToDeg, Y: pitch * radToDeg, Z: yaw * radToDeg}
}

// FromEuler returns the rotation described by Euler angles in degrees,
// the inverse convention of EulerAngles.
func FromEuler(e Vector3) Quaternion {
	cx := math.Cos(e.X * degToRad / 2)
	cy := math.Cos(e.Y * degToRad / 2)
	cz := math.Cos(e.Z * degToRad / 2)
	sx := math.Sin(e.X * degToRad / 2)
	sy := math.Sin(e.Y * degToRad / 2)
	sz := math.Sin(e.Z * degToRad / 2)

	return Quaternion{
		X: sx*cy*cz - cx*sy*sz,
		Y: cx*sy*cz + sx*cy*sz,
		Z: cx*cy*sz - sx*sy*cz,
		W: cx*cy*cz + sx*sy*sz,
	}
}

// FromAxisAngle returns the rotation of degrees around axis. axis
// should be a unit vector.
func FromAxisAngle(axis Vector3, degrees float64) Quaternion {
	half := degrees * degToRad / 2
	s := math.Sin(half)
	return Quaternion{
		X: axis.X * s,
		Y: axis.Y * s,
		Z: axis.Z * s,
		W: math.Cos(half),
	}
}

// Equal reports exact component-wise equality with other. No epsilon is
// applied; callers needing approximate comparison should compare
// Angle(q, other) or per-component deltas themselves.
func (q Quaternion) Equal(other Quaternion) bool {
	return q == other
}

// SetAdd adds other to q in place.
func (q *Quaternion) SetAdd(other Quaternion) {
	*q = Add(*q, other)
}

// SetSub subtracts other from q in place.
func (q *Quaternion) SetSub(other Quaternion) {
	*q = Sub(*q, other)
}

// SetMul replaces q with the Hamilton product q * other.
func (q *Quaternion) SetMul(other Quaternion) {
	*q = Mul(*q, other)
}

// SetDiv replaces q with q * other.Inverse().
func (q *Quaternion) SetDiv(other Quaternion) {
	*q = Div(*q, other)
}
