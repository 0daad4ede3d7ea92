package quat

import "math"

// Above this dot product the inputs are nearly parallel and the
// orthogonal component of to has near-zero length, so normalizing it
// loses precision; fall back to normalized linear interpolation.
const nlerpThreshold = 0.9995

// Slerp spherically interpolates between from and to by t, clamped to
// [0, 1]: t <= 0 yields from and t >= 1 yields to. For unit inputs the
// result is a unit quaternion on the shortest geodesic arc between them.
func Slerp(from, to Quaternion, t float64) Quaternion {
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return doSlerp(from, to, t)
}

// SlerpUnclamped is Slerp without clamping t: values outside [0, 1]
// extrapolate along the geodesic past the endpoints.
func SlerpUnclamped(from, to Quaternion, t float64) Quaternion {
	return doSlerp(from, to, t)
}

func doSlerp(from, to Quaternion, t float64) Quaternion {
	dot := Dot(from, to)

	// q and -q are the same rotation; flip so the path takes the
	// shorter of the two arcs.
	if dot < 0 {
		to = Negate(to)
		dot = -dot
	}

	if dot > nlerpThreshold {
		return Add(from, scale(Sub(to, from), t)).Normalized()
	}

	theta0 := math.Acos(dot)
	theta := theta0 * t

	// Gram-Schmidt: the component of to orthogonal to from.
	ortho := Sub(to, scale(from, dot)).Normalized()

	return Add(scale(from, math.Cos(theta)), scale(ortho, math.Sin(theta)))
}

// Lerp linearly interpolates between a and b by t, clamped to [0, 1],
// and normalizes the result. Cheaper than Slerp but the angular
// velocity is not constant; the short arc is still taken.
func Lerp(a, b Quaternion, t float64) Quaternion {
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return LerpUnclamped(a, b, t)
}

// LerpUnclamped is Lerp without clamping t.
func LerpUnclamped(a, b Quaternion, t float64) Quaternion {
	if Dot(a, b) < 0 {
		b = Negate(b)
	}
	return Add(a, scale(Sub(b, a), t)).Normalized()
}

// RotateTowards moves from toward to by at most maxDegreesDelta degrees
// of arc. When the remaining angle is zero it returns to unchanged.
func RotateTowards(from, to Quaternion, maxDegreesDelta float64) Quaternion {
	angle := Angle(from, to)
	if angle == 0 {
		return to
	}
	return SlerpUnclamped(from, to, math.Min(1, maxDegreesDelta/angle))
}
