package quat

import (
	"math"
	"testing"
)

func vecAlmostEqual(a, b Vector3, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol &&
		math.Abs(a.Y-b.Y) <= tol &&
		math.Abs(a.Z-b.Z) <= tol
}

func TestRotatePointIdentity(t *testing.T) {
	p := NewVector3(1, 0, 0)
	got := RotatePoint(Identity(), p)
	if got != p {
		t.Errorf("RotatePoint(identity, %v) = %v, want unchanged", p, got)
	}
}

func TestRotatePointKnownRotations(t *testing.T) {
	for _, tt := range []struct {
		name  string
		euler Vector3
		point Vector3
		want  Vector3
	}{
		{"90 about Z", Vector3{Z: 90}, Vector3{X: 1}, Vector3{Y: 1}},
		{"180 about Z", Vector3{Z: 180}, Vector3{X: 1}, Vector3{X: -1}},
		{"90 about X", Vector3{X: 90}, Vector3{Y: 1}, Vector3{Z: 1}},
		{"90 about Y", Vector3{Y: 90}, Vector3{Z: 1}, Vector3{X: 1}},
	} {
		q := FromEuler(tt.euler)
		got := RotatePoint(q, tt.point)
		if !vecAlmostEqual(got, tt.want, 1e-12) {
			t.Errorf("%s: RotatePoint = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestRotatePointPreservesLength(t *testing.T) {
	q := FromEuler(Vector3{X: 33, Y: -71, Z: 140})
	for _, p := range []Vector3{
		{X: 1, Y: 2, Z: 3},
		{X: -4, Y: 0.5, Z: 0},
		{X: 0, Y: 0, Z: 0},
		{X: 1e6, Y: -2e6, Z: 3e6},
	} {
		got := RotatePoint(q, p)
		if math.Abs(got.Length()-p.Length()) > 1e-9*math.Max(1, p.Length()) {
			t.Errorf("|RotatePoint(q, %v)| = %v, want %v", p, got.Length(), p.Length())
		}
	}
}

func TestRotatePointMatchesQuaternionSandwich(t *testing.T) {
	// The expanded-matrix form must agree with q * p * q^-1.
	q := FromEuler(Vector3{X: 25, Y: 95, Z: -60})
	p := Vector3{X: 3, Y: -2, Z: 5}

	pq := Quaternion{X: p.X, Y: p.Y, Z: p.Z, W: 0}
	r := Mul(Mul(q, pq), q.Inverse())
	want := Vector3{X: r.X, Y: r.Y, Z: r.Z}

	got := RotatePoint(q, p)
	if !vecAlmostEqual(got, want, 1e-12) {
		t.Errorf("RotatePoint = %v, want %v from the sandwich product", got, want)
	}
}
