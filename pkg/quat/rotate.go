package quat

// RotatePoint applies rotation to point using the expanded rotation
// matrix coefficients, avoiding both an explicit matrix value and a
// double quaternion multiply. rotation must be a unit quaternion; no
// normalization check is performed.
func RotatePoint(rotation Quaternion, point Vector3) Vector3 {
	x := rotation.X * 2
	y := rotation.Y * 2
	z := rotation.Z * 2
	xx := rotation.X * x
	yy := rotation.Y * y
	zz := rotation.Z * z
	xy := rotation.X * y
	xz := rotation.X * z
	yz := rotation.Y * z
	wx := rotation.W * x
	wy := rotation.W * y
	wz := rotation.W * z

	return Vector3{
		X: (1-(yy+zz))*point.X + (xy-wz)*point.Y + (xz+wy)*point.Z,
		Y: (xy+wz)*point.X + (1-(xx+zz))*point.Y + (yz-wx)*point.Z,
		Z: (xz-wy)*point.X + (yz+wx)*point.Y + (1-(xx+yy))*point.Z,
	}
}
