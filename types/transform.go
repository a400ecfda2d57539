package types

import "math"

// Mat3 is a 3x3 matrix stored in row-major order.
type Mat3 [9]float32

// Create the identity matrix.
func Mat3Ident() Mat3 {
	return Mat3{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// Create a rotation matrix around the X axis. The angle is given in radians.
func RotX(angle float32) Mat3 {
	sin := float32(math.Sin(float64(angle)))
	cos := float32(math.Cos(float64(angle)))
	return Mat3{
		1, 0, 0,
		0, cos, -sin,
		0, sin, cos,
	}
}

// Create a rotation matrix around the Z axis. The angle is given in radians.
func RotZ(angle float32) Mat3 {
	sin := float32(math.Sin(float64(angle)))
	cos := float32(math.Cos(float64(angle)))
	return Mat3{
		cos, -sin, 0,
		sin, cos, 0,
		0, 0, 1,
	}
}

// Multiply two matrices.
func (m Mat3) Mul(m2 Mat3) Mat3 {
	var out Mat3
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			out[row*3+col] = m[row*3]*m2[col] + m[row*3+1]*m2[3+col] + m[row*3+2]*m2[6+col]
		}
	}
	return out
}

// Multiply the matrix with a vector.
func (m Mat3) MulVec(v Vec3) Vec3 {
	return Vec3{
		m[0]*v[0] + m[1]*v[1] + m[2]*v[2],
		m[3]*v[0] + m[4]*v[1] + m[5]*v[2],
		m[6]*v[0] + m[7]*v[1] + m[8]*v[2],
	}
}

// Transpose the matrix. For pure rotations this is also the inverse.
func (m Mat3) Transpose() Mat3 {
	return Mat3{
		m[0], m[3], m[6],
		m[1], m[4], m[7],
		m[2], m[5], m[8],
	}
}

// Transform is a direct isometry (rotation followed by translation). It maps
// local coordinates to global ones; points are rotated and translated while
// free vectors are only rotated, so parametric distances along a ray are
// preserved.
type Transform struct {
	Rot   Mat3
	Trans Vec3
}

// Create a transform from a rotation and a translation.
func NewTransform(rot Mat3, trans Vec3) Transform {
	return Transform{Rot: rot, Trans: trans}
}

// Apply the transform to a point.
func (t Transform) ApplyPoint(p Vec3) Vec3 {
	return t.Rot.MulVec(p).Add(t.Trans)
}

// Apply the transform to a free vector (no translation).
func (t Transform) ApplyVector(v Vec3) Vec3 {
	return t.Rot.MulVec(v)
}

// Compose two transforms; the receiver is applied last.
func (t Transform) Mul(t2 Transform) Transform {
	return Transform{
		Rot:   t.Rot.Mul(t2.Rot),
		Trans: t.Rot.MulVec(t2.Trans).Add(t.Trans),
	}
}

// Invert the isometry: R^T, -R^T * t.
func (t Transform) Inverse() Transform {
	rt := t.Rot.Transpose()
	return Transform{
		Rot:   rt,
		Trans: rt.MulVec(t.Trans).Mul(-1),
	}
}

// Transform2 is a direct isometry on the plane.
type Transform2 struct {
	Cos, Sin float32
	Trans    Vec2
}

// Create the 2D isometry that rotates the X axis onto the direction of dir
// and then translates by trans.
func NewTransform2(dir Vec2, trans Vec2) Transform2 {
	l := dir.Len()
	if l < floatCmpEpsilon {
		return Transform2{Cos: 1, Sin: 0, Trans: trans}
	}
	return Transform2{Cos: dir[0] / l, Sin: dir[1] / l, Trans: trans}
}

// Apply the transform to a 2D point.
func (t Transform2) Apply(p Vec2) Vec2 {
	return Vec2{
		t.Cos*p[0] - t.Sin*p[1] + t.Trans[0],
		t.Sin*p[0] + t.Cos*p[1] + t.Trans[1],
	}
}
