package core

import "math"

// Mat3 represents a 3x3 matrix stored as three column vectors.
// Camera bases built from the rotation constructors are proper rotations:
// columns are mutually orthogonal unit vectors.
type Mat3 struct {
	C0, C1, C2 Vec3
}

// NewMat3FromColumns creates a matrix from three column vectors
func NewMat3FromColumns(c0, c1, c2 Vec3) Mat3 {
	return Mat3{C0: c0, C1: c1, C2: c2}
}

// Mat3Identity returns the identity matrix
func Mat3Identity() Mat3 {
	return Mat3{
		C0: Vec3{1, 0, 0},
		C1: Vec3{0, 1, 0},
		C2: Vec3{0, 0, 1},
	}
}

// RotationX returns the rotation matrix around the x axis by angle radians
func RotationX(angle float64) Mat3 {
	cos, sin := math.Cos(angle), math.Sin(angle)
	return Mat3{
		C0: Vec3{1, 0, 0},
		C1: Vec3{0, cos, sin},
		C2: Vec3{0, -sin, cos},
	}
}

// RotationY returns the rotation matrix around the y axis by angle radians
func RotationY(angle float64) Mat3 {
	cos, sin := math.Cos(angle), math.Sin(angle)
	return Mat3{
		C0: Vec3{cos, 0, -sin},
		C1: Vec3{0, 1, 0},
		C2: Vec3{sin, 0, cos},
	}
}

// RotationZ returns the rotation matrix around the z axis by angle radians
func RotationZ(angle float64) Mat3 {
	cos, sin := math.Cos(angle), math.Sin(angle)
	return Mat3{
		C0: Vec3{cos, sin, 0},
		C1: Vec3{-sin, cos, 0},
		C2: Vec3{0, 0, 1},
	}
}

// rows returns the three row vectors of the matrix
func (m Mat3) rows() (Vec3, Vec3, Vec3) {
	return Vec3{m.C0.X, m.C1.X, m.C2.X},
		Vec3{m.C0.Y, m.C1.Y, m.C2.Y},
		Vec3{m.C0.Z, m.C1.Z, m.C2.Z}
}

// MulVec returns the matrix-vector product m*v
func (m Mat3) MulVec(v Vec3) Vec3 {
	r0, r1, r2 := m.rows()
	return Vec3{r0.Dot(v), r1.Dot(v), r2.Dot(v)}
}

// Mul returns the matrix product m*other
func (m Mat3) Mul(other Mat3) Mat3 {
	return Mat3{
		C0: m.MulVec(other.C0),
		C1: m.MulVec(other.C1),
		C2: m.MulVec(other.C2),
	}
}

// Transpose returns the transposed matrix
func (m Mat3) Transpose() Mat3 {
	r0, r1, r2 := m.rows()
	return Mat3{C0: r0, C1: r1, C2: r2}
}
