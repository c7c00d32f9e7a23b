package core

import "math"

// Quaternion represents a point in 4D space with components (w + xi + yj + zk).
// All operations return new values; quaternions are never mutated in place.
// Multiplication follows the Hamilton product and is NOT commutative: callers
// must respect operand order.
type Quaternion struct {
	W, X, Y, Z float64
}

// NewQuaternion creates a new quaternion
func NewQuaternion(w, x, y, z float64) Quaternion {
	return Quaternion{W: w, X: x, Y: y, Z: z}
}

// QuaternionFromVec3 lifts a 3D point into quaternion space with the given
// fourth coordinate as the real part's companion slice offset. The vector
// becomes the imaginary part; w becomes the real part.
func QuaternionFromVec3(v Vec3, w float64) Quaternion {
	return Quaternion{W: w, X: v.X, Y: v.Y, Z: v.Z}
}

// Imaginary returns the imaginary (i, j, k) part as a Vec3
func (q Quaternion) Imaginary() Vec3 {
	return Vec3{X: q.X, Y: q.Y, Z: q.Z}
}

// Add returns the component-wise sum of two quaternions
func (q Quaternion) Add(other Quaternion) Quaternion {
	return Quaternion{
		W: q.W + other.W,
		X: q.X + other.X,
		Y: q.Y + other.Y,
		Z: q.Z + other.Z,
	}
}

// Mul returns the Hamilton product q*other. The real parts combine as
// r1*r2 - dot(v1, v2); the vector part is r1*v2 + r2*v1 + cross(v1, v2).
func (q Quaternion) Mul(other Quaternion) Quaternion {
	v1, v2 := q.Imaginary(), other.Imaginary()
	w := q.W*other.W - v1.Dot(v2)
	vec := v2.Multiply(q.W).Add(v1.Multiply(other.W)).Add(v1.Cross(v2))
	return Quaternion{W: w, X: vec.X, Y: vec.Y, Z: vec.Z}
}

// Square returns q*q without the general-product cross term, since
// cross(v, v) = 0
func (q Quaternion) Square() Quaternion {
	v := q.Imaginary()
	return Quaternion{
		W: q.W*q.W - v.Dot(v),
		X: 2 * q.W * q.X,
		Y: 2 * q.W * q.Y,
		Z: 2 * q.W * q.Z,
	}
}

// SquaredNorm returns the dot product of the quaternion with itself
func (q Quaternion) SquaredNorm() float64 {
	return q.W*q.W + q.X*q.X + q.Y*q.Y + q.Z*q.Z
}

// Norm returns the Euclidean norm of the quaternion
func (q Quaternion) Norm() float64 {
	return math.Sqrt(q.SquaredNorm())
}

// Pow raises the quaternion to a real exponent using the polar decomposition:
// with n = |q|, phi = acos(w/n) and a unit axis from the imaginary part,
// q^x = n^x * (cos(x*phi) + axis*sin(x*phi)).
// A pure real quaternion has no defined axis; the i unit is used as the
// degenerate fallback direction so no NaN can propagate into the iteration.
func (q Quaternion) Pow(x float64) Quaternion {
	n := q.Norm()
	if n == 0 {
		return Quaternion{}
	}

	phi := math.Acos(max(-1, min(1, q.W/n)))
	axis := q.Imaginary()
	if axis.LengthSquared() == 0 {
		axis = Vec3{X: 1, Y: 0, Z: 0}
	} else {
		axis = axis.Normalize()
	}

	scale := math.Pow(n, x)
	vec := axis.Multiply(scale * math.Sin(x*phi))
	return Quaternion{W: scale * math.Cos(x*phi), X: vec.X, Y: vec.Y, Z: vec.Z}
}

// LeftMulMatrix returns the 4x4 matrix M such that M*p equals q*p for any
// quaternion p laid out as the column (w, x, y, z)
func (q Quaternion) LeftMulMatrix() Mat4 {
	return Mat4{
		{q.W, -q.X, -q.Y, -q.Z},
		{q.X, q.W, -q.Z, q.Y},
		{q.Y, q.Z, q.W, -q.X},
		{q.Z, -q.Y, q.X, q.W},
	}
}

// Mat4 represents a 4x4 matrix in row-major order, used to propagate the
// derivative of the fractal iteration through quaternion multiplication
type Mat4 [4][4]float64

// Mat4Identity returns the identity matrix
func Mat4Identity() Mat4 {
	return Mat4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Mul returns the matrix product m*other
func (m Mat4) Mul(other Mat4) Mat4 {
	var out Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			sum := 0.0
			for k := 0; k < 4; k++ {
				sum += m[i][k] * other[k][j]
			}
			out[i][j] = sum
		}
	}
	return out
}

// MulQuat applies the matrix to a quaternion laid out as the column
// (w, x, y, z)
func (m Mat4) MulQuat(q Quaternion) Quaternion {
	col := [4]float64{q.W, q.X, q.Y, q.Z}
	var out [4]float64
	for i := 0; i < 4; i++ {
		sum := 0.0
		for k := 0; k < 4; k++ {
			sum += m[i][k] * col[k]
		}
		out[i] = sum
	}
	return Quaternion{W: out[0], X: out[1], Y: out[2], Z: out[3]}
}
