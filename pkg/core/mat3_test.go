package core

import (
	"math"
	"testing"
)

func mat3Close(a, b Mat3, tolerance float64) bool {
	return a.C0.Subtract(b.C0).Length() <= tolerance &&
		a.C1.Subtract(b.C1).Length() <= tolerance &&
		a.C2.Subtract(b.C2).Length() <= tolerance
}

func TestMat3_RotationConstructors(t *testing.T) {
	tests := []struct {
		name     string
		matrix   Mat3
		expected Mat3
	}{
		{
			name:   "x rotation by pi/2",
			matrix: RotationX(math.Pi / 2),
			expected: NewMat3FromColumns(
				NewVec3(1, 0, 0), NewVec3(0, 0, 1), NewVec3(0, -1, 0)),
		},
		{
			name:   "x rotation by pi",
			matrix: RotationX(math.Pi),
			expected: NewMat3FromColumns(
				NewVec3(1, 0, 0), NewVec3(0, -1, 0), NewVec3(0, 0, -1)),
		},
		{
			name:   "y rotation by pi/2",
			matrix: RotationY(math.Pi / 2),
			expected: NewMat3FromColumns(
				NewVec3(0, 0, -1), NewVec3(0, 1, 0), NewVec3(1, 0, 0)),
		},
		{
			name:   "z rotation by pi/2",
			matrix: RotationZ(math.Pi / 2),
			expected: NewMat3FromColumns(
				NewVec3(0, 1, 0), NewVec3(-1, 0, 0), NewVec3(0, 0, 1)),
		},
		{
			name:   "z rotation by pi",
			matrix: RotationZ(math.Pi),
			expected: NewMat3FromColumns(
				NewVec3(-1, 0, 0), NewVec3(0, -1, 0), NewVec3(0, 0, 1)),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !mat3Close(tt.matrix, tt.expected, 1e-9) {
				t.Errorf("Expected %v, got %v", tt.expected, tt.matrix)
			}
		})
	}
}

func TestMat3_MulVec(t *testing.T) {
	if got := Mat3Identity().MulVec(NewVec3(1, 2, 3)); got.Subtract(NewVec3(1, 2, 3)).Length() > 1e-9 {
		t.Errorf("Identity: expected (1,2,3), got %v", got)
	}

	m := NewMat3FromColumns(NewVec3(1, 2, 3), NewVec3(4, 5, 6), NewVec3(7, 8, 9))
	if got := m.MulVec(NewVec3(1, 2, 3)); got.Subtract(NewVec3(30, 36, 42)).Length() > 1e-9 {
		t.Errorf("Expected (30,36,42), got %v", got)
	}
}

func TestMat3_Mul(t *testing.T) {
	m := NewMat3FromColumns(NewVec3(1, 2, 3), NewVec3(4, 5, 6), NewVec3(7, 8, 9))

	if got := m.Mul(Mat3Identity()); !mat3Close(got, m, 1e-9) {
		t.Errorf("Expected m*I == m, got %v", got)
	}

	expected := NewMat3FromColumns(NewVec3(30, 36, 42), NewVec3(66, 81, 96), NewVec3(102, 126, 150))
	if got := m.Mul(m); !mat3Close(got, expected, 1e-9) {
		t.Errorf("Expected %v, got %v", expected, got)
	}
}

func TestMat3_RotationsAreOrthonormal(t *testing.T) {
	basis := RotationZ(0.7).Mul(RotationY(-0.4))

	const tolerance = 1e-9
	for i, col := range []Vec3{basis.C0, basis.C1, basis.C2} {
		if math.Abs(col.Length()-1.0) > tolerance {
			t.Errorf("Column %d is not unit length: %f", i, col.Length())
		}
	}
	if math.Abs(basis.C0.Dot(basis.C1)) > tolerance ||
		math.Abs(basis.C1.Dot(basis.C2)) > tolerance ||
		math.Abs(basis.C0.Dot(basis.C2)) > tolerance {
		t.Error("Basis columns are not mutually orthogonal")
	}

	// Proper rotation: determinant +1 via the scalar triple product
	if det := basis.C0.Cross(basis.C1).Dot(basis.C2); math.Abs(det-1.0) > tolerance {
		t.Errorf("Expected determinant 1, got %f", det)
	}
}

func TestMat3_Transpose(t *testing.T) {
	m := RotationY(1.2)
	identity := m.Mul(m.Transpose())

	if !mat3Close(identity, Mat3Identity(), 1e-9) {
		t.Errorf("Expected rotation times its transpose to be identity, got %v", identity)
	}
}
