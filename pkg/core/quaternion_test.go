package core

import (
	"math"
	"math/rand"
	"testing"
)

func randomQuaternion(random *rand.Rand) Quaternion {
	return NewQuaternion(
		2*random.Float64()-1,
		2*random.Float64()-1,
		2*random.Float64()-1,
		2*random.Float64()-1,
	)
}

func quatClose(a, b Quaternion, tolerance float64) bool {
	return math.Abs(a.W-b.W) <= tolerance &&
		math.Abs(a.X-b.X) <= tolerance &&
		math.Abs(a.Y-b.Y) <= tolerance &&
		math.Abs(a.Z-b.Z) <= tolerance
}

func TestQuaternion_MulUnits(t *testing.T) {
	i := NewQuaternion(0, 1, 0, 0)
	j := NewQuaternion(0, 0, 1, 0)
	k := NewQuaternion(0, 0, 0, 1)

	tests := []struct {
		name     string
		a, b     Quaternion
		expected Quaternion
	}{
		{"i*j = k", i, j, k},
		{"j*k = i", j, k, i},
		{"k*i = j", k, i, j},
		{"j*i = -k", j, i, NewQuaternion(0, 0, 0, -1)},
		{"i*i = -1", i, i, NewQuaternion(-1, 0, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Mul(tt.b); !quatClose(got, tt.expected, 1e-12) {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestQuaternion_MulIsNotCommutative(t *testing.T) {
	random := rand.New(rand.NewSource(42))

	commuted := 0
	for i := 0; i < 100; i++ {
		a := randomQuaternion(random)
		b := randomQuaternion(random)
		if quatClose(a.Mul(b), b.Mul(a), 1e-12) {
			commuted++
		}
	}

	// Random quaternions almost never commute
	if commuted > 1 {
		t.Errorf("Expected almost no commuting pairs, got %d of 100", commuted)
	}
}

func TestQuaternion_SquareMatchesMul(t *testing.T) {
	random := rand.New(rand.NewSource(42))

	for i := 0; i < 1000; i++ {
		q := randomQuaternion(random)
		if !quatClose(q.Square(), q.Mul(q), 1e-12) {
			t.Fatalf("Square and Mul disagree for %v: %v vs %v", q, q.Square(), q.Mul(q))
		}
	}
}

func TestQuaternion_PowIdentities(t *testing.T) {
	random := rand.New(rand.NewSource(7))

	for i := 0; i < 200; i++ {
		q := randomQuaternion(random)

		if got := q.Pow(1); !quatClose(got, q, 1e-9) {
			t.Fatalf("Pow(q, 1) != q for %v: got %v", q, got)
		}
		if got := q.Pow(2); !quatClose(got, q.Square(), 1e-9) {
			t.Fatalf("Pow(q, 2) != Square(q) for %v: got %v vs %v", q, got, q.Square())
		}
	}
}

func TestQuaternion_PowDegenerateAxis(t *testing.T) {
	tests := []struct {
		name string
		q    Quaternion
		x    float64
	}{
		{"pure real positive", NewQuaternion(2, 0, 0, 0), 2.5},
		{"pure real negative", NewQuaternion(-1.5, 0, 0, 0), 3},
		{"zero quaternion", Quaternion{}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.q.Pow(tt.x)
			for _, component := range []float64{got.W, got.X, got.Y, got.Z} {
				if math.IsNaN(component) {
					t.Fatalf("Pow(%v, %g) produced NaN: %v", tt.q, tt.x, got)
				}
			}
		})
	}
}

func TestQuaternion_Norms(t *testing.T) {
	q := NewQuaternion(1, 2, 3, 4)

	if got := q.SquaredNorm(); math.Abs(got-30) > 1e-12 {
		t.Errorf("SquaredNorm: expected 30, got %f", got)
	}
	if got := q.Norm(); math.Abs(got-math.Sqrt(30)) > 1e-12 {
		t.Errorf("Norm: expected sqrt(30), got %f", got)
	}
}

func TestQuaternion_LeftMulMatrix(t *testing.T) {
	random := rand.New(rand.NewSource(11))

	for i := 0; i < 100; i++ {
		q := randomQuaternion(random)
		p := randomQuaternion(random)

		direct := q.Mul(p)
		viaMatrix := q.LeftMulMatrix().MulQuat(p)
		if !quatClose(direct, viaMatrix, 1e-12) {
			t.Fatalf("Left-mul matrix disagrees with Mul for q=%v p=%v: %v vs %v",
				q, p, direct, viaMatrix)
		}
	}
}

func TestMat4_IdentityAndMul(t *testing.T) {
	q := NewQuaternion(0.5, -1, 2, 0.25)

	if got := Mat4Identity().MulQuat(q); !quatClose(got, q, 1e-12) {
		t.Errorf("Identity: expected %v, got %v", q, got)
	}

	// (M(a)*M(b))*p == a*(b*p)
	a := NewQuaternion(1, 2, -1, 0.5)
	b := NewQuaternion(-0.5, 1, 1, 2)
	composed := a.LeftMulMatrix().Mul(b.LeftMulMatrix()).MulQuat(q)
	direct := a.Mul(b.Mul(q))
	if !quatClose(composed, direct, 1e-9) {
		t.Errorf("Matrix composition disagrees with quaternion product: %v vs %v", composed, direct)
	}
}
