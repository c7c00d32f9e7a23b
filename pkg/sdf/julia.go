package sdf

import (
	"math"

	"github.com/quatray/go-quaternion-julia/pkg/core"
)

const (
	// boundingRadius is the radius of the sphere that encloses every
	// quaternion Julia set reachable from our parameter ranges. Outside it
	// the escape-time estimate is unstable, so the field falls back to the
	// exact distance to this sphere. The resulting discontinuity ring is a
	// documented approximation artifact, not a bug.
	boundingRadius = 2.0

	// boundingEpsilon keeps the fallback from firing right on the sphere
	boundingEpsilon = 1e-4
)

// Julia is the distance-estimated field of a quaternion Julia set: the
// escape-time fractal of q -> q^p + c, sliced at a fixed fourth coordinate.
type Julia struct {
	C             core.Quaternion // the Julia constant
	Power         float64         // exponent p of the iterated map, >= 1
	MaxIterations int             // escape-time iteration cap
	EscapeRadius  float64         // squared-norm threshold for divergence
	SliceW        float64         // fixed fourth coordinate of the 3D slice
}

// NewJulia creates a Julia field for the quadratic map q -> q^2 + c
func NewJulia(c core.Quaternion, maxIterations int, escapeRadius, sliceW float64) Julia {
	return NewJuliaPower(c, 2, maxIterations, escapeRadius, sliceW)
}

// NewJuliaPower creates a Julia field for the generalized map q -> q^p + c
func NewJuliaPower(c core.Quaternion, power float64, maxIterations int, escapeRadius, sliceW float64) Julia {
	return Julia{
		C:             c,
		Power:         power,
		MaxIterations: maxIterations,
		EscapeRadius:  escapeRadius,
		SliceW:        sliceW,
	}
}

// Distance returns the Boettcher-potential distance estimate from p to the
// fractal boundary: 0.25 * ln(|q|^2) * sqrt(|q|^2 / |dq|^2) after iterating
// to escape or exhaustion. The estimate is only valid near the boundary;
// beyond the bounding sphere the exact sphere distance is returned instead.
func (j Julia) Distance(p core.Vec3) float64 {
	if r := p.Length(); r > boundingRadius+boundingEpsilon {
		return r - boundingRadius
	}

	q := core.QuaternionFromVec3(p, j.SliceW)
	qSq := q.SquaredNorm()
	dqSq := 1.0

	for i := 0; i < j.MaxIterations; i++ {
		if qSq > j.EscapeRadius {
			break
		}
		// Derivative-magnitude recurrence for the map q -> q^p + c:
		// |dq|^2 *= p^2 * |q|^(2(p-1)), using |q| before the map is applied.
		if j.Power == 2 {
			dqSq *= 4 * qSq
			q = q.Square().Add(j.C)
		} else {
			dqSq *= j.Power * j.Power * math.Pow(qSq, j.Power-1)
			q = q.Pow(j.Power).Add(j.C)
		}
		qSq = q.SquaredNorm()
	}

	return 0.25 * math.Log(qSq) * math.Sqrt(qSq/dqSq)
}

// Normal estimates the surface normal at p by propagating the 4x4 Jacobian
// of the iteration: J starts as the identity and picks up the
// left-multiplication matrix of the running state each step. The iteration
// count and escape test match Distance exactly so the two stay consistent.
func (j Julia) Normal(p core.Vec3) core.Vec3 {
	q0 := core.QuaternionFromVec3(p, j.SliceW)
	q := q0
	jacobian := core.Mat4Identity()

	for i := 0; i < j.MaxIterations; i++ {
		if q.SquaredNorm() > j.EscapeRadius {
			break
		}
		jacobian = q.LeftMulMatrix().Mul(jacobian)
		if j.Power == 2 {
			q = q.Square().Add(j.C)
		} else {
			q = q.Pow(j.Power).Add(j.C)
		}
	}

	return jacobian.MulQuat(q0).Imaginary().Normalize()
}
