package sdf

import "github.com/quatray/go-quaternion-julia/pkg/core"

// normalStep is the finite-difference step for gradient estimation
const normalStep = 1e-4

// FiniteDifferenceNormal estimates the unit surface normal at p as the
// normalized gradient of the field, via central differences along each
// axis. Works for any field at the cost of six extra distance evaluations.
func FiniteDifferenceNormal(f Field, p core.Vec3) core.Vec3 {
	gradient := core.Vec3{
		X: f.Distance(core.Vec3{X: p.X + normalStep, Y: p.Y, Z: p.Z}) -
			f.Distance(core.Vec3{X: p.X - normalStep, Y: p.Y, Z: p.Z}),
		Y: f.Distance(core.Vec3{X: p.X, Y: p.Y + normalStep, Z: p.Z}) -
			f.Distance(core.Vec3{X: p.X, Y: p.Y - normalStep, Z: p.Z}),
		Z: f.Distance(core.Vec3{X: p.X, Y: p.Y, Z: p.Z + normalStep}) -
			f.Distance(core.Vec3{X: p.X, Y: p.Y, Z: p.Z - normalStep}),
	}
	return gradient.Normalize()
}
