package renderer

import "github.com/quatray/go-quaternion-julia/pkg/core"

// Camera generates world-space rays from pixel coordinates. The pose is an
// origin plus an orthonormal basis whose columns are right, up and forward;
// the camera looks along negative forward.
type Camera struct {
	Origin core.Vec3
	Basis  core.Mat3
}

// NewCamera creates a camera with an explicit pose
func NewCamera(origin core.Vec3, basis core.Mat3) Camera {
	return Camera{Origin: origin, Basis: basis}
}

// NewOrbitCamera creates a camera orbiting the origin at the given distance,
// with phi rotating around the z axis and theta tilting around y. The basis
// is RotZ(phi) * RotY(-theta) and the camera sits on its forward column.
func NewOrbitCamera(distance, phi, theta float64) Camera {
	basis := core.RotationZ(phi).Mul(core.RotationY(-theta))
	return Camera{
		Origin: basis.C2.Multiply(distance),
		Basis:  basis,
	}
}

// GetRay maps the pixel (x, y) on a width*height viewport to a world-space
// ray. UV spans [-aspect, aspect] x [-1, 1] with screen y growing downward,
// hence the negated up term; the direction is always normalized.
func (c Camera) GetRay(x, y, width, height int) core.Ray {
	aspect := float64(width) / float64(height)
	u := (2*(float64(x)+0.5)/float64(width) - 1) * aspect
	v := 2*(float64(y)+0.5)/float64(height) - 1

	direction := c.Basis.C0.Multiply(u).
		Subtract(c.Basis.C1.Multiply(v)).
		Subtract(c.Basis.C2).
		Normalize()

	return core.NewRay(c.Origin, direction)
}
