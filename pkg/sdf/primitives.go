package sdf

import (
	"math"

	"github.com/quatray/go-quaternion-julia/pkg/core"
)

// Sphere is the exact distance field of a sphere
type Sphere struct {
	Center core.Vec3
	Radius float64
}

// NewSphere creates a new sphere field
func NewSphere(center core.Vec3, radius float64) Sphere {
	return Sphere{Center: center, Radius: radius}
}

// Distance returns the signed distance from p to the sphere surface
func (s Sphere) Distance(p core.Vec3) float64 {
	return p.Subtract(s.Center).Length() - s.Radius
}

// Box is the exact distance field of an axis-aligned box
type Box struct {
	Center      core.Vec3
	HalfExtents core.Vec3
}

// NewBox creates a new axis-aligned box field
func NewBox(center, halfExtents core.Vec3) Box {
	return Box{Center: center, HalfExtents: halfExtents}
}

// Distance returns the signed distance from p to the box surface.
// q holds the per-axis penetration; outside the box the corner distance is
// the length of the positive part, inside it is the largest (negative)
// component.
func (b Box) Distance(p core.Vec3) float64 {
	q := p.Subtract(b.Center).Abs().Subtract(b.HalfExtents)
	return q.Max(0).Length() + min(q.MaxComponent(), 0)
}

// Cylinder is the exact distance field of a capped cylinder aligned with
// the y axis
type Cylinder struct {
	Center     core.Vec3
	Radius     float64
	HalfHeight float64
}

// NewCylinder creates a new capped cylinder field
func NewCylinder(center core.Vec3, radius, halfHeight float64) Cylinder {
	return Cylinder{Center: center, Radius: radius, HalfHeight: halfHeight}
}

// Distance returns the signed distance from p to the cylinder surface
func (c Cylinder) Distance(p core.Vec3) float64 {
	q := p.Subtract(c.Center)
	dRadial := math.Hypot(q.X, q.Z) - c.Radius
	dAxial := math.Abs(q.Y) - c.HalfHeight
	outside := math.Hypot(max(dRadial, 0), max(dAxial, 0))
	return outside + min(max(dRadial, dAxial), 0)
}

// Torus is the exact distance field of a torus lying in the xz plane
type Torus struct {
	Center      core.Vec3
	MajorRadius float64
	MinorRadius float64
}

// NewTorus creates a new torus field
func NewTorus(center core.Vec3, major, minor float64) Torus {
	return Torus{Center: center, MajorRadius: major, MinorRadius: minor}
}

// Distance returns the signed distance from p to the torus surface
func (t Torus) Distance(p core.Vec3) float64 {
	q := p.Subtract(t.Center)
	ring := math.Hypot(q.X, q.Z) - t.MajorRadius
	return math.Hypot(ring, q.Y) - t.MinorRadius
}
