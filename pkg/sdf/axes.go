package sdf

import (
	"math"

	"github.com/quatray/go-quaternion-julia/pkg/core"
)

// Axes is a debug overlay: three thin capped cylinders along the coordinate
// axes, centered at the origin. Marched as its own layer so it can be merged
// with the active shape by nearest-hit precedence.
type Axes struct {
	Length float64 // half-length of each axis rod
	Radius float64 // rod radius
}

// NewAxes creates a coordinate-axes overlay field
func NewAxes(length, radius float64) Axes {
	return Axes{Length: length, Radius: radius}
}

// Distance returns the distance to the nearest axis rod
func (a Axes) Distance(p core.Vec3) float64 {
	x := rodDistance(p.Y, p.Z, p.X, a.Radius, a.Length)
	y := rodDistance(p.X, p.Z, p.Y, a.Radius, a.Length)
	z := rodDistance(p.X, p.Y, p.Z, a.Radius, a.Length)
	return min(x, min(y, z))
}

// rodDistance is the capped-cylinder distance with the axis split into its
// two radial components and one axial component
func rodDistance(r1, r2, axial, radius, halfLength float64) float64 {
	dRadial := math.Hypot(r1, r2) - radius
	dAxial := math.Abs(axial) - halfLength
	outside := math.Hypot(max(dRadial, 0), max(dAxial, 0))
	return outside + min(max(dRadial, dAxial), 0)
}
