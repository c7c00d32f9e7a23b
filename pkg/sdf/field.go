// Package sdf provides signed-distance-field estimators for geometric
// primitives and escape-time quaternion fractals, plus the surface-normal
// estimators used after a sphere trace converges.
//
// Every Field is a pure, total function of the query point: evaluating the
// same point twice with unchanged parameters yields bit-identical results,
// and no Field ever fails or blocks.
package sdf

import "github.com/quatray/go-quaternion-julia/pkg/core"

// NoGeometryDistance is the sentinel returned by fields that represent no
// geometry at all. It is large and strictly positive so a sphere tracer
// escapes in a handful of steps instead of crashing or looping.
const NoGeometryDistance = 1e9

// Field estimates the distance from a point to the nearest surface.
// Primitive fields are exact; fractal fields are conservative estimates
// valid near the surface.
type Field interface {
	Distance(p core.Vec3) float64
}

// FieldFunc adapts a plain function into a Field
type FieldFunc func(core.Vec3) float64

// Distance invokes the wrapped function
func (f FieldFunc) Distance(p core.Vec3) float64 {
	return f(p)
}

// Empty returns a field with no geometry: every query yields the sentinel
// distance. Unknown scene selectors map here.
func Empty() Field {
	return FieldFunc(func(core.Vec3) float64 {
		return NoGeometryDistance
	})
}

// Union combines fields into their set union by taking the minimum distance
type Union []Field

// Distance returns the smallest distance among the member fields, or the
// sentinel distance for an empty union
func (u Union) Distance(p core.Vec3) float64 {
	d := NoGeometryDistance
	for _, f := range u {
		d = min(d, f.Distance(p))
	}
	return d
}
