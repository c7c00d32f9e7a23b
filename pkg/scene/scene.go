// Package scene turns a configuration snapshot into the distance fields and
// normal estimators the sphere tracer marches against, and merges the
// resulting collisions.
package scene

import (
	"github.com/quatray/go-quaternion-julia/pkg/core"
	"github.com/quatray/go-quaternion-julia/pkg/sdf"
)

// Canonical dimensions of the selectable primitives. The viewer orbits a
// unit-scale neighborhood of the origin, so every shape fits inside the
// fractal bounding sphere.
const (
	sphereRadius       = 1.0
	cylinderRadius     = 0.75
	cylinderHalfHeight = 1.0
	boxHalfExtent      = 0.75
	torusMajorRadius   = 1.0
	torusMinorRadius   = 0.35

	axesHalfLength = 1.5
	axesRadius     = 0.02
)

var axesColor = core.NewVec3(0.9, 0.8, 0.2)

// Layer is one independently marched sub-scene: a distance field, the
// normal estimator to use at its surface, and the solid color to shade with
type Layer struct {
	Field  sdf.Field
	Normal func(core.Vec3) core.Vec3
	Color  core.Vec3
}

// Compose resolves the selector into the layers to march this frame: the
// active shape, plus the debug axes overlay when enabled. Layers are built
// once per frame from the options snapshot, never mid-trace.
func Compose(opts Options) []Layer {
	layers := []Layer{shapeLayer(opts)}
	if opts.ShowAxes {
		axes := sdf.NewAxes(axesHalfLength, axesRadius)
		layers = append(layers, Layer{
			Field:  axes,
			Normal: finiteDifference(axes),
			Color:  axesColor,
		})
	}
	return layers
}

// shapeLayer maps the discrete selector to a field and normal estimator.
// Unmapped ids (including the reserved KIFS slot) fall back to the
// no-geometry sentinel so the tracer escapes instead of looping.
func shapeLayer(opts Options) Layer {
	layer := Layer{Color: opts.FractalColor}

	switch opts.Shape {
	case ShapeSphere:
		layer.Field = sdf.NewSphere(core.Vec3{}, sphereRadius)
	case ShapeCylinder:
		layer.Field = sdf.NewCylinder(core.Vec3{}, cylinderRadius, cylinderHalfHeight)
	case ShapeBox:
		layer.Field = sdf.NewBox(core.Vec3{}, core.NewVec3(boxHalfExtent, boxHalfExtent, boxHalfExtent))
	case ShapeTorus:
		layer.Field = sdf.NewTorus(core.Vec3{}, torusMajorRadius, torusMinorRadius)
	case ShapeJulia:
		julia := sdf.NewJulia(opts.Constant, opts.MaxIterations, opts.MaxDistance, opts.SliceW)
		layer.Field = julia
		if opts.AnalyticNormals {
			layer.Normal = julia.Normal
		}
	case ShapeJuliaPower:
		julia := sdf.NewJuliaPower(opts.Constant, opts.Power, opts.MaxIterations, opts.MaxDistance, opts.SliceW)
		layer.Field = julia
		if opts.AnalyticNormals {
			layer.Normal = julia.Normal
		}
	default:
		layer.Field = sdf.Empty()
	}

	if layer.Normal == nil {
		layer.Normal = finiteDifference(layer.Field)
	}
	return layer
}

func finiteDifference(f sdf.Field) func(core.Vec3) core.Vec3 {
	return func(p core.Vec3) core.Vec3 {
		return sdf.FiniteDifferenceNormal(f, p)
	}
}
