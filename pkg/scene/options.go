package scene

import "github.com/quatray/go-quaternion-julia/pkg/core"

// Options is the read-only configuration snapshot for one frame. The UI
// layer constructs and validates it; the evaluator reads it once per ray
// and never mutates it. Copy by value at frame start so that no pixel of a
// frame can observe a torn update.
type Options struct {
	Shape Shape // active primitive / fractal selector

	// Fractal parameters
	Power    float64         // exponent of the iterated map, >= 1
	Constant core.Quaternion // the Julia constant c
	SliceW   float64         // fixed fourth coordinate of the 3D slice

	// Numeric policy, shared by the fractal iteration and the marcher
	MaxIterations int     // per-ray and per-point iteration cap, > 0
	MaxDistance   float64 // escape threshold (vs |q|^2) and travel bound, > 0
	Epsilon       float64 // surface convergence tolerance, > 0

	// Color resolution
	FractalColor    core.Vec3 // solid shade of hit geometry, channels in [0,1]
	BackgroundColor core.Vec3 // color of escaped and exhausted rays
	Heatmap         bool      // encode marching cost instead of shading

	// Normal technique and debug geometry
	AnalyticNormals bool // Jacobian propagation for fractals; finite differences otherwise
	ShowAxes        bool // march the coordinate-axes overlay as a second layer
}

// DefaultOptions returns the configuration the viewer starts from
func DefaultOptions() Options {
	return Options{
		Shape:           ShapeJulia,
		Power:           2,
		Constant:        core.NewQuaternion(-0.1, 0.6, 0.9, -0.3),
		SliceW:          0.1,
		MaxIterations:   100,
		MaxDistance:     100,
		Epsilon:         0.001,
		FractalColor:    core.NewVec3(0.78, 0.78, 0.78),
		BackgroundColor: core.NewVec3(0, 0, 0),
		Heatmap:         false,
		AnalyticNormals: true,
		ShowAxes:        false,
	}
}
