package renderer

import (
	"github.com/quatray/go-quaternion-julia/pkg/core"
	"github.com/quatray/go-quaternion-julia/pkg/scene"
)

// lightDirection is the fixed Lambertian light used for direct shading
var lightDirection = core.NewVec3(1, 1, 1).Normalize()

// March sphere-traces one ray against one layer. The ray advances by the
// locally estimated distance until it converges on a surface (Hit), travels
// past the distance bound (Escaped), or runs out of iterations (Exhausted).
// Escaped and Exhausted both resolve to the background color; the iteration
// cap is the sole liveness guarantee, so worst-case work per ray is
// O(MaxIterations) regardless of fractal detail. Iterations counts field
// evaluations spent, whichever way the march ends, so heatmap cost is never
// zero for a traced ray.
func March(ray core.Ray, layer scene.Layer, opts scene.Options) scene.Collision {
	travel := 0.0

	for i := 0; i < opts.MaxIterations; i++ {
		position := ray.At(travel)
		d := layer.Field.Distance(position)

		if d < opts.Epsilon {
			return resolve(scene.Collision{
				Hit:        true,
				Color:      shade(layer.Normal(position), layer.Color),
				Travel:     travel,
				Iterations: i + 1,
			}, opts)
		}

		travel += d
		if travel >= opts.MaxDistance {
			return resolve(scene.Collision{
				Color:      opts.BackgroundColor,
				Travel:     travel,
				Iterations: i + 1,
			}, opts)
		}
	}

	return resolve(scene.Collision{
		Color:      opts.BackgroundColor,
		Travel:     travel,
		Iterations: opts.MaxIterations,
	}, opts)
}

// MarchLayers marches every layer independently and merges the collisions
// by nearest-valid-hit precedence
func MarchLayers(ray core.Ray, layers []scene.Layer, opts scene.Options) scene.Collision {
	result := March(ray, layers[0], opts)
	for _, layer := range layers[1:] {
		result = result.Merge(March(ray, layer, opts))
	}
	return result
}

// shade computes the Lambertian-style direct color for a surface normal
func shade(normal, color core.Vec3) core.Vec3 {
	diffuse := 0.1 + 0.9*max(0, min(1, normal.Dot(lightDirection)))
	return color.Multiply(diffuse)
}

// resolve applies the final color substitution. Heatmap mode encodes the
// marching cost of the ray instead of the shaded or background color; the
// substitution happens only here, never inside the loop.
func resolve(c scene.Collision, opts scene.Options) scene.Collision {
	if opts.Heatmap {
		c.Color = opts.FractalColor.Multiply(float64(c.Iterations) / float64(opts.MaxIterations))
	}
	return c
}
