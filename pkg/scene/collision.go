package scene

import "github.com/quatray/go-quaternion-julia/pkg/core"

// Collision is the result of tracing one ray against one layer: whether the
// march converged, the resolved color, the travel distance along the ray,
// and the marching iterations spent. Transient; never persisted across
// frames.
type Collision struct {
	Hit        bool
	Color      core.Vec3
	Travel     float64
	Iterations int
}

// Merge resolves two simultaneous marches by nearest-valid-hit precedence:
// if both hit, the smaller travel distance wins; if one hits, it wins; if
// neither hits, the smaller travel distance still wins so a deterministic
// background color is chosen.
func (c Collision) Merge(other Collision) Collision {
	switch {
	case c.Hit && other.Hit:
		if c.Travel <= other.Travel {
			return c
		}
		return other
	case c.Hit:
		return c
	case other.Hit:
		return other
	default:
		if c.Travel <= other.Travel {
			return c
		}
		return other
	}
}
