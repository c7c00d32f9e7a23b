package scene

// Shape selects the active distance field. The primitive ids match the
// settings UI's discrete selector; ids past the known range are reserved
// for planned fractal families (KIFS) and map to the no-geometry sentinel
// until implemented.
type Shape int

const (
	ShapeSphere Shape = iota
	ShapeCylinder
	ShapeBox
	ShapeTorus
	ShapeJulia      // quaternion Julia set, fixed power 2
	ShapeJuliaPower // quaternion Julia set, generalized real power
	ShapeKIFS       // reserved extension point, renders as no geometry

	shapeCount
)

var shapeNames = map[Shape]string{
	ShapeSphere:     "sphere",
	ShapeCylinder:   "cylinder",
	ShapeBox:        "box",
	ShapeTorus:      "torus",
	ShapeJulia:      "julia",
	ShapeJuliaPower: "julia-power",
	ShapeKIFS:       "kifs",
}

// String returns the shape's configuration name
func (s Shape) String() string {
	if name, ok := shapeNames[s]; ok {
		return name
	}
	return "unknown"
}

// ShapeFromName resolves a configuration name to a shape id.
// Unknown names default to the sphere, matching the settings UI's behavior
// for invalid ids; the evaluator itself still treats out-of-range ids as
// no geometry.
func ShapeFromName(name string) Shape {
	for shape, n := range shapeNames {
		if n == name {
			return shape
		}
	}
	return ShapeSphere
}

// Next cycles to the following selectable shape, wrapping past the reserved
// KIFS slot back to the sphere
func (s Shape) Next() Shape {
	next := s + 1
	if next >= shapeCount {
		return ShapeSphere
	}
	return next
}
