package material

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Source is one of the two inputs of a pattern: either a solid color or a
// nested pattern sampled at the same point.
type Source struct {
	color   core.Color
	pattern *Pattern
}

// Solid creates a source that always yields c
func Solid(c core.Color) Source {
	return Source{color: c}
}

// Nested creates a source backed by a copy of p. Copying keeps pattern trees
// acyclic: a pattern can never end up containing itself.
func Nested(p Pattern) Source {
	return Source{pattern: &p}
}

// IsSolid reports whether the source is a plain color
func (s Source) IsSolid() bool {
	return s.pattern == nil
}

// evaluate samples the source at a point in the parent pattern's space
func (s Source) evaluate(point core.Point, obj Object) core.Color {
	if s.pattern == nil {
		return s.color
	}
	return s.pattern.ColorAt(s.pattern.transform.Inverse().MultiplyPoint(point), obj)
}
