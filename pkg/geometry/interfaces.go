package geometry

import "github.com/df07/go-whitted-raytracer/pkg/core"

// Geometry is a primitive surface in its own object space. The set of
// primitives is closed: only Sphere and Plane implement it.
type Geometry interface {
	// localIntersect returns the ray parameters of every crossing, in any order
	localIntersect(ray core.Ray) []float64
	localNormalAt(point core.Point) core.Vector
	String() string
}
