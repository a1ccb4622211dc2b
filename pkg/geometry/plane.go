package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Plane is the object-space x-z plane, facing +y
type Plane struct{}

var planeNormal = core.NewVector(0, 1, 0)

func (Plane) String() string { return "plane" }

func (Plane) localIntersect(ray core.Ray) []float64 {
	// Parallel and coplanar rays never hit
	if math.Abs(ray.Direction.Y) < core.Epsilon {
		return nil
	}
	return []float64{-ray.Origin.Y / ray.Direction.Y}
}

func (Plane) localNormalAt(core.Point) core.Vector {
	return planeNormal
}
