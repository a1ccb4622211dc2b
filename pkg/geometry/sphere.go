package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Sphere is the unit sphere centered at the object-space origin
type Sphere struct{}

func (Sphere) String() string { return "sphere" }

// localIntersect solves |O + tD|^2 = 1 for t
func (Sphere) localIntersect(ray core.Ray) []float64 {
	sphereToRay := ray.Origin.Subtract(core.Origin)

	a := ray.Direction.Dot(ray.Direction)
	b := 2 * ray.Direction.Dot(sphereToRay)
	c := sphereToRay.Dot(sphereToRay) - 1

	discriminant := b*b - 4*a*c
	if discriminant < 0 || a == 0 {
		return nil
	}

	// Pick the branch of the quadratic formula that adds terms of equal sign,
	// then recover the other root from the product of roots c/a.
	q := -0.5 * (b + math.Copysign(math.Sqrt(discriminant), b))
	t1 := q / a
	t2 := t1
	if q != 0 {
		t2 = c / q
	}

	if t1 > t2 {
		t1, t2 = t2, t1
	}
	return []float64{t1, t2}
}

func (Sphere) localNormalAt(point core.Point) core.Vector {
	return point.Subtract(core.Origin).Normalize()
}
