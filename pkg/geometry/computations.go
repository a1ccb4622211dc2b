package geometry

import (
	"math"
	"slices"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Computations holds everything shading needs about a single hit
type Computations struct {
	T      float64
	Object int

	Point      core.Point
	OverPoint  core.Point // nudged along the normal, for shadow and reflection rays
	UnderPoint core.Point // nudged against the normal, for refraction rays

	Eye     core.Vector
	Normal  core.Vector
	Reflect core.Vector
	Inside  bool

	// Refractive indices of the media the ray leaves and enters
	N1, N2 float64
}

// PrepareComputations derives the shading inputs for hit. xs must be the full
// sorted list the hit was taken from, and shapes the slice its Object
// indices refer to.
func PrepareComputations(hit Intersection, ray core.Ray, xs Intersections, shapes []Shape) Computations {
	shape := shapes[hit.Object]

	comps := Computations{
		T:      hit.T,
		Object: hit.Object,
		Point:  ray.Position(hit.T),
		Eye:    ray.Direction.Negate(),
	}

	comps.Normal = shape.NormalAt(comps.Point)
	if comps.Normal.Dot(comps.Eye) < 0 {
		comps.Inside = true
		comps.Normal = comps.Normal.Negate()
	}

	offset := comps.Normal.Multiply(core.Epsilon)
	comps.OverPoint = comps.Point.Add(offset)
	comps.UnderPoint = comps.Point.SubtractVector(offset)
	comps.Reflect = ray.Direction.Reflect(comps.Normal)

	comps.N1, comps.N2 = refractiveIndices(hit, xs, shapes)
	return comps
}

// refractiveIndices walks the crossings up to hit, tracking which shapes the
// ray is currently inside, and returns the indices on either side of hit.
func refractiveIndices(hit Intersection, xs Intersections, shapes []Shape) (n1, n2 float64) {
	n1, n2 = 1.0, 1.0
	var containers []int

	current := func() float64 {
		if len(containers) == 0 {
			return 1.0
		}
		return shapes[containers[len(containers)-1]].Material.RefractiveIndex
	}

	for _, x := range xs {
		if x == hit {
			n1 = current()
		}

		if i := slices.Index(containers, x.Object); i >= 0 {
			containers = slices.Delete(containers, i, i+1)
		} else {
			containers = append(containers, x.Object)
		}

		if x == hit {
			n2 = current()
			break
		}
	}
	return n1, n2
}

// Schlick approximates the Fresnel reflectance at the hit: the fraction of
// light reflected rather than refracted.
func Schlick(comps Computations) float64 {
	cos := comps.Eye.Dot(comps.Normal)

	if comps.N1 > comps.N2 {
		n := comps.N1 / comps.N2
		sin2t := n * n * (1 - cos*cos)
		if sin2t > 1 {
			return 1.0
		}
		cos = math.Sqrt(1 - sin2t)
	}

	r0 := (comps.N1 - comps.N2) / (comps.N1 + comps.N2)
	r0 *= r0
	return r0 + (1-r0)*math.Pow(1-cos, 5)
}
