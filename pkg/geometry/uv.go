package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// UVMap maps an object-space surface point to texture coordinates in [0, 1]
type UVMap func(point core.Point) (u, v float64)

// SphericalMap maps a point on the unit sphere using its azimuth for u and
// its polar angle for v. u grows counter-clockwise seen from above; v is 1
// at the north pole.
func SphericalMap(point core.Point) (u, v float64) {
	radius := point.Subtract(core.Origin).Length()
	if radius == 0 {
		return 0, 0
	}

	theta := math.Atan2(point.X, point.Z)
	phi := math.Acos(point.Y / radius)

	rawU := theta / (2 * math.Pi)
	u = 1 - (rawU + 0.5)
	v = 1 - phi/math.Pi
	return u, v
}

// PlanarMap tiles the x-z plane with unit squares
func PlanarMap(point core.Point) (u, v float64) {
	u = point.X - math.Floor(point.X)
	v = point.Z - math.Floor(point.Z)
	return u, v
}
