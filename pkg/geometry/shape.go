package geometry

import (
	"fmt"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Shape places a primitive in world space with a transform, a material and
// an optional UV mapping. Shapes are values; the With* methods return
// modified copies.
type Shape struct {
	geometry  Geometry
	transform core.Transform
	Material  material.Material
	uv        UVMap
}

func newShape(g Geometry, uv UVMap) Shape {
	return Shape{
		geometry:  g,
		transform: core.IdentityTransform(),
		Material:  material.DefaultMaterial(),
		uv:        uv,
	}
}

// NewSphere creates a unit sphere at the origin with the default material
func NewSphere() Shape {
	return newShape(Sphere{}, SphericalMap)
}

// NewGlassSphere creates a unit sphere made of glass
func NewGlassSphere() Shape {
	return NewSphere().WithMaterial(material.GlassMaterial())
}

// NewPlane creates the x-z plane with the default material
func NewPlane() Shape {
	return newShape(Plane{}, PlanarMap)
}

// MustShape panics if err is non-nil. It is meant for scenes built from
// literal transforms that are known to be invertible.
func MustShape(s Shape, err error) Shape {
	if err != nil {
		panic(err)
	}
	return s
}

// WithTransform returns a copy of the shape placed by m. It fails with
// core.ErrNotInvertible when m is singular.
func (s Shape) WithTransform(m core.Matrix) (Shape, error) {
	t, err := core.NewTransform(m)
	if err != nil {
		return s, fmt.Errorf("%s transform: %w", s.geometry, err)
	}
	s.transform = t
	return s, nil
}

// WithMaterial returns a copy of the shape using m
func (s Shape) WithMaterial(m material.Material) Shape {
	s.Material = m
	return s
}

// WithUVMap returns a copy of the shape using fn for UV lookups; nil disables them
func (s Shape) WithUVMap(fn UVMap) Shape {
	s.uv = fn
	return s
}

func (s Shape) Geometry() Geometry { return s.geometry }

func (s Shape) Transform() core.Transform { return s.transform }

// Intersect returns every crossing of the world-space ray with the shape,
// tagged with id so the caller can find the shape again.
func (s Shape) Intersect(ray core.Ray, id int) Intersections {
	local := ray.Transform(s.transform.Inverse())
	ts := s.geometry.localIntersect(local)
	if len(ts) == 0 {
		return nil
	}

	xs := make(Intersections, len(ts))
	for i, t := range ts {
		xs[i] = Intersection{T: t, Object: id}
	}
	return xs
}

// NormalAt returns the unit world-space normal at a world-space point on the surface
func (s Shape) NormalAt(worldPoint core.Point) core.Vector {
	objectPoint := s.WorldToObject(worldPoint)
	objectNormal := s.geometry.localNormalAt(objectPoint)
	// the inverse transpose keeps normals perpendicular under non-uniform scaling
	worldNormal := s.transform.InverseTranspose().MultiplyVector(objectNormal)
	return worldNormal.Normalize()
}

// WorldToObject converts a world-space point into the shape's object space
func (s Shape) WorldToObject(point core.Point) core.Point {
	return s.transform.Inverse().MultiplyPoint(point)
}

// UV reports the texture coordinates for a point, if the shape has a UV map
func (s Shape) UV(point core.Point) (u, v float64, ok bool) {
	if s.uv == nil {
		return 0, 0, false
	}
	u, v = s.uv(point)
	return u, v, true
}

// Shade runs the material's local shading for a world-space point on the shape
func (s Shape) Shade(light lights.PointLight, point core.Point, eye, normal core.Vector, inShadow bool) core.Color {
	return s.Material.Shade(s, point, light, eye, normal, inShadow)
}
