// Package world holds a scene's shapes and light and evaluates the color
// seen along a ray, recursing for reflection and refraction.
package world

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// World is a set of shapes lit by a single point light. It is built once
// and then only read, so one World can be shared by every render worker.
type World struct {
	Light lights.PointLight

	// Background is the color of rays that escape the scene; black by default
	Background core.Color

	shapes []geometry.Shape
}

// New creates a world lit by light containing shapes
func New(light lights.PointLight, shapes ...geometry.Shape) *World {
	w := &World{Light: light}
	w.Add(shapes...)
	return w
}

// DefaultLight is the white light at (-10, 10, -10) used by NewDefault
func DefaultLight() lights.PointLight {
	return lights.NewPointLight(core.NewPoint(-10, 10, -10), core.White)
}

// DefaultShapes returns the two concentric spheres of the default world
func DefaultShapes() (outer, inner geometry.Shape) {
	outer = geometry.NewSphere().WithMaterial(material.DefaultMaterial().
		WithColor(core.NewColor(0.8, 1.0, 0.6)).
		WithDiffuse(0.7).
		WithSpecular(0.2))
	inner = geometry.MustShape(geometry.NewSphere().WithTransform(core.Scaling(0.5, 0.5, 0.5)))
	return outer, inner
}

// NewDefault creates the reference world: two concentric spheres under DefaultLight
func NewDefault() *World {
	outer, inner := DefaultShapes()
	return New(DefaultLight(), outer, inner)
}

// Add appends shapes to the world. It must not be called during a render.
func (w *World) Add(shapes ...geometry.Shape) {
	w.shapes = append(w.shapes, shapes...)
}

// Shapes returns the world's shapes; intersection Object fields index into it
func (w *World) Shapes() []geometry.Shape {
	return w.shapes
}

// Intersect returns every crossing of ray with the world, sorted by t
func (w *World) Intersect(ray core.Ray) geometry.Intersections {
	var xs geometry.Intersections
	for i, s := range w.shapes {
		xs = append(xs, s.Intersect(ray, i)...)
	}
	return geometry.NewIntersections(xs...)
}
