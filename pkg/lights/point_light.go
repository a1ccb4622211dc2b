package lights

import "github.com/df07/go-whitted-raytracer/pkg/core"

// PointLight is an infinitely small light with no falloff
type PointLight struct {
	Position  core.Point
	Intensity core.Color
}

// NewPointLight creates a new point light
func NewPointLight(position core.Point, intensity core.Color) PointLight {
	return PointLight{Position: position, Intensity: intensity}
}

// DirectionFrom returns the unit direction from point towards the light
// and the distance between them
func (l PointLight) DirectionFrom(point core.Point) (core.Vector, float64) {
	v := l.Position.Subtract(point)
	distance := v.Length()
	return v.Normalize(), distance
}
