package world

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
)

// ColorAt returns the color seen along ray. remaining bounds how many more
// reflection or refraction bounces may be followed.
func (w *World) ColorAt(ray core.Ray, remaining int) core.Color {
	xs := w.Intersect(ray)
	hit, ok := xs.Hit()
	if !ok {
		return w.Background
	}

	comps := geometry.PrepareComputations(hit, ray, xs, w.shapes)
	return w.ShadeHit(comps, remaining)
}

// ShadeHit combines local shading at a prepared hit with its reflected and
// refracted contributions.
func (w *World) ShadeHit(comps geometry.Computations, remaining int) core.Color {
	shape := w.shapes[comps.Object]
	m := shape.Material

	shadowed := w.IsShadowed(comps.OverPoint)
	surface := shape.Shade(w.Light, comps.OverPoint, comps.Eye, comps.Normal, shadowed)

	reflected := w.ReflectedColor(comps, remaining)
	refracted := w.RefractedColor(comps, remaining)

	if m.Reflective > 0 && m.Transparency > 0 {
		reflectance := geometry.Schlick(comps)
		return surface.
			Add(reflected.Multiply(reflectance)).
			Add(refracted.Multiply(1 - reflectance))
	}
	return surface.Add(reflected).Add(refracted)
}

// IsShadowed reports whether something lies between point and the light.
// Objects beyond the light do not cast shadows.
func (w *World) IsShadowed(point core.Point) bool {
	direction, distance := w.Light.DirectionFrom(point)

	hit, ok := w.Intersect(core.NewRay(point, direction)).Hit()
	return ok && hit.T < distance
}

// ReflectedColor follows the mirror reflection at a hit
func (w *World) ReflectedColor(comps geometry.Computations, remaining int) core.Color {
	reflective := w.shapes[comps.Object].Material.Reflective
	if reflective <= 0 || remaining <= 0 {
		return core.Black
	}

	reflectRay := core.NewRay(comps.OverPoint, comps.Reflect)
	return w.ColorAt(reflectRay, remaining-1).Multiply(reflective)
}

// RefractedColor follows the ray transmitted through a hit by Snell's law.
// Total internal reflection transmits nothing.
func (w *World) RefractedColor(comps geometry.Computations, remaining int) core.Color {
	transparency := w.shapes[comps.Object].Material.Transparency
	if transparency <= 0 || remaining <= 0 {
		return core.Black
	}

	nRatio := comps.N1 / comps.N2
	cosI := comps.Eye.Dot(comps.Normal)
	sin2T := nRatio * nRatio * (1 - cosI*cosI)
	if sin2T > 1 {
		return core.Black
	}

	cosT := math.Sqrt(1 - sin2T)
	direction := comps.Normal.Multiply(nRatio*cosI - cosT).Subtract(comps.Eye.Multiply(nRatio))

	refractRay := core.NewRay(comps.UnderPoint, direction)
	return w.ColorAt(refractRay, remaining-1).Multiply(transparency)
}
