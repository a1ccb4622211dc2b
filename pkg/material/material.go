package material

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
)

// Refractive indices of common media
const (
	Vacuum  = 1.0
	Air     = 1.00029
	Water   = 1.333
	Glass   = 1.5
	Diamond = 2.417
)

// Material holds the Phong coefficients of a surface plus the parameters
// that drive reflection and refraction. Coefficients are not normalized.
type Material struct {
	Color           core.Color
	Pattern         *Pattern // overrides Color when set
	Ambient         float64
	Diffuse         float64
	Specular        float64
	Shininess       float64
	Reflective      float64 // 0..1
	Transparency    float64 // 0..1
	RefractiveIndex float64 // 1.0 is vacuum
}

// DefaultMaterial returns a white, opaque, non-reflective material
func DefaultMaterial() Material {
	return Material{
		Color:           core.White,
		Ambient:         0.1,
		Diffuse:         0.9,
		Specular:        0.9,
		Shininess:       200.0,
		Reflective:      0.0,
		Transparency:    0.0,
		RefractiveIndex: Vacuum,
	}
}

// GlassMaterial returns the transparent, reflective material used for
// refraction scenes
func GlassMaterial() Material {
	return DefaultMaterial().
		WithTransparency(1.0).
		WithRefractiveIndex(Glass)
}

func (m Material) WithColor(c core.Color) Material {
	m.Color = c
	return m
}

func (m Material) WithPattern(p Pattern) Material {
	m.Pattern = &p
	return m
}

func (m Material) WithoutPattern() Material {
	m.Pattern = nil
	return m
}

func (m Material) WithAmbient(v float64) Material {
	m.Ambient = v
	return m
}

func (m Material) WithDiffuse(v float64) Material {
	m.Diffuse = v
	return m
}

func (m Material) WithSpecular(v float64) Material {
	m.Specular = v
	return m
}

func (m Material) WithShininess(v float64) Material {
	m.Shininess = v
	return m
}

func (m Material) WithReflective(v float64) Material {
	m.Reflective = v
	return m
}

func (m Material) WithTransparency(v float64) Material {
	m.Transparency = v
	return m
}

func (m Material) WithRefractiveIndex(v float64) Material {
	m.RefractiveIndex = v
	return m
}

// Shade evaluates the Phong reflection model at point. It covers local
// lighting only; reflection and refraction are added by the caller.
//
// The result is not clamped and may exceed 1 per channel.
func (m Material) Shade(obj Object, point core.Point, light lights.PointLight, eye, normal core.Vector, inShadow bool) core.Color {
	// patterns carry their final color; only the flat color is tinted by the light
	effective := m.Color.Blend(light.Intensity)
	if m.Pattern != nil {
		effective = m.Pattern.AtObject(obj, point)
	}

	ambient := effective.Multiply(m.Ambient)
	if inShadow {
		return ambient
	}

	lightDir, _ := light.DirectionFrom(point)

	// cosine between light and normal; negative means the light is behind the surface
	lightDotNormal := lightDir.Dot(normal)
	if lightDotNormal < 0 {
		return ambient
	}

	diffuse := effective.Multiply(m.Diffuse * lightDotNormal)

	specular := core.Black
	reflectDotEye := lightDir.Negate().Reflect(normal).Dot(eye)
	if reflectDotEye > 0 {
		factor := math.Pow(reflectDotEye, m.Shininess)
		specular = light.Intensity.Multiply(m.Specular * factor)
	}

	return ambient.Add(diffuse).Add(specular)
}
