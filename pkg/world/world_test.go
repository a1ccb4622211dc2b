package world

import (
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

func prepare(t *testing.T, w *World, ray core.Ray, index int) geometry.Computations {
	t.Helper()
	xs := w.Intersect(ray)
	if index >= len(xs) {
		t.Fatalf("Expected at least %d intersections, got %d", index+1, len(xs))
	}
	return geometry.PrepareComputations(xs[index], ray, xs, w.Shapes())
}

func TestNewDefault(t *testing.T) {
	w := NewDefault()

	if w.Light != lights.NewPointLight(core.NewPoint(-10, 10, -10), core.White) {
		t.Errorf("Unexpected light %+v", w.Light)
	}
	if len(w.Shapes()) != 2 {
		t.Fatalf("Expected 2 shapes, got %d", len(w.Shapes()))
	}

	outer := w.Shapes()[0]
	if outer.Material.Color != core.NewColor(0.8, 1.0, 0.6) || outer.Material.Diffuse != 0.7 || outer.Material.Specular != 0.2 {
		t.Errorf("Unexpected outer material %+v", outer.Material)
	}
	inner := w.Shapes()[1]
	if !inner.Transform().Matrix().ApproxEqual(core.Scaling(0.5, 0.5, 0.5)) {
		t.Errorf("Unexpected inner transform %v", inner.Transform().Matrix())
	}
	if w.Background != core.Black {
		t.Errorf("Expected black background, got %v", w.Background)
	}
}

func TestWorld_Intersect(t *testing.T) {
	w := NewDefault()
	xs := w.Intersect(core.NewRay(core.NewPoint(0, 0, -5), core.NewVector(0, 0, 1)))

	expected := []float64{4, 4.5, 5.5, 6}
	if len(xs) != len(expected) {
		t.Fatalf("Expected %d intersections, got %d", len(expected), len(xs))
	}
	for i, x := range xs {
		if math.Abs(x.T-expected[i]) > core.Tolerance {
			t.Errorf("Intersection %d: expected t=%f, got t=%f", i, expected[i], x.T)
		}
	}
}

func TestWorld_ShadeHit(t *testing.T) {
	t.Run("from the outside", func(t *testing.T) {
		w := NewDefault()
		ray := core.NewRay(core.NewPoint(0, 0, -5), core.NewVector(0, 0, 1))
		got := w.ShadeHit(prepare(t, w, ray, 0), 5)

		expected := core.NewColor(0.38066, 0.47583, 0.2855)
		if !got.ApproxEqual(expected) {
			t.Errorf("Expected %v, got %v", expected, got)
		}
	})

	t.Run("from the inside", func(t *testing.T) {
		w := NewDefault()
		w.Light = lights.NewPointLight(core.NewPoint(0, 0.25, 0), core.White)
		ray := core.NewRay(core.Origin, core.NewVector(0, 0, 1))
		// xs: -1 outer, -0.5 inner, 0.5 inner, 1 outer
		got := w.ShadeHit(prepare(t, w, ray, 2), 5)

		expected := core.NewColor(0.90498, 0.90498, 0.90498)
		if !got.ApproxEqual(expected) {
			t.Errorf("Expected %v, got %v", expected, got)
		}
	})

	t.Run("in shadow", func(t *testing.T) {
		w := New(lights.NewPointLight(core.NewPoint(0, 0, -10), core.White),
			geometry.NewSphere(),
			geometry.MustShape(geometry.NewSphere().WithTransform(core.Translation(0, 0, 10))),
		)
		ray := core.NewRay(core.NewPoint(0, 0, 5), core.NewVector(0, 0, 1))
		// xs: -6, -4 first sphere, 4, 6 second sphere
		got := w.ShadeHit(prepare(t, w, ray, 2), 5)

		expected := core.NewColor(0.1, 0.1, 0.1)
		if !got.ApproxEqual(expected) {
			t.Errorf("Expected %v, got %v", expected, got)
		}
	})
}

func TestWorld_IsShadowed(t *testing.T) {
	tests := []struct {
		name     string
		point    core.Point
		expected bool
	}{
		{"nothing collinear with point and light", core.NewPoint(0, 10, 0), false},
		{"object between point and light", core.NewPoint(10, -10, 10), true},
		{"object behind the light", core.NewPoint(-20, 20, -20), false},
		{"object behind the point", core.NewPoint(-2, 2, -2), false},
	}

	w := NewDefault()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := w.IsShadowed(tt.point); got != tt.expected {
				t.Errorf("Expected %t, got %t", tt.expected, got)
			}
		})
	}
}

func TestWorld_ColorAt(t *testing.T) {
	t.Run("ray misses", func(t *testing.T) {
		w := NewDefault()
		got := w.ColorAt(core.NewRay(core.NewPoint(0, 0, -5), core.NewVector(0, 1, 0)), 5)
		if got != core.Black {
			t.Errorf("Expected black, got %v", got)
		}
	})

	t.Run("ray misses with a background", func(t *testing.T) {
		w := NewDefault()
		w.Background = core.NewColor(0.2, 0.3, 0.4)
		got := w.ColorAt(core.NewRay(core.NewPoint(0, 0, -5), core.NewVector(0, 1, 0)), 5)
		if got != w.Background {
			t.Errorf("Expected background, got %v", got)
		}
	})

	t.Run("ray hits", func(t *testing.T) {
		w := NewDefault()
		got := w.ColorAt(core.NewRay(core.NewPoint(0, 0, -5), core.NewVector(0, 0, 1)), 5)
		expected := core.NewColor(0.38066, 0.47583, 0.2855)
		if !got.ApproxEqual(expected) {
			t.Errorf("Expected %v, got %v", expected, got)
		}
	})

	t.Run("intersection behind the ray", func(t *testing.T) {
		outer, inner := DefaultShapes()
		outer.Material = outer.Material.WithAmbient(1)
		inner.Material = inner.Material.WithAmbient(1)
		w := New(DefaultLight(), outer, inner)

		got := w.ColorAt(core.NewRay(core.NewPoint(0, 0, 0.75), core.NewVector(0, 0, -1)), 5)
		if !got.ApproxEqual(inner.Material.Color) {
			t.Errorf("Expected inner color %v, got %v", inner.Material.Color, got)
		}
	})

	t.Run("mutually reflective surfaces terminate", func(t *testing.T) {
		mirror := material.DefaultMaterial().WithReflective(1)
		lower := geometry.MustShape(geometry.NewPlane().WithTransform(core.Translation(0, -1, 0))).WithMaterial(mirror)
		upper := geometry.MustShape(geometry.NewPlane().WithTransform(core.Translation(0, 1, 0))).WithMaterial(mirror)
		w := New(lights.NewPointLight(core.Origin, core.White), lower, upper)

		for _, depth := range []int{0, 1, 5, 50} {
			got := w.ColorAt(core.NewRay(core.Origin, core.NewVector(0, 1, 0)), depth)
			if math.IsNaN(got.R) || math.IsInf(got.R, 0) {
				t.Errorf("Depth %d: expected a finite color, got %v", depth, got)
			}
		}
	})
}

func TestWorld_ReflectedColor(t *testing.T) {
	half := math.Sqrt2 / 2

	t.Run("non-reflective material", func(t *testing.T) {
		outer, inner := DefaultShapes()
		inner.Material = inner.Material.WithAmbient(1)
		w := New(DefaultLight(), outer, inner)

		ray := core.NewRay(core.Origin, core.NewVector(0, 0, 1))
		// xs: -1 outer, -0.5 inner, 0.5 inner, 1 outer
		got := w.ReflectedColor(prepare(t, w, ray, 2), 5)
		if got != core.Black {
			t.Errorf("Expected black, got %v", got)
		}
	})

	reflectiveWorld := func() *World {
		w := NewDefault()
		floor := geometry.MustShape(geometry.NewPlane().WithTransform(core.Translation(0, -1, 0)))
		floor.Material = floor.Material.WithReflective(0.5)
		w.Add(floor)
		return w
	}
	ray := core.NewRay(core.NewPoint(0, 0, -3), core.NewVector(0, -half, half))

	t.Run("reflective material", func(t *testing.T) {
		w := reflectiveWorld()
		got := w.ReflectedColor(prepare(t, w, ray, 0), 5)
		expected := core.NewColor(0.19032, 0.2379, 0.14274)
		if !got.ApproxEqual(expected) {
			t.Errorf("Expected %v, got %v", expected, got)
		}
	})

	t.Run("shade hit includes reflection", func(t *testing.T) {
		w := reflectiveWorld()
		got := w.ShadeHit(prepare(t, w, ray, 0), 5)
		expected := core.NewColor(0.87677, 0.92436, 0.82918)
		if !got.ApproxEqual(expected) {
			t.Errorf("Expected %v, got %v", expected, got)
		}
	})

	t.Run("no budget left", func(t *testing.T) {
		w := reflectiveWorld()
		got := w.ReflectedColor(prepare(t, w, ray, 0), 0)
		if got != core.Black {
			t.Errorf("Expected black, got %v", got)
		}
	})
}

func TestWorld_RefractedColor(t *testing.T) {
	half := math.Sqrt2 / 2

	t.Run("opaque surface", func(t *testing.T) {
		w := NewDefault()
		ray := core.NewRay(core.NewPoint(0, 0, -5), core.NewVector(0, 0, 1))
		if got := w.RefractedColor(prepare(t, w, ray, 0), 5); got != core.Black {
			t.Errorf("Expected black, got %v", got)
		}
	})

	glassWorld := func() *World {
		outer, inner := DefaultShapes()
		outer.Material = outer.Material.WithTransparency(1).WithRefractiveIndex(1.5)
		return New(DefaultLight(), outer, inner)
	}

	t.Run("no budget left", func(t *testing.T) {
		w := glassWorld()
		ray := core.NewRay(core.NewPoint(0, 0, -5), core.NewVector(0, 0, 1))
		if got := w.RefractedColor(prepare(t, w, ray, 0), 0); got != core.Black {
			t.Errorf("Expected black, got %v", got)
		}
	})

	t.Run("total internal reflection", func(t *testing.T) {
		outer, _ := DefaultShapes()
		outer.Material = outer.Material.WithTransparency(1).WithRefractiveIndex(1.5)
		w := New(DefaultLight(), outer)

		ray := core.NewRay(core.NewPoint(0, 0, half), core.NewVector(0, 1, 0))
		if got := w.RefractedColor(prepare(t, w, ray, 1), 5); got != core.Black {
			t.Errorf("Expected black, got %v", got)
		}
	})

	t.Run("refracted ray through nested media", func(t *testing.T) {
		// The outer sphere's pattern encodes world y as gray, so the
		// refracted color reveals where the bent ray leaves the sphere.
		heightGray := material.MustPattern(material.GradientColors(core.Black, core.White).
			WithTransform(core.RotationZ(math.Pi / 2)))

		outer, inner := DefaultShapes()
		outer.Material = outer.Material.WithAmbient(1).WithPattern(heightGray)
		inner.Material = inner.Material.WithTransparency(1).WithRefractiveIndex(1.5)
		w := New(DefaultLight(), outer, inner)

		ray := core.NewRay(core.NewPoint(0, 0, 0.1), core.NewVector(0, 1, 0))
		// xs: -0.9899 outer, -0.4899 inner, 0.4899 inner, 0.9899 outer
		comps := prepare(t, w, ray, 2)
		if comps.N1 != 1.5 || comps.N2 != 1.0 {
			t.Fatalf("Expected n1=1.5 n2=1.0, got n1=%f n2=%f", comps.N1, comps.N2)
		}

		got := w.RefractedColor(comps, 5)
		if math.Abs(got.G-0.99888) > 1e-3 {
			t.Errorf("Expected gray near 0.99888, got %v", got)
		}
	})
}

func TestWorld_ShadeHitTransparent(t *testing.T) {
	half := math.Sqrt2 / 2
	ray := core.NewRay(core.NewPoint(0, 0, -3), core.NewVector(0, -half, half))

	build := func(floorMaterial material.Material) *World {
		w := NewDefault()
		floor := geometry.MustShape(geometry.NewPlane().WithTransform(core.Translation(0, -1, 0))).
			WithMaterial(floorMaterial)
		ball := geometry.MustShape(geometry.NewSphere().WithTransform(core.Translation(0, -3.5, -0.5))).
			WithMaterial(material.DefaultMaterial().WithColor(core.Red).WithAmbient(0.5))
		w.Add(floor, ball)
		return w
	}

	tests := []struct {
		name     string
		floor    material.Material
		expected core.Color
	}{
		{
			name:     "transparent floor",
			floor:    material.DefaultMaterial().WithTransparency(0.5).WithRefractiveIndex(1.5),
			expected: core.NewColor(0.93642, 0.68642, 0.68642),
		},
		{
			name:     "reflective transparent floor uses schlick",
			floor:    material.DefaultMaterial().WithReflective(0.5).WithTransparency(0.5).WithRefractiveIndex(1.5),
			expected: core.NewColor(0.93391, 0.69643, 0.69243),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := build(tt.floor)
			got := w.ShadeHit(prepare(t, w, ray, 0), 5)
			if !got.ApproxEqual(tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}
