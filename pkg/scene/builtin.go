package scene

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/world"
)

var up = core.NewVector(0, 1, 0)

// place is shorthand for placing a literal shape
func place(s geometry.Shape, m core.Matrix) geometry.Shape {
	return geometry.MustShape(s.WithTransform(m))
}

func transformed(p material.Pattern, m core.Matrix) material.Pattern {
	return material.MustPattern(p.WithTransform(m))
}

// NewDefaultScene renders the two concentric spheres of the default world
func NewDefaultScene(width, height int) (*Scene, error) {
	camera, err := newCamera(width, height, math.Pi/3, core.NewPoint(0, 0, -5), core.Origin, up)
	if err != nil {
		return nil, err
	}
	return &Scene{Name: "default", World: world.NewDefault(), Camera: camera, MaxDepth: DefaultMaxDepth}, nil
}

// threeSpheres returns the floor and three spheres shared by the plane and
// pattern scenes, with their original flat colors
func threeSpheres() (floor, middle, right, left geometry.Shape) {
	floor = geometry.NewPlane().WithMaterial(material.DefaultMaterial().
		WithColor(core.NewColor(1, 0.9, 0.9)).
		WithSpecular(0))

	sphereMaterial := material.DefaultMaterial().WithDiffuse(0.7).WithSpecular(0.3)

	middle = place(geometry.NewSphere(), core.Translation(-0.5, 1, 0.5)).
		WithMaterial(sphereMaterial.WithColor(core.NewColor(0.1, 1, 0.5)))
	right = place(geometry.NewSphere(), core.Chain(core.Scaling(0.5, 0.5, 0.5), core.Translation(1.5, 0.5, -0.5))).
		WithMaterial(sphereMaterial.WithColor(core.NewColor(0.5, 1, 0.1)))
	left = place(geometry.NewSphere(), core.Chain(core.Scaling(0.33, 0.33, 0.33), core.Translation(-1.5, 0.33, -0.75))).
		WithMaterial(sphereMaterial.WithColor(core.NewColor(1, 0.8, 0.1)))
	return floor, middle, right, left
}

func threeSpheresCamera(width, height int) (*Scene, error) {
	camera, err := newCamera(width, height, math.Pi/3, core.NewPoint(0, 1.5, -5), core.NewPoint(0, 1, 0), up)
	if err != nil {
		return nil, err
	}
	return &Scene{
		World:    world.New(lights.NewPointLight(core.NewPoint(-10, 10, -10), core.White)),
		Camera:   camera,
		MaxDepth: DefaultMaxDepth,
	}, nil
}

// NewPlaneScene is three flat-colored spheres resting on a floor plane
func NewPlaneScene(width, height int) (*Scene, error) {
	s, err := threeSpheresCamera(width, height)
	if err != nil {
		return nil, err
	}
	s.Name = "planes"

	floor, middle, right, left := threeSpheres()
	s.World.Add(floor, middle, right, left)
	return s, nil
}

// NewPatternScene shows every pattern kind, including a checker of two
// nested stripe patterns on the floor
func NewPatternScene(width, height int) (*Scene, error) {
	s, err := threeSpheresCamera(width, height)
	if err != nil {
		return nil, err
	}
	s.Name = "patterns"

	floor, middle, right, left := threeSpheres()

	stripeA := transformed(material.StripedColors(core.Red, core.Pink),
		core.Chain(core.Scaling(0.25, 0.25, 0.25), core.RotationY(math.Pi/4)))
	stripeB := transformed(material.StripedColors(core.DarkGray, core.Gray),
		core.Chain(core.Scaling(0.25, 0.25, 0.25), core.RotationY(-math.Pi/4)))
	floor.Material = floor.Material.WithPattern(material.NewChecker(material.Nested(stripeA), material.Nested(stripeB)))

	middle.Material = middle.Material.WithPattern(
		material.NewCheckerUV(16, 8, material.Solid(core.Gold), material.Solid(core.SteelBlue)))

	right.Material = right.Material.WithPattern(transformed(material.StripedColors(core.Blue, core.Turquoise),
		core.Chain(core.Scaling(0.1, 0.1, 0.1), core.RotationZ(-math.Pi/4))))

	left.Material = left.Material.WithPattern(transformed(material.GradientColors(core.Purple, core.Yellow),
		core.Chain(core.Scaling(2, 2, 2), core.Translation(-1, 0, 0), core.RotationZ(-math.Pi/4))))

	ring := place(geometry.NewPlane(), core.Chain(core.RotationX(math.Pi/2), core.Translation(0, 0, 6))).
		WithMaterial(material.DefaultMaterial().
			WithPattern(transformed(material.RingColors(core.White, core.LightGray), core.Scaling(0.5, 0.5, 0.5))).
			WithSpecular(0))

	s.World.Add(floor, middle, right, left, ring)
	return s, nil
}

// NewReflectionRefractionScene is a striped room with a reflective checker
// floor, colored spheres and two glass spheres
func NewReflectionRefractionScene(width, height int) (*Scene, error) {
	camera, err := newCamera(width, height, 1.152, core.NewPoint(-2.6, 1.5, -3.9), core.NewPoint(-0.6, 1, -0.8), up)
	if err != nil {
		return nil, err
	}
	w := world.New(lights.NewPointLight(core.NewPoint(-4.9, 4.9, -1), core.White))

	wallMaterial := material.DefaultMaterial().
		WithPattern(transformed(material.StripedColors(core.NewColor(0.45, 0.45, 0.45), core.NewColor(0.55, 0.55, 0.55)),
			core.Chain(core.RotationY(math.Pi/2), core.Scaling(0.25, 0.25, 0.25)))).
		WithAmbient(0).
		WithDiffuse(0.4).
		WithSpecular(0).
		WithReflective(0.3)

	floor := place(geometry.NewPlane(), core.RotationY(0.31415)).
		WithMaterial(material.DefaultMaterial().
			WithPattern(material.CheckerColors(core.NewColor(0.35, 0.35, 0.35), core.NewColor(0.65, 0.65, 0.65))).
			WithSpecular(0).
			WithReflective(0.4))
	ceiling := place(geometry.NewPlane(), core.Translation(0, 5, 0)).
		WithMaterial(material.DefaultMaterial().
			WithColor(core.NewColor(0.8, 0.8, 0.8)).
			WithAmbient(0.3).
			WithSpecular(0))

	westWall := place(geometry.NewPlane(), core.Chain(core.RotationY(math.Pi/2), core.RotationZ(math.Pi/2), core.Translation(-5, 0, 0)))
	eastWall := place(geometry.NewPlane(), core.Chain(core.RotationY(math.Pi/2), core.RotationZ(math.Pi/2), core.Translation(5, 0, 0)))
	northWall := place(geometry.NewPlane(), core.Chain(core.RotationX(math.Pi/2), core.Translation(0, 0, 5)))
	southWall := place(geometry.NewPlane(), core.Chain(core.RotationX(math.Pi/2), core.Translation(0, 0, -5)))
	w.Add(floor, ceiling)
	for _, wall := range []geometry.Shape{westWall, eastWall, northWall, southWall} {
		w.Add(wall.WithMaterial(wallMaterial))
	}

	background := func(x, y, z, radius float64, c core.Color) geometry.Shape {
		return place(geometry.NewSphere(), core.Chain(core.Scaling(radius, radius, radius), core.Translation(x, y, z))).
			WithMaterial(material.DefaultMaterial().WithColor(c).WithShininess(50))
	}
	w.Add(
		background(-1, 0.5, 4.5, 0.5, core.NewColor(0.4, 0.9, 0.6)),
		background(-1.7, 0.3, 4.7, 0.3, core.NewColor(0.4, 0.6, 0.9)),
		background(4.6, 0.4, 1, 0.4, core.NewColor(0.8, 0.5, 0.3)),
		background(4.7, 0.3, 0.4, 0.3, core.NewColor(0.9, 0.4, 0.5)),
	)

	red := place(geometry.NewSphere(), core.Translation(-0.6, 1, 0.6)).
		WithMaterial(material.DefaultMaterial().
			WithColor(core.NewColor(1, 0.3, 0.2)).
			WithSpecular(0.4).
			WithShininess(5))

	glass := func(c core.Color) material.Material {
		return material.DefaultMaterial().
			WithColor(c).
			WithAmbient(0).
			WithDiffuse(0.4).
			WithSpecular(0.9).
			WithShininess(300).
			WithReflective(0.9).
			WithTransparency(0.9).
			WithRefractiveIndex(material.Glass)
	}
	blueGlass := place(geometry.NewSphere(), core.Chain(core.Scaling(0.7, 0.7, 0.7), core.Translation(0.6, 0.7, -0.6))).
		WithMaterial(glass(core.NewColor(0, 0, 0.2)))
	greenGlass := place(geometry.NewSphere(), core.Chain(core.Scaling(0.5, 0.5, 0.5), core.Translation(-0.7, 0.5, -0.8))).
		WithMaterial(glass(core.NewColor(0, 0.2, 0)))
	w.Add(red, blueGlass, greenGlass)

	return &Scene{Name: "reflection-refraction", World: w, Camera: camera, MaxDepth: DefaultMaxDepth}, nil
}

// NewFresnelScene is a hollow glass sphere in front of a checkered wall
func NewFresnelScene(width, height int) (*Scene, error) {
	camera, err := newCamera(width, height, 0.45, core.NewPoint(0, 0, -5), core.Origin, up)
	if err != nil {
		return nil, err
	}
	w := world.New(lights.NewPointLight(core.NewPoint(2, 10, -5), core.NewColor(0.9, 0.9, 0.9)))

	wall := place(geometry.NewPlane(), core.Chain(core.RotationX(math.Pi/2), core.Translation(0, 0, 10))).
		WithMaterial(material.DefaultMaterial().
			WithPattern(material.CheckerColors(core.NewColor(0.15, 0.15, 0.15), core.NewColor(0.85, 0.85, 0.85))).
			WithAmbient(0.8).
			WithDiffuse(0.2).
			WithSpecular(0))

	shell := material.DefaultMaterial().
		WithAmbient(0).
		WithDiffuse(0).
		WithSpecular(0.9).
		WithShininess(300).
		WithReflective(0.9).
		WithTransparency(0.9)

	outer := geometry.NewSphere().WithMaterial(shell.WithRefractiveIndex(material.Glass))
	// an air bubble inside the glass
	hollow := place(geometry.NewSphere(), core.Scaling(0.5, 0.5, 0.5)).
		WithMaterial(shell.WithRefractiveIndex(1.0000034))

	w.Add(wall, outer, hollow)
	return &Scene{Name: "fresnel", World: w, Camera: camera, MaxDepth: DefaultMaxDepth}, nil
}

// NewGlobeScene is a UV-checkered sphere spinning above a reflective floor
func NewGlobeScene(width, height int) (*Scene, error) {
	camera, err := newCamera(width, height, math.Pi/3, core.NewPoint(0, 1.5, -4), core.NewPoint(0, 1, 0), up)
	if err != nil {
		return nil, err
	}
	w := world.New(lights.NewPointLight(core.NewPoint(-5, 8, -6), core.White))

	floor := geometry.NewPlane().WithMaterial(material.DefaultMaterial().
		WithPattern(material.NewCheckerUV(2, 2, material.Solid(core.SlateGray), material.Solid(core.LightGray))).
		WithSpecular(0).
		WithReflective(0.2))

	globe := place(geometry.NewSphere(), core.Chain(core.RotationY(-math.Pi/6), core.RotationX(0.4), core.Translation(0, 1.2, 0))).
		WithMaterial(material.DefaultMaterial().
			WithPattern(material.NewCheckerUV(20, 10, material.Solid(core.MidnightBlue), material.Solid(core.Goldenrod))).
			WithDiffuse(0.7).
			WithSpecular(0.5).
			WithShininess(100))

	w.Add(floor, globe)
	return &Scene{Name: "globe", World: w, Camera: camera, MaxDepth: DefaultMaxDepth}, nil
}
