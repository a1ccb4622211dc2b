package renderer

import (
	"image"

	"github.com/df07/go-whitted-raytracer/pkg/canvas"
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/world"
)

// Raytracer evaluates pixels of a camera's image against a world. It only
// reads the world and camera, so many raytracers may share them.
type Raytracer struct {
	world    *world.World
	camera   *Camera
	maxDepth int
}

// NewRaytracer creates a new raytracer
func NewRaytracer(w *world.World, camera *Camera, maxDepth int) *Raytracer {
	return &Raytracer{
		world:    w,
		camera:   camera,
		maxDepth: max(0, maxDepth),
	}
}

// PixelColor traces the single ray through pixel (x, y)
func (rt *Raytracer) PixelColor(x, y int) core.Color {
	return rt.world.ColorAt(rt.camera.RayForPixel(x, y), rt.maxDepth)
}

// RenderBounds renders the pixels inside bounds into target and returns how
// many were written. onPixel, if set, is called after every pixel.
func (rt *Raytracer) RenderBounds(bounds image.Rectangle, target *canvas.Canvas, onPixel func()) int {
	count := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			target.WritePixel(x, y, rt.PixelColor(x, y))
			count++
			if onPixel != nil {
				onPixel()
			}
		}
	}
	return count
}
