// Package scene assembles worlds and cameras: a set of built-in example
// scenes and a JSON scene description format.
package scene

import (
	"fmt"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/world"
)

// DefaultMaxDepth is the reflection/refraction budget used when a scene does not set one
const DefaultMaxDepth = 5

// Scene is a world together with the camera and recursion depth it is
// meant to be rendered with
type Scene struct {
	Name     string
	World    *world.World
	Camera   *renderer.Camera
	MaxDepth int
}

// newCamera builds a camera looking from from towards to
func newCamera(width, height int, fieldOfView float64, from, to core.Point, up core.Vector) (*renderer.Camera, error) {
	camera, err := renderer.NewCamera(width, height, fieldOfView)
	if err != nil {
		return nil, err
	}
	if err := camera.LookAt(from, to, up); err != nil {
		return nil, err
	}
	return camera, nil
}

// RenderConfig returns the default render configuration with the scene's depth
func (s *Scene) RenderConfig() renderer.RenderConfig {
	config := renderer.DefaultRenderConfig()
	config.MaxDepth = s.MaxDepth
	return config
}

// Summary describes the scene for log output
func (s *Scene) Summary() string {
	return fmt.Sprintf("%s: %d shapes, %dx%d, depth %d",
		s.Name, len(s.World.Shapes()), s.Camera.HSize(), s.Camera.VSize(), s.MaxDepth)
}
