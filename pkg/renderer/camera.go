package renderer

import (
	"context"
	"fmt"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/canvas"
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/world"
)

// Camera maps pixels of an hsize x vsize image onto a canvas one unit in
// front of the eye and casts one ray through the center of each pixel.
type Camera struct {
	hsize, vsize int
	fieldOfView  float64
	transform    core.Transform

	halfWidth, halfHeight float64
	pixelSize             float64
}

// NewCamera creates a camera at the origin looking down -z. fieldOfView is
// in radians and must lie strictly between 0 and pi.
func NewCamera(hsize, vsize int, fieldOfView float64) (*Camera, error) {
	if hsize <= 0 || vsize <= 0 {
		return nil, fmt.Errorf("camera size %dx%d: %w", hsize, vsize, core.ErrDegenerate)
	}
	if !(fieldOfView > 0 && fieldOfView < math.Pi) {
		return nil, fmt.Errorf("camera field of view %g: %w", fieldOfView, core.ErrDegenerate)
	}

	c := &Camera{
		hsize:       hsize,
		vsize:       vsize,
		fieldOfView: fieldOfView,
		transform:   core.IdentityTransform(),
	}

	halfView := math.Tan(fieldOfView / 2)
	aspect := float64(hsize) / float64(vsize)
	if aspect >= 1 {
		c.halfWidth = halfView
		c.halfHeight = halfView / aspect
	} else {
		c.halfWidth = halfView * aspect
		c.halfHeight = halfView
	}
	c.pixelSize = c.halfWidth * 2 / float64(hsize)

	return c, nil
}

func (c *Camera) HSize() int { return c.hsize }

func (c *Camera) VSize() int { return c.vsize }

func (c *Camera) FieldOfView() float64 { return c.fieldOfView }

// PixelSize is the world-space width of one pixel on the canvas
func (c *Camera) PixelSize() float64 { return c.pixelSize }

func (c *Camera) Transform() core.Transform { return c.transform }

// SetTransform orients the camera with a view transform. The camera is left
// unchanged if m cannot be inverted.
func (c *Camera) SetTransform(m core.Matrix) error {
	t, err := core.NewTransform(m)
	if err != nil {
		return fmt.Errorf("camera transform: %w", err)
	}
	c.transform = t
	return nil
}

// LookAt places the eye at from looking towards to
func (c *Camera) LookAt(from, to core.Point, up core.Vector) error {
	view, err := core.ViewTransform(from, to, up)
	if err != nil {
		return fmt.Errorf("camera view: %w", err)
	}
	return c.SetTransform(view)
}

// RayForPixel returns the world-space ray through the center of pixel (px, py)
func (c *Camera) RayForPixel(px, py int) core.Ray {
	xOffset := (float64(px) + 0.5) * c.pixelSize
	yOffset := (float64(py) + 0.5) * c.pixelSize

	// the camera looks down -z, so +x is to the left
	worldX := c.halfWidth - xOffset
	worldY := c.halfHeight - yOffset

	inverse := c.transform.Inverse()
	pixel := inverse.MultiplyPoint(core.NewPoint(worldX, worldY, -1))
	origin := inverse.MultiplyPoint(core.Origin)
	direction := pixel.Subtract(origin).Normalize()

	return core.NewRay(origin, direction)
}

// Render renders w with the default configuration and the given recursion depth
func (c *Camera) Render(w *world.World, depth int) *canvas.Canvas {
	config := DefaultRenderConfig()
	config.MaxDepth = depth

	// a background context is never cancelled, so the render cannot fail
	img, _, _ := NewRenderer(w, c, config, NopLogger{}).Render(context.Background())
	return img
}
