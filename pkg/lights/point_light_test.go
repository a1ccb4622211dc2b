package lights

import (
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

func TestPointLight_New(t *testing.T) {
	light := NewPointLight(core.Origin, core.White)

	if light.Position != core.Origin {
		t.Errorf("Expected position %v, got %v", core.Origin, light.Position)
	}
	if light.Intensity != core.White {
		t.Errorf("Expected intensity %v, got %v", core.White, light.Intensity)
	}
}

func TestPointLight_DirectionFrom(t *testing.T) {
	light := NewPointLight(core.NewPoint(-10, 10, -10), core.White)

	dir, distance := light.DirectionFrom(core.NewPoint(0, 10, -10))
	if !dir.ApproxEqual(core.NewVector(-1, 0, 0)) {
		t.Errorf("Expected direction (-1, 0, 0), got %v", dir)
	}
	if math.Abs(distance-10) > 1e-9 {
		t.Errorf("Expected distance 10, got %f", distance)
	}
}
