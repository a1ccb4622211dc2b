package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

const tolerance = 1e-4

func approx(a, b float64) bool {
	return math.Abs(a-b) <= tolerance
}

func TestSphere_LocalIntersect(t *testing.T) {
	tests := []struct {
		name     string
		origin   core.Point
		expected []float64
	}{
		{"through the middle", core.NewPoint(0, 0, -5), []float64{4, 6}},
		{"tangent", core.NewPoint(0, 1, -5), []float64{5, 5}},
		{"miss", core.NewPoint(0, 2, -5), nil},
		{"origin inside", core.NewPoint(0, 0, 0), []float64{-1, 1}},
		{"sphere behind ray", core.NewPoint(0, 0, 5), []float64{-6, -4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(tt.origin, core.NewVector(0, 0, 1))
			got := Sphere{}.localIntersect(ray)

			if len(got) != len(tt.expected) {
				t.Fatalf("Expected %d hits, got %d (%v)", len(tt.expected), len(got), got)
			}
			for i := range got {
				if !approx(got[i], tt.expected[i]) {
					t.Errorf("Hit %d: expected t=%f, got t=%f", i, tt.expected[i], got[i])
				}
			}
		})
	}
}

func TestSphere_LocalIntersect_RootsAscending(t *testing.T) {
	tests := []struct {
		name      string
		direction core.Vector
		expected  []float64
	}{
		// b > 0 takes the other branch of the stable quadratic solve
		{"pointing away", core.NewVector(0, 0, -1), []float64{-6, -4}},
		{"non-unit direction", core.NewVector(0, 0, 2), []float64{2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Sphere{}.localIntersect(core.NewRay(core.NewPoint(0, 0, -5), tt.direction))
			if len(got) != 2 {
				t.Fatalf("Expected 2 hits, got %v", got)
			}
			if !approx(got[0], tt.expected[0]) || !approx(got[1], tt.expected[1]) {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestSphere_LocalNormalAt(t *testing.T) {
	third := math.Sqrt(3) / 3
	tests := []struct {
		point    core.Point
		expected core.Vector
	}{
		{core.NewPoint(1, 0, 0), core.NewVector(1, 0, 0)},
		{core.NewPoint(0, 1, 0), core.NewVector(0, 1, 0)},
		{core.NewPoint(0, 0, 1), core.NewVector(0, 0, 1)},
		{core.NewPoint(third, third, third), core.NewVector(third, third, third)},
	}

	for _, tt := range tests {
		got := Sphere{}.localNormalAt(tt.point)
		if !got.ApproxEqual(tt.expected) {
			t.Errorf("Normal at %v: expected %v, got %v", tt.point, tt.expected, got)
		}
		if !approx(got.Length(), 1) {
			t.Errorf("Expected unit normal at %v, got length %f", tt.point, got.Length())
		}
	}
}
