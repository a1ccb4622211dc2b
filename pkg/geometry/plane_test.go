package geometry

import (
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

func TestPlane_LocalNormalIsConstant(t *testing.T) {
	points := []core.Point{
		core.NewPoint(0, 0, 0),
		core.NewPoint(10, 0, -10),
		core.NewPoint(-5, 0, 150),
	}
	for _, p := range points {
		if got := (Plane{}).localNormalAt(p); got != core.NewVector(0, 1, 0) {
			t.Errorf("Normal at %v: expected (0,1,0), got %v", p, got)
		}
	}
}

func TestPlane_LocalIntersect(t *testing.T) {
	tests := []struct {
		name      string
		origin    core.Point
		direction core.Vector
		expected  []float64
	}{
		{"parallel", core.NewPoint(0, 10, 0), core.NewVector(0, 0, 1), nil},
		{"coplanar", core.NewPoint(0, 0, 0), core.NewVector(0, 0, 1), nil},
		{"nearly parallel", core.NewPoint(0, 1, 0), core.NewVector(1, 1e-6, 0), nil},
		{"from above", core.NewPoint(0, 1, 0), core.NewVector(0, -1, 0), []float64{1}},
		{"from below", core.NewPoint(0, -1, 0), core.NewVector(0, 1, 0), []float64{1}},
		{"oblique", core.NewPoint(0, 2, 0), core.NewVector(1, -0.5, 0), []float64{4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Plane{}.localIntersect(core.NewRay(tt.origin, tt.direction))
			if len(got) != len(tt.expected) {
				t.Fatalf("Expected %d hits, got %v", len(tt.expected), got)
			}
			for i := range got {
				if !approx(got[i], tt.expected[i]) {
					t.Errorf("Expected t=%f, got t=%f", tt.expected[i], got[i])
				}
			}
		})
	}
}
