package core

import "testing"

func TestRay_Position(t *testing.T) {
	r := NewRay(NewPoint(2, 3, 4), NewVector(1, 0, 0))

	tests := []struct {
		t        float64
		expected Point
	}{
		{0, NewPoint(2, 3, 4)},
		{1, NewPoint(3, 3, 4)},
		{-1, NewPoint(1, 3, 4)},
		{2.5, NewPoint(4.5, 3, 4)},
	}

	for _, tt := range tests {
		if p := r.Position(tt.t); !p.ApproxEqual(tt.expected) {
			t.Errorf("Position(%v): expected %v, got %v", tt.t, tt.expected, p)
		}
	}
}

func TestRay_Transform(t *testing.T) {
	r := NewRay(NewPoint(1, 2, 3), NewVector(0, 1, 0))

	translated := r.Transform(Translation(3, 4, 5))
	if !translated.Origin.ApproxEqual(NewPoint(4, 6, 8)) {
		t.Errorf("Expected translated origin (4, 6, 8), got %v", translated.Origin)
	}
	if !translated.Direction.ApproxEqual(NewVector(0, 1, 0)) {
		t.Errorf("Expected direction untouched by translation, got %v", translated.Direction)
	}

	scaled := r.Transform(Scaling(2, 3, 4))
	if !scaled.Origin.ApproxEqual(NewPoint(2, 6, 12)) {
		t.Errorf("Expected scaled origin (2, 6, 12), got %v", scaled.Origin)
	}
	if !scaled.Direction.ApproxEqual(NewVector(0, 3, 0)) {
		t.Errorf("Expected scaled direction (0, 3, 0), got %v", scaled.Direction)
	}
}
