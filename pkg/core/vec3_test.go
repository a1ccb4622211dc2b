package core

import (
	"math"
	"testing"
)

func TestVector_Normalize(t *testing.T) {
	tests := []struct {
		name     string
		vector   Vector
		expected Vector
	}{
		{"axis aligned", NewVector(4, 0, 0), NewVector(1, 0, 0)},
		{"general", NewVector(1, 2, 3), NewVector(1/math.Sqrt(14), 2/math.Sqrt(14), 3/math.Sqrt(14))},
		{"already unit", NewVector(0, -1, 0), NewVector(0, -1, 0)},
		{"negative components", NewVector(-3, 0, 4), NewVector(-0.6, 0, 0.8)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := tt.vector.Normalize()
			if !n.ApproxEqual(tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, n)
			}
			if math.Abs(n.Length()-1) > 1e-4 {
				t.Errorf("Expected unit length, got %f", n.Length())
			}
			if again := n.Normalize(); !again.ApproxEqual(n) {
				t.Errorf("Normalize is not idempotent: %v then %v", n, again)
			}
		})
	}
}

func TestVector_TryNormalizeRejectsZero(t *testing.T) {
	if _, err := NewVector(0, 0, 0).TryNormalize(); err != ErrDegenerate {
		t.Errorf("Expected ErrDegenerate, got %v", err)
	}
	if _, err := NewVector(0, 0, 2).TryNormalize(); err != nil {
		t.Errorf("Expected no error, got %v", err)
	}
}

func TestVector_DotAndCross(t *testing.T) {
	a := NewVector(1, 2, 3)
	b := NewVector(2, 3, 4)

	if dot := a.Dot(b); math.Abs(dot-20) > 1e-9 {
		t.Errorf("Expected dot 20, got %f", dot)
	}
	if c := a.Cross(b); !c.ApproxEqual(NewVector(-1, 2, -1)) {
		t.Errorf("Expected a x b = (-1, 2, -1), got %v", c)
	}
	if c := b.Cross(a); !c.ApproxEqual(NewVector(1, -2, 1)) {
		t.Errorf("Expected b x a = (1, -2, 1), got %v", c)
	}
}

func TestVector_Magnitude(t *testing.T) {
	if l := NewVector(-1, -2, -3).Length(); math.Abs(l-math.Sqrt(14)) > 1e-9 {
		t.Errorf("Expected sqrt(14), got %f", l)
	}
	if l := NewVector(0, 0, 1).Length(); l != 1 {
		t.Errorf("Expected 1, got %f", l)
	}
}

func TestVector_Reflect(t *testing.T) {
	tests := []struct {
		name     string
		vector   Vector
		normal   Vector
		expected Vector
	}{
		{
			name:     "approaching at 45 degrees",
			vector:   NewVector(1, -1, 0),
			normal:   NewVector(0, 1, 0),
			expected: NewVector(1, 1, 0),
		},
		{
			name:     "off a slanted surface",
			vector:   NewVector(0, -1, 0),
			normal:   NewVector(math.Sqrt2/2, math.Sqrt2/2, 0),
			expected: NewVector(1, 0, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if r := tt.vector.Reflect(tt.normal); !r.ApproxEqual(tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, r)
			}
		})
	}
}

func TestPoint_Arithmetic(t *testing.T) {
	p := NewPoint(3, 2, 1)
	q := NewPoint(5, 6, 7)

	if v := p.Subtract(q); v != NewVector(-2, -4, -6) {
		t.Errorf("Expected (-2, -4, -6), got %v", v)
	}
	if r := p.Add(NewVector(-2, 3, 1)); r != NewPoint(1, 5, 2) {
		t.Errorf("Expected (1, 5, 2), got %v", r)
	}
	if r := p.SubtractVector(NewVector(5, 6, 7)); r != NewPoint(-2, -4, -6) {
		t.Errorf("Expected (-2, -4, -6), got %v", r)
	}
}
