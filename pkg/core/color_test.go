package core

import "testing"

func TestColor_Operations(t *testing.T) {
	c1 := NewColor(0.9, 0.6, 0.75)
	c2 := NewColor(0.7, 0.1, 0.25)

	tests := []struct {
		name     string
		got      Color
		expected Color
	}{
		{"add", c1.Add(c2), NewColor(1.6, 0.7, 1.0)},
		{"subtract", c1.Subtract(c2), NewColor(0.2, 0.5, 0.5)},
		{"scale", NewColor(0.2, 0.3, 0.4).Multiply(2), NewColor(0.4, 0.6, 0.8)},
		{"blend", NewColor(1, 0.2, 0.4).Blend(NewColor(0.9, 1, 0.1)), NewColor(0.9, 0.2, 0.04)},
		{"lerp", White.Lerp(Black, 0.25), NewColor(0.75, 0.75, 0.75)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.got.ApproxEqual(tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, tt.got)
			}
		})
	}
}

func TestColorByName(t *testing.T) {
	tests := []struct {
		name     string
		expected Color
		found    bool
	}{
		{"white", White, true},
		{"Steel Blue", SteelBlue, true},
		{"forest_green", ForestGreen, true},
		{"dark-red", DarkRed, true},
		{"ultraviolet", Color{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, ok := ColorByName(tt.name)
			if ok != tt.found {
				t.Fatalf("Expected found=%t, got %t", tt.found, ok)
			}
			if c != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, c)
			}
		})
	}
}

func TestDebugColor_Cycles(t *testing.T) {
	if DebugColor(0) != DebugColor(12) {
		t.Errorf("Expected palette to repeat after 12 entries")
	}
	if DebugColor(0) == DebugColor(1) {
		t.Errorf("Expected neighbouring entries to differ")
	}
	if DebugColor(-3) != DebugColor(3) {
		t.Errorf("Expected negative index to be folded")
	}
}
