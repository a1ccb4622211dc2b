package core

import "strings"

// Named colors
var (
	Black   = NewColor(0, 0, 0)
	White   = NewColor(1, 1, 1)
	Red     = NewColor(1, 0, 0)
	Green   = NewColor(0, 1, 0)
	Blue    = NewColor(0, 0, 1)
	Cyan    = NewColor(0, 1, 1)
	Magenta = NewColor(1, 0, 1)
	Yellow  = NewColor(1, 1, 0)
	Orange  = NewColor(1, 0.5, 0)
	Purple  = NewColor(0.5, 0, 0.5)
	Pink    = NewColor(1, 0.75, 0.8)

	Brown = NewColor(0.59, 0.29, 0)
	Tan   = NewColor(0.82, 0.71, 0.55)
	Olive = NewColor(0.5, 0.5, 0)

	DarkRed   = NewColor(0.55, 0, 0)
	DarkGreen = NewColor(0, 0.39, 0)
	DarkBlue  = NewColor(0, 0, 0.55)

	LightGray = NewColor(0.83, 0.83, 0.83)
	Gray      = NewColor(0.5, 0.5, 0.5)
	DarkGray  = NewColor(0.25, 0.25, 0.25)

	Gold         = NewColor(1, 0.84, 0)
	Teal         = NewColor(0, 0.5, 0.5)
	Crimson      = NewColor(0.86, 0.08, 0.24)
	Firebrick    = NewColor(0.70, 0.13, 0.13)
	Tomato       = NewColor(1, 0.39, 0.28)
	Goldenrod    = NewColor(0.85, 0.65, 0.13)
	Khaki        = NewColor(0.94, 0.90, 0.55)
	ForestGreen  = NewColor(0.13, 0.55, 0.13)
	SeaGreen     = NewColor(0.18, 0.55, 0.34)
	Turquoise    = NewColor(0.25, 0.88, 0.82)
	SteelBlue    = NewColor(0.27, 0.51, 0.71)
	RoyalBlue    = NewColor(0.25, 0.41, 0.88)
	MidnightBlue = NewColor(0.10, 0.10, 0.44)
	SlateGray    = NewColor(0.44, 0.50, 0.56)
	SaddleBrown  = NewColor(0.55, 0.27, 0.07)
	Chocolate    = NewColor(0.82, 0.41, 0.12)
)

var namedColors = map[string]Color{
	"black":        Black,
	"white":        White,
	"red":          Red,
	"green":        Green,
	"blue":         Blue,
	"cyan":         Cyan,
	"magenta":      Magenta,
	"yellow":       Yellow,
	"orange":       Orange,
	"purple":       Purple,
	"pink":         Pink,
	"brown":        Brown,
	"tan":          Tan,
	"olive":        Olive,
	"darkred":      DarkRed,
	"darkgreen":    DarkGreen,
	"darkblue":     DarkBlue,
	"lightgray":    LightGray,
	"gray":         Gray,
	"darkgray":     DarkGray,
	"gold":         Gold,
	"teal":         Teal,
	"crimson":      Crimson,
	"firebrick":    Firebrick,
	"tomato":       Tomato,
	"goldenrod":    Goldenrod,
	"khaki":        Khaki,
	"forestgreen":  ForestGreen,
	"seagreen":     SeaGreen,
	"turquoise":    Turquoise,
	"steelblue":    SteelBlue,
	"royalblue":    RoyalBlue,
	"midnightblue": MidnightBlue,
	"slategray":    SlateGray,
	"saddlebrown":  SaddleBrown,
	"chocolate":    Chocolate,
}

// ColorByName looks up a named color. Case, spaces, dashes and underscores
// are ignored, so "Steel Blue" and "steel_blue" both resolve.
func ColorByName(name string) (Color, bool) {
	key := strings.ToLower(name)
	key = strings.NewReplacer(" ", "", "_", "", "-", "").Replace(key)
	c, ok := namedColors[key]
	return c, ok
}

var debugColors = [12]Color{
	NewColor(1, 0, 0),
	NewColor(1, 0.5, 0),
	NewColor(1, 1, 0),
	NewColor(0.5, 1, 0),
	NewColor(0, 1, 0),
	NewColor(0, 1, 0.5),
	NewColor(0, 1, 1),
	NewColor(0, 0.5, 1),
	NewColor(0, 0, 1),
	NewColor(0.5, 0, 1),
	NewColor(1, 0, 1),
	NewColor(1, 0, 0.5),
}

// DebugColor cycles through a fixed hue wheel, handy for telling shapes apart
func DebugColor(index int) Color {
	if index < 0 {
		index = -index
	}
	return debugColors[index%len(debugColors)]
}
