package material

import (
	"fmt"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Object is the part of a shape that patterns need: the mapping from world
// to object space, and optionally a UV mapping of object-space points.
type Object interface {
	WorldToObject(point core.Point) core.Point
	UV(point core.Point) (u, v float64, ok bool)
}

// PatternKind selects how a pattern alternates between its two sources
type PatternKind int

const (
	Striped PatternKind = iota
	Gradient
	Ring
	Checker
	CheckerUV
)

func (k PatternKind) String() string {
	switch k {
	case Striped:
		return "striped"
	case Gradient:
		return "gradient"
	case Ring:
		return "ring"
	case Checker:
		return "checker"
	case CheckerUV:
		return "checker_uv"
	}
	return fmt.Sprintf("PatternKind(%d)", int(k))
}

const (
	planarEpsilon = 1e-6 // |y| below this is treated as lying on a plane
	floorEpsilon  = 1e-9 // nudges values just below an integer into the next cell
)

// Pattern is a procedural color source with its own transform, applied
// on top of the object's transform. Patterns are values; the With methods
// return modified copies.
type Pattern struct {
	kind      PatternKind
	a, b      Source
	transform core.Transform

	// checker_uv repetitions across u and v
	width, height float64
}

func newPattern(kind PatternKind, a, b Source) Pattern {
	return Pattern{kind: kind, a: a, b: b, transform: core.IdentityTransform()}
}

// NewStriped alternates a and b every unit along x
func NewStriped(a, b Source) Pattern { return newPattern(Striped, a, b) }

// NewGradient blends from a to b over each unit of x
func NewGradient(a, b Source) Pattern { return newPattern(Gradient, a, b) }

// NewRing alternates a and b in concentric rings around the y axis
func NewRing(a, b Source) Pattern { return newPattern(Ring, a, b) }

// NewChecker alternates a and b in unit cubes
func NewChecker(a, b Source) Pattern { return newPattern(Checker, a, b) }

// NewCheckerUV checkers the shape's UV space with width x height squares
func NewCheckerUV(width, height float64, a, b Source) Pattern {
	p := newPattern(CheckerUV, a, b)
	p.width = width
	p.height = height
	return p
}

// StripedColors is shorthand for a striped pattern of two solid colors
func StripedColors(a, b core.Color) Pattern { return NewStriped(Solid(a), Solid(b)) }

// GradientColors is shorthand for a gradient between two solid colors
func GradientColors(a, b core.Color) Pattern { return NewGradient(Solid(a), Solid(b)) }

// RingColors is shorthand for a ring pattern of two solid colors
func RingColors(a, b core.Color) Pattern { return NewRing(Solid(a), Solid(b)) }

// CheckerColors is shorthand for a 3D checker of two solid colors
func CheckerColors(a, b core.Color) Pattern { return NewChecker(Solid(a), Solid(b)) }

// WithTransform returns a copy of the pattern placed by m
func (p Pattern) WithTransform(m core.Matrix) (Pattern, error) {
	t, err := core.NewTransform(m)
	if err != nil {
		return Pattern{}, fmt.Errorf("pattern %s transform: %w", p.kind, err)
	}
	p.transform = t
	return p, nil
}

// MustPattern panics if err is non-nil
func MustPattern(p Pattern, err error) Pattern {
	if err != nil {
		panic(err)
	}
	return p
}

// Kind returns the pattern variant
func (p Pattern) Kind() PatternKind { return p.kind }

// Transform returns the pattern's transform
func (p Pattern) Transform() core.Transform { return p.transform }

// Sources returns the two sources of the pattern
func (p Pattern) Sources() (a, b Source) { return p.a, p.b }

// AtObject samples the pattern at a world-space point on obj
func (p Pattern) AtObject(obj Object, worldPoint core.Point) core.Color {
	objectPoint := obj.WorldToObject(worldPoint)
	patternPoint := p.transform.Inverse().MultiplyPoint(objectPoint)
	return p.ColorAt(patternPoint, obj)
}

// ColorAt samples the pattern at a point already in pattern space. obj is
// only consulted for its UV mapping and may be nil.
func (p Pattern) ColorAt(point core.Point, obj Object) core.Color {
	switch p.kind {
	case Striped:
		return p.pick(isEven(int(math.Floor(point.X))), point, obj)
	case Gradient:
		ca := p.a.evaluate(point, obj)
		cb := p.b.evaluate(point, obj)
		return ca.Lerp(cb, point.X-math.Floor(point.X))
	case Ring:
		return p.pick(isEven(int(math.Floor(math.Hypot(point.X, point.Z)))), point, obj)
	case Checker:
		return p.checkerAt(point, obj)
	case CheckerUV:
		return p.checkerUVAt(point, obj)
	}
	return p.a.evaluate(point, obj)
}

func (p Pattern) pick(useA bool, point core.Point, obj Object) core.Color {
	if useA {
		return p.a.evaluate(point, obj)
	}
	return p.b.evaluate(point, obj)
}

func (p Pattern) checkerAt(point core.Point, obj Object) core.Color {
	sum := floorEps(point.X) + floorEps(point.Z)
	// Near-planar points drop y so that y ~ +/-0 cannot flicker between cells
	if math.Abs(point.Y) >= planarEpsilon {
		sum += floorEps(point.Y)
	}
	return p.pick(isEven(sum), point, obj)
}

func (p Pattern) checkerUVAt(point core.Point, obj Object) core.Color {
	if obj == nil {
		return p.a.evaluate(point, obj)
	}
	u, v, ok := obj.UV(point)
	if !ok {
		return p.a.evaluate(point, obj)
	}

	// Keep u and v inside [0, 1) so the top and right edges do not open a new cell
	u = clamp(u, 0, 1-floorEpsilon) * p.width
	v = clamp(v, 0, 1-floorEpsilon) * p.height

	return p.pick(isEven(floorEps(u)+floorEps(v)), point, obj)
}

// floorEps floors x after biasing it away from zero, so values a hair
// below an integer land in the cell they visually belong to
func floorEps(x float64) int {
	bias := floorEpsilon
	if x < 0 {
		bias = -floorEpsilon
	}
	return int(math.Floor(x + bias))
}

func isEven(n int) bool {
	return n&1 == 0
}

func clamp(x, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, x))
}
