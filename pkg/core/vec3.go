package core

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Vector is a direction in 3D space. It is kept distinct from Point so that
// nonsensical operations like adding two points do not compile.
type Vector r3.Vec

// NewVector creates a new Vector
func NewVector(x, y, z float64) Vector {
	return Vector{X: x, Y: y, Z: z}
}

// Add returns the sum of two vectors
func (v Vector) Add(other Vector) Vector {
	return Vector(r3.Add(r3.Vec(v), r3.Vec(other)))
}

// Subtract returns the difference of two vectors
func (v Vector) Subtract(other Vector) Vector {
	return Vector(r3.Sub(r3.Vec(v), r3.Vec(other)))
}

// Multiply returns the vector scaled by a scalar
func (v Vector) Multiply(scalar float64) Vector {
	return Vector(r3.Scale(scalar, r3.Vec(v)))
}

// Negate returns the negative of the vector
func (v Vector) Negate() Vector {
	return v.Multiply(-1)
}

// Length returns the magnitude of the vector
func (v Vector) Length() float64 {
	return r3.Norm(r3.Vec(v))
}

// LengthSquared returns the squared magnitude of the vector
func (v Vector) LengthSquared() float64 {
	return r3.Norm2(r3.Vec(v))
}

// Dot returns the dot product of two vectors
func (v Vector) Dot(other Vector) float64 {
	return r3.Dot(r3.Vec(v), r3.Vec(other))
}

// Cross returns the cross product of two vectors
func (v Vector) Cross(other Vector) Vector {
	return Vector(r3.Cross(r3.Vec(v), r3.Vec(other)))
}

// Normalize returns a unit vector in the same direction.
// The zero vector is returned unchanged.
func (v Vector) Normalize() Vector {
	if v.LengthSquared() == 0 {
		return v
	}
	return Vector(r3.Unit(r3.Vec(v)))
}

// TryNormalize is Normalize for input that comes from outside the renderer
// and may be degenerate.
func (v Vector) TryNormalize() (Vector, error) {
	if v.LengthSquared() == 0 {
		return Vector{}, ErrDegenerate
	}
	return v.Normalize(), nil
}

// Reflect mirrors the vector about the given normal
func (v Vector) Reflect(normal Vector) Vector {
	return v.Subtract(normal.Multiply(2 * v.Dot(normal)))
}

// ApproxEqual compares component-wise within Tolerance
func (v Vector) ApproxEqual(other Vector) bool {
	return approxEqual(v.X, other.X) && approxEqual(v.Y, other.Y) && approxEqual(v.Z, other.Z)
}

// Point is a position in 3D space
type Point r3.Vec

// Origin is the point (0, 0, 0)
var Origin = Point{}

// NewPoint creates a new Point
func NewPoint(x, y, z float64) Point {
	return Point{X: x, Y: y, Z: z}
}

// Add translates the point by a vector
func (p Point) Add(v Vector) Point {
	return Point(r3.Add(r3.Vec(p), r3.Vec(v)))
}

// Subtract returns the vector pointing from other to p
func (p Point) Subtract(other Point) Vector {
	return Vector(r3.Sub(r3.Vec(p), r3.Vec(other)))
}

// SubtractVector translates the point by the negated vector
func (p Point) SubtractVector(v Vector) Point {
	return Point(r3.Sub(r3.Vec(p), r3.Vec(v)))
}

// ApproxEqual compares component-wise within Tolerance
func (p Point) ApproxEqual(other Point) bool {
	return approxEqual(p.X, other.X) && approxEqual(p.Y, other.Y) && approxEqual(p.Z, other.Z)
}

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < Tolerance
}
