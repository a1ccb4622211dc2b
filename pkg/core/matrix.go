package core

import (
	"fmt"
	"math"
)

// Matrix is a row-major 4x4 affine transform
type Matrix [4][4]float64

// Identity returns the identity matrix
func Identity() Matrix {
	return Matrix{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Multiply returns m*other. Applied to a point, other acts first.
func (m Matrix) Multiply(other Matrix) Matrix {
	var r Matrix
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			sum := 0.0
			for k := 0; k < 4; k++ {
				sum += m[row][k] * other[k][col]
			}
			r[row][col] = sum
		}
	}
	return r
}

// MultiplyPoint transforms a point (implicit w = 1, translation applies)
func (m Matrix) MultiplyPoint(p Point) Point {
	return Point{
		X: m[0][0]*p.X + m[0][1]*p.Y + m[0][2]*p.Z + m[0][3],
		Y: m[1][0]*p.X + m[1][1]*p.Y + m[1][2]*p.Z + m[1][3],
		Z: m[2][0]*p.X + m[2][1]*p.Y + m[2][2]*p.Z + m[2][3],
	}
}

// MultiplyVector transforms a direction (implicit w = 0, translation ignored)
func (m Matrix) MultiplyVector(v Vector) Vector {
	return Vector{
		X: m[0][0]*v.X + m[0][1]*v.Y + m[0][2]*v.Z,
		Y: m[1][0]*v.X + m[1][1]*v.Y + m[1][2]*v.Z,
		Z: m[2][0]*v.X + m[2][1]*v.Y + m[2][2]*v.Z,
	}
}

// Transpose swaps rows and columns
func (m Matrix) Transpose() Matrix {
	var r Matrix
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			r[row][col] = m[col][row]
		}
	}
	return r
}

// Square returns a copy of m as a general square matrix
func (m Matrix) Square() Square {
	s := make(Square, 4)
	for row := range s {
		s[row] = append([]float64(nil), m[row][:]...)
	}
	return s
}

// Determinant of the 4x4 matrix by cofactor expansion
func (m Matrix) Determinant() float64 {
	return m.Square().Determinant()
}

// Inverse returns the inverse of m, or ErrNotInvertible when the
// determinant is exactly zero.
func (m Matrix) Inverse() (Matrix, error) {
	s := m.Square()
	det := s.Determinant()
	if det == 0 {
		return Matrix{}, ErrNotInvertible
	}

	var inv Matrix
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			// transposed on write
			inv[col][row] = s.Cofactor(row, col) / det
		}
	}
	return inv, nil
}

// ApproxEqual compares element-wise within Tolerance
func (m Matrix) ApproxEqual(other Matrix) bool {
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			if !approxEqual(m[row][col], other[row][col]) {
				return false
			}
		}
	}
	return true
}

// Square is an NxN matrix used for cofactor expansion
type Square [][]float64

// Submatrix returns a copy of s with one row and one column removed
func (s Square) Submatrix(row, col int) Square {
	n := len(s)
	sub := make(Square, 0, n-1)
	for r := 0; r < n; r++ {
		if r == row {
			continue
		}
		line := make([]float64, 0, n-1)
		for c := 0; c < n; c++ {
			if c == col {
				continue
			}
			line = append(line, s[r][c])
		}
		sub = append(sub, line)
	}
	return sub
}

// Minor is the determinant of the submatrix at (row, col)
func (s Square) Minor(row, col int) float64 {
	return s.Submatrix(row, col).Determinant()
}

// Cofactor is the minor at (row, col), negated when row+col is odd
func (s Square) Cofactor(row, col int) float64 {
	minor := s.Minor(row, col)
	if (row+col)%2 == 1 {
		return -minor
	}
	return minor
}

// Determinant expands along the first row
func (s Square) Determinant() float64 {
	switch len(s) {
	case 0:
		return 1
	case 1:
		return s[0][0]
	case 2:
		return s[0][0]*s[1][1] - s[0][1]*s[1][0]
	}

	det := 0.0
	for col := range s[0] {
		det += s[0][col] * s.Cofactor(0, col)
	}
	return det
}

// Translation moves points by (x, y, z); vectors are unaffected
func Translation(x, y, z float64) Matrix {
	m := Identity()
	m[0][3] = x
	m[1][3] = y
	m[2][3] = z
	return m
}

// Scaling scales along each axis
func Scaling(x, y, z float64) Matrix {
	m := Identity()
	m[0][0] = x
	m[1][1] = y
	m[2][2] = z
	return m
}

// RotationX rotates by radians about the x axis (left-handed)
func RotationX(radians float64) Matrix {
	sin, cos := math.Sincos(radians)
	m := Identity()
	m[1][1] = cos
	m[1][2] = -sin
	m[2][1] = sin
	m[2][2] = cos
	return m
}

// RotationY rotates by radians about the y axis (left-handed)
func RotationY(radians float64) Matrix {
	sin, cos := math.Sincos(radians)
	m := Identity()
	m[0][0] = cos
	m[0][2] = sin
	m[2][0] = -sin
	m[2][2] = cos
	return m
}

// RotationZ rotates by radians about the z axis (left-handed)
func RotationZ(radians float64) Matrix {
	sin, cos := math.Sincos(radians)
	m := Identity()
	m[0][0] = cos
	m[0][1] = -sin
	m[1][0] = sin
	m[1][1] = cos
	return m
}

// Shearing moves each component in proportion to the other two.
// xy is "x in proportion to y", and so on.
func Shearing(xy, xz, yx, yz, zx, zy float64) Matrix {
	m := Identity()
	m[0][1] = xy
	m[0][2] = xz
	m[1][0] = yx
	m[1][2] = yz
	m[2][0] = zx
	m[2][1] = zy
	return m
}

// Chain composes transforms in the order they should be applied, so
// Chain(a, b, c) == c * b * a.
func Chain(steps ...Matrix) Matrix {
	m := Identity()
	for _, step := range steps {
		m = step.Multiply(m)
	}
	return m
}

// ViewTransform orients the world relative to an eye looking at a target.
// It fails when the eye and target coincide or up is parallel to the view
// direction.
func ViewTransform(from, to Point, up Vector) (Matrix, error) {
	forward, err := to.Subtract(from).TryNormalize()
	if err != nil {
		return Matrix{}, fmt.Errorf("view transform: eye and target coincide: %w", err)
	}
	upn, err := up.TryNormalize()
	if err != nil {
		return Matrix{}, fmt.Errorf("view transform: zero up vector: %w", err)
	}
	left := forward.Cross(upn)
	if left.LengthSquared() < Epsilon*Epsilon {
		return Matrix{}, fmt.Errorf("view transform: up is parallel to view direction: %w", ErrDegenerate)
	}
	trueUp := left.Cross(forward)

	orientation := Matrix{
		{left.X, left.Y, left.Z, 0},
		{trueUp.X, trueUp.Y, trueUp.Z, 0},
		{-forward.X, -forward.Y, -forward.Z, 0},
		{0, 0, 0, 1},
	}
	return orientation.Multiply(Translation(-from.X, -from.Y, -from.Z)), nil
}

// Transform is a matrix together with its cached inverse and
// inverse-transpose, computed once when the transform is built.
type Transform struct {
	matrix           Matrix
	inverse          Matrix
	inverseTranspose Matrix
}

// IdentityTransform returns the default transform
func IdentityTransform() Transform {
	return Transform{matrix: Identity(), inverse: Identity(), inverseTranspose: Identity()}
}

// NewTransform inverts m once and caches the result
func NewTransform(m Matrix) (Transform, error) {
	inv, err := m.Inverse()
	if err != nil {
		return Transform{}, err
	}
	return Transform{matrix: m, inverse: inv, inverseTranspose: inv.Transpose()}, nil
}

// Matrix returns the forward transform
func (t Transform) Matrix() Matrix { return t.matrix }

// Inverse returns the cached inverse
func (t Transform) Inverse() Matrix { return t.inverse }

// InverseTranspose returns the cached matrix used to carry normals
func (t Transform) InverseTranspose() Matrix { return t.inverseTranspose }
