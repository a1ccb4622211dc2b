package core

import "errors"

// Logger interface for raytracer logging
type Logger interface {
	Printf(format string, args ...interface{})
}

const (
	// Epsilon offsets over/under points and bounds the plane parallel test
	Epsilon = 1e-5

	// Tolerance is used by the ApproxEqual helpers
	Tolerance = 1e-4
)

var (
	// ErrNotInvertible is returned when a matrix has a zero determinant
	ErrNotInvertible = errors.New("matrix is not invertible")

	// ErrDegenerate is returned for zero-length directions and other
	// geometry that cannot be normalized
	ErrDegenerate = errors.New("degenerate geometry")
)
