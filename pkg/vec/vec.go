// Package vec provides the small amount of 2D vector math ringpick needs.
package vec

import "math"

// Point is image.Point but better (floating and generic).
// Y axis points up.
type Point[T ~float32 | ~float64] struct {
	X, Y T
}

// Pt is a shorthand for Point{x, y}.
func Pt[T ~float32 | ~float64](x, y T) Point[T] {
	return Point[T]{x, y}
}

func (p Point[T]) Add(other Point[T]) Point[T] {
	return Point[T]{p.X + other.X, p.Y + other.Y}
}

func (p Point[T]) Mul(scalar T) Point[T] {
	return Point[T]{p.X * scalar, p.Y * scalar}
}

func (p Point[T]) Dot(other Point[T]) T {
	return p.X*other.X + p.Y*other.Y
}

// SqrMagnitude is the squared length of p.
func (p Point[T]) SqrMagnitude() T {
	return p.Dot(p)
}

func (p Point[T]) Magnitude() float64 {
	return math.Sqrt(float64(p.SqrMagnitude()))
}

// Angle returns the unsigned angle in degrees between from and to.
// The result is in [0, 180]. Degenerate (zero-length) vectors give 0.
func Angle[T ~float32 | ~float64](from, to Point[T]) float64 {
	denominator := math.Sqrt(float64(from.SqrMagnitude()) * float64(to.SqrMagnitude()))
	if denominator < 1e-15 {
		return 0
	}

	dot := float64(from.Dot(to)) / denominator
	dot = math.Max(-1, math.Min(1, dot))

	return math.Acos(dot) * 180 / math.Pi
}

// Rotate rotates p by deg degrees around the origin.
// Positive is counterclockwise.
func Rotate[T ~float32 | ~float64](p Point[T], deg float64) Point[T] {
	sin, cos := math.Sincos(deg * math.Pi / 180)
	x, y := float64(p.X), float64(p.Y)

	return Point[T]{
		X: T(x*cos - y*sin),
		Y: T(x*sin + y*cos),
	}
}
