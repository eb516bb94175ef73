// SPDX-License-Identifier: MIT

package vector

import "fmt"

// Point2 is a 2D position. Points move by vectors; the difference of two
// points is a vector.
type Point2[T Scalar] struct {
	X, Y T
}

// NewPoint returns the point (x, y).
func NewPoint[T Scalar](x, y T) Point2[T] { return Point2[T]{X: x, Y: y} }

// PointFromArray returns the point (a[0], a[1]).
func PointFromArray[T Scalar](a [2]T) Point2[T] { return Point2[T]{X: a[0], Y: a[1]} }

// Array returns the coordinates as [X, Y].
func (p Point2[T]) Array() [2]T { return [2]T{p.X, p.Y} }

// Add returns p moved by v.
func (p Point2[T]) Add(v Vector2[T]) Point2[T] { return Point2[T]{p.X + v.X, p.Y + v.Y} }

// Sub returns p moved by -v.
func (p Point2[T]) Sub(v Vector2[T]) Point2[T] { return Point2[T]{p.X - v.X, p.Y - v.Y} }

// CheckedSub is Sub with the overflow reporting of Vector2.CheckedSub.
func (p Point2[T]) CheckedSub(v Vector2[T]) (Point2[T], bool) {
	d, ok := Vector2[T](p).CheckedSub(v)
	if !ok {
		return Point2[T]{}, false
	}

	return Point2[T](d), true
}

// To returns the vector that moves p onto q.
func (p Point2[T]) To(q Point2[T]) Vector2[T] { return Vector2[T]{q.X - p.X, q.Y - p.Y} }

// Distance returns the Euclidean distance between p and q.
func (p Point2[T]) Distance(q Point2[T]) float64 {
	return q.Float64().To(p.Float64()).Mag()
}

// Float64 converts the coordinates to float64.
func (p Point2[T]) Float64() Point2[float64] {
	return Point2[float64]{float64(p.X), float64(p.Y)}
}

// String renders p as "(x, y)".
func (p Point2[T]) String() string { return fmt.Sprintf("(%v, %v)", p.X, p.Y) }
