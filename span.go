package semicircle

import "fmt"

// Span is the half-open run of pixels [Lo, Hi) on row Row.
type Span[T Coord] struct {
	Lo, Hi T
	Row    T
}

// Len returns the number of pixels in the span, or 0 if it is empty or
// inverted.
func (s Span[T]) Len() T {
	if s.Hi <= s.Lo {
		return 0
	}
	return s.Hi - s.Lo
}

// Empty reports whether the span covers no pixels.
func (s Span[T]) Empty() bool {
	return s.Hi <= s.Lo
}

// Stretch moves the lower bound by start and the upper bound by end.
// Negative values shrink the span.
func (s Span[T]) Stretch(start, end T) Span[T] {
	return Span[T]{Lo: s.Lo + start, Hi: s.Hi + end, Row: s.Row}
}

// Mirror returns the row this span maps to when reflected across the
// equator.
func (s Span[T]) Mirror() T {
	return -s.Row - 1
}

func (s Span[T]) String() string {
	return fmt.Sprintf("[%d, %d)@%d", s.Lo, s.Hi, s.Row)
}

// Point is an integer pixel coordinate.
type Point[T Coord] struct {
	X, Y T
}

// Pt is a convenience function to create a Point.
func Pt[T Coord](x, y T) Point[T] {
	return Point[T]{X: x, Y: y}
}

// Add returns the point translated by (dx, dy).
func (p Point[T]) Add(dx, dy T) Point[T] {
	return Point[T]{X: p.X + dx, Y: p.Y + dy}
}

// Pixel is a point with the color attached by a gradient.
type Pixel[T Coord] struct {
	X, Y  T
	Color RGB8
}
