package semicircle

import "iter"

// Points is a lazy sequence of pixel coordinates.
type Points[T Coord] iter.Seq[Point[T]]

// half selects which side of the equator a combinator emits.
type half uint8

const (
	upper half = 1 << iota
	lower
	both = upper | lower
)

// fill expands each span, after clip, into points on the selected halves.
// When both halves are selected every x is emitted on its own row and then
// on the mirrored row before moving to x+1.
func (s Spans[T]) fill(h half, clip func(Span[T]) Span[T]) Points[T] {
	return func(yield func(Point[T]) bool) {
		for sp := range s {
			if clip != nil {
				sp = clip(sp)
			}
			mirror := sp.Mirror()
			for x := sp.Lo; x < sp.Hi; x++ {
				if h&upper != 0 && !yield(Point[T]{X: x, Y: sp.Row}) {
					return
				}
				if h&lower != 0 && !yield(Point[T]{X: x, Y: mirror}) {
					return
				}
			}
		}
	}
}

func stretch[T Coord](start, end T) func(Span[T]) Span[T] {
	return func(sp Span[T]) Span[T] { return sp.Stretch(start, end) }
}

// rightOf keeps the part of a row right of the vertical axis, extending
// the straight edge by end.
func rightOf[T Coord](end T) func(Span[T]) Span[T] {
	return func(sp Span[T]) Span[T] {
		sp.Hi += end
		sp.Lo = 0
		return sp
	}
}

// leftOf keeps the part of a row left of the vertical axis; the span ends
// at end.
func leftOf[T Coord](end T) func(Span[T]) Span[T] {
	return func(sp Span[T]) Span[T] {
		sp.Hi = end
		return sp
	}
}

// Stretch returns the spans with every lower bound moved by start and
// upper bound by end.
func (s Spans[T]) Stretch(start, end T) Spans[T] {
	return func(yield func(Span[T]) bool) {
		for sp := range s {
			if !yield(sp.Stretch(start, end)) {
				return
			}
		}
	}
}

// Offset translates every span: both bounds move by dx and the row by dy.
// Combinators mirror rows about y = -1/2, so offset the resulting points
// instead when the shape should move as a whole.
func (s Spans[T]) Offset(dx, dy T) Spans[T] {
	return func(yield func(Span[T]) bool) {
		for sp := range s {
			sp.Lo += dx
			sp.Hi += dx
			sp.Row += dy
			if !yield(sp) {
				return
			}
		}
	}
}

// Circle mirrors every row across the equator, producing a full disc.
// For radius 2:
//
//	(-2,-1) (-2,0) (-1,-1) (-1,0) (0,-1) (0,0) (1,-1) (1,0) (-1,-2) (-1,1) (0,-2) (0,1)
func (s Spans[T]) Circle() Points[T] {
	return s.fill(both, nil)
}

// CircleLong is Circle with each row stretched by start on the left and
// end on the right before mirroring. Negative values shrink the rows; rows
// that collapse emit nothing.
func (s Spans[T]) CircleLong(start, end T) Points[T] {
	return s.fill(both, stretch(start, end))
}

// SemicircleTop emits the rows as generated, y < 0.
func (s Spans[T]) SemicircleTop() Points[T] {
	return s.fill(upper, nil)
}

// SemicircleBottom emits only the mirrored rows, y >= 0.
func (s Spans[T]) SemicircleBottom() Points[T] {
	return s.fill(lower, nil)
}

// SemicircleTopLong is SemicircleTop with the rows stretched.
func (s Spans[T]) SemicircleTopLong(start, end T) Points[T] {
	return s.fill(upper, stretch(start, end))
}

// SemicircleBottomLong is SemicircleBottom with the rows stretched.
func (s Spans[T]) SemicircleBottomLong(start, end T) Points[T] {
	return s.fill(lower, stretch(start, end))
}

// FirstQuadrant emits the upper right wedge: x in [0, w+end) on the
// generated rows.
func (s Spans[T]) FirstQuadrant(end T) Points[T] {
	return s.fill(upper, rightOf(end))
}

// SecondQuadrant emits the upper left wedge: x in [-w, end).
func (s Spans[T]) SecondQuadrant(end T) Points[T] {
	return s.fill(upper, leftOf(end))
}

// ThirdQuadrant emits the lower left wedge: x in [-w, end) on the
// mirrored rows.
func (s Spans[T]) ThirdQuadrant(end T) Points[T] {
	return s.fill(lower, leftOf(end))
}

// FourthQuadrant emits the lower right wedge: x in [0, w+end) on the
// mirrored rows.
func (s Spans[T]) FourthQuadrant(end T) Points[T] {
	return s.fill(lower, rightOf(end))
}

// Offset translates every point by (dx, dy).
func (p Points[T]) Offset(dx, dy T) Points[T] {
	return func(yield func(Point[T]) bool) {
		for pt := range p {
			if !yield(pt.Add(dx, dy)) {
				return
			}
		}
	}
}

// Concat chains several point sequences into one.
func Concat[T Coord](seqs ...Points[T]) Points[T] {
	return func(yield func(Point[T]) bool) {
		for _, seq := range seqs {
			for pt := range seq {
				if !yield(pt) {
					return
				}
			}
		}
	}
}

// Count drains the sequence and returns the number of points.
func (p Points[T]) Count() int {
	n := 0
	for range p {
		n++
	}
	return n
}

// Collect gathers the points into a slice.
func (p Points[T]) Collect() []Point[T] {
	var out []Point[T]
	for pt := range p {
		out = append(out, pt)
	}
	return out
}
