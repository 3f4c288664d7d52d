package semicircle

import (
	"fmt"
	"iter"
)

// walk is one cursor of the midpoint boundary walk. x climbs from -r to 0
// and y from 0 towards r-1; err is the midpoint decision term.
type walk[T Coord] struct {
	x, y, err T
}

// step applies a single midpoint transition.
func (w *walk[T]) step() {
	prev := w.err
	if prev <= w.y {
		w.y++
		w.err += 2*w.y + 2
	}
	if prev > w.x || w.err > w.y {
		w.x++
		w.err += 2*w.x + 2
	}
}

// next returns the span for the current row and advances until y moves,
// coalescing the shallow sub-steps near the equator into one row.
func (w *walk[T]) next() Span[T] {
	s := Span[T]{Lo: w.x, Hi: -w.x, Row: -(w.y + 1)}
	for y := w.y; w.y == y && w.x != 0; {
		w.step()
	}
	return s
}

// nextBack walks forward until x advances and returns the pole-side row
// that x level closes. Rows are reported through the octant symmetry, so
// the pole is reached first.
func (w *walk[T]) nextBack() Span[T] {
	for {
		x, y := w.x, w.y
		w.step()
		if w.x == x {
			continue
		}
		if w.y == y {
			return Span[T]{Lo: -(w.y + 1), Hi: w.y + 1, Row: w.x - 1}
		}
		return Span[T]{Lo: -w.y, Hi: w.y, Row: w.x - 1}
	}
}

// Semicircle generates the rows of a filled upper semicircle, one span per
// row from the equator (row -1) to the pole (row -r), using the midpoint
// circle algorithm. Each span [-w, w) is symmetric about x = -1/2 and the
// mirrored lower half is obtained by mapping row y to -y-1.
//
// A Semicircle is double-ended: Next pulls from the equator and NextBack
// from the pole. The two ends never overlap and together produce every row
// exactly once. Copying the value (see Clone) yields an independent walk.
type Semicircle[T Coord] struct {
	front     walk[T]
	back      walk[T]
	remaining T
}

// New creates a generator for a filled semicircle of the given radius.
//
// It returns ErrRadiusUnrepresentable if radius does not fit in T and
// ErrRadiusTooLarge if it is not below MaxRadius. A radius of zero yields
// a generator that is already exhausted.
//
// Example:
//
//	s, err := semicircle.New[int32](uint(5))
//	// s.Collect() == [[-5, 5)@-1 [-5, 5)@-2 [-4, 4)@-3 [-3, 3)@-4 [-2, 2)@-5]
func New[T Coord, U Radius](radius U) (*Semicircle[T], error) {
	r, ok := toCoord[T](radius)
	if !ok {
		return nil, fmt.Errorf("%w: %d does not fit in %T", ErrRadiusUnrepresentable, radius, r)
	}
	if r >= MaxRadius {
		return nil, fmt.Errorf("%w: %d >= %d", ErrRadiusTooLarge, r, MaxRadius)
	}

	w := walk[T]{x: -r, y: 0, err: 2 - 2*r}
	Logger().Debug("semicircle: generator created", "radius", int64(r), "type", fmt.Sprintf("%T", r))
	return &Semicircle[T]{front: w, back: w, remaining: r}, nil
}

// MustNew is like New but panics if the radius is rejected.
// It simplifies initialization of generators with constant radii.
func MustNew[T Coord, U Radius](radius U) *Semicircle[T] {
	s, err := New[T](radius)
	if err != nil {
		panic(err)
	}
	return s
}

// Next returns the next row from the equator side. Once every row has been
// produced by either end it returns false, and keeps doing so.
func (s *Semicircle[T]) Next() (Span[T], bool) {
	if s.remaining == 0 {
		return Span[T]{}, false
	}
	s.remaining--
	return s.front.next(), true
}

// NextBack returns the next row from the pole side. Draining a generator
// with NextBack yields the rows of Next in reverse order.
func (s *Semicircle[T]) NextBack() (Span[T], bool) {
	if s.remaining == 0 {
		return Span[T]{}, false
	}
	s.remaining--
	return s.back.nextBack(), true
}

// Len returns the number of rows not yet produced by either end.
func (s *Semicircle[T]) Len() int {
	return int(s.remaining)
}

// Clone returns an independent copy of the generator. Advancing the copy
// does not affect s.
func (s *Semicircle[T]) Clone() *Semicircle[T] {
	c := *s
	return &c
}

// Spans returns an iterator that drains s from the equator. The iterator
// consumes the receiver, so ranging over it a second time yields nothing;
// use Clone to iterate the same shape more than once.
func (s *Semicircle[T]) Spans() Spans[T] {
	return func(yield func(Span[T]) bool) {
		for {
			sp, ok := s.Next()
			if !ok || !yield(sp) {
				return
			}
		}
	}
}

// Backward is like Spans but drains s from the pole.
func (s *Semicircle[T]) Backward() Spans[T] {
	return func(yield func(Span[T]) bool) {
		for {
			sp, ok := s.NextBack()
			if !ok || !yield(sp) {
				return
			}
		}
	}
}

// Collect drains s from the equator into a slice.
func (s *Semicircle[T]) Collect() []Span[T] {
	out := make([]Span[T], 0, s.Len())
	for sp := range s.Spans() {
		out = append(out, sp)
	}
	return out
}

// String reports the equator-side walk state.
func (s *Semicircle[T]) String() string {
	return fmt.Sprintf("Semicircle{x: %d, y: %d, err: %d}", s.front.x, s.front.y, s.front.err)
}

// Spans is a lazy sequence of rows. The shape combinators are defined on
// it so they apply equally to front and back traversal.
type Spans[T Coord] iter.Seq[Span[T]]

// Collect gathers the remaining spans into a slice.
func (s Spans[T]) Collect() []Span[T] {
	var out []Span[T]
	for sp := range s {
		out = append(out, sp)
	}
	return out
}
