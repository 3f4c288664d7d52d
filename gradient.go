package semicircle

import (
	"fmt"
	"iter"
	"strings"
)

// Pixels is a lazy sequence of colored points.
type Pixels[T Coord] iter.Seq[Pixel[T]]

// Direction is the direction in which a directional gradient advances
// through its ramp.
type Direction uint8

const (
	// DirectionLeft samples offset - x.
	DirectionLeft Direction = iota
	// DirectionTopLeft samples offset - (x + y).
	DirectionTopLeft
	// DirectionTop samples offset - y.
	DirectionTop
	// DirectionTopRight samples offset + (x - y).
	DirectionTopRight
	// DirectionRight samples offset + x.
	DirectionRight
	// DirectionBottomRight samples offset + (x + y).
	DirectionBottomRight
	// DirectionBottom samples offset + y.
	DirectionBottom
	// DirectionBottomLeft samples offset - (x - y).
	DirectionBottomLeft
)

var directionNames = [...]string{
	DirectionLeft:        "left",
	DirectionTopLeft:     "top-left",
	DirectionTop:         "top",
	DirectionTopRight:    "top-right",
	DirectionRight:       "right",
	DirectionBottomRight: "bottom-right",
	DirectionBottom:      "bottom",
	DirectionBottomLeft:  "bottom-left",
}

func (d Direction) String() string {
	if int(d) < len(directionNames) {
		return directionNames[d]
	}
	return fmt.Sprintf("Direction(%d)", d)
}

// ParseDirection converts a name such as "top-right" (or "top_right",
// "TopRight") into a Direction.
func ParseDirection(s string) (Direction, bool) {
	norm := strings.ToLower(strings.NewReplacer("_", "", "-", "", " ", "").Replace(s))
	for d, name := range directionNames {
		if strings.ReplaceAll(name, "-", "") == norm {
			return Direction(d), true
		}
	}
	return 0, false
}

// project returns the scalar position of (x, y) along d.
func project[T Coord](d Direction, offset, x, y T) T {
	switch d {
	case DirectionLeft:
		return offset - x
	case DirectionTopLeft:
		return offset - (x + y)
	case DirectionTop:
		return offset - y
	case DirectionTopRight:
		return offset + (x - y)
	case DirectionRight:
		return offset + x
	case DirectionBottomRight:
		return offset + (x + y)
	case DirectionBottom:
		return offset + y
	case DirectionBottomLeft:
		return offset - (x - y)
	default:
		return offset
	}
}

// DirectedGradient pairs a Direction with the ramp it samples.
type DirectedGradient struct {
	Direction Direction
	Ramp      Ramp
}

// Directed returns a gradient advancing along d.
func Directed(d Direction, r Ramp) DirectedGradient {
	return DirectedGradient{Direction: d, Ramp: r}
}

// Left returns a gradient advancing towards -x.
func Left(r Ramp) DirectedGradient { return Directed(DirectionLeft, r) }

// TopLeft returns a gradient advancing towards the upper left.
func TopLeft(r Ramp) DirectedGradient { return Directed(DirectionTopLeft, r) }

// Top returns a gradient advancing towards -y.
func Top(r Ramp) DirectedGradient { return Directed(DirectionTop, r) }

// TopRight returns a gradient advancing towards the upper right.
func TopRight(r Ramp) DirectedGradient { return Directed(DirectionTopRight, r) }

// Right returns a gradient advancing towards +x.
func Right(r Ramp) DirectedGradient { return Directed(DirectionRight, r) }

// BottomRight returns a gradient advancing towards the lower right.
func BottomRight(r Ramp) DirectedGradient { return Directed(DirectionBottomRight, r) }

// Bottom returns a gradient advancing towards +y.
func Bottom(r Ramp) DirectedGradient { return Directed(DirectionBottom, r) }

// BottomLeft returns a gradient advancing towards the lower left.
func BottomLeft(r Ramp) DirectedGradient { return Directed(DirectionBottomLeft, r) }

// clampPos pins pos to [0, total]. Positions outside the ramp domain are
// clamped rather than rejected.
func clampPos(pos, total int) int {
	if pos < 0 {
		return 0
	}
	if pos > total {
		return total
	}
	return pos
}

// Gradient colors each point by its distance from the equator: the ramp is
// sampled at |y| / (2*radius).
func (p Points[T]) Gradient(r Ramp, radius int) Pixels[T] {
	total := 2 * radius
	return func(yield func(Pixel[T]) bool) {
		for pt := range p {
			c := r.Eval(clampPos(int(abs(pt.Y)), total), total)
			if !yield(Pixel[T]{X: pt.X, Y: pt.Y, Color: c}) {
				return
			}
		}
	}
}

// DirectionalGradient colors each point by its projection onto g's
// direction, shifted by offset. size is the half-range of the gradient:
// the ramp is sampled as Eval(offset+projection, 2*size), over
// [0, 2*size]. With offset = size = ceil(r*sqrt2) a diagonal gradient
// spans a disc of radius r exactly. Projections outside the domain are
// clamped.
func (p Points[T]) DirectionalGradient(offset T, size int, g DirectedGradient) Pixels[T] {
	total := 2 * size
	return func(yield func(Pixel[T]) bool) {
		for pt := range p {
			pos := int(project(g.Direction, offset, pt.X, pt.Y))
			c := g.Ramp.Eval(clampPos(pos, total), total)
			if !yield(Pixel[T]{X: pt.X, Y: pt.Y, Color: c}) {
				return
			}
		}
	}
}

// Offset translates every pixel by (dx, dy), keeping its color.
func (p Pixels[T]) Offset(dx, dy T) Pixels[T] {
	return func(yield func(Pixel[T]) bool) {
		for px := range p {
			px.X += dx
			px.Y += dy
			if !yield(px) {
				return
			}
		}
	}
}

// ConcatPixels chains several pixel sequences into one.
func ConcatPixels[T Coord](seqs ...Pixels[T]) Pixels[T] {
	return func(yield func(Pixel[T]) bool) {
		for _, seq := range seqs {
			for px := range seq {
				if !yield(px) {
					return
				}
			}
		}
	}
}

// Collect gathers the pixels into a slice.
func (p Pixels[T]) Collect() []Pixel[T] {
	var out []Pixel[T]
	for px := range p {
		out = append(out, px)
	}
	return out
}
