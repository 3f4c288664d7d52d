package scene

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/gogpu/semicircle"
	"github.com/gogpu/semicircle/canvas"
	"github.com/gogpu/semicircle/ramp"
)

// Kind is a shape combinator.
type Kind int

// Shape kinds, named after the combinator they apply.
const (
	Circle Kind = iota
	CircleLong
	SemicircleTop
	SemicircleBottom
	SemicircleTopLong
	SemicircleBottomLong
	FirstQuadrant
	SecondQuadrant
	ThirdQuadrant
	FourthQuadrant
)

var kindNames = [...]string{
	Circle:               "circle",
	CircleLong:           "circle-long",
	SemicircleTop:        "semicircle-top",
	SemicircleBottom:     "semicircle-bottom",
	SemicircleTopLong:    "semicircle-top-long",
	SemicircleBottomLong: "semicircle-bottom-long",
	FirstQuadrant:        "first-quadrant",
	SecondQuadrant:       "second-quadrant",
	ThirdQuadrant:        "third-quadrant",
	FourthQuadrant:       "fourth-quadrant",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind converts a kind name such as "semicircle-top" or
// "first_quadrant" into a Kind.
func ParseKind(s string) (Kind, error) {
	norm := strings.ToLower(strings.ReplaceAll(s, "_", "-"))
	for k, name := range kindNames {
		if name == norm {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownShape, s)
}

// Kinds returns every shape kind name.
func Kinds() []string {
	return slices.Clone(kindNames[:])
}

// Apply runs the combinator for k over spans. start and end are ignored by
// kinds that do not use them.
func (k Kind) Apply(spans semicircle.Spans[int], start, end int) semicircle.Points[int] {
	switch k {
	case CircleLong:
		return spans.CircleLong(start, end)
	case SemicircleTop:
		return spans.SemicircleTop()
	case SemicircleBottom:
		return spans.SemicircleBottom()
	case SemicircleTopLong:
		return spans.SemicircleTopLong(start, end)
	case SemicircleBottomLong:
		return spans.SemicircleBottomLong(start, end)
	case FirstQuadrant:
		return spans.FirstQuadrant(end)
	case SecondQuadrant:
		return spans.SecondQuadrant(end)
	case ThirdQuadrant:
		return spans.ThirdQuadrant(end)
	case FourthQuadrant:
		return spans.FourthQuadrant(end)
	default:
		return spans.Circle()
	}
}

var (
	white = semicircle.RGB8{R: 255, G: 255, B: 255}
	black = semicircle.RGB8{}
)

// parseColor parses a "#rrggbb" or "#rgb" color, returning def for "".
func parseColor(s string, def semicircle.RGB8) (semicircle.RGB8, error) {
	if s == "" {
		return def, nil
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return def, fmt.Errorf("%w: color %q", ErrInvalidScene, s)
	}
	r, g, b := c.RGB255()
	return semicircle.RGB8{R: r, G: g, B: b}, nil
}

// colorizer turns points into pixels.
type colorizer func(semicircle.Points[int]) semicircle.Pixels[int]

func (g *Gradient) colorizer(radius uint) (colorizer, error) {
	name := g.Ramp
	if name == "" {
		name = "cubehelix"
	}
	rp, ok := ramp.ByName(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownRamp, g.Ramp)
	}

	switch strings.ToLower(g.Kind) {
	case "", "axial":
		return func(p semicircle.Points[int]) semicircle.Pixels[int] {
			return p.Gradient(rp, int(radius))
		}, nil
	case "directional":
		dir, ok := semicircle.ParseDirection(g.Direction)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownDirection, g.Direction)
		}
		size := defaultSize(dir, radius)
		if g.Size != nil {
			if *g.Size <= 0 {
				return nil, fmt.Errorf("%w: gradient size %d", ErrInvalidScene, *g.Size)
			}
			size = *g.Size
		}
		offset := size
		if g.Offset != nil {
			offset = *g.Offset
		}
		dg := semicircle.Directed(dir, rp)
		return func(p semicircle.Points[int]) semicircle.Pixels[int] {
			return p.DirectionalGradient(offset, size, dg)
		}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownGradient, g.Kind)
	}
}

// defaultSize is the projection half-range of a disc of the given radius:
// r along an axis, r*sqrt2 along a diagonal.
func defaultSize(d semicircle.Direction, radius uint) int {
	switch d {
	case semicircle.DirectionLeft, semicircle.DirectionRight, semicircle.DirectionTop, semicircle.DirectionBottom:
		return int(radius)
	default:
		return int(math.Ceil(float64(radius) * math.Sqrt2))
	}
}

// Render draws the scene onto a new canvas.
func (s *Scene) Render() (*canvas.Canvas, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	bg, _ := parseColor(s.Background, white)
	c := canvas.New(s.Width, s.Height)
	c.Clear(bg)

	for i := range s.Shapes {
		n, err := s.Shapes[i].Draw(c)
		if err != nil {
			return nil, fmt.Errorf("shape %d: %w", i, err)
		}
		semicircle.Logger().Debug("scene: shape drawn", "index", i, "kind", s.Shapes[i].Kind, "pixels", n)
	}
	return c, nil
}

// Points returns the shape's pixel coordinates on the canvas.
func (sh *Shape) Points() (semicircle.Points[int], error) {
	k, err := ParseKind(sh.Kind)
	if err != nil {
		return nil, err
	}
	gen, err := semicircle.New[int](sh.Radius)
	if err != nil {
		return nil, err
	}
	spans := gen.Spans()
	if sh.Reverse {
		spans = gen.Backward()
	}
	return k.Apply(spans, sh.Start, sh.End), nil
}

// Draw renders the shape onto c and returns the number of pixels written.
func (sh *Shape) Draw(c *canvas.Canvas) (int, error) {
	pts, err := sh.Points()
	if err != nil {
		return 0, err
	}
	cx, cy := sh.Center[0], sh.Center[1]
	if sh.Gradient != nil {
		colorize, err := sh.Gradient.colorizer(sh.Radius)
		if err != nil {
			return 0, err
		}
		return canvas.Paint(c, colorize(pts).Offset(cx, cy)), nil
	}
	col, err := parseColor(sh.Color, black)
	if err != nil {
		return 0, err
	}
	return canvas.Plot(c, pts.Offset(cx, cy), col), nil
}
