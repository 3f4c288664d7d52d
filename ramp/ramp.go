// Package ramp provides continuous color ramps built from color stops.
//
// A Ramp satisfies semicircle.Ramp and can be handed directly to the
// gradient colorizers:
//
//	r := ramp.New(
//	    ramp.Stop{Offset: 0, Color: colorful.Color{R: 1}},
//	    ramp.Stop{Offset: 1, Color: colorful.Color{B: 1}},
//	)
//	pixels := shape.Gradient(r, radius)
package ramp

import (
	"math"
	"sort"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/gogpu/semicircle"
)

// ExtendMode defines how a ramp extends beyond [0, 1].
type ExtendMode int

const (
	// ExtendPad extends edge colors beyond bounds (default behavior).
	ExtendPad ExtendMode = iota
	// ExtendRepeat repeats the ramp.
	ExtendRepeat
	// ExtendReflect mirrors the ramp.
	ExtendReflect
)

// BlendSpace selects the color space stops are interpolated in.
type BlendSpace int

const (
	// BlendLinearRGB interpolates in linear sRGB (default).
	BlendLinearRGB BlendSpace = iota
	// BlendLab interpolates in CIE L*a*b*.
	BlendLab
	// BlendHcl interpolates in HCL, taking the shorter hue path.
	BlendHcl
)

// Stop is a color at a specific position in a ramp.
type Stop struct {
	Offset float64 // Position in the ramp, 0.0 to 1.0
	Color  colorful.Color
}

// Ramp is a piecewise color ramp over [0, 1].
type Ramp struct {
	stops  []Stop
	extend ExtendMode
	blend  BlendSpace
}

// New creates a ramp from the given stops. The stops are copied and sorted
// by offset.
func New(stops ...Stop) *Ramp {
	r := &Ramp{}
	for _, s := range stops {
		r.AddStop(s.Offset, s.Color)
	}
	return r
}

// FromHex creates a ramp with the given colors spaced evenly over [0, 1].
// It returns an error if any color is not a valid "#rrggbb" string.
func FromHex(hex ...string) (*Ramp, error) {
	r := &Ramp{}
	for i, h := range hex {
		c, err := colorful.Hex(h)
		if err != nil {
			return nil, err
		}
		off := 0.0
		if len(hex) > 1 {
			off = float64(i) / float64(len(hex)-1)
		}
		r.AddStop(off, c)
	}
	return r, nil
}

// mustHex is FromHex for the built-in presets.
func mustHex(hex ...string) *Ramp {
	r, err := FromHex(hex...)
	if err != nil {
		panic(err)
	}
	return r
}

// AddStop adds a color stop at offset. Returns the ramp for chaining.
func (r *Ramp) AddStop(offset float64, c colorful.Color) *Ramp {
	r.stops = append(r.stops, Stop{Offset: offset, Color: c})
	sort.SliceStable(r.stops, func(i, j int) bool {
		return r.stops[i].Offset < r.stops[j].Offset
	})
	return r
}

// SetExtend sets the extend mode. Returns the ramp for chaining.
func (r *Ramp) SetExtend(mode ExtendMode) *Ramp {
	r.extend = mode
	return r
}

// SetBlend sets the interpolation color space. Returns the ramp for chaining.
func (r *Ramp) SetBlend(space BlendSpace) *Ramp {
	r.blend = space
	return r
}

// Stops returns a copy of the ramp's stops in offset order.
func (r *Ramp) Stops() []Stop {
	out := make([]Stop, len(r.stops))
	copy(out, r.stops)
	return out
}

// At returns the color at position t.
func (r *Ramp) At(t float64) colorful.Color {
	switch len(r.stops) {
	case 0:
		return colorful.Color{}
	case 1:
		return r.stops[0].Color
	}

	t = applyExtendMode(t, r.extend)

	idx := sort.Search(len(r.stops), func(i int) bool {
		return r.stops[i].Offset >= t
	})
	if idx == 0 {
		return r.stops[0].Color
	}
	if idx >= len(r.stops) {
		return r.stops[len(r.stops)-1].Color
	}

	s1, s2 := r.stops[idx-1], r.stops[idx]
	if s2.Offset == s1.Offset {
		return s1.Color
	}
	local := (t - s1.Offset) / (s2.Offset - s1.Offset)
	return r.mix(s1.Color, s2.Color, local)
}

func (r *Ramp) mix(c1, c2 colorful.Color, t float64) colorful.Color {
	switch r.blend {
	case BlendLab:
		return c1.BlendLab(c2, t).Clamped()
	case BlendHcl:
		return c1.BlendHcl(c2, t).Clamped()
	default:
		return c1.BlendLinearRgb(c2, t).Clamped()
	}
}

// Eval returns the color at the rational position pos/total, implementing
// semicircle.Ramp. A zero total samples the start of the ramp.
func (r *Ramp) Eval(pos, total int) semicircle.RGB8 {
	t := 0.0
	if total != 0 {
		t = float64(pos) / float64(total)
	}
	cr, cg, cb := r.At(t).RGB255()
	return semicircle.RGB8{R: cr, G: cg, B: cb}
}

// applyExtendMode normalizes t to [0, 1] according to mode.
func applyExtendMode(t float64, mode ExtendMode) float64 {
	switch mode {
	case ExtendRepeat:
		t -= math.Floor(t)
	case ExtendReflect:
		t = math.Abs(t)
		period := math.Floor(t)
		t -= period
		if int(period)%2 == 1 {
			t = 1 - t
		}
	default: // ExtendPad
		t = min(max(t, 0), 1)
	}
	return t
}
