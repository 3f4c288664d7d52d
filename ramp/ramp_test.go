package ramp

import (
	"math"
	"testing"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/gogpu/semicircle"
)

var (
	red  = colorful.Color{R: 1}
	blue = colorful.Color{B: 1}
)

func TestApplyExtendMode(t *testing.T) {
	tests := []struct {
		name string
		t    float64
		mode ExtendMode
		want float64
	}{
		{"pad negative", -0.5, ExtendPad, 0},
		{"pad middle", 0.5, ExtendPad, 0.5},
		{"pad over", 1.5, ExtendPad, 1},
		{"repeat negative", -0.25, ExtendRepeat, 0.75},
		{"repeat 1.25", 1.25, ExtendRepeat, 0.25},
		{"reflect negative", -0.25, ExtendReflect, 0.25},
		{"reflect 1.25", 1.25, ExtendReflect, 0.75},
		{"reflect 2.25", 2.25, ExtendReflect, 0.25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := applyExtendMode(tt.t, tt.mode); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("applyExtendMode(%v, %v) = %v, want %v", tt.t, tt.mode, got, tt.want)
			}
		})
	}
}

func TestRampEndpoints(t *testing.T) {
	r := New(Stop{Offset: 1, Color: blue}, Stop{Offset: 0, Color: red})
	if got := r.Eval(0, 10); got != (semicircle.RGB8{R: 255}) {
		t.Errorf("Eval(0, 10) = %v, want red", got)
	}
	if got := r.Eval(10, 10); got != (semicircle.RGB8{B: 255}) {
		t.Errorf("Eval(10, 10) = %v, want blue", got)
	}
	if got := r.Eval(3, 0); got != (semicircle.RGB8{R: 255}) {
		t.Errorf("Eval with zero total = %v, want red", got)
	}
}

func TestRampPadsOutOfRange(t *testing.T) {
	r := New(Stop{Offset: 0, Color: red}, Stop{Offset: 1, Color: blue})
	if got := r.Eval(-5, 10); got != r.Eval(0, 10) {
		t.Errorf("Eval(-5, 10) = %v, want start color", got)
	}
	if got := r.Eval(50, 10); got != r.Eval(10, 10) {
		t.Errorf("Eval(50, 10) = %v, want end color", got)
	}
}

func TestRampMidpointLinear(t *testing.T) {
	r := New(Stop{Offset: 0, Color: red}, Stop{Offset: 1, Color: blue})
	mid := r.Eval(1, 2)
	// Linear-light blending of pure red and blue lifts both channels above
	// the naive 127.
	if mid.R < 150 || mid.B < 150 || mid.G != 0 {
		t.Errorf("Eval(1, 2) = %v, want bright purple", mid)
	}
	lab := New(Stop{Offset: 0, Color: red}, Stop{Offset: 1, Color: blue}).SetBlend(BlendLab).Eval(1, 2)
	if lab == mid {
		t.Error("Lab and linear RGB blends should differ")
	}
}

func TestRampDegenerate(t *testing.T) {
	if got := New().Eval(1, 2); got != (semicircle.RGB8{}) {
		t.Errorf("empty ramp = %v, want black", got)
	}
	one := New(Stop{Offset: 0.3, Color: blue})
	if got := one.Eval(9, 10); got != (semicircle.RGB8{B: 255}) {
		t.Errorf("single stop ramp = %v, want blue", got)
	}
	same := New(Stop{Offset: 0.5, Color: red}, Stop{Offset: 0.5, Color: blue})
	if got := same.Eval(0, 1); got != (semicircle.RGB8{R: 255}) {
		t.Errorf("coincident stops below = %v, want red", got)
	}
}

func TestRampRepeat(t *testing.T) {
	r := New(Stop{Offset: 0, Color: red}, Stop{Offset: 1, Color: blue}).SetExtend(ExtendRepeat)
	if got, want := r.At(1.25), r.At(0.25); got != want {
		t.Errorf("At(1.25) = %v, want %v", got, want)
	}
}

func TestFromHex(t *testing.T) {
	r, err := FromHex("#000000", "#808080", "#ffffff")
	if err != nil {
		t.Fatalf("FromHex: %v", err)
	}
	stops := r.Stops()
	if len(stops) != 3 || stops[1].Offset != 0.5 {
		t.Fatalf("stops = %+v", stops)
	}
	if _, err := FromHex("#zzz"); err == nil {
		t.Error("FromHex(#zzz) should fail")
	}
}

func TestPresets(t *testing.T) {
	for _, name := range Names() {
		r, ok := ByName(name)
		if !ok {
			t.Fatalf("ByName(%q) not found", name)
		}
		if len(r.Stops()) < 2 {
			t.Errorf("%s has %d stops", name, len(r.Stops()))
		}
	}
	if _, ok := ByName("BROWN_GREEN"); !ok {
		t.Error("ByName should ignore case and underscores")
	}
	if _, ok := ByName("rainbow"); ok {
		t.Error("ByName(rainbow) should not match")
	}
	if got := Greys.Eval(0, 4); got != (semicircle.RGB8{R: 255, G: 255, B: 255}) {
		t.Errorf("Greys start = %v, want white", got)
	}
}

func TestRampAsGradient(t *testing.T) {
	s := semicircle.MustNew[int32](uint(8))
	px := s.Spans().SemicircleBottom().Gradient(BrownGreen, 8).Collect()
	if px[0].Color != BrownGreen.Eval(0, 16) {
		t.Errorf("equator color = %v, want %v", px[0].Color, BrownGreen.Eval(0, 16))
	}
}
