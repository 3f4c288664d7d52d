package semicircle

import (
	"fmt"
	"image/color"
)

// RGB8 is an opaque 8-bit-per-channel color.
type RGB8 struct {
	R, G, B uint8
}

// RGBA implements the color.Color interface.
func (c RGB8) RGBA() (r, g, b, a uint32) {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}.RGBA()
}

// Array returns the color as an [R, G, B] triple.
func (c RGB8) Array() [3]uint8 {
	return [3]uint8{c.R, c.G, c.B}
}

func (c RGB8) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Ramp is a continuous color ramp sampled at the rational position
// pos/total. The gradient colorizers only ever pass 0 <= pos <= total.
type Ramp interface {
	Eval(pos, total int) RGB8
}

// RampFunc adapts an ordinary function to the Ramp interface.
type RampFunc func(pos, total int) RGB8

// Eval calls f(pos, total).
func (f RampFunc) Eval(pos, total int) RGB8 {
	return f(pos, total)
}
