// Package semicircle generates the integer pixels of filled circles,
// semicircles, quarter circles and their stretched ("long") variants.
//
// # Overview
//
// A [Semicircle] walks the boundary of a circle with the midpoint
// (Bresenham) algorithm and yields one [Span] per row of the upper half,
// from the equator to the pole. Nothing is allocated per row and no
// floating point is involved.
//
// Spans are turned into pixels by combinators that mirror, halve, clip,
// stretch and translate them:
//
//	s := semicircle.MustNew[int32](uint(128))
//	for p := range s.Spans().Circle().Offset(128, 128) {
//	    img.Set(int(p.X), int(p.Y), c)
//	}
//
// # Coordinate System
//
// Rows of the generated half have y < 0; row y mirrors to -y-1, so a
// circle of radius r covers x, y in [-r, r). The origin sits between the
// four central pixels.
//
// # Double-ended Traversal
//
// Rows can be pulled from the equator ([Semicircle.Next]) and from the
// pole ([Semicircle.NextBack]) in any interleaving. Each row is produced
// exactly once and the pole-first order is the reverse of the equator-first
// order.
//
// # Gradients
//
// [Points.Gradient] and [Points.DirectionalGradient] attach an [RGB8] color
// sampled from a caller supplied [Ramp]. The ramp package provides stop
// based ramps; the canvas package provides a pixel buffer to draw into.
package semicircle
