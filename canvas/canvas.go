// Package canvas is a small RGBA pixel buffer that shapes from package
// semicircle can be drawn into and saved as an image or PDF file.
package canvas

import (
	"image"
	"image/color"

	"github.com/gogpu/semicircle"
)

// Canvas represents a rectangular pixel buffer.
type Canvas struct {
	width  int
	height int
	data   []uint8 // RGBA format, 4 bytes per pixel
}

// New creates a canvas with the given dimensions, filled with transparent
// black.
func New(width, height int) *Canvas {
	return &Canvas{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// Width returns the width of the canvas.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the height of the canvas.
func (c *Canvas) Height() int {
	return c.height
}

// Data returns the raw pixel data (RGBA format).
func (c *Canvas) Data() []uint8 {
	return c.data
}

// SetPixel sets the color of a single pixel. Out-of-bounds coordinates are
// ignored and reported by returning false.
func (c *Canvas) SetPixel(x, y int, col semicircle.RGB8) bool {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return false
	}
	i := (y*c.width + x) * 4
	c.data[i+0] = col.R
	c.data[i+1] = col.G
	c.data[i+2] = col.B
	c.data[i+3] = 0xff
	return true
}

// Pixel returns the color of a single pixel, or black outside the canvas.
func (c *Canvas) Pixel(x, y int) semicircle.RGB8 {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return semicircle.RGB8{}
	}
	i := (y*c.width + x) * 4
	return semicircle.RGB8{R: c.data[i+0], G: c.data[i+1], B: c.data[i+2]}
}

// Clear fills the entire canvas with a color.
func (c *Canvas) Clear(col semicircle.RGB8) {
	for i := 0; i < len(c.data); i += 4 {
		c.data[i+0] = col.R
		c.data[i+1] = col.G
		c.data[i+2] = col.B
		c.data[i+3] = 0xff
	}
}

// Plot draws every point of pts in a single color and returns the number of
// points written. Points outside the canvas are dropped.
func Plot[T semicircle.Coord](c *Canvas, pts semicircle.Points[T], col semicircle.RGB8) int {
	var written, dropped int
	for p := range pts {
		if c.SetPixel(int(p.X), int(p.Y), col) {
			written++
		} else {
			dropped++
		}
	}
	c.reportDropped(dropped)
	return written
}

// Paint draws colored pixels and returns the number written. Pixels outside
// the canvas are dropped.
func Paint[T semicircle.Coord](c *Canvas, px semicircle.Pixels[T]) int {
	var written, dropped int
	for p := range px {
		if c.SetPixel(int(p.X), int(p.Y), p.Color) {
			written++
		} else {
			dropped++
		}
	}
	c.reportDropped(dropped)
	return written
}

func (c *Canvas) reportDropped(n int) {
	if n > 0 {
		semicircle.Logger().Warn("canvas: points outside canvas dropped",
			"count", n, "width", c.width, "height", c.height)
	}
}

// ToImage converts the canvas to an image.RGBA.
func (c *Canvas) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, c.width, c.height))
	copy(img.Pix, c.data)
	return img
}

// At implements the image.Image interface.
func (c *Canvas) At(x, y int) color.Color {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return color.RGBA{}
	}
	i := (y*c.width + x) * 4
	return color.RGBA{R: c.data[i+0], G: c.data[i+1], B: c.data[i+2], A: c.data[i+3]}
}

// Bounds implements the image.Image interface.
func (c *Canvas) Bounds() image.Rectangle {
	return image.Rect(0, 0, c.width, c.height)
}

// ColorModel implements the image.Image interface.
func (c *Canvas) ColorModel() color.Model {
	return color.RGBAModel
}
