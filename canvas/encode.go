package canvas

import (
	"bytes"
	"errors"
	"fmt"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/jung-kurt/gofpdf"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/gogpu/semicircle"
)

// ErrUnknownFormat is returned for an image format the canvas cannot encode.
var ErrUnknownFormat = errors.New("canvas: unknown image format")

// Format is an image file encoding.
type Format int

const (
	// FormatPNG encodes with image/png.
	FormatPNG Format = iota
	// FormatBMP encodes with golang.org/x/image/bmp.
	FormatBMP
	// FormatTIFF encodes with golang.org/x/image/tiff (deflate compressed).
	FormatTIFF
	// FormatPDF embeds the PNG encoding in a single PDF page of the same
	// size, one point per pixel.
	FormatPDF
)

func (f Format) String() string {
	switch f {
	case FormatPNG:
		return "png"
	case FormatBMP:
		return "bmp"
	case FormatTIFF:
		return "tiff"
	case FormatPDF:
		return "pdf"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return FormatPNG, nil
	case ".bmp":
		return FormatBMP, nil
	case ".tif", ".tiff":
		return FormatTIFF, nil
	case ".pdf":
		return FormatPDF, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(path))
	}
}

// Encode writes the canvas to w in the given format.
func (c *Canvas) Encode(w io.Writer, f Format) error {
	img := c.ToImage()
	switch f {
	case FormatPNG:
		return png.Encode(w, img)
	case FormatBMP:
		return bmp.Encode(w, img)
	case FormatTIFF:
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	case FormatPDF:
		return c.encodePDF(w)
	default:
		return fmt.Errorf("%w: %v", ErrUnknownFormat, f)
	}
}

func (c *Canvas) encodePDF(w io.Writer) error {
	var buf bytes.Buffer
	if err := png.Encode(&buf, c.ToImage()); err != nil {
		return err
	}

	width, height := float64(c.width), float64(c.height)
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "pt",
		Size:    gofpdf.SizeType{Wd: width, Ht: height},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("canvas", opts, &buf)
	pdf.ImageOptions("canvas", 0, 0, width, height, false, opts, 0, "")
	return pdf.Output(w)
}

// Save writes the canvas to path, choosing the format from its extension.
func (c *Canvas) Save(path string) (err error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	out, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
	}()

	if err := c.Encode(out, f); err != nil {
		return fmt.Errorf("canvas: encode %s: %w", path, err)
	}
	semicircle.Logger().Info("canvas: saved", "path", path, "format", f.String(),
		"width", c.width, "height", c.height)
	return nil
}
