package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gogpu/semicircle/ramp"
	"github.com/gogpu/semicircle/scene"
)

type shapeOptions struct {
	radius    uint
	start     int
	end       int
	margin    int
	reverse   bool
	color     string
	ramp      string
	gradient  string
	direction string
	output    string
}

// scene wraps the single shape in a canvas just large enough to hold it.
func (o *shapeOptions) scene(kind string) *scene.Scene {
	r := int(o.radius)
	left := r + abs(o.start) + o.margin
	sh := scene.Shape{
		Kind:    kind,
		Radius:  o.radius,
		Center:  [2]int{left, r + o.margin},
		Start:   o.start,
		End:     o.end,
		Reverse: o.reverse,
		Color:   o.color,
	}
	if o.gradient != "" {
		sh.Gradient = &scene.Gradient{Kind: o.gradient, Ramp: o.ramp, Direction: o.direction}
	}
	return &scene.Scene{
		Width:  left + r + abs(o.end) + o.margin,
		Height: 2*r + 2*o.margin,
		Shapes: []scene.Shape{sh},
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func newShapeCmd() *cobra.Command {
	var o shapeOptions

	cmd := &cobra.Command{
		Use:   "shape <kind>",
		Short: "Render a single shape to an image",
		Long: fmt.Sprintf(`Shape draws one figure centered on a canvas sized to fit it.

Kinds: %s
Ramps: %s`, strings.Join(scene.Kinds(), ", "), strings.Join(ramp.Names(), ", ")),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			prog := newProgress(logger)

			s := o.scene(args[0])
			c, err := s.Render()
			if err != nil {
				return err
			}
			if err := c.Save(o.output); err != nil {
				return err
			}
			prog.done(fmt.Sprintf("Rendered %s (radius %d, %dx%d) to %s", args[0], o.radius, s.Width, s.Height, o.output))
			return nil
		},
	}

	f := cmd.Flags()
	f.UintVarP(&o.radius, "radius", "r", 128, "circle radius in pixels")
	f.IntVar(&o.start, "start", 0, "stretch applied to the left edge of long shapes")
	f.IntVar(&o.end, "end", 0, "stretch applied to the right edge, or the straight edge of quadrants")
	f.IntVar(&o.margin, "margin", 0, "empty border around the shape")
	f.BoolVar(&o.reverse, "reverse", false, "walk rows from the pole")
	f.StringVarP(&o.color, "color", "c", "#c39cd8", "fill color")
	f.StringVar(&o.gradient, "gradient", "", `gradient kind: "axial" or "directional"`)
	f.StringVar(&o.ramp, "ramp", "cubehelix", "gradient color ramp")
	f.StringVar(&o.direction, "direction", "bottom-right", "directional gradient direction")
	f.StringVarP(&o.output, "output", "o", "shape.png", "output image file")
	return cmd
}
