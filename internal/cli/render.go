package cli

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/gogpu/semicircle/internal/parallel"
	"github.com/gogpu/semicircle/scene"
)

type renderOptions struct {
	output string
	format string
	jobs   int
}

// outputs maps each scene path to the image it is rendered to.
func (o *renderOptions) outputs(scenes []string) ([]string, error) {
	if o.output != "" {
		if len(scenes) > 1 {
			return nil, errors.New("--output requires a single scene; use --format for batches")
		}
		return []string{o.output}, nil
	}
	out := make([]string, len(scenes))
	for i, p := range scenes {
		out[i] = strings.TrimSuffix(p, filepath.Ext(p)) + "." + strings.TrimPrefix(o.format, ".")
	}
	return out, nil
}

func renderScene(logger *log.Logger, in, out string) error {
	s, err := scene.Load(in)
	if err != nil {
		return err
	}
	logger.Debug("scene loaded", "path", in, "shapes", len(s.Shapes), "width", s.Width, "height", s.Height)

	c, err := s.Render()
	if err != nil {
		return fmt.Errorf("render %s: %w", in, err)
	}
	return c.Save(out)
}

func newRenderCmd() *cobra.Command {
	var o renderOptions

	cmd := &cobra.Command{
		Use:   "render <scene.toml|scene.yaml>...",
		Short: "Render scene files to images",
		Long: `Render draws every shape of a scene file onto one canvas and saves it.
The output format (png, bmp, tiff, pdf) is chosen from the output extension.

Several scenes are rendered concurrently; each is saved next to its scene
file with the extension given by --format.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			prog := newProgress(logger)

			outs, err := o.outputs(args)
			if err != nil {
				return err
			}

			pool := parallel.NewPool(min(o.jobs, len(args)))
			defer pool.Close()

			jobs := make([]parallel.Job, len(args))
			for i := range args {
				jobs[i] = func() error { return renderScene(logger, args[i], outs[i]) }
			}
			var failed []error
			for i, err := range pool.Run(jobs) {
				if err != nil {
					logger.Error("render failed", "scene", args[i], "err", err)
					failed = append(failed, err)
				}
			}
			if len(failed) > 0 {
				return errors.Join(failed...)
			}

			if len(args) == 1 {
				prog.done(fmt.Sprintf("Rendered %s to %s", args[0], outs[0]))
			} else {
				prog.done(fmt.Sprintf("Rendered %d scenes", len(args)))
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVarP(&o.output, "output", "o", "", "output image file (single scene only)")
	f.StringVar(&o.format, "format", "png", "output format for scenes without --output")
	f.IntVarP(&o.jobs, "jobs", "j", 0, "concurrent renders (0 = GOMAXPROCS)")
	return cmd
}
