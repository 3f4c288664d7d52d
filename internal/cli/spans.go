package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/gogpu/semicircle"
)

// printSpans writes one span per line, from the pole when reverse is set.
func printSpans[T semicircle.Coord](w io.Writer, s *semicircle.Semicircle[T], reverse bool) error {
	seq := s.Spans()
	if reverse {
		seq = s.Backward()
	}
	for sp := range seq {
		if _, err := fmt.Fprintln(w, sp); err != nil {
			return err
		}
	}
	return nil
}

func newSpansCmd() *cobra.Command {
	var (
		radius  uint64
		typ     string
		reverse bool
	)

	cmd := &cobra.Command{
		Use:   "spans",
		Short: "Print the row spans of a semicircle",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			switch typ {
			case "int32":
				s, err := semicircle.New[int32](radius)
				if err != nil {
					return err
				}
				return printSpans(w, s, reverse)
			case "int64":
				s, err := semicircle.New[int64](radius)
				if err != nil {
					return err
				}
				return printSpans(w, s, reverse)
			case "int":
				s, err := semicircle.New[int](radius)
				if err != nil {
					return err
				}
				return printSpans(w, s, reverse)
			default:
				return fmt.Errorf("unknown coordinate type %q (want int, int32 or int64)", typ)
			}
		},
	}

	f := cmd.Flags()
	f.Uint64VarP(&radius, "radius", "r", 5, "circle radius")
	f.StringVar(&typ, "type", "int32", "coordinate type: int, int32 or int64")
	f.BoolVar(&reverse, "reverse", false, "print from the pole to the equator")
	return cmd
}
