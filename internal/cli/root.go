// Package cli implements the semicircle command-line interface.
//
// Commands:
//   - render: draw a TOML or YAML scene file
//   - shape: draw a single shape
//   - spans: print the raw row spans of a radius
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version string
	commit  string
	date    string
)

// SetVersion sets the version information displayed by --version.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the CLI with os.Args.
func Execute() error {
	sink := &logSink{}
	return execute(context.Background(), newRootCmd(os.Stdout, os.Stderr, sink), sink)
}

// execute runs root and closes the log file afterwards, whether or not the
// command succeeded.
func execute(ctx context.Context, root *cobra.Command, sink *logSink) (err error) {
	defer func() {
		if cerr := sink.Close(); err == nil {
			err = cerr
		}
	}()
	return root.ExecuteContext(ctx)
}

func newRootCmd(stdout, stderr io.Writer, sink *logSink) *cobra.Command {
	var (
		verbose bool
		logPath string
	)

	root := &cobra.Command{
		Use:           "semicircle",
		Short:         "Rasterize filled circles, semicircles and quadrants",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := log.InfoLevel
			if verbose {
				level = log.DebugLevel
			}
			w := stderr
			if logPath != "" {
				w = io.MultiWriter(stderr, sink.open(logPath))
			}
			l := newLogger(w, level)
			installLogger(l)
			cmd.SetContext(withLogger(cmd.Context(), l))
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetVersionTemplate(fmt.Sprintf("semicircle %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&logPath, "log-file", "", "also append logs to this file (rotated at 10 MB)")

	root.AddCommand(newRenderCmd())
	root.AddCommand(newShapeCmd())
	root.AddCommand(newSpansCmd())
	return root
}
