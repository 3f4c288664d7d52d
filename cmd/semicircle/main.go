// Command semicircle renders filled circles, semicircles and quadrants to
// image files.
package main

import (
	"fmt"
	"os"

	"github.com/gogpu/semicircle/internal/cli"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cli.SetVersion(version, commit, date)
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
