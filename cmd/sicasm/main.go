// Command sicasm assembles SIC/XE source files and browses the resulting
// listing.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information, overridable at build time with:
// go build -ldflags "-X main.Version=v1.2.3"
var (
	Version = "dev"
	Commit  = "unknown"
)

func main() {
	root := &cobra.Command{
		Use:     "sicasm",
		Short:   "A two-pass SIC/XE assembler",
		Version: fmt.Sprintf("%s (%s)", Version, Commit),
	}

	root.AddCommand(newAssembleCommand())
	root.AddCommand(newBrowseCommand())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
