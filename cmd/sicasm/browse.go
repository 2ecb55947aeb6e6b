package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/dgrest/sicxe-asm/internal/assembler"
	"github.com/dgrest/sicxe-asm/internal/tui"
)

func newBrowseCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "browse <input-file>",
		Short: "Assemble a source file and browse its listing interactively",
		Args:  cobra.ExactArgs(1),
	}
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runBrowse(args[0])
	}

	return cmd
}

func runBrowse(inputPath string) error {
	source, err := os.ReadFile(inputPath)
	if err != nil {
		return reportFailure(err)
	}

	lines, err := assembler.ParseProgram(inputPath, string(source))
	if err != nil {
		return reportFailure(err)
	}

	p1, err := assembler.Pass1(lines)
	if err != nil {
		return reportFailure(err)
	}

	enc := assembler.NewEncoder(p1.Symbols)
	p2, err := enc.Run(lines, p1.Meta)
	if err != nil {
		return reportFailure(err)
	}

	return tui.NewBrowser(p1, p2).Run()
}
