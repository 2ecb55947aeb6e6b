package main

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/dgrest/sicxe-asm/internal/assembler"
	"github.com/dgrest/sicxe-asm/internal/config"
	"github.com/dgrest/sicxe-asm/internal/lexer"
	"github.com/dgrest/sicxe-asm/internal/listing"
	"github.com/dgrest/sicxe-asm/internal/parser"
)

func newAssembleCommand() *cobra.Command {
	var outputDir string
	var verbose bool

	cmd := &cobra.Command{
		Use:   "assemble <input-file>",
		Short: "Assemble a SIC/XE source file into an object program",
		Args:  cobra.ExactArgs(1),
	}
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runAssemble(args[0], outputDir, verbose)
	}

	cmd.Flags().StringVarP(&outputDir, "output", "o", "output", "output directory")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	return cmd
}

// runAssemble implements the §6 CLI shell: read the source file, run both
// passes, write the five output artifacts, and report warnings on stderr
// without changing the exit status.
func runAssemble(inputPath, outputDir string, verbose bool) error {
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

	if err := writeOutputs(outputDir, string(source), lines, p1, p2); err != nil {
		return reportFailure(err)
	}

	for _, w := range p2.Warnings.Warnings {
		fmt.Fprintln(os.Stderr, w.String())
	}

	if verbose {
		fmt.Printf("assembled %s -> %s (start=%06X length=%06X entry=%06X)\n",
			inputPath, outputDir, p1.Meta.StartAddr, p1.Meta.Length, p2.EntryPoint)
	}

	return nil
}

// reportFailure prints the §7 user-visible failure line and a mechanical
// backtrace to stderr, and returns the error so the caller exits non-zero.
func reportFailure(err error) error {
	fmt.Fprintf(os.Stderr, "Assembly failed: %s\n", err)
	fmt.Fprintln(os.Stderr, string(debug.Stack()))
	return err
}

func writeOutputs(outputDir, source string, lines []*parser.ParsedLine, p1 *assembler.Pass1Result, p2 *assembler.Pass2Result) error {
	cfg := config.DefaultConfig()

	preprocessed := lexer.Preprocess(source)

	files := map[string]string{
		cfg.Output.Intermediate:  listing.Intermediate(preprocessed),
		cfg.Output.Pass1:         listing.Pass1(p1.Listing),
		cfg.Output.SymbolTable:   listing.SymbolTable(p1.Symbols),
		cfg.Output.Pass2:         listing.Pass2(p2.Listing),
		cfg.Output.ObjectProgram: listing.ObjectProgram(p1.Meta, p2),
	}

	for rel, content := range files {
		full := filepath.Join(outputDir, rel)
		if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
			return err
		}
		if err := os.WriteFile(full, []byte(content), 0o644); err != nil {
			return err
		}
	}

	return nil
}
