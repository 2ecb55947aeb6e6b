// Package logging provides the assembler's debug logger. It is silent by
// default and only writes when SICASM_DEBUG is set, the same gating the
// teacher codebase uses for its service-layer debug log.
package logging

import (
	"io"
	"log"
	"os"
	"path/filepath"
)

// Log is the package-wide debug logger. Disabled (io.Discard) unless
// SICASM_DEBUG is set in the environment.
var Log = newLogger()

func newLogger() *log.Logger {
	if os.Getenv("SICASM_DEBUG") == "" {
		return log.New(io.Discard, "", 0)
	}

	logPath := filepath.Join(os.TempDir(), "sicasm-debug.log")
	f, err := os.OpenFile(logPath, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0600) // #nosec G304 -- fixed filename in temp dir
	if err != nil {
		return log.New(os.Stderr, "SICASM: ", log.Ltime|log.Lmicroseconds)
	}
	return log.New(f, "SICASM: ", log.Ltime|log.Lmicroseconds)
}
