// Package cliutil writes the command-line tool's user-facing messages.
//
// Errors go to stderr with an "Error: " prefix, everything else to stdout.
// Color is applied per stream, only when that stream is a terminal unless
// forced on or off.
package cliutil

import (
	"fmt"
	"io"
	"os"
)

// Writef writes formatted output to the writer.
// If the write fails, it logs to stderr.
func Writef(w io.Writer, format string, args ...any) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "write error: %v\n", err)
	}
}
