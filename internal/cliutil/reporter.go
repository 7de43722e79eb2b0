package cliutil

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// ErrorPrefix starts every error line.
const ErrorPrefix = "Error: "

// ColorMode selects when output is colored.
type ColorMode string

const (
	// ColorAuto colors a stream only when it is a terminal and NO_COLOR is unset.
	ColorAuto ColorMode = "auto"
	// ColorAlways always colors.
	ColorAlways ColorMode = "always"
	// ColorNever never colors.
	ColorNever ColorMode = "never"
)

// Reporter prints messages for the user. Errors are red on stderr, debug
// messages blue on stdout and only shown when verbose, info messages plain
// on stdout.
type Reporter struct {
	out     io.Writer
	err     io.Writer
	verbose bool

	errColor   *color.Color
	debugColor *color.Color
}

// NewReporter creates a Reporter writing to out and errOut.
func NewReporter(out, errOut io.Writer, mode ColorMode, verbose bool) *Reporter {
	r := &Reporter{
		out:        out,
		err:        errOut,
		verbose:    verbose,
		errColor:   color.New(color.FgRed),
		debugColor: color.New(color.FgBlue),
	}
	setColor(r.errColor, UseColor(mode, errOut))
	setColor(r.debugColor, UseColor(mode, out))
	return r
}

func setColor(c *color.Color, enabled bool) {
	if enabled {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
}

// UseColor reports whether output to w is colored under mode.
func UseColor(mode ColorMode, w io.Writer) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		return os.Getenv("NO_COLOR") == "" && IsTerminal(w)
	}
}

// IsTerminal reports whether w is a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Verbose reports whether debug messages are shown.
func (r *Reporter) Verbose() bool {
	return r.verbose
}

// Out returns the stream info and debug messages are written to.
func (r *Reporter) Out() io.Writer {
	return r.out
}

// Errorf prints an error line to stderr.
func (r *Reporter) Errorf(format string, args ...any) {
	Writef(r.err, "%s\n", r.errColor.Sprint(ErrorPrefix+fmt.Sprintf(format, args...)))
}

// Infof prints an informational line to stdout.
func (r *Reporter) Infof(format string, args ...any) {
	Writef(r.out, format+"\n", args...)
}

// Debugf prints a diagnostic line to stdout when verbose.
func (r *Reporter) Debugf(format string, args ...any) {
	if !r.verbose {
		return
	}
	Writef(r.out, "%s\n", r.debugColor.Sprintf(format, args...))
}
