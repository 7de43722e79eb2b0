package commands

import (
	"io"
	"log/slog"
	"time"

	"github.com/lmittmann/tint"

	"github.com/erraggy/dref/resolver"
)

// newLogger returns the resolver logger for the given verbosity. Without -v
// resolution is silent.
func newLogger(w io.Writer, verbosity int, color bool) resolver.Logger {
	if verbosity == 0 {
		return resolver.NopLogger{}
	}
	handler := tint.NewHandler(w, &tint.Options{
		Level:      slog.LevelDebug,
		TimeFormat: time.Kitchen,
		NoColor:    !color,
	})
	return resolver.NewSlogAdapter(slog.New(handler))
}
