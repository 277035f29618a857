package main

import (
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
)

// newLogger returns a text logger on a terminal and a JSON logger
// otherwise.
func newLogger(w *os.File, verbose bool) *slog.Logger {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if verbose {
		opts.Level = slog.LevelDebug
	}
	if isatty.IsTerminal(w.Fd()) || isatty.IsCygwinTerminal(w.Fd()) {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}
