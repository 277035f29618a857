package main

import (
	"context"
	"errors"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/syssam/typedtuple/compiler"
)

const debounce = 200 * time.Millisecond

// runWatch generates once and again after every change to the declaration
// file, until ctx is done. Generation errors are logged and do not stop
// the loop.
func runWatch(ctx context.Context, f *flags, log *slog.Logger) error {
	path := f.configPath()
	if path == "" {
		return errors.New("watch needs a declaration file")
	}
	path, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()
	// Editors often replace the file on save, so watch its directory.
	if err := w.Add(filepath.Dir(path)); err != nil {
		return err
	}

	regenerate := func() {
		m, err := compiler.Generate(ctx, path, f.options(log)...)
		if err != nil {
			log.Error("generation failed", "err", err)
			return
		}
		report(log, m)
	}
	regenerate()
	log.Info("watching for changes", "file", path)

	timer := time.NewTimer(debounce)
	timer.Stop()
	defer timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != path || !ev.Has(fsnotify.Write|fsnotify.Create|fsnotify.Rename) {
				continue
			}
			log.Debug("declaration changed", "op", ev.Op.String())
			timer.Reset(debounce)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Warn("watch error", "err", err)
		case <-timer.C:
			regenerate()
		}
	}
}
