package config

import (
	"context"

	"github.com/fsnotify/fsnotify"

	"github.com/astrokit/unitconv/log"
)

// Watch re-loads the config whenever one of the given files is written and
// passes the result to onChange. It blocks until ctx is done. Events that
// arrive while a reload is in progress are coalesced by fsnotify's buffering;
// a reload that fails is logged and skipped, keeping the previous tables.
func Watch(ctx context.Context, onChange func(*Config), file ...string) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	for _, f := range file {
		if err = w.Add(f); err != nil {
			return err
		}
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case e, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
				continue
			}
			log.Debug("Config changed", "file", e.Name)
			cfg, err := Load(file...)
			if err != nil {
				log.Error("Reloading config", err, "file", e.Name)
				continue
			}
			onChange(cfg)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Warn("Watching config", "cause", err)
		}
	}
}
