package config

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch reloads path whenever it changes and sends each config that
// loads and validates. Failed reloads go to the error channel. Both
// channels close when ctx is done.
func Watch(ctx context.Context, path string) (<-chan *Config, <-chan error, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, nil, fmt.Errorf("watch config: %w", err)
	}
	path = filepath.Clean(path)
	// editors often replace the file, so watch its directory
	if err := w.Add(filepath.Dir(path)); err != nil {
		w.Close()
		return nil, nil, fmt.Errorf("watch config: %w", err)
	}

	cfgC := make(chan *Config, 1)
	errC := make(chan error, 1)
	go func() {
		defer close(cfgC)
		defer close(errC)
		defer w.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != path || ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				c, err := Load(path)
				if err != nil {
					send(ctx, errC, err)
					continue
				}
				send(ctx, cfgC, c)
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				send(ctx, errC, err)
			}
		}
	}()
	return cfgC, errC, nil
}

func send[T any](ctx context.Context, ch chan<- T, v T) {
	select {
	case ch <- v:
	case <-ctx.Done():
	}
}
