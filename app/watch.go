// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package app

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// WatchFiles watches the given files and sends on the returned channel
// when any of them is written or created. At most one signal is pending
// at a time. The watch ends when ctx is done or stop is called.
func WatchFiles(ctx context.Context, files ...string) (<-chan struct{}, func() error, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, nil, err
	}
	names := map[string]bool{}
	dirs := map[string]bool{}
	for _, f := range files {
		abs, err := filepath.Abs(f)
		if err != nil {
			w.Close()
			return nil, nil, err
		}
		names[abs] = true
		dirs[filepath.Dir(abs)] = true
	}
	// directories are watched so that editors that replace
	// the file on save are seen
	for d := range dirs {
		if err := w.Add(d); err != nil {
			w.Close()
			return nil, nil, err
		}
	}
	ch := make(chan struct{}, 1)
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
					continue
				}
				if !names[filepath.Clean(ev.Name)] {
					continue
				}
				slog.Debug("shader file changed", "file", ev.Name, "op", ev.Op)
				select {
				case ch <- struct{}{}:
				default:
				}
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				slog.Warn("watching shader files", "err", err)
			}
		}
	}()
	return ch, w.Close, nil
}
