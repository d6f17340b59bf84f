// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package watcher reports changes to fragment files so the effective
// configuration can be rebuilt.
package watcher

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/MKhiriev/pagescfg/internal/logger"
)

// DefaultDebounce is used when a non-positive debounce is given.
const DefaultDebounce = 200 * time.Millisecond

// ErrNoPaths is returned by Watch when there is nothing to watch.
var ErrNoPaths = errors.New("no fragment files to watch")

// Watcher observes a fixed set of files. Parent directories are watched
// rather than the files themselves, so editors that save by rename keep
// being tracked.
type Watcher struct {
	files    map[string]struct{}
	dirs     []string
	debounce time.Duration
	logger   *logger.Logger
}

// New constructs a Watcher for paths.
func New(paths []string, debounce time.Duration, log *logger.Logger) (*Watcher, error) {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	if log == nil {
		log = logger.Nop()
	}

	w := &Watcher{
		files:    make(map[string]struct{}, len(paths)),
		debounce: debounce,
		logger:   log,
	}

	seenDirs := make(map[string]struct{})
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return nil, fmt.Errorf("error resolving %q: %w", p, err)
		}
		w.files[abs] = struct{}{}

		dir := filepath.Dir(abs)
		if _, ok := seenDirs[dir]; !ok {
			seenDirs[dir] = struct{}{}
			w.dirs = append(w.dirs, dir)
		}
	}

	return w, nil
}

// Watch blocks until ctx is done. After a burst of changes to any watched
// file settles for the debounce interval, onChange is called once. onChange
// always runs on the Watch goroutine, never concurrently with itself.
//
// Returns nil when ctx is cancelled.
func (w *Watcher) Watch(ctx context.Context, onChange func(context.Context)) error {
	if len(w.files) == 0 {
		return ErrNoPaths
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("error creating watcher: %w", err)
	}
	defer fsw.Close()

	for _, dir := range w.dirs {
		if err = fsw.Add(dir); err != nil {
			return fmt.Errorf("error watching %q: %w", dir, err)
		}
	}

	w.logger.Info().Strs("dirs", w.dirs).Msg("watching fragment files")

	var (
		timer   *time.Timer
		pending <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info().Msg("watcher stopped")
			return nil

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}

			w.logger.Debug().Str("path", event.Name).Str("op", event.Op.String()).Msg("fragment file changed")

			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			pending = timer.C

		case <-pending:
			pending = nil
			onChange(ctx)

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Error().Err(err).Msg("watcher error")
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
		return false
	}
	abs, err := filepath.Abs(event.Name)
	if err != nil {
		return false
	}
	_, ok := w.files[abs]
	return ok
}
