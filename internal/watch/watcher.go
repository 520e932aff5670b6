// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package watch re-parses a conflicted file whenever it changes on disk.
package watch

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/tauantcamargo/lazyreview-sub002/internal/conflict"
)

// =============================================================================
// FILE WATCHER
// =============================================================================

// ReloadFunc receives the freshly built three-way view after the watched
// file changes. It is called from the watcher's goroutine.
type ReloadFunc func(chunks []conflict.Chunk)

// FileWatcher watches a single conflicted file and rebuilds its three-way
// view when the file is written, with debouncing so editor save bursts
// produce one reload.
type FileWatcher struct {
	path     string
	watcher  *fsnotify.Watcher
	debounce time.Duration
	reload   ReloadFunc

	mu      sync.Mutex
	pending time.Time // Zero when no change is waiting

	ctx    context.Context
	cancel context.CancelFunc
}

// New creates a watcher for path. The reload callback fires after each
// debounced change; it is not called for the initial content.
func New(path string, debounce time.Duration, reload ReloadFunc) (*FileWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &FileWatcher{
		path:     path,
		watcher:  watcher,
		debounce: debounce,
		reload:   reload,
		ctx:      ctx,
		cancel:   cancel,
	}, nil
}

// Watch starts watching for file changes.
//
// The parent directory is watched rather than the file itself: editors
// that save via rename (vim, emacs) replace the inode, which would
// silently detach a direct file watch.
func (fw *FileWatcher) Watch() error {
	if err := fw.watcher.Add(filepath.Dir(fw.path)); err != nil {
		return err
	}

	go fw.processEvents()
	go fw.processPending()

	return nil
}

// Close stops watching and releases resources.
func (fw *FileWatcher) Close() error {
	fw.cancel()
	return fw.watcher.Close()
}

// processEvents marks the file pending on relevant filesystem events.
func (fw *FileWatcher) processEvents() {
	for {
		select {
		case <-fw.ctx.Done():
			return

		case event, ok := <-fw.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != filepath.Clean(fw.path) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				fw.mu.Lock()
				fw.pending = time.Now()
				fw.mu.Unlock()
			}

		case _, ok := <-fw.watcher.Errors:
			if !ok {
				return
			}
			// Watch errors are non-fatal; the next event may still arrive.
		}
	}
}

// processPending fires the reload callback once a pending change has been
// stable for the debounce window.
func (fw *FileWatcher) processPending() {
	interval := fw.debounce / 4
	if interval < 10*time.Millisecond {
		interval = 10 * time.Millisecond
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-fw.ctx.Done():
			return

		case <-ticker.C:
			fw.mu.Lock()
			ready := !fw.pending.IsZero() && time.Since(fw.pending) >= fw.debounce
			if ready {
				fw.pending = time.Time{}
			}
			fw.mu.Unlock()

			if !ready {
				continue
			}

			content, err := os.ReadFile(fw.path)
			if err != nil {
				// File may be mid-rename; a later event will retry.
				continue
			}
			fw.reload(conflict.BuildThreeWayView(string(content)))
		}
	}
}
