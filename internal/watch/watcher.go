// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package watch uploads study documents dropped into a local folder.
//
// The watcher observes one directory (non-recursive), debounces write
// bursts so half-copied files are not uploaded, and paces uploads with a
// rate limiter so dropping a folder full of PDFs does not flood the
// backend's embedding queue.
package watch

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/time/rate"

	"github.com/jeranaias/studybuddy-tui/internal/model"
)

// =============================================================================
// DROP FOLDER WATCHER
// =============================================================================

// UploadFunc pushes one file to the backend. The watcher calls it
// sequentially, already rate limited.
type UploadFunc func(ctx context.Context, path string) error

// Watcher watches a drop folder and uploads supported files.
type Watcher struct {
	dir      string
	debounce time.Duration
	limiter  *rate.Limiter
	upload   UploadFunc

	watcher *fsnotify.Watcher
	mu      sync.Mutex
	pending map[string]time.Time // path -> last write time
	seen    map[string]bool      // uploaded this session

	ctx    context.Context
	cancel context.CancelFunc
}

// New creates a watcher for dir. uploadsPerMinute caps the upload pace;
// the burst allows one immediate transfer.
func New(dir string, uploadsPerMinute int, upload UploadFunc) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if uploadsPerMinute <= 0 {
		uploadsPerMinute = 6
	}
	ctx, cancel := context.WithCancel(context.Background())

	return &Watcher{
		dir:      dir,
		debounce: 2 * time.Second,
		limiter:  rate.NewLimiter(rate.Limit(float64(uploadsPerMinute)/60.0), 1),
		upload:   upload,
		watcher:  fsw,
		pending:  make(map[string]time.Time),
		seen:     make(map[string]bool),
		ctx:      ctx,
		cancel:   cancel,
	}, nil
}

// Watch begins observing the drop folder. Files already present are
// queued once at startup, so a folder prepared in advance still syncs.
func (w *Watcher) Watch() error {
	if err := os.MkdirAll(w.dir, 0755); err != nil {
		return err
	}
	if err := w.watcher.Add(w.dir); err != nil {
		return err
	}

	w.queueExisting()

	go w.processEvents()
	go w.processPending()
	return nil
}

// Close stops watching and releases resources.
func (w *Watcher) Close() error {
	w.cancel()
	return w.watcher.Close()
}

// queueExisting queues supported files already sitting in the folder.
func (w *Watcher) queueExisting() {
	entries, err := os.ReadDir(w.dir)
	if err != nil {
		return
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := filepath.Join(w.dir, entry.Name())
		if model.IsSupportedFile(path) {
			w.pending[path] = time.Now()
		}
	}
}

// processEvents turns filesystem events into pending entries.
func (w *Watcher) processEvents() {
	for {
		select {
		case <-w.ctx.Done():
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			w.handleFileChange(event.Name)

		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
		}
	}
}

// handleFileChange records a supported file write, restarting its
// debounce window.
func (w *Watcher) handleFileChange(path string) {
	if !model.IsSupportedFile(path) {
		return
	}
	w.mu.Lock()
	w.pending[path] = time.Now()
	delete(w.seen, path)
	w.mu.Unlock()
}

// processPending uploads files whose debounce window has passed, paced by
// the rate limiter.
func (w *Watcher) processPending() {
	ticker := time.NewTicker(250 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-w.ctx.Done():
			return

		case <-ticker.C:
			for _, path := range w.takeSettled() {
				if err := w.limiter.Wait(w.ctx); err != nil {
					return
				}
				if err := w.upload(w.ctx, path); err != nil {
					// Leave it marked unseen so a rewrite retries it
					continue
				}
				w.mu.Lock()
				w.seen[path] = true
				w.mu.Unlock()
			}
		}
	}
}

// takeSettled removes and returns pending paths whose last write is older
// than the debounce window and that have not been uploaded yet.
func (w *Watcher) takeSettled() []string {
	now := time.Now()
	w.mu.Lock()
	defer w.mu.Unlock()

	var ready []string
	for path, changed := range w.pending {
		if now.Sub(changed) < w.debounce {
			continue
		}
		delete(w.pending, path)
		if w.seen[path] {
			continue
		}
		ready = append(ready, path)
	}
	return ready
}
