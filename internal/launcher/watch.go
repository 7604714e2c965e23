// ============================================================================
// mLaunch - Command Launcher
// ============================================================================
//
// Package:     launcher
// Description: Hot-reload of shortcut and translation files
// Author:      Mike Stoffels
// Created:     2025-12-09
// License:     MIT
// ============================================================================

package launcher

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	mdwerror "github.com/msto63/mLaunch/foundation/core/error"
	"github.com/msto63/mLaunch/pkg/core/logging"
)

// DefaultDebounce is the quiet period before a changed file is reloaded
const DefaultDebounce = 500 * time.Millisecond

// Watcher reloads the resource files of a Resources when they change
type Watcher struct {
	res      *Resources
	logger   *logging.Logger
	debounce time.Duration

	mu       sync.Mutex
	watcher  *fsnotify.Watcher
	reloads  map[string]func() error // cleaned path -> reload
	pending  map[string]*time.Timer
	onReload func(path string, err error)
	stopCh   chan struct{}
	running  bool
}

// NewWatcher creates a watcher for the shortcut file and, if configured, the
// external translation file of res
func NewWatcher(res *Resources) *Watcher {
	w := &Watcher{
		res:      res,
		logger:   res.logger,
		debounce: DefaultDebounce,
		reloads:  make(map[string]func() error),
		pending:  make(map[string]*time.Timer),
	}
	w.reloads[filepath.Clean(res.shortcutsFile)] = res.ReloadShortcuts
	if res.translationsFile != "" {
		w.reloads[filepath.Clean(res.translationsFile)] = res.ReloadTranslations
	}
	return w
}

// SetDebounce changes the quiet period; call before Start
func (w *Watcher) SetDebounce(d time.Duration) {
	w.debounce = d
}

// SetOnReload sets a callback invoked after every reload attempt
func (w *Watcher) SetOnReload(fn func(path string, err error)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onReload = fn
}

// Start begins watching. The directories of the files are watched so that
// files replaced by rename are picked up.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.running {
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return mdwerror.Wrap(err, "failed to create watcher").
			WithCode(mdwerror.CodeInternal).
			WithOperation("launcher.Watcher.Start")
	}

	dirs := make(map[string]bool)
	for path := range w.reloads {
		dir := filepath.Dir(path)
		if dirs[dir] {
			continue
		}
		dirs[dir] = true
		if err := watcher.Add(dir); err != nil {
			watcher.Close()
			return mdwerror.Wrap(err, "failed to watch directory").
				WithCode(mdwerror.CodeNotFound).
				WithOperation("launcher.Watcher.Start").
				WithDetail("dir", dir)
		}
	}

	w.watcher = watcher
	w.stopCh = make(chan struct{})
	w.running = true
	w.logger.Info("Started watching resource files", "files", len(w.reloads))

	go w.watchLoop(ctx, watcher, w.stopCh)
	return nil
}

// Stop ends the watch loop
func (w *Watcher) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.running {
		close(w.stopCh)
		w.running = false
	}
}

func (w *Watcher) watchLoop(ctx context.Context, watcher *fsnotify.Watcher, stopCh <-chan struct{}) {
	defer func() {
		watcher.Close()
		w.mu.Lock()
		for path, t := range w.pending {
			t.Stop()
			delete(w.pending, path)
		}
		if w.stopCh == stopCh {
			w.running = false
		}
		w.mu.Unlock()
	}()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("Stopping resource watcher (context cancelled)")
			return

		case <-stopCh:
			w.logger.Info("Stopping resource watcher (stop signal)")
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if event.Op == fsnotify.Chmod {
				continue
			}
			w.schedule(filepath.Clean(event.Name))

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("Watcher error", "error", err)
		}
	}
}

// schedule reloads path once no further event arrived for the debounce
// period
func (w *Watcher) schedule(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	reload, ok := w.reloads[path]
	if !ok {
		return
	}
	if t, exists := w.pending[path]; exists {
		t.Reset(w.debounce)
		return
	}
	w.pending[path] = time.AfterFunc(w.debounce, func() {
		w.mu.Lock()
		delete(w.pending, path)
		onReload := w.onReload
		w.mu.Unlock()

		err := reload()
		if err != nil {
			w.logger.Warn("Resource reload failed, keeping previous contents", "file", path, "error", err)
		} else {
			w.logger.Info("Resource reloaded", "file", path)
		}
		if onReload != nil {
			onReload(path, err)
		}
	})
}
