// SPDX-License-Identifier: MPL-2.0

// Package watch re-runs a callback when the configuration file changes.
//
// It monitors the file's parent directory rather than the file itself, so
// editors that replace the file by rename (write temp, rename over) are
// observed, and the file may even be created after the watcher starts.
// Events within the debounce window are coalesced into a single callback.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
)

// defaultDebounce is the delay before firing the OnChange callback after the
// last filesystem event. Editors typically emit several events per save
// (write, chmod, rename); the quiet period folds them into one invocation.
const defaultDebounce = 500 * time.Millisecond

type (
	// Config holds the parameters for a Watcher.
	Config struct {
		// Path is the file to watch. Required. The file does not have to
		// exist yet; its parent directory does.
		Path string

		// Debounce is the quiet period after the last event before the
		// callback fires. Zero or negative values fall back to
		// defaultDebounce.
		Debounce time.Duration

		// OnChange is called after the debounce window closes. A nil
		// callback is a no-op. Errors are logged, not propagated; a bad
		// reload should not stop the watch loop.
		OnChange func(ctx context.Context) error
	}

	// Watcher monitors a single file and fires a debounced callback when it
	// changes. Run must be called exactly once; a second call returns an
	// error.
	Watcher struct {
		fsw      *fsnotify.Watcher
		dir      string
		filename string
		debounce time.Duration
		onChange func(ctx context.Context) error
		started  atomic.Bool
	}
)

// New creates a Watcher for the file at cfg.Path. It resolves the path to an
// absolute one and registers the parent directory with fsnotify.
func New(cfg Config) (*Watcher, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("watch: no file path given")
	}

	abs, err := filepath.Abs(cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("watch: resolve path %q: %w", cfg.Path, err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch: create fsnotify watcher: %w", err)
	}

	dir := filepath.Dir(abs)
	if err := fsw.Add(dir); err != nil {
		fsw.Close() //nolint:errcheck // best-effort cleanup
		return nil, fmt.Errorf("watch: add directory %q: %w", dir, err)
	}

	debounce := cfg.Debounce
	if debounce <= 0 {
		debounce = defaultDebounce
	}

	return &Watcher{
		fsw:      fsw,
		dir:      dir,
		filename: filepath.Base(abs),
		debounce: debounce,
		onChange: cfg.OnChange,
	}, nil
}

// Path returns the absolute path of the watched file.
func (w *Watcher) Path() string {
	return filepath.Join(w.dir, w.filename)
}

// Run blocks until ctx is cancelled, processing filesystem events and
// dispatching debounced callbacks. It returns nil on clean context
// cancellation and propagates fatal watcher errors.
func (w *Watcher) Run(ctx context.Context) error {
	if !w.started.CompareAndSwap(false, true) {
		return fmt.Errorf("watch: Run called more than once")
	}

	var (
		mu      sync.Mutex
		timer   *time.Timer
		running atomic.Bool
	)

	// fire invokes the OnChange callback. It may be scheduled by
	// time.AfterFunc after the context is cancelled, so ctx.Err() is checked
	// as a best-effort guard; the callback receives ctx and should check it
	// for cancellation-sensitive work. The skip-if-busy guard prevents
	// overlapping invocations when the callback outlasts the debounce
	// period; pending events are retried rather than dropped.
	fire := func() {
		if ctx.Err() != nil {
			return
		}
		if !running.CompareAndSwap(false, true) {
			slog.Debug("reload still in progress, rescheduling", "file", w.filename)
			mu.Lock()
			if timer != nil {
				timer.Reset(w.debounce)
			}
			mu.Unlock()
			return
		}
		defer running.Store(false)

		if w.onChange == nil {
			return
		}
		if err := w.onChange(ctx); err != nil {
			slog.Error("change callback failed", "file", w.filename, "error", err)
		}
	}

	// Drain the timer channel on exit. The timer is accessed under mu
	// because the event loop writes it under the same lock.
	defer func() {
		mu.Lock()
		localTimer := timer
		mu.Unlock()
		if localTimer != nil && !localTimer.Stop() {
			select {
			case <-localTimer.C:
			default:
			}
		}
		if closeErr := w.fsw.Close(); closeErr != nil {
			slog.Warn("close fsnotify watcher", "error", closeErr)
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case evt, ok := <-w.fsw.Events:
			if !ok {
				return fmt.Errorf("watch: fsnotify event channel closed unexpectedly")
			}
			if filepath.Base(evt.Name) != w.filename {
				continue
			}

			mu.Lock()
			if timer == nil {
				timer = time.AfterFunc(w.debounce, fire)
			} else {
				timer.Reset(w.debounce)
			}
			mu.Unlock()

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return fmt.Errorf("watch: fsnotify error channel closed unexpectedly")
			}
			// Resource exhaustion (inotify limits, file descriptor limits)
			// means the watcher cannot recover. isFatalFsnotifyError is
			// platform-specific (see watcher_fatal_*.go).
			if isFatalFsnotifyError(err) {
				return fmt.Errorf("watch: fatal fsnotify error: %w", err)
			}
			slog.Warn("fsnotify error", "error", err)
		}
	}
}
