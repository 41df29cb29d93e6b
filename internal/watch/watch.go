// Package watch reloads content when local source files change.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/ziadkadry99/folio/internal/debounce"
)

// DefaultQuiet is how long the files must stay unchanged before a reload.
const DefaultQuiet = 300 * time.Millisecond

// Watcher triggers a reload after a burst of changes to any watched file.
type Watcher struct {
	fsw      *fsnotify.Watcher
	files    map[string]bool
	reload   func(context.Context)
	debounce *debounce.Debouncer
	logger   *zap.Logger
}

// New watches paths. The parent directories are watched rather than the
// files themselves so that editors replacing a file by rename are noticed.
func New(paths []string, quiet time.Duration, reload func(context.Context), logger *zap.Logger) (*Watcher, error) {
	if quiet <= 0 {
		quiet = DefaultQuiet
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating file watcher: %w", err)
	}

	w := &Watcher{
		fsw:      fsw,
		files:    make(map[string]bool),
		reload:   reload,
		debounce: debounce.New(quiet),
		logger:   logger.Named("watch"),
	}
	dirs := make(map[string]bool)
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			fsw.Close()
			return nil, fmt.Errorf("resolving %s: %w", p, err)
		}
		w.files[abs] = true
		dir := filepath.Dir(abs)
		if dirs[dir] {
			continue
		}
		if err := fsw.Add(dir); err != nil {
			fsw.Close()
			return nil, fmt.Errorf("watching %s: %w", dir, err)
		}
		dirs[dir] = true
	}
	return w, nil
}

// Files returns the number of watched files.
func (w *Watcher) Files() int { return len(w.files) }

// Run dispatches file events until ctx is done, then releases the watcher.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.fsw.Close()
	defer w.debounce.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if !w.relevant(ev) {
				continue
			}
			w.logger.Debug("source changed", zap.String("file", ev.Name), zap.String("op", ev.Op.String()))
			w.debounce.Schedule(func() {
				if ctx.Err() != nil {
					return
				}
				w.logger.Info("reloading after source change")
				w.reload(ctx)
			})
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("file watcher error", zap.Error(err))
		}
	}
}

func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
		return false
	}
	abs, err := filepath.Abs(ev.Name)
	if err != nil {
		return false
	}
	return w.files[abs]
}
