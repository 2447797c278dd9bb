package dataset

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watcher reloads the dataset registry when its backing file changes,
// so outline and record-store path edits take effect without a
// restart.
type Watcher struct {
	registry *Registry
	watcher  *fsnotify.Watcher
	logger   *zap.Logger
	stopCh   chan struct{}
}

// NewWatcher creates a watcher for the registry's backing file.
func NewWatcher(registry *Registry, logger *zap.Logger) (*Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	if err := watcher.Add(registry.Path()); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to watch registry file: %w", err)
	}

	// Also watch the directory for atomic saves (rename operations).
	if err := watcher.Add(filepath.Dir(registry.Path())); err != nil {
		logger.Warn("failed to watch registry directory", zap.Error(err))
	}

	return &Watcher{
		registry: registry,
		watcher:  watcher,
		logger:   logger,
		stopCh:   make(chan struct{}),
	}, nil
}

// Start begins watching for registry changes.
func (w *Watcher) Start() {
	go w.watchLoop()
	w.logger.Info("dataset registry watcher started", zap.String("path", w.registry.Path()))
}

// Stop stops watching.
func (w *Watcher) Stop() {
	close(w.stopCh)
	w.watcher.Close()
	w.logger.Info("dataset registry watcher stopped")
}

func (w *Watcher) watchLoop() {
	// Debounce to avoid reloading on every partial write.
	var debounceTimer *time.Timer
	debounceDuration := 100 * time.Millisecond

	for {
		select {
		case <-w.stopCh:
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != filepath.Base(w.registry.Path()) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				if debounceTimer != nil {
					debounceTimer.Stop()
				}
				debounceTimer = time.AfterFunc(debounceDuration, w.reload)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("registry watcher error", zap.Error(err))
		}
	}
}

func (w *Watcher) reload() {
	if err := w.registry.Reload(); err != nil {
		w.logger.Error("failed to reload dataset registry, keeping previous", zap.Error(err))
		return
	}
	w.logger.Info("dataset registry reloaded")
}
