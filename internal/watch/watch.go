// Package watch reconciles the document when another process rewrites
// the store file. A filesystem change on the tracked path feeds the same
// "document changed" signal local mutations use, so observers refresh
// identically regardless of where the write came from. Two contexts
// writing concurrently resolve last-write-wins at the storage layer;
// no merge is attempted.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/tabdeck/tabdeck/internal/logger"
	"github.com/tabdeck/tabdeck/internal/notify"
)

// debounceWindow collapses write bursts (temp-file rename dances, editors
// saving twice) into a single refresh.
const debounceWindow = 100 * time.Millisecond

// FileWatcher emits on the notifier whenever the store file changes.
type FileWatcher struct {
	path     string
	notifier *notify.Notifier
	log      logger.Logger
	watcher  *fsnotify.Watcher
	stopCh   chan struct{}
}

func NewFileWatcher(path string, notifier *notify.Notifier, log logger.Logger) *FileWatcher {
	return &FileWatcher{
		path:     path,
		notifier: notifier,
		log:      log,
		stopCh:   make(chan struct{}),
	}
}

// Start begins watching and returns immediately. The watch is on the
// parent directory: atomic writes replace the file by rename, and a
// watch on the file itself would die with the old inode.
func (fw *FileWatcher) Start(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create fs watcher: %w", err)
	}

	dir := filepath.Dir(fw.path)
	if err := watcher.Add(dir); err != nil {
		_ = watcher.Close()
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	fw.watcher = watcher

	fw.log.Info("watching config file for external changes",
		logger.String("path", fw.path))

	go fw.loop(ctx)
	return nil
}

// Stop ends the watch.
func (fw *FileWatcher) Stop() {
	close(fw.stopCh)
}

func (fw *FileWatcher) loop(ctx context.Context) {
	defer func() {
		if err := fw.watcher.Close(); err != nil {
			fw.log.Warn("failed to close fs watcher", logger.Error(err))
		}
	}()

	var debounce *time.Timer
	defer func() {
		if debounce != nil {
			debounce.Stop()
		}
	}()

	target := filepath.Clean(fw.path)
	for {
		select {
		case event, ok := <-fw.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}

			fw.log.Debug("config file changed externally",
				logger.String("op", event.Op.String()))

			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(debounceWindow, fw.notifier.Emit)

		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return
			}
			fw.log.Warn("fs watcher error", logger.Error(err))

		case <-fw.stopCh:
			return
		case <-ctx.Done():
			return
		}
	}
}
