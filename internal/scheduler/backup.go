package scheduler

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/tabdeck/tabdeck/internal/logger"
	"github.com/tabdeck/tabdeck/internal/store"
)

// Backup periodically snapshots the exported document to a directory and
// prunes old snapshots. Snapshots are the same pretty-printed JSON the
// import endpoint accepts, so restoring one is a plain import.
type Backup struct {
	store    *store.Store
	log      logger.Logger
	dir      string
	interval time.Duration
	keep     int
	stopCh   chan struct{}
}

func NewBackup(st *store.Store, log logger.Logger, dir string, interval time.Duration, keep int) *Backup {
	return &Backup{
		store:    st,
		log:      log,
		dir:      dir,
		interval: interval,
		keep:     keep,
		stopCh:   make(chan struct{}),
	}
}

// Start takes an initial snapshot, then snapshots on every tick until
// the context ends.
func (b *Backup) Start(ctx context.Context) error {
	if err := b.RunOnce(ctx); err != nil {
		return fmt.Errorf("initial backup failed: %w", err)
	}

	ticker := time.NewTicker(b.interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := b.RunOnce(ctx); err != nil {
					b.log.Error("config backup failed", logger.Error(err))
				}
			case <-b.stopCh:
				return
			case <-ctx.Done():
				return
			}
		}
	}()

	return nil
}

// Stop stops the scheduler.
func (b *Backup) Stop() {
	close(b.stopCh)
}

// RunOnce writes one timestamped snapshot and prunes beyond the keep
// limit.
func (b *Backup) RunOnce(ctx context.Context) error {
	if err := os.MkdirAll(b.dir, 0o755); err != nil {
		return fmt.Errorf("create backup dir: %w", err)
	}

	name := fmt.Sprintf("%s-%s.json", store.StorageKey, time.Now().Format("20060102-150405"))
	path := filepath.Join(b.dir, name)

	data := b.store.Export(ctx)
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		return fmt.Errorf("write backup: %w", err)
	}

	b.log.Debug("wrote config backup", logger.String("path", path))
	return b.prune()
}

func (b *Backup) prune() error {
	pattern := filepath.Join(b.dir, store.StorageKey+"-*.json")
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return fmt.Errorf("list backups: %w", err)
	}
	if len(matches) <= b.keep {
		return nil
	}

	// Timestamped names sort chronologically.
	sort.Strings(matches)
	for _, old := range matches[:len(matches)-b.keep] {
		if err := os.Remove(old); err != nil {
			b.log.Warn("failed to prune backup",
				logger.String("path", old), logger.Error(err))
		}
	}
	return nil
}
