// Package file implements the store.KV boundary on a single JSON file,
// the local-storage analog for a daemon. Writes are atomic (temp file +
// rename) so a concurrent reader or a crash never observes a torn
// document.
package file

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// KV stores the document at a fixed path.
type KV struct {
	path string
}

func New(path string) *KV {
	return &KV{path: path}
}

// Path returns the backing file location; the cross-context watcher
// observes this path.
func (k *KV) Path() string { return k.path }

func (k *KV) Get(ctx context.Context) ([]byte, bool, error) {
	data, err := os.ReadFile(k.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read config file: %w", err)
	}
	return data, true, nil
}

func (k *KV) Set(ctx context.Context, data []byte) error {
	dir := filepath.Dir(k.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".config-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(tmpPath, k.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("replace config file: %w", err)
	}
	return nil
}

func (k *KV) Delete(ctx context.Context) error {
	err := os.Remove(k.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("remove config file: %w", err)
	}
	return nil
}
