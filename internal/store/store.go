// Package store owns the durable configuration document. It wraps a
// narrow key-value boundary with validation and sanitization so that
// every document entering or leaving persistence is structurally sound.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/tabdeck/tabdeck/internal/domain"
	"github.com/tabdeck/tabdeck/internal/logger"
	"github.com/tabdeck/tabdeck/internal/validate"
)

// StorageKey is the single well-known key the document lives under.
// Kept byte-compatible with the browser extension this store replaces.
const StorageKey = "chrome-tab-config"

var (
	// ErrInvalidConfig marks rejection of a structurally invalid document.
	// The joined validation messages follow in the error text.
	ErrInvalidConfig = errors.New("invalid config")

	// ErrParseConfig marks imported text that is not valid JSON at all,
	// distinguished from a well-formed but invalid document.
	ErrParseConfig = errors.New("config is not valid JSON")
)

// KV is the durable boundary: one serialized document under one key.
// Implementations: file (default) and redis.
type KV interface {
	// Get returns the stored document bytes. ok is false when nothing
	// is stored yet.
	Get(ctx context.Context) (data []byte, ok bool, err error)

	// Set overwrites the stored document atomically.
	Set(ctx context.Context, data []byte) error

	// Delete removes the stored document entirely.
	Delete(ctx context.Context) error
}

// Store validates, sanitizes and persists the configuration document.
type Store struct {
	kv  KV
	log logger.Logger
}

func New(kv KV, log logger.Logger) *Store {
	return &Store{kv: kv, log: log}
}

// Load returns the persisted document, sanitized. A missing, unparseable
// or invalid document degrades to the bundled defaults; Load never fails.
// Data loss on corruption is an accepted, logged trade-off for keeping
// the dashboard available.
func (s *Store) Load(ctx context.Context) domain.AppConfig {
	data, ok, err := s.kv.Get(ctx)
	if err != nil {
		s.log.Warn("failed to read config, using defaults", logger.Error(err))
		return domain.DefaultConfig()
	}
	if !ok {
		return domain.DefaultConfig()
	}

	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		s.log.Warn("stored config is not valid JSON, using defaults", logger.Error(err))
		return domain.DefaultConfig()
	}

	if res := validate.Config(raw); !res.Valid {
		s.log.Warn("stored config failed validation, using defaults",
			logger.Strings("errors", res.Errors))
		return domain.DefaultConfig()
	}

	var cfg domain.AppConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		s.log.Warn("failed to decode stored config, using defaults", logger.Error(err))
		return domain.DefaultConfig()
	}

	return validate.Sanitize(cfg)
}

// Save validates cfg, rejecting it wholesale when invalid, then persists
// the sanitized document. The caller's value is not mutated.
func (s *Store) Save(ctx context.Context, cfg domain.AppConfig) error {
	data, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	// Validate the full replacement document through the same structural
	// checks applied to external input.
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("decode config for validation: %w", err)
	}
	if res := validate.Config(raw); !res.Valid {
		s.log.Error("refusing to save invalid config",
			logger.Strings("errors", res.Errors))
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(res.Errors, "; "))
	}

	sanitized, err := json.Marshal(validate.Sanitize(cfg))
	if err != nil {
		return fmt.Errorf("encode sanitized config: %w", err)
	}

	if err := s.kv.Set(ctx, sanitized); err != nil {
		return fmt.Errorf("persist config: %w", err)
	}
	return nil
}

// Export returns the persisted, sanitized document pretty-printed.
func (s *Store) Export(ctx context.Context) string {
	cfg := s.Load(ctx)
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		// A loaded document always re-encodes; keep the boundary total anyway.
		s.log.Error("failed to encode config for export", logger.Error(err))
		return "{}"
	}
	return string(data)
}

// Import parses and validates an externally supplied document and, when
// acceptable, persists it. Parse failures and validation failures are
// reported as distinct errors; the import is all-or-nothing.
func (s *Store) Import(ctx context.Context, jsonText string) error {
	var raw any
	if err := json.Unmarshal([]byte(jsonText), &raw); err != nil {
		return fmt.Errorf("%w: %s", ErrParseConfig, err.Error())
	}

	if res := validate.Config(raw); !res.Valid {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(res.Errors, "; "))
	}

	var cfg domain.AppConfig
	if err := json.Unmarshal([]byte(jsonText), &cfg); err != nil {
		return fmt.Errorf("decode config: %w", err)
	}

	if err := s.Save(ctx, cfg); err != nil {
		return fmt.Errorf("save imported config: %w", err)
	}
	return nil
}

// Reset overwrites storage with the bundled default document.
func (s *Store) Reset(ctx context.Context) error {
	return s.Save(ctx, domain.DefaultConfig())
}

// Clear removes the stored document entirely. Unlike Reset it leaves no
// document present; the next Load produces defaults without writing them.
func (s *Store) Clear(ctx context.Context) error {
	return s.kv.Delete(ctx)
}

// HasConfig reports whether a document is currently persisted.
func (s *Store) HasConfig(ctx context.Context) bool {
	_, ok, err := s.kv.Get(ctx)
	return err == nil && ok
}
