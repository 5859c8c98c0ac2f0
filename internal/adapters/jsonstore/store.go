package jsonstore

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/amassarte/pizzeria-backend/internal/core"
)

// Store persists the whole configuration document as one JSON file. Reads
// merge the stored document over the defaults so older documents missing
// newer keys still come back structurally complete. Writes replace the
// document wholesale; the last writer wins.
type Store struct {
	path string

	mu     sync.RWMutex
	cached *core.StoreConfig
}

// NewStore creates a store backed by the JSON file at path. The file does
// not need to exist yet; the defaults are served until the first Update.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Get returns the current configuration document. Each caller gets its own
// copy; mutating it never affects the store or other readers.
func (s *Store) Get(ctx context.Context) (*core.StoreConfig, error) {
	s.mu.RLock()
	if s.cached != nil {
		cfg := s.cached
		s.mu.RUnlock()
		return clone(cfg)
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cached == nil {
		cfg, err := s.load()
		if err != nil {
			return nil, err
		}
		s.cached = cfg
	}

	return clone(s.cached)
}

// Update replaces the whole document and persists it.
func (s *Store) Update(ctx context.Context, cfg *core.StoreConfig) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	// Cache a copy so later caller-side mutations of cfg cannot leak in.
	cached := &core.StoreConfig{}
	if err := json.Unmarshal(data, cached); err != nil {
		return fmt.Errorf("failed to reparse config: %w", err)
	}
	s.cached = cached
	return nil
}

// clone deep-copies a document through its JSON form.
func clone(cfg *core.StoreConfig) (*core.StoreConfig, error) {
	data, err := json.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to copy config: %w", err)
	}
	out := &core.StoreConfig{}
	if err := json.Unmarshal(data, out); err != nil {
		return nil, fmt.Errorf("failed to copy config: %w", err)
	}
	return out, nil
}

// load reads the file and merges it over the defaults. Unmarshalling into a
// defaults-initialized struct keeps default values for any key the stored
// document does not carry.
func (s *Store) load() (*core.StoreConfig, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}
