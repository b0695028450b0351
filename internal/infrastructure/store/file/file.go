// Package file persists the whole store snapshot as a single JSON document
// on disk. Every mutation rewrites the entire file; a store-wide mutex
// serializes all load-mutate-save cycles so concurrent purchases cannot
// lose updates.
package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/sirpyerre/merch-store-api/internal/core/domain"
)

// Store is a file-backed SnapshotStore.
type Store struct {
	path string
	mu   sync.Mutex
}

// New creates a Store persisting to the given path. Call Initialize before
// first use.
func New(path string) *Store {
	return &Store{path: path}
}

// Initialize creates the document with the seed catalog if and only if no
// prior state exists. Existing data is never overwritten.
func (s *Store) Initialize(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := os.Stat(s.path); err == nil {
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("store: stat %s: %w", s.path, err)
	}

	return s.write(domain.NewSeedSnapshot())
}

// Load returns a private copy of the current state.
func (s *Store) Load(ctx context.Context) (*domain.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.read()
}

// Update runs fn against a freshly loaded working copy and persists the
// mutated snapshot only when fn returns nil. Holding the mutex across the
// whole cycle linearizes concurrent read-modify-write requests.
func (s *Store) Update(ctx context.Context, fn func(*domain.Snapshot) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap, err := s.read()
	if err != nil {
		return err
	}
	if err := fn(snap); err != nil {
		return err
	}
	return s.write(snap)
}

func (s *Store) read() (*domain.Snapshot, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("store: read %s: %w", s.path, err)
	}

	var snap domain.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("store: decode %s: %w", s.path, err)
	}
	return &snap, nil
}

// write marshals the snapshot to a temp file in the same directory and
// renames it over the target, so readers never observe a torn document.
func (s *Store) write(snap *domain.Snapshot) error {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("store: encode snapshot: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".store-*.json")
	if err != nil {
		return fmt.Errorf("store: create temp file: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("store: write %s: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("store: close %s: %w", tmp.Name(), err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("store: replace %s: %w", s.path, err)
	}
	return nil
}
