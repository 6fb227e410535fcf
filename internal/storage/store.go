// Package storage persists the entity collections as a single JSON document
// on disk, one key per collection. Every write rewrites the whole document
// through a temp-file rename, so a batch of mutations lands all-or-nothing.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Storage keys. One key per entity collection plus the session mirror.
const (
	KeyAccounts     = "accounts"
	KeyTransactions = "transactions"
	KeyCards        = "cards"
	KeyLoans        = "loans"
	KeyInvestments  = "investments"
	KeyCurrentUser  = "currentUser"
)

// ErrKeyNotFound reports an absent key. It is a normal negative result,
// distinct from an infrastructure failure reading or writing the file.
var ErrKeyNotFound = errors.New("storage: key not found")

// Store is the record-store backend. All access goes through an internal
// lock; cross-process writers still race last-writer-wins.
type Store struct {
	mu   sync.RWMutex
	path string
	data map[string]json.RawMessage
}

// Open loads the document at path. A missing file is an empty store; a file
// that exists but cannot be read or parsed is an infrastructure error.
func Open(path string) (*Store, error) {
	s := &Store{path: path, data: make(map[string]json.RawMessage)}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

func (s *Store) load() error {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read store file: %w", err)
	}
	data := make(map[string]json.RawMessage)
	if err := json.Unmarshal(raw, &data); err != nil {
		return fmt.Errorf("failed to parse store file %s: %w", s.path, err)
	}
	s.data = data
	return nil
}

// Reload re-reads the backing file, replacing the in-memory snapshot. Used
// when another process rewrote the file.
func (s *Store) Reload() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// Get returns the raw value stored under key, or ErrKeyNotFound.
func (s *Store) Get(key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.data[key]
	if !ok {
		return nil, ErrKeyNotFound
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

// Has reports whether key is present.
func (s *Store) Has(key string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.data[key]
	return ok
}

// Set stores value under key and persists the document.
func (s *Store) Set(key string, value []byte) error {
	return s.Update(func(b *Batch) error {
		b.Set(key, value)
		return nil
	})
}

// Delete removes key and persists the document. Deleting an absent key is a
// no-op.
func (s *Store) Delete(key string) error {
	return s.Update(func(b *Batch) error {
		b.Delete(key)
		return nil
	})
}

// Update runs fn against a staged view of the document and commits every
// staged change with a single atomic write. If fn returns an error, or the
// write fails, nothing is persisted and the in-memory snapshot is unchanged.
func (s *Store) Update(fn func(b *Batch) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	b := &Batch{base: s.data, staged: make(map[string]json.RawMessage), deleted: make(map[string]bool)}
	if err := fn(b); err != nil {
		return err
	}
	if len(b.staged) == 0 && len(b.deleted) == 0 {
		return nil
	}

	next := make(map[string]json.RawMessage, len(s.data)+len(b.staged))
	for k, v := range s.data {
		if !b.deleted[k] {
			next[k] = v
		}
	}
	for k, v := range b.staged {
		next[k] = v
	}

	if err := s.write(next); err != nil {
		return err
	}
	s.data = next
	return nil
}

func (s *Store) write(data map[string]json.RawMessage) error {
	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode store: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create store directory: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".bank-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp store file: %w", err)
	}
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write store file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to close store file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to replace store file: %w", err)
	}
	return nil
}

// Batch is the staged view handed to Update callbacks. Reads see earlier
// staged writes.
type Batch struct {
	base    map[string]json.RawMessage
	staged  map[string]json.RawMessage
	deleted map[string]bool
}

// Get returns the staged or committed value under key, or ErrKeyNotFound.
func (b *Batch) Get(key string) ([]byte, error) {
	if b.deleted[key] {
		return nil, ErrKeyNotFound
	}
	if value, ok := b.staged[key]; ok {
		return value, nil
	}
	value, ok := b.base[key]
	if !ok {
		return nil, ErrKeyNotFound
	}
	return value, nil
}

// Set stages value under key.
func (b *Batch) Set(key string, value []byte) {
	delete(b.deleted, key)
	b.staged[key] = json.RawMessage(value)
}

// Delete stages removal of key.
func (b *Batch) Delete(key string) {
	delete(b.staged, key)
	b.deleted[key] = true
}
