// Package prefs provides small key/value stores for persisted player preferences.
package prefs

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

// Preferences is an integer key/value store with an explicit flush.
type Preferences interface {
	Integer(key string, def int) int
	PutInteger(key string, value int)
	Flush() error
}

// MemoryStore keeps values in memory. Flush is a no-op that counts calls.
type MemoryStore struct {
	mu      sync.Mutex
	values  map[string]int
	flushes int
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]int)}
}

// Integer returns the value for key, or def if unset.
func (m *MemoryStore) Integer(key string, def int) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	if v, ok := m.values[key]; ok {
		return v
	}
	return def
}

// PutInteger sets key to value.
func (m *MemoryStore) PutInteger(key string, value int) {
	m.mu.Lock()
	m.values[key] = value
	m.mu.Unlock()
}

// Flush records the call.
func (m *MemoryStore) Flush() error {
	m.mu.Lock()
	m.flushes++
	m.mu.Unlock()
	return nil
}

// Flushes returns how many times Flush was called.
func (m *MemoryStore) Flushes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.flushes
}

// FileStore is a YAML-backed store. Writes are buffered until Flush.
type FileStore struct {
	mu     sync.Mutex
	path   string
	values map[string]int
}

// OpenFile loads the store at path. A missing file yields an empty store.
func OpenFile(path string) (*FileStore, error) {
	s := &FileStore{path: path, values: make(map[string]int)}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading preferences: %w", err)
	}
	if err := yaml.Unmarshal(data, &s.values); err != nil {
		return nil, fmt.Errorf("parsing preferences %s: %w", path, err)
	}
	if s.values == nil {
		s.values = make(map[string]int)
	}
	return s, nil
}

// DefaultPath returns the preferences file under the user config directory.
func DefaultPath(app string) (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locating config dir: %w", err)
	}
	return filepath.Join(dir, app, "prefs.yaml"), nil
}

// Resolve returns path, or DefaultPath(app) when path is empty.
func Resolve(path, app string) (string, error) {
	if path != "" {
		return path, nil
	}
	return DefaultPath(app)
}

// Path returns the backing file path.
func (s *FileStore) Path() string { return s.path }

// Integer returns the value for key, or def if unset.
func (s *FileStore) Integer(key string, def int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if v, ok := s.values[key]; ok {
		return v
	}
	return def
}

// PutInteger sets key to value in memory.
func (s *FileStore) PutInteger(key string, value int) {
	s.mu.Lock()
	s.values[key] = value
	s.mu.Unlock()
}

// Flush writes all values to disk, replacing the file atomically.
func (s *FileStore) Flush() error {
	s.mu.Lock()
	data, err := yaml.Marshal(s.values)
	s.mu.Unlock()
	if err != nil {
		return fmt.Errorf("marshaling preferences: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("creating preferences dir: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("writing preferences: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replacing preferences: %w", err)
	}
	return nil
}
