// Package store provides a generic, file-backed document store used to
// persist user collections between sessions. Each store owns a single JSON
// document under the user data directory; storage failures degrade the store
// to session-only behavior instead of surfacing errors to callers.
package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/hashicorp/go-hclog"

	"github.com/mcp-hub/mcphub/internal/files"
	"github.com/mcp-hub/mcphub/internal/perms"
)

// Store is a key-value backed holder for a single value of type T.
// Reads that fail (missing file, corrupt content) fall back to the default
// value; writes that fail are logged and swallowed. Only the owning store may
// write its backing file.
type Store[T any] struct {
	mu     sync.Mutex
	path   string
	def    func() T
	value  T
	logger hclog.Logger
}

// New creates a store named name (backing file <name>.json) and loads the
// persisted value, falling back to def() when nothing usable is stored.
func New[T any](logger hclog.Logger, name string, def func() T, opt ...Option) (*Store[T], error) {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	logger = logger.Named("store").With("collection", name)

	opts, err := NewOptions(opt...)
	if err != nil {
		return nil, err
	}

	dir := opts.dir
	if dir == "" {
		dir, err = files.UserSpecificDataDir()
		if err != nil {
			return nil, err
		}
	}

	if err := files.EnsureAtLeastRegularDir(dir); err != nil {
		// Degrade to session-only behavior: the in-memory value still works,
		// persistence attempts will warn and be skipped.
		logger.Warn("data directory unavailable, collection will not persist", "dir", dir, "error", err)
	}

	s := &Store[T]{
		path:   filepath.Join(dir, name+".json"),
		def:    def,
		logger: logger,
	}
	s.value = s.load()

	return s, nil
}

// load reads and parses the backing file, returning the default value when
// the file is missing or unreadable. Never returns an error to the caller.
func (s *Store[T]) load() T {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warn("failed to read collection, using default", "path", s.path, "error", err)
		}
		return s.def()
	}

	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		s.logger.Warn("stored collection is corrupt, using default", "path", s.path, "error", err)
		return s.def()
	}

	return v
}

// Value returns the current in-memory value.
func (s *Store[T]) Value() T {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.value
}

// Set replaces the value in memory and persists it.
func (s *Store[T]) Set(v T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.value = v
	s.persist()
}

// Update applies fn to the current value, stores the result in memory and
// persists it. fn must be pure.
func (s *Store[T]) Update(fn func(T) T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.value = fn(s.value)
	s.persist()
}

// Remove deletes the backing file and resets the in-memory value to the default.
func (s *Store[T]) Remove() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		s.logger.Warn("failed to remove collection file", "path", s.path, "error", err)
	}
	s.value = s.def()
}

// Path returns the location of the backing file, for diagnostics.
func (s *Store[T]) Path() string {
	return s.path
}

// persist serializes the current value to the backing file. Failures are
// logged and swallowed so a full disk or read-only directory never breaks the
// caller. Callers must hold s.mu.
func (s *Store[T]) persist() {
	data, err := json.MarshalIndent(s.value, "", "  ")
	if err != nil {
		s.logger.Warn("failed to serialize collection", "path", s.path, "error", err)
		return
	}

	if err := os.WriteFile(s.path, data, perms.RegularFile); err != nil {
		s.logger.Warn("failed to persist collection", "path", s.path, "error", err)
	}
}
