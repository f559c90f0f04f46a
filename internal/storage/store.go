// Copyright (c) 2025 MemeLord Project
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package storage provides the persistent key/value store for the memelord TUI.
package storage

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/memelord/memelord-tui/internal/util"
)

// =============================================================================
// KEY/VALUE PORT
// =============================================================================

// Store is the key/value port the session manager persists through.
// Implementations provide best-effort local durability only; callers treat
// writes as fire-and-forget.
type Store interface {
	// Get returns the value for key and whether it was present.
	Get(key string) (string, bool)

	// Set writes the value for key.
	Set(key, value string) error
}

// =============================================================================
// FILE STORE
// =============================================================================

// FileStore persists each key as a JSON file in a base directory,
// written atomically so a crash never leaves a half-written value.
type FileStore struct {
	// BaseDir is the directory holding one file per key.
	// Default: ~/.memelord/state/
	BaseDir string
}

// NewFileStoreWithDir creates a file store rooted at the given directory.
// Callers resolve the directory through config.StateDir.
func NewFileStoreWithDir(baseDir string) (*FileStore, error) {
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, err
	}
	return &FileStore{BaseDir: baseDir}, nil
}

// Get reads the value for key. A missing or unreadable file reads as absent.
func (s *FileStore) Get(key string) (string, bool) {
	data, err := os.ReadFile(s.pathFor(key))
	if err != nil {
		return "", false
	}
	return string(data), true
}

// Set writes the value for key atomically.
func (s *FileStore) Set(key, value string) error {
	return util.AtomicWriteFile(s.pathFor(key), []byte(value), 0644)
}

// pathFor maps a key to its backing file, sanitizing path separators so a
// key can never escape the base directory.
func (s *FileStore) pathFor(key string) string {
	safe := strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', '.', ':':
			return '_'
		}
		return r
	}, key)
	return filepath.Join(s.BaseDir, safe+".json")
}

// =============================================================================
// MEMORY STORE
// =============================================================================

// MemStore is an in-memory Store used by tests and as a last-resort
// fallback when no writable state directory exists.
type MemStore struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemStore creates an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{values: make(map[string]string)}
}

// Get returns the value for key.
func (s *MemStore) Get(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok
}

// Set writes the value for key.
func (s *MemStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}
