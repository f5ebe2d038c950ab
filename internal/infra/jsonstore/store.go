// Package jsonstore provides a JSON file-based implementation of BoardRepository.
package jsonstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"syscall"

	"github.com/runoshun/git-board/internal/domain"
)

// Store implements domain.BoardRepository using a single JSON file.
// Concurrent CLI invocations are serialized with flock on a sibling lock file.
type Store struct {
	path     string
	lockPath string
}

// New creates a new Store for the given file path.
// The file does not need to exist; Initialize creates it.
func New(path string) *Store {
	return &Store{
		path:     path,
		lockPath: path + ".lock",
	}
}

// Path returns the store file path.
func (s *Store) Path() string {
	return s.path
}

// Load returns the current board state under a shared lock.
func (s *Store) Load() (*domain.BoardState, error) {
	var state *domain.BoardState
	err := s.withLock(func(st *domain.BoardState) error {
		state = st
		return nil
	})
	return state, err
}

// Update runs fn with an exclusive lock and writes the state back if fn
// succeeds. A failing fn leaves the file untouched.
func (s *Store) Update(fn func(*domain.BoardState) error) error {
	return s.withLockWrite(fn)
}

// IsInitialized checks if the store file exists.
func (s *Store) IsInitialized() bool {
	_, err := os.Stat(s.path)
	return err == nil
}

// Initialize creates an empty store file if it doesn't exist.
func (s *Store) Initialize() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return nil // Already exists
	}

	return s.write(domain.NewBoardState())
}

// withLock executes fn with a shared (read) lock.
func (s *Store) withLock(fn func(*domain.BoardState) error) error {
	lock, err := s.acquireLock(syscall.LOCK_SH)
	if err != nil {
		return err
	}
	defer s.releaseLock(lock)

	state, err := s.read()
	if err != nil {
		return err
	}

	return fn(state)
}

// withLockWrite executes fn with an exclusive (write) lock and writes the result.
func (s *Store) withLockWrite(fn func(*domain.BoardState) error) error {
	lock, err := s.acquireLock(syscall.LOCK_EX)
	if err != nil {
		return err
	}
	defer s.releaseLock(lock)

	state, err := s.read()
	if err != nil {
		return err
	}

	if err := fn(state); err != nil {
		return err
	}

	return s.write(state)
}

func (s *Store) acquireLock(lockType int) (*os.File, error) {
	dir := filepath.Dir(s.lockPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("create lock directory: %w", err)
	}

	lock, err := os.OpenFile(s.lockPath, os.O_CREATE|os.O_RDWR, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open lock file: %w", err)
	}

	if err := syscall.Flock(int(lock.Fd()), lockType); err != nil {
		_ = lock.Close()
		return nil, fmt.Errorf("acquire lock: %w", err)
	}

	return lock, nil
}

func (s *Store) releaseLock(lock *os.File) {
	_ = syscall.Flock(int(lock.Fd()), syscall.LOCK_UN)
	_ = lock.Close()
}

func (s *Store) read() (*domain.BoardState, error) {
	content, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.ErrNotInitialized
		}
		return nil, fmt.Errorf("read store file: %w", err)
	}

	var state domain.BoardState
	if err := json.Unmarshal(content, &state); err != nil {
		return nil, fmt.Errorf("parse store file: %w", err)
	}
	state.Normalize()

	return &state, nil
}

func (s *Store) write(state *domain.BoardState) error {
	content, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal board: %w", err)
	}

	// Write to temp file first, then rename for atomicity
	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, content, 0o600); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath) // Clean up
		return fmt.Errorf("rename temp file: %w", err)
	}

	return nil
}

// Ensure Store implements the repository interfaces.
var (
	_ domain.BoardRepository  = (*Store)(nil)
	_ domain.StoreInitializer = (*Store)(nil)
)
