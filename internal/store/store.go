// Package store persists the task list as a single serialized record under a
// fixed key.
//
// Failures never escape Load or Save. They are logged as warnings and
// reported on the returned result so the caller can keep working from its
// in-memory state.
package store

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"vibelist/internal/service"
)

// DefaultKey is the key the task list is stored under.
const DefaultKey = "vibelist_tasks"

var (
	// ErrCorrupt marks a stored value that could not be decoded.
	ErrCorrupt = errors.New("stored tasks are corrupt")

	// ErrRead marks a failure of the underlying storage while reading.
	ErrRead = errors.New("read stored tasks")

	// ErrWrite marks a failure to encode or write the task list.
	ErrWrite = errors.New("write tasks")
)

// Backend is durable byte storage keyed by string.
type Backend interface {
	// Get returns the value stored under key. ok is false if nothing is stored.
	Get(key string) (value []byte, ok bool, err error)

	// Put replaces the value stored under key.
	Put(key string, value []byte) error
}

// LoadStatus describes how a Load ended.
type LoadStatus int

const (
	LoadOK      LoadStatus = iota // value decoded
	LoadMissing                   // nothing stored yet
	LoadCorrupt                   // value present but undecodable
	LoadFailed                    // backend read error
)

func (s LoadStatus) String() string {
	switch s {
	case LoadOK:
		return "ok"
	case LoadMissing:
		return "missing"
	case LoadCorrupt:
		return "corrupt"
	case LoadFailed:
		return "failed"
	default:
		return fmt.Sprintf("LoadStatus(%d)", int(s))
	}
}

// LoadResult is the outcome of Load. Tasks is never nil.
type LoadResult struct {
	Tasks  []service.Task
	Status LoadStatus
	Err    error // wraps ErrCorrupt or ErrRead; nil otherwise
}

// SaveStatus describes how a Save ended.
type SaveStatus int

const (
	SaveOK SaveStatus = iota
	SaveFailed
)

func (s SaveStatus) String() string {
	switch s {
	case SaveOK:
		return "ok"
	case SaveFailed:
		return "failed"
	default:
		return fmt.Sprintf("SaveStatus(%d)", int(s))
	}
}

// SaveResult is the outcome of Save.
type SaveResult struct {
	Status SaveStatus
	Err    error // wraps ErrWrite when Status is SaveFailed
}

// OK reports whether the write went through.
func (r SaveResult) OK() bool {
	return r.Status == SaveOK
}

// Store reads and writes the task list through a Backend.
type Store struct {
	backend Backend
	key     string
	logger  *log.Logger
}

// New creates a Store writing under key. An empty key selects DefaultKey.
// A nil logger discards warnings.
func New(backend Backend, key string, logger *log.Logger) (*Store, error) {
	if backend == nil {
		return nil, errors.New("storage backend is required")
	}
	key = strings.TrimSpace(key)
	if key == "" {
		key = DefaultKey
	}
	if err := ValidateKey(key); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Store{backend: backend, key: key, logger: logger}, nil
}

// Key returns the key the store writes under.
func (s *Store) Key() string {
	return s.key
}

// Load reads the stored task list. Missing, unreadable and corrupt values
// all yield an empty list.
func (s *Store) Load() LoadResult {
	data, ok, err := s.backend.Get(s.key)
	if err != nil {
		err = fmt.Errorf("%w: %s: %w", ErrRead, s.key, err)
		s.logger.Printf("warning: %v", err)
		return LoadResult{Tasks: []service.Task{}, Status: LoadFailed, Err: err}
	}
	if !ok || len(bytes.TrimSpace(data)) == 0 {
		return LoadResult{Tasks: []service.Task{}, Status: LoadMissing}
	}

	tasks, err := Decode(data)
	if err != nil {
		err = fmt.Errorf("%w: %s: %w", ErrCorrupt, s.key, err)
		s.logger.Printf("warning: %v; starting with an empty list", err)
		return LoadResult{Tasks: []service.Task{}, Status: LoadCorrupt, Err: err}
	}
	return LoadResult{Tasks: tasks, Status: LoadOK}
}

// Save replaces the stored task list with tasks. A failed write is logged
// and dropped.
func (s *Store) Save(tasks []service.Task) SaveResult {
	data, err := Encode(tasks)
	if err == nil {
		err = s.backend.Put(s.key, data)
	}
	if err != nil {
		err = fmt.Errorf("%w: %s: %w", ErrWrite, s.key, err)
		s.logger.Printf("warning: %v; changes are kept for this session only", err)
		return SaveResult{Status: SaveFailed, Err: err}
	}
	return SaveResult{Status: SaveOK}
}

// ValidateKey checks that key can be used by every backend, including as a
// file name.
func ValidateKey(key string) error {
	if key == "" {
		return errors.New("storage key is required")
	}
	for _, r := range key {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r == '_' || r == '-' || r == '.':
		default:
			return fmt.Errorf("invalid storage key %q: only letters, digits, '_', '-' and '.' are allowed", key)
		}
	}
	if key == "." || key == ".." {
		return fmt.Errorf("invalid storage key %q", key)
	}
	return nil
}
