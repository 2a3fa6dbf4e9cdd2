package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileBackend stores each key as <dir>/<key>.json.
//
// Writes go to a temporary file in the same directory which is then renamed
// over the target, so a reader sees either the old value or the new one.
type FileBackend struct {
	dir string
}

// NewFileBackend creates a FileBackend rooted at dir. The directory is
// created on first write.
func NewFileBackend(dir string) (*FileBackend, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, errors.New("storage directory is required")
	}
	return &FileBackend{dir: filepath.Clean(dir)}, nil
}

// Path returns the file backing key.
func (f *FileBackend) Path(key string) string {
	return filepath.Join(f.dir, key+".json")
}

// Get implements Backend.
func (f *FileBackend) Get(key string) ([]byte, bool, error) {
	if err := ValidateKey(key); err != nil {
		return nil, false, err
	}
	data, err := os.ReadFile(f.Path(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return data, true, nil
}

// Put implements Backend.
func (f *FileBackend) Put(key string, value []byte) error {
	if err := ValidateKey(key); err != nil {
		return err
	}
	if err := os.MkdirAll(f.dir, 0o700); err != nil {
		return fmt.Errorf("create storage dir: %w", err)
	}

	tmp, err := os.CreateTemp(f.dir, "."+key+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	cleanup := func() { _ = os.Remove(tmpPath) }

	if _, err := tmp.Write(value); err != nil {
		_ = tmp.Close()
		cleanup()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		cleanup()
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, 0o600); err != nil {
		cleanup()
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := os.Rename(tmpPath, f.Path(key)); err != nil {
		cleanup()
		return fmt.Errorf("replace %s: %w", f.Path(key), err)
	}
	return nil
}
