// Package backend opens the storage backend selected by the configuration.
package backend

import (
	"fmt"
	"io"

	"vibelist/internal/config"
	"vibelist/internal/store"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Open returns the backend named by cfg.Backend. The closer must be called
// when the session ends.
func Open(cfg *config.Config) (store.Backend, io.Closer, error) {
	switch cfg.Backend {
	case config.BackendFile:
		b, err := store.NewFileBackend(cfg.DataDir)
		if err != nil {
			return nil, nil, err
		}
		return b, nopCloser{}, nil

	case config.BackendSQLite:
		if err := cfg.EnsureDataDir(); err != nil {
			return nil, nil, fmt.Errorf("create data dir: %w", err)
		}
		b, err := store.OpenSQLite(cfg.SQLitePath())
		if err != nil {
			return nil, nil, err
		}
		return b, b, nil

	case config.BackendMemory:
		return store.NewMemoryBackend(), nopCloser{}, nil

	default:
		return nil, nil, fmt.Errorf("unknown backend: %s", cfg.Backend)
	}
}
