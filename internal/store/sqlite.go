package store

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

//go:embed migrations/*.sql
var migrationFS embed.FS

// SQLiteBackend stores values in a single kv table of a SQLite database.
type SQLiteBackend struct {
	db  *sql.DB
	now func() time.Time
}

// OpenSQLite opens (creating if needed) the SQLite database at path and
// applies the schema.
func OpenSQLite(path string) (*SQLiteBackend, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	dsn := filepath.Clean(path) + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	b := &SQLiteBackend{db: db, now: time.Now}
	if err := b.migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return b, nil
}

// Close closes the underlying database.
func (b *SQLiteBackend) Close() error {
	if b == nil || b.db == nil {
		return nil
	}
	return b.db.Close()
}

// Get implements Backend.
func (b *SQLiteBackend) Get(key string) ([]byte, bool, error) {
	var value []byte
	err := b.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("select %s: %w", key, err)
	}
	return value, true, nil
}

// Put implements Backend.
func (b *SQLiteBackend) Put(key string, value []byte) error {
	_, err := b.db.Exec(`
INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, b.now().UTC().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("upsert %s: %w", key, err)
	}
	return nil
}

// migrate runs every embedded migration in name order. Statements are
// idempotent so no bookkeeping table is needed.
func (b *SQLiteBackend) migrate() error {
	names, err := fs.Glob(migrationFS, "migrations/*.sql")
	if err != nil {
		return err
	}
	sort.Strings(names)
	for _, name := range names {
		content, err := fs.ReadFile(migrationFS, name)
		if err != nil {
			return fmt.Errorf("read migration %s: %w", name, err)
		}
		if _, err := b.db.Exec(upSection(string(content))); err != nil {
			return fmt.Errorf("apply migration %s: %w", name, err)
		}
	}
	return nil
}

// upSection returns the statements after the "-- +migrate Up" marker, or the
// whole file when there is no marker.
func upSection(content string) string {
	const marker = "-- +migrate Up"
	idx := strings.Index(content, marker)
	if idx < 0 {
		return content
	}
	up := content[idx+len(marker):]
	if down := strings.Index(up, "-- +migrate Down"); down >= 0 {
		up = up[:down]
	}
	return strings.TrimSpace(up)
}
