package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// Local is a small durable key-value store backed by a local SQLite
// database. It plays the role of the browser's local storage: each key
// holds one serialized record, and a save rewrites the whole record.
// There is no schema versioning of record contents; callers that fail
// to decode a record are expected to fall back to their initial state.
type Local struct {
	db   *sqlx.DB
	path string
}

// Open opens (or creates) the local store at path and enables WAL mode.
// Use ":memory:" for an ephemeral store in tests.
func Open(path string) (*Local, error) {
	db, err := sqlx.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening local store: %w", err)
	}

	// Enable WAL mode for better concurrent read performance.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling WAL mode: %w", err)
	}

	const schema = `
CREATE TABLE IF NOT EXISTS records (
	key        TEXT PRIMARY KEY,
	value      TEXT NOT NULL,
	updated_at DATETIME NOT NULL
)`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating records table: %w", err)
	}

	return &Local{db: db, path: path}, nil
}

// Close closes the underlying database connection.
func (l *Local) Close() error {
	return l.db.Close()
}

// Path returns the location of the backing database file.
func (l *Local) Path() string {
	return l.path
}

// Get returns the record stored under key. The second return value is
// false when no record exists.
func (l *Local) Get(key string) (string, bool, error) {
	var value string
	err := l.db.Get(&value, "SELECT value FROM records WHERE key = ?", key)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("reading record %s: %w", key, err)
	}
	return value, true, nil
}

// Set fully rewrites the record stored under key.
func (l *Local) Set(key, value string) error {
	_, err := l.db.Exec(
		"INSERT OR REPLACE INTO records (key, value, updated_at) VALUES (?, ?, ?)",
		key, value, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("writing record %s: %w", key, err)
	}
	return nil
}

// Delete removes the record stored under key. Missing keys are a no-op.
func (l *Local) Delete(key string) error {
	_, err := l.db.Exec("DELETE FROM records WHERE key = ?", key)
	if err != nil {
		return fmt.Errorf("deleting record %s: %w", key, err)
	}
	return nil
}

// Size returns the stored length in bytes of the record under key,
// or zero when the record does not exist.
func (l *Local) Size(key string) (int, error) {
	value, ok, err := l.Get(key)
	if err != nil || !ok {
		return 0, err
	}
	return len(value), nil
}
