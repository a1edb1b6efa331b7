// Package securestore implements the PreferenceStore contract. The durable
// implementation keeps values in a single-table SQLite database, standing in
// for the device's secure storage.
package securestore

import (
	"context"
	"database/sql"
	"log/slog"
	"os"
	"path/filepath"

	"shamba/config"
	"shamba/internal/domain/repository"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	// Registers the pure-Go "sqlite" driver with database/sql.
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS preferences (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
);`

// SQLiteStore is the durable PreferenceStore backed by an embedded database.
type SQLiteStore struct {
	conn   *sql.DB
	logger *slog.Logger
}

var _ repository.PreferenceStore = (*SQLiteStore)(nil)

// SQLiteStoreParams holds dependencies for SQLiteStore, injected by Fx.
type SQLiteStoreParams struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewSQLiteStore opens (creating if needed) the store at the configured path
// and registers a shutdown hook to close it.
func NewSQLiteStore(params SQLiteStoreParams) (repository.PreferenceStore, error) {
	store, err := OpenSQLite(params.Config.Storage.Path, params.Logger)
	if err != nil {
		return nil, err
	}

	params.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return store.Close()
		},
	})

	return store, nil
}

// OpenSQLite opens a store at path. ":memory:" yields a volatile store.
func OpenSQLite(path string, logger *slog.Logger) (*SQLiteStore, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, errors.Wrap(err, "failed to create storage directory")
		}
	}

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open preference store")
	}

	if err := conn.Ping(); err != nil {
		conn.Close()

		return nil, errors.Wrap(err, "failed to ping preference store")
	}

	// WAL lets concurrent readers proceed while a write is in flight.
	if _, err := conn.Exec("PRAGMA journal_mode=WAL"); err != nil {
		conn.Close()

		return nil, errors.Wrap(err, "failed to enable WAL")
	}

	if _, err := conn.Exec(schema); err != nil {
		conn.Close()

		return nil, errors.Wrap(err, "failed to create preferences table")
	}

	return &SQLiteStore{conn: conn, logger: logger}, nil
}

// Get returns the value for key, or repository.ErrKeyNotFound when absent.
func (s *SQLiteStore) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := s.conn.QueryRowContext(ctx,
		`SELECT value FROM preferences WHERE key = ?`, key,
	).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", repository.ErrKeyNotFound
	}
	if err != nil {
		return "", errors.Wrapf(err, "failed to read key %q", key)
	}

	return value, nil
}

// Set writes the value for key, replacing any existing value.
func (s *SQLiteStore) Set(ctx context.Context, key, value string) error {
	_, err := s.conn.ExecContext(ctx,
		`INSERT INTO preferences (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	if err != nil {
		return errors.Wrapf(err, "failed to write key %q", key)
	}

	return nil
}

// Delete removes the key. Deleting an absent key is not an error.
func (s *SQLiteStore) Delete(ctx context.Context, key string) error {
	if _, err := s.conn.ExecContext(ctx,
		`DELETE FROM preferences WHERE key = ?`, key,
	); err != nil {
		return errors.Wrapf(err, "failed to delete key %q", key)
	}

	return nil
}

// Close releases the underlying connection pool.
func (s *SQLiteStore) Close() error {
	return errors.Wrap(s.conn.Close(), "failed to close preference store")
}
