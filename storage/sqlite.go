package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/skyvault/skyvault-go/dbx"
	"github.com/skyvault/skyvault-go/logging"
)

// SQLiteStore keeps target blobs in a single key/value table, for callers
// that already carry a local database and prefer it over loose files.
type SQLiteStore struct {
	db  *sql.DB
	log logging.Logger
}

// NewSQLiteStore prepares the cache table and returns a store over db.
// The database handle stays owned by the caller.
func NewSQLiteStore(db *sql.DB, log logging.Logger) (*SQLiteStore, error) {
	if log == nil {
		log = logging.Nop()
	}
	_, err := db.Exec(`
CREATE TABLE IF NOT EXISTS cache (
  key   TEXT PRIMARY KEY,
  value BLOB NOT NULL
);
`)
	if err != nil {
		return nil, fmt.Errorf("init cache table: %w", err)
	}
	return &SQLiteStore{db: db, log: log}, nil
}

func (s *SQLiteStore) Load(ctx context.Context, target Target) []byte {
	var value []byte
	err := s.db.QueryRowContext(ctx, `SELECT value FROM cache WHERE key = ?`, string(target)).Scan(&value)
	if err == sql.ErrNoRows {
		return nil
	}
	if err != nil {
		s.log.Warn(ctx, "cache read failed", "target", target, "err", err)
		return nil
	}
	return value
}

func (s *SQLiteStore) Save(ctx context.Context, target Target, data []byte) {
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM cache WHERE key = ?`, string(target)); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx, `INSERT INTO cache (key, value) VALUES (?, ?)`, string(target), data)
		return err
	})
	if err != nil {
		s.log.Warn(ctx, "cache write failed", "target", target, "err", err)
	}
}

func (s *SQLiteStore) Delete(ctx context.Context, target Target) {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM cache WHERE key = ?`, string(target)); err != nil {
		s.log.Warn(ctx, "cache delete failed", "target", target, "err", err)
	}
}
