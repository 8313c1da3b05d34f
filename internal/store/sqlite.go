// Package store persists room snapshots so the lobby survives a restart.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog"

	"wordchain/internal/domain"
)

const schema = `
CREATE TABLE IF NOT EXISTS rooms (
	id         TEXT PRIMARY KEY,
	snapshot   TEXT NOT NULL,
	updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);`

// SQLiteStore keeps one JSON snapshot row per room
type SQLiteStore struct {
	db     *sql.DB
	logger zerolog.Logger
}

// OpenSQLite opens (and creates if missing) the snapshot database with WAL
// journaling and a busy timeout
func OpenSQLite(path string, logger zerolog.Logger) (*SQLiteStore, error) {
	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create rooms table: %w", err)
	}
	return &SQLiteStore{db: db, logger: logger}, nil
}

// SaveAll replaces the whole snapshot set in one transaction. Writes are
// full-snapshot and last-write-wins.
func (s *SQLiteStore) SaveAll(ctx context.Context, rooms []domain.RoomSnapshot) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM rooms`); err != nil {
		tx.Rollback()
		return err
	}
	for _, snap := range rooms {
		blob, err := json.Marshal(snap)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("marshal room %s: %w", snap.ID, err)
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO rooms (id, snapshot) VALUES (?, ?)`, snap.ID, string(blob)); err != nil {
			tx.Rollback()
			return fmt.Errorf("insert room %s: %w", snap.ID, err)
		}
	}
	return tx.Commit()
}

// LoadAll returns every readable snapshot. Malformed rows are logged and
// skipped so a bad snapshot never blocks startup.
func (s *SQLiteStore) LoadAll(ctx context.Context) ([]domain.RoomSnapshot, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, snapshot FROM rooms`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.RoomSnapshot
	for rows.Next() {
		var id, blob string
		if err := rows.Scan(&id, &blob); err != nil {
			return nil, err
		}
		var snap domain.RoomSnapshot
		if err := json.Unmarshal([]byte(blob), &snap); err != nil {
			s.logger.Warn().Str("roomId", id).Err(err).Msg("skipping malformed room snapshot")
			continue
		}
		out = append(out, snap)
	}
	return out, rows.Err()
}

// Close closes the underlying database
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
