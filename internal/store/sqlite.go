// Package store records serialized tree updates in an SQLite database, in
// sequence order, for later replay and inspection.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"accesstree/pkg/schema"
)

const storeSchema = `
CREATE TABLE IF NOT EXISTS updates (
    seq         INTEGER PRIMARY KEY AUTOINCREMENT,
    recorded_at INTEGER NOT NULL,
    payload     BLOB NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_updates_recorded ON updates(recorded_at);
`

// Store is the SQLite update log.
type Store struct {
	db *sql.DB
}

// Open opens or creates the database at the given path and applies the
// schema.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if _, err := db.Exec(storeSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Append records one update and returns its sequence number.
func (s *Store) Append(update schema.TreeUpdate) (int64, error) {
	payload, err := json.Marshal(update)
	if err != nil {
		return 0, fmt.Errorf("encode update: %w", err)
	}
	result, err := s.db.Exec(
		`INSERT INTO updates (recorded_at, payload) VALUES (?, ?)`,
		time.Now().UnixNano(), payload,
	)
	if err != nil {
		return 0, fmt.Errorf("insert update: %w", err)
	}
	seq, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get sequence: %w", err)
	}
	return seq, nil
}

// Record is one stored update.
type Record struct {
	Seq        int64
	RecordedAt time.Time
	Update     schema.TreeUpdate
}

// Iterate calls fn for every stored update in sequence order. A non-nil
// error from fn stops the iteration and is returned.
func (s *Store) Iterate(fn func(Record) error) error {
	rows, err := s.db.Query(
		`SELECT seq, recorded_at, payload FROM updates ORDER BY seq`)
	if err != nil {
		return fmt.Errorf("query updates: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			seq        int64
			recordedAt int64
			payload    []byte
		)
		if err := rows.Scan(&seq, &recordedAt, &payload); err != nil {
			return fmt.Errorf("scan update %d: %w", seq, err)
		}
		record := Record{
			Seq:        seq,
			RecordedAt: time.Unix(0, recordedAt),
		}
		if err := json.Unmarshal(payload, &record.Update); err != nil {
			return fmt.Errorf("decode update %d: %w", seq, err)
		}
		if err := fn(record); err != nil {
			return err
		}
	}
	return rows.Err()
}

// Count returns the number of stored updates.
func (s *Store) Count() (int64, error) {
	var count int64
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM updates`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count updates: %w", err)
	}
	return count, nil
}

// Clear removes every stored update and resets the sequence.
func (s *Store) Clear() error {
	if _, err := s.db.Exec(`DELETE FROM updates`); err != nil {
		return fmt.Errorf("clear updates: %w", err)
	}
	if _, err := s.db.Exec(`DELETE FROM sqlite_sequence WHERE name = 'updates'`); err != nil {
		return fmt.Errorf("reset sequence: %w", err)
	}
	return nil
}
