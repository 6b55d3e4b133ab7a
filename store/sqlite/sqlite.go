/*
Package sqlite provides a SQLite-backed implementation of settings.Store.

PURPOSE:
  Durable storage for the dashboard's rate configuration. Reports are
  never persisted - they are recomputed per request from whatever
  schedule data the caller supplies - so the schema is deliberately tiny.

SCHEMA:
  rate_settings: single-row table (id = 1) holding the current rates and
  when they were last changed. History is kept by appending to
  rate_settings_history on every save, so a rate change that alters
  someone's payout can be traced afterwards.

WAL MODE:
  SQLite is opened with WAL (Write-Ahead Logging):
  - Multiple readers don't block
  - Single writer at a time
  - Better crash recovery

CONCURRENCY:
  Uses sync.RWMutex for thread-safety on top of database/sql's pooling;
  with PostgreSQL the database's own concurrency control would do this.

USAGE:
  store, err := sqlite.New("./data/caloohpay.db")
  if err != nil {
      log.Fatal(err)
  }
  defer store.Close()

SEE ALSO:
  - settings/settings.go: Interface definition and in-memory counterpart
*/
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/lonelydev/caloohpay/settings"
)

// Store implements settings.Store using SQLite.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// New creates a new SQLite store with the given database path.
// Use ":memory:" for an in-memory database.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// migrate creates the database schema.
func (s *Store) migrate() error {
	schema := `
	-- Current rate configuration (single row, id = 1)
	CREATE TABLE IF NOT EXISTS rate_settings (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		weekday_rate REAL NOT NULL,
		weekend_rate REAL NOT NULL,
		updated_at TEXT NOT NULL
	);

	-- Every save is appended here for traceability
	CREATE TABLE IF NOT EXISTS rate_settings_history (
		seq INTEGER PRIMARY KEY AUTOINCREMENT,
		weekday_rate REAL NOT NULL,
		weekend_rate REAL NOT NULL,
		updated_at TEXT NOT NULL
	);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Get returns the current settings, or the defaults when none were saved.
func (s *Store) Get(ctx context.Context) (settings.RateSettings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRowContext(ctx,
		`SELECT weekday_rate, weekend_rate, updated_at FROM rate_settings WHERE id = 1`)

	var rs settings.RateSettings
	var updatedAt string
	err := row.Scan(&rs.WeekdayRate, &rs.WeekendRate, &updatedAt)
	if err == sql.ErrNoRows {
		return settings.Default(), nil
	}
	if err != nil {
		return settings.RateSettings{}, fmt.Errorf("failed to read settings: %w", err)
	}

	rs.UpdatedAt, err = time.Parse(time.RFC3339Nano, updatedAt)
	if err != nil {
		return settings.RateSettings{}, fmt.Errorf("corrupt updated_at %q: %w", updatedAt, err)
	}
	return rs, nil
}

// Save validates and persists new settings, recording them in the
// history table in the same transaction.
func (s *Store) Save(ctx context.Context, rs settings.RateSettings) error {
	if err := rs.Validate(); err != nil {
		return err
	}
	rs.UpdatedAt = time.Now().UTC()
	stamp := rs.UpdatedAt.Format(time.RFC3339Nano)

	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO rate_settings (id, weekday_rate, weekend_rate, updated_at)
		VALUES (1, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			weekday_rate = excluded.weekday_rate,
			weekend_rate = excluded.weekend_rate,
			updated_at   = excluded.updated_at`,
		rs.WeekdayRate, rs.WeekendRate, stamp)
	if err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO rate_settings_history (weekday_rate, weekend_rate, updated_at)
		VALUES (?, ?, ?)`,
		rs.WeekdayRate, rs.WeekendRate, stamp)
	if err != nil {
		return fmt.Errorf("failed to record settings history: %w", err)
	}

	return tx.Commit()
}

// History returns past rate configurations, most recent first.
func (s *Store) History(ctx context.Context, limit int) ([]settings.RateSettings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 {
		limit = 50
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT weekday_rate, weekend_rate, updated_at
		FROM rate_settings_history
		ORDER BY seq DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings history: %w", err)
	}
	defer rows.Close()

	var history []settings.RateSettings
	for rows.Next() {
		var rs settings.RateSettings
		var updatedAt string
		if err := rows.Scan(&rs.WeekdayRate, &rs.WeekendRate, &updatedAt); err != nil {
			return nil, err
		}
		rs.UpdatedAt, _ = time.Parse(time.RFC3339Nano, updatedAt)
		history = append(history, rs)
	}
	return history, rows.Err()
}

var _ settings.Store = (*Store)(nil)
