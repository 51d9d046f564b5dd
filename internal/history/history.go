// Package history records generation run metadata in a local SQLite
// database. Only run metadata is stored; generated documents themselves
// are never persisted here.
package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// ErrNotFound is returned when a run record does not exist.
var ErrNotFound = errors.New("not found")

// RunRecord is one generation run's audit entry.
type RunRecord struct {
	ID            string
	DocumentID    string
	Trade         string
	State         string
	Source        string // "ai" or "deterministic"
	ActivityCount int
	WarningCount  int
	DurationMs    int64
	CreatedAt     time.Time
}

// OpenDB opens the history database at the given path.
// If path is ":memory:", uses an in-memory database.
// Sets WAL mode and runs migrations automatically.
func OpenDB(path string) (*sql.DB, error) {
	if path != ":memory:" {
		dir := filepath.Dir(path)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("creating db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting WAL mode: %w", err)
	}

	if err := migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return db, nil
}

func migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS generation_runs (
		id             TEXT PRIMARY KEY,
		document_id    TEXT NOT NULL,
		trade          TEXT NOT NULL,
		state          TEXT NOT NULL DEFAULT '',
		source         TEXT NOT NULL
		               CHECK(source IN ('ai','deterministic','catalog')),
		activity_count INTEGER NOT NULL DEFAULT 0,
		warning_count  INTEGER NOT NULL DEFAULT 0,
		duration_ms    INTEGER NOT NULL DEFAULT 0,
		created_at     TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_generation_runs_created ON generation_runs(created_at)`,
	`CREATE INDEX IF NOT EXISTS idx_generation_runs_trade ON generation_runs(trade)`,
}

// Store reads and writes run records.
type Store struct {
	db *sql.DB
}

// NewStore creates a Store over an open history database.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Record(ctx context.Context, r *RunRecord) error {
	query := `INSERT INTO generation_runs (id, document_id, trade, state, source, activity_count, warning_count, duration_ms, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := s.db.ExecContext(ctx, query,
		r.ID,
		r.DocumentID,
		r.Trade,
		r.State,
		r.Source,
		r.ActivityCount,
		r.WarningCount,
		r.DurationMs,
		r.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting generation run: %w", err)
	}
	return nil
}

func (s *Store) GetByID(ctx context.Context, id string) (*RunRecord, error) {
	query := `SELECT id, document_id, trade, state, source, activity_count, warning_count, duration_ms, created_at
		FROM generation_runs WHERE id = ?`
	row := s.db.QueryRowContext(ctx, query, id)
	return scanRun(row)
}

func (s *Store) ListRecent(ctx context.Context, limit int) ([]*RunRecord, error) {
	query := `SELECT id, document_id, trade, state, source, activity_count, warning_count, duration_ms, created_at
		FROM generation_runs ORDER BY created_at DESC, id LIMIT ?`
	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("listing generation runs: %w", err)
	}
	defer rows.Close()
	return scanRuns(rows)
}

func (s *Store) ListByTrade(ctx context.Context, trade string, limit int) ([]*RunRecord, error) {
	query := `SELECT id, document_id, trade, state, source, activity_count, warning_count, duration_ms, created_at
		FROM generation_runs WHERE trade = ? ORDER BY created_at DESC, id LIMIT ?`
	rows, err := s.db.QueryContext(ctx, query, trade, limit)
	if err != nil {
		return nil, fmt.Errorf("listing generation runs by trade: %w", err)
	}
	defer rows.Close()
	return scanRuns(rows)
}

func scanRun(row *sql.Row) (*RunRecord, error) {
	var r RunRecord
	var createdAtStr string

	err := row.Scan(
		&r.ID, &r.DocumentID, &r.Trade, &r.State, &r.Source,
		&r.ActivityCount, &r.WarningCount, &r.DurationMs, &createdAtStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("generation run: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning generation run: %w", err)
	}

	r.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	return &r, nil
}

func scanRuns(rows *sql.Rows) ([]*RunRecord, error) {
	var runs []*RunRecord
	for rows.Next() {
		var r RunRecord
		var createdAtStr string
		if err := rows.Scan(
			&r.ID, &r.DocumentID, &r.Trade, &r.State, &r.Source,
			&r.ActivityCount, &r.WarningCount, &r.DurationMs, &createdAtStr,
		); err != nil {
			return nil, fmt.Errorf("scanning generation run: %w", err)
		}
		var err error
		r.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
		if err != nil {
			return nil, fmt.Errorf("parsing created_at: %w", err)
		}
		runs = append(runs, &r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating generation runs: %w", err)
	}
	return runs, nil
}
