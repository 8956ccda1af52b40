// Package db provides SQLite storage implementation.
package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/javiermolinar/logspan/internal/history"
)

// timeLayout is fixed-width so stored timestamps sort as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// SQLite implements history.Repository using SQLite.
type SQLite struct {
	db *sql.DB
}

// New creates a new SQLite repository and runs migrations.
func New(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	s := &SQLite{db: db}
	if err := s.migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Save adds a new entry to the repository.
func (s *SQLite) Save(ctx context.Context, e *history.Entry) error {
	if e.End.Before(e.Start) {
		return history.ErrInvalidEntry
	}
	createdAt := e.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	query := `INSERT INTO ranges (start_at, end_at, source, created_at) VALUES (?, ?, ?, ?)`

	result, err := s.db.ExecContext(ctx, query,
		e.Start.Format(timeLayout),
		e.End.Format(timeLayout),
		e.Source,
		createdAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("inserting range: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("getting last insert id: %w", err)
	}
	e.ID = id
	e.CreatedAt = createdAt

	return nil
}

// Get retrieves an entry by ID.
func (s *SQLite) Get(ctx context.Context, id int64) (*history.Entry, error) {
	query := `SELECT id, start_at, end_at, source, created_at FROM ranges WHERE id = ?`

	e, err := scanEntry(s.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying range: %w", err)
	}
	return e, nil
}

// List returns the most recent entries first.
func (s *SQLite) List(ctx context.Context, limit int) ([]*history.Entry, error) {
	if limit <= 0 {
		return nil, nil
	}

	query := `
		SELECT id, start_at, end_at, source, created_at
		FROM ranges
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`

	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("querying ranges: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var entries []*history.Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning range: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating ranges: %w", err)
	}

	return entries, nil
}

// Close closes the database connection.
func (s *SQLite) Close() error {
	return s.db.Close()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(row scanner) (*history.Entry, error) {
	var (
		e                       history.Entry
		startAt, endAt, created string
	)
	if err := row.Scan(&e.ID, &startAt, &endAt, &e.Source, &created); err != nil {
		return nil, err
	}

	var err error
	if e.Start, err = parseTimestamp(startAt); err != nil {
		return nil, fmt.Errorf("parsing start: %w", err)
	}
	if e.End, err = parseTimestamp(endAt); err != nil {
		return nil, fmt.Errorf("parsing end: %w", err)
	}
	if e.CreatedAt, err = parseTimestamp(created); err != nil {
		return nil, fmt.Errorf("parsing created at: %w", err)
	}
	return &e, nil
}

// parseTimestamp accepts RFC3339 as written by Save and the
// "YYYY-MM-DD HH:MM:SS" form SQLite uses for CURRENT_TIMESTAMP.
func parseTimestamp(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, nil
	}
	t, err := time.Parse("2006-01-02 15:04:05", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timestamp %q: %w", s, err)
	}
	return t, nil
}
