// Package chronicle persists the record of what happened in a world: a
// local SQLite log of happenings keyed by their absolute day. The
// calendar core persists nothing itself; this is the collaborator that
// does, and it carries no calendrical logic of its own.
package chronicle

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite" // Pure-Go SQLite driver.
)

// schema contains the DDL executed on first open. Using IF NOT EXISTS
// makes it safe to run on every startup.
const schema = `
CREATE TABLE IF NOT EXISTS happenings (
    id           INTEGER PRIMARY KEY AUTOINCREMENT,
    absolute_day INTEGER NOT NULL,
    date_text    TEXT NOT NULL,
    body         TEXT NOT NULL,
    recorded_at  TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS happenings_by_day ON happenings(absolute_day);
`

// Happening is one recorded entry in the world's history.
type Happening struct {
	ID          int64
	AbsoluteDay int64
	DateText    string // the date as formatted when recorded
	Body        string
}

// Store is a SQLite-backed chronicle.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the chronicle database at dbPath, enables WAL
// mode, and creates the schema if it does not exist.
func Open(ctx context.Context, dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("chronicle: open database: %w", err)
	}

	// One connection: SQLite has a single writer, and a lone pooled
	// connection sidesteps SQLITE_BUSY between connections that each
	// need their own PRAGMA setup.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("chronicle: enable WAL mode: %w", err)
	}
	if _, err := db.ExecContext(ctx, "PRAGMA busy_timeout=5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("chronicle: set busy timeout: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("chronicle: create schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the database handle.
func (s *Store) Close() error { return s.db.Close() }

// Record appends a happening and returns it with its assigned ID.
func (s *Store) Record(ctx context.Context, absoluteDay int64, dateText, body string) (Happening, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO happenings (absolute_day, date_text, body) VALUES (?, ?, ?)`,
		absoluteDay, dateText, body)
	if err != nil {
		return Happening{}, fmt.Errorf("chronicle: record: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return Happening{}, fmt.Errorf("chronicle: record id: %w", err)
	}
	return Happening{ID: id, AbsoluteDay: absoluteDay, DateText: dateText, Body: body}, nil
}

// List returns happenings in chronological order (then insertion
// order), optionally bounded to [from, to] absolute days. Passing
// from > to returns nothing.
func (s *Store) List(ctx context.Context, from, to int64) ([]Happening, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, absolute_day, date_text, body
		   FROM happenings
		  WHERE absolute_day BETWEEN ? AND ?
		  ORDER BY absolute_day, id`,
		from, to)
	if err != nil {
		return nil, fmt.Errorf("chronicle: list: %w", err)
	}
	defer rows.Close()

	var out []Happening
	for rows.Next() {
		var h Happening
		if err := rows.Scan(&h.ID, &h.AbsoluteDay, &h.DateText, &h.Body); err != nil {
			return nil, fmt.Errorf("chronicle: scan: %w", err)
		}
		out = append(out, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("chronicle: iterate: %w", err)
	}
	return out, nil
}

// All returns the entire chronicle in chronological order.
func (s *Store) All(ctx context.Context) ([]Happening, error) {
	const wide = int64(1) << 62
	return s.List(ctx, -wide, wide)
}
