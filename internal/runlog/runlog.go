// Package runlog keeps a local ledger of build and validation runs in
// a SQLite database, one row per invocation.
package runlog

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // Pure-Go SQLite driver.
)

// Run kinds recorded in the ledger.
const (
	KindBuild    = "build"
	KindValidate = "validate"
)

// schema contains the DDL executed on first open. Using IF NOT EXISTS
// makes it safe to run on every startup.
const schema = `
CREATE TABLE IF NOT EXISTS runs (
    id          INTEGER PRIMARY KEY AUTOINCREMENT,
    kind        TEXT NOT NULL,
    started_at  TIMESTAMP NOT NULL,
    finished_at TIMESTAMP NOT NULL,
    strains     INTEGER NOT NULL DEFAULT 0,
    wells       INTEGER NOT NULL DEFAULT 0,
    enzymes     INTEGER NOT NULL DEFAULT 0,
    errors      INTEGER NOT NULL DEFAULT 0,
    warnings    INTEGER NOT NULL DEFAULT 0,
    success     INTEGER NOT NULL DEFAULT 0
);
`

// Run is one ledger row.
type Run struct {
	ID         int64
	Kind       string
	StartedAt  time.Time
	FinishedAt time.Time
	Strains    int
	Wells      int
	Enzymes    int
	Errors     int
	Warnings   int
	Success    bool
}

// Ledger records runs in a local SQLite database in WAL mode.
type Ledger struct {
	db *sql.DB
}

// Open opens (or creates) the ledger database at dbPath, enables WAL
// mode and busy timeout, and creates the schema if needed.
func Open(ctx context.Context, dbPath string) (*Ledger, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("runlog: open database: %w", err)
	}

	// Limit to one connection. SQLite only supports a single writer;
	// one connection avoids SQLITE_BUSY contention between pooled
	// connections that each need their own PRAGMA setup.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("runlog: enable WAL mode: %w", err)
	}
	if _, err := db.ExecContext(ctx, "PRAGMA busy_timeout=5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("runlog: set busy timeout: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("runlog: create schema: %w", err)
	}

	return &Ledger{db: db}, nil
}

// Record appends one run to the ledger and returns its id.
func (l *Ledger) Record(ctx context.Context, r Run) (int64, error) {
	const q = `
		INSERT INTO runs (kind, started_at, finished_at, strains, wells, enzymes, errors, warnings, success)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := l.db.ExecContext(ctx, q,
		r.Kind, r.StartedAt.UTC(), r.FinishedAt.UTC(),
		r.Strains, r.Wells, r.Enzymes, r.Errors, r.Warnings, boolInt(r.Success))
	if err != nil {
		return 0, fmt.Errorf("runlog: record %s run: %w", r.Kind, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("runlog: last insert id: %w", err)
	}
	return id, nil
}

// Recent returns the most recent runs, newest first.
func (l *Ledger) Recent(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	const q = `
		SELECT id, kind, started_at, finished_at, strains, wells, enzymes, errors, warnings, success
		FROM runs ORDER BY id DESC LIMIT ?`
	rows, err := l.db.QueryContext(ctx, q, limit)
	if err != nil {
		return nil, fmt.Errorf("runlog: list runs: %w", err)
	}
	defer rows.Close()

	var out []Run
	for rows.Next() {
		var r Run
		var success int
		if err := rows.Scan(&r.ID, &r.Kind, &r.StartedAt, &r.FinishedAt,
			&r.Strains, &r.Wells, &r.Enzymes, &r.Errors, &r.Warnings, &success); err != nil {
			return nil, fmt.Errorf("runlog: scan run: %w", err)
		}
		r.Success = success != 0
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("runlog: iterate runs: %w", err)
	}
	return out, nil
}

// Close closes the underlying database.
func (l *Ledger) Close() error {
	if err := l.db.Close(); err != nil {
		return fmt.Errorf("runlog: close database: %w", err)
	}
	return nil
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
