// Package sqlite provides a SQLite-backed implementation of the
// storage.Snapshot interface using Go's standard database/sql package.
//
// WHY SQLite?
// ───────────
// SQLite stores everything in a single file on disk. There is no
// network, no separate server process, and no installation beyond the
// driver — a good fit for a local single-user tool whose snapshot is
// otherwise a JSON file next to the binary.
//
// Note the snapshot semantics are the same as the JSON backend's: Save
// replaces the table contents in full, inside one transaction. This is a
// snapshot store, not a row-level CRUD layer — the in-memory store owns
// the records between saves.
//
// The blank import below registers the sqlite3 driver with database/sql.
// The driver's init() function does this automatically when the package
// is loaded — we never call anything from it directly.
package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/aanand-mishra/student-records/internal/types"

	// Blank import: side-effect only (registers the "sqlite3" driver).
	// Without this the sql.Open("sqlite3", ...) call would fail with
	// "unknown driver".
	_ "github.com/mattn/go-sqlite3"
)

// SQLite is the concrete snapshot backend. It holds a *sql.DB, the
// connection pool managed by database/sql.
type SQLite struct {
	db *sql.DB
}

// New opens (or creates) the SQLite database at the given path, creates
// the students table if it does not already exist, and returns a
// ready-to-use *SQLite.
func New(path string) (*SQLite, error) {
	// sql.Open does NOT open a real connection yet — it just validates
	// the driver name and data source name (DSN).
	// The first actual connection happens on the first query.
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("sqlite.New: open db: %w", err)
	}

	// CREATE TABLE IF NOT EXISTS is idempotent — safe to run on every
	// startup.
	//
	// Schema:
	//   id      — integer primary key; preserves insertion order on load
	//   roll_no — the record's unique key as far as the store is concerned,
	//             but NOT unique here: the snapshot layer stores whatever
	//             sequence it is handed, duplicates included
	//   age     — TEXT, possibly empty; ages are free-form strings
	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS students (
			id      INTEGER PRIMARY KEY AUTOINCREMENT,
			roll_no TEXT NOT NULL,
			name    TEXT NOT NULL,
			grade   TEXT NOT NULL,
			age     TEXT NOT NULL DEFAULT ''
		)
	`)
	if err != nil {
		return nil, fmt.Errorf("sqlite.New: create table: %w", err)
	}

	return &SQLite{db: db}, nil
}

// Load returns every persisted record in insertion order. An empty table
// yields an empty (non-nil) slice.
func (s *SQLite) Load() ([]types.Student, error) {
	// Explicitly list columns — never use SELECT *. If a column is added
	// later, SELECT * would break Scan's ordering.
	rows, err := s.db.Query(
		"SELECT roll_no, name, grade, age FROM students ORDER BY id",
	)
	if err != nil {
		return nil, fmt.Errorf("sqlite.Load: query: %w", err)
	}
	defer rows.Close() // must close rows to free the DB connection

	records := make([]types.Student, 0)
	for rows.Next() {
		var rec types.Student
		if err := rows.Scan(&rec.RollNo, &rec.Name, &rec.Grade, &rec.Age); err != nil {
			return nil, fmt.Errorf("sqlite.Load: scan row: %w", err)
		}
		records = append(records, rec)
	}

	// rows.Err() captures any error that occurred during iteration.
	// This is separate from Scan errors.
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite.Load: rows iteration: %w", err)
	}

	return records, nil
}

// Save replaces the table contents with the given sequence. Delete and
// inserts run in one transaction, so a failed save leaves the previous
// snapshot intact.
func (s *SQLite) Save(records []types.Student) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("sqlite.Save: begin: %w", err)
	}
	// Rollback after a successful Commit is a harmless no-op; deferring it
	// covers every early-return error path below.
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM students"); err != nil {
		return fmt.Errorf("sqlite.Save: clear table: %w", err)
	}

	// Prepared statements use placeholders (?): the driver sends query and
	// values separately, so field text is always pure data, never SQL.
	stmt, err := tx.Prepare(
		"INSERT INTO students (roll_no, name, grade, age) VALUES (?, ?, ?, ?)",
	)
	if err != nil {
		return fmt.Errorf("sqlite.Save: prepare: %w", err)
	}
	defer stmt.Close()

	for _, rec := range records {
		if _, err := stmt.Exec(rec.RollNo, rec.Name, rec.Grade, rec.Age); err != nil {
			return fmt.Errorf("sqlite.Save: insert roll %s: %w", rec.RollNo, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("sqlite.Save: commit: %w", err)
	}
	return nil
}

// Close releases the underlying database handle.
func (s *SQLite) Close() error {
	return s.db.Close()
}
