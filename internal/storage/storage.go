// Package storage defines the Snapshot interface — the contract any
// persistence backend must satisfy to load and save the record sequence.
//
// WHY AN INTERFACE?
// ─────────────────
// The shell and the entry point should not know or care whether records
// land in a JSON file or a SQLite database. By depending only on this
// interface:
//
//   - Switching backends = implement the interface for the new backend,
//     change one line in main.go. Zero shell changes.
//
//   - Writing tests = pass a fake that satisfies the interface.
//     No real file or database needed.
//
// A backend deals purely in the record sequence — it never calls store
// operations, so the store's validation rules stay in one place.
package storage

import "github.com/aanand-mishra/student-records/internal/types"

// Snapshot persists the full record sequence as one unit. There is no
// incremental write: Save replaces whatever the backend held before, and
// Load returns everything it holds now.
type Snapshot interface {
	// Load reads the persisted sequence. A backend that has nothing yet
	// (file absent, table empty) returns an empty slice and a nil error —
	// "no prior data" is a normal first-run state, not a failure.
	Load() ([]types.Student, error)

	// Save writes the given sequence, replacing the previous contents in
	// full. Write failures are returned to the caller, never swallowed.
	Save(records []types.Student) error
}
