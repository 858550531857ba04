// Package store implements the in-memory record store: an ordered sequence
// of student records keyed by roll number, with the add/search/update/delete
// operations and their validation rules.
//
// DESIGN NOTES:
// ─────────────
//   - The store is a plain owned value, not package-level state. Callers
//     construct one with New (or NewFrom after loading a snapshot) and pass
//     it down explicitly, the same way a database handle would be injected.
//   - Records are stored already trimmed, so every lookup trims its input
//     once and then compares exactly. A stored roll number never carries
//     leading or trailing whitespace.
//   - Lookups are linear scans. The store holds a single user's data-entry
//     session (tens of records, not millions), so an index would buy nothing.
//   - Mutations report success as a bool rather than an error: "false" always
//     means "nothing changed, every invariant still holds".
package store

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/aanand-mishra/student-records/internal/types"
)

// Store owns the ordered sequence of student records.
//
// Invariant: no two records share the same RollNo, and RollNo, Name and
// Grade are never empty. Insertion order is preserved; nothing re-sorts.
type Store struct {
	records []types.Student

	// validate checks the validate:"required" tags on types.Student.
	// One instance per store — validator.New() builds a reflection cache
	// that is cheap to reuse and wasteful to rebuild per call.
	validate *validator.Validate
}

// New returns an empty store.
func New() *Store {
	return &Store{
		records:  make([]types.Student, 0),
		validate: validator.New(),
	}
}

// NewFrom returns a store seeded with the given records, typically the
// result of a snapshot load. The slice is copied, so the caller keeps
// ownership of its argument.
//
// NewFrom trusts its input: snapshot loading normalizes fields but does not
// deduplicate, so a hand-edited file with a repeated roll number is carried
// as-is. Uniqueness is enforced on Add only.
func NewFrom(records []types.Student) *Store {
	s := New()
	s.records = append(s.records, records...)
	return s
}

// ─────────────────────────────────────────────────────────────────────────────
// Add appends a new record.
//
// All four inputs are trimmed first. The add is rejected (returns false,
// store untouched) when:
//   - roll number, name, or grade is empty after trimming, or
//   - a record with the same roll number already exists.
//
// Age is optional and stored trimmed, possibly empty.
// ─────────────────────────────────────────────────────────────────────────────
func (s *Store) Add(rollNo, name, grade, age string) bool {
	rec := types.Student{
		RollNo: strings.TrimSpace(rollNo),
		Name:   strings.TrimSpace(name),
		Grade:  strings.TrimSpace(grade),
		Age:    strings.TrimSpace(age),
	}

	// The required tags on types.Student cover the three mandatory fields.
	if err := s.validate.Struct(rec); err != nil {
		return false
	}

	if _, found := s.FindByRoll(rec.RollNo); found {
		return false
	}

	s.records = append(s.records, rec)
	return true
}

// FindByRoll returns the record with exactly the given (trimmed) roll
// number. The second return value reports whether it was found.
func (s *Store) FindByRoll(rollNo string) (types.Student, bool) {
	rollNo = strings.TrimSpace(rollNo)
	for _, rec := range s.records {
		if rec.RollNo == rollNo {
			return rec, true
		}
	}
	return types.Student{}, false
}

// FindByNamePart returns every record whose name contains the query,
// case-insensitively, in store order. An empty query matches every record
// (the empty string is a substring of everything).
func (s *Store) FindByNamePart(part string) []types.Student {
	q := strings.ToLower(strings.TrimSpace(part))

	matches := make([]types.Student, 0)
	for _, rec := range s.records {
		if strings.Contains(strings.ToLower(rec.Name), q) {
			matches = append(matches, rec)
		}
	}
	return matches
}

// ─────────────────────────────────────────────────────────────────────────────
// Update modifies fields of the record with the given roll number.
//
// The three field arguments are pointers so that "not provided" (nil) and
// "provided but empty" stay distinguishable:
//
//   - name, grade — applied only when provided AND non-empty after trimming.
//     An explicitly empty value is a no-op for that field, which is what
//     keeps the required-field invariant intact through updates.
//   - age — applied whenever provided at all, including the empty string.
//     Age is the one clearable field.
//
// The roll number itself is never mutated, so an update can never collide
// two records; uniqueness is checked on Add only.
//
// Returns true once the target record is located, whether or not any field
// actually changed value. Returns false (nothing mutated) when no record
// has that roll number.
// ─────────────────────────────────────────────────────────────────────────────
func (s *Store) Update(rollNo string, name, grade, age *string) bool {
	rollNo = strings.TrimSpace(rollNo)
	for i := range s.records {
		if s.records[i].RollNo != rollNo {
			continue
		}

		if name != nil {
			if v := strings.TrimSpace(*name); v != "" {
				s.records[i].Name = v
			}
		}
		if grade != nil {
			if v := strings.TrimSpace(*grade); v != "" {
				s.records[i].Grade = v
			}
		}
		if age != nil {
			s.records[i].Age = strings.TrimSpace(*age)
		}
		return true
	}
	return false
}

// Delete removes the record with the given roll number, preserving the
// relative order of the remaining records. Returns true iff a record was
// removed.
func (s *Store) Delete(rollNo string) bool {
	rollNo = strings.TrimSpace(rollNo)
	for i := range s.records {
		if s.records[i].RollNo == rollNo {
			s.records = append(s.records[:i], s.records[i+1:]...)
			return true
		}
	}
	return false
}

// Records returns a copy of the full sequence in store order. Callers
// (snapshot save, table rendering) get their own slice and cannot reach
// back into the store's state.
func (s *Store) Records() []types.Student {
	out := make([]types.Student, len(s.records))
	copy(out, s.records)
	return out
}

// Len returns the number of records currently held.
func (s *Store) Len() int {
	return len(s.records)
}
