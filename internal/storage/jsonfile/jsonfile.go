// Package jsonfile provides the default file-backed implementation of the
// storage.Snapshot interface: the record sequence serialized as a single
// pretty-printed JSON array.
//
// The load side is deliberately forgiving. A missing file, an unreadable
// file, or a file that does not parse as a JSON array all load as "no
// records" — for a single-user data-entry tool, starting empty beats
// refusing to start. The failure is logged, not surfaced, so a corrupt
// file is distinguishable from a fresh one in the logs.
//
// The save side is the opposite: a failed write is a real error and is
// returned to the caller.
package jsonfile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/aanand-mishra/student-records/internal/types"
)

// File persists the record sequence to a single JSON file at a fixed path.
type File struct {
	path string
}

// New returns a snapshot backend writing to the given path. The file is
// not touched until Load or Save is called, so pointing at a not-yet-
// existing path is fine.
func New(path string) *File {
	return &File{path: path}
}

// ─────────────────────────────────────────────────────────────────────────────
// Load reads the record sequence from the file.
//
// Returns an empty slice (nil error) when the file does not exist, cannot
// be read, or does not contain a JSON array. Array elements that are JSON
// objects are normalized into records: roll_no, name and grade are read as
// strings (empty when absent) and trimmed; age is trimmed and empty when
// absent or null. Non-object elements are dropped.
//
// Load does NOT deduplicate roll numbers — uniqueness is an invariant of
// the store's Add operation, not of the file format.
// ─────────────────────────────────────────────────────────────────────────────
func (f *File) Load() ([]types.Student, error) {
	raw, err := os.ReadFile(f.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			slog.Warn("snapshot file unreadable, starting empty",
				slog.String("path", f.path),
				slog.String("error", err.Error()))
		}
		return []types.Student{}, nil
	}

	// UseNumber keeps numeric fields as their literal text, so a file
	// carrying "age": 15 loads as the string "15" rather than 1.5e1.
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var parsed any
	if err := dec.Decode(&parsed); err != nil {
		slog.Warn("snapshot file is not valid JSON, starting empty",
			slog.String("path", f.path),
			slog.String("error", err.Error()))
		return []types.Student{}, nil
	}

	list, ok := parsed.([]any)
	if !ok {
		slog.Warn("snapshot file is not a JSON array, starting empty",
			slog.String("path", f.path))
		return []types.Student{}, nil
	}

	records := make([]types.Student, 0, len(list))
	for _, el := range list {
		obj, ok := el.(map[string]any)
		if !ok {
			// Stray strings/numbers/nulls in the array carry no record.
			continue
		}
		records = append(records, types.Student{
			RollNo: strings.TrimSpace(asString(obj["roll_no"])),
			Name:   strings.TrimSpace(asString(obj["name"])),
			Grade:  strings.TrimSpace(asString(obj["grade"])),
			Age:    strings.TrimSpace(asString(obj["age"])),
		})
	}
	return records, nil
}

// Save writes the full sequence to the file, replacing any previous
// contents. The output is two-space-indented UTF-8 JSON, readable (and
// hand-editable) in any text editor.
func (f *File) Save(records []types.Student) error {
	if records == nil {
		// A nil slice would serialize as JSON null, which Load would then
		// reject as "not an array". Persist an empty sequence instead.
		records = []types.Student{}
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("jsonfile.Save: marshal: %w", err)
	}

	if err := os.WriteFile(f.path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("jsonfile.Save: write %s: %w", f.path, err)
	}
	return nil
}

// asString renders a decoded JSON value as record-field text. Strings pass
// through, numbers and bools keep their literal form, everything else
// (absent key, null, nested structures) becomes the empty string.
func asString(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case json.Number:
		return val.String()
	case bool:
		return strconv.FormatBool(val)
	default:
		return ""
	}
}
