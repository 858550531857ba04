// Package types holds all shared data structures (models) used across
// the application. Keeping them in one place prevents import cycles —
// the store, the storage backends, and the shell can all import types
// without depending on each other.
package types

// Student represents a single student record.
//
// Struct tags serve two purposes:
//
//  1. json:"..."  — controls the field names in the persisted JSON file.
//     The file format uses snake_case keys ("roll_no"), so files written
//     by older tooling keep loading unchanged.
//
//  2. validate:"..." — rules checked by the go-playground/validator
//     package. "required" means the field must be non-empty.
//
// Every field is a string on purpose: records are keyed and compared as
// trimmed text, and Age is free-form optional input. An absent age is
// stored as the empty string, never as a missing field.
type Student struct {
	RollNo string `json:"roll_no" validate:"required"`
	Name   string `json:"name"    validate:"required"`
	Grade  string `json:"grade"   validate:"required"`
	Age    string `json:"age"`
}
