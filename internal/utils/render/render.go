// Package render provides helpers for writing consistent console output.
//
// Every command in the shell prints records and error text. Rather than
// repeating the same formatting in every command, we centralise it here:
// one table layout, one wording for each validation failure.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/aanand-mishra/student-records/internal/types"
)

// Column widths of the record table. The layout matches what the data
// files were designed around: short roll numbers and letter grades, names
// up to about twenty characters.
const (
	rollWidth  = 10
	nameWidth  = 22
	gradeWidth = 8
	ageWidth   = 6
)

// Table writes a header plus one formatted row per record:
//
//	Roll      Name                  Grade   Age
//	----------------------------------------------
//	101       Alice                 A       15
//
// The caller decides what to print when there are no records ("No
// records." vs "No matches."), so Table only ever renders a non-empty
// sequence plus its header.
func Table(w io.Writer, records []types.Student) {
	fmt.Fprintf(w, "%-*s%-*s%-*s%-*s\n",
		rollWidth, "Roll",
		nameWidth, "Name",
		gradeWidth, "Grade",
		ageWidth, "Age")
	fmt.Fprintln(w, strings.Repeat("-", rollWidth+nameWidth+gradeWidth+ageWidth))

	for _, rec := range records {
		fmt.Fprintf(w, "%-*s%-*s%-*s%-*s\n",
			rollWidth, rec.RollNo,
			nameWidth, rec.Name,
			gradeWidth, rec.Grade,
			ageWidth, rec.Age)
	}
}

// ValidationError converts a slice of validator.FieldError values into a
// single human-readable message.
//
// The go-playground/validator package returns one FieldError per failing
// struct field. We convert each to a plain English sentence and join them
// with ", " so the user sees a single descriptive line, e.g.:
//
//	field Name is required, field Grade is required
func ValidationError(errs validator.ValidationErrors) string {
	var errMessages []string

	for _, e := range errs {
		switch e.ActualTag() {
		// "required" tag — field was missing or empty
		case "required":
			errMessages = append(errMessages,
				fmt.Sprintf("field %s is required", e.Field()))
		// Catch-all for any other validation tag (min, max, len, etc.)
		default:
			errMessages = append(errMessages,
				fmt.Sprintf("field %s is invalid", e.Field()))
		}
	}

	return strings.Join(errMessages, ", ")
}
