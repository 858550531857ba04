// Package shell implements the interactive console menu on top of the
// record store and a snapshot backend.
//
// The shell is pure glue: it prompts, calls store operations, and prints
// their results. It never touches record state directly and adds no rules
// of its own, so everything here is about wording and flow, not data.
//
// DEPENDENCY INJECTION:
// ─────────────────────
// The shell receives its collaborators (store, snapshot backend, input,
// output) through New and closes over nothing global. Tests drive it with
// a strings.Reader and a bytes.Buffer; main wires stdin and stdout.
package shell

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/aanand-mishra/student-records/internal/store"
	"github.com/aanand-mishra/student-records/internal/storage"
	"github.com/aanand-mishra/student-records/internal/types"
	"github.com/aanand-mishra/student-records/internal/utils/render"
)

// Shell runs the menu loop against one store instance.
type Shell struct {
	store    *store.Store
	snap     storage.Snapshot
	where    string // human-readable snapshot location for "Saved to …"
	in       *bufio.Scanner
	out      io.Writer
	validate *validator.Validate
}

// New returns a shell reading commands from in and writing to out. The
// where string names the snapshot location in user-facing messages (a
// file path, typically).
func New(st *store.Store, snap storage.Snapshot, where string, in io.Reader, out io.Writer) *Shell {
	return &Shell{
		store:    st,
		snap:     snap,
		where:    where,
		in:       bufio.NewScanner(in),
		out:      out,
		validate: validator.New(),
	}
}

// Run executes the menu loop until the user exits or input ends.
//
// Operation failures (duplicate roll, missing record, a failed mid-session
// save) are reported and the loop continues; only the save-before-exit
// path returns its error, so the caller can exit non-zero when the final
// snapshot was requested but lost.
func (s *Shell) Run() error {
	for {
		fmt.Fprintln(s.out, "\n--- Student Management ---")
		fmt.Fprintln(s.out, "1) Add  2) View  3) Search  4) Update  5) Delete  6) Save  7) Exit")

		choice, ok := s.prompt("Choice: ")
		if !ok {
			// Input closed (Ctrl+D, or a script ran dry). Leave quietly
			// without saving; an explicit exit is the save opportunity.
			return nil
		}

		switch choice {
		case "1":
			s.addStudent()
		case "2":
			s.viewStudents()
		case "3":
			s.searchMenu()
		case "4":
			s.updateStudent()
		case "5":
			s.deleteStudent()
		case "6":
			if err := s.save(); err != nil {
				fmt.Fprintf(s.out, "Save failed: %v\n", err)
			}
		case "7":
			if answer, _ := s.prompt("Save before exit? (y/N): "); strings.EqualFold(answer, "y") {
				if err := s.save(); err != nil {
					fmt.Fprintf(s.out, "Save failed: %v\n", err)
					return err
				}
			}
			fmt.Fprintln(s.out, "Goodbye!")
			return nil
		default:
			fmt.Fprintln(s.out, "Invalid choice. Try again.")
		}
	}
}

// prompt prints a label and reads one trimmed line. The second return
// value is false when input is exhausted.
func (s *Shell) prompt(label string) (string, bool) {
	fmt.Fprint(s.out, label)
	if !s.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}

func (s *Shell) addStudent() {
	fmt.Fprintln(s.out, "Add student")

	roll, _ := s.prompt("Roll no: ")
	if _, found := s.store.FindByRoll(roll); found {
		fmt.Fprintln(s.out, "Roll no already exists.")
		return
	}

	name, _ := s.prompt("Name: ")
	grade, _ := s.prompt("Grade: ")
	age, _ := s.prompt("Age (optional): ")

	// Pre-validate so the failure message can name the missing field
	// instead of a generic "check inputs". The store re-checks on Add;
	// this only improves wording.
	candidate := types.Student{RollNo: roll, Name: name, Grade: grade, Age: age}
	if err := s.validate.Struct(candidate); err != nil {
		if validateErrs, ok := err.(validator.ValidationErrors); ok {
			fmt.Fprintf(s.out, "Failed to add: %s.\n", render.ValidationError(validateErrs))
			return
		}
	}

	if s.store.Add(roll, name, grade, age) {
		slog.Info("student added", slog.String("roll_no", roll))
		fmt.Fprintln(s.out, "Added.")
	} else {
		fmt.Fprintln(s.out, "Failed to add (check inputs).")
	}
}

func (s *Shell) viewStudents() {
	records := s.store.Records()
	if len(records) == 0 {
		fmt.Fprintln(s.out, "No records.")
		return
	}
	render.Table(s.out, records)
}

func (s *Shell) searchMenu() {
	fmt.Fprintln(s.out, "Search")

	mode, _ := s.prompt("Search by (1) Roll no or (2) Name? ")
	switch mode {
	case "1":
		roll, _ := s.prompt("Enter roll no: ")
		rec, found := s.store.FindByRoll(roll)
		if !found {
			fmt.Fprintln(s.out, "Not found.")
			return
		}
		render.Table(s.out, []types.Student{rec})
	case "2":
		part, _ := s.prompt("Enter part of name: ")
		matches := s.store.FindByNamePart(part)
		if len(matches) == 0 {
			fmt.Fprintln(s.out, "No matches.")
			return
		}
		render.Table(s.out, matches)
	default:
		fmt.Fprintln(s.out, "Invalid choice.")
	}
}

func (s *Shell) updateStudent() {
	fmt.Fprintln(s.out, "Update student")

	roll, _ := s.prompt("Roll to update: ")
	rec, found := s.store.FindByRoll(roll)
	if !found {
		fmt.Fprintln(s.out, "Not found.")
		return
	}

	// Current values are shown in brackets; an empty answer keeps them.
	// That means the shell never passes an explicitly empty age through —
	// clearing an age is possible via the store API but not from here,
	// because an empty prompt answer always reads as "no change".
	newName, _ := s.prompt(fmt.Sprintf("Name [%s]: ", rec.Name))
	newGrade, _ := s.prompt(fmt.Sprintf("Grade [%s]: ", rec.Grade))
	newAge, _ := s.prompt(fmt.Sprintf("Age [%s]: ", rec.Age))

	s.store.Update(roll, optional(newName), optional(newGrade), optional(newAge))
	slog.Info("student updated", slog.String("roll_no", roll))
	fmt.Fprintln(s.out, "Updated.")
}

func (s *Shell) deleteStudent() {
	fmt.Fprintln(s.out, "Delete student")

	roll, _ := s.prompt("Roll to delete: ")
	rec, found := s.store.FindByRoll(roll)
	if !found {
		fmt.Fprintln(s.out, "Not found.")
		return
	}

	confirm, _ := s.prompt(fmt.Sprintf("Delete %s (roll %s)? (y/N): ", rec.Name, rec.RollNo))
	if !strings.EqualFold(confirm, "y") {
		fmt.Fprintln(s.out, "Cancelled.")
		return
	}

	s.store.Delete(roll)
	slog.Info("student deleted", slog.String("roll_no", roll))
	fmt.Fprintln(s.out, "Deleted.")
}

func (s *Shell) save() error {
	if err := s.snap.Save(s.store.Records()); err != nil {
		slog.Error("snapshot save failed",
			slog.String("where", s.where),
			slog.String("error", err.Error()))
		return err
	}
	slog.Info("snapshot saved",
		slog.String("where", s.where),
		slog.Int("records", s.store.Len()))
	fmt.Fprintf(s.out, "Saved to %s.\n", s.where)
	return nil
}

// optional maps the prompt convention (empty answer = keep current value)
// onto the store's pointer convention (nil = field not provided).
func optional(answer string) *string {
	if answer == "" {
		return nil
	}
	return &answer
}
