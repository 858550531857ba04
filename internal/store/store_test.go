package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aanand-mishra/student-records/internal/types"
)

func ptr(s string) *string { return &s }

func TestAddAndFindByRoll(t *testing.T) {
	s := New()

	ok := s.Add("101", "Alice", "A", "15")
	require.True(t, ok)

	rec, found := s.FindByRoll("101")
	require.True(t, found)
	assert.Equal(t, types.Student{RollNo: "101", Name: "Alice", Grade: "A", Age: "15"}, rec)
}

func TestAddTrimsAllFields(t *testing.T) {
	s := New()

	require.True(t, s.Add("  101 ", " Alice ", " A ", " 15 "))

	// Lookup keys on trimmed input, and the stored record holds trimmed
	// values.
	rec, found := s.FindByRoll(" 101")
	require.True(t, found)
	assert.Equal(t, "101", rec.RollNo)
	assert.Equal(t, "Alice", rec.Name)
	assert.Equal(t, "A", rec.Grade)
	assert.Equal(t, "15", rec.Age)
}

func TestAddRejectsDuplicateRoll(t *testing.T) {
	s := New()

	require.True(t, s.Add("101", "Alice", "A", "15"))
	assert.False(t, s.Add("101", "Bob", "B", ""))

	// The existing record is untouched by the rejected add.
	rec, found := s.FindByRoll("101")
	require.True(t, found)
	assert.Equal(t, "Alice", rec.Name)
	assert.Equal(t, 1, s.Len())
}

func TestAddRejectsMissingRequiredFields(t *testing.T) {
	s := New()

	assert.False(t, s.Add("", "Alice", "A", ""))
	assert.False(t, s.Add("101", "", "A", ""))
	assert.False(t, s.Add("101", "Alice", "", ""))
	// Whitespace-only counts as empty after trimming.
	assert.False(t, s.Add("   ", "Alice", "A", ""))
	assert.Equal(t, 0, s.Len())
}

func TestAddAgeIsOptional(t *testing.T) {
	s := New()

	require.True(t, s.Add("103", "Ajay", "C", ""))
	rec, found := s.FindByRoll("103")
	require.True(t, found)
	assert.Equal(t, "", rec.Age)
}

func TestFindByRollAbsent(t *testing.T) {
	s := New()
	_, found := s.FindByRoll("999")
	assert.False(t, found)
}

func TestFindByNamePart(t *testing.T) {
	s := New()
	require.True(t, s.Add("101", "Alice", "A", ""))
	require.True(t, s.Add("102", "Bhavani", "B", ""))
	require.True(t, s.Add("103", "Malice", "C", ""))

	// Case-insensitive substring match, results in store order.
	matches := s.FindByNamePart("LIC")
	require.Len(t, matches, 2)
	assert.Equal(t, "Alice", matches[0].Name)
	assert.Equal(t, "Malice", matches[1].Name)

	// Empty query matches everything.
	assert.Len(t, s.FindByNamePart(""), 3)
	assert.Len(t, s.FindByNamePart("   "), 3)

	// No match yields an empty, non-nil slice.
	matches = s.FindByNamePart("zzz")
	assert.NotNil(t, matches)
	assert.Empty(t, matches)
}

func TestUpdate(t *testing.T) {
	s := New()
	require.True(t, s.Add("102", "Bhavani", "B", "16"))

	ok := s.Update("102", ptr("Bhavani R"), ptr("A"), nil)
	require.True(t, ok)

	rec, found := s.FindByRoll("102")
	require.True(t, found)
	assert.Equal(t, types.Student{RollNo: "102", Name: "Bhavani R", Grade: "A", Age: "16"}, rec)
}

func TestUpdateAbsentRoll(t *testing.T) {
	s := New()
	require.True(t, s.Add("101", "Alice", "A", "15"))

	assert.False(t, s.Update("999", ptr("Bob"), nil, nil))

	rec, _ := s.FindByRoll("101")
	assert.Equal(t, "Alice", rec.Name)
}

func TestUpdateEmptyNameAndGradeAreNoOps(t *testing.T) {
	s := New()
	require.True(t, s.Add("101", "Alice", "A", "15"))

	// Explicitly empty name/grade leave the fields unchanged; the update
	// still reports success because the record was found.
	ok := s.Update("101", ptr(""), ptr("  "), nil)
	require.True(t, ok)

	rec, _ := s.FindByRoll("101")
	assert.Equal(t, "Alice", rec.Name)
	assert.Equal(t, "A", rec.Grade)
}

func TestUpdateEmptyAgeClearsField(t *testing.T) {
	s := New()
	require.True(t, s.Add("101", "Alice", "A", "15"))

	// Age is the one clearable field: a provided empty value applies.
	require.True(t, s.Update("101", nil, nil, ptr("")))
	rec, _ := s.FindByRoll("101")
	assert.Equal(t, "", rec.Age)

	require.True(t, s.Update("101", nil, nil, ptr(" 16 ")))
	rec, _ = s.FindByRoll("101")
	assert.Equal(t, "16", rec.Age)
}

func TestUpdateNilFieldsKeepEverything(t *testing.T) {
	s := New()
	require.True(t, s.Add("101", "Alice", "A", "15"))

	require.True(t, s.Update("101", nil, nil, nil))
	rec, _ := s.FindByRoll("101")
	assert.Equal(t, types.Student{RollNo: "101", Name: "Alice", Grade: "A", Age: "15"}, rec)
}

func TestDelete(t *testing.T) {
	s := New()
	require.True(t, s.Add("103", "Ajay", "C", ""))

	assert.True(t, s.Delete("103"))
	_, found := s.FindByRoll("103")
	assert.False(t, found)

	// Deleting again fails: the record is already gone.
	assert.False(t, s.Delete("103"))
}

func TestDeletePreservesOrder(t *testing.T) {
	s := New()
	require.True(t, s.Add("101", "Alice", "A", ""))
	require.True(t, s.Add("102", "Bhavani", "B", ""))
	require.True(t, s.Add("103", "Ajay", "C", ""))

	require.True(t, s.Delete("102"))

	records := s.Records()
	require.Len(t, records, 2)
	assert.Equal(t, "101", records[0].RollNo)
	assert.Equal(t, "103", records[1].RollNo)
}

func TestNewFromCopiesInput(t *testing.T) {
	seed := []types.Student{
		{RollNo: "101", Name: "Alice", Grade: "A", Age: "15"},
		{RollNo: "102", Name: "Bhavani", Grade: "B", Age: ""},
	}

	s := NewFrom(seed)
	require.Equal(t, 2, s.Len())

	// Mutating the seed slice after construction must not reach the store.
	seed[0].Name = "Mallory"
	rec, _ := s.FindByRoll("101")
	assert.Equal(t, "Alice", rec.Name)
}

func TestRecordsReturnsCopy(t *testing.T) {
	s := New()
	require.True(t, s.Add("101", "Alice", "A", "15"))

	out := s.Records()
	out[0].Name = "Mallory"

	rec, _ := s.FindByRoll("101")
	assert.Equal(t, "Alice", rec.Name)
}
