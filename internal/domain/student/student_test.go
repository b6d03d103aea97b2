package student

import (
	"errors"
	"slices"
	"testing"
)

func newTestStudent() *Student {
	return New(Raw{
		ID:        "1",
		FirstName: "Ingaberg",
		LastName:  "Orton",
		Grades:    []string{"78", "100"},
	})
}

func TestNew_FullNameUppercased(t *testing.T) {
	s := newTestStudent()
	if s.FullName() != "INGABERG ORTON" {
		t.Errorf("FullName() = %q", s.FullName())
	}
	if s.ID() != "1" {
		t.Errorf("ID() = %q", s.ID())
	}
	if len(s.Tags()) != 0 {
		t.Errorf("Tags() = %v, want empty", s.Tags())
	}
}

func TestNew_ClonesGrades(t *testing.T) {
	grades := []string{"90", "80"}
	s := New(Raw{ID: "1", Grades: grades})

	grades[0] = "0"
	if s.Grades()[0] != "90" {
		t.Error("grades mutation leaked into student")
	}

	out := s.Grades()
	out[1] = "0"
	if s.Grades()[1] != "80" {
		t.Error("Grades() returned internal slice")
	}
}

func TestAddTag_PreservesOrder(t *testing.T) {
	s := newTestStudent()
	for _, tag := range []string{"b", "a", "c"} {
		if !s.AddTag(tag) {
			t.Fatalf("AddTag(%q) = false, want true", tag)
		}
	}
	if got := s.Tags(); !slices.Equal(got, []string{"b", "a", "c"}) {
		t.Errorf("Tags() = %v", got)
	}
}

func TestAddTag_DuplicateIsCaseSensitive(t *testing.T) {
	s := newTestStudent()
	s.AddTag("t1")

	if s.AddTag("t1") {
		t.Error("exact duplicate must be rejected")
	}
	if len(s.Tags()) != 1 {
		t.Fatalf("len(Tags()) = %d, want 1", len(s.Tags()))
	}
	if !s.AddTag("T1") {
		t.Error("case variant must be accepted")
	}
	if got := s.Tags(); !slices.Equal(got, []string{"t1", "T1"}) {
		t.Errorf("Tags() = %v", got)
	}
}

func TestNameContains(t *testing.T) {
	s := newTestStudent()
	tests := []struct {
		q    string
		want bool
	}{
		{"IN", true},
		{"G O", true},
		{"ORTON", true},
		{"in", false}, // callers pass uppercased queries
		{"XYZ", false},
		{"", true},
	}
	for _, tc := range tests {
		if got := s.NameContains(tc.q); got != tc.want {
			t.Errorf("NameContains(%q) = %v, want %v", tc.q, got, tc.want)
		}
	}
}

func TestAnyTagContains(t *testing.T) {
	s := newTestStudent()
	s.AddTag("friendly")
	s.AddTag("Tag20")

	tests := []struct {
		q    string
		want bool
	}{
		{"FRIEND", true},
		{"AG2", true},
		{"T", true},
		{"MOCK", false},
	}
	for _, tc := range tests {
		if got := s.AnyTagContains(tc.q); got != tc.want {
			t.Errorf("AnyTagContains(%q) = %v, want %v", tc.q, got, tc.want)
		}
	}

	if New(Raw{ID: "2"}).AnyTagContains("") {
		t.Error("record without tags must not match any tag query")
	}
}

func TestClone_IsDeep(t *testing.T) {
	s := newTestStudent()
	s.AddTag("t1")

	c := s.Clone()
	c.AddTag("t2")

	if len(s.Tags()) != 1 {
		t.Errorf("clone mutation leaked: %v", s.Tags())
	}
	if c.FullName() != s.FullName() {
		t.Errorf("clone FullName() = %q", c.FullName())
	}
}

func TestAverage(t *testing.T) {
	tests := []struct {
		grades []string
		want   float64
	}{
		{[]string{"78", "100", "92", "86", "89", "88", "91", "87"}, 88.875},
		{[]string{"75", "89", "95", "93", "99", "82", "89", "76"}, 87.25},
		{[]string{"88", "90", "79", "82", "81", "99", "94", "73"}, 85.75},
		{[]string{"1", "2", "2"}, 1.667},
		{nil, NoGrades},
	}
	for _, tc := range tests {
		got, err := Average(tc.grades)
		if err != nil {
			t.Fatalf("Average(%v): unexpected error: %v", tc.grades, err)
		}
		if got != tc.want {
			t.Errorf("Average(%v) = %v, want %v", tc.grades, got, tc.want)
		}
	}
}

func TestAverage_InvalidGrade(t *testing.T) {
	_, err := Average([]string{"90", "abc"})
	if !errors.Is(err, ErrInvalidGrade) {
		t.Fatalf("expected ErrInvalidGrade, got %v", err)
	}
}
