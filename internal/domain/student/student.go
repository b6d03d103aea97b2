package student

import (
	"slices"
	"strings"
)

// Raw is a student record as delivered by the roster endpoint.
type Raw struct {
	City      string   `json:"city"`
	Company   string   `json:"company"`
	Email     string   `json:"email"`
	FirstName string   `json:"firstName"`
	Grades    []string `json:"grades"`
	ID        string   `json:"id"`
	LastName  string   `json:"lastName"`
	Pic       string   `json:"pic"`
	Skill     string   `json:"skill"`
}

// Student is the local record: the immutable natural fields, the uppercase full
// name derived once at ingestion and a mutable ordered tag set.
type Student struct {
	raw      Raw
	fullName string
	tags     []string
}

// New ingests a raw record. The full name is computed here and never again.
func New(r Raw) *Student {
	r.Grades = slices.Clone(r.Grades)
	return &Student{
		raw:      r,
		fullName: strings.ToUpper(r.FirstName + " " + r.LastName),
		tags:     []string{},
	}
}

// ID returns the record identifier.
func (s *Student) ID() string { return s.raw.ID }

// FirstName returns the first name as delivered.
func (s *Student) FirstName() string { return s.raw.FirstName }

// LastName returns the last name as delivered.
func (s *Student) LastName() string { return s.raw.LastName }

// FullName returns the uppercase "FIRST LAST" computed at ingestion.
func (s *Student) FullName() string { return s.fullName }

// City returns the city.
func (s *Student) City() string { return s.raw.City }

// Company returns the company.
func (s *Student) Company() string { return s.raw.Company }

// Email returns the email address.
func (s *Student) Email() string { return s.raw.Email }

// Pic returns the profile picture URL.
func (s *Student) Pic() string { return s.raw.Pic }

// Skill returns the skill.
func (s *Student) Skill() string { return s.raw.Skill }

// Grades returns a copy of the grades (numeric strings).
func (s *Student) Grades() []string { return slices.Clone(s.raw.Grades) }

// Tags returns a copy of the tags in insertion order.
func (s *Student) Tags() []string { return slices.Clone(s.tags) }

// HasTag reports whether tag is present. Comparison is exact and case-sensitive.
func (s *Student) HasTag(tag string) bool {
	return slices.Contains(s.tags, tag)
}

// AddTag appends tag unless an identical tag exists. Returns true when appended.
func (s *Student) AddTag(tag string) bool {
	if s.HasTag(tag) {
		return false
	}
	s.tags = append(s.tags, tag)
	return true
}

// NameContains reports whether the full name contains upperQuery.
func (s *Student) NameContains(upperQuery string) bool {
	return strings.Contains(s.fullName, upperQuery)
}

// AnyTagContains reports whether at least one uppercased tag contains upperQuery.
func (s *Student) AnyTagContains(upperQuery string) bool {
	for _, t := range s.tags {
		if strings.Contains(strings.ToUpper(t), upperQuery) {
			return true
		}
	}
	return false
}

// Clone returns a deep copy safe to hand out of the store.
func (s *Student) Clone() *Student {
	c := *s
	c.raw.Grades = slices.Clone(s.raw.Grades)
	c.tags = slices.Clone(s.tags)
	return &c
}
