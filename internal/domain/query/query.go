package query

import (
	"fmt"
	"strings"

	"github.com/nwongx/hatchways-assessment/internal/domain"
)

// Kind selects the field a search targets.
type Kind string

// Query kind constants.
const (
	// Name matches against the uppercase full name.
	Name Kind = "name"
	// Tag matches against any tag of a record.
	Tag Kind = "tag"
)

// IsValid checks if the kind is one of the supported values.
func (k Kind) IsValid() bool {
	return k == Name || k == Tag
}

// Query is a single predicate change: which kind, and its new value.
type Query struct {
	kind  Kind
	value string
}

// New validates the kind and trims the value. An empty value clears the predicate.
func New(kind Kind, value string) (Query, error) {
	if !kind.IsValid() {
		return Query{}, fmt.Errorf("%w: %q", domain.ErrInvalidQueryKind, kind)
	}
	return Query{kind: kind, value: strings.TrimSpace(value)}, nil
}

// Kind returns the targeted field.
func (q Query) Kind() Kind { return q.kind }

// Value returns the trimmed query text.
func (q Query) Value() string { return q.value }

// Key returns the case-folded cache key for the value.
func (q Query) Key() string { return Key(q.value) }

// Key case-folds a query value for cache keying and matching.
func Key(value string) string {
	return strings.ToUpper(value)
}

// Pair is the pair of active predicates. Either side may be empty.
type Pair struct {
	Name string
	Tag  string
}

// Merge applies q to the side it targets, leaving the other side unchanged.
func (p Pair) Merge(q Query) Pair {
	switch q.kind {
	case Name:
		p.Name = q.value
	case Tag:
		p.Tag = q.value
	}
	return p
}
