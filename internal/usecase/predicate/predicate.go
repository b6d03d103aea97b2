// Package predicate holds the pure matching functions used to derive id lists
// from the record store. Every function preserves the order of its input ids.
package predicate

import (
	"github.com/nwongx/hatchways-assessment/internal/domain/query"
	"github.com/nwongx/hatchways-assessment/internal/domain/student"
)

// Records is the record store view the predicates read from.
type Records map[string]*student.Student

// Func filters ids against records by an uppercased query.
type Func func(records Records, ids []string, upperQuery string) []string

// MatchByName keeps ids whose uppercase full name contains upperQuery.
// An empty query returns ids unchanged.
func MatchByName(records Records, ids []string, upperQuery string) []string {
	if upperQuery == "" {
		return ids
	}
	return filter(records, ids, func(s *student.Student) bool {
		return s.NameContains(upperQuery)
	})
}

// MatchByTag keeps ids with at least one tag containing upperQuery, case-insensitively.
// An empty query returns ids unchanged.
func MatchByTag(records Records, ids []string, upperQuery string) []string {
	if upperQuery == "" {
		return ids
	}
	return filter(records, ids, func(s *student.Student) bool {
		return s.AnyTagContains(upperQuery)
	})
}

// For returns the predicate for a query kind, or nil for an unknown kind.
func For(kind query.Kind) Func {
	switch kind {
	case query.Name:
		return MatchByName
	case query.Tag:
		return MatchByTag
	default:
		return nil
	}
}

// IntersectByOrder keeps the members of tagIDs that also appear in nameIDs.
// The result follows tagIDs order.
func IntersectByOrder(nameIDs, tagIDs []string) []string {
	members := make(map[string]struct{}, len(nameIDs))
	for _, id := range nameIDs {
		members[id] = struct{}{}
	}

	out := make([]string, 0, min(len(nameIDs), len(tagIDs)))
	for _, id := range tagIDs {
		if _, ok := members[id]; ok {
			out = append(out, id)
		}
	}
	return out
}

func filter(records Records, ids []string, keep func(*student.Student) bool) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		s, ok := records[id]
		if !ok {
			continue
		}
		if keep(s) {
			out = append(out, id)
		}
	}
	return out
}
