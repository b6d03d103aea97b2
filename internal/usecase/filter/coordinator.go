package filter

import (
	"slices"

	"github.com/nwongx/hatchways-assessment/internal/domain/query"
	"github.com/nwongx/hatchways-assessment/internal/usecase/predicate"
	"github.com/nwongx/hatchways-assessment/internal/usecase/querycache"
)

// Stats reports query cache occupancy per predicate kind.
type Stats struct {
	Name querycache.Stats
	Tag  querycache.Stats
}

// Coordinator derives the should-display list from the active predicates,
// memoizing each predicate kind in its own cache.
type Coordinator struct {
	name *querycache.Cache
	tag  *querycache.Cache
}

// New creates a coordinator over one cache per predicate kind.
func New(name, tag *querycache.Cache) *Coordinator {
	return &Coordinator{name: name, tag: tag}
}

// ShouldDisplay resolves every non-empty predicate through its cache, name first.
// With both present the result follows the tag list order; with none it is allIDs.
func (c *Coordinator) ShouldDisplay(records predicate.Records, allIDs []string, q query.Pair) []string {
	var nameIDs, tagIDs []string
	nameKey, tagKey := query.Key(q.Name), query.Key(q.Tag)

	if nameKey != "" {
		nameIDs = c.name.LookupOrCompute(nameKey, func(k string) []string {
			return predicate.MatchByName(records, allIDs, k)
		}).IDs
	}
	if tagKey != "" {
		tagIDs = c.tag.LookupOrCompute(tagKey, func(k string) []string {
			return predicate.MatchByTag(records, allIDs, k)
		}).IDs
	}

	switch {
	case nameKey != "" && tagKey != "":
		return predicate.IntersectByOrder(nameIDs, tagIDs)
	case nameKey != "":
		return nameIDs
	case tagKey != "":
		return tagIDs
	default:
		return slices.Clone(allIDs)
	}
}

// PatchTag appends id to the tag cache entry for exactly upper(tag).
// Entries for broader queries matching the new tag are left stale.
func (c *Coordinator) PatchTag(tag, id string) bool {
	return c.tag.Append(query.Key(tag), id)
}

// Cache returns the cache backing a predicate kind, or nil for an unknown kind.
func (c *Coordinator) Cache(kind query.Kind) *querycache.Cache {
	switch kind {
	case query.Name:
		return c.name
	case query.Tag:
		return c.tag
	default:
		return nil
	}
}

// Stats reports both caches.
func (c *Coordinator) Stats() Stats {
	return Stats{Name: c.name.Stats(), Tag: c.tag.Stats()}
}
