// Package querycache memoizes predicate results per uppercased query.
//
// Admission is tracked by a FIFO queue of keys that may repeat: every lookup
// pushes its key again and an entry's reference count equals the number of
// queue slots naming it. When the queue is full the front slot is released
// before the new one is pushed. An entry is deleted only when releasing a slot
// drops its count to zero.
package querycache

import (
	"slices"

	"go.uber.org/zap"

	"github.com/nwongx/hatchways-assessment/internal/metrics"
)

// DefaultCapacity is the number of admission queue slots.
const DefaultCapacity = 100

// Compute produces the matching ids for a key on a miss.
type Compute func(upperKey string) []string

// Lookup describes the outcome of LookupOrCompute.
type Lookup struct {
	IDs      []string
	RefCount int
	Hit      bool
	// Evicted is set when the queue was full and its front slot was released.
	Evicted         bool
	EvictedKey      string
	EvictedRefCount int
}

// Stats is a point-in-time view of the cache occupancy.
type Stats struct {
	Entries  int
	QueueLen int
	Capacity int
}

type entry struct {
	ids      []string
	refCount int
}

// Cache is a bounded ref-counted query cache. It is not safe for concurrent use;
// callers serialize access.
type Cache struct {
	kind     string
	capacity int
	entries  map[string]*entry
	queue    []string
	logger   *zap.Logger
}

// New creates a cache for one predicate kind. Non-positive capacity falls back to DefaultCapacity.
func New(kind string, capacity int, logger *zap.Logger) *Cache {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Cache{
		kind:     kind,
		capacity: capacity,
		entries:  make(map[string]*entry),
		queue:    make([]string, 0, capacity),
		logger:   logger.With(zap.String("kind", kind)),
	}
}

// LookupOrCompute returns the ids cached for key, computing them on a miss,
// and applies the admission bookkeeping in one step.
func (c *Cache) LookupOrCompute(key string, compute Compute) Lookup {
	var res Lookup

	// Pending release of the front slot.
	if len(c.queue) >= c.capacity {
		front := c.queue[0]
		res.Evicted = true
		res.EvictedKey = front
		if e, ok := c.entries[front]; ok {
			res.EvictedRefCount = e.refCount - 1
		}
	}

	if e, ok := c.entries[key]; ok {
		res.Hit = true
		res.IDs = e.ids
		res.RefCount = e.refCount + 1
		if res.Evicted && res.EvictedKey == key {
			res.RefCount = e.refCount
		}
	} else {
		res.IDs = compute(key)
		res.RefCount = 1
	}

	if res.Evicted {
		c.release(res.EvictedKey, res.EvictedRefCount)
	}

	c.entries[key] = &entry{ids: res.IDs, refCount: res.RefCount}
	c.queue = append(c.queue, key)

	// A surviving front entry keeps its slot until here; drop it so the queue
	// stays within capacity. Its count was already decremented above.
	for len(c.queue) > c.capacity {
		c.queue = c.queue[1:]
	}

	c.observe(res)
	return Lookup{
		IDs:             slices.Clone(res.IDs),
		RefCount:        res.RefCount,
		Hit:             res.Hit,
		Evicted:         res.Evicted,
		EvictedKey:      res.EvictedKey,
		EvictedRefCount: res.EvictedRefCount,
	}
}

func (c *Cache) release(key string, newRefCount int) {
	if newRefCount <= 0 {
		delete(c.entries, key)
		c.queue = c.queue[1:]
		metrics.QueryCacheEvictionsTotal.WithLabelValues(c.kind).Inc()
		c.logger.Debug("query cache entry evicted", zap.String("key", key))
		return
	}
	if e, ok := c.entries[key]; ok {
		e.refCount = newRefCount
	}
}

// Append adds id to the entry cached under key, if any. Only that exact key is
// patched: entries for keys that are substrings of it keep their stale ids
// until they are evicted. Returns false when key is not cached.
func (c *Cache) Append(key, id string) bool {
	e, ok := c.entries[key]
	if !ok {
		return false
	}
	// Copy first: ids may be shared with an earlier Lookup result.
	ids := make([]string, len(e.ids), len(e.ids)+1)
	copy(ids, e.ids)
	e.ids = append(ids, id)
	return true
}

// Peek returns the cached ids and reference count for key without touching the queue.
func (c *Cache) Peek(key string) ([]string, int, bool) {
	e, ok := c.entries[key]
	if !ok {
		return nil, 0, false
	}
	return slices.Clone(e.ids), e.refCount, true
}

// Stats reports current occupancy.
func (c *Cache) Stats() Stats {
	return Stats{
		Entries:  len(c.entries),
		QueueLen: len(c.queue),
		Capacity: c.capacity,
	}
}

func (c *Cache) observe(res Lookup) {
	result := "miss"
	if res.Hit {
		result = "hit"
	}
	metrics.QueryCacheLookupsTotal.WithLabelValues(c.kind, result).Inc()
	metrics.QueryCacheEntries.WithLabelValues(c.kind).Set(float64(len(c.entries)))
	metrics.QueryCacheQueueLength.WithLabelValues(c.kind).Set(float64(len(c.queue)))

	c.logger.Debug("query cache lookup",
		zap.String("result", result),
		zap.Int("ref_count", res.RefCount),
		zap.Int("queue_len", len(c.queue)),
	)
}
