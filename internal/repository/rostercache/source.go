package rostercache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/nwongx/hatchways-assessment/internal/db"
	"github.com/nwongx/hatchways-assessment/internal/domain"
	"github.com/nwongx/hatchways-assessment/internal/domain/student"
)

// DefaultKey is the store key holding the cached roster payload.
const DefaultKey = "studentdir:roster"

// store is the consumer interface for the roster cache (ISP).
type store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	SetWithTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Del(ctx context.Context, key string) error
}

// source fetches the roster from upstream.
type source interface {
	Fetch(ctx context.Context) ([]student.Raw, error)
}

// CachedSource caches the roster payload in a key-value store.
type CachedSource struct {
	inner      source
	store      store
	key        string
	ttl        time.Duration
	cacheTotal *prometheus.CounterVec
	logger     *zap.Logger
	group      singleflight.Group
}

// New creates a caching decorator. A zero ttl stores the payload without expiry.
// cacheTotal is a counter vec with label "result" ("hit"/"miss"), passed explicitly.
func New(
	inner source,
	s store,
	ttl time.Duration,
	cacheTotal *prometheus.CounterVec,
	logger *zap.Logger,
) *CachedSource {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CachedSource{
		inner:      inner,
		store:      s,
		key:        DefaultKey,
		ttl:        ttl,
		cacheTotal: cacheTotal,
		logger:     logger,
	}
}

// WithKey overrides the store key.
func (c *CachedSource) WithKey(key string) *CachedSource {
	if key != "" {
		c.key = key
	}
	return c
}

// Fetch returns the cached roster or loads it from upstream. Concurrent
// misses share one upstream call. Store failures never fail the fetch.
func (c *CachedSource) Fetch(ctx context.Context) ([]student.Raw, error) {
	v, err, _ := c.group.Do(c.key, func() (any, error) {
		if raws, ok := c.getFromCache(ctx); ok {
			c.incCache("hit")
			return raws, nil
		}
		c.incCache("miss")

		raws, err := c.inner.Fetch(ctx)
		if err != nil {
			return nil, fmt.Errorf("fetch roster: %w", err)
		}
		c.putToCache(ctx, raws)
		return raws, nil
	})
	if err != nil {
		return nil, err //nolint:wrapcheck // wrapped inside the flight
	}
	return v.([]student.Raw), nil
}

func (c *CachedSource) incCache(result string) {
	if c.cacheTotal != nil {
		c.cacheTotal.WithLabelValues(result).Inc()
	}
}

func (c *CachedSource) getFromCache(ctx context.Context) ([]student.Raw, bool) {
	data, err := c.store.Get(ctx, c.key)
	if err != nil {
		if !errors.Is(err, db.ErrKeyNotFound) {
			c.logger.Warn("Failed to get cached roster", zap.String("key", c.key), zap.Error(err))
		}
		return nil, false
	}
	if len(data) == 0 {
		return nil, false
	}

	var resp domain.RosterResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		c.logger.Warn("Dropping unreadable cached roster", zap.String("key", c.key), zap.Error(err))
		if err := c.store.Del(ctx, c.key); err != nil {
			c.logger.Warn("Failed to drop cached roster", zap.String("key", c.key), zap.Error(err))
		}
		return nil, false
	}
	return resp.Students, true
}

func (c *CachedSource) putToCache(ctx context.Context, raws []student.Raw) {
	data, err := json.Marshal(domain.RosterResponse{Students: raws})
	if err != nil {
		c.logger.Warn("Failed to encode roster for cache", zap.Error(err))
		return
	}

	if c.ttl > 0 {
		err = c.store.SetWithTTL(ctx, c.key, data, c.ttl)
	} else {
		err = c.store.Set(ctx, c.key, data)
	}
	if err != nil {
		c.logger.Warn("Failed to cache roster", zap.String("key", c.key), zap.Error(err))
	}
}
