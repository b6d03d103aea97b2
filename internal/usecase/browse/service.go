package browse

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"go.uber.org/zap"

	"github.com/nwongx/hatchways-assessment/internal/domain"
	"github.com/nwongx/hatchways-assessment/internal/domain/page"
	"github.com/nwongx/hatchways-assessment/internal/domain/query"
	"github.com/nwongx/hatchways-assessment/internal/domain/student"
	"github.com/nwongx/hatchways-assessment/internal/metrics"
	"github.com/nwongx/hatchways-assessment/internal/usecase/filter"
	"github.com/nwongx/hatchways-assessment/internal/usecase/predicate"
	"github.com/nwongx/hatchways-assessment/internal/usecase/querycache"
)

// FetchState is the roster fetch lifecycle.
type FetchState string

const (
	// Idle means no fetch is running. The store may or may not be loaded.
	Idle FetchState = "idle"
	// Pending means a fetch is in flight.
	Pending FetchState = "pending"
	// Rejected means the last fetch failed. A new fetch may be requested.
	Rejected FetchState = "rejected"
)

// Snapshot is the readable state exposed to the view layer.
type Snapshot struct {
	FetchState   FetchState
	Loaded       bool
	FetchErr     error
	Records      map[string]*student.Student
	AllIDs       []string
	DisplayedIDs []string
	HasMore      bool
	Query        query.Pair
	MatchCount   int
}

// Service is the browse state machine. Every event runs to completion under one
// mutex, so events are applied strictly in arrival order.
type Service struct {
	source RosterSource
	logger *zap.Logger

	pageSize      int
	cacheCapacity int

	mu            sync.Mutex
	state         FetchState
	loaded        bool
	fetchErr      error
	records       predicate.Records
	allIDs        []string
	query         query.Pair
	shouldDisplay []string
	window        page.Window
	filter        *filter.Coordinator
}

// New creates a browse service with the default page size and cache capacity.
func New(source RosterSource, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Service{
		source:        source,
		logger:        logger,
		pageSize:      page.DefaultIncrement,
		cacheCapacity: querycache.DefaultCapacity,
		state:         Idle,
		records:       predicate.Records{},
		allIDs:        []string{},
		shouldDisplay: []string{},
		window:        page.Empty(),
	}
	s.filter = s.newFilter()
	return s
}

// WithPageSize configures the page increment.
func (s *Service) WithPageSize(size int) *Service {
	if size > 0 {
		s.pageSize = size
	}
	return s
}

// WithCacheCapacity configures the admission queue capacity of both query caches.
// Must be called before any event is processed.
func (s *Service) WithCacheCapacity(capacity int) *Service {
	if capacity > 0 {
		s.cacheCapacity = capacity
		s.filter = s.newFilter()
	}
	return s
}

func (s *Service) newFilter() *filter.Coordinator {
	return filter.New(
		querycache.New(string(query.Name), s.cacheCapacity, s.logger),
		querycache.New(string(query.Tag), s.cacheCapacity, s.logger),
	)
}

// RequestFetch starts the roster fetch unless one is pending or the store is
// already loaded. It returns immediately; done is closed once the outcome has
// been applied. started is false when the request was ignored, and done is
// then already closed.
func (s *Service) RequestFetch(ctx context.Context) (done <-chan struct{}, started bool) {
	ch := make(chan struct{})

	s.mu.Lock()
	if s.state == Pending || s.loaded {
		state, loaded := s.state, s.loaded
		s.mu.Unlock()
		close(ch)
		metrics.BrowseEventsTotal.WithLabelValues("fetch", "ignored").Inc()
		s.logger.Debug("fetch request ignored",
			zap.String("state", string(state)),
			zap.Bool("loaded", loaded),
		)
		return ch, false
	}
	s.state = Pending
	s.fetchErr = nil
	s.mu.Unlock()

	s.logger.Debug("fetch started")

	// The fetch outlives the request that triggered it.
	fetchCtx := context.WithoutCancel(ctx)
	go func() {
		defer close(ch)
		raws, err := s.source.Fetch(fetchCtx)
		s.completeFetch(raws, err)
	}()

	return ch, true
}

func (s *Service) completeFetch(raws []student.Raw, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		if !errors.Is(err, domain.ErrFetchFailed) {
			err = fmt.Errorf("%w: %w", domain.ErrFetchFailed, err)
		}
		s.state = Rejected
		s.fetchErr = err
		metrics.BrowseEventsTotal.WithLabelValues("fetch", "failed").Inc()
		s.logger.Warn("roster fetch failed", zap.Error(err))
		return
	}

	records := make(predicate.Records, len(raws))
	ids := make([]string, 0, len(raws))
	for _, r := range raws {
		if _, dup := records[r.ID]; dup {
			s.logger.Warn("duplicate student id in roster", zap.String("id", r.ID))
			continue
		}
		records[r.ID] = student.New(r)
		ids = append(ids, r.ID)
	}

	s.records = records
	s.allIDs = ids
	s.loaded = true
	s.state = Idle
	s.query = query.Pair{}
	s.shouldDisplay = slices.Clone(ids)
	s.window = page.Initial(s.shouldDisplay, s.pageSize)

	metrics.BrowseEventsTotal.WithLabelValues("fetch", "succeeded").Inc()
	s.logger.Info("roster loaded", zap.Int("students", len(ids)))
}

// ChangeQuery merges q into the active predicates, recomputes the should-display
// list and resets the page window. Before the roster is loaded only the query is recorded.
func (s *Service) ChangeQuery(q query.Query) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.query = s.query.Merge(q)
	if !s.loaded {
		metrics.BrowseEventsTotal.WithLabelValues("query", "ignored").Inc()
		return
	}

	s.shouldDisplay = s.filter.ShouldDisplay(s.records, s.allIDs, s.query)
	s.window = page.Initial(s.shouldDisplay, s.pageSize)

	metrics.BrowseEventsTotal.WithLabelValues("query", "applied").Inc()
	s.logger.Debug("query changed",
		zap.String("kind", string(q.Kind())),
		zap.String("value", q.Value()),
		zap.Int("matches", len(s.shouldDisplay)),
	)
}

// AddTag appends tag to a student. An exact duplicate is a silent no-op.
// The should-display list and page window are not refreshed.
func (s *Service) AddTag(id, tag string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if tag == "" {
		metrics.BrowseEventsTotal.WithLabelValues("tag", "rejected").Inc()
		return domain.ErrEmptyTag
	}
	st, ok := s.records[id]
	if !ok {
		metrics.BrowseEventsTotal.WithLabelValues("tag", "rejected").Inc()
		return domain.NewStudentNotFound(id)
	}

	if !st.AddTag(tag) {
		metrics.BrowseEventsTotal.WithLabelValues("tag", "ignored").Inc()
		return nil
	}

	// Only the entry for exactly upper(tag) learns about the new id.
	patched := s.filter.PatchTag(tag, id)

	metrics.BrowseEventsTotal.WithLabelValues("tag", "applied").Inc()
	s.logger.Debug("tag added",
		zap.String("id", id),
		zap.String("tag", tag),
		zap.Bool("cache_patched", patched),
	)
	return nil
}

// LoadMore advances the page window. It is a no-op when nothing is left.
func (s *Service) LoadMore() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loaded || !s.window.HasMore() {
		metrics.BrowseEventsTotal.WithLabelValues("load_more", "ignored").Inc()
		return
	}

	s.window = page.Advance(s.shouldDisplay, s.window.Size(), s.pageSize)

	metrics.BrowseEventsTotal.WithLabelValues("load_more", "applied").Inc()
	s.logger.Debug("page advanced",
		zap.Int("displayed", s.window.Size()),
		zap.Bool("has_more", s.window.HasMore()),
	)
}

// Snapshot returns a deep copy of the current state.
func (s *Service) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	records := make(map[string]*student.Student, len(s.records))
	for id, st := range s.records {
		records[id] = st.Clone()
	}

	return Snapshot{
		FetchState:   s.state,
		Loaded:       s.loaded,
		FetchErr:     s.fetchErr,
		Records:      records,
		AllIDs:       slices.Clone(s.allIDs),
		DisplayedIDs: s.window.Displayed(),
		HasMore:      s.window.HasMore(),
		Query:        s.query,
		MatchCount:   len(s.shouldDisplay),
	}
}

// State returns the fetch state and the last fetch error, if any.
func (s *Service) State() (FetchState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state, s.fetchErr
}

// CacheStats reports query cache occupancy for both predicate kinds.
func (s *Service) CacheStats() filter.Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filter.Stats()
}

// RosterHealth returns the last fetch error while the fetch state is rejected.
func (s *Service) RosterHealth() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == Rejected {
		return s.fetchErr
	}
	return nil
}
