package chi

import (
	"encoding/json"
	"errors"
	"net/http"
	"regexp"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/nwongx/hatchways-assessment/internal/domain"
	"github.com/nwongx/hatchways-assessment/internal/domain/query"
	"github.com/nwongx/hatchways-assessment/internal/logger"
	browseuc "github.com/nwongx/hatchways-assessment/internal/usecase/browse"
	healthuc "github.com/nwongx/hatchways-assessment/internal/usecase/health"
)

var (
	// Letters, optionally two words separated by a single space. Empty clears the query.
	nameInput = regexp.MustCompile(`^$|^[a-zA-Z]+( [a-zA-Z]+)?$`)
	// Letters and digits only.
	tagInput = regexp.MustCompile(`^[a-zA-Z0-9]*$`)
)

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Server exposes the browse state machine over HTTP.
type Server struct {
	browse        *browseuc.Service
	health        *healthuc.Service
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(browse *browseuc.Service, health *healthuc.Service, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{
		browse: browse,
		health: health,
		logger: logger,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrStudentNotFound, http.StatusNotFound, ErrorResponseCodeStudentNotFound),
		sentinelHandler(domain.ErrEmptyTag, http.StatusBadRequest, ErrorResponseCodeEmptyTag),
		sentinelHandler(domain.ErrInvalidQueryKind, http.StatusBadRequest, ErrorResponseCodeInvalidQueryKind),
		sentinelHandler(domain.ErrFetchFailed, http.StatusBadGateway, ErrorResponseCodeFetchFailed),
	}
	return s
}

// Routes registers every endpoint on r.
func (s *Server) Routes(r chi.Router) {
	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/roster/fetch", s.RequestFetch)
		r.Get("/students", s.GetSnapshot)
		r.Post("/students/{id}/tags", s.AddTag)
		r.Put("/query", s.ChangeQuery)
		r.Post("/page/next", s.LoadMore)
		r.Get("/cache/stats", s.CacheStats)
	})

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, ErrorResponseCodeBadRequest, "route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, ErrorResponseCodeBadRequest, "method not allowed")
	})
}

// RequestFetch handles POST /api/v1/roster/fetch.
// With ?wait=true the response is deferred until the fetch outcome is applied.
func (s *Server) RequestFetch(w http.ResponseWriter, r *http.Request) {
	done, started := s.browse.RequestFetch(r.Context())

	if r.URL.Query().Get("wait") != "true" {
		state, _ := s.browse.State()
		status := http.StatusOK
		if started {
			status = http.StatusAccepted
		}
		writeJSON(w, status, FetchResponse{Started: started, FetchState: string(state)})
		return
	}

	select {
	case <-done:
	case <-r.Context().Done():
		writeError(w, http.StatusServiceUnavailable, ErrorResponseCodeFetchFailed, "request canceled while fetching")
		return
	}

	if state, err := s.browse.State(); state == browseuc.Rejected && err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, snapshotToResponse(s.browse.Snapshot()))
}

// GetSnapshot handles GET /api/v1/students.
func (s *Server) GetSnapshot(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, snapshotToResponse(s.browse.Snapshot()))
}

// ChangeQuery handles PUT /api/v1/query.
func (s *Server) ChangeQuery(w http.ResponseWriter, r *http.Request) {
	var req QueryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, ErrorResponseCodeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	q, err := query.New(query.Kind(req.Kind), req.Value)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	pattern := nameInput
	if q.Kind() == query.Tag {
		pattern = tagInput
	}
	if !pattern.MatchString(q.Value()) {
		writeError(w, http.StatusBadRequest, ErrorResponseCodeValidationFailed,
			"invalid characters in "+string(q.Kind())+" query")
		return
	}

	s.browse.ChangeQuery(q)
	writeJSON(w, http.StatusOK, snapshotToResponse(s.browse.Snapshot()))
}

// AddTag handles POST /api/v1/students/{id}/tags.
func (s *Server) AddTag(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req TagRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, ErrorResponseCodeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	tag := strings.TrimSpace(req.Tag)
	if !tagInput.MatchString(tag) {
		writeError(w, http.StatusBadRequest, ErrorResponseCodeValidationFailed, "tag must contain only letters and digits")
		return
	}

	if err := s.browse.AddTag(id, tag); err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	st, ok := s.browse.Snapshot().Records[id]
	if !ok {
		s.handleDomainError(w, r, domain.NewStudentNotFound(id))
		return
	}
	writeJSON(w, http.StatusOK, studentToResponse(st))
}

// LoadMore handles POST /api/v1/page/next.
func (s *Server) LoadMore(w http.ResponseWriter, _ *http.Request) {
	s.browse.LoadMore()
	writeJSON(w, http.StatusOK, snapshotToResponse(s.browse.Snapshot()))
}

// CacheStats handles GET /api/v1/cache/stats.
func (s *Server) CacheStats(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, cacheStatsToResponse(s.browse.CacheStats()))
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, HealthResponse{
		Status: string(report.Status),
		Checks: checks,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code ErrorResponseCode, message string) {
	writeJSON(w, status, ErrorResponse{
		Code:    code,
		Message: message,
	})
}

// safeDomainMessage returns a sentinel error message for the client without exposing internals.
func safeDomainMessage(err error) string {
	sentinels := []error{
		domain.ErrStudentNotFound,
		domain.ErrEmptyTag,
		domain.ErrInvalidQueryKind,
		domain.ErrFetchFailed,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code ErrorResponseCode) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

func (s *Server) handleDomainError(w http.ResponseWriter, r *http.Request, err error) {
	logger.FromContext(r.Context()).Warn("domain error", zap.Error(err))
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, ErrorResponseCodeInternalError, "internal error")
}
