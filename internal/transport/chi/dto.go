package chi

import (
	"github.com/nwongx/hatchways-assessment/internal/domain/student"
	browseuc "github.com/nwongx/hatchways-assessment/internal/usecase/browse"
	"github.com/nwongx/hatchways-assessment/internal/usecase/filter"
	"github.com/nwongx/hatchways-assessment/internal/usecase/querycache"
)

// ErrorResponseCode is a machine-readable error code.
type ErrorResponseCode string

// Error codes returned by the API.
const (
	ErrorResponseCodeBadRequest       ErrorResponseCode = "bad_request"
	ErrorResponseCodeValidationFailed ErrorResponseCode = "validation_failed"
	ErrorResponseCodeUnauthorized     ErrorResponseCode = "unauthorized"
	ErrorResponseCodeStudentNotFound  ErrorResponseCode = "student_not_found"
	ErrorResponseCodeEmptyTag         ErrorResponseCode = "empty_tag"
	ErrorResponseCodeInvalidQueryKind ErrorResponseCode = "invalid_query_kind"
	ErrorResponseCodeFetchFailed      ErrorResponseCode = "fetch_failed"
	ErrorResponseCodeRateLimited      ErrorResponseCode = "rate_limited"
	ErrorResponseCodeInternalError    ErrorResponseCode = "internal_error"
)

// ErrorResponse is the JSON body of every error.
type ErrorResponse struct {
	Code    ErrorResponseCode `json:"code"`
	Message string            `json:"message"`
}

// QueryRequest is the body of PUT /api/v1/query.
type QueryRequest struct {
	Kind  string `json:"kind"`
	Value string `json:"value"`
}

// TagRequest is the body of POST /api/v1/students/{id}/tags.
type TagRequest struct {
	Tag string `json:"tag"`
}

// StudentResponse is a rendered student card.
type StudentResponse struct {
	ID        string   `json:"id"`
	FirstName string   `json:"first_name"`
	LastName  string   `json:"last_name"`
	Email     string   `json:"email"`
	Company   string   `json:"company"`
	Skill     string   `json:"skill"`
	City      string   `json:"city"`
	Pic       string   `json:"pic"`
	Grades    []string `json:"grades"`
	Average   *float64 `json:"average,omitempty"`
	Tags      []string `json:"tags"`
}

// QueryState echoes the active name and tag queries.
type QueryState struct {
	Name string `json:"name"`
	Tag  string `json:"tag"`
}

// SnapshotResponse is the view state: the displayed page of students and paging flags.
type SnapshotResponse struct {
	FetchState   string            `json:"fetch_state"`
	Loaded       bool              `json:"loaded"`
	Error        string            `json:"error,omitempty"`
	Total        int               `json:"total"`
	MatchCount   int               `json:"match_count"`
	DisplayedIDs []string          `json:"displayed_ids"`
	Students     []StudentResponse `json:"students"`
	HasMore      bool              `json:"has_more"`
	Query        QueryState        `json:"query"`
}

// FetchResponse is returned by POST /api/v1/roster/fetch without waiting.
type FetchResponse struct {
	Started    bool   `json:"started"`
	FetchState string `json:"fetch_state"`
}

// CacheKindStats is the occupancy of one query cache.
type CacheKindStats struct {
	Entries  int `json:"entries"`
	QueueLen int `json:"queue_length"`
	Capacity int `json:"capacity"`
}

// CacheStatsResponse is returned by GET /api/v1/cache/stats.
type CacheStatsResponse struct {
	Name CacheKindStats `json:"name"`
	Tag  CacheKindStats `json:"tag"`
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

func studentToResponse(st *student.Student) StudentResponse {
	resp := StudentResponse{
		ID:        st.ID(),
		FirstName: st.FirstName(),
		LastName:  st.LastName(),
		Email:     st.Email(),
		Company:   st.Company(),
		Skill:     st.Skill(),
		City:      st.City(),
		Pic:       st.Pic(),
		Grades:    st.Grades(),
		Tags:      st.Tags(),
	}
	if resp.Grades == nil {
		resp.Grades = []string{}
	}
	if resp.Tags == nil {
		resp.Tags = []string{}
	}
	// A malformed grade list renders without an average.
	if avg, err := student.Average(resp.Grades); err == nil && avg != student.NoGrades {
		resp.Average = &avg
	}
	return resp
}

func snapshotToResponse(snap browseuc.Snapshot) SnapshotResponse {
	students := make([]StudentResponse, 0, len(snap.DisplayedIDs))
	for _, id := range snap.DisplayedIDs {
		if st, ok := snap.Records[id]; ok {
			students = append(students, studentToResponse(st))
		}
	}

	resp := SnapshotResponse{
		FetchState:   string(snap.FetchState),
		Loaded:       snap.Loaded,
		Total:        len(snap.AllIDs),
		MatchCount:   snap.MatchCount,
		DisplayedIDs: snap.DisplayedIDs,
		Students:     students,
		HasMore:      snap.HasMore,
		Query:        QueryState{Name: snap.Query.Name, Tag: snap.Query.Tag},
	}
	if resp.DisplayedIDs == nil {
		resp.DisplayedIDs = []string{}
	}
	if snap.FetchErr != nil {
		resp.Error = safeDomainMessage(snap.FetchErr)
	}
	return resp
}

func kindStatsToResponse(s querycache.Stats) CacheKindStats {
	return CacheKindStats{Entries: s.Entries, QueueLen: s.QueueLen, Capacity: s.Capacity}
}

func cacheStatsToResponse(s filter.Stats) CacheStatsResponse {
	return CacheStatsResponse{
		Name: kindStatsToResponse(s.Name),
		Tag:  kindStatsToResponse(s.Tag),
	}
}
