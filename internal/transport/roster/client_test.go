package roster

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/nwongx/hatchways-assessment/internal/domain"
	"github.com/nwongx/hatchways-assessment/internal/domain/student/studenttest"
	"github.com/nwongx/hatchways-assessment/internal/metrics"
)

func TestMain(m *testing.M) {
	metrics.RegisterBrowseMetrics()
	os.Exit(m.Run())
}

func newClient(url string) *Client {
	return NewClient(&Config{URL: url, Timeout: time.Second})
}

func TestClient_Fetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("unexpected method: %s", r.Method)
		}
		if r.URL.Path != "/assessment/students" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(domain.RosterResponse{Students: studenttest.Raws()})
	}))
	defer server.Close()

	before := testutil.ToFloat64(metrics.RosterFetchRequestsTotal.WithLabelValues("200"))

	raws, err := newClient(server.URL + "/assessment/students").Fetch(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(raws) != 25 {
		t.Fatalf("len(raws) = %d, want 25", len(raws))
	}
	if raws[0].ID != "1" || raws[0].FirstName != "Ingaberg" || len(raws[0].Grades) != 8 {
		t.Errorf("unexpected first record: %+v", raws[0])
	}
	if raws[24].ID != "25" {
		t.Errorf("order not preserved: last id %q", raws[24].ID)
	}

	if got := testutil.ToFloat64(metrics.RosterFetchRequestsTotal.WithLabelValues("200")) - before; got != 1 {
		t.Errorf("status 200 counter delta = %v, want 1", got)
	}
}

func TestClient_FetchWireFormat(t *testing.T) {
	body := `{"students":[{"city":"Kugesi","company":"Skalith","email":"a@b.c",` +
		`"firstName":"Laurens","grades":["88","90"],"id":"3","lastName":"Romanet",` +
		`"pic":"https://example.com/p.jpg","skill":"Employee Handbooks"}]}`
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(body))
	}))
	defer server.Close()

	raws, err := newClient(server.URL).Fetch(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(raws) != 1 {
		t.Fatalf("len(raws) = %d, want 1", len(raws))
	}
	r := raws[0]
	if r.ID != "3" || r.FirstName != "Laurens" || r.LastName != "Romanet" ||
		r.Skill != "Employee Handbooks" || r.Pic != "https://example.com/p.jpg" || len(r.Grades) != 2 {
		t.Errorf("unexpected record: %+v", r)
	}
}

func TestClient_FetchErrors(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "server error",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
		},
		{
			name: "not found",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				http.NotFound(w, nil)
			},
		},
		{
			name: "malformed json",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`{"students": [`))
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(tc.handler)
			defer server.Close()

			_, err := newClient(server.URL).Fetch(context.Background())
			if !errors.Is(err, domain.ErrFetchFailed) {
				t.Fatalf("expected ErrFetchFailed, got %v", err)
			}
		})
	}
}

func TestClient_FetchUnreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := server.URL
	server.Close()

	_, err := newClient(url).Fetch(context.Background())
	if !errors.Is(err, domain.ErrFetchFailed) {
		t.Fatalf("expected ErrFetchFailed, got %v", err)
	}
}

func TestClient_FetchTimeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	c := NewClient(&Config{URL: server.URL, Timeout: 50 * time.Millisecond})
	_, err := c.Fetch(context.Background())
	if !errors.Is(err, domain.ErrFetchFailed) {
		t.Fatalf("expected ErrFetchFailed, got %v", err)
	}
}

func TestClient_WithHTTPClient(t *testing.T) {
	var hit bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hit = true
		_, _ = w.Write([]byte(`{"students":[]}`))
	}))
	defer server.Close()

	c := newClient(server.URL).WithHTTPClient(server.Client())
	raws, err := c.Fetch(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !hit || len(raws) != 0 {
		t.Errorf("hit=%v len=%d", hit, len(raws))
	}
}
