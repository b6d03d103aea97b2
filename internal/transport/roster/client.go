package roster

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/nwongx/hatchways-assessment/internal/domain"
	"github.com/nwongx/hatchways-assessment/internal/domain/student"
	"github.com/nwongx/hatchways-assessment/internal/metrics"
)

// maxBodyBytes caps the roster payload read from the remote endpoint.
const maxBodyBytes = 8 << 20

// Client fetches the student roster over HTTP.
type Client struct {
	http   *http.Client
	url    string
	logger *zap.Logger
}

// Config holds the roster endpoint settings.
type Config struct {
	URL     string
	Timeout time.Duration
	Logger  *zap.Logger
}

// NewClient creates a roster client.
func NewClient(cfg *Config) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		http:   &http.Client{Timeout: cfg.Timeout},
		url:    cfg.URL,
		logger: logger,
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func (c *Client) WithHTTPClient(hc *http.Client) *Client {
	c.http = hc
	return c
}

// Fetch performs a single GET and decodes the student list.
// Every failure wraps domain.ErrFetchFailed.
func (c *Client) Fetch(ctx context.Context) ([]student.Raw, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("build roster request: %w: %w", domain.ErrFetchFailed, err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	metrics.RosterFetchDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.RosterFetchRequestsTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("roster request: %w: %w", domain.ErrFetchFailed, err)
	}
	defer func() { _ = resp.Body.Close() }()

	status := strconv.Itoa(resp.StatusCode)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		metrics.RosterFetchRequestsTotal.WithLabelValues(status).Inc()
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		return nil, fmt.Errorf("roster endpoint returned %d: %w", resp.StatusCode, domain.ErrFetchFailed)
	}

	var payload domain.RosterResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(&payload); err != nil {
		metrics.RosterFetchRequestsTotal.WithLabelValues("decode_error").Inc()
		return nil, fmt.Errorf("decode roster: %w: %w", domain.ErrFetchFailed, err)
	}

	metrics.RosterFetchRequestsTotal.WithLabelValues(status).Inc()
	c.logger.Debug("roster fetched",
		zap.String("url", c.url),
		zap.Int("students", len(payload.Students)),
		zap.Duration("duration", time.Since(start)),
	)
	return payload.Students, nil
}
