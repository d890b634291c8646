package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/killallgit/rofind-api/internal/models"
	apperrors "github.com/killallgit/rofind-api/pkg/errors"
	"github.com/killallgit/rofind-api/pkg/log"
)

const serviceName = "search-backend"

// maxErrorBody bounds how much of a failed response is kept for logging
const maxErrorBody = 512

// Config holds configuration for the backend client
type Config struct {
	BaseURL           string        // Default: http://localhost:8000
	UserAgent         string        // Default: RoFindAPI/1.0
	Timeout           time.Duration // Default: 30s
	RequestsPerSecond float64       // <= 0 disables outbound limiting
	Burst             int           // Default: 1
}

// Client talks to the remote game search service
type Client struct {
	httpClient  *http.Client
	rateLimiter *rate.Limiter
	baseURL     string
	userAgent   string
}

// NewClient creates a new backend client
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8000"
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = "RoFindAPI/1.0"
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.Burst <= 0 {
		cfg.Burst = 1
	}

	limit := rate.Inf
	if cfg.RequestsPerSecond > 0 {
		limit = rate.Limit(cfg.RequestsPerSecond)
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		rateLimiter: rate.NewLimiter(limit, cfg.Burst),
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		userAgent:   cfg.UserAgent,
	}
}

// Search posts a search request. A response without a hits envelope is malformed.
func (c *Client) Search(ctx context.Context, req models.SearchRequest) (*SearchResponse, error) {
	var resp SearchResponse
	if err := c.do(ctx, http.MethodPost, "/api/search", req.RequestID, req, &resp); err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}
	if resp.Hits == nil {
		return nil, apperrors.MalformedResponseError(serviceName, errors.New("response has no hits"))
	}

	l := log.Ctx(ctx)
	l.Debug().
		Int(log.FieldHits, len(resp.Hits.Hits)).
		Int64(log.FieldBackendTotal, resp.Hits.Total.Value).
		Msg("backend search completed")
	return &resp, nil
}

// Trending fetches the currently popular games
func (c *Client) Trending(ctx context.Context, limit int) (*SearchResponse, error) {
	var resp SearchResponse
	if err := c.do(ctx, http.MethodPost, "/api/trending", "", trendingRequest{Limit: limit}, &resp); err != nil {
		return nil, fmt.Errorf("trending: %w", err)
	}
	if resp.Hits == nil {
		return nil, apperrors.MalformedResponseError(serviceName, errors.New("response has no hits"))
	}
	return &resp, nil
}

// Aggregations fetches the facet aggregations over the whole index
func (c *Client) Aggregations(ctx context.Context) (Aggregations, error) {
	var aggs Aggregations
	if err := c.do(ctx, http.MethodGet, "/api/aggregations", "", nil, &aggs); err != nil {
		return nil, fmt.Errorf("aggregations: %w", err)
	}
	if aggs == nil {
		return nil, apperrors.MalformedResponseError(serviceName, errors.New("empty aggregations body"))
	}
	return aggs, nil
}

// Health checks that the backend answers on /health
func (c *Client) Health(ctx context.Context) error {
	if err := c.do(ctx, http.MethodGet, "/health", "", nil, nil); err != nil {
		return fmt.Errorf("health: %w", err)
	}
	return nil
}

// do performs a single HTTP request and decodes the JSON answer into out
func (c *Client) do(ctx context.Context, method, path, requestID string, body, out any) error {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return apperrors.RateLimitError(serviceName, err)
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return apperrors.Wrap(err, apperrors.ErrCodeInternal, "encode request body")
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeInternal, "create request")
	}

	if requestID == "" {
		requestID = log.RequestID(ctx)
	}
	if requestID == "" {
		requestID = uuid.NewString()
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("Cache-Control", "no-cache")
	req.Header.Set("Pragma", "no-cache")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set(log.HeaderRequestID, requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if isTimeout(err) {
			return apperrors.TimeoutError(method+" "+path, err)
		}
		return apperrors.ExternalServiceError(serviceName, err)
	}
	defer resp.Body.Close()

	l := log.Ctx(ctx)
	l.Debug().
		Str(log.FieldEndpoint, path).
		Str(log.FieldRequestID, requestID).
		Int(log.FieldStatus, resp.StatusCode).
		Float64(log.FieldLatency, float64(time.Since(start).Milliseconds())).
		Msg("backend responded")

	if resp.StatusCode == http.StatusTooManyRequests {
		return apperrors.RateLimitError(serviceName, fmt.Errorf("status %d", resp.StatusCode))
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return apperrors.StatusError(serviceName, resp.StatusCode).
			WithDetail("body", strings.TrimSpace(string(snippet)))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if isTimeout(err) {
			return apperrors.TimeoutError(method+" "+path, err)
		}
		return apperrors.MalformedResponseError(serviceName, err)
	}
	return nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
