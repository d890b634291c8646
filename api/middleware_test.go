package api

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestCORS(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name            string
		method          string
		origin          string
		expectedHeaders map[string]string
		expectedStatus  int
	}{
		{
			name:           "preflight request",
			method:         http.MethodOptions,
			origin:         "https://example.com",
			expectedStatus: http.StatusNoContent,
			expectedHeaders: map[string]string{
				"Access-Control-Allow-Origin":  "*",
				"Access-Control-Allow-Methods": "GET, POST, OPTIONS",
				"Access-Control-Allow-Headers": "Content-Type, Authorization, X-Request-ID, Cache-Control",
			},
		},
		{
			name:           "regular GET request",
			method:         http.MethodGet,
			origin:         "https://example.com",
			expectedStatus: http.StatusOK,
			expectedHeaders: map[string]string{
				"Access-Control-Allow-Origin":   "*",
				"Access-Control-Expose-Headers": "X-Request-ID, X-Cache, ETag, Age",
			},
		},
		{
			name:           "POST request without origin",
			method:         http.MethodPost,
			expectedStatus: http.StatusOK,
			expectedHeaders: map[string]string{
				"Access-Control-Allow-Origin": "*",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			_, router := gin.CreateTestContext(w)

			router.Use(CORS())
			router.Any("/test", func(c *gin.Context) {
				c.JSON(http.StatusOK, gin.H{"message": "success"})
			})

			req := httptest.NewRequest(tt.method, "/test", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			for header, expectedValue := range tt.expectedHeaders {
				assert.Equal(t, expectedValue, w.Header().Get(header), "Header: %s", header)
			}
		})
	}
}

func TestRequestSizeLimitWithSize(t *testing.T) {
	gin.SetMode(gin.TestMode)

	limit := int64(1024)

	tests := []struct {
		name           string
		method         string
		bodySize       int
		expectedStatus int
	}{
		{"small POST", http.MethodPost, 100, http.StatusOK},
		{"POST at limit", http.MethodPost, 1024, http.StatusOK},
		{"POST over limit", http.MethodPost, 2048, http.StatusRequestEntityTooLarge},
		{"GET is not limited", http.MethodGet, 2048, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			_, router := gin.CreateTestContext(w)

			router.Use(RequestSizeLimitWithSize(limit))
			router.Handle(tt.method, "/test", func(c *gin.Context) {
				body, err := io.ReadAll(c.Request.Body)
				if err != nil {
					c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": err.Error()})
					return
				}
				c.JSON(http.StatusOK, gin.H{"received": len(body)})
			})

			req := httptest.NewRequest(tt.method, "/test", strings.NewReader(strings.Repeat("a", tt.bodySize)))
			req.Header.Set("Content-Type", "text/plain")

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func newLimitedRouter(limiter *ClientRateLimiter, bucket string, rps float64, burst int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	group := router.Group("/" + bucket)
	group.Use(limiter.Middleware(bucket, rps, burst))
	group.GET("", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	return router
}

func hit(router *gin.Engine, path, ip string) int {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.RemoteAddr = ip + ":1234"
	router.ServeHTTP(w, req)
	return w.Code
}

func TestClientRateLimiterBurst(t *testing.T) {
	limiter := NewClientRateLimiter()
	defer limiter.Stop()

	fixed := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return fixed }

	router := newLimitedRouter(limiter, "search", 1, 2)

	assert.Equal(t, http.StatusOK, hit(router, "/search", "10.0.0.1"))
	assert.Equal(t, http.StatusOK, hit(router, "/search", "10.0.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, hit(router, "/search", "10.0.0.1"))

	// other clients have their own bucket
	assert.Equal(t, http.StatusOK, hit(router, "/search", "10.0.0.2"))

	// tokens refill with time
	fixed = fixed.Add(time.Second)
	assert.Equal(t, http.StatusOK, hit(router, "/search", "10.0.0.1"))
}

func TestClientRateLimiterSeparatesBuckets(t *testing.T) {
	limiter := NewClientRateLimiter()
	defer limiter.Stop()

	fixed := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return fixed }

	search := newLimitedRouter(limiter, "search", 1, 1)
	facets := newLimitedRouter(limiter, "facets", 1, 1)

	assert.Equal(t, http.StatusOK, hit(search, "/search", "10.0.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, hit(search, "/search", "10.0.0.1"))
	assert.Equal(t, http.StatusOK, hit(facets, "/facets", "10.0.0.1"))
}

func TestClientRateLimiterSweep(t *testing.T) {
	limiter := NewClientRateLimiter()
	defer limiter.Stop()

	fixed := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return fixed }

	router := newLimitedRouter(limiter, "search", 5, 5)
	hit(router, "/search", "10.0.0.1")
	fixed = fixed.Add(limiterIdleTTL / 2)
	hit(router, "/search", "10.0.0.2")
	assert.Equal(t, 2, limiter.size())

	fixed = fixed.Add(limiterIdleTTL/2 + time.Second)
	limiter.sweep()
	assert.Equal(t, 1, limiter.size())
}

func TestClientRateLimiterStopIsIdempotent(t *testing.T) {
	limiter := NewClientRateLimiter()
	limiter.Middleware("search", 1, 1)

	assert.NotPanics(t, func() {
		limiter.Stop()
		limiter.Stop()
	})
}
