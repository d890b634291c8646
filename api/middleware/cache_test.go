package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/killallgit/rofind-api/internal/services/cache"
)

func setupCachedRouter(t *testing.T, status int) (*gin.Engine, *atomic.Int32, cache.Cache) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := cache.NewMemoryCache(1, time.Minute)
	t.Cleanup(func() { _ = store.Close() })

	var calls atomic.Int32
	router := gin.New()
	router.Use(CacheMiddleware(CacheConfig{
		Cache:      store,
		DefaultTTL: time.Minute,
		Enabled:    true,
	}))
	handler := func(c *gin.Context) {
		calls.Add(1)
		c.Header("X-Request-ID", "req-1")
		c.JSON(status, gin.H{"count": calls.Load()})
	}
	router.GET("/api/v1/categories", handler)
	router.POST("/api/v1/categories", handler)
	return router, &calls, store
}

func doRequest(router *gin.Engine, method, target string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCacheMiddleware_HitAfterMiss(t *testing.T) {
	router, calls, _ := setupCachedRouter(t, http.StatusOK)

	first := doRequest(router, http.MethodGet, "/api/v1/categories?limit=5", nil)
	assert.Equal(t, "MISS", first.Header().Get("X-Cache"))

	second := doRequest(router, http.MethodGet, "/api/v1/categories?limit=5", nil)
	assert.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, "HIT", second.Header().Get("X-Cache"))
	assert.Equal(t, first.Body.String(), second.Body.String())
	assert.NotEmpty(t, second.Header().Get("ETag"))
	assert.Empty(t, second.Header().Get("X-Request-ID"))
	assert.Contains(t, second.Header().Get("Content-Type"), "application/json")
	assert.EqualValues(t, 1, calls.Load())
}

func TestCacheMiddleware_QueryOrderDoesNotMatter(t *testing.T) {
	router, calls, _ := setupCachedRouter(t, http.StatusOK)

	doRequest(router, http.MethodGet, "/api/v1/categories?a=1&b=2", nil)
	w := doRequest(router, http.MethodGet, "/api/v1/categories?b=2&a=1", nil)

	assert.Equal(t, "HIT", w.Header().Get("X-Cache"))
	assert.EqualValues(t, 1, calls.Load())
}

func TestCacheMiddleware_ConditionalRequest(t *testing.T) {
	router, _, _ := setupCachedRouter(t, http.StatusOK)

	doRequest(router, http.MethodGet, "/api/v1/categories", nil)
	hit := doRequest(router, http.MethodGet, "/api/v1/categories", nil)
	etag := hit.Header().Get("ETag")
	require.NotEmpty(t, etag)

	w := doRequest(router, http.MethodGet, "/api/v1/categories", map[string]string{"If-None-Match": etag})
	assert.Equal(t, http.StatusNotModified, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestCacheMiddleware_Skips(t *testing.T) {
	tests := []struct {
		name          string
		status        int
		method        string
		headers       map[string]string
		expectedCalls int32
		expectedCache string
	}{
		{"no-cache header", http.StatusOK, http.MethodGet, map[string]string{"Cache-Control": "no-cache"}, 2, "BYPASS"},
		{"pragma", http.StatusOK, http.MethodGet, map[string]string{"Pragma": "no-cache"}, 2, "BYPASS"},
		{"POST is never cached", http.StatusOK, http.MethodPost, nil, 2, ""},
		{"errors are not stored", http.StatusBadGateway, http.MethodGet, nil, 2, "MISS"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, calls, _ := setupCachedRouter(t, tt.status)

			doRequest(router, tt.method, "/api/v1/categories", tt.headers)
			w := doRequest(router, tt.method, "/api/v1/categories", tt.headers)

			assert.Equal(t, tt.expectedCalls, calls.Load())
			assert.Equal(t, tt.expectedCache, w.Header().Get("X-Cache"))
		})
	}
}

func TestCacheMiddleware_DropsUnreadableEntry(t *testing.T) {
	router, calls, store := setupCachedRouter(t, http.StatusOK)

	key := "http:/api/v1/categories"
	require.NoError(t, store.Set(context.Background(), key, []byte("not json"), time.Minute))

	w := doRequest(router, http.MethodGet, "/api/v1/categories", nil)
	assert.Equal(t, "MISS", w.Header().Get("X-Cache"))
	assert.EqualValues(t, 1, calls.Load())
}

func TestCacheMiddleware_Disabled(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(CacheMiddleware(CacheConfig{Enabled: false}))
	router.GET("/x", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	w := doRequest(router, http.MethodGet, "/x", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("X-Cache"))
}

func TestTTLFor(t *testing.T) {
	config := CacheConfig{
		DefaultTTL: time.Minute,
		TTLByPath: map[string]time.Duration{
			"/api/v1":            2 * time.Minute,
			"/api/v1/categories": 10 * time.Minute,
			"/api/v1/trending":   30 * time.Second,
		},
	}

	assert.Equal(t, 10*time.Minute, ttlFor(config, "/api/v1/categories"))
	assert.Equal(t, 30*time.Second, ttlFor(config, "/api/v1/trending/extra"))
	assert.Equal(t, 2*time.Minute, ttlFor(config, "/api/v1/facets"))
	assert.Equal(t, time.Minute, ttlFor(config, "/health"))
}

func TestGenerateETag(t *testing.T) {
	a := generateETag([]byte("body"))
	assert.Equal(t, a, generateETag([]byte("body")))
	assert.NotEqual(t, a, generateETag([]byte("other")))
	assert.Len(t, a, 34)
}
