package middleware

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/killallgit/rofind-api/internal/services/cache"
	"github.com/killallgit/rofind-api/pkg/log"
)

// CacheConfig holds configuration for cache middleware
type CacheConfig struct {
	Cache      cache.Cache
	DefaultTTL time.Duration
	TTLByPath  map[string]time.Duration // Path-specific TTLs, exact or prefix match
	Enabled    bool
}

// perRequestHeaders are never replayed from a cached entry
var perRequestHeaders = map[string]bool{
	"X-Request-Id": true,
	"X-Cache":      true,
	"Age":          true,
	"Date":         true,
}

// responseWriter captures response for caching
type responseWriter struct {
	gin.ResponseWriter
	body   *bytes.Buffer
	status int
}

func (w *responseWriter) Write(data []byte) (int, error) {
	w.body.Write(data)
	return w.ResponseWriter.Write(data)
}

func (w *responseWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

// CachedResponse represents a cached HTTP response
type CachedResponse struct {
	Status      int         `json:"status"`
	Headers     http.Header `json:"headers"`
	Body        []byte      `json:"body"`
	ContentType string      `json:"contentType"`
	CachedAt    time.Time   `json:"cachedAt"`
	ETag        string      `json:"etag"`
}

// CacheMiddleware caches successful GET responses
func CacheMiddleware(config CacheConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !config.Enabled || config.Cache == nil || c.Request.Method != http.MethodGet {
			c.Next()
			return
		}

		if shouldBypassCache(c.Request) {
			c.Header("X-Cache", "BYPASS")
			c.Next()
			return
		}

		ctx := c.Request.Context()
		key := generateCacheKey(c.Request)

		if data, found := config.Cache.Get(ctx, key); found {
			var cached CachedResponse
			if err := json.Unmarshal(data, &cached); err == nil {
				replay(c, &cached)
				return
			}
			l := log.Ctx(ctx)
			l.Warn().Str("key", key).Msg("dropping unreadable cache entry")
			_ = config.Cache.Delete(ctx, key)
		}

		c.Header("X-Cache", "MISS")
		w := &responseWriter{
			ResponseWriter: c.Writer,
			body:           bytes.NewBuffer(nil),
			status:         http.StatusOK,
		}
		c.Writer = w

		c.Next()

		if w.status != http.StatusOK || w.body.Len() == 0 {
			return
		}

		cached := CachedResponse{
			Status:      w.status,
			Headers:     storableHeaders(w.Header()),
			Body:        w.body.Bytes(),
			ContentType: w.Header().Get("Content-Type"),
			CachedAt:    time.Now(),
			ETag:        generateETag(w.body.Bytes()),
		}

		data, err := json.Marshal(cached)
		if err != nil {
			return
		}
		if err := config.Cache.Set(ctx, key, data, ttlFor(config, c.Request.URL.Path)); err != nil {
			l := log.Ctx(ctx)
			l.Warn().Err(err).Str("key", key).Msg("cache write failed")
		}
	}
}

func replay(c *gin.Context, cached *CachedResponse) {
	c.Header("X-Cache", "HIT")
	c.Header("Age", fmt.Sprintf("%d", int(time.Since(cached.CachedAt).Seconds())))
	for key, values := range cached.Headers {
		c.Writer.Header()[key] = values
	}
	c.Header("ETag", cached.ETag)

	if match := c.GetHeader("If-None-Match"); match != "" && match == cached.ETag {
		c.AbortWithStatus(http.StatusNotModified)
		return
	}

	c.Data(cached.Status, cached.ContentType, cached.Body)
	c.Abort()
}

func storableHeaders(h http.Header) http.Header {
	out := make(http.Header, len(h))
	for key, values := range h {
		canonical := http.CanonicalHeaderKey(key)
		if perRequestHeaders[canonical] || canonical == "Content-Type" || canonical == "Content-Length" {
			continue
		}
		out[canonical] = append([]string(nil), values...)
	}
	return out
}

func ttlFor(config CacheConfig, path string) time.Duration {
	if ttl, ok := config.TTLByPath[path]; ok {
		return ttl
	}

	// Longest prefix wins
	best, ttl := -1, config.DefaultTTL
	for prefix, prefixTTL := range config.TTLByPath {
		if strings.HasPrefix(path, prefix) && len(prefix) > best {
			best, ttl = len(prefix), prefixTTL
		}
	}
	return ttl
}

// shouldBypassCache checks if cache should be bypassed based on request headers
func shouldBypassCache(req *http.Request) bool {
	for _, directive := range strings.Split(strings.ToLower(req.Header.Get("Cache-Control")), ",") {
		directive = strings.TrimSpace(directive)
		if directive == "no-cache" || directive == "no-store" || directive == "max-age=0" {
			return true
		}
	}
	return req.Header.Get("Pragma") == "no-cache"
}

// generateCacheKey creates a unique key for the request from its path and sorted query
func generateCacheKey(req *http.Request) string {
	parts := []string{req.URL.Path}

	params := req.URL.Query()
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		for _, v := range params[k] {
			parts = append(parts, k+"="+v)
		}
	}

	return "http:" + strings.Join(parts, ":")
}

// generateETag creates an ETag for the response body
func generateETag(body []byte) string {
	hash := sha256.Sum256(body)
	return `"` + hex.EncodeToString(hash[:16]) + `"`
}
