package api

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/killallgit/rofind-api/api/types"
	apperrors "github.com/killallgit/rofind-api/pkg/errors"
	"github.com/killallgit/rofind-api/pkg/log"
)

const (
	limiterCleanupInterval = 5 * time.Minute
	limiterIdleTTL         = 10 * time.Minute
)

// clientLimiter holds a rate limiter and its last accessed time
type clientLimiter struct {
	limiter  *rate.Limiter
	mu       sync.Mutex
	lastSeen time.Time
}

func (cl *clientLimiter) touch(now time.Time) {
	cl.mu.Lock()
	cl.lastSeen = now
	cl.mu.Unlock()
}

func (cl *clientLimiter) idleSince(now time.Time) time.Duration {
	cl.mu.Lock()
	defer cl.mu.Unlock()
	return now.Sub(cl.lastSeen)
}

// ClientRateLimiter keeps one token bucket per (route group, client IP)
type ClientRateLimiter struct {
	limiters sync.Map
	stop     chan struct{}
	once     sync.Once
	stopOnce sync.Once
	now      func() time.Time
}

// NewClientRateLimiter creates a limiter registry. The idle sweeper starts on first use.
func NewClientRateLimiter() *ClientRateLimiter {
	return &ClientRateLimiter{
		stop: make(chan struct{}),
		now:  time.Now,
	}
}

// Middleware limits each client to rps requests per second with the given burst.
// bucket separates limits between route groups.
func (r *ClientRateLimiter) Middleware(bucket string, rps float64, burst int) gin.HandlerFunc {
	r.once.Do(func() {
		go r.cleanup()
	})

	if burst <= 0 {
		burst = 1
	}

	return func(c *gin.Context) {
		key := bucket + "|" + c.ClientIP()
		now := r.now()

		value, _ := r.limiters.LoadOrStore(key, &clientLimiter{
			limiter:  rate.NewLimiter(rate.Limit(rps), burst),
			lastSeen: now,
		})

		cl := value.(*clientLimiter)
		cl.touch(now)

		if !cl.limiter.AllowN(now, 1) {
			l := log.Ctx(c.Request.Context())
			l.Warn().Str(log.FieldClientIP, c.ClientIP()).Str(log.FieldEndpoint, bucket).Msg("rate limit exceeded")

			c.AbortWithStatusJSON(http.StatusTooManyRequests, types.ErrorResponse{
				Status:  types.StatusError,
				Message: "Rate limit exceeded. Please slow down your requests.",
				Error:   string(apperrors.ErrCodeAPIRateLimit),
			})
			return
		}
		c.Next()
	}
}

// Stop ends the idle sweeper. Safe to call more than once.
func (r *ClientRateLimiter) Stop() {
	r.stopOnce.Do(func() {
		close(r.stop)
	})
}

func (r *ClientRateLimiter) cleanup() {
	ticker := time.NewTicker(limiterCleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			r.sweep()
		case <-r.stop:
			return
		}
	}
}

// sweep drops limiters that have been idle longer than limiterIdleTTL
func (r *ClientRateLimiter) sweep() {
	now := r.now()
	r.limiters.Range(func(key, value interface{}) bool {
		if value.(*clientLimiter).idleSince(now) > limiterIdleTTL {
			r.limiters.Delete(key)
		}
		return true
	})
}

func (r *ClientRateLimiter) size() int {
	n := 0
	r.limiters.Range(func(_, _ interface{}) bool {
		n++
		return true
	})
	return n
}

func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization, "+log.HeaderRequestID+", Cache-Control")
		c.Header("Access-Control-Expose-Headers", log.HeaderRequestID+", X-Cache, ETag, Age")
		c.Header("Access-Control-Max-Age", "86400")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

func RequestSizeLimit() gin.HandlerFunc {
	return RequestSizeLimitWithSize(64 * 1024)
}

func RequestSizeLimitWithSize(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodPost ||
			c.Request.Method == http.MethodPut ||
			c.Request.Method == http.MethodPatch {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		}
		c.Next()
	}
}
