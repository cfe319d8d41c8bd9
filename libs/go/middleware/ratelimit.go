package middleware

import (
	"fmt"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/abstraxion/abstraxion-dashboard/libs/go/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// RateLimiter limits requests per client
type RateLimiter struct {
	// limiters stores one limiter per client identifier
	limiters sync.Map
	rate     int
	burst    int
	// cleanupInterval is how often idle limiters are dropped
	cleanupInterval time.Duration
	idleTimeout     time.Duration
	// skipPaths holds request paths and route patterns that are never limited
	skipPaths map[string]bool
}

// limiterEntry holds a rate limiter and its last access time in unix nanos
type limiterEntry struct {
	limiter    *rate.Limiter
	lastAccess atomic.Int64
}

// NewRateLimiter creates a new rate limiter with the specified rate and burst
func NewRateLimiter(requestsPerSecond, burst int) *RateLimiter {
	rl := newRateLimiter(requestsPerSecond, burst, 5*time.Minute)
	go rl.cleanup()
	return rl
}

func newRateLimiter(requestsPerSecond, burst int, cleanupInterval time.Duration) *RateLimiter {
	return &RateLimiter{
		rate:            requestsPerSecond,
		burst:           burst,
		cleanupInterval: cleanupInterval,
		idleTimeout:     10 * time.Minute,
		skipPaths: map[string]bool{
			"/health":        true,
			"/healthz":       true,
			"/:stage/health": true,
		},
	}
}

// cleanup removes limiters that have been idle longer than idleTimeout
func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(rl.cleanupInterval)
	defer ticker.Stop()

	for range ticker.C {
		rl.evictIdle(time.Now())
	}
}

func (rl *RateLimiter) evictIdle(now time.Time) {
	rl.limiters.Range(func(key, value interface{}) bool {
		entry := value.(*limiterEntry)
		if now.Sub(time.Unix(0, entry.lastAccess.Load())) > rl.idleTimeout {
			rl.limiters.Delete(key)
		}
		return true
	})
}

// getLimiter returns the rate limiter for a specific key
func (rl *RateLimiter) getLimiter(key string) *rate.Limiter {
	now := time.Now().UnixNano()
	if val, ok := rl.limiters.Load(key); ok {
		entry := val.(*limiterEntry)
		entry.lastAccess.Store(now)
		return entry.limiter
	}

	entry := &limiterEntry{limiter: rate.NewLimiter(rate.Limit(rl.rate), rl.burst)}
	entry.lastAccess.Store(now)

	// Another goroutine may have stored one first
	actual, _ := rl.limiters.LoadOrStore(key, entry)
	return actual.(*limiterEntry).limiter
}

func (rl *RateLimiter) skipped(c *gin.Context) bool {
	return rl.skipPaths[c.Request.URL.Path] || rl.skipPaths[c.FullPath()]
}

// getClientIdentifier keys limits on the client address. Session cookies are
// chosen by the client and are not used here. Forwarded headers are honored
// only from the engine's trusted proxies.
func getClientIdentifier(c *gin.Context) string {
	clientIP := c.ClientIP()
	if clientIP == "" {
		clientIP = "unknown"
	}
	return "ip:" + clientIP
}

// Middleware returns a Gin middleware handler for rate limiting
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	log := logger.ForComponent(logger.ComponentMiddleware)

	return func(c *gin.Context) {
		if rl.skipped(c) {
			c.Next()
			return
		}

		clientID := getClientIdentifier(c)
		limiter := rl.getLimiter(clientID)

		c.Header("X-RateLimit-Limit", fmt.Sprintf("%d", rl.rate))
		c.Header("X-RateLimit-Reset", fmt.Sprintf("%d", time.Now().Add(time.Second).Unix()))

		if !limiter.Allow() {
			log.Warn("Rate limit exceeded",
				zap.String("client_id", clientID),
				zap.String("path", c.Request.URL.Path),
				zap.String("method", c.Request.Method),
			)

			c.Header("X-RateLimit-Remaining", "0")
			c.Header("Retry-After", "1")
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":       "Too many requests. Please try again later.",
				"retry_after": 1,
			})
			return
		}

		remaining := int(limiter.Tokens())
		if remaining < 0 {
			remaining = 0
		}
		c.Header("X-RateLimit-Remaining", fmt.Sprintf("%d", remaining))
		c.Next()
	}
}

// Shared limiters
var (
	// DefaultRateLimiter for page and read endpoints
	DefaultRateLimiter = NewRateLimiter(50, 100)

	// StrictRateLimiter for wallet connect and grant building
	StrictRateLimiter = NewRateLimiter(5, 10)
)
