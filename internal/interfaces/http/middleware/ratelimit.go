package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Larryveryhandsome/taiwan-legal-ai/pkg/errors"
)

// RateLimiter is a fixed-window per-client request limiter.  Windows are
// one minute; entries for idle clients are dropped as windows roll over.
type RateLimiter struct {
	mu      sync.Mutex
	limit   int
	windows map[string]*window
}

type window struct {
	start time.Time
	count int
}

// NewRateLimiter allows ratePerMinute requests per client per minute.
func NewRateLimiter(ratePerMinute int) *RateLimiter {
	return &RateLimiter{
		limit:   ratePerMinute,
		windows: make(map[string]*window),
	}
}

// Allow reports whether the client identified by key may proceed, plus the
// remaining budget in the current window.
func (l *RateLimiter) Allow(key string) (bool, int) {
	now := time.Now()
	l.mu.Lock()
	defer l.mu.Unlock()

	w, ok := l.windows[key]
	if !ok || now.Sub(w.start) >= time.Minute {
		// Rolling into a fresh window; also evict other stale entries.
		for k, other := range l.windows {
			if now.Sub(other.start) >= time.Minute {
				delete(l.windows, k)
			}
		}
		w = &window{start: now}
		l.windows[key] = w
	}

	if w.count >= l.limit {
		return false, 0
	}
	w.count++
	return true, l.limit - w.count
}

// RateLimit rejects clients exceeding the per-minute budget with 429.
func RateLimit(limiter *RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		ok, remaining := limiter.Allow(c.ClientIP())
		c.Header("X-RateLimit-Limit", strconv.Itoa(limiter.limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
		if !ok {
			c.Header("Retry-After", "60")
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"code":    string(errors.ErrCodeTooManyRequests),
				"message": "rate limit exceeded",
			})
			return
		}
		c.Next()
	}
}
