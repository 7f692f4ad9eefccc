package middleware

import (
	"math"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"invoicer/internal/core/apperror"
)

// DefaultVisitorTTL is how long an idle client's bucket is kept.
const DefaultVisitorTTL = 10 * time.Minute

// RateLimiter hands out one token bucket per client IP.
type RateLimiter struct {
	mu       sync.Mutex
	limit    rate.Limit
	burst    int
	ttl      time.Duration
	now      func() time.Time
	visitors map[string]*visitor
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewRateLimiter creates a limiter allowing perSecond requests per client IP
// with the given burst. Idle buckets are evicted after ttl.
func NewRateLimiter(perSecond float64, burst int, ttl time.Duration) *RateLimiter {
	return &RateLimiter{
		limit:    rate.Limit(perSecond),
		burst:    burst,
		ttl:      ttl,
		now:      time.Now,
		visitors: make(map[string]*visitor),
	}
}

// Allow reports whether a request from key may proceed.
func (l *RateLimiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	v, ok := l.visitors[key]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.visitors[key] = v
	}
	v.lastSeen = now

	if len(l.visitors) > 1024 {
		l.evictLocked(now)
	}

	return v.limiter.AllowN(now, 1)
}

func (l *RateLimiter) evictLocked(now time.Time) {
	for k, v := range l.visitors {
		if now.Sub(v.lastSeen) > l.ttl {
			delete(l.visitors, k)
		}
	}
}

func (l *RateLimiter) retryAfterSeconds() int {
	if l.limit <= 0 {
		return 1
	}
	return int(math.Ceil(1 / float64(l.limit)))
}

// RateLimit middleware rejects requests over the per-IP budget with 429.
// A nil limiter disables throttling.
func RateLimit(l *RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if l == nil {
			c.Next()
			return
		}
		if !l.Allow(c.ClientIP()) {
			c.Header("Retry-After", strconv.Itoa(l.retryAfterSeconds()))
			_ = c.Error(apperror.NewRateLimited())
			c.Abort()
			return
		}
		c.Next()
	}
}
