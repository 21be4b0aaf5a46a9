package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

type clientInfo struct {
	start time.Time
	count int
}

// memoryLimiter is a per-process fixed-window limiter keyed by client IP.
type memoryLimiter struct {
	mu      sync.Mutex
	clients map[string]*clientInfo
}

func newMemoryLimiter() *memoryLimiter {
	return &memoryLimiter{clients: make(map[string]*clientInfo)}
}

// allow counts one request from ip and reports whether it is within the limit.
func (l *memoryLimiter) allow(ip string, maxRequests int, window time.Duration, now time.Time) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	ci, ok := l.clients[ip]
	if !ok || now.Sub(ci.start) > window {
		l.clients[ip] = &clientInfo{start: now, count: 1}
		l.evict(window, now)
		return true
	}
	ci.count++
	return ci.count <= maxRequests
}

// evict drops expired windows; caller holds mu.
func (l *memoryLimiter) evict(window time.Duration, now time.Time) {
	for ip, ci := range l.clients {
		if now.Sub(ci.start) > window {
			delete(l.clients, ip)
		}
	}
}

// SimpleRateLimit blocks clients that send more than maxRequests per window
func SimpleRateLimit(maxRequests int, window time.Duration) gin.HandlerFunc {
	l := newMemoryLimiter()
	return func(c *gin.Context) {
		if !l.allow(c.ClientIP(), maxRequests, window, time.Now()) {
			RLBlocked.WithLabelValues(c.FullPath()).Inc()
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"detail": "rate limit exceeded"})
			return
		}
		RLRequests.WithLabelValues(c.FullPath()).Inc()
		c.Next()
	}
}

// RateLimit uses Redis when InitRedisRateLimiter connected, else the
// in-memory limiter.
func RateLimit(maxRequests int, window time.Duration) gin.HandlerFunc {
	redisLimit := RedisRateLimit(maxRequests, window)
	memoryLimit := SimpleRateLimit(maxRequests, window)
	return func(c *gin.Context) {
		if redisClient != nil {
			redisLimit(c)
			return
		}
		memoryLimit(c)
	}
}
