package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// IPRateLimiter keeps one token bucket per client IP. Buckets idle for longer
// than idleTTL are dropped by a background janitor until Stop is called.
type IPRateLimiter struct {
	ips     sync.Map
	mu      sync.Mutex
	r       rate.Limit
	b       int
	idleTTL time.Duration
	stop    chan struct{}
	once    sync.Once
}

type client struct {
	limiter  *rate.Limiter
	mu       sync.Mutex
	lastSeen time.Time
}

func NewIPRateLimiter(r rate.Limit, b int) *IPRateLimiter {
	i := &IPRateLimiter{
		r:       r,
		b:       b,
		idleTTL: 3 * time.Minute,
		stop:    make(chan struct{}),
	}

	go i.cleanupLoop(time.Minute)

	return i
}

// Allow spends one token for ip.
func (i *IPRateLimiter) Allow(ip string) bool {
	return i.getClient(ip).limiter.Allow()
}

// Stop ends the janitor goroutine. It is safe to call more than once.
func (i *IPRateLimiter) Stop() {
	i.once.Do(func() { close(i.stop) })
}

func (i *IPRateLimiter) getClient(ip string) *client {
	if v, ok := i.ips.Load(ip); ok {
		c := v.(*client)
		c.touch()
		return c
	}

	i.mu.Lock()
	defer i.mu.Unlock()

	if v, ok := i.ips.Load(ip); ok {
		c := v.(*client)
		c.touch()
		return c
	}

	c := &client{limiter: rate.NewLimiter(i.r, i.b), lastSeen: time.Now()}
	i.ips.Store(ip, c)
	return c
}

func (c *client) touch() {
	c.mu.Lock()
	c.lastSeen = time.Now()
	c.mu.Unlock()
}

func (c *client) idleSince() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return time.Since(c.lastSeen)
}

func (i *IPRateLimiter) cleanupLoop(every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-i.stop:
			return
		case <-ticker.C:
			i.ips.Range(func(key, value any) bool {
				if value.(*client).idleSince() > i.idleTTL {
					i.ips.Delete(key)
				}
				return true
			})
		}
	}
}

// RateLimit answers 429 once a client IP runs out of tokens.
func RateLimit(limiter *IPRateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !limiter.Allow(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "demasiadas peticiones, inténtalo más tarde"})
			return
		}
		c.Next()
	}
}
