package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

// RateLimiter holds per-client token buckets. Authenticated requests
// are keyed by user, anonymous ones by IP.
type RateLimiter struct {
	clients map[string]*rate.Limiter
	mu      sync.Mutex
	r       rate.Limit
	b       int
}

// NewRateLimiter creates a new rate limiter
func NewRateLimiter(requestsPerMinute, burst int) *RateLimiter {
	rl := &RateLimiter{
		clients: make(map[string]*rate.Limiter),
		r:       rate.Limit(float64(requestsPerMinute) / 60.0),
		b:       burst,
	}

	go rl.cleanupClients()

	return rl
}

// GetLimiter returns the rate limiter for the given client key
func (rl *RateLimiter) GetLimiter(key string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	limiter, exists := rl.clients[key]
	if !exists {
		limiter = rate.NewLimiter(rl.r, rl.b)
		rl.clients[key] = limiter
	}

	return limiter
}

// cleanupClients drops idle buckets every 3 minutes
func (rl *RateLimiter) cleanupClients() {
	for {
		time.Sleep(3 * time.Minute)

		rl.mu.Lock()
		for key, limiter := range rl.clients {
			// A full bucket means the client has been idle
			if limiter.Tokens() >= float64(rl.b) {
				delete(rl.clients, key)
			}
		}
		rl.mu.Unlock()
	}
}

// RateLimitMiddleware creates an Echo middleware for rate limiting
func (rl *RateLimiter) RateLimitMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key, _ := c.Get("user_id").(string)
			if key == "" {
				key = c.RealIP()
			}
			if key == "" {
				key = c.Request().RemoteAddr
			}

			if !rl.GetLimiter(key).Allow() {
				return c.JSON(http.StatusTooManyRequests, map[string]interface{}{
					"error":   "rate_limit_exceeded",
					"message": "Too many requests. Please try again later.",
				})
			}

			return next(c)
		}
	}
}
