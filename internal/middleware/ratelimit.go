package middleware

import (
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"carbonbuddy/internal/identity"
)

// staleLimiterAge is how long an idle client's limiter is kept before pruning.
const staleLimiterAge = 10 * time.Minute

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimit returns middleware enforcing a per-client request rate, keyed by
// remote IP. Clients over the limit receive 429.
func RateLimit(rps, burst int) func(http.Handler) http.Handler {
	var mu sync.Mutex
	clients := make(map[string]*clientLimiter)

	get := func(key string) *rate.Limiter {
		mu.Lock()
		defer mu.Unlock()

		now := time.Now()
		c, ok := clients[key]
		if !ok {
			// Prune stale entries while we hold the lock anyway.
			for k, v := range clients {
				if now.Sub(v.lastSeen) > staleLimiterAge {
					delete(clients, k)
				}
			}
			c = &clientLimiter{limiter: rate.NewLimiter(rate.Limit(rps), burst)}
			clients[key] = c
		}
		c.lastSeen = now
		return c.limiter
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !get(identity.IPFromRequest(r)).Allow() {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				_, _ = w.Write([]byte(`{"error":"rate limit exceeded"}`))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
