package server

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"
)

// RateLimiter bounds the number of requests a single client may issue per
// time window. Exact derivations are CPU-heavy, so the limit sits in front of
// the whole API, not just /api/v1/derive.
type RateLimiter struct {
	mu       sync.Mutex
	clients  map[string]*clientWindow
	rate     int
	window   time.Duration
	cleanup  time.Duration
	stopChan chan struct{}
}

// clientWindow tracks the remaining budget of one client in the current window.
type clientWindow struct {
	tokens      int
	windowStart time.Time
}

// RateLimiterConfig configures the per-client request budget.
type RateLimiterConfig struct {
	// RequestsPerMinute is the per-client budget within one minute.
	RequestsPerMinute int
	// CleanupInterval is how often stale client entries are dropped.
	CleanupInterval time.Duration
}

// DefaultRateLimiterConfig returns the production limits.
func DefaultRateLimiterConfig() RateLimiterConfig {
	return RateLimiterConfig{
		RequestsPerMinute: 60,
		CleanupInterval:   5 * time.Minute,
	}
}

// NewRateLimiter creates a rate limiter and starts its cleanup goroutine.
// Callers that construct one outside NewServer should call Stop when done.
//
// Parameters:
//   - config: The rate limiter configuration.
//
// Returns:
//   - *RateLimiter: A running rate limiter.
func NewRateLimiter(config RateLimiterConfig) *RateLimiter {
	if config.RequestsPerMinute <= 0 {
		config.RequestsPerMinute = 60
	}
	if config.CleanupInterval <= 0 {
		config.CleanupInterval = 5 * time.Minute
	}

	rl := &RateLimiter{
		clients:  make(map[string]*clientWindow),
		rate:     config.RequestsPerMinute,
		window:   time.Minute,
		cleanup:  config.CleanupInterval,
		stopChan: make(chan struct{}),
	}
	go rl.cleanupLoop()
	return rl
}

// Allow consumes one token for the client and reports whether the request
// may proceed.
//
// Parameters:
//   - clientIP: The client's IP address.
//
// Returns:
//   - bool: true if the request is within budget.
func (rl *RateLimiter) Allow(clientIP string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	client, ok := rl.clients[clientIP]
	if !ok {
		rl.clients[clientIP] = &clientWindow{tokens: rl.rate - 1, windowStart: now}
		return true
	}
	if now.Sub(client.windowStart) >= rl.window {
		client.tokens = rl.rate - 1
		client.windowStart = now
		return true
	}
	if client.tokens > 0 {
		client.tokens--
		return true
	}
	return false
}

// cleanupLoop drops clients whose window expired long ago.
func (rl *RateLimiter) cleanupLoop() {
	ticker := time.NewTicker(rl.cleanup)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.mu.Lock()
			now := time.Now()
			for ip, client := range rl.clients {
				if now.Sub(client.windowStart) > rl.window*2 {
					delete(rl.clients, ip)
				}
			}
			rl.mu.Unlock()
		case <-rl.stopChan:
			return
		}
	}
}

// Stop terminates the cleanup goroutine.
func (rl *RateLimiter) Stop() {
	close(rl.stopChan)
}

// RateLimitMiddleware rejects over-budget clients with 429 and a Retry-After
// hint before the request reaches the logging and metrics layers.
//
// Parameters:
//   - rl: The rate limiter to consult.
//   - next: The next handler in the chain.
//
// Returns:
//   - http.HandlerFunc: The rate-limited handler.
func RateLimitMiddleware(rl *RateLimiter, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !rl.Allow(getClientIP(r)) {
			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("Retry-After", "60")
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = w.Write([]byte(`{"error":"Too Many Requests","message":"Rate limit exceeded. Please try again later."}`))
			return
		}
		next(w, r)
	}
}

// getClientIP resolves the client address, preferring proxy headers:
// the first X-Forwarded-For entry, then X-Real-IP, then RemoteAddr.
func getClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		return firstForwardedIP(xff)
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return strings.TrimSpace(xri)
	}
	return stripPort(r.RemoteAddr)
}

// firstForwardedIP returns the first entry of a comma-separated
// X-Forwarded-For list, which names the original client.
func firstForwardedIP(xff string) string {
	if idx := strings.IndexByte(xff, ','); idx != -1 {
		return strings.TrimSpace(xff[:idx])
	}
	return strings.TrimSpace(xff)
}

// stripPort removes the port of a host:port address, handling IPv6 brackets.
func stripPort(addr string) string {
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		return strings.Trim(addr, "[]")
	}
	return host
}
