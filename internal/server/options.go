package server

import (
	"log"
	"time"

	"github.com/agbru/wincalc/internal/logging"
	"github.com/agbru/wincalc/internal/winograd"
)

// Option configures a Server during construction.
type Option func(*Server)

// WithLogger replaces the server's logger. A nil logger keeps the default.
//
// Parameters:
//   - logger: The logger to use.
//
// Returns:
//   - Option: A functional option that configures the server's logger.
func WithLogger(logger logging.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithStdLogger wraps a standard library log.Logger in the unified interface.
//
// Parameters:
//   - logger: The standard log.Logger to use. Nil keeps the default.
//
// Returns:
//   - Option: A functional option that configures the server's logger.
func WithStdLogger(logger *log.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logging.NewStdLoggerAdapter(logger)
		}
	}
}

// WithDeriver injects the deriver handling /api/v1/derive requests. A nil
// deriver keeps the default.
//
// Parameters:
//   - deriver: The deriver to use.
//
// Returns:
//   - Option: A functional option that configures the server's deriver.
func WithDeriver(deriver *winograd.Deriver) Option {
	return func(s *Server) {
		if deriver != nil {
			s.deriver = deriver
		}
	}
}

// WithRateLimiter replaces the default per-client rate limiter.
//
// Parameters:
//   - rl: The rate limiter to use.
//
// Returns:
//   - Option: A functional option that configures the server's rate limiter.
func WithRateLimiter(rl *RateLimiter) Option {
	return func(s *Server) {
		s.rateLimiter = rl
	}
}

// WithSecurityConfig replaces the default security headers and CORS settings.
//
// Parameters:
//   - config: The security configuration.
//
// Returns:
//   - Option: A functional option that configures the server's security settings.
func WithSecurityConfig(config SecurityConfig) Option {
	return func(s *Server) {
		s.securityConfig = config
	}
}

// WithMaxAlpha overrides the cap on the transform dimension n + r - 1.
//
// Parameters:
//   - maxAlpha: The maximum accepted dimension.
//
// Returns:
//   - Option: A functional option that configures the dimension cap.
func WithMaxAlpha(maxAlpha int) Option {
	return func(s *Server) {
		s.securityConfig.MaxAlpha = maxAlpha
	}
}

// WithTimeouts overrides the server timeout set, usually to shorten it in
// tests.
//
// Parameters:
//   - timeouts: The timeout configuration.
//
// Returns:
//   - Option: A functional option that configures the server's timeouts.
func WithTimeouts(timeouts Timeouts) Option {
	return func(s *Server) {
		s.timeouts = timeouts
	}
}

// Timeouts groups the HTTP server deadlines. RequestTimeout bounds a single
// derivation; WriteTimeout stays above it so a slow symbolic verification can
// still send its response.
type Timeouts struct {
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
}

// DefaultServerTimeouts returns the production timeout set.
func DefaultServerTimeouts() Timeouts {
	return Timeouts{
		RequestTimeout:  1 * time.Minute,
		ShutdownTimeout: 30 * time.Second,
		ReadTimeout:     10 * time.Second,
		WriteTimeout:    2 * time.Minute,
		IdleTimeout:     2 * time.Minute,
	}
}
