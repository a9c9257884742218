// Package web provides the HTTP server fronting the demo: static assets,
// the health endpoint and the mounted MCP streamable-HTTP handler.
package web

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/Yaakov-Belch/flyio-demo/internal/web/assets"
	"github.com/Yaakov-Belch/flyio-demo/internal/web/handlers"
)

// Default rate limit applied when the configuration leaves it unset.
const (
	DefaultRateLimitRPS   = 20.0
	DefaultRateLimitBurst = 40
)

// Server is the demo HTTP server.
type Server struct {
	mux     *http.ServeMux
	logger  *slog.Logger
	limiter *rateLimiter
}

// ServerConfig contains configuration for creating the HTTP server.
type ServerConfig struct {
	Logger   *slog.Logger
	Resolver *assets.Resolver // Required: static asset resolver
	MCP      http.Handler     // Optional: nil disables the /mcp mount
	// Rate limiting (token bucket per client IP)
	RateLimitRPS   float64
	RateLimitBurst int
	// TrustProxy enables X-Real-IP/X-Forwarded-For client IP extraction
	// (set true behind a reverse proxy only).
	TrustProxy bool
}

// NewServer creates the HTTP server with all routes configured.
// Returns an error if required configuration is missing.
func NewServer(cfg ServerConfig) (*Server, error) {
	if cfg.Resolver == nil {
		return nil, errors.New("resolver is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	rps := cfg.RateLimitRPS
	if rps <= 0 {
		rps = DefaultRateLimitRPS
	}
	burst := cfg.RateLimitBurst
	if burst <= 0 {
		burst = DefaultRateLimitBurst
	}

	mux := http.NewServeMux()

	s := &Server{
		mux:     mux,
		logger:  logger,
		limiter: newRateLimiter(rps, burst, cfg.TrustProxy, logger),
	}

	// Health check route (for Docker/Fly.io probes)
	handlers.NewHealth().RegisterRoutes(mux)

	// Static assets
	handlers.NewAssets(cfg.Resolver, logger).RegisterRoutes(mux)

	// Root redirects to the static index, regardless of query parameters.
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/static/", http.StatusFound)
	})

	// MCP protocol endpoint (streamable HTTP transport, owned by the SDK)
	if cfg.MCP != nil {
		mux.Handle("/mcp", cfg.MCP)
	}

	return s, nil
}

// ServeHTTP implements http.Handler with the middleware stack applied.
// Order matters: recovery catches panics from every layer below, logging
// tracks all requests, tracing opens the request span, the rate limiter
// rejects abusive clients before any handler work.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.setSecurityHeaders(w)

	handler := chain(s.mux,
		recoveryMiddleware(s.logger),
		loggingMiddleware(s.logger),
		tracingMiddleware,
		rateLimitMiddleware(s.limiter),
	)
	handler.ServeHTTP(w, r)
}

// setSecurityHeaders applies baseline security headers.
func (s *Server) setSecurityHeaders(w http.ResponseWriter) {
	// Prevent MIME type sniffing
	w.Header().Set("X-Content-Type-Options", "nosniff")

	// Prevent clickjacking
	w.Header().Set("X-Frame-Options", "DENY")

	// Referrer policy
	w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")
}

// Handler returns the server as an http.Handler for mounting.
func (s *Server) Handler() http.Handler {
	return s
}
