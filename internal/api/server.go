// Package api implements the HTTP layer for the quote mailer. Handlers are
// methods on *Server and stay thin: decode, validate, call the pipeline, map
// the result to the wire contract.
package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/time/rate"

	"github.com/organiknation/quote-service/internal/quote"
)

// Config holds values read from environment variables at startup.
type Config struct {
	// Env is "production", "staging", or "development".
	Env string

	// RateLimitPerMinute and RateLimitBurst shape the global token bucket on
	// the quote endpoints.
	RateLimitPerMinute int
	RateLimitBurst     int
}

// Server holds all shared dependencies.
type Server struct {
	// quotes runs the normalize → render → dispatch pipeline.
	quotes *quote.Service

	limiter *rate.Limiter
	cfg     Config
	logger  *slog.Logger
}

// NewServer constructs the Server and wires the chi router. The returned
// http.Handler is ready to pass to http.ListenAndServe.
func NewServer(quotes *quote.Service, cfg Config, logger *slog.Logger) http.Handler {
	perMinute := cfg.RateLimitPerMinute
	if perMinute <= 0 {
		perMinute = 60
	}
	burst := cfg.RateLimitBurst
	if burst <= 0 {
		burst = 10
	}

	s := &Server{
		quotes:  quotes,
		limiter: rate.NewLimiter(rate.Limit(float64(perMinute)/60.0), burst),
		cfg:     cfg,
		logger:  logger,
	}

	return s.routes()
}

func (s *Server) routes() http.Handler {
	r := chi.NewRouter()

	// ── Global middleware ─────────────────────────────────────────────────────
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.loggerMiddleware)
	r.Use(middleware.Recoverer)
	r.Use(s.corsMiddleware)
	r.Use(middleware.Timeout(30 * time.Second))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		respond(w, http.StatusNotFound, map[string]string{"message": "Not found"})
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		respond(w, http.StatusMethodNotAllowed, map[string]string{"message": "Method not allowed"})
	})

	// ── Health ────────────────────────────────────────────────────────────────
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	// ── API ───────────────────────────────────────────────────────────────────
	r.Route("/api", func(r chi.Router) {
		r.Use(s.rateLimitMiddleware)
		r.Post("/send-quote", s.handleSendQuote)
		r.Post("/send-quote-simple", s.handleSendQuoteSimple)
	})

	return r
}
