// Copyright (c) 2026 Shelfmark. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package api wires together the HTTP router, middleware chain, and all
domain handlers into a runnable [http.Server].

Architecture:

  - This package is the topmost Presentation layer boundary.
  - It acts as the central composition root for the HTTP transport framework (chi router).
  - Only this package and cmd/api are allowed to import net/http server primitives.
*/
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/taibuivan/shelfmark/internal/media"
	"github.com/taibuivan/shelfmark/internal/platform/apperr"
	"github.com/taibuivan/shelfmark/internal/platform/config"
	"github.com/taibuivan/shelfmark/internal/platform/constants"
	"github.com/taibuivan/shelfmark/internal/platform/metrics"
	"github.com/taibuivan/shelfmark/internal/platform/middleware"
	"github.com/taibuivan/shelfmark/internal/platform/respond"
	"github.com/taibuivan/shelfmark/internal/rating"
	"github.com/taibuivan/shelfmark/internal/remote"
)

// # Server Definitions

// Server wraps the chi router and the [http.Server].
//
// It is constructed once in main.go with all dependencies injected.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	log        *slog.Logger
}

// # Handler Registry

// Handlers groups all domain-specific HTTP handler sets.
type Handlers struct {
	// Liveness is the /health handler. It returns 200 while the process is alive.
	Liveness http.HandlerFunc

	// Readiness is the /ready handler. It returns 200 when all deps are healthy.
	Readiness http.HandlerFunc

	// Media serves the local catalog, tags, dashboard and reviews.
	Media *media.Handler

	// Search serves remote search and detail lookups. Nil when no remote
	// service is configured.
	Search *remote.Handler
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups.
//
// A nil verifier leaves every request anonymous.
func NewServer(ctx context.Context, cfg *config.Config, log *slog.Logger, verifier middleware.TokenVerifier, h Handlers) *Server {
	r := chi.NewRouter()

	// # Middleware Chain
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(metrics.Middleware())
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(middleware.RateLimit(ctx, constants.DefaultRateLimitRPS, constants.DefaultRateLimitBurst))
	r.Use(middleware.PanicRecovery())
	if verifier != nil {
		r.Use(middleware.Authenticate(verifier))
	}
	r.Use(middleware.CORS(cfg))
	r.Use(chimw.CleanPath)

	// # Infrastructure Endpoints
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)
	r.Handle("/metrics", promhttp.Handler())

	// # Application API
	r.Route("/api/v1", func(api chi.Router) {
		api.Mount("/media", h.Media.Routes())
		api.Mount("/tags", h.Media.TagRoutes())
		api.Get("/dashboard", h.Media.Dashboard)
		api.Mount("/stars", rating.Routes())

		api.Route("/search", func(search chi.Router) {
			if h.Search == nil {
				search.HandleFunc("/*", searchDisabled)
				return
			}
			search.Use(middleware.SearchSession())
			search.Mount("/", h.Search.Routes())
		})
	})

	return &Server{
		router: r,
		log:    log,
		httpServer: &http.Server{
			Addr:              ":" + cfg.ServerPort,
			Handler:           r,
			ReadTimeout:       constants.DefaultReadTimeout,
			WriteTimeout:      constants.DefaultWriteTimeout,
			IdleTimeout:       constants.DefaultIdleTimeout,
			ReadHeaderTimeout: constants.DefaultReadHeaderTimeout,
		},
	}
}

func searchDisabled(writer http.ResponseWriter, request *http.Request) {
	respond.Error(writer, request, apperr.ServiceUnavailable("Search is not configured"))
}

// Handler returns the root router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// # Server Lifecycle

// ListenAndServe starts the HTTP server.
//
// It blocks until the server is closed or an error occurs.
func (s *Server) ListenAndServe() error {
	s.log.Info("server_starting", slog.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(ctx)
}
