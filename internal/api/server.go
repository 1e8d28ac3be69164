// Copyright (c) 2026 Champa Studio. All rights reserved.
// Author: dev@champa.studio

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

	"github.com/champastudio/champa/internal/catalog/offering"
	"github.com/champastudio/champa/internal/catalog/portfolio"
	"github.com/champastudio/champa/internal/contact"
	"github.com/champastudio/champa/internal/platform/config"
	"github.com/champastudio/champa/internal/platform/constants"
	"github.com/champastudio/champa/internal/platform/middleware"
	"github.com/champastudio/champa/internal/platform/respond"
	"github.com/champastudio/champa/internal/portal/invoice"
	"github.com/champastudio/champa/internal/portal/order"
	"github.com/champastudio/champa/internal/portal/project"
	"github.com/champastudio/champa/internal/users/account"
	"github.com/champastudio/champa/internal/users/auth"
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
//
// # Usage
//
// New domains add a field here — no other change to server.go is required.
type Handlers struct {
	// Liveness is the /health handler — always returns 200 if process is alive.
	Liveness http.HandlerFunc

	// Readiness is the /ready handler — returns 200 when all deps are healthy.
	Readiness http.HandlerFunc

	// Auth handles authentication routes (register, login, session rotation).
	Auth *auth.Handler

	// Account handles the signed-in user's own profile, preferences, and sessions.
	Account *account.Handler

	// Portfolio handles the public portfolio showcase.
	Portfolio *portfolio.Handler

	// Offering handles the service and package catalogue.
	Offering *offering.Handler

	// Project handles client project workspaces, threads, and files.
	Project *project.Handler

	// Invoice handles client invoices.
	Invoice *invoice.Handler

	// Order handles order form intake and back-office triage.
	Order *order.Handler

	// Contact handles the public contact form and its inbox.
	Contact *contact.Handler
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups.
func NewServer(context context.Context, cfg *config.Config, log *slog.Logger, verifier middleware.TokenVerifier, h Handlers) *Server {
	r := chi.NewRouter()

	// # Middleware Chain
	// Global middleware applied in order of execution.
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(middleware.Localize())
	r.Use(middleware.RateLimit(context))
	r.Use(middleware.PanicRecovery(log))
	r.Use(middleware.Authenticate(verifier))
	r.Use(middleware.CORS(cfg))
	r.Use(chimw.CleanPath)

	// # Infrastructure Endpoints
	// Unauthenticated health probes for container orchestration.
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)

	// # Application API
	// Domain-specific route groups mounted under versioned prefix.
	r.Route("/api/v1", func(api chi.Router) {
		api.Mount("/auth", h.Auth.Routes())

		// Public site surface
		api.Route("/portfolio", h.Portfolio.RegisterRoutes)
		api.Route("/services", h.Offering.RegisterServiceRoutes)
		api.Route("/packages", h.Offering.RegisterPackageRoutes)
		api.Route("/orders", h.Order.RegisterRoutes)
		api.Route("/contact", h.Contact.RegisterRoutes)

		// Signed-in surface
		api.Group(func(private chi.Router) {
			private.Use(middleware.RequireAuth)

			private.Mount("/me", h.Account.Routes())
			private.Route("/projects", h.Project.RegisterRoutes)
			private.Route("/invoices", h.Invoice.RegisterRoutes)
		})
	})

	// Unmatched routes answer with the standard error envelope.
	r.NotFound(respond.NotFoundHandler())

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

// # Server Lifecycle

// ListenAndServe starts the HTTP server.
//
// It blocks until the server is closed or an error occurs.
func (s *Server) ListenAndServe() error {
	s.log.Info("server starting", slog.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	context, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(context)
}
