// Package httpapi wires the public, admin and auth services into one
// chi router and owns the HTTP server lifecycle.
package httpapi

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chicors "github.com/go-chi/cors"

	"github.com/jekabolt/waitlist-manager/internal/apisrv/admin"
	"github.com/jekabolt/waitlist-manager/internal/apisrv/auth"
	"github.com/jekabolt/waitlist-manager/internal/apisrv/public"
	"github.com/jekabolt/waitlist-manager/internal/dependency"
	"github.com/jekabolt/waitlist-manager/internal/middleware"
	"github.com/jekabolt/waitlist-manager/internal/ratelimit"
)

const (
	signupLimitMax    = 10
	signupLimitWindow = time.Hour
	adminLimitMax     = 100
	adminLimitWindow  = time.Minute
)

// Config is the configuration for the http server
type Config struct {
	Port           string   `mapstructure:"port"`
	Address        string   `mapstructure:"address"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// Server is the http server
type Server struct {
	hs   *http.Server
	c    *Config
	repo dependency.Repository

	signupLimiter *ratelimit.Limiter
	adminLimiter  *ratelimit.Limiter

	done chan struct{}
}

// New creates a new server
func New(config *Config, repo dependency.Repository) *Server {
	return &Server{
		c:             config,
		repo:          repo,
		signupLimiter: ratelimit.NewLimiter(signupLimitWindow, signupLimitMax),
		adminLimiter:  ratelimit.NewLimiter(adminLimitWindow, adminLimitMax),
		done:          make(chan struct{}),
	}
}

// Done returns a channel that is closed when the http server exits
func (s *Server) Done() <-chan struct{} {
	return s.done
}

func (s *Server) setupRouter(
	publicServer *public.Server,
	adminServer *admin.Server,
	authServer *auth.Server,
) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.ClientIdentifier)

	// Public surface. CORS here is per waitlist, enforced against the
	// waitlist's own pattern list inside the handlers.
	r.Route("/w/{slug}", func(r chi.Router) {
		r.Options("/signup", s.handlePublicPreflight)
		// The quota check runs inside handleSignup, after the waitlist's
		// origin gate, so a disallowed origin never spends quota.
		r.Post("/signup", s.handleSignup(publicServer))
		r.Get("/confirm/{token}", s.handleConfirm(publicServer))
		r.Options("/status", s.handlePublicPreflight)
		r.Get("/status", s.handleStatus(publicServer))
	})

	// Dashboard surface. CORS is the operator's static list.
	dashboardCors := chicors.Handler(chicors.Options{
		AllowedOrigins:   s.c.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "Content-Length", "Authorization"},
		AllowCredentials: true,
		MaxAge:           300,
	})

	r.Route("/api/auth", func(r chi.Router) {
		r.Use(dashboardCors)
		r.Use(s.rateLimit(s.adminLimiter, "admin"))
		r.Post("/login", s.handleLogin(authServer))
		r.Post("/create", s.handleCreateUser(authServer))
		r.Post("/delete", s.handleDeleteUser(authServer))
		r.Post("/change-password", s.handleChangePassword(authServer))
	})

	r.Route("/api/admin", func(r chi.Router) {
		r.Use(dashboardCors)
		r.Use(s.rateLimit(s.adminLimiter, "admin"))
		r.Use(s.withAuth(authServer))

		r.Get("/waitlists", s.handleListWaitlists(adminServer))
		r.Post("/waitlists", s.handleCreateWaitlist(adminServer))
		r.Get("/waitlists/{id}", s.handleGetWaitlist(adminServer))
		r.Put("/waitlists/{id}", s.handleUpdateWaitlist(adminServer))
		r.Delete("/waitlists/{id}", s.handleDeleteWaitlist(adminServer))

		r.Get("/waitlists/{id}/signups", s.handleListSignups(adminServer))
		r.Patch("/waitlists/{id}/signups/{signupId}", s.handleSetSignupStatus(adminServer))
		r.Get("/waitlists/{id}/export", s.handleExportSignups(adminServer))

		r.Get("/waitlists/{id}/stats", s.handleWaitlistStats(adminServer))
		r.Get("/stats", s.handleDashboardStats(adminServer))
	})

	return r
}

// Start starts the server
func (s *Server) Start(ctx context.Context,
	publicServer *public.Server,
	adminServer *admin.Server,
	authServer *auth.Server,
) error {
	listenerAddr := fmt.Sprintf("%s:%s", s.c.Address, s.c.Port)
	s.hs = &http.Server{
		Addr:    listenerAddr,
		Handler: s.setupRouter(publicServer, adminServer, authServer),
	}

	go func() {
		slog.Default().InfoContext(ctx, fmt.Sprintf("waitlist-manager new listener on: http://%v", listenerAddr))
		err := s.hs.ListenAndServe()
		if err == http.ErrServerClosed {
			slog.Default().InfoContext(ctx, "http server returned")
		} else {
			slog.Default().ErrorContext(ctx, "http server exited with an error",
				slog.String("err", err.Error()),
			)
		}
		close(s.done)
	}()

	return nil
}

// Stop drains in-flight requests and shuts the listener down.
func (s *Server) Stop(ctx context.Context) error {
	if s.hs == nil {
		return nil
	}
	return s.hs.Shutdown(ctx)
}
