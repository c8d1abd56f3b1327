// Package app builds the service from its configuration and owns the
// startup and shutdown order.
package app

import (
	"context"
	"log/slog"

	"github.com/jekabolt/waitlist-manager/config"
	httpapi "github.com/jekabolt/waitlist-manager/internal/api/http"
	"github.com/jekabolt/waitlist-manager/internal/apisrv/admin"
	"github.com/jekabolt/waitlist-manager/internal/apisrv/auth"
	"github.com/jekabolt/waitlist-manager/internal/apisrv/public"
	"github.com/jekabolt/waitlist-manager/internal/dependency"
	"github.com/jekabolt/waitlist-manager/internal/mail"
	"github.com/jekabolt/waitlist-manager/internal/store"
	"github.com/jekabolt/waitlist-manager/internal/webhook"
)

// App is the main application
type App struct {
	hs   *httpapi.Server
	db   dependency.Repository
	c    *config.Config
	done chan struct{}
}

// New returns a new instance of App
func New(c *config.Config) *App {
	return &App{
		c:    c,
		done: make(chan struct{}),
	}
}

// Start starts the app
func (a *App) Start(ctx context.Context) error {
	var err error
	slog.Default().InfoContext(ctx, "starting waitlist manager")

	a.db, err = store.New(ctx, a.c.DB)
	if err != nil {
		slog.Default().ErrorContext(ctx, "couldn't connect to mysql",
			slog.String("err", err.Error()),
		)
		return err
	}

	mailer, err := mail.New(&a.c.Mailer)
	if err != nil {
		slog.Default().ErrorContext(ctx, "failed to create mailer",
			slog.String("err", err.Error()),
		)
		return err
	}
	if !mailer.IsConfigured() {
		slog.Default().WarnContext(ctx, "mailer is not configured, confirmation emails are disabled")
	}

	authS, err := auth.New(&a.c.Auth, a.db.Admin())
	if err != nil {
		slog.Default().ErrorContext(ctx, "failed to create auth server",
			slog.String("err", err.Error()),
		)
		return err
	}

	hook := webhook.New(&a.c.Webhook)
	publicS := public.New(&a.c.Public, a.db, mailer, hook)
	adminS := admin.New(a.db)

	a.hs = httpapi.New(&a.c.HTTP, a.db)
	if err = a.hs.Start(ctx, publicS, adminS, authS); err != nil {
		slog.Default().ErrorContext(ctx, "cannot start http server",
			slog.String("err", err.Error()),
		)
		return err
	}

	return nil
}

// Stop stops the application and waits for all services to exit
func (a *App) Stop(ctx context.Context) {
	if a.hs != nil {
		if err := a.hs.Stop(ctx); err != nil {
			slog.Default().ErrorContext(ctx, "http server shutdown failed",
				slog.String("err", err.Error()),
			)
		}
	}
	if a.db != nil {
		a.db.Close()
	}
	close(a.done)
}

// Done returns a channel that is closed after the application has exited
func (a *App) Done() chan struct{} {
	return a.done
}
