// Package public implements the unauthenticated waitlist surface: the
// signup workflow, token confirmation and the widget status endpoint.
package public

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log/slog"
	"net/url"
	"regexp"
	"strings"

	"github.com/jekabolt/waitlist-manager/internal/dependency"
	"github.com/jekabolt/waitlist-manager/internal/entity"
	gerr "github.com/jekabolt/waitlist-manager/internal/errors"
	"github.com/jekabolt/waitlist-manager/internal/webhook"
)

const (
	maxEmailLen = 254
	tokenBytes  = 32
)

var emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s.]+$`)

type Config struct {
	// PublicBaseURL is the externally visible base of the public API,
	// used to build confirmation links.
	PublicBaseURL string `mapstructure:"public_base_url"`
}

// Server implements handlers for public waitlist requests.
type Server struct {
	repo   dependency.Repository
	mailer dependency.Mailer
	hook   dependency.WebhookDispatcher
	c      *Config
}

// New creates a new server with public handlers.
func New(c *Config, r dependency.Repository, m dependency.Mailer, h dependency.WebhookDispatcher) *Server {
	return &Server{
		repo:   r,
		mailer: m,
		hook:   h,
		c:      c,
	}
}

// SignupRequest is one signup attempt against a waitlist.
type SignupRequest struct {
	Slug           string
	Email          string
	CustomData     map[string]string
	ReferralSource string
	IpAddress      string
	UserAgent      string
}

// SignupResponse is the public signup result.
type SignupResponse struct {
	Success              bool   `json:"success"`
	Message              string `json:"message"`
	Position             int    `json:"position"`
	RequiresConfirmation bool   `json:"requiresConfirmation"`
	RedirectUrl          string `json:"redirectUrl,omitempty"`
}

// Signup runs the signup workflow for one request. Confirmation email
// failures on the double opt-in path are surfaced to the caller; every
// other side effect is best-effort.
func (s *Server) Signup(ctx context.Context, req *SignupRequest) (*SignupResponse, error) {
	w, err := s.repo.Waitlists().GetWaitlistBySlug(ctx, req.Slug)
	if err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if len(email) > maxEmailLen || !emailRe.MatchString(email) {
		return nil, gerr.ErrInvalidEmail
	}

	cleaned, violated := w.CustomFields.ValidateValues(req.CustomData)
	if violated != "" {
		return nil, gerr.Validation(fmt.Sprintf("%s is required", violated))
	}

	existing, err := s.repo.Signups().GetSignupByEmail(ctx, w.Id, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return s.resendOrConflict(ctx, w, existing)
	}

	useDoubleOptIn := w.DoubleOptIn && s.mailer.IsConfigured()
	if w.DoubleOptIn && !useDoubleOptIn {
		slog.Default().WarnContext(ctx, "double opt-in requested but email is not configured, confirming directly",
			slog.String("slug", w.Slug),
		)
	}

	si := &entity.SignupInsert{
		WaitlistId:     w.Id,
		Email:          email,
		CustomData:     cleaned,
		ReferralSource: strings.TrimSpace(req.ReferralSource),
		IpAddress:      req.IpAddress,
		UserAgent:      req.UserAgent,
	}
	if useDoubleOptIn {
		si.Status = entity.StatusPending
		si.ConfirmationToken, err = newConfirmationToken()
		if err != nil {
			return nil, err
		}
	} else {
		si.Status = entity.StatusConfirmed
		si.Confirmed = true
	}

	signup, err := s.repo.Signups().AddSignup(ctx, si)
	if err != nil {
		return nil, err
	}

	if useDoubleOptIn {
		// Required dispatch: the row is committed, but without this
		// email the user has no path to confirm.
		if err := s.sendConfirmation(ctx, w, signup); err != nil {
			slog.Default().ErrorContext(ctx, "can't send confirmation email",
				slog.String("slug", w.Slug),
				slog.String("err", err.Error()),
			)
			return nil, gerr.ErrEmail
		}
	} else {
		s.dispatchConfirmedEffects(ctx, w, signup)
	}

	s.fireWebhook(ctx, w, signup, webhook.EventSignupCreated)

	resp := &SignupResponse{
		Success:              true,
		Position:             signup.Position,
		RequiresConfirmation: useDoubleOptIn,
		RedirectUrl:          w.RedirectUrl.String,
	}
	if useDoubleOptIn {
		resp.Message = "Check your email to confirm your spot."
	} else {
		resp.Message = fmt.Sprintf("You're on the list at position %d.", signup.Position)
	}
	return resp, nil
}

// resendOrConflict handles a signup attempt for an email that already
// has a row: a pending opt-in signup gets a fresh token and another
// confirmation email, anything else is a conflict.
func (s *Server) resendOrConflict(ctx context.Context, w *entity.Waitlist, existing *entity.Signup) (*SignupResponse, error) {
	if existing.Status != entity.StatusPending || !w.DoubleOptIn || !s.mailer.IsConfigured() {
		return nil, gerr.ErrAlreadySignedUp
	}

	token, err := newConfirmationToken()
	if err != nil {
		return nil, err
	}
	if err := s.repo.Signups().UpdateConfirmationToken(ctx, existing.Id, token); err != nil {
		return nil, err
	}
	existing.ConfirmationToken.String = token
	existing.ConfirmationToken.Valid = true

	// Required dispatch, same reasoning as the first send.
	if err := s.sendConfirmation(ctx, w, existing); err != nil {
		slog.Default().ErrorContext(ctx, "can't resend confirmation email",
			slog.String("slug", w.Slug),
			slog.String("err", err.Error()),
		)
		return nil, gerr.ErrEmail
	}

	return &SignupResponse{
		Success:              true,
		Message:              "Check your email to confirm your spot.",
		Position:             existing.Position,
		RequiresConfirmation: true,
		RedirectUrl:          w.RedirectUrl.String,
	}, nil
}

// ConfirmResponse is the result of redeeming a confirmation token.
type ConfirmResponse struct {
	Success     bool   `json:"success"`
	Message     string `json:"message"`
	Position    int    `json:"position"`
	RedirectUrl string `json:"redirectUrl,omitempty"`
}

// Confirm redeems a confirmation token. Re-confirming an already
// confirmed signup is a no-op success.
func (s *Server) Confirm(ctx context.Context, slug, token string) (*ConfirmResponse, error) {
	w, err := s.repo.Waitlists().GetWaitlistBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	signup, err := s.repo.Signups().GetSignupByToken(ctx, w.Id, token)
	if err != nil {
		return nil, err
	}

	if signup.Status != entity.StatusPending {
		return &ConfirmResponse{
			Success:     true,
			Message:     "You're already confirmed.",
			Position:    signup.Position,
			RedirectUrl: w.RedirectUrl.String,
		}, nil
	}

	confirmed, err := s.repo.Signups().ConfirmSignup(ctx, signup.Id)
	if err != nil {
		return nil, err
	}

	s.dispatchConfirmedEffects(ctx, w, confirmed)
	s.fireWebhook(ctx, w, confirmed, webhook.EventSignupConfirmed)

	return &ConfirmResponse{
		Success:     true,
		Message:     fmt.Sprintf("You're confirmed at position %d.", confirmed.Position),
		Position:    confirmed.Position,
		RedirectUrl: w.RedirectUrl.String,
	}, nil
}

// StatusResponse is the public widget view of a waitlist.
type StatusResponse struct {
	Name         string              `json:"name"`
	Slug         string              `json:"slug"`
	LogoUrl      string              `json:"logoUrl,omitempty"`
	PrimaryColor string              `json:"primaryColor,omitempty"`
	CustomFields entity.CustomFields `json:"customFields"`
	SignupCount  int                 `json:"signupCount"`
}

// Status returns the branding, form schema and confirmed member count
// embedded signup widgets need.
func (s *Server) Status(ctx context.Context, slug string) (*StatusResponse, error) {
	w, err := s.repo.Waitlists().GetWaitlistBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	count, err := s.repo.Signups().ActiveSignupCount(ctx, w.Id)
	if err != nil {
		return nil, err
	}
	cf := w.CustomFields
	if cf == nil {
		cf = entity.CustomFields{}
	}
	return &StatusResponse{
		Name:         w.Name,
		Slug:         w.Slug,
		LogoUrl:      w.LogoUrl.String,
		PrimaryColor: w.PrimaryColor.String,
		CustomFields: cf,
		SignupCount:  count,
	}, nil
}

func (s *Server) sendConfirmation(ctx context.Context, w *entity.Waitlist, signup *entity.Signup) error {
	return s.mailer.SendConfirmation(ctx, s.repo, signup.Email, dependency.ConfirmationData{
		WaitlistName: w.Name,
		ConfirmUrl:   s.confirmURL(w.Slug, signup.ConfirmationToken.String),
		Subject:      w.ConfirmationSubject.String,
	})
}

// dispatchConfirmedEffects sends the welcome and owner-notification
// emails. Both are best-effort: failures are logged and swallowed.
func (s *Server) dispatchConfirmedEffects(ctx context.Context, w *entity.Waitlist, signup *entity.Signup) {
	if s.mailer.IsConfigured() {
		s.bestEffort(ctx, "welcome email", func() error {
			return s.mailer.SendWelcome(ctx, s.repo, signup.Email, dependency.WelcomeData{
				WaitlistName: w.Name,
				Position:     signup.Position,
				Subject:      w.WelcomeSubject.String,
			})
		})
		if w.NotifyOnSignup && w.NotifyEmail.String != "" {
			s.bestEffort(ctx, "admin notification", func() error {
				return s.mailer.SendAdminNotification(ctx, s.repo, w.NotifyEmail.String, dependency.AdminNotificationData{
					WaitlistName: w.Name,
					Email:        signup.Email,
					Position:     signup.Position,
				})
			})
		}
	}
}

func (s *Server) fireWebhook(ctx context.Context, w *entity.Waitlist, signup *entity.Signup, event string) {
	if w.WebhookUrl.String == "" {
		return
	}
	s.bestEffort(ctx, "webhook "+event, func() error {
		return s.hook.Fire(ctx, w.WebhookUrl.String, event, w, signup)
	})
}

// bestEffort runs a side effect whose failure must never reach the
// caller.
func (s *Server) bestEffort(ctx context.Context, effect string, fn func() error) {
	if err := fn(); err != nil {
		slog.Default().ErrorContext(ctx, "best-effort side effect failed",
			slog.String("effect", effect),
			slog.String("err", err.Error()),
		)
	}
}

func (s *Server) confirmURL(slug, token string) string {
	base := strings.TrimRight(s.c.PublicBaseURL, "/")
	return fmt.Sprintf("%s/w/%s/confirm/%s", base, url.PathEscape(slug), token)
}

// newConfirmationToken returns 32 random bytes hex-encoded. Uniqueness
// is probabilistic, there is no check against existing tokens.
func newConfirmationToken() (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("can't generate confirmation token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
