// Package webhook posts signup events to waitlist-configured URLs.
// Delivery is fire and forget: one attempt, no retry, failures are
// logged and never surfaced to the signup caller.
package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/jekabolt/waitlist-manager/internal/dependency"
	"github.com/jekabolt/waitlist-manager/internal/entity"
)

const (
	EventSignupCreated   = "signup.created"
	EventSignupConfirmed = "signup.confirmed"
)

type Config struct {
	HTTPTimeout time.Duration `mapstructure:"http_timeout"`
}

type Dispatcher struct {
	c      *Config
	client *http.Client
}

func New(c *Config) dependency.WebhookDispatcher {
	timeout := c.HTTPTimeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	return &Dispatcher{
		c:      c,
		client: &http.Client{Timeout: timeout},
	}
}

type payload struct {
	Event     string          `json:"event"`
	Timestamp time.Time       `json:"timestamp"`
	Waitlist  payloadWaitlist `json:"waitlist"`
	Signup    payloadSignup   `json:"signup"`
}

type payloadWaitlist struct {
	Id   int    `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type payloadSignup struct {
	Id             int               `json:"id"`
	Email          string            `json:"email"`
	Position       int               `json:"position"`
	Status         string            `json:"status"`
	ReferralSource string            `json:"referralSource,omitempty"`
	CustomData     map[string]string `json:"customData,omitempty"`
	ConfirmedAt    *time.Time        `json:"confirmedAt,omitempty"`
	CreatedAt      time.Time         `json:"createdAt"`
}

// Fire posts one event to url. Each delivery carries a unique
// X-Delivery-Id header so receivers can deduplicate.
func (d *Dispatcher) Fire(ctx context.Context, url string, event string, w *entity.Waitlist, s *entity.Signup) error {
	var confirmedAt *time.Time
	if s.ConfirmedAt.Valid {
		t := s.ConfirmedAt.Time
		confirmedAt = &t
	}
	p := payload{
		Event:     event,
		Timestamp: time.Now().UTC(),
		Waitlist: payloadWaitlist{
			Id:   w.Id,
			Name: w.Name,
			Slug: w.Slug,
		},
		Signup: payloadSignup{
			Id:             s.Id,
			Email:          s.Email,
			Position:       s.Position,
			Status:         string(s.Status),
			ReferralSource: s.ReferralSource.String,
			CustomData:     s.CustomData,
			ConfirmedAt:    confirmedAt,
			CreatedAt:      s.CreatedAt,
		},
	}

	body, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to marshal webhook payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("failed to create POST request to %s: %w", url, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Webhook-Event", event)
	req.Header.Set("X-Delivery-Id", uuid.New().String())

	resp, err := d.client.Do(req)
	if err != nil {
		slog.Default().ErrorContext(ctx, "webhook delivery failed",
			slog.String("url", url),
			slog.String("event", event),
			slog.String("err", err.Error()),
		)
		return fmt.Errorf("failed to POST to %s: %w", url, err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= http.StatusMultipleChoices {
		slog.Default().ErrorContext(ctx, "webhook endpoint returned non-2xx",
			slog.String("url", url),
			slog.Int("status", resp.StatusCode),
		)
		return fmt.Errorf("webhook %s returned status %d", url, resp.StatusCode)
	}

	return nil
}
