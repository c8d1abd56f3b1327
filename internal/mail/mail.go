package mail

import (
	"context"
	"embed"
	"fmt"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/sendgrid/sendgrid-go"
	smail "github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/jekabolt/waitlist-manager/internal/dependency"
	"github.com/jekabolt/waitlist-manager/internal/entity"
	gerr "github.com/jekabolt/waitlist-manager/internal/errors"
)

//go:embed templates/*.gohtml
var templatesFS embed.FS

type Config struct {
	APIKey    string `mapstructure:"sendgrid_api_key"`
	FromEmail string `mapstructure:"from_email"`
	FromName  string `mapstructure:"from_email_name"`
	ReplyTo   string `mapstructure:"reply_to"`
}

// Mailer sends waitlist emails through sendgrid. An unconfigured Mailer
// is still constructable: IsConfigured reports false and the signup
// workflow falls back to direct confirmation.
type Mailer struct {
	cli       *sendgrid.Client
	from      *smail.Email
	c         *Config
	templates map[string]*template.Template
}

func New(c *Config) (dependency.Mailer, error) {
	m := &Mailer{
		c:         c,
		templates: make(map[string]*template.Template),
	}
	if m.IsConfigured() {
		m.cli = sendgrid.NewSendClient(c.APIKey)
		m.from = smail.NewEmail(c.FromName, c.FromEmail)
	}
	if err := m.parseTemplates(); err != nil {
		return nil, fmt.Errorf("error parsing templates: %w", err)
	}
	return m, nil
}

// IsConfigured reports whether outbound email can actually be sent.
func (m *Mailer) IsConfigured() bool {
	return m.c.APIKey != "" && m.c.FromEmail != ""
}

func (m *Mailer) parseTemplates() error {
	dirEntries, err := templatesFS.ReadDir("templates")
	if err != nil {
		return fmt.Errorf("error reading template directory: %w", err)
	}
	for _, entry := range dirEntries {
		if entry.IsDir() {
			continue
		}
		tmpl, err := template.ParseFS(templatesFS, filepath.Join("templates", entry.Name()))
		if err != nil {
			return fmt.Errorf("error parsing template '%s': %w", entry.Name(), err)
		}
		m.templates[entry.Name()] = tmpl
	}
	return nil
}

func (m *Mailer) render(tn string, data interface{}) (string, error) {
	tmpl, ok := m.templates[tn]
	if !ok {
		return "", fmt.Errorf("template not found: %v", tn)
	}
	body := &strings.Builder{}
	if err := tmpl.Execute(body, data); err != nil {
		return "", fmt.Errorf("error executing template: %w", err)
	}
	return body.String(), nil
}

// sendWithLog records the outgoing message in the mail log, sends it
// and marks the row sent or failed. There is no retry: a failed row
// stays in the log with its error for manual inspection.
func (m *Mailer) sendWithLog(ctx context.Context, rep dependency.Repository, to, subject, html string) error {
	if !m.IsConfigured() {
		return gerr.ErrEmail
	}

	id, err := rep.Mail().AddMail(ctx, &entity.SendEmailRequest{
		From:    m.c.FromEmail,
		To:      to,
		Html:    html,
		Subject: subject,
		ReplyTo: m.c.ReplyTo,
	})
	if err != nil {
		return fmt.Errorf("error inserting email: %w", err)
	}

	msg := smail.NewSingleEmail(m.from, subject, smail.NewEmail("", to), "", html)
	if m.c.ReplyTo != "" {
		msg.SetReplyTo(smail.NewEmail("", m.c.ReplyTo))
	}

	resp, err := m.cli.SendWithContext(ctx, msg)
	if err == nil && resp.StatusCode >= http.StatusBadRequest {
		err = fmt.Errorf("sendgrid status %d: %s", resp.StatusCode, resp.Body)
	}
	if err != nil {
		if lerr := rep.Mail().AddError(ctx, id, err.Error()); lerr != nil {
			slog.Default().ErrorContext(ctx, "can't record mail error",
				slog.String("err", lerr.Error()),
			)
		}
		return fmt.Errorf("error sending email: %w", err)
	}

	if err := rep.Mail().UpdateSent(ctx, id); err != nil {
		return fmt.Errorf("error updating email: %w", err)
	}
	return nil
}
