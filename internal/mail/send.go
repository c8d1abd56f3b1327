package mail

import (
	"context"
	"fmt"

	"github.com/jekabolt/waitlist-manager/internal/dependency"
)

const (
	Confirmation      = "confirmation.gohtml"
	Welcome           = "welcome.gohtml"
	AdminNotification = "admin_notification.gohtml"
)

// Default subjects, overridable per waitlist.
var templateSubjects = map[string]string{
	Confirmation:      "Confirm your spot on the waitlist",
	Welcome:           "You're on the waitlist",
	AdminNotification: "New waitlist signup",
}

func subjectFor(tn, override string) string {
	if override != "" {
		return override
	}
	return templateSubjects[tn]
}

// SendConfirmation sends the double opt-in confirmation link.
func (m *Mailer) SendConfirmation(ctx context.Context, rep dependency.Repository, to string, data dependency.ConfirmationData) error {
	if data.ConfirmUrl == "" {
		return fmt.Errorf("incomplete confirmation details: %+v", data)
	}
	html, err := m.render(Confirmation, data)
	if err != nil {
		return err
	}
	return m.sendWithLog(ctx, rep, to, subjectFor(Confirmation, data.Subject), html)
}

// SendWelcome sends the position email once a signup is confirmed.
func (m *Mailer) SendWelcome(ctx context.Context, rep dependency.Repository, to string, data dependency.WelcomeData) error {
	html, err := m.render(Welcome, data)
	if err != nil {
		return err
	}
	return m.sendWithLog(ctx, rep, to, subjectFor(Welcome, data.Subject), html)
}

// SendAdminNotification tells the waitlist owner about a new signup.
func (m *Mailer) SendAdminNotification(ctx context.Context, rep dependency.Repository, to string, data dependency.AdminNotificationData) error {
	html, err := m.render(AdminNotification, data)
	if err != nil {
		return err
	}
	subject := fmt.Sprintf("%s: new signup", data.WaitlistName)
	return m.sendWithLog(ctx, rep, to, subject, html)
}
