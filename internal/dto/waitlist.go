// Package dto holds the JSON views of storage entities served by the
// HTTP API.
package dto

import (
	"time"

	"github.com/jekabolt/waitlist-manager/internal/entity"
)

// Waitlist is the admin API view of a waitlist.
type Waitlist struct {
	Id                  int                 `json:"id"`
	Name                string              `json:"name"`
	Slug                string              `json:"slug"`
	LogoUrl             string              `json:"logoUrl,omitempty"`
	PrimaryColor        string              `json:"primaryColor,omitempty"`
	DoubleOptIn         bool                `json:"doubleOptIn"`
	RedirectUrl         string              `json:"redirectUrl,omitempty"`
	CustomFields        entity.CustomFields `json:"customFields"`
	NotifyOnSignup      bool                `json:"notifyOnSignup"`
	NotifyEmail         string              `json:"notifyEmail,omitempty"`
	WebhookUrl          string              `json:"webhookUrl,omitempty"`
	ConfirmationSubject string              `json:"confirmationSubject,omitempty"`
	WelcomeSubject      string              `json:"welcomeSubject,omitempty"`
	AllowedOrigins      []string            `json:"allowedOrigins"`
	CreatedAt           time.Time           `json:"createdAt"`
	UpdatedAt           time.Time           `json:"updatedAt"`
}

// ConvertEntityWaitlist maps a storage waitlist to its API view.
func ConvertEntityWaitlist(w *entity.Waitlist) *Waitlist {
	cf := w.CustomFields
	if cf == nil {
		cf = entity.CustomFields{}
	}
	ao := []string(w.AllowedOrigins)
	if ao == nil {
		ao = []string{}
	}
	return &Waitlist{
		Id:                  w.Id,
		Name:                w.Name,
		Slug:                w.Slug,
		LogoUrl:             w.LogoUrl.String,
		PrimaryColor:        w.PrimaryColor.String,
		DoubleOptIn:         w.DoubleOptIn,
		RedirectUrl:         w.RedirectUrl.String,
		CustomFields:        cf,
		NotifyOnSignup:      w.NotifyOnSignup,
		NotifyEmail:         w.NotifyEmail.String,
		WebhookUrl:          w.WebhookUrl.String,
		ConfirmationSubject: w.ConfirmationSubject.String,
		WelcomeSubject:      w.WelcomeSubject.String,
		AllowedOrigins:      ao,
		CreatedAt:           w.CreatedAt,
		UpdatedAt:           w.UpdatedAt,
	}
}

// ConvertEntityWaitlists maps a waitlist slice to API views.
func ConvertEntityWaitlists(ws []entity.Waitlist) []Waitlist {
	out := make([]Waitlist, 0, len(ws))
	for i := range ws {
		out = append(out, *ConvertEntityWaitlist(&ws[i]))
	}
	return out
}
