package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"

	"github.com/jekabolt/waitlist-manager/internal/dependency"
	"github.com/jekabolt/waitlist-manager/internal/entity"
	gerr "github.com/jekabolt/waitlist-manager/internal/errors"
)

type waitlistStore struct {
	*MYSQLStore
}

// Waitlists returns an object implementing Waitlists interface
func (ms *MYSQLStore) Waitlists() dependency.Waitlists {
	return &waitlistStore{
		MYSQLStore: ms,
	}
}

func (ms *MYSQLStore) AddWaitlist(ctx context.Context, wi *entity.WaitlistInsert) (int, error) {
	query := `
	INSERT INTO waitlist
		(name, slug, logo_url, primary_color, double_opt_in, redirect_url, custom_fields,
		notify_on_signup, notify_email, webhook_url, confirmation_subject, welcome_subject, allowed_origins)
	VALUES
		(:name, :slug, :logoUrl, :primaryColor, :doubleOptIn, :redirectUrl, :customFields,
		:notifyOnSignup, :notifyEmail, :webhookUrl, :confirmationSubject, :welcomeSubject, :allowedOrigins)
	`
	id, err := ExecNamedLastId(ctx, ms.DB(), query, waitlistParams(wi))
	if err != nil {
		if ms.IsErrUniqueViolation(err) {
			return 0, gerr.Newf(http.StatusConflict, "ALREADY_EXISTS", "slug %q is already taken", wi.Slug)
		}
		return 0, fmt.Errorf("failed to add waitlist: %w", err)
	}
	return id, nil
}

func (ms *MYSQLStore) UpdateWaitlist(ctx context.Context, id int, wi *entity.WaitlistInsert) error {
	query := `
	UPDATE waitlist SET
		name = :name,
		slug = :slug,
		logo_url = :logoUrl,
		primary_color = :primaryColor,
		double_opt_in = :doubleOptIn,
		redirect_url = :redirectUrl,
		custom_fields = :customFields,
		notify_on_signup = :notifyOnSignup,
		notify_email = :notifyEmail,
		webhook_url = :webhookUrl,
		confirmation_subject = :confirmationSubject,
		welcome_subject = :welcomeSubject,
		allowed_origins = :allowedOrigins
	WHERE id = :id
	`
	params := waitlistParams(wi)
	params["id"] = id
	err := ExecNamed(ctx, ms.DB(), query, params)
	if err != nil {
		if ms.IsErrUniqueViolation(err) {
			return gerr.Newf(http.StatusConflict, "ALREADY_EXISTS", "slug %q is already taken", wi.Slug)
		}
		return fmt.Errorf("failed to update waitlist: %w", err)
	}
	return nil
}

func (ms *MYSQLStore) GetWaitlistById(ctx context.Context, id int) (*entity.Waitlist, error) {
	query := `SELECT * FROM waitlist WHERE id = :id`
	w, err := QueryNamedOne[entity.Waitlist](ctx, ms.DB(), query, map[string]any{"id": id})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, gerr.ErrWaitlistNotFound
		}
		return nil, fmt.Errorf("failed to get waitlist: %w", err)
	}
	return &w, nil
}

func (ms *MYSQLStore) GetWaitlistBySlug(ctx context.Context, slug string) (*entity.Waitlist, error) {
	query := `SELECT * FROM waitlist WHERE slug = :slug`
	w, err := QueryNamedOne[entity.Waitlist](ctx, ms.DB(), query, map[string]any{"slug": slug})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, gerr.ErrWaitlistNotFound
		}
		return nil, fmt.Errorf("failed to get waitlist by slug: %w", err)
	}
	return &w, nil
}

func (ms *MYSQLStore) ListWaitlists(ctx context.Context) ([]entity.Waitlist, error) {
	query := `SELECT * FROM waitlist ORDER BY id`
	ws, err := QueryListNamed[entity.Waitlist](ctx, ms.DB(), query, map[string]any{})
	if err != nil {
		return nil, fmt.Errorf("failed to list waitlists: %w", err)
	}
	return ws, nil
}

// DeleteWaitlistById deletes a waitlist. Signups go with it via the
// foreign key cascade.
func (ms *MYSQLStore) DeleteWaitlistById(ctx context.Context, id int) error {
	res, err := ms.DB().ExecContext(ctx, `DELETE FROM waitlist WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete waitlist: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return gerr.ErrWaitlistNotFound
	}
	return nil
}

func waitlistParams(wi *entity.WaitlistInsert) map[string]any {
	return map[string]any{
		"name":                wi.Name,
		"slug":                wi.Slug,
		"logoUrl":             nullString(wi.LogoUrl),
		"primaryColor":        nullString(wi.PrimaryColor),
		"doubleOptIn":         wi.DoubleOptIn,
		"redirectUrl":         nullString(wi.RedirectUrl),
		"customFields":        wi.CustomFields,
		"notifyOnSignup":      wi.NotifyOnSignup,
		"notifyEmail":         nullString(wi.NotifyEmail),
		"webhookUrl":          nullString(wi.WebhookUrl),
		"confirmationSubject": nullString(wi.ConfirmationSubject),
		"welcomeSubject":      nullString(wi.WelcomeSubject),
		"allowedOrigins":      wi.AllowedOrigins,
	}
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
