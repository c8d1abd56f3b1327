// Package admin implements the authenticated management surface:
// waitlist CRUD, signup listing and moderation, CSV export and the
// analytics endpoints.
package admin

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"

	v "github.com/asaskevich/govalidator"

	"github.com/jekabolt/waitlist-manager/internal/dependency"
	"github.com/jekabolt/waitlist-manager/internal/entity"
	gerr "github.com/jekabolt/waitlist-manager/internal/errors"
)

const (
	defaultPageLimit = 50
	maxPageLimit     = 100
)

var slugRe = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// Server implements handlers for admin requests.
type Server struct {
	repo dependency.Repository
}

// New creates a new server with admin handlers.
func New(r dependency.Repository) *Server {
	return &Server{
		repo: r,
	}
}

func validateWaitlist(wi *entity.WaitlistInsert) error {
	wi.Name = strings.TrimSpace(wi.Name)
	wi.Slug = strings.ToLower(strings.TrimSpace(wi.Slug))

	if _, err := v.ValidateStruct(wi); err != nil {
		return gerr.Validation(err.Error())
	}
	if !slugRe.MatchString(wi.Slug) {
		return gerr.Validation("slug must be lowercase letters, digits and hyphens")
	}
	if err := wi.CustomFields.Validate(); err != nil {
		return gerr.Validation(err.Error())
	}
	return nil
}

// CreateWaitlist validates and creates a waitlist.
func (s *Server) CreateWaitlist(ctx context.Context, wi *entity.WaitlistInsert) (*entity.Waitlist, error) {
	if err := validateWaitlist(wi); err != nil {
		return nil, err
	}
	id, err := s.repo.Waitlists().AddWaitlist(ctx, wi)
	if err != nil {
		return nil, err
	}
	return s.repo.Waitlists().GetWaitlistById(ctx, id)
}

// UpdateWaitlist validates and replaces a waitlist's settings, re-checking
// slug uniqueness.
func (s *Server) UpdateWaitlist(ctx context.Context, id int, wi *entity.WaitlistInsert) (*entity.Waitlist, error) {
	if err := validateWaitlist(wi); err != nil {
		return nil, err
	}
	if err := s.repo.Waitlists().UpdateWaitlist(ctx, id, wi); err != nil {
		return nil, err
	}
	return s.repo.Waitlists().GetWaitlistById(ctx, id)
}

func (s *Server) GetWaitlist(ctx context.Context, id int) (*entity.Waitlist, error) {
	return s.repo.Waitlists().GetWaitlistById(ctx, id)
}

func (s *Server) ListWaitlists(ctx context.Context) ([]entity.Waitlist, error) {
	return s.repo.Waitlists().ListWaitlists(ctx)
}

// DeleteWaitlist removes a waitlist and, by cascade, all its signups.
func (s *Server) DeleteWaitlist(ctx context.Context, id int) error {
	return s.repo.Waitlists().DeleteWaitlistById(ctx, id)
}

// SignupListQuery is the admin signup listing request.
type SignupListQuery struct {
	Page   int
	Limit  int
	Search string
	Status string
	Sort   string
	Order  string
}

// SignupPage is one page of the admin signup listing.
type SignupPage struct {
	Signups []entity.Signup `json:"signups"`
	Total   int             `json:"total"`
	Page    int             `json:"page"`
	Limit   int             `json:"limit"`
}

var sortFields = map[string]struct{}{
	"position":  {},
	"email":     {},
	"status":    {},
	"createdAt": {},
}

// ListSignups returns a filtered, sorted page of a waitlist's signups.
// Limit is clamped to 100.
func (s *Server) ListSignups(ctx context.Context, waitlistId int, q *SignupListQuery) (*SignupPage, error) {
	if _, err := s.repo.Waitlists().GetWaitlistById(ctx, waitlistId); err != nil {
		return nil, err
	}

	page := q.Page
	if page < 1 {
		page = 1
	}
	limit := q.Limit
	if limit <= 0 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	filter := &entity.SignupListFilter{
		Search: strings.TrimSpace(q.Search),
		Sort:   "position",
		Order:  "asc",
		Limit:  limit,
		Offset: (page - 1) * limit,
	}
	if q.Status != "" {
		st := entity.SignupStatus(q.Status)
		if !st.Valid() {
			return nil, gerr.Validation(fmt.Sprintf("unknown status %q", q.Status))
		}
		filter.Status = st
	}
	if q.Sort != "" {
		if _, ok := sortFields[q.Sort]; !ok {
			return nil, gerr.Validation(fmt.Sprintf("unknown sort field %q", q.Sort))
		}
		filter.Sort = q.Sort
	}
	if q.Order != "" {
		order := strings.ToLower(q.Order)
		if order != "asc" && order != "desc" {
			return nil, gerr.Validation(fmt.Sprintf("unknown order %q", q.Order))
		}
		filter.Order = order
	}

	signups, total, err := s.repo.Signups().GetSignupsPaged(ctx, waitlistId, filter)
	if err != nil {
		return nil, err
	}
	if signups == nil {
		signups = []entity.Signup{}
	}
	return &SignupPage{
		Signups: signups,
		Total:   total,
		Page:    page,
		Limit:   limit,
	}, nil
}

// SetSignupStatus performs an admin status transition on one signup of
// the given waitlist.
func (s *Server) SetSignupStatus(ctx context.Context, waitlistId, signupId int, status string) (*entity.Signup, error) {
	st := entity.SignupStatus(status)
	if !st.Valid() {
		return nil, gerr.Validation(fmt.Sprintf("unknown status %q", status))
	}
	signup, err := s.repo.Signups().GetSignupById(ctx, signupId)
	if err != nil {
		return nil, err
	}
	if signup.WaitlistId != waitlistId {
		return nil, gerr.ErrSignupNotFound
	}
	return s.repo.Signups().SetSignupStatus(ctx, signupId, st)
}

// ExportSignupsCSV streams every signup of a waitlist as CSV, custom
// field columns in schema order.
func (s *Server) ExportSignupsCSV(ctx context.Context, waitlistId int, out io.Writer) error {
	w, err := s.repo.Waitlists().GetWaitlistById(ctx, waitlistId)
	if err != nil {
		return err
	}
	signups, err := s.repo.Signups().ListSignups(ctx, waitlistId)
	if err != nil {
		return err
	}

	header := []string{"position", "email", "status", "referral_source"}
	for _, f := range w.CustomFields {
		header = append(header, f.Key)
	}
	header = append(header, "confirmed_at", "created_at")

	cw := csv.NewWriter(out)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, su := range signups {
		row := []string{
			fmt.Sprintf("%d", su.Position),
			su.Email,
			string(su.Status),
			su.ReferralSource.String,
		}
		for _, f := range w.CustomFields {
			row = append(row, su.CustomData[f.Key])
		}
		confirmedAt := ""
		if su.ConfirmedAt.Valid {
			confirmedAt = su.ConfirmedAt.Time.UTC().Format(time.RFC3339)
		}
		row = append(row, confirmedAt, su.CreatedAt.UTC().Format(time.RFC3339))
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
