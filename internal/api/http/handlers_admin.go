package httpapi

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/jekabolt/waitlist-manager/internal/apisrv/admin"
	"github.com/jekabolt/waitlist-manager/internal/dto"
	"github.com/jekabolt/waitlist-manager/internal/entity"
	gerr "github.com/jekabolt/waitlist-manager/internal/errors"
)

// waitlistPayload is the create/update request body for a waitlist.
type waitlistPayload struct {
	Name                string              `json:"name"`
	Slug                string              `json:"slug"`
	LogoUrl             string              `json:"logoUrl"`
	PrimaryColor        string              `json:"primaryColor"`
	DoubleOptIn         bool                `json:"doubleOptIn"`
	RedirectUrl         string              `json:"redirectUrl"`
	CustomFields        entity.CustomFields `json:"customFields"`
	NotifyOnSignup      bool                `json:"notifyOnSignup"`
	NotifyEmail         string              `json:"notifyEmail"`
	WebhookUrl          string              `json:"webhookUrl"`
	ConfirmationSubject string              `json:"confirmationSubject"`
	WelcomeSubject      string              `json:"welcomeSubject"`
	AllowedOrigins      []string            `json:"allowedOrigins"`
}

func (p *waitlistPayload) toInsert() *entity.WaitlistInsert {
	return &entity.WaitlistInsert{
		Name:                p.Name,
		Slug:                p.Slug,
		LogoUrl:             p.LogoUrl,
		PrimaryColor:        p.PrimaryColor,
		DoubleOptIn:         p.DoubleOptIn,
		RedirectUrl:         p.RedirectUrl,
		CustomFields:        p.CustomFields,
		NotifyOnSignup:      p.NotifyOnSignup,
		NotifyEmail:         p.NotifyEmail,
		WebhookUrl:          p.WebhookUrl,
		ConfirmationSubject: p.ConfirmationSubject,
		WelcomeSubject:      p.WelcomeSubject,
		AllowedOrigins:      entity.AllowedOrigins(p.AllowedOrigins),
	}
}

func pathId(r *http.Request, name string) (int, error) {
	id, err := strconv.Atoi(chi.URLParam(r, name))
	if err != nil || id < 1 {
		return 0, gerr.Validation(fmt.Sprintf("invalid %s", name))
	}
	return id, nil
}

func (s *Server) handleListWaitlists(srv *admin.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		wls, err := srv.ListWaitlists(r.Context())
		if err != nil {
			respondError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, map[string]any{
			"waitlists": dto.ConvertEntityWaitlists(wls),
		})
	}
}

func (s *Server) handleCreateWaitlist(srv *admin.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var p waitlistPayload
		if err := decodeJSON(r, &p); err != nil {
			respondError(w, r, err)
			return
		}
		wl, err := srv.CreateWaitlist(r.Context(), p.toInsert())
		if err != nil {
			respondError(w, r, err)
			return
		}
		respondJSON(w, http.StatusCreated, dto.ConvertEntityWaitlist(wl))
	}
}

func (s *Server) handleGetWaitlist(srv *admin.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathId(r, "id")
		if err != nil {
			respondError(w, r, err)
			return
		}
		wl, err := srv.GetWaitlist(r.Context(), id)
		if err != nil {
			respondError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, dto.ConvertEntityWaitlist(wl))
	}
}

func (s *Server) handleUpdateWaitlist(srv *admin.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathId(r, "id")
		if err != nil {
			respondError(w, r, err)
			return
		}
		var p waitlistPayload
		if err := decodeJSON(r, &p); err != nil {
			respondError(w, r, err)
			return
		}
		wl, err := srv.UpdateWaitlist(r.Context(), id, p.toInsert())
		if err != nil {
			respondError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, dto.ConvertEntityWaitlist(wl))
	}
}

func (s *Server) handleDeleteWaitlist(srv *admin.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathId(r, "id")
		if err != nil {
			respondError(w, r, err)
			return
		}
		if err := srv.DeleteWaitlist(r.Context(), id); err != nil {
			respondError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, map[string]bool{"success": true})
	}
}

// signupPage is the JSON view of one admin signup listing page.
type signupPage struct {
	Signups []dto.Signup `json:"signups"`
	Total   int          `json:"total"`
	Page    int          `json:"page"`
	Limit   int          `json:"limit"`
}

func (s *Server) handleListSignups(srv *admin.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathId(r, "id")
		if err != nil {
			respondError(w, r, err)
			return
		}
		q := r.URL.Query()
		page, _ := strconv.Atoi(q.Get("page"))
		limit, _ := strconv.Atoi(q.Get("limit"))

		res, err := srv.ListSignups(r.Context(), id, &admin.SignupListQuery{
			Page:   page,
			Limit:  limit,
			Search: q.Get("search"),
			Status: q.Get("status"),
			Sort:   q.Get("sort"),
			Order:  q.Get("order"),
		})
		if err != nil {
			respondError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, signupPage{
			Signups: dto.ConvertEntitySignups(res.Signups),
			Total:   res.Total,
			Page:    res.Page,
			Limit:   res.Limit,
		})
	}
}

type statusPayload struct {
	Status string `json:"status"`
}

func (s *Server) handleSetSignupStatus(srv *admin.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathId(r, "id")
		if err != nil {
			respondError(w, r, err)
			return
		}
		signupId, err := pathId(r, "signupId")
		if err != nil {
			respondError(w, r, err)
			return
		}
		var p statusPayload
		if err := decodeJSON(r, &p); err != nil {
			respondError(w, r, err)
			return
		}
		su, err := srv.SetSignupStatus(r.Context(), id, signupId, p.Status)
		if err != nil {
			respondError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, dto.ConvertEntitySignup(su))
	}
}

func (s *Server) handleExportSignups(srv *admin.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathId(r, "id")
		if err != nil {
			respondError(w, r, err)
			return
		}
		wl, err := srv.GetWaitlist(r.Context(), id)
		if err != nil {
			respondError(w, r, err)
			return
		}
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", wl.Slug+"-signups.csv"))
		if err := srv.ExportSignupsCSV(r.Context(), id, w); err != nil {
			// Headers are already out, the stream just ends short.
			slog.Default().ErrorContext(r.Context(), "csv export failed",
				slog.Int("waitlistId", id),
				slog.String("err", err.Error()),
			)
		}
	}
}

func statsQuery(r *http.Request) *admin.StatsQuery {
	q := r.URL.Query()
	return &admin.StatsQuery{
		From:    q.Get("from"),
		To:      q.Get("to"),
		Compare: q.Get("compare") == "true",
	}
}

func (s *Server) handleWaitlistStats(srv *admin.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathId(r, "id")
		if err != nil {
			respondError(w, r, err)
			return
		}
		stats, err := srv.WaitlistStats(r.Context(), id, statsQuery(r))
		if err != nil {
			respondError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, stats)
	}
}

func (s *Server) handleDashboardStats(srv *admin.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := srv.DashboardStats(r.Context(), statsQuery(r))
		if err != nil {
			respondError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, stats)
	}
}
