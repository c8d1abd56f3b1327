package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jekabolt/waitlist-manager/internal/apisrv/public"
	"github.com/jekabolt/waitlist-manager/internal/entity"
	gerr "github.com/jekabolt/waitlist-manager/internal/errors"
	"github.com/jekabolt/waitlist-manager/internal/middleware"
	"github.com/jekabolt/waitlist-manager/internal/origin"
)

// gateOrigin enforces the waitlist's own CORS pattern list. A request
// without an Origin header passes, a disallowed origin gets a 403 with
// no CORS headers so the browser blocks the response too. Allowed
// origins are echoed back literally.
func gateOrigin(w http.ResponseWriter, r *http.Request, wl *entity.Waitlist) bool {
	reqOrigin := r.Header.Get("Origin")
	if reqOrigin == "" {
		return true
	}
	if !origin.Allowed(reqOrigin, wl.AllowedOrigins) {
		respondError(w, r, gerr.ErrForbidden)
		return false
	}
	w.Header().Set("Access-Control-Allow-Origin", reqOrigin)
	w.Header().Set("Vary", "Origin")
	return true
}

// handlePublicPreflight answers CORS preflights for the signup and
// status endpoints against the waitlist's pattern list.
func (s *Server) handlePublicPreflight(w http.ResponseWriter, r *http.Request) {
	wl, err := s.repo.Waitlists().GetWaitlistBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	if !gateOrigin(w, r, wl) {
		return
	}
	w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Accept, Content-Type")
	w.Header().Set("Access-Control-Max-Age", "300")
	w.WriteHeader(http.StatusNoContent)
}

type signupPayload struct {
	Email          string            `json:"email"`
	CustomData     map[string]string `json:"customData"`
	ReferralSource string            `json:"referralSource"`
}

func (s *Server) handleSignup(srv *public.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")
		wl, err := s.repo.Waitlists().GetWaitlistBySlug(r.Context(), slug)
		if err != nil {
			respondError(w, r, err)
			return
		}
		if !gateOrigin(w, r, wl) {
			return
		}
		if !allowRate(w, r, s.signupLimiter, "signup") {
			return
		}

		var p signupPayload
		if err := decodeJSON(r, &p); err != nil {
			respondError(w, r, err)
			return
		}

		resp, err := srv.Signup(r.Context(), &public.SignupRequest{
			Slug:           slug,
			Email:          p.Email,
			CustomData:     p.CustomData,
			ReferralSource: p.ReferralSource,
			IpAddress:      middleware.GetClientIP(r.Context()),
			UserAgent:      middleware.GetUserAgent(r.Context()),
		})
		if err != nil {
			respondError(w, r, err)
			return
		}
		respondJSON(w, http.StatusCreated, resp)
	}
}

// handleConfirm redeems a confirmation token from an email link. A
// waitlist with a redirect URL sends the browser there, anything else
// gets the JSON result.
func (s *Server) handleConfirm(srv *public.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp, err := srv.Confirm(r.Context(), chi.URLParam(r, "slug"), chi.URLParam(r, "token"))
		if err != nil {
			respondError(w, r, err)
			return
		}
		if resp.RedirectUrl != "" {
			http.Redirect(w, r, resp.RedirectUrl, http.StatusFound)
			return
		}
		respondJSON(w, http.StatusOK, resp)
	}
}

func (s *Server) handleStatus(srv *public.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")
		wl, err := s.repo.Waitlists().GetWaitlistBySlug(r.Context(), slug)
		if err != nil {
			respondError(w, r, err)
			return
		}
		if !gateOrigin(w, r, wl) {
			return
		}
		resp, err := srv.Status(r.Context(), slug)
		if err != nil {
			respondError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, resp)
	}
}
