package httpapi

import (
	"net/http"

	"github.com/jekabolt/waitlist-manager/internal/apisrv/auth"
)

func (s *Server) handleLogin(srv *auth.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req auth.LoginRequest
		if err := decodeJSON(r, &req); err != nil {
			respondError(w, r, err)
			return
		}
		resp, err := srv.Login(r.Context(), &req)
		if err != nil {
			respondError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, resp)
	}
}

func (s *Server) handleCreateUser(srv *auth.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req auth.CreateUserRequest
		if err := decodeJSON(r, &req); err != nil {
			respondError(w, r, err)
			return
		}
		resp, err := srv.Create(r.Context(), &req)
		if err != nil {
			respondError(w, r, err)
			return
		}
		respondJSON(w, http.StatusCreated, resp)
	}
}

func (s *Server) handleDeleteUser(srv *auth.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req auth.DeleteUserRequest
		if err := decodeJSON(r, &req); err != nil {
			respondError(w, r, err)
			return
		}
		if err := srv.Delete(r.Context(), &req); err != nil {
			respondError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, map[string]bool{"success": true})
	}
}

func (s *Server) handleChangePassword(srv *auth.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req auth.ChangePasswordRequest
		if err := decodeJSON(r, &req); err != nil {
			respondError(w, r, err)
			return
		}
		resp, err := srv.ChangePassword(r.Context(), &req)
		if err != nil {
			respondError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, resp)
	}
}
