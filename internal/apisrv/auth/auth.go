// Package auth issues and verifies admin JWTs and manages admin
// accounts.
package auth

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/jwtauth/v5"

	"github.com/jekabolt/waitlist-manager/internal/auth/jwt"
	"github.com/jekabolt/waitlist-manager/internal/auth/pwhash"
	"github.com/jekabolt/waitlist-manager/internal/dependency"
	gerr "github.com/jekabolt/waitlist-manager/internal/errors"
)

// AuthHeader is the header carrying the bearer token.
const AuthHeader = "Authorization"

// Server implements the auth service.
type Server struct {
	adminRepository dependency.Admin
	pwhash          *pwhash.PasswordHasher
	JwtAuth         *jwtauth.JWTAuth
	jwtTTL          time.Duration
	c               *Config
	masterHash      string
}

// Config contains the configuration for the auth server.
type Config struct {
	JWTSecret                string `mapstructure:"jwtSecret"`
	MasterPassword           string `mapstructure:"masterPassword"`
	PasswordHasherSaltSize   int    `mapstructure:"passwordHasherSaltSize"`
	PasswordHasherIterations int    `mapstructure:"passwordHasherIterations"`
	JWTTTL                   string `mapstructure:"jwtttl"`
}

// New creates a new auth server.
func New(c *Config, ar dependency.Admin) (*Server, error) {
	ph, err := pwhash.New(c.PasswordHasherSaltSize, c.PasswordHasherIterations)
	if err != nil {
		return nil, err
	}
	hash, err := ph.HashPassword(c.MasterPassword)
	if err != nil {
		return nil, err
	}
	if err := ph.Validate(c.MasterPassword, hash); err != nil {
		return nil, err
	}

	ttl, err := time.ParseDuration(c.JWTTTL)
	if err != nil {
		return nil, err
	}

	return &Server{
		adminRepository: ar,
		pwhash:          ph,
		JwtAuth:         jwtauth.New("HS256", []byte(c.JWTSecret), nil),
		c:               c,
		jwtTTL:          ttl,
		masterHash:      hash,
	}, nil
}

// LoginRequest is a username/password login attempt.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// TokenResponse carries a fresh auth token.
type TokenResponse struct {
	AuthToken string `json:"authToken"`
}

// Login returns an auth token for valid credentials.
func (s *Server) Login(ctx context.Context, req *LoginRequest) (*TokenResponse, error) {
	username := strings.ToLower(strings.TrimSpace(req.Username))

	pwHash, err := s.adminRepository.PasswordHashByUsername(ctx, username)
	if err != nil {
		return nil, gerr.InvalidCredentials()
	}
	if err := s.pwhash.Validate(req.Password, pwHash); err != nil {
		return nil, gerr.InvalidCredentials()
	}

	token, err := jwt.NewTokenWithSubject(s.JwtAuth, s.jwtTTL, username)
	if err != nil {
		return nil, err
	}
	return &TokenResponse{AuthToken: token}, nil
}

// CreateUserRequest creates a new admin, gated by the master password.
type CreateUserRequest struct {
	MasterPassword string `json:"masterPassword"`
	Username       string `json:"username"`
	Password       string `json:"password"`
}

// Create creates a new admin account.
func (s *Server) Create(ctx context.Context, req *CreateUserRequest) (*TokenResponse, error) {
	if err := s.pwhash.Validate(req.MasterPassword, s.masterHash); err != nil {
		return nil, gerr.ErrUnauthorized
	}

	username := strings.ToLower(strings.TrimSpace(req.Username))
	if username == "" || req.Password == "" {
		return nil, gerr.Validation("username and password are required")
	}

	pwHash, err := s.pwhash.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}
	if err := s.adminRepository.AddAdmin(ctx, username, pwHash); err != nil {
		return nil, err
	}

	token, err := jwt.NewTokenWithSubject(s.JwtAuth, s.jwtTTL, username)
	if err != nil {
		return nil, err
	}
	return &TokenResponse{AuthToken: token}, nil
}

// DeleteUserRequest removes an admin, gated by the master password.
type DeleteUserRequest struct {
	MasterPassword string `json:"masterPassword"`
	Username       string `json:"username"`
}

// Delete deletes an admin account.
func (s *Server) Delete(ctx context.Context, req *DeleteUserRequest) error {
	if err := s.pwhash.Validate(req.MasterPassword, s.masterHash); err != nil {
		return gerr.ErrUnauthorized
	}
	return s.adminRepository.DeleteAdmin(ctx, strings.ToLower(strings.TrimSpace(req.Username)))
}

// ChangePasswordRequest rotates an admin's password. CurrentPassword may
// be either the admin's own password or the master password.
type ChangePasswordRequest struct {
	Username        string `json:"username"`
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// ChangePassword changes the password of an admin.
func (s *Server) ChangePassword(ctx context.Context, req *ChangePasswordRequest) (*TokenResponse, error) {
	username := strings.ToLower(strings.TrimSpace(req.Username))

	currentHash, err := s.adminRepository.PasswordHashByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("cannot get password hash: %w", err)
	}

	if err := s.pwhash.Validate(req.CurrentPassword, s.masterHash); err != nil {
		if err := s.pwhash.Validate(req.CurrentPassword, currentHash); err != nil {
			return nil, gerr.InvalidCredentials()
		}
	}

	if req.NewPassword == "" {
		return nil, gerr.Validation("new password is required")
	}
	newHash, err := s.pwhash.HashPassword(req.NewPassword)
	if err != nil {
		return nil, err
	}
	if err := s.adminRepository.ChangePassword(ctx, username, newHash); err != nil {
		return nil, err
	}

	token, err := jwt.NewTokenWithSubject(s.JwtAuth, s.jwtTTL, username)
	if err != nil {
		return nil, err
	}
	return &TokenResponse{AuthToken: token}, nil
}

// VerifyRequest extracts and verifies the bearer token of a request,
// returning the authenticated username.
func (s *Server) VerifyRequest(r *http.Request) (string, error) {
	header := r.Header.Get(AuthHeader)
	if header == "" {
		return "", gerr.ErrUnauthorized
	}
	token := strings.TrimPrefix(header, "Bearer ")
	sub, err := jwt.VerifyToken(s.JwtAuth, token)
	if err != nil {
		return "", gerr.ErrUnauthorized
	}
	return sub, nil
}
