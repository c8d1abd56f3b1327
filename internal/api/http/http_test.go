package httpapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jekabolt/waitlist-manager/internal/apisrv/admin"
	"github.com/jekabolt/waitlist-manager/internal/apisrv/auth"
	"github.com/jekabolt/waitlist-manager/internal/apisrv/public"
	"github.com/jekabolt/waitlist-manager/internal/auth/pwhash"
	"github.com/jekabolt/waitlist-manager/internal/dependency/mocks"
	"github.com/jekabolt/waitlist-manager/internal/entity"
	gerr "github.com/jekabolt/waitlist-manager/internal/errors"
)

type routerEnv struct {
	rep       *mocks.Repository
	waitlists *mocks.Waitlists
	signups   *mocks.Signups
	admins    *mocks.Admin
	mailer    *mocks.Mailer
	hook      *mocks.WebhookDispatcher
	srv       *Server
	handler   http.Handler
}

func newRouterEnv(t *testing.T) *routerEnv {
	t.Helper()

	env := &routerEnv{
		rep:       mocks.NewRepository(t),
		waitlists: mocks.NewWaitlists(t),
		signups:   mocks.NewSignups(t),
		admins:    mocks.NewAdmin(t),
		mailer:    mocks.NewMailer(t),
		hook:      mocks.NewWebhookDispatcher(t),
	}
	env.rep.On("Waitlists").Return(env.waitlists).Maybe()
	env.rep.On("Signups").Return(env.signups).Maybe()

	authSrv, err := auth.New(&auth.Config{
		JWTSecret:                "test-secret",
		MasterPassword:           "master-password",
		PasswordHasherSaltSize:   16,
		PasswordHasherIterations: 1000,
		JWTTTL:                   "1h",
	}, env.admins)
	require.NoError(t, err)

	publicSrv := public.New(&public.Config{PublicBaseURL: "https://wl.test"}, env.rep, env.mailer, env.hook)
	adminSrv := admin.New(env.rep)

	env.srv = New(&Config{
		Port:           "8081",
		Address:        "",
		AllowedOrigins: []string{"https://dashboard.test"},
	}, env.rep)
	env.handler = env.srv.setupRouter(publicSrv, adminSrv, authSrv)
	return env
}

func testWaitlist() *entity.Waitlist {
	return &entity.Waitlist{
		Id:             1,
		Name:           "Beta Launch",
		Slug:           "beta-launch",
		AllowedOrigins: entity.AllowedOrigins{"myapp.com"},
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}
}

func TestRouter_SignupDirect(t *testing.T) {
	env := newRouterEnv(t)
	w := testWaitlist()

	env.waitlists.On("GetWaitlistBySlug", mock.Anything, "beta-launch").Return(w, nil)
	env.signups.On("GetSignupByEmail", mock.Anything, 1, "dev@myapp.com").Return(nil, nil)
	env.signups.On("AddSignup", mock.Anything, mock.Anything).Return(&entity.Signup{
		Id:         10,
		WaitlistId: 1,
		Email:      "dev@myapp.com",
		Position:   4,
		Status:     entity.StatusConfirmed,
	}, nil)
	env.mailer.On("IsConfigured").Return(false)

	body, _ := json.Marshal(map[string]any{"email": "dev@myapp.com"})
	req := httptest.NewRequest(http.MethodPost, "/w/beta-launch/signup", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	env.handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp public.SignupResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, 4, resp.Position)
	assert.False(t, resp.RequiresConfirmation)

	assert.Equal(t, "10", rec.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "9", rec.Header().Get("X-RateLimit-Remaining"))
	assert.NotEmpty(t, rec.Header().Get("X-RateLimit-Reset"))
}

func TestRouter_SignupOriginDenied(t *testing.T) {
	env := newRouterEnv(t)
	env.waitlists.On("GetWaitlistBySlug", mock.Anything, "beta-launch").Return(testWaitlist(), nil)

	body, _ := json.Marshal(map[string]any{"email": "dev@evil.com"})
	req := httptest.NewRequest(http.MethodPost, "/w/beta-launch/signup", bytes.NewReader(body))
	req.Header.Set("Origin", "https://evil.com")
	rec := httptest.NewRecorder()
	env.handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusForbidden, rec.Code)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Body.String(), "FORBIDDEN")
}

func TestRouter_SignupOriginAllowed(t *testing.T) {
	env := newRouterEnv(t)
	w := testWaitlist()
	env.waitlists.On("GetWaitlistBySlug", mock.Anything, "beta-launch").Return(w, nil)
	env.signups.On("GetSignupByEmail", mock.Anything, 1, "dev@myapp.com").Return(nil, nil)
	env.signups.On("AddSignup", mock.Anything, mock.Anything).Return(&entity.Signup{
		Id: 10, WaitlistId: 1, Email: "dev@myapp.com", Position: 1, Status: entity.StatusConfirmed,
	}, nil)
	env.mailer.On("IsConfigured").Return(false)

	body, _ := json.Marshal(map[string]any{"email": "dev@myapp.com"})
	req := httptest.NewRequest(http.MethodPost, "/w/beta-launch/signup", bytes.NewReader(body))
	req.Header.Set("Origin", "https://myapp.com")
	rec := httptest.NewRecorder()
	env.handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, "https://myapp.com", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouter_Preflight(t *testing.T) {
	env := newRouterEnv(t)
	env.waitlists.On("GetWaitlistBySlug", mock.Anything, "beta-launch").Return(testWaitlist(), nil)

	req := httptest.NewRequest(http.MethodOptions, "/w/beta-launch/signup", nil)
	req.Header.Set("Origin", "https://myapp.com")
	rec := httptest.NewRecorder()
	env.handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "https://myapp.com", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), "POST")
}

func TestRouter_SignupRateLimited(t *testing.T) {
	env := newRouterEnv(t)
	env.waitlists.On("GetWaitlistBySlug", mock.Anything, "beta-launch").Return(testWaitlist(), nil).Maybe()

	// Burn the whole quota from one address. Empty bodies fail email
	// validation so no rows are ever written.
	var rec *httptest.ResponseRecorder
	for i := 0; i < signupLimitMax+1; i++ {
		req := httptest.NewRequest(http.MethodPost, "/w/beta-launch/signup", bytes.NewReader([]byte("{}")))
		rec = httptest.NewRecorder()
		env.handler.ServeHTTP(rec, req)
	}

	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Contains(t, rec.Body.String(), "RATE_LIMITED")
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))
	assert.Equal(t, "0", rec.Header().Get("X-RateLimit-Remaining"))
}

func TestRouter_SignupDeniedOriginKeepsQuota(t *testing.T) {
	env := newRouterEnv(t)
	w := testWaitlist()
	env.waitlists.On("GetWaitlistBySlug", mock.Anything, "beta-launch").Return(w, nil)
	env.signups.On("GetSignupByEmail", mock.Anything, 1, "dev@myapp.com").Return(nil, nil)
	env.signups.On("AddSignup", mock.Anything, mock.Anything).Return(&entity.Signup{
		Id: 10, WaitlistId: 1, Email: "dev@myapp.com", Position: 1, Status: entity.StatusConfirmed,
	}, nil)
	env.mailer.On("IsConfigured").Return(false)

	// Hammer the endpoint from a disallowed origin well past the quota.
	// The origin gate answers first, so none of these spend it.
	for i := 0; i < signupLimitMax+1; i++ {
		req := httptest.NewRequest(http.MethodPost, "/w/beta-launch/signup", bytes.NewReader([]byte("{}")))
		req.Header.Set("Origin", "https://evil.com")
		rec := httptest.NewRecorder()
		env.handler.ServeHTTP(rec, req)
		require.Equal(t, http.StatusForbidden, rec.Code)
		assert.Empty(t, rec.Header().Get("X-RateLimit-Limit"))
	}

	// A signup from an allowed origin still sees a full window.
	body, _ := json.Marshal(map[string]any{"email": "dev@myapp.com"})
	req := httptest.NewRequest(http.MethodPost, "/w/beta-launch/signup", bytes.NewReader(body))
	req.Header.Set("Origin", "https://myapp.com")
	rec := httptest.NewRecorder()
	env.handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, "9", rec.Header().Get("X-RateLimit-Remaining"))
}

func TestRouter_ConfirmRedirects(t *testing.T) {
	env := newRouterEnv(t)
	w := testWaitlist()
	w.RedirectUrl.String = "https://myapp.com/thanks"
	w.RedirectUrl.Valid = true
	env.waitlists.On("GetWaitlistBySlug", mock.Anything, "beta-launch").Return(w, nil)
	env.signups.On("GetSignupByToken", mock.Anything, 1, "tok").Return(&entity.Signup{
		Id: 10, WaitlistId: 1, Position: 2, Status: entity.StatusConfirmed,
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/w/beta-launch/confirm/tok", nil)
	rec := httptest.NewRecorder()
	env.handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "https://myapp.com/thanks", rec.Header().Get("Location"))
}

func TestRouter_AdminRequiresAuth(t *testing.T) {
	env := newRouterEnv(t)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/waitlists", nil)
	rec := httptest.NewRecorder()
	env.handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "UNAUTHORIZED")
}

func TestRouter_AdminAuthorized(t *testing.T) {
	env := newRouterEnv(t)
	env.admins.On("PasswordHashByUsername", mock.Anything, "admin").
		Return(hashFor(t, "pw"), nil)
	env.waitlists.On("ListWaitlists", mock.Anything).Return([]entity.Waitlist{*testWaitlist()}, nil)

	// Log in for a real token first.
	body, _ := json.Marshal(map[string]string{"username": "admin", "password": "pw"})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	env.handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var tok auth.TokenResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tok))

	req = httptest.NewRequest(http.MethodGet, "/api/admin/waitlists", nil)
	req.Header.Set("Authorization", "Bearer "+tok.AuthToken)
	rec = httptest.NewRecorder()
	env.handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), "beta-launch")
}

func TestRouter_UnknownWaitlistIs404(t *testing.T) {
	env := newRouterEnv(t)
	env.waitlists.On("GetWaitlistBySlug", mock.Anything, "nope").
		Return(nil, fmt.Errorf("slug lookup: %w", gerr.ErrWaitlistNotFound))

	req := httptest.NewRequest(http.MethodGet, "/w/nope/status", nil)
	rec := httptest.NewRecorder()
	env.handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "WAITLIST_NOT_FOUND")
}

func hashFor(t *testing.T, password string) string {
	t.Helper()
	ph, err := pwhash.New(16, 1000)
	require.NoError(t, err)
	h, err := ph.HashPassword(password)
	require.NoError(t, err)
	return h
}
